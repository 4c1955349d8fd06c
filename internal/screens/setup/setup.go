package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cruxlog/internal/config"
	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	sessionscreen "github.com/abhisek/cruxlog/internal/screens/session"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/components"
	"github.com/abhisek/cruxlog/internal/ui/layout"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

// customGymLabel is the final picker entry that opens the free-text input.
const customGymLabel = "Other..."

type step int

const (
	stepGym step = iota
	stepCustomGym
	stepDiscipline
)

type sessionStartedMsg struct {
	Session *sess.Session
	Err     error
}

// SetupScreen collects the gym and discipline, then starts a session.
type SetupScreen struct {
	tracker *sess.Tracker

	step       step
	gyms       []string
	gymCursor  int
	gym        string
	customGym  components.TextInput
	discipline components.ToggleGroup
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscInterceptor = (*SetupScreen)(nil)

// New creates a new SetupScreen.
func New(tracker *sess.Tracker, cfg config.Config) *SetupScreen {
	gyms := append([]string{}, cfg.Gyms...)
	gyms = append(gyms, customGymLabel)

	return &SetupScreen{
		tracker: tracker,
		gyms:    gyms,
		discipline: components.NewToggleGroupWithDefault("Discipline",
			[]string{string(grades.Boulder), string(grades.Rope)},
			string(grades.Boulder)),
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

// InterceptEsc keeps esc on the custom-gym step as "back to the picker".
func (s *SetupScreen) InterceptEsc() bool {
	return s.step == stepCustomGym
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.step {
	case stepCustomGym:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Back"},
		}
	case stepDiscipline:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: sessionscreen.New(s.tracker)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.step == stepCustomGym {
		var cmd tea.Cmd
		s.customGym, cmd = s.customGym.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.step {
	case stepGym:
		switch key {
		case "up", "k":
			if s.gymCursor > 0 {
				s.gymCursor--
			}
		case "down", "j":
			if s.gymCursor < len(s.gyms)-1 {
				s.gymCursor++
			}
		case "enter":
			choice := s.gyms[s.gymCursor]
			if choice == customGymLabel {
				s.customGym = components.NewTextInput("Gym name...", 40)
				s.step = stepCustomGym
				return s, s.customGym.Init()
			}
			s.gym = choice
			s.step = stepDiscipline
		}
		return s, nil

	case stepCustomGym:
		switch key {
		case "enter":
			name := strings.TrimSpace(s.customGym.Value())
			if name == "" {
				return s, nil
			}
			s.gym = name
			s.step = stepDiscipline
			return s, nil
		case "esc":
			s.step = stepGym
			return s, nil
		}
		var cmd tea.Cmd
		s.customGym, cmd = s.customGym.Update(msg)
		return s, cmd

	case stepDiscipline:
		if key == "enter" {
			if s.discipline.Value() == "" {
				return s, nil
			}
			return s, s.startSession()
		}
		s.discipline.Focused = true
		var cmd tea.Cmd
		s.discipline, cmd = s.discipline.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SetupScreen) startSession() tea.Cmd {
	gym := s.gym
	discipline := grades.Discipline(s.discipline.Value())
	return func() tea.Msg {
		started, err := s.tracker.Start(context.Background(), gym, discipline)
		return sessionStartedMsg{Session: started, Err: err}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s", s.errMsg)))
		b.WriteString("\n\n")
	}

	switch s.step {
	case stepGym:
		b.WriteString(theme.Subtitle.Width(width).Render("Where are you climbing?"))
		b.WriteString("\n\n")
		var list strings.Builder
		for i, gym := range s.gyms {
			if i == s.gymCursor {
				list.WriteString(theme.Selected.Render("  ▸ " + gym))
			} else {
				list.WriteString(theme.Unselected.Render("    " + gym))
			}
			list.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	case stepCustomGym:
		b.WriteString(theme.Subtitle.Width(width).Render("Enter the gym or crag name"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.customGym.View()))

	case stepDiscipline:
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("Climbing at %s", s.gym)))
		b.WriteString("\n\n")
		s.discipline.Focused = true
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.discipline.View()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Press Enter to start the clock"))
	}

	return b.String()
}
