package detail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cruxlog/internal/screen"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/layout"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

type sessionLoadedMsg struct {
	Session sess.Session
	Err     error
}

type climbDeletedMsg struct {
	Err error
}

// DetailScreen shows one past session's climbs and stats.
type DetailScreen struct {
	tracker   *sess.Tracker
	sessionID int

	session    sess.Session
	stats      sess.Stats
	selected   int
	confirming bool
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)
var _ screen.EscInterceptor = (*DetailScreen)(nil)

// New creates a DetailScreen for the given session.
func New(tracker *sess.Tracker, sessionID int) *DetailScreen {
	return &DetailScreen{tracker: tracker, sessionID: sessionID}
}

func (s *DetailScreen) Init() tea.Cmd {
	return s.load()
}

func (s *DetailScreen) load() tea.Cmd {
	return func() tea.Msg {
		session, err := s.tracker.GetSession(context.Background(), s.sessionID)
		return sessionLoadedMsg{Session: session, Err: err}
	}
}

func (s *DetailScreen) Title() string {
	if s.loaded && s.errMsg == "" {
		return s.session.Gym
	}
	return "Session Detail"
}

// InterceptEsc lets an open confirm dialog swallow esc as "cancel".
func (s *DetailScreen) InterceptEsc() bool {
	return s.confirming
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "D", Description: "Delete climb"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.loaded = true
			return s, nil
		}
		s.session = msg.Session
		stats, err := sess.Compute(&s.session)
		if err != nil {
			s.errMsg = err.Error()
		} else {
			s.stats = stats
		}
		if s.selected >= len(s.session.Climbs) && len(s.session.Climbs) > 0 {
			s.selected = len(s.session.Climbs) - 1
		}
		s.loaded = true
		return s, nil

	case climbDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DetailScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			index := len(s.session.Climbs) - 1 - s.selected
			return s, func() tea.Msg {
				err := s.tracker.DeleteClimbFromSession(context.Background(), s.sessionID, index)
				return climbDeletedMsg{Err: err}
			}
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.session.Climbs)-1 {
			s.selected++
		}
	case "d":
		if len(s.session.Climbs) > 0 {
			s.confirming = true
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading session...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}

	var b strings.Builder
	b.WriteString("\n")

	dateStr := s.session.StartTime.Format("Jan 02, 2006 15:04")
	header := fmt.Sprintf("%s  ·  %s  ·  %s",
		dateStr, s.session.Discipline, sess.FormatMinutes(s.session.DurationMinutes))
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(header))
	b.WriteString("\n\n")

	high := s.stats.HighGrade
	if high == "" {
		high = "-"
	}
	statsLine := fmt.Sprintf("Climbs: %d    Sends: %d    Rate: %d%%    High point: %s",
		s.stats.Climbs, s.stats.Sends, s.stats.SendRate, high)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(statsLine))
	b.WriteString("\n\n")

	if s.confirming {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
			Render("Delete the selected climb?  [y/n]"))
		b.WriteString("\n\n")
	}

	if len(s.session.Climbs) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No climbs were logged."))
		return b.String()
	}

	climbs := s.session.Climbs
	for row := 0; row < len(climbs); row++ {
		c := climbs[len(climbs)-1-row]

		prefix := "  "
		if row == s.selected {
			prefix = "> "
		}

		outcome := lipgloss.NewStyle().
			Foreground(theme.OutcomeColor(string(c.Outcome))).Bold(true).
			Render(string(c.Outcome))

		line := fmt.Sprintf("%s%s  %s", prefix, c.Grade, outcome)
		detail := fmt.Sprintf("  %s/%s", c.Style, c.Difficulty)
		if len(c.Tags) > 0 {
			detail += "  [" + strings.Join(c.Tags, ",") + "]"
		}
		if c.Notes != "" {
			detail += "  " + c.Notes
		}
		line += lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if row == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
