package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	"github.com/abhisek/cruxlog/internal/screens/detail"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/layout"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []sess.Session
	Err      error
}

type sessionDeletedMsg struct {
	Err error
}

// HistoryScreen lists past sessions, newest first.
type HistoryScreen struct {
	tracker    *sess.Tracker
	sessions   []sess.Session
	selected   int
	confirming bool
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscInterceptor = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(tracker *sess.Tracker) *HistoryScreen {
	return &HistoryScreen{tracker: tracker}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.tracker.ListSessions(context.Background())
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// InterceptEsc lets an open confirm dialog swallow esc as "cancel".
func (s *HistoryScreen) InterceptEsc() bool {
	return s.confirming
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			if s.selected >= len(s.sessions) && len(s.sessions) > 0 {
				s.selected = len(s.sessions) - 1
			}
		}
		s.loaded = true
		return s, nil

	case sessionDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case router.ScreenResumedMsg:
		// A climb may have been deleted on the detail screen.
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			target := s.sessions[s.selected].ID
			return s, func() tea.Msg {
				return sessionDeletedMsg{Err: s.tracker.DeleteSession(context.Background(), target)}
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
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		if len(s.sessions) > 0 {
			target := s.sessions[s.selected].ID
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: detail.New(s.tracker, target)}
			}
		}
	case "d":
		if len(s.sessions) > 0 {
			s.confirming = true
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Go climb!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.confirming {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
			Render("Delete this session and all its climbs?  [y/n]"))
		b.WriteString("\n\n")
	}

	for i, session := range s.sessions {
		stats, err := sess.Compute(&session)
		if err != nil {
			continue
		}

		dateStr := session.StartTime.Format("Jan 02, 2006")
		high := stats.HighGrade
		if high == "" {
			high = "-"
		}

		status := sess.FormatMinutes(session.DurationMinutes)
		if session.EndTime == nil {
			status = "active"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %-7s  %d climbs  %d sends  high %s",
			prefix, dateStr, session.Gym, status, stats.Climbs, stats.Sends, high)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
