package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/layout"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

// SummaryScreen shows the wrap-up for a just-ended session.
type SummaryScreen struct {
	session sess.Session
	stats   sess.Stats
	errMsg  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the closed session.
func New(closed sess.Session) *SummaryScreen {
	s := &SummaryScreen{session: closed}
	stats, err := sess.Compute(&closed)
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.stats = stats
	}
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ·  %s", s.session.Gym, s.session.Discipline)))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s", s.errMsg)))
		b.WriteString("\n")
		return b.String()
	}

	duration := sess.FormatMinutes(s.session.DurationMinutes)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %s", duration)))
	b.WriteString("\n\n")

	high := s.stats.HighGrade
	if high == "" {
		high = "-"
	}
	statsLine := fmt.Sprintf("Climbs: %d      Sends: %d      Rate: %d%%      High point: %s",
		s.stats.Climbs, s.stats.Sends, s.stats.SendRate, high)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	return b.String()
}
