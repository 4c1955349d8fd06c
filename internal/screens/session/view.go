package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	active := s.tracker.Active()
	if active == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\nNo active session.")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s  (any key to dismiss)", s.errMsg)))
		b.WriteString("\n\n")
	}

	b.WriteString(renderStatsBar(s.stats, width))
	b.WriteString("\n\n")

	switch s.confirm {
	case confirmDeleteClimb:
		b.WriteString(renderConfirm(width, "Delete the selected climb?"))
		b.WriteString("\n\n")
	case confirmEnd:
		b.WriteString(renderConfirm(width, "End this session?"))
		b.WriteString("\n\n")
	}

	b.WriteString(renderClimbList(active.Climbs, s.selected, width))

	return b.String()
}

// renderStatsBar shows the live counters above the climb list.
func renderStatsBar(stats sess.Stats, width int) string {
	high := stats.HighGrade
	if high == "" {
		high = "-"
	}
	line := fmt.Sprintf("Climbs: %d    Sends: %d    Rate: %d%%    High point: %s",
		stats.Climbs, stats.Sends, stats.SendRate, high)
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(line)
}

// renderConfirm shows a yes/no prompt inline above the list.
func renderConfirm(width int, prompt string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
		Render(prompt + "  [y/n]")
}

// renderClimbList renders climbs newest first with the selected row marked.
func renderClimbList(climbs []sess.Climb, selected int, width int) string {
	if len(climbs) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No climbs yet. Press L to log your first.")
	}

	var b strings.Builder
	for row := 0; row < len(climbs); row++ {
		c := climbs[len(climbs)-1-row]

		prefix := "  "
		if row == selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s", prefix, c.Grade, renderOutcomeBadge(c.Outcome))

		detail := fmt.Sprintf("  %s/%s", c.Style, c.Difficulty)
		if len(c.Tags) > 0 {
			detail += "  [" + strings.Join(c.Tags, ",") + "]"
		}
		if c.Notes != "" {
			detail += "  " + truncate(c.Notes, 30)
		}
		line += lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if row == selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderOutcomeBadge(o sess.Outcome) string {
	return lipgloss.NewStyle().
		Foreground(theme.OutcomeColor(string(o))).
		Bold(true).
		Render(string(o))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
