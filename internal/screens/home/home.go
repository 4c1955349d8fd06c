package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cruxlog/internal/config"
	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	"github.com/abhisek/cruxlog/internal/screens/history"
	sessionscreen "github.com/abhisek/cruxlog/internal/screens/session"
	"github.com/abhisek/cruxlog/internal/screens/setup"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/components"
	"github.com/abhisek/cruxlog/internal/ui/theme"
)

type totalsLoadedMsg struct {
	Totals sess.Totals
	Err    error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	tracker *sess.Tracker
	cfg     config.Config
	menu    components.Menu
	totals  sess.Totals
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *sess.Tracker, cfg config.Config) *HomeScreen {
	h := &HomeScreen{
		tracker: tracker,
		cfg:     cfg,
	}
	h.menu = components.NewMenu(h.buildMenu())
	return h
}

// buildMenu swaps the first entry for RESUME SESSION while a session runs,
// e.g. after backing out of the session screen without ending it.
func (h *HomeScreen) buildMenu() []components.MenuItem {
	first := components.MenuItem{Label: "START SESSION", Action: func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: setup.New(h.tracker, h.cfg)}
		}
	}}
	if h.tracker.Active() != nil {
		first = components.MenuItem{Label: "RESUME SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionscreen.New(h.tracker)}
			}
		}}
	}

	return []components.MenuItem{
		first,
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.tracker)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadTotals()
}

func (h *HomeScreen) loadTotals() tea.Cmd {
	return func() tea.Msg {
		sessions, err := h.tracker.ListSessions(context.Background())
		if err != nil {
			return totalsLoadedMsg{Err: err}
		}
		return totalsLoadedMsg{Totals: sess.Aggregate(sessions)}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case totalsLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
		} else {
			h.totals = msg.Totals
		}
		h.loaded = true
		return h, nil

	case router.ScreenResumedMsg:
		// Refresh totals and the menu when returning from a session or history.
		h.menu = components.NewMenu(h.buildMenu())
		return h, h.loadTotals()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("CRUXLOG"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("climbing session logger"))
	b.WriteString("\n\n")

	if h.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s", h.errMsg)))
		b.WriteString("\n\n")
	} else if h.loaded {
		statsLine := fmt.Sprintf("Sessions: %d    Climbs: %d    Send rate: %d%%",
			h.totals.Sessions, h.totals.Climbs, h.totals.SendRate)
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
