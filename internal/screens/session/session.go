package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	"github.com/abhisek/cruxlog/internal/screens/logclimb"
	"github.com/abhisek/cruxlog/internal/screens/summary"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/ui/layout"
)

type confirmMode int

const (
	confirmNone confirmMode = iota
	confirmDeleteClimb
	confirmEnd
)

// SessionScreen shows the running session: timer, live stats, and the climb
// list, newest first.
type SessionScreen struct {
	tracker  *sess.Tracker
	elapsed  time.Duration
	selected int // index into the newest-first display order
	confirm  confirmMode
	stats    sess.Stats
	errMsg   string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscInterceptor = (*SessionScreen)(nil)

// New creates a SessionScreen over the tracker's active session.
func New(tracker *sess.Tracker) *SessionScreen {
	s := &SessionScreen{tracker: tracker}
	s.refresh()
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	if active := s.tracker.Active(); active != nil {
		return active.Gym
	}
	return "Session"
}

// Status feeds the header's right slot with the running timer.
func (s *SessionScreen) Status() string {
	return sess.FormatElapsed(s.elapsed)
}

// InterceptEsc lets an open confirm dialog swallow esc as "cancel".
func (s *SessionScreen) InterceptEsc() bool {
	return s.confirm != confirmNone
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirm != confirmNone {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "L", Description: "Log climb"},
		{Key: "D", Description: "Delete"},
		{Key: "E", Description: "End session"},
		{Key: "↑↓", Description: "Navigate"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		active := s.tracker.Active()
		if active == nil {
			return s, nil
		}
		s.elapsed = time.Time(msg).Sub(active.StartTime)
		return s, tickCmd()

	case router.ScreenResumedMsg:
		// Back from the log-climb form; pick up the new climb. The tick
		// in flight while the form was up was delivered to the form and
		// dropped, so restart the timer chain here.
		s.refresh()
		s.selected = 0
		return s, tickCmd()

	case climbDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.refresh()
		if n := s.climbCount(); s.selected >= n && n > 0 {
			s.selected = n - 1
		}
		return s, nil

	case sessionEndedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(*msg.Session)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		s.errMsg = ""
		return s, nil
	}

	if s.confirm != confirmNone {
		switch key {
		case "y", "Y":
			mode := s.confirm
			s.confirm = confirmNone
			if mode == confirmDeleteClimb {
				return s, s.deleteSelected()
			}
			return s, s.endSession()
		case "n", "N", "esc":
			s.confirm = confirmNone
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.climbCount()-1 {
			s.selected++
		}
	case "l", "enter":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: logclimb.New(s.tracker)}
		}
	case "d":
		if s.climbCount() > 0 {
			s.confirm = confirmDeleteClimb
		}
	case "e":
		s.confirm = confirmEnd
	}

	return s, nil
}

// deleteSelected maps the display row back to the stored climb index.
func (s *SessionScreen) deleteSelected() tea.Cmd {
	index := s.climbCount() - 1 - s.selected
	return func() tea.Msg {
		return climbDeletedMsg{Err: s.tracker.DeleteClimb(context.Background(), index)}
	}
}

func (s *SessionScreen) endSession() tea.Cmd {
	return func() tea.Msg {
		closed, err := s.tracker.End(context.Background())
		return sessionEndedMsg{Session: closed, Err: err}
	}
}

// refresh recomputes the stats bar from the active session.
func (s *SessionScreen) refresh() {
	active := s.tracker.Active()
	if active == nil {
		return
	}
	stats, err := sess.Compute(active)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.stats = stats
}

func (s *SessionScreen) climbCount() int {
	if active := s.tracker.Active(); active != nil {
		return len(active.Climbs)
	}
	return 0
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
