package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/router"
	sess "github.com/abhisek/cruxlog/internal/session"
)

func closedSession() sess.Session {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)
	return sess.Session{
		ID:              1,
		Gym:             "Crux Gym",
		Discipline:      grades.Boulder,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: 95,
		Climbs: []sess.Climb{
			{Grade: "V2", Outcome: sess.OutcomeSend},
			{Grade: "V4", Outcome: sess.OutcomeFlash},
			{Grade: "V5", Outcome: sess.OutcomeFail},
		},
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(closedSession())
	view := s.View(80, 24)

	for _, want := range []string{"Crux Gym", "1h 35m", "V4", "67%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ViewEmptySession(t *testing.T) {
	closed := closedSession()
	closed.Climbs = nil
	s := New(closed)

	view := s.View(80, 24)
	if !strings.Contains(view, "Climbs: 0") {
		t.Error("view missing zero climb count")
	}
	if !strings.Contains(view, "High point: -") {
		t.Error("view missing placeholder high point")
	}
}

func TestSummaryScreen_EnterGoesHome(t *testing.T) {
	s := New(closedSession())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
