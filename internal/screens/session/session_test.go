package session

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/router"
	"github.com/abhisek/cruxlog/internal/screen"
	sess "github.com/abhisek/cruxlog/internal/session"
	"github.com/abhisek/cruxlog/internal/store"
)

// mockRepo implements store.SessionRepo in memory for testing.
type mockRepo struct {
	nextID int
	docs   map[int]store.SessionDoc
}

func newMockRepo() *mockRepo {
	return &mockRepo{docs: make(map[int]store.SessionDoc)}
}

func (m *mockRepo) CreateSession(_ context.Context, _ string, doc store.SessionDoc) (int, error) {
	m.nextID++
	doc.ID = m.nextID
	m.docs[doc.ID] = doc
	return doc.ID, nil
}

func (m *mockRepo) AppendClimb(_ context.Context, _ string, sessionID int, climb store.ClimbDoc) error {
	doc, ok := m.docs[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	doc.Climbs = append(doc.Climbs, climb)
	m.docs[sessionID] = doc
	return nil
}

func (m *mockRepo) OverwriteClimbs(_ context.Context, _ string, sessionID int, climbs []store.ClimbDoc) error {
	doc, ok := m.docs[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	doc.Climbs = climbs
	m.docs[sessionID] = doc
	return nil
}

func (m *mockRepo) CloseSession(_ context.Context, _ string, sessionID int, endTime time.Time, durationMinutes int) error {
	doc, ok := m.docs[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	doc.EndTime = &endTime
	doc.DurationMinutes = durationMinutes
	m.docs[sessionID] = doc
	return nil
}

func (m *mockRepo) ListSessions(_ context.Context, _ string) ([]store.SessionDoc, error) {
	var docs []store.SessionDoc
	for _, doc := range m.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (m *mockRepo) GetSession(_ context.Context, _ string, sessionID int) (store.SessionDoc, error) {
	doc, ok := m.docs[sessionID]
	if !ok {
		return store.SessionDoc{}, store.ErrNotFound
	}
	return doc, nil
}

func (m *mockRepo) DeleteSession(_ context.Context, _ string, sessionID int) error {
	if _, ok := m.docs[sessionID]; !ok {
		return store.ErrNotFound
	}
	delete(m.docs, sessionID)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSessionScreen(t *testing.T) (*SessionScreen, *sess.Tracker) {
	t.Helper()
	tracker := sess.NewTracker(newMockRepo(), "test-user")
	if _, err := tracker.Start(context.Background(), "Crux Gym", grades.Boulder); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return New(tracker), tracker
}

func logClimb(t *testing.T, tracker *sess.Tracker, grade string, outcome sess.Outcome) {
	t.Helper()
	_, err := tracker.LogClimb(context.Background(), sess.ClimbRequest{
		Grade:   grade,
		Outcome: outcome,
	})
	if err != nil {
		t.Fatalf("LogClimb: %v", err)
	}
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.Title() != "Crux Gym" {
		t.Errorf("Title = %q, want %q", s.Title(), "Crux Gym")
	}
}

func TestSessionScreen_StatusShowsTimer(t *testing.T) {
	s, _ := testSessionScreen(t)
	s.elapsed = 95 * time.Second
	if s.Status() != "1:35" {
		t.Errorf("Status = %q, want %q", s.Status(), "1:35")
	}
}

func TestSessionScreen_TimerTick(t *testing.T) {
	s, tracker := testSessionScreen(t)
	start := tracker.Active().StartTime

	var scr screen.Screen = s
	scr, cmd := scr.Update(timerTickMsg(start.Add(42 * time.Second)))
	ss := scr.(*SessionScreen)

	if ss.elapsed != 42*time.Second {
		t.Errorf("elapsed = %v, want 42s", ss.elapsed)
	}
	if cmd == nil {
		t.Error("expected a re-tick command")
	}
}

func TestSessionScreen_StatsRefreshOnResume(t *testing.T) {
	s, tracker := testSessionScreen(t)
	logClimb(t, tracker, "V3", sess.OutcomeSend)
	logClimb(t, tracker, "V5", sess.OutcomeFail)

	var scr screen.Screen = s
	scr, _ = scr.Update(router.ScreenResumedMsg{})
	ss := scr.(*SessionScreen)

	if ss.stats.Climbs != 2 {
		t.Errorf("stats.Climbs = %d, want 2", ss.stats.Climbs)
	}
	if ss.stats.Sends != 1 {
		t.Errorf("stats.Sends = %d, want 1", ss.stats.Sends)
	}
	if ss.stats.HighGrade != "V3" {
		t.Errorf("stats.HighGrade = %q, want %q", ss.stats.HighGrade, "V3")
	}
}

func TestSessionScreen_TimerRestartsOnResume(t *testing.T) {
	s, _ := testSessionScreen(t)

	// The tick in flight while another screen was on top is lost, so the
	// resume must schedule a fresh one or the header timer freezes.
	var scr screen.Screen = s
	_, cmd := scr.Update(router.ScreenResumedMsg{})
	if cmd == nil {
		t.Fatal("expected a re-tick command after resume")
	}
}

func TestSessionScreen_LogClimbKeyPushesForm(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('l'))
	if cmd == nil {
		t.Fatal("expected a command after pressing l")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestSessionScreen_EndConfirm(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('e'))
	ss := scr.(*SessionScreen)
	if ss.confirm != confirmEnd {
		t.Error("expected end confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.confirm != confirmNone {
		t.Error("expected end confirmation to be dismissed")
	}
}

func TestSessionScreen_EndConfirmed(t *testing.T) {
	s, tracker := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('e'))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after end confirmation")
	}

	msg := cmd()
	ended, ok := msg.(sessionEndedMsg)
	if !ok {
		t.Fatalf("expected sessionEndedMsg, got %T", msg)
	}
	if ended.Err != nil {
		t.Fatalf("end failed: %v", ended.Err)
	}
	if tracker.Active() != nil {
		t.Error("expected no active session after end")
	}

	// The ended message swaps in the summary screen.
	_, cmd = scr.Update(msg)
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
}

func TestSessionScreen_DeleteIgnoredWhenEmpty(t *testing.T) {
	s, _ := testSessionScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('d'))
	ss := scr.(*SessionScreen)
	if ss.confirm != confirmNone {
		t.Error("expected no confirmation with an empty climb list")
	}
}

func TestSessionScreen_DeleteSelectedClimb(t *testing.T) {
	s, tracker := testSessionScreen(t)
	logClimb(t, tracker, "V2", sess.OutcomeSend)
	logClimb(t, tracker, "V4", sess.OutcomeFlash)
	s.refresh()

	// Row 0 is the newest climb, the V4 flash.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('d'))
	scr, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a delete command")
	}

	msg := cmd()
	scr, _ = scr.Update(msg)
	ss := scr.(*SessionScreen)

	climbs := tracker.Active().Climbs
	if len(climbs) != 1 {
		t.Fatalf("climbs = %d, want 1", len(climbs))
	}
	if climbs[0].Grade != "V2" {
		t.Errorf("remaining grade = %q, want %q", climbs[0].Grade, "V2")
	}
	if ss.stats.Climbs != 1 {
		t.Errorf("stats.Climbs = %d, want 1", ss.stats.Climbs)
	}
}

func TestSessionScreen_View(t *testing.T) {
	s, tracker := testSessionScreen(t)
	logClimb(t, tracker, "V3", sess.OutcomeSend)
	s.refresh()

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.confirm = confirmEnd
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("confirm hints = %d, want 2", len(hints))
	}
}
