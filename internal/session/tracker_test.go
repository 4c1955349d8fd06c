package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/store"
)

// fakeRepo is an in-memory SessionRepo for tracker tests.
type fakeRepo struct {
	nextID  int
	docs    map[int]store.SessionDoc
	failErr error // when set, every call fails with this error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[int]store.SessionDoc)}
}

func (r *fakeRepo) CreateSession(_ context.Context, _ string, doc store.SessionDoc) (int, error) {
	if r.failErr != nil {
		return 0, r.failErr
	}
	r.nextID++
	doc.ID = r.nextID
	r.docs[doc.ID] = doc
	return doc.ID, nil
}

func (r *fakeRepo) AppendClimb(_ context.Context, _ string, sessionID int, climb store.ClimbDoc) error {
	if r.failErr != nil {
		return r.failErr
	}
	doc, ok := r.docs[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	doc.Climbs = append(doc.Climbs, climb)
	r.docs[sessionID] = doc
	return nil
}

func (r *fakeRepo) OverwriteClimbs(_ context.Context, _ string, sessionID int, climbs []store.ClimbDoc) error {
	if r.failErr != nil {
		return r.failErr
	}
	doc, ok := r.docs[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	doc.Climbs = climbs
	r.docs[sessionID] = doc
	return nil
}

func (r *fakeRepo) CloseSession(_ context.Context, _ string, sessionID int, endTime time.Time, durationMinutes int) error {
	if r.failErr != nil {
		return r.failErr
	}
	doc, ok := r.docs[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	doc.EndTime = &endTime
	doc.DurationMinutes = durationMinutes
	r.docs[sessionID] = doc
	return nil
}

func (r *fakeRepo) ListSessions(_ context.Context, _ string) ([]store.SessionDoc, error) {
	if r.failErr != nil {
		return nil, r.failErr
	}
	docs := make([]store.SessionDoc, 0, len(r.docs))
	for _, doc := range r.docs {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (r *fakeRepo) GetSession(_ context.Context, _ string, sessionID int) (store.SessionDoc, error) {
	if r.failErr != nil {
		return store.SessionDoc{}, r.failErr
	}
	doc, ok := r.docs[sessionID]
	if !ok {
		return store.SessionDoc{}, store.ErrNotFound
	}
	return doc, nil
}

func (r *fakeRepo) DeleteSession(_ context.Context, _ string, sessionID int) error {
	if r.failErr != nil {
		return r.failErr
	}
	if _, ok := r.docs[sessionID]; !ok {
		return store.ErrNotFound
	}
	delete(r.docs, sessionID)
	return nil
}

// fixedClock returns a clock stepping through the given instants, repeating
// the last one once exhausted.
func fixedClock(instants ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := instants[min(i, len(instants)-1)]
		i++
		return t
	}
}

func startBoulderSession(t *testing.T, tr *Tracker) *Session {
	t.Helper()
	s, err := tr.Start(context.Background(), "Crag City", grades.Boulder)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return s
}

func logTestClimb(t *testing.T, tr *Tracker, grade string, outcome Outcome) {
	t.Helper()
	_, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: grade, Outcome: outcome})
	if err != nil {
		t.Fatalf("log climb %s/%s: %v", grade, outcome, err)
	}
}

func TestStartAssignsIDAndActivates(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")

	s := startBoulderSession(t, tr)

	if s.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if s.Gym != "Crag City" {
		t.Errorf("gym = %q, want Crag City", s.Gym)
	}
	if tr.Active() != s {
		t.Error("expected session in the active slot")
	}
	if len(s.Climbs) != 0 {
		t.Errorf("climbs = %d, want 0", len(s.Climbs))
	}
}

func TestStartWhileActiveFails(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	startBoulderSession(t, tr)

	_, err := tr.Start(context.Background(), "Other Gym", grades.Rope)
	if !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("error = %v, want ErrAlreadyActive", err)
	}
}

func TestStartPersistenceFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.failErr = errors.New("disk full")
	tr := NewTracker(repo, "user-1")

	_, err := tr.Start(context.Background(), "Crag City", grades.Boulder)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PersistenceError", err)
	}
	if tr.Active() != nil {
		t.Error("failed start must not leave an active session")
	}
}

func TestLogClimbDefaultsAndPersists(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	s := startBoulderSession(t, tr)

	climb, err := tr.LogClimb(context.Background(), ClimbRequest{
		Grade:   "V4",
		Outcome: OutcomeSend,
		Tags:    []string{"slab"},
		Notes:   "  tenuous heel hook  ",
	})
	if err != nil {
		t.Fatalf("log climb: %v", err)
	}

	if climb.Style != StyleWall {
		t.Errorf("style = %q, want default wall", climb.Style)
	}
	if climb.Difficulty != DifficultyOn {
		t.Errorf("difficulty = %q, want default on", climb.Difficulty)
	}
	if climb.Notes != "tenuous heel hook" {
		t.Errorf("notes = %q, want trimmed", climb.Notes)
	}
	if len(s.Climbs) != 1 {
		t.Fatalf("local climbs = %d, want 1", len(s.Climbs))
	}
	if got := len(repo.docs[s.ID].Climbs); got != 1 {
		t.Fatalf("stored climbs = %d, want 1", got)
	}
}

func TestLogClimbMissingOutcome(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	s := startBoulderSession(t, tr)

	_, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: "V4"})
	if !errors.Is(err, ErrMissingOutcome) {
		t.Errorf("error = %v, want ErrMissingOutcome", err)
	}
	if len(s.Climbs) != 0 {
		t.Errorf("climbs mutated on rejected log: %d", len(s.Climbs))
	}
}

func TestLogClimbUnknownGrade(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	s := startBoulderSession(t, tr)

	_, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: "5.10", Outcome: OutcomeSend})
	if !errors.Is(err, grades.ErrUnknownGrade) {
		t.Errorf("error = %v, want ErrUnknownGrade", err)
	}
	if len(s.Climbs) != 0 {
		t.Errorf("climbs mutated on rejected log: %d", len(s.Climbs))
	}
}

func TestLogClimbWrongDisciplineVocab(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	startBoulderSession(t, tr)

	// Dirty is a rope outcome; a boulder session must reject it.
	if _, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: "V4", Outcome: OutcomeDirty}); err == nil {
		t.Error("expected error logging a dirty outcome on boulder")
	}
	// Lead is a rope style.
	if _, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: "V4", Outcome: OutcomeSend, Style: StyleLead}); err == nil {
		t.Error("expected error logging a lead style on boulder")
	}
}

func TestLogClimbNoActiveSession(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")

	_, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: "V4", Outcome: OutcomeSend})
	if !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("error = %v, want ErrNoActiveSession", err)
	}
}

func TestLogClimbPersistenceFailureKeepsLocalState(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	s := startBoulderSession(t, tr)

	repo.failErr = errors.New("network down")
	_, err := tr.LogClimb(context.Background(), ClimbRequest{Grade: "V4", Outcome: OutcomeSend})
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PersistenceError", err)
	}
	if len(s.Climbs) != 0 {
		t.Error("climb applied locally despite failed persistence")
	}
}

func TestDeleteClimb(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	s := startBoulderSession(t, tr)
	logTestClimb(t, tr, "V2", OutcomeSend)
	logTestClimb(t, tr, "V4", OutcomeFail)
	logTestClimb(t, tr, "V5", OutcomeFlash)

	if err := tr.DeleteClimb(context.Background(), 1); err != nil {
		t.Fatalf("delete climb: %v", err)
	}

	if len(s.Climbs) != 2 {
		t.Fatalf("climbs = %d, want 2", len(s.Climbs))
	}
	if s.Climbs[0].Grade != "V2" || s.Climbs[1].Grade != "V5" {
		t.Errorf("climbs = [%s %s], want [V2 V5]", s.Climbs[0].Grade, s.Climbs[1].Grade)
	}
	if got := len(repo.docs[s.ID].Climbs); got != 2 {
		t.Errorf("stored climbs = %d, want 2", got)
	}

	// Stats after delete reflect the list minus the removed element.
	stats, err := Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.Climbs != 2 || stats.Sends != 2 || stats.HighGrade != "V5" {
		t.Errorf("stats = %+v, want 2 climbs, 2 sends, V5 high", stats)
	}
}

func TestDeleteClimbStaleIndex(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	s := startBoulderSession(t, tr)
	logTestClimb(t, tr, "V2", OutcomeSend)
	logTestClimb(t, tr, "V4", OutcomeFail)

	// First delete of the last index succeeds; replaying it is an explicit
	// error, never a second silent removal.
	if err := tr.DeleteClimb(context.Background(), 1); err != nil {
		t.Fatalf("delete climb: %v", err)
	}
	err := tr.DeleteClimb(context.Background(), 1)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
	if len(s.Climbs) != 1 {
		t.Errorf("climbs = %d, want 1", len(s.Climbs))
	}
}

func TestEndFloorsDuration(t *testing.T) {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	tr := NewTracker(newFakeRepo(), "user-1",
		WithClock(fixedClock(start, start.Add(125*time.Second))))
	startBoulderSession(t, tr)

	closed, err := tr.End(context.Background())
	if err != nil {
		t.Fatalf("end session: %v", err)
	}

	// 125s elapsed floors to 2 minutes, never rounds to 3.
	if closed.DurationMinutes != 2 {
		t.Errorf("duration = %d, want 2", closed.DurationMinutes)
	}
	if closed.EndTime == nil || !closed.EndTime.Equal(start.Add(125*time.Second)) {
		t.Errorf("end time = %v, want start+125s", closed.EndTime)
	}
	if tr.Active() != nil {
		t.Error("active slot not cleared after end")
	}
}

func TestEndPersistenceFailureKeepsSessionActive(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	startBoulderSession(t, tr)

	repo.failErr = errors.New("network down")
	_, err := tr.End(context.Background())
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want *PersistenceError", err)
	}
	if tr.Active() == nil {
		t.Error("active session dropped despite failed close")
	}
}

func TestBoulderSessionEndToEnd(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	s := startBoulderSession(t, tr)

	logTestClimb(t, tr, "V2", OutcomeSend)
	logTestClimb(t, tr, "V4", OutcomeFail)
	logTestClimb(t, tr, "V5", OutcomeFlash)

	stats, err := Compute(s)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.Climbs != 3 {
		t.Errorf("climbs = %d, want 3", stats.Climbs)
	}
	if stats.Sends != 2 {
		t.Errorf("sends = %d, want 2", stats.Sends)
	}
	if stats.SendRate != 67 {
		t.Errorf("send rate = %d, want 67", stats.SendRate)
	}
	if stats.HighGrade != "V5" {
		t.Errorf("high grade = %q, want V5", stats.HighGrade)
	}
}

func TestDeleteSession(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	startBoulderSession(t, tr)
	closed, err := tr.End(context.Background())
	if err != nil {
		t.Fatalf("end: %v", err)
	}

	if err := tr.DeleteSession(context.Background(), closed.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, ok := repo.docs[closed.ID]; ok {
		t.Error("document still present after delete")
	}
}

func TestDeleteSessionRefusesActive(t *testing.T) {
	tr := NewTracker(newFakeRepo(), "user-1")
	s := startBoulderSession(t, tr)

	if err := tr.DeleteSession(context.Background(), s.ID); err == nil {
		t.Error("expected error deleting the active session")
	}
}

func TestDeleteClimbFromSession(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	s := startBoulderSession(t, tr)
	logTestClimb(t, tr, "V2", OutcomeSend)
	logTestClimb(t, tr, "V4", OutcomeFail)
	closed, err := tr.End(context.Background())
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	_ = s

	if err := tr.DeleteClimbFromSession(context.Background(), closed.ID, 0); err != nil {
		t.Fatalf("delete climb from session: %v", err)
	}

	doc := repo.docs[closed.ID]
	if len(doc.Climbs) != 1 || doc.Climbs[0].Grade != "V4" {
		t.Errorf("stored climbs = %+v, want single V4", doc.Climbs)
	}

	err = tr.DeleteClimbFromSession(context.Background(), closed.ID, 5)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestDeleteClimbFromActiveSessionStaysInStep(t *testing.T) {
	repo := newFakeRepo()
	tr := NewTracker(repo, "user-1")
	s := startBoulderSession(t, tr)
	logTestClimb(t, tr, "V2", OutcomeSend)
	logTestClimb(t, tr, "V4", OutcomeFail)

	// Deleting by session id while that session is active must edit the
	// in-memory list too, not just the stored document.
	if err := tr.DeleteClimbFromSession(context.Background(), s.ID, 0); err != nil {
		t.Fatalf("delete climb from active session: %v", err)
	}

	if len(s.Climbs) != 1 || s.Climbs[0].Grade != "V4" {
		t.Fatalf("in-memory climbs = %+v, want single V4", s.Climbs)
	}
	if doc := repo.docs[s.ID]; len(doc.Climbs) != 1 || doc.Climbs[0].Grade != "V4" {
		t.Fatalf("stored climbs = %+v, want single V4", doc.Climbs)
	}

	// A follow-up in-memory delete must not resurrect the removed climb.
	if err := tr.DeleteClimb(context.Background(), 0); err != nil {
		t.Fatalf("delete climb: %v", err)
	}
	if got := len(repo.docs[s.ID].Climbs); got != 0 {
		t.Errorf("stored climbs = %d, want 0", got)
	}
}
