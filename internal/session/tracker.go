package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/cruxlog/internal/grades"
	"github.com/abhisek/cruxlog/internal/store"
)

// Tracker owns the single active session and drives its lifecycle:
// NoActiveSession -> Active -> closed-in-store. At most one session is
// active at a time; closed sessions exist only as persisted documents.
//
// Mutations persist first and apply to the in-memory session only after the
// store acknowledges, so local and remote state never diverge.
type Tracker struct {
	repo   store.SessionRepo
	userID string
	now    func() time.Time
	active *Session
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates a Tracker in the NoActiveSession state.
func NewTracker(repo store.SessionRepo, userID string, opts ...Option) *Tracker {
	t := &Tracker{
		repo:   repo,
		userID: userID,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Active returns the active session, or nil.
func (t *Tracker) Active() *Session {
	return t.active
}

// Start begins a new session at the given gym, persisting the document and
// transitioning to Active. Fails with ErrAlreadyActive while a session runs.
func (t *Tracker) Start(ctx context.Context, gym string, discipline grades.Discipline) (*Session, error) {
	if t.active != nil {
		return nil, ErrAlreadyActive
	}

	s := Session{
		Gym:        strings.TrimSpace(gym),
		Discipline: discipline,
		StartTime:  t.now(),
		Climbs:     []Climb{},
	}

	id, err := t.repo.CreateSession(ctx, t.userID, store.SessionDoc{
		Gym:        s.Gym,
		Discipline: string(s.Discipline),
		StartTime:  s.StartTime,
		Climbs:     []store.ClimbDoc{},
	})
	if err != nil {
		return nil, persistErr("create session", err)
	}

	s.ID = id
	t.active = &s
	return t.active, nil
}

// ClimbRequest carries the fields the caller assembled before logging.
type ClimbRequest struct {
	Grade      string
	Outcome    Outcome
	Style      Style
	Difficulty Difficulty
	Tags       []string
	Notes      string
}

// LogClimb validates the request against the session's discipline, persists
// the climb, and appends it to the active session's list.
func (t *Tracker) LogClimb(ctx context.Context, req ClimbRequest) (*Climb, error) {
	if t.active == nil {
		return nil, ErrNoActiveSession
	}
	if req.Outcome == "" {
		return nil, ErrMissingOutcome
	}
	if !validOutcome(t.active.Discipline, req.Outcome) {
		return nil, fmt.Errorf("outcome %q not valid for %s", req.Outcome, t.active.Discipline)
	}
	if _, err := grades.Rank(t.active.Discipline, req.Grade); err != nil {
		return nil, err
	}

	style := req.Style
	if style == "" {
		style = DefaultStyle(t.active.Discipline)
	} else if !validStyle(t.active.Discipline, style) {
		return nil, fmt.Errorf("style %q not valid for %s", style, t.active.Discipline)
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = DifficultyOn
	}

	climb := Climb{
		Grade:      req.Grade,
		Outcome:    req.Outcome,
		Style:      style,
		Difficulty: difficulty,
		Tags:       req.Tags,
		Notes:      strings.TrimSpace(req.Notes),
		LoggedAt:   t.now(),
	}

	if err := t.repo.AppendClimb(ctx, t.userID, t.active.ID, climbToDoc(climb)); err != nil {
		return nil, persistErr("append climb", err)
	}

	t.active.Climbs = append(t.active.Climbs, climb)
	return &climb, nil
}

// DeleteClimb removes the climb at index from the active session. The whole
// remaining list round-trips through the store; there is no partial delete.
func (t *Tracker) DeleteClimb(ctx context.Context, index int) error {
	if t.active == nil {
		return ErrNoActiveSession
	}
	if index < 0 || index >= len(t.active.Climbs) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(t.active.Climbs))
	}

	remaining := spliceClimbs(t.active.Climbs, index)
	if err := t.repo.OverwriteClimbs(ctx, t.userID, t.active.ID, climbsToDocs(remaining)); err != nil {
		return persistErr("overwrite climbs", err)
	}

	t.active.Climbs = remaining
	return nil
}

// End closes the active session, persisting the end time and the elapsed
// whole minutes (floored, so 125s of climbing is 2 minutes). On success the
// active slot is cleared and the closed session returned.
func (t *Tracker) End(ctx context.Context) (*Session, error) {
	if t.active == nil {
		return nil, ErrNoActiveSession
	}

	endTime := t.now()
	durationMinutes := int(endTime.Sub(t.active.StartTime) / time.Minute)

	if err := t.repo.CloseSession(ctx, t.userID, t.active.ID, endTime, durationMinutes); err != nil {
		return nil, persistErr("close session", err)
	}

	closed := *t.active
	closed.EndTime = &endTime
	closed.DurationMinutes = durationMinutes
	t.active = nil
	return &closed, nil
}

// ListSessions returns all of the user's sessions, newest first.
func (t *Tracker) ListSessions(ctx context.Context) ([]Session, error) {
	docs, err := t.repo.ListSessions(ctx, t.userID)
	if err != nil {
		return nil, persistErr("list sessions", err)
	}
	return FromDocs(docs), nil
}

// GetSession fetches one closed session for history browsing.
func (t *Tracker) GetSession(ctx context.Context, sessionID int) (Session, error) {
	doc, err := t.repo.GetSession(ctx, t.userID, sessionID)
	if err != nil {
		return Session{}, persistErr("get session", err)
	}
	return FromDoc(doc), nil
}

// DeleteSession removes a closed session's document entirely.
func (t *Tracker) DeleteSession(ctx context.Context, sessionID int) error {
	if t.active != nil && t.active.ID == sessionID {
		return fmt.Errorf("session %d is active; end it before deleting", sessionID)
	}
	if err := t.repo.DeleteSession(ctx, t.userID, sessionID); err != nil {
		return persistErr("delete session", err)
	}
	return nil
}

// DeleteClimbFromSession removes one climb by index from a closed session:
// fetch the document, splice, and write the full list back. When the id
// names the active session the edit goes through DeleteClimb instead, so
// the in-memory list and the stored document stay in step.
func (t *Tracker) DeleteClimbFromSession(ctx context.Context, sessionID, index int) error {
	if t.active != nil && t.active.ID == sessionID {
		return t.DeleteClimb(ctx, index)
	}

	doc, err := t.repo.GetSession(ctx, t.userID, sessionID)
	if err != nil {
		return persistErr("get session", err)
	}
	if index < 0 || index >= len(doc.Climbs) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(doc.Climbs))
	}

	remaining := make([]store.ClimbDoc, 0, len(doc.Climbs)-1)
	remaining = append(remaining, doc.Climbs[:index]...)
	remaining = append(remaining, doc.Climbs[index+1:]...)

	if err := t.repo.OverwriteClimbs(ctx, t.userID, sessionID, remaining); err != nil {
		return persistErr("overwrite climbs", err)
	}
	return nil
}

func validOutcome(d grades.Discipline, o Outcome) bool {
	for _, v := range OutcomesFor(d) {
		if v == o {
			return true
		}
	}
	return false
}

func validStyle(d grades.Discipline, s Style) bool {
	for _, v := range StylesFor(d) {
		if v == s {
			return true
		}
	}
	return false
}

// spliceClimbs returns a fresh slice with the element at index removed.
func spliceClimbs(climbs []Climb, index int) []Climb {
	remaining := make([]Climb, 0, len(climbs)-1)
	remaining = append(remaining, climbs[:index]...)
	remaining = append(remaining, climbs[index+1:]...)
	return remaining
}
