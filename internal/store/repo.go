package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a session document does not exist for the
// given user.
var ErrNotFound = errors.New("session not found")

// ClimbDoc is the stored form of one climb attempt.
type ClimbDoc struct {
	Grade      string    `json:"grade"`
	Outcome    string    `json:"outcome"`
	Style      string    `json:"style"`
	Difficulty string    `json:"difficulty"`
	Tags       []string  `json:"tags,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	LoggedAt   time.Time `json:"logged_at"`
}

// SessionDoc is the stored form of one session document.
type SessionDoc struct {
	ID              int        `json:"id"`
	Gym             string     `json:"gym"`
	Discipline      string     `json:"discipline"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	Climbs          []ClimbDoc `json:"climbs"`
}

// SessionRepo is the document-store contract for session persistence.
// Every operation is scoped by an opaque user identity.
type SessionRepo interface {
	// CreateSession stores a new session document and returns its id.
	CreateSession(ctx context.Context, userID string, doc SessionDoc) (int, error)

	// AppendClimb appends one climb onto the stored climb list.
	AppendClimb(ctx context.Context, userID string, sessionID int, climb ClimbDoc) error

	// OverwriteClimbs replaces the stored climb list wholesale.
	// Used by the delete-climb paths; there is no partial-delete primitive.
	OverwriteClimbs(ctx context.Context, userID string, sessionID int, climbs []ClimbDoc) error

	// CloseSession records the end time and floored duration in minutes.
	CloseSession(ctx context.Context, userID string, sessionID int, endTime time.Time, durationMinutes int) error

	// ListSessions returns all session documents, newest start time first.
	ListSessions(ctx context.Context, userID string) ([]SessionDoc, error)

	// GetSession returns one session document, or ErrNotFound.
	GetSession(ctx context.Context, userID string, sessionID int) (SessionDoc, error)

	// DeleteSession removes the whole session document.
	DeleteSession(ctx context.Context, userID string, sessionID int) error
}
