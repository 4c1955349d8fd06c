package session

import (
	"time"

	sess "github.com/abhisek/cruxlog/internal/session"
)

// timerTickMsg fires once per second while the session runs.
type timerTickMsg time.Time

// climbDeletedMsg reports the result of removing a climb.
type climbDeletedMsg struct {
	Err error
}

// sessionEndedMsg carries the closed session after End, or the failure.
type sessionEndedMsg struct {
	Session *sess.Session
	Err     error
}
