package session

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyActive is returned by Start while a session is active.
	ErrAlreadyActive = errors.New("a session is already active")

	// ErrNoActiveSession is returned by mutating operations outside an
	// active session.
	ErrNoActiveSession = errors.New("no active session")

	// ErrMissingOutcome is returned by LogClimb when the outcome is unset.
	// The caller re-prompts; the climb list is untouched.
	ErrMissingOutcome = errors.New("outcome is required")

	// ErrIndexOutOfRange is returned when a climb delete targets an index
	// that no longer exists. A stale index is an explicit error, never a
	// silent removal of whatever occupies it now.
	ErrIndexOutOfRange = errors.New("climb index out of range")
)

// PersistenceError wraps a store failure so callers can distinguish it from
// validation errors. The tracker does not retry; retry policy belongs to the
// store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
