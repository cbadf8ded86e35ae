package complaint

import "fmt"

// ValidationError reports malformed or missing input. Detected before any
// mutation takes place.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthorizationError reports an actor with the wrong role or a non-owner
// trying to read someone else's complaint.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError reports an unknown complaint id.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// PersistenceError wraps a store failure. The underlying error is kept for
// diagnostics but callers surface only a generic message.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
