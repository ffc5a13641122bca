package domain

import "errors"

// ErrNoUsableContent is returned when the supplied documents produced zero
// chunks. It is reported before any collaborator call is made.
var ErrNoUsableContent = errors.New("no usable content in supplied documents")

// CollaboratorError reports a failed call to an external service (embedder or
// answerer). The core does not retry; the underlying cause is preserved so a
// front end can decide on its own retry or backoff policy.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return e.Collaborator + ": " + e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
