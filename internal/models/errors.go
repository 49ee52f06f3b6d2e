package models

import (
	"errors"
)

var (
	// ErrMissingCredential means the required API key was absent at startup.
	// Fatal: the process exits before any model call is made.
	ErrMissingCredential = errors.New("missing credential")

	// ErrModelCall covers empty responses, transport failures and non-success
	// statuses from the completion backend. Retried with bounded backoff.
	ErrModelCall = errors.New("model call failed")

	// ErrValidation means the model returned parseable JSON that is missing
	// required fields or carries a category outside the closed vocabulary.
	// Handled like a parse failure: one repair attempt, then fallback.
	ErrValidation = errors.New("validation error")
)
