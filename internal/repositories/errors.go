package repositories

import "errors"

// Sentinel errors shared by all repository implementations so the
// service layer can branch without matching error strings.
var (
	// ErrNotFound is returned when no document exists for the given id
	// or lookup key. A malformed ObjectID is reported the same way: it
	// can never name an existing document.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert violates a unique index,
	// e.g. two users with the same email.
	ErrDuplicate = errors.New("duplicate document")
)
