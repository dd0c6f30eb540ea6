package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Callers classify
// failures with errors.Is rather than matching message text.
var (
	// ErrNotFound is returned when no record matches the given id (or email).
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert or update would violate
	// the unique index on the contact email column.
	ErrDuplicateEmail = errors.New("email already exists")
)
