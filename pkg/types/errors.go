package types

import "errors"

// Store operation errors. Duplicate and not-found are expected outcomes,
// signaled as sentinels so callers can branch with errors.Is rather than
// string matching.
var (
	ErrDuplicate     = errors.New("record matches an existing contact")
	ErrNotFound      = errors.New("contact not found")
	ErrNothingToUndo = errors.New("nothing to undo")
)
