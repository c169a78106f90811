package store

import "errors"

// ErrNotFound is returned when a record does not exist, or exists but is
// not visible to the caller. The two cases are deliberately indistinguishable
// for owner-scoped operations.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")
