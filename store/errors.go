package store

import "errors"

// ErrNotFound is returned when no feature has the requested identifier
var ErrNotFound = errors.New("feature not found")

// ErrVersionMismatch is returned by Open when the persisted state was
// written by a different schema version. The store is still usable; the
// caller decides whether to Reset or walk away.
var ErrVersionMismatch = errors.New("persisted state version mismatch")
