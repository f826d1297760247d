// Package common defines shared constants and sentinel errors used across
// the store, its repositories and the inspection CLI. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// ErrStoreUnavailable reports that the on-disk store could not be opened
	// or migrated. It is fatal for the session.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrConstraintViolation reports a record that cannot be stored under
	// its key (empty path, missing node).
	ErrConstraintViolation = errors.New("constraint violation")
)
