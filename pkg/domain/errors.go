package domain

import "errors"

// ErrUnknownParameter is returned when a lookup names a parameter that is not
// registered in the requested mapping.
var ErrUnknownParameter = errors.New("unknown parameter")

// ErrDuplicateParameter is returned when a name is registered twice, in the same
// mapping or across mappings.
var ErrDuplicateParameter = errors.New("duplicate parameter")

// ErrInvalidDefault is returned when a parameter's default value violates its own
// constraints.
var ErrInvalidDefault = errors.New("invalid default")

// ErrSnapshotNotFound is returned when a snapshot key cannot be found in the store.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// ErrInvalidName is returned when a parameter name cannot be addressed by a
// name=value assignment.
var ErrInvalidName = errors.New("invalid parameter name")
