package midway

import (
	"errors"
	"fmt"
)

// Configuration errors.
var (
	ErrNilRenderer = errors.New("midway: renderer cannot be nil")
	ErrNilHandler  = errors.New("midway: handler cannot be nil")
)

// LocalsOverwriteError reports that a handler replaced the Context's Locals
// map instead of mutating its contents. In diagnostic mode it is used as a
// panic value immediately after the offending handler returns; in release
// mode the dispatcher logs a warning and restores the original map instead.
type LocalsOverwriteError struct {
	RequestID string
}

// Error implements the error interface.
func (e *LocalsOverwriteError) Error() string {
	return fmt.Sprintf("midway: locals map was replaced instead of mutated (request %s)", e.RequestID)
}

// SerializationError reports that a value could not be serialized to a
// transportable string, typically because it contains a live callable, a
// resource handle, or a cyclic reference.
type SerializationError struct {
	err error
}

// Error implements the error interface.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("midway: locals are not serializable: %v", e.err)
}

// Unwrap returns the underlying codec error.
func (e *SerializationError) Unwrap() error {
	return e.err
}
