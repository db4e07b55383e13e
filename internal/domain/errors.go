package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDescriptionNotFound = errors.New("description not found")
	ErrWriteFailed         = errors.New("page write failed")
)

// LookupError reports a catalog id without a description entry.
type LookupError struct {
	RoomID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("room %q: %s", e.RoomID, ErrDescriptionNotFound)
}

func (e *LookupError) Unwrap() error { return ErrDescriptionNotFound }

// WriteError reports an output path that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrWriteFailed, e.Err} }
