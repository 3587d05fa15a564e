package history

import "errors"

var (
	// ErrNotFound is returned when no stored assessment has the requested id.
	ErrNotFound = errors.New("assessment not found")

	// ErrNoPrevious is returned when an assessment is the oldest on record
	// and so has nothing to be compared against.
	ErrNoPrevious = errors.New("no previous assessment")

	// ErrCorruptHistory is returned when the stored list does not match the
	// expected document shape.
	ErrCorruptHistory = errors.New("corrupt assessment history")
)
