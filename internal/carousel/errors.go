package carousel

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *OutOfRangeError via errors.Is.
	ErrOutOfRange = errors.New("testimonial index out of range")

	// ErrNoEntries means the rotator was configured with an empty list.
	ErrNoEntries = errors.New("rotator requires at least one entry")
)

// OutOfRangeError reports a GoTo call with an index outside [0, Len).
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// Is lets callers match the error with errors.Is(err, ErrOutOfRange).
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
