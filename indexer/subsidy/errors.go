package subsidy

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a height or ordinal lies outside what the
// cumulative table records.
var ErrOutOfRange = errors.New("out of range")

// RangeError carries the height that could not be resolved.
type RangeError struct {
	Height uint32
	Last   uint32
	Hole   bool
}

func (e *RangeError) Error() string {
	if e.Hole {
		return fmt.Sprintf("height %d is missing from the subsidy table: %v", e.Height, ErrOutOfRange)
	}
	return fmt.Sprintf("height %d beyond last recorded height %d: %v", e.Height, e.Last, ErrOutOfRange)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
