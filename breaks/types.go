package breaks

import (
	"errors"
	"fmt"
)

// Sentinel errors for break-finding operations.
var (
	// ErrEmptySequence indicates the input sequence has no elements.
	ErrEmptySequence = errors.New("breaks: sequence must be non-empty")
	// ErrInvalidRange indicates bounds outside 0 <= start < end <= len(xs).
	ErrInvalidRange = errors.New("breaks: range must satisfy 0 <= start < end <= length")
)

// Signed is the set of fixed-width signed integer types a sequence may hold.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// RangeError reports bounds that do not describe a non-empty half-open
// range inside a sequence of length N.
type RangeError struct {
	N, Start, End int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: got [%d, %d) over length %d", ErrInvalidRange, e.Start, e.End, e.N)
}

// Unwrap lets errors.Is match ErrInvalidRange.
func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// Run is a maximal stretch [Start, End) of equal values in a sorted sequence.
type Run[T Signed] struct {
	Value      T   // Value shared by every element of the run
	Start, End int // Half-open index bounds within the sequence
}

// Len returns the number of elements in the run.
func (r Run[T]) Len() int {
	return r.End - r.Start
}

// Summary holds run-length statistics for a sorted sequence.
type Summary struct {
	Elements  int     // Total number of elements covered by the runs
	Runs      int     // Number of runs (distinct values)
	First     int64   // Value of the first run
	Last      int64   // Value of the last run
	MinLen    int     // Shortest run length
	MaxLen    int     // Longest run length
	MeanLen   float64 // Mean run length
	StdDevLen float64 // Sample standard deviation of run lengths (0 for a single run)
}
