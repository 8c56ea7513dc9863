package breaks

// FindBreak returns the first index in the half-open range [start, end) whose
// value differs from its predecessor, or start when every element of the
// range equals xs[start].
//
// Algorithm:
//  1. Window [i, j) := [start, end); anchor := xs[start].
//  2. mid := i + (j-i)/2.
//     xs[mid] == anchor → everything in [i, mid] belongs to the opening run: i = mid+1.
//     otherwise          → the change happens at or before mid:                j = mid.
//  3. Stop when i == j. If i == end the range is uniform and start is returned.
//
// Indices below start are never read, so start == 0 needs no special case.
//
// Preconditions (trusted, not verified):
//   - xs is non-decreasing over [start, end).
//
// Panics with the error CheckRange would return (ErrEmptySequence or a
// *RangeError) if xs is empty or the bounds are invalid. Use CheckRange first
// when bounds come from user input.
//
// Complexity: O(log(end-start)) time, O(1) space.
func FindBreak[T Signed](xs []T, start, end int) int {
	if err := CheckRange(len(xs), start, end); err != nil {
		panic(err)
	}

	anchor := xs[start]
	i, j := start, end
	for i < j {
		mid := i + (j-i)/2
		if xs[mid] == anchor {
			i = mid + 1
		} else {
			j = mid
		}
	}
	if i == end {
		return start
	}

	return i
}

// CheckRange reports whether [start, end) is a valid, non-empty range over a
// sequence of length n. It returns ErrEmptySequence when n == 0 and a
// *RangeError (errors.Is(err, ErrInvalidRange)) for any other violation.
func CheckRange(n, start, end int) error {
	if n == 0 {
		return ErrEmptySequence
	}
	if start < 0 || start >= end || end > n {
		return &RangeError{N: n, Start: start, End: end}
	}

	return nil
}

// IsNonDecreasing reports whether xs[start:end] is sorted in non-decreasing
// order. Bounds are clamped to the sequence; an empty window is sorted.
//
// FindBreak never calls this: it is an O(n) pass meant for callers that
// receive data of unknown provenance.
func IsNonDecreasing[T Signed](xs []T, start, end int) bool {
	if start < 0 {
		start = 0
	}
	if end > len(xs) {
		end = len(xs)
	}
	for k := start + 1; k < end; k++ {
		if xs[k-1] > xs[k] {
			return false
		}
	}

	return true
}
