// Package breaks locates the boundaries between runs of equal values in a
// sorted (non-decreasing) sequence of signed integers.
//
// What:
//
//   - FindBreak: binary search for the first index in [start, end) whose value
//     differs from xs[start]; returns start when the range is uniform.
//   - CheckRange: the bounds validation callers perform before FindBreak.
//   - Runs / Breaks / Unique: whole-sequence enumeration built on FindBreak.
//   - IsNonDecreasing: optional O(n) sortedness check, never called by FindBreak.
//   - Summarize: run-length statistics (count, min/max/mean/std-dev).
//
// Why:
//
//	A long sorted column with few distinct values (a million rows over a
//	dozen values, say) has its distinct values and their extents recovered
//	in O(k·log n) probes instead of an O(n) scan.
//
// Preconditions:
//
//	The sequence MUST be non-decreasing over the searched range. This is
//	trusted, not verified; on unsorted or descending input the result is
//	undefined. Callers that cannot guarantee order use IsNonDecreasing first.
//
// Complexity:
//
//   - FindBreak:   O(log(end-start)), no allocations.
//   - Runs:        O(k·log n) for k distinct values, O(k) memory.
//   - Summarize:   O(k).
//
// Errors:
//
//   - ErrEmptySequence: the sequence has no elements.
//   - ErrInvalidRange:  bounds violate 0 <= start < end <= len(xs).
//
// FindBreak panics with these errors (wrapped in *RangeError) instead of
// returning them: bad bounds are a programming error on the caller's side.
package breaks
