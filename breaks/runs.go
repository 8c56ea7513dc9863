package breaks

// Runs splits a sorted sequence into its maximal runs of equal values by
// chaining FindBreak calls, each one starting at the previous break.
// It returns nil for an empty sequence.
//
// Complexity: O(k·log n) time for k runs, O(k) memory.
func Runs[T Signed](xs []T) []Run[T] {
	n := len(xs)
	if n == 0 {
		return nil
	}

	var runs []Run[T]
	start := 0
	for start < n {
		next := FindBreak(xs, start, n)
		if next == start {
			// uniform tail: the last run extends to the end
			next = n
		}
		runs = append(runs, Run[T]{Value: xs[start], Start: start, End: next})
		start = next
	}

	return runs
}

// Breaks returns the start index of every run except the first, i.e. every
// index i > 0 with xs[i-1] != xs[i], in increasing order.
func Breaks[T Signed](xs []T) []int {
	runs := Runs(xs)
	if len(runs) < 2 {
		return nil
	}
	out := make([]int, 0, len(runs)-1)
	for _, r := range runs[1:] {
		out = append(out, r.Start)
	}

	return out
}

// Unique returns the distinct values of a sorted sequence in order.
func Unique[T Signed](xs []T) []T {
	runs := Runs(xs)
	if runs == nil {
		return nil
	}
	out := make([]T, len(runs))
	for i, r := range runs {
		out[i] = r.Value
	}

	return out
}
