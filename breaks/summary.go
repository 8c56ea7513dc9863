package breaks

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes run-length statistics over runs as returned by Runs.
// The standard deviation is the unbiased sample estimate and is 0 for a
// single run. Returns ErrEmptySequence when runs is empty.
//
// Complexity: O(k) for k runs.
func Summarize[T Signed](runs []Run[T]) (Summary, error) {
	k := len(runs)
	if k == 0 {
		return Summary{}, ErrEmptySequence
	}

	lengths := make([]float64, k)
	total := 0
	for i, r := range runs {
		lengths[i] = float64(r.Len())
		total += r.Len()
	}

	mean, std := stat.MeanStdDev(lengths, nil)
	if k == 1 {
		std = 0 // MeanStdDev yields NaN for a single sample
	}

	return Summary{
		Elements:  total,
		Runs:      k,
		First:     int64(runs[0].Value),
		Last:      int64(runs[k-1].Value),
		MinLen:    int(floats.Min(lengths)),
		MaxLen:    int(floats.Max(lengths)),
		MeanLen:   mean,
		StdDevLen: std,
	}, nil
}
