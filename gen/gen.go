// Package gen produces sorted test sequences for the break finder.
//
// All randomness comes from an explicitly passed *rand.Rand; there is no
// package-level source. The same seed yields the same sequence on every
// platform.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one across goroutines.
package gen

import (
	"errors"
	"math/rand"
	"slices"
)

var (
	// ErrBadLength indicates a negative sequence length.
	ErrBadLength = errors.New("gen: length must be non-negative")
	// ErrBadDistinct indicates a distinct-value count outside [1, MaxDistinct].
	ErrBadDistinct = errors.New("gen: distinct must be in [1, 32768]")
)

// MaxDistinct is the largest number of distinct non-negative int16 values.
const MaxDistinct = 1 << 15

// defaultSeed is used when callers pass seed==0 or a nil *rand.Rand.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand. seed==0 selects defaultSeed.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// SortedInt16 draws n values uniformly from [0, distinct) with rng and
// returns them in non-decreasing order. A nil rng uses NewRand(0).
//
// Complexity: O(n log n) time, O(n) space.
func SortedInt16(rng *rand.Rand, n, distinct int) ([]int16, error) {
	if n < 0 {
		return nil, ErrBadLength
	}
	if distinct < 1 || distinct > MaxDistinct {
		return nil, ErrBadDistinct
	}
	if rng == nil {
		rng = NewRand(0)
	}

	xs := make([]int16, n)
	for i := range xs {
		xs[i] = int16(rng.Intn(distinct))
	}
	slices.Sort(xs)

	return xs, nil
}
