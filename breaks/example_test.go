package breaks_test

import (
	"fmt"

	"github.com/katalvlaran/runbreak/breaks"
)

// ExampleFindBreak locates the first change in a sorted run.
func ExampleFindBreak() {
	xs := []int16{3, 3, 3, 7, 7}
	i := breaks.FindBreak(xs, 0, len(xs))
	fmt.Printf("break at %d: %d -> %d\n", i, xs[i-1], xs[i])
	// Output:
	// break at 3: 3 -> 7
}

// ExampleCheckRange validates user-supplied bounds before searching.
func ExampleCheckRange() {
	xs := []int16{1, 2, 3}
	if err := breaks.CheckRange(len(xs), 2, 7); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// error: breaks: range must satisfy 0 <= start < end <= length: got [2, 7) over length 3
}

// ExampleRuns lists every run of a sorted sequence.
func ExampleRuns() {
	xs := []int16{0, 0, 0, 1, 4, 4}
	for _, r := range breaks.Runs(xs) {
		fmt.Printf("value=%d [%d,%d) len=%d\n", r.Value, r.Start, r.End, r.Len())
	}
	// Output:
	// value=0 [0,3) len=3
	// value=1 [3,4) len=1
	// value=4 [4,6) len=2
}
