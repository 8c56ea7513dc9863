package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/katalvlaran/runbreak/breaks"
	"github.com/katalvlaran/runbreak/column"
	"github.com/katalvlaran/runbreak/internal/logger"
	"github.com/pkg/errors"
)

// run loads cfg.File, searches the configured range and writes the report
// to out. Nothing is written to out unless every step succeeds.
func run(cfg *configFlags, out io.Writer) error {
	info, err := column.Inspect(cfg.File)
	if err != nil {
		return err
	}
	log.Debugf("Found %d columns %v in %d row groups, %d rows", len(info.Fields), info.Fields, info.RowGroups, info.Rows)

	onEnd := logger.LogAndMeasureExecutionTime(log, "load")
	xs, err := column.Load(cfg.File)
	onEnd()
	if err != nil {
		return err
	}
	log.Infof("Loaded %d values from %s", len(xs), cfg.File)

	start, end := cfg.Start, cfg.End
	if end == 0 {
		end = len(xs)
	}
	if err := breaks.CheckRange(len(xs), start, end); err != nil {
		return errors.Wrapf(err, "%s", cfg.File)
	}
	if cfg.Verify && !breaks.IsNonDecreasing(xs, start, end) {
		return errors.Errorf("%s: values in [%d, %d) are not sorted", cfg.File, start, end)
	}

	idx := breaks.FindBreak(xs, start, end)
	if cfg.Repeat > 0 {
		measure(xs, start, end, cfg.Repeat)
	}

	var buf bytes.Buffer
	prev := "-"
	if idx > 0 && xs[idx-1] != xs[idx] {
		prev = fmt.Sprint(xs[idx-1])
	}
	fmt.Fprintf(&buf, "break at index %d: %s -> %d\n", idx, prev, xs[idx])

	if cfg.All || cfg.Stats {
		runs := breaks.Runs(xs[start:end])
		for i := range runs {
			runs[i].Start += start
			runs[i].End += start
		}
		if log.Level() <= logger.LevelTrace {
			log.Tracef("runs: %s", spew.Sdump(runs))
		}
		if cfg.All {
			for i, r := range runs {
				fmt.Fprintf(&buf, "run %d: value=%d start=%d end=%d len=%d\n", i, r.Value, r.Start, r.End, r.Len())
			}
		}
		if cfg.Stats {
			s, err := breaks.Summarize(runs)
			if err != nil {
				return err
			}
			fmt.Fprintf(&buf, "runs=%d elements=%d first=%d last=%d min_len=%d max_len=%d mean_len=%.2f stddev_len=%.2f\n",
				s.Runs, s.Elements, s.First, s.Last, s.MinLen, s.MaxLen, s.MeanLen, s.StdDevLen)
		}
	}

	_, err = out.Write(buf.Bytes())
	return err
}

// sink keeps the repeated searches from being optimized away.
var sink int

// measure repeats the search n times and logs the mean duration.
func measure(xs []int16, start, end, n int) {
	t0 := time.Now()
	for i := 0; i < n; i++ {
		sink = breaks.FindBreak(xs, start, end)
	}
	elapsed := time.Since(t0)
	log.Infof("%d searches took %s (%s per search)", n, elapsed, elapsed/time.Duration(n))
}
