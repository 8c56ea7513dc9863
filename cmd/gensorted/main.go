// Command gensorted writes a sorted int16 column to a Parquet file, the
// input findbreak expects.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/katalvlaran/runbreak/column"
	"github.com/katalvlaran/runbreak/gen"
	"github.com/katalvlaran/runbreak/internal/logger"
	"github.com/katalvlaran/runbreak/internal/panics"
	"github.com/katalvlaran/runbreak/version"
	"github.com/pkg/errors"
)

var (
	backendLog = logger.NewBackend()
	log        = backendLog.Logger("GENS")
)

func main() {
	defer panics.HandlePanic(log, backendLog)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Println(appName, "version", version.Version())
		return
	}

	lvl, _ := logger.LevelFromString(cfg.LogLevel)
	log.SetLevel(lvl)
	backendLog.AddLogWriter(os.Stderr, logger.LevelTrace)
	if cfg.LogFile != "" {
		if err := backendLog.AddLogFile(cfg.LogFile, logger.LevelTrace); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing log: %s\n", err)
			os.Exit(1)
		}
	}

	if err := generate(cfg); err != nil {
		log.Debugf("%+v", err)
		backendLog.Close()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	backendLog.Close()
}

// generate draws the sequence and writes it to cfg.File.
func generate(cfg *configFlags) error {
	xs, err := gen.SortedInt16(gen.NewRand(cfg.Seed), cfg.Count, cfg.Distinct)
	if err != nil {
		return err
	}

	onEnd := logger.LogAndMeasureExecutionTime(log, "write")
	err = column.Write(cfg.File, xs, column.WithCompression(cfg.Codec))
	onEnd()
	if err != nil {
		return err
	}

	st, err := os.Stat(cfg.File)
	if err != nil {
		return errors.Wrapf(err, "stat %s", cfg.File)
	}
	log.Infof("Wrote %d values over %d distinct values to %s (%d bytes, %s)",
		len(xs), cfg.Distinct, cfg.File, st.Size(), cfg.Codec)
	return nil
}
