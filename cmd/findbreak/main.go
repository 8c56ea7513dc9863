// Command findbreak loads a sorted int16 column from a Parquet file and
// prints the first index in a range where the value changes.
//
// Usage:
//
//	findbreak [-f /tmp/sorted_xs.parquet] [--start N] [--end M] [-a] [--stats] [--verify] [--repeat K]
//
// Output is one diagnostic line:
//
//	break at index 2: 1 -> 2
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/katalvlaran/runbreak/internal/panics"
	"github.com/katalvlaran/runbreak/version"
	"github.com/pkg/errors"
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

	if err := initLog(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing log: %s\n", err)
		os.Exit(1)
	}
	log.Debugf("Version %s", version.Version())

	if err := run(cfg, os.Stdout); err != nil {
		log.Debugf("%+v", err)
		backendLog.Close()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	backendLog.Close()
}
