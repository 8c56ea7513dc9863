package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/katalvlaran/runbreak/internal/logger"
	"github.com/pkg/errors"
)

const defaultFile = "/tmp/sorted_xs.parquet"

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	File        string `short:"f" long:"file" description:"Parquet file holding one sorted int16 column"`
	Start       int    `long:"start" description:"First index of the search range"`
	End         int    `long:"end" description:"End of the search range, exclusive (0 means the sequence length)"`
	All         bool   `short:"a" long:"all" description:"Also print every run in the range"`
	Stats       bool   `long:"stats" description:"Also print run-length statistics for the range"`
	Verify      bool   `long:"verify" description:"Check the range is sorted before searching"`
	Repeat      int    `long:"repeat" description:"Repeat the search N times and log the mean duration"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write the log to this file (rotated)"`
}

// parseConfig parses command-line arguments (without the program name)
// and validates them. Help requests surface as a *flags.Error of type
// flags.ErrHelp.
func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{
		File:     defaultFile,
		LogLevel: "info",
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", rest)
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if cfg.File == "" {
		return nil, errors.New("--file must not be empty")
	}
	if cfg.Start < 0 {
		return nil, errors.Errorf("--start must be non-negative, got %d", cfg.Start)
	}
	if cfg.End < 0 {
		return nil, errors.Errorf("--end must be non-negative, got %d", cfg.End)
	}
	if cfg.Repeat < 0 {
		return nil, errors.Errorf("--repeat must be non-negative, got %d", cfg.Repeat)
	}
	if _, ok := logger.LevelFromString(cfg.LogLevel); !ok {
		return nil, errors.Errorf("invalid --loglevel %q", cfg.LogLevel)
	}

	return cfg, nil
}
