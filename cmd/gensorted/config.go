package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/katalvlaran/runbreak/column"
	"github.com/katalvlaran/runbreak/gen"
	"github.com/katalvlaran/runbreak/internal/logger"
	"github.com/pkg/errors"
)

const (
	defaultFile     = "/tmp/sorted_xs.parquet"
	defaultCount    = 1_000_000
	defaultDistinct = 12
)

type configFlags struct {
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
	File        string `short:"f" long:"file" description:"Parquet file to write"`
	Count       int    `short:"n" long:"count" description:"Number of values to generate"`
	Distinct    int    `long:"distinct" description:"Values are drawn from [0, distinct)"`
	Seed        int64  `long:"seed" description:"Random seed (0 selects the default seed)"`
	Codec       string `long:"codec" description:"Compression codec {none, snappy, gzip, brotli, zstd, lz4}"`
	LogLevel    string `short:"d" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write the log to this file (rotated)"`
}

// parseConfig parses command-line arguments (without the program name).
func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{
		File:     defaultFile,
		Count:    defaultCount,
		Distinct: defaultDistinct,
		Codec:    column.DefaultCodec,
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
	if cfg.Count < 0 {
		return nil, errors.Errorf("--count must be non-negative, got %d", cfg.Count)
	}
	if cfg.Distinct < 1 || cfg.Distinct > gen.MaxDistinct {
		return nil, errors.Errorf("--distinct must be in [1, %d], got %d", gen.MaxDistinct, cfg.Distinct)
	}
	if _, ok := logger.LevelFromString(cfg.LogLevel); !ok {
		return nil, errors.Errorf("invalid --loglevel %q", cfg.LogLevel)
	}

	return cfg, nil
}
