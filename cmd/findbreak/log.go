package main

import (
	"os"

	"github.com/katalvlaran/runbreak/internal/logger"
)

var (
	backendLog = logger.NewBackend()
	log        = backendLog.Logger("FNDB")
)

// initLog attaches stderr and the optional log file to the backend and sets
// the requested level.
func initLog(level, logFile string) error {
	lvl, _ := logger.LevelFromString(level)
	log.SetLevel(lvl)

	backendLog.AddLogWriter(os.Stderr, logger.LevelTrace)
	if logFile != "" {
		return backendLog.AddLogFile(logFile, logger.LevelTrace)
	}
	return nil
}
