// Package panics turns a panic in a command's main goroutine into a logged,
// clean exit.
package panics

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/katalvlaran/runbreak/internal/logger"
)

// exit is replaced in tests.
var exit = os.Exit

// HandlePanic recovers a panic, logs it with its stack at critical level,
// closes the backend and exits with status 1. Use it as
// `defer panics.HandlePanic(log, backend)` at the top of main.
func HandlePanic(log *logger.Logger, backend *logger.Backend) {
	err := recover()
	if err == nil {
		return
	}

	log.Criticalf("Fatal error: %+v", err)
	log.Criticalf("Stack trace: %s", debug.Stack())
	if backend != nil {
		backend.Close()
	}
	fmt.Fprintf(os.Stderr, "Fatal error: %+v\n", err)
	exit(1)
}
