// Package logger is a small leveled logger for the runbreak commands.
//
// A Backend fans every line out to a set of writers, each with its own
// minimum level; file writers rotate through jrick/logrotate. Subsystem
// Loggers carry a short tag and their own level.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

const (
	defaultThresholdKB = 10 * 1000 // rotate after 10 MB
	defaultMaxRolls    = 3

	timeFormat = "2006-01-02 15:04:05.000"
)

type logWriter struct {
	io.WriteCloser
	level Level
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Backend is a logging backend. Subsystems created from the backend write to
// every writer whose level admits the message. Writes are serialized.
type Backend struct {
	mu      sync.Mutex
	writers []logWriter
	now     func() time.Time
}

// NewBackend creates a backend with no writers.
func NewBackend() *Backend {
	return &Backend{now: time.Now}
}

// AddLogWriter adds w as a destination for messages at logLevel or above.
// Close on the backend does not close w.
func (b *Backend) AddLogWriter(w io.Writer, logLevel Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.writers = append(b.writers, logWriter{WriteCloser: nopCloser{w}, level: logLevel})
}

// AddLogFile adds a rotating log file for messages at logLevel or above,
// creating its directory if needed.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	return b.AddLogFileWithCustomRotator(logFile, logLevel, defaultThresholdKB, defaultMaxRolls)
}

// AddLogFileWithCustomRotator is AddLogFile with explicit rotation settings.
func (b *Backend) AddLogFileWithCustomRotator(logFile string, logLevel Level, thresholdKB int64, maxRolls int) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, thresholdKB, false, maxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.writers = append(b.writers, logWriter{WriteCloser: r, level: logLevel})
	return nil
}

// Close closes every file writer. The backend must not be used afterwards.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, w := range b.writers {
		_ = w.Close()
	}
	b.writers = nil
}

// Logger returns a new logger for a particular subsystem. The tag is
// included in every line; the logger starts at LevelInfo.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{level: LevelInfo, tag: subsystemTag, b: b}
}

func (b *Backend) write(level Level, tag, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	line := fmt.Sprintf("%s [%s] %s: %s\n", b.now().Format(timeFormat), level, tag, msg)
	for _, w := range b.writers {
		if level >= w.level {
			_, _ = io.WriteString(w, line)
		}
	}
}
