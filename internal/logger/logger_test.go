package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedBackend() *Backend {
	b := NewBackend()
	b.now = func() time.Time { return time.Date(2024, 11, 16, 9, 30, 0, 0, time.UTC) }
	return b
}

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"trace": LevelTrace, "DBG": LevelDebug, "info": LevelInfo, "wrn": LevelWarn,
		"error": LevelError, "Critical": LevelCritical, "off": LevelOff,
	}
	for s, want := range cases {
		got, ok := LevelFromString(s)
		assert.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
	got, ok := LevelFromString("loud")
	assert.False(t, ok)
	assert.Equal(t, LevelInfo, got)
	assert.Equal(t, "OFF", Level(42).String())
}

func TestLogger_FormatAndFiltering(t *testing.T) {
	b := fixedBackend()
	var all, errs bytes.Buffer
	b.AddLogWriter(&all, LevelTrace)
	b.AddLogWriter(&errs, LevelError)

	log := b.Logger("FNDB")
	log.Debugf("hidden %d", 1) // below the default info level
	log.Infof("loaded %d values", 5)
	log.Errorf("bad %s", "range")

	assert.Equal(t,
		"2024-11-16 09:30:00.000 [INF] FNDB: loaded 5 values\n"+
			"2024-11-16 09:30:00.000 [ERR] FNDB: bad range\n",
		all.String())
	assert.Equal(t, "2024-11-16 09:30:00.000 [ERR] FNDB: bad range\n", errs.String())

	log.SetLevel(LevelTrace)
	log.Tracef("now visible")
	assert.Contains(t, all.String(), "[TRC] FNDB: now visible")
	assert.Equal(t, LevelTrace, log.Level())
	assert.Equal(t, "FNDB", log.Tag())
}

func TestBackend_AddLogFile(t *testing.T) {
	b := fixedBackend()
	path := filepath.Join(t.TempDir(), "logs", "findbreak.log")
	require.NoError(t, b.AddLogFile(path, LevelWarn))

	log := b.Logger("GENS")
	log.Infof("skipped")
	log.Warnf("kept")
	b.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-11-16 09:30:00.000 [WRN] GENS: kept\n", string(data))
}

func TestLogAndMeasureExecutionTime(t *testing.T) {
	b := fixedBackend()
	var buf bytes.Buffer
	b.AddLogWriter(&buf, LevelTrace)
	log := b.Logger("FNDB")
	log.SetLevel(LevelDebug)

	onEnd := LogAndMeasureExecutionTime(log, "load")
	onEnd()
	assert.Contains(t, buf.String(), "[DBG] FNDB: load start")
	assert.Contains(t, buf.String(), "[DBG] FNDB: load end. Took: ")
}
