package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	assert.Zero(t, buf.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered periodic table")

	assert.Contains(t, buf.String(), "Rendered periodic table (")
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	require.Same(t, custom, loggerFromContext(ctx))
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}

	h.OnLookup(26, true)
	assert.Zero(t, buf.Len(), "lookups are too frequent to log")

	h.OnSynthesize(119, "Uue")
	assert.Contains(t, buf.String(), "Synthesized element")
	assert.Contains(t, buf.String(), "Uue")

	buf.Reset()
	h.OnLoad("embedded", 118, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "Loaded dataset")

	buf.Reset()
	h.OnLoad("bad.toml", 0, time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), "Dataset load failed")

	buf.Reset()
	h.OnRenderComplete(context.Background(), "svg", 1024, time.Second, nil)
	assert.Contains(t, buf.String(), "Rendered")
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dir, err := cacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".cache", appName), dir)

	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err = cacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/custom-cache", appName), dir)
}
