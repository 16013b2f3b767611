package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/tanss/internal/config"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseLevel("trace")
	assert.ErrorIs(t, err, errUnknownLevel)
}

func TestNewWritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "log", "tanss.log")

	l, closer, err := New(
		config.LogConfig{Level: "warn", MaxSizeMB: 1, MaxBackups: 1},
		Options{Path: path},
	)
	require.NoError(t, err)

	l.Info("hidden")
	slog.Warn("token expiring", slog.Int("percent", 8))
	slog.Error("refresh failed", slog.Any("error", errors.New("boom")))

	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(b)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "token expiring")
	assert.Contains(t, out, "percent=8")
	assert.Contains(t, out, "boom")
	assert.NotContains(t, out, "\x1b[", "file output must not be colourised")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"}, Options{Stderr: true})
	assert.ErrorIs(t, err, errUnknownLevel)
}

func TestHandlerPlainForBuffers(t *testing.T) {
	var buf bytes.Buffer

	l := slog.New(newHandler(&buf, slog.LevelDebug))
	l.Debug("lookup cached", "kind", "employees")

	assert.Contains(t, buf.String(), "lookup cached")
	assert.Contains(t, buf.String(), "kind=employees")
	assert.NotContains(t, buf.String(), "\x1b[")
}
