// Package logger configures the process-wide slog logger. Records go to a
// size-rotated file by default, or to stderr when requested.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/tanss/internal/config"
	"github.com/ayoisaiah/tanss/internal/osutil"
)

// Options controls where log records are written.
type Options struct {
	// Path of the log file. Ignored when Stderr is set.
	Path string
	// Stderr sends records to the terminal instead of the log file.
	Stderr bool
}

// ParseLevel converts a config level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, errUnknownLevel.Fmt(s)
}

// New builds a tint-formatted logger from cfg and installs it as the slog
// default. The returned closer releases the log file and must be called on
// exit.
func New(cfg config.LogConfig, opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)

	if opts.Stderr {
		w = os.Stderr
	} else {
		if err := os.MkdirAll(filepath.Dir(opts.Path), osutil.DirPermission); err != nil {
			return nil, nil, errLogDir.Wrap(err)
		}

		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			Compress:   true,
		}

		w, closer = lj, lj
	}

	l := slog.New(newHandler(w, level))
	slog.SetDefault(l)

	return l, closer, nil
}

func newHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}

			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}

	return false
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
