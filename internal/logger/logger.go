// ABOUTME: Structured logging configuration using log/slog
// ABOUTME: Init targets a writer (stderr for commands); InitFile targets debug.log for the TUI

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file written by InitFile inside the config directory
const FileName = "debug.log"

// Options selects level, format and destination
type Options struct {
	Level  string // debug, info, warn, error (default: info)
	Format string // text, json (default: text)
	Writer io.Writer
}

// New builds a logger from opts. A nil Writer discards output.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = io.Discard
	}

	handlerOpts := &slog.HandlerOptions{
		Level: ParseLevel(opts.Level),
	}

	var handler slog.Handler
	if strings.ToLower(opts.Format) == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// Init configures the default slog logger and returns it
func Init(opts Options) *slog.Logger {
	l := New(opts)
	slog.SetDefault(l)
	return l
}

// InitFile points the default logger at configDir/debug.log so log lines do
// not interfere with the terminal display. The returned close func releases
// the file. An empty configDir disables logging.
func InitFile(configDir string, opts Options) (*slog.Logger, func() error, error) {
	if configDir == "" {
		opts.Writer = io.Discard
		return Init(opts), func() error { return nil }, nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(configDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	opts.Writer = f
	return Init(opts), f.Close, nil
}

// ParseLevel converts a string log level to slog.Level
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
