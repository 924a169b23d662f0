// Package logging builds the application logger.
//
// The terminal belongs to the UI, so records go to a file when one is
// configured and are discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured
const DefaultLevel = zerolog.DebugLevel

// Open returns a logger writing JSON lines to path at the given level, and a
// function closing the file. An empty path yields a no-op logger.
func Open(path, level string) (zerolog.Logger, func() error, error) {
	if path == "" {
		return zerolog.Nop(), func() error { return nil }, nil
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	//nolint:gosec // path comes from the user's own flag
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(file, lvl), file.Close, nil
}

// New returns a logger writing to w
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// ParseLevel accepts debug, info, warn or error; empty means DefaultLevel
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return DefaultLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
	}
}

//nolint:gochecknoinits // field format shared by every logger
func init() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
}
