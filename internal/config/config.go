// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexflint/go-arg"

	"github.com/joe/event-recreator/internal/logging"
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/pkg/imagefile"
)

// Exported constants.
const (
	DefaultDelay    = recreate.DefaultGenerationDelay
	DefaultLogLevel = LogLevel("debug")
)

// ErrInvalidDelay is returned for a non-positive --delay
var ErrInvalidDelay = errors.New("delay must be greater than zero")

// LogLevel is the minimum level written to the log file
type LogLevel string

// String returns the level name
func (l LogLevel) String() string {
	return string(l)
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (l *LogLevel) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if _, err := logging.ParseLevel(name); err != nil {
		return err
	}
	*l = LogLevel(name)

	return nil
}

// Config holds the application configuration
type Config struct {
	Photo            string        `arg:"-p,--photo" help:"Your photo to preload (path or sftp:// URL)"`
	Events           []string      `arg:"-e,--event,separate" help:"Event photos to preload: file, directory, glob or sftp:// URL (repeatable)"`
	EventDescription string        `arg:"-m,--description" help:"Event description to preload"`
	Delay            time.Duration `arg:"--delay" default:"3s" help:"How long the simulated generation takes"`
	LogFile          string        `arg:"--log-file,env:RECREATOR_LOG" help:"Write a debug log to this file"`
	LogLevel         LogLevel      `arg:"--log-level" default:"debug" help:"Log level: debug|info|warn|error"`
	Notify           bool          `arg:"--notify" help:"Send a desktop notification when the script is ready"`
	NoPicker         bool          `arg:"--no-picker" help:"Disable native file dialogs"`
	SampleHistory    bool          `arg:"--sample-history" default:"true" help:"Show sample sessions in the sidebar"`
	ASCII            bool          `arg:"--ascii" help:"Use ASCII symbols instead of Unicode"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Recreate a special event from your photos with a (simulated) AI script, right in the terminal"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "recreator 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Delay:         DefaultDelay,
		LogLevel:      DefaultLogLevel,
		SampleHistory: true,
	}

	arg.MustParse(cfg)

	return PostProcessConfig(cfg)
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Delay <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDelay, cfg.Delay)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	cfg.Photo = strings.TrimSpace(cfg.Photo)

	events := cfg.Events[:0]
	for _, spec := range cfg.Events {
		if spec = strings.TrimSpace(spec); spec != "" {
			events = append(events, spec)
		}
	}
	cfg.Events = events

	if err := cfg.ValidateSpecs(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateSpecs checks that every sftp:// photo spec is well formed. Local
// paths are checked when they are loaded, so problems show up next to the
// field instead of aborting startup.
func (cfg *Config) ValidateSpecs() error {
	specs := append([]string{cfg.Photo}, cfg.Events...)
	for _, spec := range specs {
		if !strings.HasPrefix(spec, "sftp://") {
			continue
		}

		if _, err := imagefile.ParseLocation(spec); err != nil {
			return fmt.Errorf("invalid photo URL %s: %w", spec, err)
		}
	}

	return nil
}

// Preloaded reports whether any input was given on the command line
func (cfg *Config) Preloaded() bool {
	return cfg.Photo != "" || len(cfg.Events) > 0 || cfg.EventDescription != ""
}
