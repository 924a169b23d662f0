// Package main is the entry point for the recreator application.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/event-recreator/internal/config"
	"github.com/joe/event-recreator/internal/logging"
	"github.com/joe/event-recreator/internal/tui"
	"github.com/joe/event-recreator/internal/tui/shared"
)

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shared.SetASCII(cfg.ASCII)

	// Create and run TUI
	model := tui.NewAppModel(cfg, tui.WithLogger(logger))

	// Only use alt screen if stdout is a TTY
	var opts []tea.ProgramOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	logger.Info().Dur("delay", cfg.Delay).Bool("notify", cfg.Notify).Msg("starting")

	_, err = p.Run()

	model.Close()
	_ = closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
