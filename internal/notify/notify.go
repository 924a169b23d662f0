// Package notify sends a desktop notification when a script is ready.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// Title is the application name shown on notifications
const Title = "AI Event Recreator"

// Notifier announces finished scripts
type Notifier interface {
	ScriptReady(description string) error
}

// SendFunc delivers one notification
type SendFunc func(title, message, icon string) error

// Desktop is the beeep-backed Notifier
type Desktop struct {
	send SendFunc
	log  zerolog.Logger
}

// NewDesktop creates a Notifier that uses the platform notification service
func NewDesktop(logger zerolog.Logger) *Desktop {
	send := func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}

	return &Desktop{send: send, log: logger}
}

// NewDesktopWith creates a Desktop notifier with a custom sender
func NewDesktopWith(send SendFunc, logger zerolog.Logger) *Desktop {
	return &Desktop{send: send, log: logger}
}

// ScriptReady sends "<description> script is ready"
func (d *Desktop) ScriptReady(description string) error {
	message := Message(description)
	d.log.Debug().Str("message", message).Msg("sending notification")

	// empty icon lets beeep use the platform default
	if err := d.send(Title, message, ""); err != nil {
		d.log.Warn().Err(err).Msg("notification failed")
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// Message is the notification body for a description
func Message(description string) string {
	if description == "" {
		return "Your recreation script is ready"
	}

	return description + " script is ready"
}

// Nop is the Notifier used when notifications are off
type Nop struct{}

// ScriptReady does nothing
func (Nop) ScriptReady(string) error {
	return nil
}
