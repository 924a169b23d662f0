// Package picker opens the native file-open dialog for the photo fields.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

// Exported errors.
var (
	// ErrCanceled is returned when the user dismisses the dialog
	ErrCanceled = errors.New("file selection canceled")
	// ErrUnavailable is returned when dialogs are disabled
	ErrUnavailable = errors.New("file dialogs are disabled")
)

// ImagePatterns are the file patterns offered by the dialog filter
//
//nolint:gochecknoglobals // read-only filter list
var ImagePatterns = []string{
	"*.jpg", "*.jpeg", "*.png", "*.gif", "*.webp",
	"*.bmp", "*.tif", "*.tiff", "*.heic", "*.heif",
}

// Picker lets the user choose photo files
type Picker interface {
	PickSubject(ctx context.Context) (string, error)
	PickEvents(ctx context.Context) ([]string, error)
}

// Dialog is the zenity-backed Picker
type Dialog struct{}

// NewDialog creates a native dialog picker
func NewDialog() *Dialog {
	return &Dialog{}
}

// PickSubject asks for a single photo of the user
func (d *Dialog) PickSubject(ctx context.Context) (string, error) {
	selected, err := zenity.SelectFile(
		zenity.Context(ctx),
		zenity.Title("Select your photo"),
		imageFilter(),
	)
	if err != nil {
		return "", translate(err)
	}

	return selected, nil
}

// PickEvents asks for any number of event photos
func (d *Dialog) PickEvents(ctx context.Context) ([]string, error) {
	selected, err := zenity.SelectFileMultiple(
		zenity.Context(ctx),
		zenity.Title("Select event photos"),
		imageFilter(),
	)
	if err != nil {
		return nil, translate(err)
	}

	return selected, nil
}

func imageFilter() zenity.FileFilters {
	return zenity.FileFilters{
		{Name: "Images", Patterns: ImagePatterns, CaseFold: true},
	}
}

func translate(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return ErrCanceled
	}

	return fmt.Errorf("file dialog failed: %w", err)
}

// Disabled is the Picker used when dialogs are turned off
type Disabled struct{}

// PickSubject always reports ErrUnavailable
func (Disabled) PickSubject(context.Context) (string, error) {
	return "", ErrUnavailable
}

// PickEvents always reports ErrUnavailable
func (Disabled) PickEvents(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}
