package shared

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/joe/event-recreator/internal/clipboard"
	"github.com/joe/event-recreator/internal/picker"
	"github.com/joe/event-recreator/internal/preview"
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/pkg/imagefile"
)

// PhotoLoader reads photo specs into images
type PhotoLoader interface {
	Load(ctx context.Context, specs ...string) imagefile.Batch
}

// Session bundles what the screens share for one run of the program.
// Flow is only touched from the update loop; the rest is safe to use
// from commands.
type Session struct {
	Ctx      context.Context
	Flow     *recreate.Flow
	Loader   PhotoLoader
	Previews *preview.Registry
	Picker   picker.Picker
	Copier   clipboard.Copier
	Log      zerolog.Logger
}

// LoadCmd loads specs in the background and registers a preview for every
// image found
func (s *Session) LoadCmd(field Field, specs ...string) tea.Cmd {
	if len(specs) == 0 {
		return nil
	}

	ctx := s.Ctx
	loader := s.Loader
	previews := s.Previews
	log := s.Log
	epoch := s.Flow.Epoch()

	return func() tea.Msg {
		batch := loader.Load(ctx, specs...)

		images := make([]recreate.UploadedImage, 0, len(batch.Images))
		for _, img := range batch.Images {
			images = append(images, recreate.UploadedImage{
				Image:   img,
				Preview: previews.Register(img),
			})
		}

		for _, skipped := range batch.Skipped {
			log.Debug().Str("field", field.String()).Str("path", skipped).Msg("skipping non-image file")
		}
		for _, err := range batch.Failures {
			log.Warn().Err(err).Str("field", field.String()).Msg("photo load failed")
		}

		return ImagesLoadedMsg{Field: field, Images: images, Batch: batch, Epoch: epoch}
	}
}

// PickCmd opens the native file dialog for field
func (s *Session) PickCmd(field Field) tea.Cmd {
	ctx := s.Ctx
	pick := s.Picker

	return func() tea.Msg {
		if field == FieldSubject {
			path, err := pick.PickSubject(ctx)
			if err != nil {
				return PickedMsg{Field: field, Err: err}
			}

			return PickedMsg{Field: field, Paths: []string{path}}
		}

		paths, err := pick.PickEvents(ctx)

		return PickedMsg{Field: field, Paths: paths, Err: err}
	}
}

// CopyCmd copies text to the clipboard
func (s *Session) CopyCmd(text string) tea.Cmd {
	copier := s.Copier

	return func() tea.Msg {
		return CopiedMsg{Err: copier.Copy(text)}
	}
}

// ReleaseImage forgets the preview of an image that left the session
func (s *Session) ReleaseImage(img recreate.UploadedImage) {
	if s.Previews == nil || img.Preview == "" {
		return
	}

	if !s.Previews.Release(img.Preview) {
		s.Log.Debug().Str("ref", img.Preview).Msg("preview already released")
	}
}

// PickCanceled reports whether err only means the dialog was dismissed
func PickCanceled(err error) bool {
	return errors.Is(err, picker.ErrCanceled)
}
