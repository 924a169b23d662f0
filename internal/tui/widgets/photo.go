package widgets

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/event-recreator/internal/preview"
	"github.com/joe/event-recreator/internal/recreate"
	"github.com/joe/event-recreator/internal/tui/shared"
)

// VisibleEventTiles is how many event photos the strip shows before "+N"
const VisibleEventTiles = 2

// NewSubjectWidget creates a widget showing the subject photo tile and its
// caption, or a hint when no photo has been chosen.
func NewSubjectWidget(previews *preview.Registry, subject recreate.UploadedImage, ok bool) func() string {
	return func() string {
		if !ok {
			return shared.RenderDim("No photo yet. Type a path, paste or drop a file, or press ctrl+o")
		}

		return renderTile(previews, subject, true)
	}
}

// NewPhotoStripWidget creates a widget showing the first event photo tiles,
// a "+N" marker for the rest and the photo count.
func NewPhotoStripWidget(previews *preview.Registry, events []recreate.UploadedImage) func() string {
	return func() string {
		if len(events) == 0 {
			return shared.RenderDim("No event photos yet. Add files, folders or globs like ~/party/**/*.jpg")
		}

		tiles := make([]string, 0, VisibleEventTiles+1)
		for i := 0; i < len(events) && i < VisibleEventTiles; i++ {
			tiles = append(tiles, renderTile(previews, events[i], false))
		}

		if rest := len(events) - VisibleEventTiles; rest > 0 {
			more := lipgloss.NewStyle().
				Foreground(shared.HighlightColor()).
				Bold(true).
				Padding(preview.DefaultTileRows/2, 2). //nolint:mnd // Centre the marker beside the tiles
				Render(fmtMore(rest))
			tiles = append(tiles, more)
		}

		strip := lipgloss.JoinHorizontal(lipgloss.Top, spaced(tiles)...)

		return strip + "\n" + shared.RenderSubtitle(shared.PhotoCountLabel(len(events)))
	}
}

func renderTile(previews *preview.Registry, img recreate.UploadedImage, withCaption bool) string {
	p, ok := previews.Lookup(img.Preview)
	if !ok {
		return shared.RenderDim(img.Image.Name)
	}

	name := shared.Truncate(p.Name, preview.DefaultTileCols)
	if !withCaption {
		return p.View() + "\n" + shared.RenderDim(name)
	}

	caption := p.Caption()
	if img.Image.Size > 0 {
		caption += " · " + shared.FormatBytes(img.Image.Size)
	}

	return p.View() + "\n" + shared.RenderDim(shared.Truncate(caption, shared.MinContentWidth))
}

func spaced(tiles []string) []string {
	out := make([]string, 0, len(tiles)*2)
	for i, tile := range tiles {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, tile)
	}

	return out
}

func fmtMore(n int) string {
	return "+" + strconv.Itoa(n)
}
