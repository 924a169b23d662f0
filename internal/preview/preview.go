// Package preview turns loaded photos into small terminal thumbnails.
//
// A Registry hands out opaque refs for registered photos. The input screen
// shows a preview by looking its ref up, and the ref is released when the
// photo leaves the session.
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/evanoberholster/imagemeta"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"github.com/joe/event-recreator/pkg/imagefile"
)

// Exported constants.
const (
	RefPrefix = "preview:"

	DefaultTileCols = 16
	DefaultTileRows = 8

	// MaxPixels bounds the decoded size of a photo
	MaxPixels = 80_000_000
)

// ErrTooManyPixels is returned for photos whose dimensions exceed MaxPixels
var ErrTooManyPixels = errors.New("image dimensions too large to preview")

// Preview is what the UI knows about one registered photo
type Preview struct {
	Ref  string
	Name string
	// Width and Height are the source dimensions, zero when undecodable
	Width  int
	Height int
	// Tile holds the rendered rows of the thumbnail
	Tile    []string
	Decoded bool
	Taken   time.Time
	Camera  string
}

// Caption is a one-line description for the tile
func (p Preview) Caption() string {
	parts := []string{p.Name}
	if p.Decoded {
		parts = append(parts, fmt.Sprintf("%d×%d", p.Width, p.Height))
	}
	if !p.Taken.IsZero() {
		parts = append(parts, p.Taken.Format("2006-01-02"))
	}
	if p.Camera != "" {
		parts = append(parts, p.Camera)
	}

	return strings.Join(parts, " · ")
}

// View renders the tile rows
func (p Preview) View() string {
	return strings.Join(p.Tile, "\n")
}

// Option configures a Registry
type Option func(*Registry)

// WithTileSize sets the thumbnail box in terminal cells
func WithTileSize(cols, rows int) Option {
	return func(r *Registry) {
		if cols > 0 {
			r.cols = cols
		}
		if rows > 0 {
			r.rows = rows
		}
	}
}

// WithLogger sets the logger used for decode problems
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = logger
	}
}

// Registry owns the previews of the photos in the current session. It is
// safe for use from multiple goroutines: previews are built inside load
// commands and released from the update loop.
type Registry struct {
	mu      sync.Mutex
	entries map[string]Preview

	cols int
	rows int
	log  zerolog.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Preview),
		cols:    DefaultTileCols,
		rows:    DefaultTileRows,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register builds the preview for img and returns its ref. Photos that
// cannot be decoded still get a ref, rendered as a placeholder tile.
func (r *Registry) Register(img imagefile.Image) string {
	ref := RefPrefix + uuid.NewString()
	p := Preview{Ref: ref, Name: img.Name}

	decoded, err := decode(img.Data)
	if err != nil {
		r.log.Debug().Err(err).Str("path", img.Source).Msg("preview decode failed")
		p.Tile = placeholder(r.cols, r.rows, img.Name)
	} else {
		bounds := decoded.Bounds()
		p.Width, p.Height = bounds.Dx(), bounds.Dy()
		p.Decoded = true
		p.Tile = render(thumbnail(decoded, r.cols, r.rows*2))
	}

	p.Taken, p.Camera = readExif(img.Data)

	r.mu.Lock()
	r.entries[ref] = p
	r.mu.Unlock()

	return ref
}

// Lookup returns the preview for ref
func (r *Registry) Lookup(ref string) (Preview, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.entries[ref]

	return p, ok
}

// Release forgets ref. It reports whether the ref was live.
func (r *Registry) Release(ref string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[ref]; !ok {
		return false
	}
	delete(r.entries, ref)

	return true
}

// Len returns the number of live previews
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

func decode(data []byte) (image.Image, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	if cfg.Width*cfg.Height > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// thumbnailSize fits width x height inside maxW x maxH keeping the aspect
// ratio. Neither side drops below one pixel.
func thumbnailSize(width, height, maxW, maxH int) (int, int) {
	if width <= 0 || height <= 0 {
		return 1, 1
	}

	newW, newH := maxW, height*maxW/width
	if newH > maxH {
		newW, newH = width*maxH/height, maxH
	}

	return max(newW, 1), max(newH, 1)
}

func thumbnail(src image.Image, maxW, maxH int) *image.RGBA {
	bounds := src.Bounds()
	w, h := thumbnailSize(bounds.Dx(), bounds.Dy(), maxW, maxH)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	return dst
}

// render draws two pixel rows per text row using the upper half block:
// the foreground paints the top pixel and the background the bottom one.
func render(img *image.RGBA) []string {
	bounds := img.Bounds()
	rows := make([]string, 0, (bounds.Dy()+1)/2)

	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var line strings.Builder
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < bounds.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			line.WriteString(style.Render("▀"))
		}
		rows = append(rows, line.String())
	}

	return rows
}

func hexColor(c color.Color) lipgloss.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA) //nolint:forcetypeassert // RGBAModel always returns RGBA

	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B))
}

func placeholder(cols, rows int, name string) []string {
	label := "IMG"
	if dot := strings.LastIndex(name, "."); dot >= 0 && dot < len(name)-1 {
		label = strings.ToUpper(name[dot+1:])
	}
	if len(label) > cols {
		label = label[:cols]
	}

	tile := make([]string, rows)
	for i := range tile {
		tile[i] = strings.Repeat("░", cols)
	}

	pad := (cols - len(label)) / 2
	tile[rows/2] = strings.Repeat("░", pad) + label + strings.Repeat("░", cols-pad-len(label))

	return tile
}

// readExif returns the capture time and camera from EXIF data, when present
func readExif(data []byte) (time.Time, string) {
	meta, err := imagemeta.Decode(bytes.NewReader(data))
	if err != nil {
		return time.Time{}, ""
	}

	camera := strings.TrimSpace(strings.TrimSpace(meta.Make) + " " + strings.TrimSpace(meta.Model))

	return meta.DateTimeOriginal(), camera
}
