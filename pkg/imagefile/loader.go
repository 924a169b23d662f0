package imagefile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	apperrors "github.com/joe/event-recreator/pkg/errors"
)

// DefaultMaxBytes caps the size of a single photo
const DefaultMaxBytes = 64 << 20

// Exported errors.
var (
	ErrTooLarge   = errors.New("file is too large")
	ErrBadPattern = errors.New("invalid glob pattern")
	ErrNoMatches  = errors.New("no files match")
)

// Dialer opens the file system behind a remote location. The returned
// function closes it.
type Dialer func(loc Location) (FileSystem, func() error, error)

// Batch is the outcome of one Load call
type Batch struct {
	// Images holds the accepted image files in spec order, then walk order
	Images []Image
	// Skipped lists the sources that were read but are not images
	Skipped []string
	// Failures holds one actionable error per spec or file that could not be read
	Failures []error
}

// Loader resolves photo specs and reads the files they name
type Loader struct {
	local    FileSystem
	dial     Dialer
	homeDir  func() (string, error)
	maxBytes int64
	enricher apperrors.Enricher
}

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithLocalFileSystem replaces the local disk
func WithLocalFileSystem(fsys FileSystem) LoaderOption {
	return func(l *Loader) {
		l.local = fsys
	}
}

// WithDialer replaces the SFTP dialer
func WithDialer(dial Dialer) LoaderOption {
	return func(l *Loader) {
		l.dial = dial
	}
}

// WithHomeDir replaces the lookup used to expand ~
func WithHomeDir(homeDir func() (string, error)) LoaderOption {
	return func(l *Loader) {
		l.homeDir = homeDir
	}
}

// WithMaxBytes sets the size limit for a single file
func WithMaxBytes(n int64) LoaderOption {
	return func(l *Loader) {
		l.maxBytes = n
	}
}

// NewLoader creates a loader for the local disk and SFTP servers
func NewLoader(opts ...LoaderOption) *Loader {
	loader := &Loader{
		local:    NewLocalFileSystem(),
		dial:     DialSFTP,
		homeDir:  os.UserHomeDir,
		maxBytes: DefaultMaxBytes,
		enricher: apperrors.NewEnricher(),
	}
	for _, opt := range opts {
		opt(loader)
	}

	return loader
}

// Load resolves every spec and reads the files. It never fails as a whole:
// per-spec problems are reported in Batch.Failures. Remote connections are
// closed before Load returns.
func (l *Loader) Load(ctx context.Context, specs ...string) Batch {
	var batch Batch

	remotes := make(map[string]FileSystem)
	var closers []func() error
	defer func() {
		for _, closeFn := range closers {
			_ = closeFn()
		}
	}()

	for _, spec := range specs {
		if err := ctx.Err(); err != nil {
			batch.Failures = append(batch.Failures, err)
			return batch
		}

		loc, err := ParseLocation(l.expandHome(strings.TrimSpace(spec)))
		if err != nil {
			batch.Failures = append(batch.Failures, l.enricher.Enrich(err, spec))
			continue
		}

		fsys := l.local
		if loc.IsRemote {
			fsys = remotes[loc.Key()]
			if fsys == nil {
				remote, closeFn, err := l.dial(loc)
				if err != nil {
					batch.Failures = append(batch.Failures, l.enricher.Enrich(err, spec))
					continue
				}
				remotes[loc.Key()] = remote
				closers = append(closers, closeFn)
				fsys = remote
			}
		}

		names, err := Resolve(fsys, loc.Path)
		if err != nil {
			batch.Failures = append(batch.Failures, l.enricher.Enrich(err, spec))
			continue
		}

		for _, name := range names {
			if err := ctx.Err(); err != nil {
				batch.Failures = append(batch.Failures, err)
				return batch
			}

			img, err := l.read(fsys, name, loc.Sub(name).String())
			if err != nil {
				batch.Failures = append(batch.Failures, l.enricher.Enrich(err, name))
				continue
			}

			if !img.IsImage() {
				batch.Skipped = append(batch.Skipped, img.Source)
				continue
			}

			batch.Images = append(batch.Images, img)
		}
	}

	return batch
}

// Resolve expands p into the regular files it names on fsys: p itself, the
// files below a directory, or the files matching a doublestar glob. Glob
// matching is case-insensitive. Hidden entries are skipped while walking.
func Resolve(fsys FileSystem, p string) ([]string, error) {
	if isGlob(p) {
		return resolveGlob(fsys, p)
	}

	info, err := fsys.Stat(p)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return []string{p}, nil
	}

	return walkFiles(fsys, p, func(string) bool { return true })
}

func resolveGlob(fsys FileSystem, p string) ([]string, error) {
	base, pattern := doublestar.SplitPattern(filepath.ToSlash(p))
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %s", ErrBadPattern, p)
	}

	names, err := walkFiles(fsys, base, func(rel string) bool {
		matched, err := doublestar.Match(pattern, strings.ToLower(rel))
		return err == nil && matched
	})
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoMatches, p)
	}

	return names, nil
}

func walkFiles(fsys FileSystem, root string, include func(rel string) bool) ([]string, error) {
	var names []string

	rootSlash := strings.TrimSuffix(filepath.ToSlash(root), "/")
	walker := fsys.Walk(root)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			if walker.Path() == root {
				return nil, err
			}
			continue
		}

		current := walker.Path()
		if current == root {
			continue
		}

		info := walker.Stat()
		if strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				walker.SkipDir()
			}
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		if include(relativeTo(rootSlash, filepath.ToSlash(current))) {
			names = append(names, current)
		}
	}

	return names, nil
}

func relativeTo(root, name string) string {
	if root == "." || root == "" {
		return strings.TrimPrefix(name, "./")
	}

	if root == "/" {
		return strings.TrimPrefix(name, "/")
	}

	return strings.TrimPrefix(name, root+"/")
}

func isGlob(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

func (l *Loader) read(fsys FileSystem, name, source string) (Image, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return Image{}, err
	}

	if info.Size() > l.maxBytes {
		return Image{}, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, name, info.Size(), l.maxBytes)
	}

	file, err := fsys.Open(name)
	if err != nil {
		return Image{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, l.maxBytes+1))
	if err != nil {
		return Image{}, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if int64(len(data)) > l.maxBytes {
		return Image{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, name, l.maxBytes)
	}

	base := filepath.Base(filepath.FromSlash(name))

	return Image{
		Name:        base,
		Source:      source,
		ContentType: DetectContentType(base, data),
		Size:        int64(len(data)),
		ModTime:     info.ModTime(),
		Data:        data,
	}, nil
}

func (l *Loader) expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}

	home, err := l.homeDir()
	if err != nil {
		return p
	}

	return filepath.Join(home, p[1:])
}
