package imagefile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kr/fs"
)

// FileSystem is the read-only view of a photo source. Local disk, SFTP
// servers and the in-memory test double implement it.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
	Stat(name string) (os.FileInfo, error)
	// Walk returns a walker over the tree rooted at root, in lexical order
	Walk(root string) *fs.Walker
	// Join joins path elements with the separator of this file system
	Join(elem ...string) string
}

// LocalFileSystem reads photos from the local disk
type LocalFileSystem struct{}

// NewLocalFileSystem creates a LocalFileSystem
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Open opens a file for reading
func (l *LocalFileSystem) Open(name string) (io.ReadCloser, error) {
	file, err := os.Open(name) //nolint:gosec // Opening user-chosen photos is the point
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}

	return file, nil
}

// Stat returns file information
func (l *LocalFileSystem) Stat(name string) (os.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}

	return info, nil
}

// Walk walks the local tree rooted at root
func (l *LocalFileSystem) Walk(root string) *fs.Walker {
	return fs.Walk(root)
}

// Join joins path elements using the OS separator
func (l *LocalFileSystem) Join(elem ...string) string {
	return filepath.Join(elem...)
}
