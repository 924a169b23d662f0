package imagefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kr/fs"
)

// MemoryFileSystem is an in-memory FileSystem for tests. Paths use forward
// slashes; parent directories are implied by the files added.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]memoryFile
	// denied paths fail on Open with a permission error
	denied map[string]bool
}

type memoryFile struct {
	data    []byte
	modTime time.Time
}

type memoryFileInfo struct {
	name    string
	size    int64
	modTime time.Time
	isDir   bool
}

func (fi *memoryFileInfo) Name() string       { return fi.name }
func (fi *memoryFileInfo) Size() int64        { return fi.size }
func (fi *memoryFileInfo) ModTime() time.Time { return fi.modTime }
func (fi *memoryFileInfo) IsDir() bool        { return fi.isDir }
func (fi *memoryFileInfo) Sys() any           { return nil }

func (fi *memoryFileInfo) Mode() os.FileMode {
	if fi.isDir {
		return os.ModeDir | 0o755 //nolint:mnd // Directory permissions
	}

	return 0o644 //nolint:mnd // File permissions
}

// NewMemoryFileSystem creates an empty in-memory file system
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files:  make(map[string]memoryFile),
		denied: make(map[string]bool),
	}
}

// AddFile stores data at name
func (m *MemoryFileSystem) AddFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path.Clean(name)] = memoryFile{data: data, modTime: time.Unix(0, 0).UTC()}
}

// Deny makes Open on name fail with a permission error
func (m *MemoryFileSystem) Deny(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.denied[path.Clean(name)] = true
}

// Open opens a stored file
func (m *MemoryFileSystem) Open(name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if m.denied[name] {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrPermission)
	}

	file, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, os.ErrNotExist)
	}

	return io.NopCloser(bytes.NewReader(file.data)), nil
}

// Stat describes a stored file or implied directory
func (m *MemoryFileSystem) Stat(name string) (os.FileInfo, error) {
	return m.Lstat(name)
}

// Lstat implements fs.FileSystem
func (m *MemoryFileSystem) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = path.Clean(name)
	if file, ok := m.files[name]; ok {
		return &memoryFileInfo{
			name:    path.Base(name),
			size:    int64(len(file.data)),
			modTime: file.modTime,
		}, nil
	}

	if m.isDirLocked(name) {
		return &memoryFileInfo{name: path.Base(name), isDir: true}, nil
	}

	return nil, fmt.Errorf("stat %s: %w", name, os.ErrNotExist)
}

// ReadDir implements fs.FileSystem, returning entries sorted by name
func (m *MemoryFileSystem) ReadDir(dirname string) ([]os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dirname = path.Clean(dirname)
	if !m.isDirLocked(dirname) {
		return nil, fmt.Errorf("readdir %s: %w", dirname, os.ErrNotExist)
	}

	entries := make(map[string]os.FileInfo)
	for name, file := range m.files {
		rel, ok := childOf(dirname, name)
		if !ok {
			continue
		}

		first, rest, nested := strings.Cut(rel, "/")
		if nested && rest != "" {
			entries[first] = &memoryFileInfo{name: first, isDir: true}
			continue
		}

		entries[first] = &memoryFileInfo{name: first, size: int64(len(file.data)), modTime: file.modTime}
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	infos := make([]os.FileInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, entries[name])
	}

	return infos, nil
}

// Walk walks the stored tree rooted at root
func (m *MemoryFileSystem) Walk(root string) *fs.Walker {
	return fs.WalkFS(root, m)
}

// Join joins path elements with forward slashes
func (m *MemoryFileSystem) Join(elem ...string) string {
	return path.Join(elem...)
}

func (m *MemoryFileSystem) isDirLocked(name string) bool {
	for stored := range m.files {
		if _, ok := childOf(name, stored); ok {
			return true
		}
	}

	return false
}

func childOf(dir, name string) (string, bool) {
	if dir == "." {
		return name, !strings.HasPrefix(name, "/")
	}

	prefix := strings.TrimSuffix(dir, "/") + "/"
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}

	return strings.TrimPrefix(name, prefix), true
}
