package filesystem

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MemoryFileSystem keeps slide files in memory, keyed by slash-separated
// absolute path. Directories exist implicitly as path prefixes of files.
// It is not safe for concurrent writes.
type MemoryFileSystem struct {
	root  string
	files map[string]memoryFile
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)

type memoryFile struct {
	data    []byte
	modTime time.Time
}

// NewMemoryFileSystem returns an empty filesystem. Relative paths given to
// its methods are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	return &MemoryFileSystem{
		root:  path.Clean(filepath.ToSlash(root)),
		files: make(map[string]memoryFile),
	}
}

// AddFile stores a text file.
func (m *MemoryFileSystem) AddFile(name, content string) {
	m.AddFileWithTime(name, []byte(content), time.Now())
}

// AddFileBytes stores a binary file, such as a generated slide.
func (m *MemoryFileSystem) AddFileBytes(name string, data []byte) {
	m.AddFileWithTime(name, data, time.Now())
}

func (m *MemoryFileSystem) AddFileWithTime(name string, data []byte, modTime time.Time) {
	m.files[m.resolve(name)] = memoryFile{data: data, modTime: modTime}
}

func (m *MemoryFileSystem) resolve(name string) string {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = path.Join(m.root, name)
	}
	return path.Clean(name)
}

func (m *MemoryFileSystem) isDir(p string) bool {
	if p == m.root || p == "/" {
		return true
	}
	prefix := p + "/"
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Open returns the directory at name. The root always exists; any other
// directory exists while it holds at least one file.
func (m *MemoryFileSystem) Open(name string) (Directory, error) {
	p := m.resolve(name)
	if _, ok := m.files[p]; ok {
		return nil, fmt.Errorf("not a directory: %s", name)
	}
	if !m.isDir(p) {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return &memoryDirectory{fs: m, path: p}, nil
}

func (m *MemoryFileSystem) OpenFile(name string) (ReadAtCloser, error) {
	f, ok := m.files[m.resolve(name)]
	if !ok {
		if m.isDir(m.resolve(name)) {
			return nil, fmt.Errorf("is a directory: %s", name)
		}
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return memoryReader{bytes.NewReader(f.data)}, nil
}

type memoryReader struct {
	*bytes.Reader
}

func (memoryReader) Close() error { return nil }

type memoryDirectory struct {
	fs   *MemoryFileSystem
	path string
}

func (d *memoryDirectory) Path() string { return d.path }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	prefix := strings.TrimSuffix(d.path, "/") + "/"
	var names []string
	for name := range d.fs.files {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		f := d.fs.files[name]
		info := memoryInfo{name: path.Base(name), size: int64(len(f.data)), modTime: f.modTime}
		if err := fn(entry{path: name, info: info}, nil); err != nil {
			return err
		}
	}
	return nil
}

type memoryInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (i memoryInfo) Name() string       { return i.name }
func (i memoryInfo) Size() int64        { return i.size }
func (i memoryInfo) Mode() fs.FileMode  { return 0o644 }
func (i memoryInfo) ModTime() time.Time { return i.modTime }
func (i memoryInfo) IsDir() bool        { return false }
func (i memoryInfo) Sys() any           { return nil }
