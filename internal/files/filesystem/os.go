package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem reads slides from the local disk.
type OSFileSystem struct{}

var _ FileSystemProvider = (*OSFileSystem)(nil)

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Open returns the directory at path, resolved to an absolute path.
func (p *OSFileSystem) Open(path string) (Directory, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", path)
	}
	return osDirectory(abs), nil
}

// OpenFile opens a regular file. *os.File already satisfies ReadAtCloser.
func (p *OSFileSystem) OpenFile(path string) (ReadAtCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("is a directory: %s", path)
	}
	return f, nil
}

type osDirectory string

func (d osDirectory) Path() string { return string(d) }

func (d osDirectory) Walk(fn func(File, error) error) error {
	return filepath.WalkDir(string(d), func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return fn(nil, err)
		}
		if de.IsDir() {
			return nil
		}
		info, err := de.Info()
		if err != nil {
			return fn(nil, err)
		}
		return fn(entry{path: path, info: info}, nil)
	})
}
