package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is the standard library's fs.FileInfo.
type FileInfo = fs.FileInfo

// ReadAtCloser is file content opened for random access.
type ReadAtCloser interface {
	io.ReaderAt
	io.Closer
}

// File is one non-directory entry reported by Directory.Walk.
type File interface {
	// Path is the entry's full path, usable with OpenFile.
	Path() string
	Info() FileInfo
}

// Directory is a tree that can be searched for slide files.
type Directory interface {
	Path() string

	// Walk calls fn for every non-directory entry below the directory in a
	// stable order. An access error is passed to fn with a nil File.
	// A non-nil return from fn stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories for scanning and files for reading.
type FileSystemProvider interface {
	Open(path string) (Directory, error)

	// OpenFile opens a file for random access. The caller closes it.
	OpenFile(path string) (ReadAtCloser, error)
}

type entry struct {
	path string
	info FileInfo
}

func (e entry) Path() string   { return e.path }
func (e entry) Info() FileInfo { return e.info }
