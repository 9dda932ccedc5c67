package scanner

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/bifslide/internal/files/filesystem"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// Scanner discovers candidate slide files in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	extensions map[string]bool
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a scanner that accepts files with the given extensions
// (case-insensitive, with leading dot). An empty list selects
// bifslide.DefaultExtensions. Uses OS filesystem by default.
func NewScanner(extensions []string) *Scanner {
	return NewScannerWithFS(extensions, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(extensions []string, fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if len(extensions) == 0 {
		extensions = bifslide.DefaultExtensions
	}

	accepted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		accepted[strings.ToLower(ext)] = true
	}
	return &Scanner{
		extensions: accepted,
		fsProvider: fsProvider,
	}
}

// FileSystem returns the provider the scanner walks.
func (s *Scanner) FileSystem() filesystem.FileSystemProvider { return s.fsProvider }

// ScanDirectory recursively scans root and returns the candidate slide files,
// sorted by path. Hidden files (names starting with ".") are skipped, which
// also drops the "._" resource-fork files macOS leaves next to copied slides.
func (s *Scanner) ScanDirectory(root string) ([]bifslide.SlideFile, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []bifslide.SlideFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		info := file.Info()
		if info.IsDir() || !s.accepts(info.Name()) {
			return nil
		}

		files = append(files, bifslide.SlideFile{
			Path:       file.Path(),
			Name:       info.Name(),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func (s *Scanner) accepts(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	return s.extensions[strings.ToLower(filepath.Ext(name))]
}
