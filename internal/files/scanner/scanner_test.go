package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bifslide/internal/files/filesystem"
)

func newTestScanner(extensions ...string) (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/slides")
	return NewScannerWithFS(extensions, fs), fs
}

func TestNewScannerWithFS_NilFilesystem(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil filesystem")
		}
	}()
	NewScannerWithFS(nil, nil)
}

func TestScanDirectory(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFileBytes("2024/case-01.bif", []byte("II+\x00"))
	fs.AddFileBytes("2024/case-02.TIF", []byte("II*\x00"))
	fs.AddFileBytes("archive/old.tiff", []byte("MM\x00*"))
	fs.AddFile("2024/report.pdf", "%PDF")
	fs.AddFile("notes.txt", "todo")

	files, err := s.ScanDirectory("/slides")
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}

	var paths []string
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"/slides/2024/case-01.bif",
		"/slides/2024/case-02.TIF",
		"/slides/archive/old.tiff",
	}, paths)
}

func TestScanDirectory_Metadata(t *testing.T) {
	s, fs := newTestScanner()
	modTime := time.Date(2023, 11, 2, 8, 30, 0, 0, time.UTC)
	fs.AddFileWithTime("case.bif", []byte("0123456789"), modTime)

	files, err := s.ScanDirectory("/slides")
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "case.bif", files[0].Name)
	assert.Equal(t, int64(10), files[0].SizeBytes)
	assert.Equal(t, modTime, files[0].ModifiedAt)
}

func TestScanDirectory_SkipsHiddenFiles(t *testing.T) {
	s, fs := newTestScanner()
	fs.AddFileBytes("case.bif", []byte("II+\x00"))
	fs.AddFileBytes("._case.bif", []byte{0, 5, 22, 7})
	fs.AddFileBytes(".hidden.tif", []byte("II*\x00"))

	files, err := s.ScanDirectory("/slides")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "case.bif", files[0].Name)
}

func TestScanDirectory_CustomExtensions(t *testing.T) {
	s, fs := newTestScanner(".BIF")
	fs.AddFileBytes("a.bif", []byte("II+\x00"))
	fs.AddFileBytes("b.tif", []byte("II*\x00"))

	files, err := s.ScanDirectory("/slides")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.bif", files[0].Name)
}

func TestScanDirectory_Empty(t *testing.T) {
	s, _ := newTestScanner()

	files, err := s.ScanDirectory("/slides")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanDirectory_MissingDirectory(t *testing.T) {
	s, _ := newTestScanner()

	_, err := s.ScanDirectory("/elsewhere")
	assert.Error(t, err)
}

func TestScanDirectory_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "batch")
	require.NoError(t, os.Mkdir(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "slide.bif"), []byte("II+\x00"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.md"), []byte("#"), 0644))

	files, err := NewScanner(nil).ScanDirectory(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "slide.bif", files[0].Name)
	assert.True(t, filepath.IsAbs(files[0].Path))
}
