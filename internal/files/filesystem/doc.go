// Package filesystem is the seam between slide discovery and storage.
//
// FileSystemProvider opens a Directory to walk for candidate slides and
// opens single files as io.ReaderAt, which is how TIFF directories are read.
// OSFileSystem serves the real disk; MemoryFileSystem holds generated slides
// for tests.
package filesystem
