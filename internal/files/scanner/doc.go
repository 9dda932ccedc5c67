// Package scanner provides discovery of candidate slide files.
//
// The scanner package is responsible for:
//   - Recursively discovering files with a slide extension (.bif, .tif, .tiff)
//   - Reporting file metadata (path, size, modification time)
//
// The scanner does not open files; detection happens in the services
// package. It is filesystem-agnostic through the
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
