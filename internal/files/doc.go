// Package files groups slide-file discovery into sub-packages:
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: recursive discovery of candidate slide files by extension
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/bifslide/internal/files/filesystem"
//	    "github.com/vvka-141/bifslide/internal/files/scanner"
//	)
//
//	sc := scanner.NewScanner(cfg.Extensions)
//	files, err := sc.ScanDirectory("/archive/2024")
//
// The scanner only lists candidates. Opening and probing them is the
// detector's job (internal/services).
package files
