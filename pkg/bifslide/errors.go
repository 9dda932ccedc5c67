package bifslide

import (
	"errors"
	"strings"
)

// Sentinel errors for detection failures.
// Every error returned by a recognizer wraps exactly one of the kind
// sentinels, so callers classify with errors.Is().
//
// Example usage:
//
//	s, err := detector.OpenFile(path)
//	if errors.Is(err, bifslide.ErrFormatNotSupported) {
//	    // not ours, try another reader
//	}
var (
	// ErrFormatNotSupported indicates the file is not (or does not look like)
	// the recognizer's format. The detection pipeline falls through to the
	// next recognizer.
	ErrFormatNotSupported = errors.New("format not supported")

	// ErrBadData indicates the file claims to be the recognizer's format but is
	// internally inconsistent. The detection pipeline stops.
	ErrBadData = errors.New("bad data")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLevel indicates a pyramid level index is out of range.
	ErrNoLevel = errors.New("no such level")
)

// IsFallthrough reports whether a detection error allows another recognizer
// to be tried.
func IsFallthrough(err error) bool {
	return errors.Is(err, ErrFormatNotSupported)
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrBadData):
		return ExitBadData
	case errors.Is(err, ErrFormatNotSupported):
		return ExitFormatNotSupported
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ErrorKind returns a short name for the kind sentinel wrapped by err.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadData):
		return "bad-data"
	case errors.Is(err, ErrFormatNotSupported):
		return "format-not-supported"
	case errors.Is(err, ErrInvalidConfig):
		return "invalid-config"
	default:
		return "error"
	}
}
