package metadata

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// MetadataError describes a failure to read the XML packet.
type MetadataError struct {
	Line    int    // Line number (0 if unknown)
	Element string // Element path, if applicable
	Message string // Primary error message

	// Kind is the sentinel the error unwraps to, one of
	// bifslide.ErrFormatNotSupported or bifslide.ErrBadData.
	Kind error
}

// Error implements the error interface.
func (e *MetadataError) Error() string {
	msg := e.Message
	switch {
	case e.Element != "" && e.Line > 0:
		msg = fmt.Sprintf("%s (%s, line %d)", e.Message, e.Element, e.Line)
	case e.Element != "":
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Element)
	case e.Line > 0:
		msg = fmt.Sprintf("%s (line %d)", e.Message, e.Line)
	}
	if e.Kind != nil {
		return e.Kind.Error() + ": " + msg
	}
	return msg
}

// Unwrap returns the error kind.
func (e *MetadataError) Unwrap() error { return e.Kind }

// wrapXMLError converts a parser error into a MetadataError of the given kind,
// keeping the line number of syntax errors.
func wrapXMLError(err error, kind error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &MetadataError{
			Line:    syntaxErr.Line,
			Message: "could not parse XML: " + syntaxErr.Msg,
			Kind:    kind,
		}
	}
	return &MetadataError{
		Message: "could not parse XML: " + err.Error(),
		Kind:    kind,
	}
}
