package metadata

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
)

// charsetReader decodes XML packets declared in a non-UTF-8 encoding.
// Older scanner builds write encoding="windows-1252" or "iso-8859-1".
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported XML encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
