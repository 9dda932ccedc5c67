package codec

import (
	"errors"
	"fmt"
)

var (
	jpegSOI = []byte{0xFF, 0xD8}
	jpegEOI = []byte{0xFF, 0xD9}
)

var errBadJPEG = errors.New("missing JPEG start-of-image marker")

// decodeJPEG returns a self-contained JPEG stream. TIFF JPEG tiles are often
// abbreviated streams that rely on the quantization and Huffman tables stored
// once per directory in JPEGTables. The tables stream is spliced in front of
// the tile: tables without their EOI, then the tile without its SOI.
func decodeJPEG(src, tables []byte) ([]byte, error) {
	if len(src) < 2 || src[0] != jpegSOI[0] || src[1] != jpegSOI[1] {
		return nil, errBadJPEG
	}
	if len(tables) < 4 {
		return src, nil
	}
	if tables[0] != jpegSOI[0] || tables[1] != jpegSOI[1] {
		return nil, fmt.Errorf("JPEGTables: %w", errBadJPEG)
	}

	head := tables
	if n := len(head); head[n-2] == jpegEOI[0] && head[n-1] == jpegEOI[1] {
		head = head[:n-2]
	}
	out := make([]byte, 0, len(head)+len(src)-2)
	out = append(out, head...)
	return append(out, src[2:]...), nil
}
