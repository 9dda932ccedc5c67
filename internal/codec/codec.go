package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/tiff/lzw"
)

// TIFF compression scheme codes (TIFF 6.0 section 3, TIFF Technical Note 2,
// and the registered Zstandard code).
const (
	None         uint16 = 1
	CCITTRLE     uint16 = 2
	CCITTFax3    uint16 = 3
	CCITTFax4    uint16 = 4
	LZW          uint16 = 5
	OJPEG        uint16 = 6
	JPEG         uint16 = 7
	AdobeDeflate uint16 = 8
	PackBits     uint16 = 32773
	Deflate      uint16 = 32946
	JPEG2000     uint16 = 33003
	JPEG2000RGB  uint16 = 33005
	ZSTD         uint16 = 50000
	WebP         uint16 = 50001
)

// ErrUnsupported is returned by Decode for a scheme the registry does not handle.
var ErrUnsupported = errors.New("unsupported compression")

var names = map[uint16]string{
	None:         "none",
	CCITTRLE:     "ccitt-rle",
	CCITTFax3:    "ccitt-fax3",
	CCITTFax4:    "ccitt-fax4",
	LZW:          "lzw",
	OJPEG:        "old-jpeg",
	JPEG:         "jpeg",
	AdobeDeflate: "adobe-deflate",
	PackBits:     "packbits",
	Deflate:      "deflate",
	JPEG2000:     "jpeg2000",
	JPEG2000RGB:  "jpeg2000-rgb",
	ZSTD:         "zstd",
	WebP:         "webp",
}

// Name returns a short name for a compression code.
func Name(code uint16) string {
	if n, ok := names[code]; ok {
		return n
	}
	return fmt.Sprintf("unknown(%d)", code)
}

// DecodeFunc turns one compressed tile into its stored byte stream.
// tables carries the directory's JPEGTables, when present.
type DecodeFunc func(src, tables []byte) ([]byte, error)

// Registry is the set of compression schemes usable in this build.
// A Registry is immutable and safe for concurrent use.
type Registry struct {
	decoders map[uint16]DecodeFunc
}

// Default returns a registry with every scheme this package implements.
func Default() *Registry {
	return &Registry{decoders: map[uint16]DecodeFunc{
		None:         decodeNone,
		LZW:          decodeLZW,
		JPEG:         decodeJPEG,
		AdobeDeflate: decodeDeflate,
		Deflate:      decodeDeflate,
		PackBits:     decodePackBits,
		ZSTD:         decodeZstd,
	}}
}

// Without returns a copy of r with the given schemes removed.
func (r *Registry) Without(codes ...uint16) *Registry {
	out := &Registry{decoders: make(map[uint16]DecodeFunc, len(r.decoders))}
	for code, fn := range r.decoders {
		out.decoders[code] = fn
	}
	for _, code := range codes {
		delete(out.decoders, code)
	}
	return out
}

// IsConfigured reports whether tiles compressed with code can be decoded.
func (r *Registry) IsConfigured(code uint16) bool {
	if r == nil {
		return false
	}
	_, ok := r.decoders[code]
	return ok
}

// Codes returns the configured scheme codes in ascending order.
func (r *Registry) Codes() []uint16 {
	codes := make([]uint16, 0, len(r.decoders))
	for code := range r.decoders {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Decode decompresses one tile.
func (r *Registry) Decode(code uint16, src, tables []byte) ([]byte, error) {
	if !r.IsConfigured(code) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, Name(code))
	}
	out, err := r.decoders[code](src, tables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name(code), err)
	}
	return out, nil
}

func decodeNone(src, _ []byte) ([]byte, error) {
	return src, nil
}

// decodeLZW reads the TIFF variant: MSB-first codes with the early code
// width change.
func decodeLZW(src, _ []byte) ([]byte, error) {
	lr := lzw.NewReader(bytes.NewReader(src), lzw.MSB, 8)
	defer lr.Close()
	return io.ReadAll(lr)
}

func decodeDeflate(src, _ []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// zstdDecoder is shared; zstd.Decoder is safe for concurrent DecodeAll calls.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

func decodeZstd(src, _ []byte) ([]byte, error) {
	return zstdDecoder.DecodeAll(src, nil)
}
