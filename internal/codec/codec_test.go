package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsConfigured(t *testing.T) {
	r := Default()

	tests := []struct {
		code uint16
		want bool
	}{
		{None, true},
		{JPEG, true},
		{AdobeDeflate, true},
		{Deflate, true},
		{PackBits, true},
		{ZSTD, true},
		{LZW, true},
		{JPEG2000, false},
		{JPEG2000RGB, false},
		{OJPEG, false},
		{0, false},
		{65535, false},
	}

	for _, tt := range tests {
		t.Run(Name(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsConfigured(tt.code))
		})
	}
}

func TestRegistry_Without(t *testing.T) {
	base := Default()
	reduced := base.Without(ZSTD, JPEG)

	assert.False(t, reduced.IsConfigured(ZSTD))
	assert.False(t, reduced.IsConfigured(JPEG))
	assert.True(t, reduced.IsConfigured(None))
	assert.True(t, base.IsConfigured(ZSTD), "Without must not modify the receiver")
	assert.Equal(t, []uint16{None, LZW, AdobeDeflate, PackBits, Deflate}, reduced.Codes())
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var r *Registry
	assert.False(t, r.IsConfigured(None))
}

func TestDecode_Unsupported(t *testing.T) {
	_, err := Default().Decode(JPEG2000, []byte{1, 2, 3}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Contains(t, err.Error(), "jpeg2000")
}

func TestDecode_None(t *testing.T) {
	out, err := Default().Decode(None, []byte("raw"), nil)
	require.NoError(t, err)
	assert.Equal(t, "raw", string(out))
}

func TestDecode_Deflate(t *testing.T) {
	payload := bytes.Repeat([]byte("tile-data "), 100)

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	for _, code := range []uint16{AdobeDeflate, Deflate} {
		out, err := Default().Decode(code, buf.Bytes(), nil)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	}

	_, err = Default().Decode(Deflate, []byte("not zlib"), nil)
	assert.Error(t, err)
}

// packLZW writes 9-bit codes MSB first, the layout of a short TIFF LZW strip.
func packLZW(codes ...uint16) []byte {
	var out []byte
	var acc uint32
	var bits uint
	for _, c := range codes {
		acc = acc<<9 | uint32(c)
		bits += 9
		for bits >= 8 {
			bits -= 8
			out = append(out, byte(acc>>bits))
		}
	}
	if bits > 0 {
		out = append(out, byte(acc<<(8-bits)))
	}
	return out
}

func TestDecode_LZW(t *testing.T) {
	const clear, eoi = 256, 257
	payload := []byte("tile-7")

	codes := []uint16{clear}
	for _, b := range payload {
		codes = append(codes, uint16(b))
	}
	codes = append(codes, eoi)

	out, err := Default().Decode(LZW, packLZW(codes...), nil)
	require.NoError(t, err)
	assert.Equal(t, payload, out)

	_, err = Default().Decode(LZW, packLZW(clear, 300), nil)
	assert.Error(t, err, "a code past the table is corrupt")
}

func TestDecode_Zstd(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB, 0xCD}, 512)

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(payload, nil)
	require.NoError(t, enc.Close())

	out, err := Default().Decode(ZSTD, compressed, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestDecode_PackBits(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		want    []byte
		wantErr bool
	}{
		{
			// TIFF 6.0 section 9 example
			name: "literal and runs",
			src:  []byte{0xFE, 0xAA, 0x02, 0x80, 0x00, 0x2A, 0xFD, 0xAA, 0x03, 0x80, 0x00, 0x2A, 0x22, 0xF7, 0xAA},
			want: []byte{0xAA, 0xAA, 0xAA, 0x80, 0x00, 0x2A, 0xAA, 0xAA, 0xAA, 0xAA, 0x80, 0x00, 0x2A, 0x22,
				0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA},
		},
		{name: "no-op header skipped", src: []byte{0x80, 0x00, 0x07}, want: []byte{0x07}},
		{name: "empty", src: nil, want: []byte{}},
		{name: "truncated literal", src: []byte{0x03, 0x01}, wantErr: true},
		{name: "truncated run", src: []byte{0xFE}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Default().Decode(PackBits, tt.src, nil)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDecode_JPEGTablesSplice(t *testing.T) {
	tables := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x01, 0x02, 0xFF, 0xD9}
	tile := []byte{0xFF, 0xD8, 0xFF, 0xDA, 0x09, 0xFF, 0xD9}

	out, err := Default().Decode(JPEG, tile, tables)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x01, 0x02, 0xFF, 0xDA, 0x09, 0xFF, 0xD9}, out)

	out, err = Default().Decode(JPEG, tile, nil)
	require.NoError(t, err)
	assert.Equal(t, tile, out, "a tile without tables is returned as stored")

	_, err = Default().Decode(JPEG, []byte{0x00, 0x01}, nil)
	assert.Error(t, err)

	_, err = Default().Decode(JPEG, tile, []byte{0x00, 0x00, 0x00, 0x00})
	assert.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "zstd", Name(ZSTD))
	assert.Equal(t, "unknown(12345)", Name(12345))
}
