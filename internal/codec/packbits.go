package codec

import "errors"

var errPackBitsTruncated = errors.New("packbits: truncated run")

// decodePackBits expands Apple PackBits run-length data (TIFF 6.0 section 9).
func decodePackBits(src, _ []byte) ([]byte, error) {
	out := make([]byte, 0, len(src)*2)
	for i := 0; i < len(src); {
		n := int(int8(src[i]))
		i++
		switch {
		case n >= 0:
			if i+n+1 > len(src) {
				return nil, errPackBitsTruncated
			}
			out = append(out, src[i:i+n+1]...)
			i += n + 1
		case n != -128:
			if i >= len(src) {
				return nil, errPackBitsTruncated
			}
			for k := 0; k < 1-n; k++ {
				out = append(out, src[i])
			}
			i++
		}
	}
	return out, nil
}
