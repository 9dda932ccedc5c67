package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
)

// Supported algorithm names.
const (
	SHA256 = "sha256"
	BLAKE3 = "blake3"
)

// ErrUnknownAlgorithm is returned by New for an unsupported algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Accumulator collects quickhash input.
type Accumulator interface {
	// Write adds raw bytes.
	Write(p []byte)

	// WriteString adds s followed by a NUL terminator, so that adjacent
	// strings cannot run together.
	WriteString(s string)

	// Disable stops hashing. Sum reports no digest afterwards.
	Disable()

	// Disabled reports whether Disable was called.
	Disabled() bool

	// Sum returns the hex digest, or false when the accumulator is disabled.
	Sum() (string, bool)
}

// QuickHash is the Accumulator implementation backed by a real digest.
type QuickHash struct {
	algorithm string
	h         hash.Hash
	disabled  bool
}

// New creates an accumulator for algorithm. An empty name selects SHA256.
func New(algorithm string) (*QuickHash, error) {
	var h hash.Hash
	switch algorithm {
	case "", SHA256:
		algorithm = SHA256
		h = sha256.New()
	case BLAKE3:
		h = blake3.New()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	return &QuickHash{algorithm: algorithm, h: h}, nil
}

// Algorithm returns the algorithm name.
func (q *QuickHash) Algorithm() string { return q.algorithm }

func (q *QuickHash) Write(p []byte) {
	if q.disabled {
		return
	}
	q.h.Write(p)
}

func (q *QuickHash) WriteString(s string) {
	if q.disabled {
		return
	}
	q.h.Write([]byte(s))
	q.h.Write([]byte{0})
}

func (q *QuickHash) Disable() { q.disabled = true }

func (q *QuickHash) Disabled() bool { return q.disabled }

func (q *QuickHash) Sum() (string, bool) {
	if q.disabled {
		return "", false
	}
	return hex.EncodeToString(q.h.Sum(nil)), true
}
