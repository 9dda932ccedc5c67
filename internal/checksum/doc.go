// Package checksum provides the slide quickhash accumulator.
//
// A quickhash identifies slide content cheaply. It covers the TIFF properties
// of the first directory and the raw tile bytes of the smallest pyramid
// level, so two copies of the same scan hash identically while reading only
// a small part of the file.
//
// # Algorithms
//
//   - sha256 (default): the digest written to openslide.quickhash-1
//   - blake3: a faster digest for local catalogues
//
// # Disabling
//
// An accumulator can be disabled once input turns out to be too large to
// hash cheaply. After Disable, writes are ignored and Sum reports no digest.
//
// # Example Usage
//
//	hash, err := checksum.New(checksum.SHA256)
//	if err != nil {
//	    return err
//	}
//	hash.WriteString("tiff.Software")
//	hash.Write(tile)
//	digest, ok := hash.Sum()
//
// # Thread Safety
//
// QuickHash is not safe for concurrent use. Each detection owns one.
package checksum
