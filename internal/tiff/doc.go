// Package tiff reads the directory and tag structure of classic TIFF and
// BigTIFF files.
//
// The reader only decodes what slide detection needs: the chain of image file
// directories (IFDs) and the values of their tags. Pixel data is never
// decoded; tile bytes are handed out raw through File.ReadRange.
//
// # Usage
//
//	f, err := tiff.Open(r)
//	if err != nil {
//	    return err
//	}
//	cur := tiff.NewCursor(f)
//	for ok := true; ok; ok = cur.Next() {
//	    dir := cur.Directory()
//	    width, _ := dir.ImageWidth()
//	    ...
//	}
//
// # Thread Safety
//
// File and Directory are immutable after Open and safe for concurrent reads.
// A Cursor is a single forward position and must not be shared.
package tiff
