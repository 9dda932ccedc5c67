package tiff

// Tag identifies a TIFF field.
type Tag uint16

// Tags used by slide detection (TIFF 6.0, p. 28-41, plus the XMP packet tag).
const (
	TagNewSubfileType   Tag = 254
	TagImageWidth       Tag = 256
	TagImageLength      Tag = 257
	TagBitsPerSample    Tag = 258
	TagCompression      Tag = 259
	TagPhotometric      Tag = 262
	TagDocumentName     Tag = 269
	TagImageDescription Tag = 270
	TagMake             Tag = 271
	TagModel            Tag = 272
	TagStripOffsets     Tag = 273
	TagSamplesPerPixel  Tag = 277
	TagRowsPerStrip     Tag = 278
	TagStripByteCounts  Tag = 279
	TagXResolution      Tag = 282
	TagYResolution      Tag = 283
	TagPlanarConfig     Tag = 284
	TagResolutionUnit   Tag = 296
	TagSoftware         Tag = 305
	TagDateTime         Tag = 306
	TagArtist           Tag = 315
	TagHostComputer     Tag = 316
	TagTileWidth        Tag = 322
	TagTileLength       Tag = 323
	TagTileOffsets      Tag = 324
	TagTileByteCounts   Tag = 325
	TagJPEGTables       Tag = 347
	TagXMLPacket        Tag = 700
	TagCopyright        Tag = 33432
)

// DataType is the TIFF field type.
type DataType uint16

// Field types (TIFF 6.0 p. 15-16, plus the BigTIFF 8-byte types).
const (
	TypeByte      DataType = 1
	TypeASCII     DataType = 2
	TypeShort     DataType = 3
	TypeLong      DataType = 4
	TypeRational  DataType = 5
	TypeSByte     DataType = 6
	TypeUndefined DataType = 7
	TypeSShort    DataType = 8
	TypeSLong     DataType = 9
	TypeSRational DataType = 10
	TypeFloat     DataType = 11
	TypeDouble    DataType = 12
	TypeIFD       DataType = 13
	TypeLong8     DataType = 16
	TypeSLong8    DataType = 17
	TypeIFD8      DataType = 18
)

// Size returns the length in bytes of one value of the type, or 0 for
// unknown types.
func (t DataType) Size() int {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat, TypeIFD:
		return 4
	case TypeRational, TypeSRational, TypeDouble, TypeLong8, TypeSLong8, TypeIFD8:
		return 8
	default:
		return 0
	}
}

const (
	leHeader = "II"
	beHeader = "MM"

	magicClassic = 42
	magicBig     = 43

	classicEntryLen = 12
	bigEntryLen     = 20

	// maxDirectories bounds the IFD chain; real slides have a few dozen.
	maxDirectories = 1 << 14

	// maxFieldSize bounds a single out-of-line field value.
	maxFieldSize = 256 << 20
)
