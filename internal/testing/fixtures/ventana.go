package fixtures

import "fmt"

// Compression codes used by fixtures.
const (
	CompressionNone     uint16 = 1
	CompressionJPEG     uint16 = 7
	CompressionDeflate  uint16 = 8
	CompressionJPEG2000 uint16 = 33003
)

// VentanaXML returns an XMP packet in the layout written by Ventana iScan
// scanners, with the given attributes on the iScan element.
func VentanaXML(iScanAttrs string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<EncodeInfo Ver="2">
  <SlideInfo>
    <ServerDirectory/>
    <LabelImage/>
    <iScan %s>
      <AOI0 Left="0" Top="0" Right="100" Bottom="100"/>
    </iScan>
  </SlideInfo>
</EncodeInfo>`, iScanAttrs)
}

// DefaultIScanAttrs are the iScan attributes of a typical 20x scan.
const DefaultIScanAttrs = `Magnification="20" ScanRes="0.25" UnitNumber="BI10N0123" ` +
	`BuildVersion="3.3.1.1" BuildDate="9/28/2010 9:46:34 AM" ShowLabel="1" ` +
	`Z-layers="1" Z-spacing="1" FocusMode="1" FocusQuality="3" ScanMode="1"`

// VentanaDirectories returns the directory layout of a small Ventana slide:
// label, thumbnail, base level (level=0) and one reduced level (level=1).
func VentanaDirectories() []Directory {
	return []Directory{
		{Width: 512, Height: 256, TileWidth: 256, TileHeight: 256,
			Compression: CompressionNone, Description: "Label Image"},
		{Width: 1024, Height: 512, TileWidth: 256, TileHeight: 256,
			Compression: CompressionNone, Description: "Thumbnail"},
		{Width: 4096, Height: 2048, TileWidth: 1024, TileHeight: 1024,
			Compression: CompressionNone, Description: "level=0 mag=20 quality=95",
			XMLPacket: VentanaXML(DefaultIScanAttrs)},
		{Width: 2048, Height: 1024, TileWidth: 1024, TileHeight: 1024,
			Compression: CompressionNone, Description: "level=1 mag=10 quality=95"},
	}
}

// VentanaSlide builds the VentanaDirectories layout as a BigTIFF.
func VentanaSlide() []byte {
	return NewTIFFBuilder().BigTIFF().Add(VentanaDirectories()...).Build()
}
