// Package metadata extracts scanner metadata from TIFF text tags and from the
// XML packet embedded in Ventana slides.
//
// # Overview
//
// Two kinds of metadata are read:
//   - Free-text properties in ImageDescription, such as "level=0 mag=20"
//   - The iScan element of the XML packet attached to the base level
//
// # XML Packet Format
//
// Ventana scanners write an XMP packet laid out like this:
//
//	<EncodeInfo Ver="2">
//	  <SlideInfo>
//	    <ServerDirectory/>
//	    <LabelImage/>
//	    <iScan Magnification="20" ScanRes="0.25" UnitNumber="BI10N0123" ...>
//	      <AOI0 .../>
//	    </iScan>
//	  </SlideInfo>
//	</EncodeInfo>
//
// Exactly one element must exist at /EncodeInfo/SlideInfo/iScan. Its
// attributes become "ventana.*" properties. Magnification and ScanRes are
// also copied to openslide.objective-power and openslide.mpp-x/mpp-y.
//
// # Usage
//
//	if v, ok := metadata.FindProperty(desc, "level", false); ok && v == "0" {
//	    if err := metadata.ParseScanInfo(packet, props); err != nil {
//	        return err
//	    }
//	}
//
// # Errors
//
// ParseScanInfo returns a *MetadataError. Its Kind is
// bifslide.ErrFormatNotSupported when the packet is not XML at all, and
// bifslide.ErrBadData when the document does not have exactly one iScan
// element. errors.Is works on both through Unwrap.
package metadata
