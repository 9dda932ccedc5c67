package metadata

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// ScanInfoPath is the location of the iScan element.
const ScanInfoPath = "/EncodeInfo/SlideInfo/iScan"

// ScanInfoMarker must appear in the base level's XML packet for the file to
// be treated as a Ventana slide.
const ScanInfoMarker = "<iScan"

// VendorPrefix is prepended to every property read from the iScan element.
const VendorPrefix = "ventana."

var scanInfoPath = etree.MustCompilePath(ScanInfoPath)

// scanInfoAttributes maps property names (without VendorPrefix) to iScan
// attribute names.
var scanInfoAttributes = []struct {
	property  string
	attribute string
}{
	{"magnification", "Magnification"},
	{"resolution", "ScanRes"},
	{"device-model", "UnitNumber"},
	{"build-version", "BuildVersion"},
	{"build-date", "BuildDate"},
	{"slide-annotation", "SlideAnnotation"},
	{"show-label", "ShowLabel"},
	{"label-boundary", "LabelBoundary"},
	{"z-layers", "Z-layers"},
	{"z-spacing", "Z-spacing"},
	{"focus-mode", "FocusMode"},
	{"focus-quality", "FocusQuality"},
	{"scan-mode", "ScanMode"},
}

// ScanInfoAttributes returns the attribute names read from the iScan element,
// keyed by the full property name they are stored under.
func ScanInfoAttributes() map[string]string {
	out := make(map[string]string, len(scanInfoAttributes))
	for _, m := range scanInfoAttributes {
		out[VendorPrefix+m.property] = m.attribute
	}
	return out
}

// ParseScanInfo parses a Ventana XML packet and inserts its iScan attributes
// into props. A nil props validates the packet without recording anything.
//
// Attributes that are absent are skipped. Magnification is copied to
// openslide.objective-power when it is an integer, and ScanRes to
// openslide.mpp-x and openslide.mpp-y when it is a number.
func ParseScanInfo(packet []byte, props bifslide.Properties) error {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive:    true,
		CharsetReader: charsetReader,
	}
	if err := doc.ReadFromBytes(bytes.TrimRight(packet, "\x00")); err != nil {
		return wrapXMLError(err, bifslide.ErrFormatNotSupported)
	}
	if doc.Root() == nil {
		return &MetadataError{
			Message: "could not parse XML: no root element",
			Kind:    bifslide.ErrFormatNotSupported,
		}
	}

	found := doc.FindElementsPath(scanInfoPath)
	if len(found) != 1 {
		return &MetadataError{
			Element: ScanInfoPath,
			Message: "expected exactly one iScan element, found " + strconv.Itoa(len(found)),
			Kind:    bifslide.ErrBadData,
		}
	}
	iscan := found[0]

	values := make(map[string]string, len(scanInfoAttributes))
	for _, m := range scanInfoAttributes {
		attr := iscan.SelectAttr(m.attribute)
		if attr == nil {
			continue
		}
		values[m.property] = attr.Value
		props.Insert(VendorPrefix+m.property, attr.Value)
	}

	if v, ok := values["magnification"]; ok {
		if n, err := strconv.ParseInt(trimLeadingSpace(v), 10, 64); err == nil {
			props.Insert(bifslide.PropertyObjectivePower, strconv.FormatInt(n, 10))
		}
	}
	if v, ok := values["resolution"]; ok {
		if f, err := strconv.ParseFloat(trimLeadingSpace(v), 64); err == nil {
			mpp := strconv.FormatFloat(f, 'g', -1, 64)
			props.Insert(bifslide.PropertyMPPX, mpp)
			props.Insert(bifslide.PropertyMPPY, mpp)
		}
	}
	return nil
}

// trimLeadingSpace drops the ASCII whitespace a C strtoll/strtod would skip.
// Trailing characters still make the value unparsable.
func trimLeadingSpace(v string) string {
	return strings.TrimLeft(v, " \t\n\v\f\r")
}
