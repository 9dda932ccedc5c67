package metadata

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/bifslide/internal/testing/fixtures"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

func TestParseScanInfo_AllAttributes(t *testing.T) {
	attrs := `Magnification="40" ScanRes="0.2325" UnitNumber="BI10N0294" BuildVersion="3.3.1.1" ` +
		`BuildDate="9/28/2010 9:46:34 AM" SlideAnnotation="HE 12" ShowLabel="1" LabelBoundary="10 10 500 500" ` +
		`Z-layers="3" Z-spacing="2" FocusMode="1" FocusQuality="3" ScanMode="2"`
	props := bifslide.Properties{}

	require.NoError(t, ParseScanInfo([]byte(fixtures.VentanaXML(attrs)), props))

	want := bifslide.Properties{
		"ventana.magnification":     "40",
		"ventana.resolution":        "0.2325",
		"ventana.device-model":      "BI10N0294",
		"ventana.build-version":     "3.3.1.1",
		"ventana.build-date":        "9/28/2010 9:46:34 AM",
		"ventana.slide-annotation":  "HE 12",
		"ventana.show-label":        "1",
		"ventana.label-boundary":    "10 10 500 500",
		"ventana.z-layers":          "3",
		"ventana.z-spacing":         "2",
		"ventana.focus-mode":        "1",
		"ventana.focus-quality":     "3",
		"ventana.scan-mode":         "2",
		"openslide.objective-power": "40",
		"openslide.mpp-x":           "0.2325",
		"openslide.mpp-y":           "0.2325",
	}
	assert.Equal(t, want, props)
}

func TestParseScanInfo_StandardProperties(t *testing.T) {
	tests := []struct {
		name      string
		attrs     string
		objective string
		mpp       string
	}{
		{"integer and float", `Magnification="20" ScanRes="0.25"`, "20", "0.25"},
		{"float resolution as integer", `Magnification="40" ScanRes="1"`, "40", "1"},
		{"exponent resolution", `Magnification="10" ScanRes="4.65e-1"`, "10", "0.465"},
		{"non-integer magnification", `Magnification="2.5" ScanRes="0.25"`, "", "0.25"},
		{"non-numeric resolution", `Magnification="20" ScanRes="fine"`, "20", ""},
		{"both missing", `UnitNumber="X"`, "", ""},
		{"leading whitespace", `Magnification=" 20" ScanRes="  0.25"`, "20", "0.25"},
		{"trailing whitespace", `Magnification="20 " ScanRes="0.25 "`, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := bifslide.Properties{}
			require.NoError(t, ParseScanInfo([]byte(fixtures.VentanaXML(tt.attrs)), props))

			objective, ok := props[bifslide.PropertyObjectivePower]
			assert.Equal(t, tt.objective != "", ok)
			assert.Equal(t, tt.objective, objective)

			assert.Equal(t, tt.mpp, props[bifslide.PropertyMPPX])
			assert.Equal(t, tt.mpp, props[bifslide.PropertyMPPY])
		})
	}
}

func TestParseScanInfo_MissingAttributesSkipped(t *testing.T) {
	props := bifslide.Properties{}
	require.NoError(t, ParseScanInfo([]byte(fixtures.VentanaXML(`ScanRes="0.5"`)), props))

	assert.Equal(t, bifslide.Properties{
		"ventana.resolution": "0.5",
		"openslide.mpp-x":    "0.5",
		"openslide.mpp-y":    "0.5",
	}, props)
}

func TestParseScanInfo_NilSink(t *testing.T) {
	err := ParseScanInfo([]byte(fixtures.VentanaXML(fixtures.DefaultIScanAttrs)), nil)
	assert.NoError(t, err)

	err = ParseScanInfo([]byte(`<EncodeInfo><SlideInfo/></EncodeInfo>`), nil)
	assert.True(t, errors.Is(err, bifslide.ErrBadData))
}

func TestParseScanInfo_ElementCount(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"zero", `<EncodeInfo><SlideInfo><LabelImage/></SlideInfo></EncodeInfo>`},
		{"wrong root", `<Other><SlideInfo><iScan Magnification="20"/></SlideInfo></Other>`},
		{"wrong depth", `<EncodeInfo><iScan Magnification="20"/></EncodeInfo>`},
		{"two", `<EncodeInfo><SlideInfo><iScan Magnification="20"/><iScan Magnification="40"/></SlideInfo></EncodeInfo>`},
		{"two slide infos", `<EncodeInfo><SlideInfo><iScan/></SlideInfo><SlideInfo><iScan/></SlideInfo></EncodeInfo>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := bifslide.Properties{}
			err := ParseScanInfo([]byte(tt.xml), props)
			require.Error(t, err)
			assert.True(t, errors.Is(err, bifslide.ErrBadData), "expected bad data, got %v", err)
			assert.False(t, errors.Is(err, bifslide.ErrFormatNotSupported))
			assert.Empty(t, props)

			var metaErr *MetadataError
			require.True(t, errors.As(err, &metaErr))
			assert.Equal(t, ScanInfoPath, metaErr.Element)
		})
	}
}

func TestParseScanInfo_NotXML(t *testing.T) {
	tests := []struct {
		name   string
		packet string
	}{
		{"empty", ""},
		{"plain text", "iScan Magnification=20"},
		{"unknown encoding", `<?xml version="1.0" encoding="x-no-such-charset"?><EncodeInfo/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseScanInfo([]byte(tt.packet), bifslide.Properties{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, bifslide.ErrFormatNotSupported), "expected format not supported, got %v", err)
			assert.Contains(t, err.Error(), "could not parse XML")
		})
	}
}

func TestParseScanInfo_TrailingNULs(t *testing.T) {
	packet := append([]byte(fixtures.VentanaXML(`Magnification="20"`)), 0, 0, 0)
	props := bifslide.Properties{}
	require.NoError(t, ParseScanInfo(packet, props))
	assert.Equal(t, "20", props["ventana.magnification"])
}

func TestParseScanInfo_Windows1252(t *testing.T) {
	packet := []byte("<?xml version=\"1.0\" encoding=\"windows-1252\"?>" +
		"<EncodeInfo><SlideInfo><iScan SlideAnnotation=\"Caf\xe9\" Magnification=\"20\"/></SlideInfo></EncodeInfo>")
	props := bifslide.Properties{}
	require.NoError(t, ParseScanInfo(packet, props))
	assert.Equal(t, "Café", props["ventana.slide-annotation"])
}

func TestParseScanInfo_Permissive(t *testing.T) {
	packet := []byte(`<EncodeInfo><SlideInfo><iScan SlideAnnotation="A & B" Magnification="20"/></SlideInfo></EncodeInfo>`)
	props := bifslide.Properties{}
	require.NoError(t, ParseScanInfo(packet, props))
	assert.Equal(t, "20", props["ventana.magnification"])
}

func TestScanInfoAttributes(t *testing.T) {
	attrs := ScanInfoAttributes()
	assert.Len(t, attrs, 13)
	assert.Equal(t, "Magnification", attrs["ventana.magnification"])
	assert.Equal(t, "ScanRes", attrs["ventana.resolution"])
	assert.Equal(t, "Z-layers", attrs["ventana.z-layers"])
}

func TestMetadataError_Format(t *testing.T) {
	err := &MetadataError{Line: 3, Element: ScanInfoPath, Message: "boom", Kind: bifslide.ErrBadData}
	assert.Equal(t, "bad data: boom (/EncodeInfo/SlideInfo/iScan, line 3)", err.Error())
	assert.Equal(t, "boom", (&MetadataError{Message: "boom"}).Error())
}
