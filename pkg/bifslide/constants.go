package bifslide

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Detection completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration
	ExitFormatNotSupported = 20 // No recognizer accepted the file
	ExitBadData            = 21 // File is recognized but internally inconsistent
)

// Standard cross-vendor property names.
const (
	PropertyVendor         = "openslide.vendor"
	PropertyQuickHash      = "openslide.quickhash-1"
	PropertyObjectivePower = "openslide.objective-power"
	PropertyMPPX           = "openslide.mpp-x"
	PropertyMPPY           = "openslide.mpp-y"
	PropertyLevelCount     = "openslide.level-count"
)

const (
	// VendorVentana is the vendor identifier written for Ventana slides.
	VendorVentana = "ventana"

	// VendorGenericTIFF is the vendor identifier written for plain tiled TIFF files.
	VendorGenericTIFF = "generic-tiff"

	// AssociatedLabel and AssociatedThumbnail name the associated images
	// a Ventana slide carries in directories 0 and 1.
	AssociatedLabel     = "label"
	AssociatedThumbnail = "thumbnail"

	// DefaultHashAlgorithm is the quickhash algorithm used when none is configured.
	DefaultHashAlgorithm = "sha256"

	// DefaultLogFormat selects the console logger.
	DefaultLogFormat = "console"

	// ConfigFileName is the project configuration file looked up by the CLI.
	ConfigFileName = "bifslide.yaml"
)

// DefaultExtensions are the file extensions considered slide candidates by the scanner.
var DefaultExtensions = []string{".bif", ".tif", ".tiff"}
