package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const banner = "bifslide - whole-slide image detector"

var rootCmd = &cobra.Command{
	Use:   "bifslide",
	Short: "Detect and inspect Ventana BIF whole-slide images",
	Long: banner + `

bifslide opens TIFF and BigTIFF whole-slide images, recognizes the vendor
layout and reports the pyramid levels, associated images and properties
it finds. Ventana (Roche) BIF slides are recognized first; any other tiled
TIFF falls back to the generic reader.

Configuration is read from bifslide.yaml in the --config directory and
from BIFSLIDE_* environment variables (a .env file is loaded first).

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Format not supported (no recognizer accepted the file)
  21 - Bad data (the file is recognized but damaged)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", ".", "Directory containing bifslide.yaml")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigDir(cmd *cobra.Command) string {
	dir, err := cmd.Flags().GetString("config")
	if err != nil || dir == "" {
		return "."
	}
	return dir
}
