package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/bifslide/internal/files/scanner"
	"github.com/vvka-141/bifslide/internal/tui"
)

var scanFlags struct {
	json bool
}

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Probe every slide file under a directory",
	Long: `Scan walks a directory tree, probes every file with a slide extension
(.bif, .tif and .tiff by default, see scan.extensions in bifslide.yaml) and
prints one line per file: the accepted vendor, or the error kind and message.

Probing validates the whole file without keeping it open, so a scan reports
the same errors detect would.

Examples:
  bifslide scan /archive/2024
  bifslide scan /archive --json > inventory.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanFlags.json, "json", false, "Print results as a JSON array")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := buildDetectConfig(cmd)
	if err != nil {
		return err
	}
	det, logger, flush, err := newDetector(cfg)
	if err != nil {
		return err
	}
	defer flush()

	sc := scanner.NewScanner(cfg.Extensions)
	files, err := sc.ScanDirectory(args[0])
	if err != nil {
		return err
	}
	logger.Verbose("Found %d candidate files under %s", len(files), args[0])

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	results := det.ScanFiles(ctx, sc.FileSystem(), files)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("scan interrupted after %d of %d files: %w", len(results), len(files), err)
	}

	out := cmd.OutOrStdout()
	if scanFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	styled := tui.IsStyled(out)
	for _, r := range results {
		fmt.Fprintln(out, tui.RenderScanResult(r, styled))
	}
	return nil
}
