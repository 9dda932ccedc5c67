package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/bifslide/internal/tui"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// Report output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var detectFlags struct {
	json bool
	yaml bool
}

var detectCmd = &cobra.Command{
	Use:   "detect <file>",
	Short: "Detect the vendor of a slide and print its structure",
	Long: `Detect opens one slide file, runs the vendor recognizers and prints what
the accepted one found: vendor, slide identity, pyramid levels, associated
images and every property.

Text output is styled when stdout is a terminal. Use --json or --yaml for
machine-readable output.

Examples:
  bifslide detect scan.bif
  bifslide detect scan.bif --json | jq '.levels | length'
  bifslide detect --config ./lab scan.tif --yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
	detectCmd.Flags().BoolVar(&detectFlags.json, "json", false, "Print the report as JSON")
	detectCmd.Flags().BoolVar(&detectFlags.yaml, "yaml", false, "Print the report as YAML")
}

func runDetect(cmd *cobra.Command, args []string) error {
	format, err := reportFormat(detectFlags.json, detectFlags.yaml)
	if err != nil {
		return err
	}

	cfg, err := buildDetectConfig(cmd)
	if err != nil {
		return err
	}
	det, _, flush, err := newDetector(cfg)
	if err != nil {
		return err
	}
	defer flush()

	s, err := det.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer s.Close()

	return writeReport(cmd.OutOrStdout(), s.Report(), format)
}

func reportFormat(asJSON, asYAML bool) (string, error) {
	switch {
	case asJSON && asYAML:
		return "", errors.New("invalid argument: --json and --yaml cannot be combined")
	case asJSON:
		return formatJSON, nil
	case asYAML:
		return formatYAML, nil
	default:
		return formatText, nil
	}
}

func writeReport(w io.Writer, r bifslide.SlideReport, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprint(w, tui.RenderReport(r, tui.IsStyled(w)))
		return err
	}
}
