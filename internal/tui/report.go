package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvka-141/bifslide/internal/codec"
	"github.com/vvka-141/bifslide/pkg/bifslide"
)

// RenderReport formats a slide report for the terminal. Plain output has one
// fact per line so it stays greppable; styled output adds a title and boxes.
func RenderReport(r bifslide.SlideReport, styled bool) string {
	var head strings.Builder
	writeField(&head, "path", r.Path, styled)
	writeField(&head, "vendor", r.Vendor, styled)
	if r.ID != "" {
		writeField(&head, "id", r.ID, styled)
	}

	var levels strings.Builder
	for i, l := range r.Levels {
		fmt.Fprintf(&levels, "  %d: %dx%d tile %dx%d downsample %s compression %s (directory %d)\n",
			i, l.Width, l.Height, l.TileWidth, l.TileHeight,
			strconv.FormatFloat(l.Downsample, 'g', -1, 64), codec.Name(l.Compression), l.Directory)
	}

	var associated strings.Builder
	for _, a := range r.AssociatedImages {
		fmt.Fprintf(&associated, "  %s: %dx%d (directory %d)\n", a.Name, a.Width, a.Height, a.Directory)
	}

	var props strings.Builder
	for _, k := range r.Properties.Keys() {
		if styled {
			fmt.Fprintf(&props, "  %s = %s\n", KeyStyle.Render(k), ValueStyle.Render(r.Properties[k]))
		} else {
			fmt.Fprintf(&props, "  %s = %s\n", k, r.Properties[k])
		}
	}

	sections := []struct {
		title string
		body  string
	}{
		{"levels", levels.String()},
		{"associated images", associated.String()},
		{"properties", props.String()},
	}

	if !styled {
		var out strings.Builder
		out.WriteString(head.String())
		for _, s := range sections {
			if s.body == "" {
				continue
			}
			out.WriteString(s.title + ":\n")
			out.WriteString(s.body)
		}
		return out.String()
	}

	parts := []string{TitleStyle.Render(SymbolCheck + " " + r.Vendor + " slide"), strings.TrimRight(head.String(), "\n")}
	for _, s := range sections {
		if s.body == "" {
			continue
		}
		parts = append(parts, SectionStyle.Render(s.title)+"\n"+BoxStyle.Render(strings.TrimRight(s.body, "\n")))
	}
	return strings.Join(parts, "\n") + "\n"
}

// RenderScanResult formats one scan line.
func RenderScanResult(r bifslide.ScanResult, styled bool) string {
	if r.OK() {
		if styled {
			return fmt.Sprintf("%s %s %s", SuccessStyle.Render(SymbolCheck), r.Path, SuccessStyle.Render(r.Vendor))
		}
		return fmt.Sprintf("ok\t%s\t%s", r.Path, r.Vendor)
	}
	if styled {
		return fmt.Sprintf("%s %s %s: %s", ErrorStyle.Render(SymbolCross), r.Path, ErrorStyle.Render(r.Kind), r.Error)
	}
	return fmt.Sprintf("%s\t%s\t%s", r.Kind, r.Path, r.Error)
}

func writeField(b *strings.Builder, key, value string, styled bool) {
	if styled {
		fmt.Fprintf(b, "%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
		return
	}
	fmt.Fprintf(b, "%s: %s\n", key, value)
}
