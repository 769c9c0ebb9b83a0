package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render/sink"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s month.State, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	svgOpts := buildSVGOptions(opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, s, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, s, svgOpts...)
		case FormatJSON:
			data, err = sink.RenderJSON(s, sink.WithJSONStyle(opts.Style))
		case FormatTerm:
			data = []byte(sink.RenderTerminal(s) + "\n")
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	style, _ := styles.ByName(opts.Style)
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Background != "" {
		if bg, err := styles.ParseColor(opts.Background); err == nil {
			svgOpts = append(svgOpts, sink.WithBackground(bg))
		}
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	return svgOpts
}

// cacheable reports whether a format's output is independent of the
// environment it is rendered in. Terminal output depends on the color
// profile of stdout.
func cacheable(format string) bool {
	return format != FormatTerm
}
