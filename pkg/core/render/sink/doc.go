// Package sink provides output format renderers for month graphs.
//
// # Overview
//
// A "sink" transforms a computed [month.State] into a final output format:
//
//   - SVG: one stroked line per visible bar, text per visible label
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//   - JSON: the [chart.Document] serialization
//   - Terminal: colored block glyphs for ANSI terminals
//
// Sinks never recompute geometry. Every coordinate comes from the state's
// layout, so all formats agree on bar placement.
//
// # SVG Output
//
//	svg := sink.RenderSVG(state,
//	    sink.WithStyle(styles.Flat{}),
//	    sink.WithBackground(styles.MustParseColor("#1b1d2a")),
//	)
//
// # PDF and PNG Output
//
// [RenderPDF] and [RenderPNG] generate SVG and convert it via
// [render.ToPDF] and [render.ToPNG]. These require librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// # Terminal Output
//
// [RenderTerminal] rasterizes the state onto character cells. Each cell
// covers [metrics.CellWidth] by [metrics.CellHeight] pixels, so a state
// built with a [metrics.Terminal] provider maps one to one onto the
// terminal grid. Bar tops use eighth-block glyphs for sub-cell precision.
//
// [render.ToPDF]: github.com/matzehuels/monthgraph/pkg/core/render.ToPDF
// [render.ToPNG]: github.com/matzehuels/monthgraph/pkg/core/render.ToPNG
package sink
