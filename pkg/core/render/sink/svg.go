package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	background *styles.Color
	title      string
}

// WithStyle selects the bar style (default [styles.Rounded]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithBackground fills the canvas before drawing. Without it the
// background is transparent.
func WithBackground(c styles.Color) SVGOption {
	return func(r *svgRenderer) { r.background = &c }
}

// WithTitle adds an SVG <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderSVG renders the state as a standalone SVG document.
func RenderSVG(s month.State, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	width, height := s.Width(), s.Height()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(r.title))
	}
	r.style.RenderDefs(&buf)
	if r.background != nil {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", r.background.Hex())
	}

	renderBars(&buf, r.style, s)
	renderLabels(&buf, r.style, s)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Rounded{}}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func renderBars(buf *bytes.Buffer, style styles.Style, s month.State) {
	buf.WriteString(`  <g class="bars">` + "\n")
	width := s.StrokeWidth()
	for _, seg := range s.Segments() {
		if !seg.Visible {
			continue
		}
		style.RenderBar(buf, styles.Bar{
			Index: seg.Index,
			X:     seg.X,
			Y1:    seg.Baseline,
			Y2:    seg.Top,
			Width: width,
			Class: seg.Class,
			Color: seg.Color,
		})
	}
	buf.WriteString("  </g>\n")
}

func renderLabels(buf *bytes.Buffer, style styles.Style, s month.State) {
	labels := s.VisibleLabels()
	if len(labels) == 0 {
		return
	}
	buf.WriteString(`  <g class="labels">` + "\n")
	for _, l := range labels {
		style.RenderLabel(buf, styles.Label{
			Index:    l.Index,
			X:        l.X,
			Y:        s.LabelY,
			Text:     l.Text,
			FontSize: s.FontSize,
			Color:    s.Palette.Label,
		})
	}
	buf.WriteString("  </g>\n")
}
