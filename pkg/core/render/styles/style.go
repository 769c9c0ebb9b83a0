package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/monthgraph/pkg/core/classify"
)

// Style defines how bars and labels are written as SVG.
type Style interface {
	// Name identifies the style in options and serialized output.
	Name() string
	// RenderDefs writes SVG <defs> content, if any.
	RenderDefs(buf *bytes.Buffer)
	// RenderBar writes one bar.
	RenderBar(buf *bytes.Buffer, b Bar)
	// RenderLabel writes one day label.
	RenderLabel(buf *bytes.Buffer, l Label)
}

// Bar contains all data needed to stroke one day's bar.
type Bar struct {
	Index  int
	X      float64 // stroke center
	Y1, Y2 float64 // baseline and top
	Width  float64 // stroke width
	Class  classify.Class
	Color  Color
}

// Label contains all data needed to draw one day label.
type Label struct {
	Index    int
	X, Y     float64 // text origin (left edge, baseline)
	Text     string
	FontSize float64
	Color    Color
}

// ByName returns the style registered under name.
func ByName(name string) (Style, bool) {
	switch name {
	case "", StyleRounded:
		return Rounded{}, true
	case StyleFlat:
		return Flat{}, true
	}
	return nil, false
}

// Style names.
const (
	StyleRounded = "rounded"
	StyleFlat    = "flat"
)

// Names lists the available styles.
func Names() []string { return []string{StyleRounded, StyleFlat} }

// Rounded strokes bars with round caps.
type Rounded struct{}

func (Rounded) Name() string                           { return StyleRounded }
func (Rounded) RenderDefs(buf *bytes.Buffer)           {}
func (Rounded) RenderBar(buf *bytes.Buffer, b Bar)     { renderLine(buf, b, "round") }
func (Rounded) RenderLabel(buf *bytes.Buffer, l Label) { renderText(buf, l) }

// Flat strokes bars with square ends.
type Flat struct{}

func (Flat) Name() string                           { return StyleFlat }
func (Flat) RenderDefs(buf *bytes.Buffer)           {}
func (Flat) RenderBar(buf *bytes.Buffer, b Bar)     { renderLine(buf, b, "butt") }
func (Flat) RenderLabel(buf *bytes.Buffer, l Label) { renderText(buf, l) }

func renderLine(buf *bytes.Buffer, b Bar, linecap string) {
	fmt.Fprintf(buf, `  <line id="day-%d" class="bar %s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-linecap="%s"`,
		b.Index, b.Class, b.X, b.Y1, b.X, b.Y2, b.Color.Hex(), b.Width, linecap)
	if !b.Color.Opaque() {
		fmt.Fprintf(buf, ` stroke-opacity="%.2f"`, b.Color.Opacity())
	}
	buf.WriteString("/>\n")
}

func renderText(buf *bytes.Buffer, l Label) {
	fmt.Fprintf(buf, `  <text class="day-label" x="%.2f" y="%.2f" font-size="%.0f" font-family="sans-serif" fill="%s"`,
		l.X, l.Y, l.FontSize, l.Color.Hex())
	if !l.Color.Opaque() {
		fmt.Fprintf(buf, ` fill-opacity="%.2f"`, l.Color.Opacity())
	}
	fmt.Fprintf(buf, ">%s</text>\n", EscapeXML(l.Text))
}

// EscapeXML escapes s for use as SVG character data.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
