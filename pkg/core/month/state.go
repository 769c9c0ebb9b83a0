package month

import (
	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/core/classify"
	"github.com/matzehuels/monthgraph/pkg/core/layout"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
)

// State is an immutable snapshot of everything needed to draw a month graph.
type State struct {
	Layout        layout.Layout
	Labels        []calendar.DayLabel // one per day; empty without a start date or when disabled
	TodayIndex    int
	Start         *calendar.Date
	LabelsEnabled bool
	FontSize      float64 // label font size in pixels
	LabelY        float64 // text baseline of day labels
	Palette       styles.Palette
}

// Segment is a bar tagged with its day class and color.
type Segment struct {
	layout.Bar
	Class classify.Class
	Color styles.Color
}

// Configured reports whether a value series has been supplied.
func (s State) Configured() bool { return s.Layout.Values != nil }

// Segments tags every bar with its classification. Bars with Visible false
// are included so indices line up with Labels.
func (s State) Segments() []Segment {
	out := make([]Segment, len(s.Layout.Bars))
	for i, b := range s.Layout.Bars {
		c := classify.Classify(b.Index, s.TodayIndex)
		out[i] = Segment{Bar: b, Class: c, Color: s.Palette.For(c)}
	}
	return out
}

// VisibleLabels returns the labels drawn under alternating days, starting
// with the first.
func (s State) VisibleLabels() []calendar.DayLabel {
	if len(s.Labels) == 0 {
		return nil
	}
	out := make([]calendar.DayLabel, 0, (len(s.Labels)+1)/2)
	for _, l := range s.Labels {
		if l.Index%2 == 0 {
			out = append(out, l)
		}
	}
	return out
}

// StrokeWidth is the width every bar is stroked with.
func (s State) StrokeWidth() float64 { return s.Layout.StrokeWidth() }

// Width is the full surface width: the drawing width plus padding on both sides.
func (s State) Width() float64 { return s.Layout.Width + 2*s.Layout.Padding }

// Height is the surface height.
func (s State) Height() float64 { return s.Layout.Height }

// Counts tallies visible bars by class.
func (s State) Counts() map[classify.Class]int {
	out := make(map[classify.Class]int, 3)
	for _, seg := range s.Segments() {
		if seg.Visible {
			out[seg.Class]++
		}
	}
	return out
}
