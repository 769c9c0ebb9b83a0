package chart

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/monthgraph/pkg/core/classify"
	"github.com/matzehuels/monthgraph/pkg/core/month"
)

// Version is the current document format version.
const Version = 1

// Document is the serialized form of a month graph.
type Document struct {
	Version int `json:"version"`

	// Frame
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
	Style   string  `json:"style,omitempty"`

	// Slots
	BarWidth float64 `json:"bar_width"`
	GapWidth float64 `json:"gap_width"`
	Baseline float64 `json:"baseline"`

	// Series
	Values     []int  `json:"values"`
	Max        int    `json:"max"`
	TodayIndex int    `json:"today_index"`
	StartDate  string `json:"start_date,omitempty"`

	// Labels
	LabelsEnabled bool    `json:"labels_enabled"`
	FontSize      float64 `json:"font_size"`
	LabelY        float64 `json:"label_y"`

	Palette  Palette   `json:"palette"`
	Segments []Segment `json:"segments"`
	Labels   []Label   `json:"labels,omitempty"`
}

// Palette holds the colors as #aarrggbb hex strings.
type Palette struct {
	Past   string `json:"past"`
	Today  string `json:"today"`
	Future string `json:"future"`
	Label  string `json:"label"`
}

// Segment is one day's bar.
type Segment struct {
	Index   int     `json:"index"`
	Value   int     `json:"value"`
	X       float64 `json:"x"`
	Y1      float64 `json:"y1"`
	Y2      float64 `json:"y2"`
	Visible bool    `json:"visible"`
	Class   string  `json:"class"`
	Color   string  `json:"color"`
}

// Label is one day-of-month label. Hidden labels belong to odd days and are
// kept so indices line up with segments.
type Label struct {
	Index   int     `json:"index"`
	X       float64 `json:"x"`
	Text    string  `json:"text"`
	Visible bool    `json:"visible"`
}

// Export converts a state into a Document. A state without values exports
// its frame and palette only.
func Export(s month.State) Document {
	l := s.Layout
	doc := Document{
		Version:       Version,
		Width:         s.Width(),
		Height:        s.Height(),
		Padding:       l.Padding,
		BarWidth:      l.Slots.BarWidth,
		GapWidth:      l.Slots.GapWidth,
		Baseline:      l.Baseline(),
		Values:        append([]int(nil), l.Values...),
		Max:           l.Max,
		TodayIndex:    s.TodayIndex,
		LabelsEnabled: s.LabelsEnabled,
		FontSize:      s.FontSize,
		LabelY:        s.LabelY,
		Palette: Palette{
			Past:   s.Palette.Past.ARGB(),
			Today:  s.Palette.Today.ARGB(),
			Future: s.Palette.Future.ARGB(),
			Label:  s.Palette.Label.ARGB(),
		},
		Segments: make([]Segment, 0, len(l.Bars)),
	}
	if !s.Configured() {
		return doc
	}
	if s.Start != nil {
		doc.StartDate = s.Start.String()
	}

	for _, seg := range s.Segments() {
		doc.Segments = append(doc.Segments, Segment{
			Index:   seg.Index,
			Value:   seg.Value,
			X:       seg.X,
			Y1:      seg.Baseline,
			Y2:      seg.Top,
			Visible: seg.Visible,
			Class:   seg.Class.String(),
			Color:   seg.Color.ARGB(),
		})
	}
	for _, lbl := range s.Labels {
		doc.Labels = append(doc.Labels, Label{
			Index:   lbl.Index,
			X:       lbl.X,
			Text:    lbl.Text,
			Visible: lbl.Index%2 == 0,
		})
	}
	return doc
}

// MarshalDocument serializes a Document to pretty-printed JSON.
func MarshalDocument(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalDocument parses JSON produced by [MarshalDocument].
func UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("unmarshal document: %w", err)
	}
	if d.Version == 0 {
		return Document{}, fmt.Errorf("unmarshal document: missing version")
	}
	if d.Version > Version {
		return Document{}, fmt.Errorf("unmarshal document: unsupported version %d", d.Version)
	}
	for _, seg := range d.Segments {
		if _, ok := classify.Parse(seg.Class); !ok {
			return Document{}, fmt.Errorf("unmarshal document: segment %d has unknown class %q", seg.Index, seg.Class)
		}
	}
	return d, nil
}
