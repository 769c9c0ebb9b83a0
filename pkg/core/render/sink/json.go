package sink

import (
	"github.com/matzehuels/monthgraph/pkg/chart"
	"github.com/matzehuels/monthgraph/pkg/core/month"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style string
}

// WithJSONStyle records the style name in the output for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// RenderJSON renders the state as a pretty-printed [chart.Document].
func RenderJSON(s month.State, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	doc := chart.Export(s)
	doc.Style = r.style
	return chart.MarshalDocument(doc)
}
