package sink

import (
	"context"

	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render"
)

// RenderPDF renders the state as PDF via SVG conversion.
func RenderPDF(ctx context.Context, s month.State, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(s, opts...))
}
