package pipeline

import (
	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/core/month"
)

// NewGraph builds a month graph from validated options without
// configuring values, for callers that keep mutating it (the live view).
func NewGraph(opts Options) (*month.Graph, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	g := month.New(opts.Metrics,
		month.WithClock(opts.Clock),
		month.WithPalette(opts.palette),
		month.WithLabels(!opts.NoLabels),
		month.WithHeight(opts.Height),
		month.WithLogger(opts.Logger),
	)
	g.Resize(opts.ScreenWidth, opts.Height)
	if err := g.SetHorizontalPadding(opts.Padding); err != nil {
		return nil, err
	}
	if opts.Start != "" {
		start, err := calendar.ParseDate(opts.Start)
		if err != nil {
			return nil, err
		}
		g.SetStartDate(start)
	}
	return g, nil
}

// ComputeLayout builds the graph and returns its configured state.
func ComputeLayout(opts Options) (month.State, error) {
	g, err := NewGraph(opts)
	if err != nil {
		return month.State{}, err
	}
	return g.Configure(opts.Values), nil
}
