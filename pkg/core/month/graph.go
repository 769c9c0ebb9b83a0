package month

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/core/layout"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
)

const (
	// DefaultFontSizeDP is the label font size before density scaling.
	DefaultFontSizeDP = 9

	// PaddingNone selects zero horizontal padding.
	PaddingNone = "none"
)

// Graph holds the inputs of one month graph and its current State.
type Graph struct {
	metrics metrics.Provider
	clock   calendar.Clock
	palette styles.Palette
	logger  *log.Logger

	values      []int
	start       *calendar.Date
	todayIndex  int
	padding     float64
	screenWidth float64
	height      float64
	labels      bool
	fontSize    float64

	state State
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithClock sets the clock used to derive the today index.
func WithClock(c calendar.Clock) Option { return func(g *Graph) { g.clock = c } }

// WithPalette overrides the default colors.
func WithPalette(p styles.Palette) Option { return func(g *Graph) { g.palette = p } }

// WithLabels enables or disables day labels (enabled by default).
func WithLabels(enabled bool) Option { return func(g *Graph) { g.labels = enabled } }

// WithHeight sets the view height in pixels.
func WithHeight(h float64) Option { return func(g *Graph) { g.height = h } }

// WithLogger sets the logger for debug output.
func WithLogger(l *log.Logger) Option { return func(g *Graph) { g.logger = l } }

// New creates a Graph measuring its host through p.
// The drawing width starts as the provider's full screen width.
func New(p metrics.Provider, opts ...Option) *Graph {
	g := &Graph{
		metrics:    p,
		clock:      calendar.SystemClock{},
		palette:    styles.DefaultPalette,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
		todayIndex: calendar.DefaultTodayIndex,
		labels:     true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.fontSize = math.Trunc(metrics.DPToPixel(p, DefaultFontSizeDP))
	g.screenWidth = p.ScreenWidth()
	g.rebuild()
	return g
}

// State returns the current derived state.
func (g *Graph) State() State { return g.state }

// Configure replaces the value series. Negative values count by magnitude.
// A nil series is ignored and the current state is returned unchanged.
func (g *Graph) Configure(values []int) State {
	if values == nil {
		return g.state
	}
	g.values = layout.Normalize(values)
	s := g.rebuild()
	g.logger.Debug("configured series", "days", len(s.Layout.Values), "max", s.Layout.Max)
	return s
}

// SetHorizontalPadding resolves a dimension resource and uses it as padding.
// PaddingNone selects zero padding. On error the state is left unchanged.
func (g *Graph) SetHorizontalPadding(id string) error {
	if id == PaddingNone {
		g.SetHorizontalPaddingPixels(0)
		return nil
	}
	px, err := g.metrics.ResolveDimension(id)
	if err != nil {
		return err
	}
	g.SetHorizontalPaddingPixels(px)
	return nil
}

// SetHorizontalPaddingPixels sets the padding directly in pixels.
// The drawing width becomes the screen width less the padding on both sides.
func (g *Graph) SetHorizontalPaddingPixels(px float64) State {
	g.padding = max(0, px)
	return g.rebuild()
}

// SetStartDate sets the date of the first value and recomputes the today
// index from the graph's clock.
func (g *Graph) SetStartDate(d calendar.Date) State {
	g.start = &d
	g.todayIndex = calendar.TodayIndexAt(d, g.clock)
	g.logger.Debug("today index set", "start", d, "today", g.todayIndex)
	return g.rebuild()
}

// ClearStartDate removes the start date; labels disappear and the today
// index returns to its default.
func (g *Graph) ClearStartDate() State {
	g.start = nil
	g.todayIndex = calendar.DefaultTodayIndex
	return g.rebuild()
}

// Resize records a new screen width and view height.
func (g *Graph) Resize(screenWidth, height float64) State {
	g.screenWidth = screenWidth
	g.height = height
	return g.rebuild()
}

// SetLabelsEnabled toggles day labels and the space reserved for them.
func (g *Graph) SetLabelsEnabled(enabled bool) State {
	g.labels = enabled
	return g.rebuild()
}

func (g *Graph) drawingWidth() float64 {
	return max(0, g.screenWidth-2*g.padding)
}

func (g *Graph) rebuild() State {
	var labelHeight float64
	if g.labels {
		labelHeight = g.fontSize
	}
	frame := layout.Frame{
		Width:       g.drawingWidth(),
		Height:      g.height,
		Padding:     g.padding,
		LabelHeight: labelHeight,
	}

	s := State{
		Layout:        layout.Compute(g.values, frame),
		TodayIndex:    g.todayIndex,
		LabelsEnabled: g.labels,
		FontSize:      g.fontSize,
		LabelY:        g.height - g.fontSize,
		Palette:       g.palette,
	}
	if g.start != nil {
		d := *g.start
		s.Start = &d
	}
	if g.labels {
		s.Labels = calendar.DayLabels(s.Start, len(s.Layout.Values), s.Layout.Slots)
	}
	g.state = s
	return s
}
