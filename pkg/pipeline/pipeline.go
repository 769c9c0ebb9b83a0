// Package pipeline provides the layout → render pipeline for month graphs.
//
// The CLI and the HTTP API both go through this package so that defaults,
// validation and caching behave the same everywhere.
//
// # Stages
//
//  1. Layout: build a [month.Graph] from the options and snapshot its state
//  2. Render: produce artifacts (SVG, PNG, PDF, JSON, terminal) from the state
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Values:  []int{4, 0, 7, 12},
//	    Start:   "2024-03-01",
//	    Formats: []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/monthgraph/pkg/cache"
	"github.com/matzehuels/monthgraph/pkg/chart"
	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/core/render/styles"
	"github.com/matzehuels/monthgraph/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the screen width used when no metrics provider is given.
	DefaultWidth = 720.0

	// DefaultHeight is the default view height in pixels.
	DefaultHeight = 240.0

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatTerm = "term"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatTerm}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Series
	Values []int  `json:"values"`
	Start  string `json:"start_date,omitempty"`
	Now    string `json:"now,omitempty"` // overrides the clock's date

	// Surface
	ScreenWidth float64 `json:"screen_width,omitempty"` // overrides the provider's width
	Height      float64 `json:"height,omitempty"`
	Padding     string  `json:"padding,omitempty"` // dimension id or "none"
	NoLabels    bool    `json:"no_labels,omitempty"`

	// Render
	Formats    []string           `json:"formats,omitempty"`
	Style      string             `json:"style,omitempty"`
	Scale      float64            `json:"scale,omitempty"`
	Background string             `json:"background,omitempty"`
	Title      string             `json:"title,omitempty"`
	Colors     styles.PaletteSpec `json:"colors,omitempty"`

	// Runtime options (not serialized)
	Metrics metrics.Provider `json:"-"`
	Clock   calendar.Clock   `json:"-"`
	Logger  *log.Logger      `json:"-"`

	palette   styles.Palette
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// State is the computed month graph.
	State month.State

	// Document is the serialized state.
	Document chart.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Days       int
	Max        int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.validateSeries(); err != nil {
		return err
	}
	if err := o.setSurfaceDefaults(); err != nil {
		return err
	}
	if err := o.setRenderDefaults(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) validateSeries() error {
	if o.Values == nil {
		return errors.New(errors.ErrCodeInvalidSeries, "values are required")
	}
	if err := errors.ValidateSeriesLength(len(o.Values)); err != nil {
		return err
	}
	if o.Start != "" {
		if err := errors.ValidateDate(o.Start); err != nil {
			return err
		}
	}
	if o.Now != "" {
		now, err := calendar.ParseDate(o.Now)
		if err != nil {
			return err
		}
		o.Clock = calendar.FixedClock(now.Time())
	}
	if o.Clock == nil {
		o.Clock = calendar.SystemClock{}
	}
	return nil
}

func (o *Options) setSurfaceDefaults() error {
	if err := errors.ValidateDimensions(o.ScreenWidth, o.Height); err != nil {
		return err
	}
	if o.Metrics == nil {
		o.Metrics = metrics.NewStatic(DefaultWidth)
	}
	if o.ScreenWidth == 0 {
		o.ScreenWidth = o.Metrics.ScreenWidth()
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Padding == "" {
		o.Padding = month.PaddingNone
	}
	return errors.ValidateDimensions(o.ScreenWidth, o.Height)
}

func (o *Options) setRenderDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, Formats); err != nil {
			return err
		}
	}
	if o.Style == "" {
		o.Style = styles.StyleRounded
	}
	if _, ok := styles.ByName(o.Style); !ok {
		return errors.New(errors.ErrCodeInvalidInput, "invalid style: %q (must be one of: %s)", o.Style, strings.Join(styles.Names(), ", "))
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale cannot be negative")
	}
	if o.Background != "" {
		if _, err := styles.ParseColor(o.Background); err != nil {
			return err
		}
	}
	p, err := o.Colors.Resolve()
	if err != nil {
		return err
	}
	o.palette = p
	return nil
}

// Palette returns the resolved palette. Valid after ValidateAndSetDefaults.
func (o *Options) Palette() styles.Palette { return o.palette }

// Today returns the date the options treat as today.
func (o *Options) Today() calendar.Date {
	if o.Clock == nil {
		return calendar.DateOf(time.Now())
	}
	return calendar.DateOf(o.Clock.Now())
}

// LayoutKeyOpts returns cache key options for the layout.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	padding := o.Padding
	if px, err := o.Metrics.ResolveDimension(o.Padding); err == nil {
		padding = fmt.Sprintf("%s=%g", o.Padding, px)
	}
	p := o.palette
	return cache.LayoutKeyOpts{
		Start:            o.Start,
		Today:            o.Today().String(),
		Width:            o.ScreenWidth,
		Height:           o.Height,
		Padding:          padding,
		Labels:           !o.NoLabels,
		Density:          o.Metrics.Density(),
		ReferenceDensity: o.Metrics.ReferenceDensity(),
		Palette:          strings.Join([]string{p.Past.ARGB(), p.Today.ARGB(), p.Future.ARGB(), p.Label.ARGB()}, ","),
		Style:            o.Style,
	}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
	}
	switch format {
	case FormatSVG, FormatPNG, FormatPDF:
		opts.Background = o.Background
		opts.Title = o.Title
		if format == FormatPNG {
			opts.Scale = o.Scale
		}
	}
	return opts
}
