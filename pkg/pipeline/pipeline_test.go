package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/monthgraph/pkg/cache"
	"github.com/matzehuels/monthgraph/pkg/chart"
	"github.com/matzehuels/monthgraph/pkg/core/classify"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/errors"
)

func baseOptions() Options {
	return Options{
		Values:      []int{120, 0, 60, 30},
		Start:       "2024-03-01",
		Now:         "2024-03-03",
		ScreenWidth: 400,
		Height:      100,
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Values: []int{}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.ScreenWidth != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("surface = %vx%v", opts.ScreenWidth, opts.Height)
	}
	if opts.Padding != "none" || opts.Style != "rounded" || opts.Scale != DefaultScale {
		t.Errorf("defaults = %q %q %v", opts.Padding, opts.Style, opts.Scale)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats = %v", opts.Formats)
	}
	if opts.Logger == nil || opts.Clock == nil || opts.Metrics == nil {
		t.Error("runtime defaults not set")
	}
	if opts.Palette().Today.Hex() != "#ffffff" {
		t.Errorf("palette = %+v", opts.Palette())
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		code   errors.Code
	}{
		{"nil values", func(o *Options) { o.Values = nil }, errors.ErrCodeInvalidSeries},
		{"too long", func(o *Options) { o.Values = make([]int, errors.MaxSeriesLength+1) }, errors.ErrCodeInvalidSeries},
		{"bad start", func(o *Options) { o.Start = "2024-13-01" }, errors.ErrCodeInvalidDate},
		{"bad now", func(o *Options) { o.Now = "yesterday" }, errors.ErrCodeInvalidDate},
		{"negative width", func(o *Options) { o.ScreenWidth = -1 }, errors.ErrCodeInvalidInput},
		{"huge width", func(o *Options) { o.ScreenWidth = 1e19 }, errors.ErrCodeInvalidInput},
		{"huge height", func(o *Options) { o.Height = errors.MaxDimension + 1 }, errors.ErrCodeInvalidInput},
		{"huge provider width", func(o *Options) { o.ScreenWidth = 0; o.Metrics = metrics.NewStatic(1e19) }, errors.ErrCodeInvalidInput},
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"bad style", func(o *Options) { o.Style = "sketchy" }, errors.ErrCodeInvalidInput},
		{"bad scale", func(o *Options) { o.Scale = -2 }, errors.ErrCodeInvalidInput},
		{"bad background", func(o *Options) { o.Background = "navy" }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			tt.mutate(&opts)
			err := opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestComputeLayout(t *testing.T) {
	s, err := ComputeLayout(baseOptions())
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	if s.TodayIndex != 2 {
		t.Errorf("TodayIndex = %d, want 2", s.TodayIndex)
	}
	if s.Layout.Slots.BarWidth != 75 {
		t.Errorf("BarWidth = %v, want 75", s.Layout.Slots.BarWidth)
	}
	counts := s.Counts()
	if counts[classify.Past] != 1 || counts[classify.Today] != 1 || counts[classify.Future] != 1 {
		t.Errorf("Counts = %v", counts)
	}
}

func TestComputeLayoutPadding(t *testing.T) {
	opts := baseOptions()
	p := metrics.NewStatic(440)
	p.Dimensions["inset"] = 20
	opts.Metrics = p
	opts.ScreenWidth = 0
	opts.Padding = "inset"

	s, err := ComputeLayout(opts)
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	if s.Layout.Width != 400 || s.Layout.Padding != 20 {
		t.Errorf("width/padding = %v/%v, want 400/20", s.Layout.Width, s.Layout.Padding)
	}

	opts.Padding = "gutter"
	if _, err := ComputeLayout(opts); !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("unknown padding error = %v", err)
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	opts := baseOptions()
	opts.Formats = []string{FormatSVG, FormatJSON}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should miss")
	}
	if first.Stats.Days != 4 || first.Stats.Max != 120 {
		t.Errorf("Stats = %+v", first.Stats)
	}
	if !bytes.HasPrefix(first.Artifacts[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact missing")
	}
	doc, err := chart.UnmarshalDocument(first.Artifacts[FormatJSON])
	if err != nil || doc.TodayIndex != 2 {
		t.Errorf("json artifact = %+v, %v", doc, err)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs")
	}

	opts.Now = "2024-03-04"
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("a new day should not hit yesterday's artifacts")
	}
}

func TestRunnerTerminalNotCached(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)

	opts := baseOptions()
	opts.Formats = []string{FormatTerm}
	for i := 0; i < 2; i++ {
		res, err := r.Execute(ctx, opts)
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if res.CacheInfo.RenderHit {
			t.Error("terminal output should never come from the cache")
		}
		if !strings.Contains(string(res.Artifacts[FormatTerm]), "█") {
			t.Errorf("terminal artifact = %q", res.Artifacts[FormatTerm])
		}
	}
}

func TestRunnerLayoutDocument(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)

	data, hit, err := r.LayoutDocument(ctx, baseOptions())
	if err != nil || hit {
		t.Fatalf("first LayoutDocument: hit=%v err=%v", hit, err)
	}
	cached, hit, err := r.LayoutDocument(ctx, baseOptions())
	if err != nil || !hit {
		t.Fatalf("second LayoutDocument: hit=%v err=%v", hit, err)
	}
	if !bytes.Equal(data, cached) {
		t.Error("cached document differs")
	}

	opts := baseOptions()
	opts.Values = []int{1, 2, 3, 4}
	if _, hit, _ := r.LayoutDocument(ctx, opts); hit {
		t.Error("different values should miss")
	}
}

func TestRunnerLayoutDocumentKeyedByStyle(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)

	tests := []struct {
		style   string
		wantHit bool
	}{
		{"rounded", false},
		{"flat", false},
		{"rounded", true},
		{"flat", true},
	}
	for _, tt := range tests {
		opts := baseOptions()
		opts.Style = tt.style
		data, hit, err := r.LayoutDocument(ctx, opts)
		if err != nil {
			t.Fatalf("LayoutDocument(%s): %v", tt.style, err)
		}
		if hit != tt.wantHit {
			t.Errorf("LayoutDocument(%s) hit = %v, want %v", tt.style, hit, tt.wantHit)
		}
		doc, err := chart.UnmarshalDocument(data)
		if err != nil {
			t.Fatalf("UnmarshalDocument: %v", err)
		}
		if doc.Style != tt.style {
			t.Errorf("document style = %q, want %q", doc.Style, tt.style)
		}
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{}); !errors.Is(err, errors.ErrCodeInvalidSeries) {
		t.Errorf("Execute error = %v", err)
	}
}
