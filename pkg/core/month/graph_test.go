package month

import (
	"reflect"
	"testing"
	"time"

	"github.com/matzehuels/monthgraph/pkg/core/calendar"
	"github.com/matzehuels/monthgraph/pkg/core/classify"
	"github.com/matzehuels/monthgraph/pkg/core/metrics"
	"github.com/matzehuels/monthgraph/pkg/errors"
)

var now = time.Date(2024, time.March, 11, 15, 30, 0, 0, time.UTC)

func newTestGraph(opts ...Option) *Graph {
	p := &metrics.Static{
		DensityDPI:   320,
		ReferenceDPI: metrics.ReferenceDPI,
		Width:        640,
		Dimensions:   map[string]float64{"inset": 8},
	}
	opts = append([]Option{WithHeight(200), WithClock(calendar.FixedClock(now))}, opts...)
	return New(p, opts...)
}

func TestNewDefaults(t *testing.T) {
	g := newTestGraph()
	s := g.State()

	if s.Configured() {
		t.Error("new graph should not be configured")
	}
	if s.TodayIndex != calendar.DefaultTodayIndex {
		t.Errorf("TodayIndex = %d, want %d", s.TodayIndex, calendar.DefaultTodayIndex)
	}
	if s.FontSize != 18 {
		t.Errorf("FontSize = %v, want 18 (9dp at 2x)", s.FontSize)
	}
	if !s.LabelsEnabled {
		t.Error("labels should be enabled by default")
	}
	if len(s.Segments()) != 0 {
		t.Error("unconfigured graph should have no segments")
	}
}

func TestFontSizeTruncates(t *testing.T) {
	p := &metrics.Static{DensityDPI: 420, ReferenceDPI: metrics.ReferenceDPI, Width: 100}
	g := New(p)
	if got := g.State().FontSize; got != 23 {
		t.Errorf("FontSize = %v, want 23", got)
	}
}

func TestConfigureNilIsNoop(t *testing.T) {
	g := newTestGraph()
	before := g.Configure([]int{1, 2, 3})
	after := g.Configure(nil)
	if !reflect.DeepEqual(before, after) {
		t.Error("Configure(nil) must not change state")
	}
	if len(after.Layout.Bars) != 3 {
		t.Errorf("len(Bars) = %d, want 3", len(after.Layout.Bars))
	}
}

func TestConfigureEmptySeries(t *testing.T) {
	g := newTestGraph()
	g.SetStartDate(calendar.NewDate(2024, time.March, 1))
	s := g.Configure([]int{})
	if !s.Configured() {
		t.Error("an empty series is still a configured series")
	}
	if !s.Layout.Empty() || len(s.Labels) != 0 {
		t.Errorf("empty series should produce nothing: %+v", s)
	}
}

func TestGeometryReservesLabelSpace(t *testing.T) {
	g := newTestGraph()
	s := g.Configure([]int{4, 8})
	if want := 200.0 - 18; s.Layout.Bars[0].Baseline != want {
		t.Errorf("Baseline = %v, want %v", s.Layout.Bars[0].Baseline, want)
	}
	if s.LabelY != 200-18 {
		t.Errorf("LabelY = %v", s.LabelY)
	}

	s = g.SetLabelsEnabled(false)
	if s.Layout.Bars[0].Baseline != 200 {
		t.Errorf("Baseline without labels = %v, want 200", s.Layout.Bars[0].Baseline)
	}
	if s.Labels != nil {
		t.Error("disabled labels should be empty")
	}
}

func TestSetHorizontalPadding(t *testing.T) {
	g := newTestGraph()
	g.Configure([]int{1, 1, 1, 1})

	if err := g.SetHorizontalPadding("inset"); err != nil {
		t.Fatalf("SetHorizontalPadding: %v", err)
	}
	s := g.State()
	if s.Layout.Padding != 16 {
		t.Errorf("Padding = %v, want 16", s.Layout.Padding)
	}
	if s.Layout.Width != 640-32 {
		t.Errorf("drawing width = %v, want %v", s.Layout.Width, 640-32)
	}
	if s.Width() != 640 {
		t.Errorf("surface width = %v, want 640", s.Width())
	}
	if s.Layout.Bars[0].X != 16+s.Layout.Slots.BarWidth/2+s.Layout.Slots.GapWidth/2 {
		t.Errorf("first bar X = %v", s.Layout.Bars[0].X)
	}

	if err := g.SetHorizontalPadding(PaddingNone); err != nil {
		t.Fatalf("SetHorizontalPadding(none): %v", err)
	}
	if g.State().Layout.Padding != 0 || g.State().Layout.Width != 640 {
		t.Errorf("none padding: %+v", g.State().Layout.Frame)
	}

	err := g.SetHorizontalPadding("missing")
	if !errors.Is(err, errors.ErrCodeInvalidDimension) {
		t.Errorf("missing dimension error = %v", err)
	}
	if g.State().Layout.Padding != 0 {
		t.Error("failed padding change must leave state unchanged")
	}
}

func TestResizeRebuilds(t *testing.T) {
	g := newTestGraph()
	before := g.Configure([]int{5, 10})
	after := g.Resize(1280, 400)

	if after.Layout.Slots.BarWidth != 2*before.Layout.Slots.BarWidth {
		t.Errorf("bar width %v -> %v, want doubled", before.Layout.Slots.BarWidth, after.Layout.Slots.BarWidth)
	}
	if after.Layout.Bars[1].Baseline != 400-18 {
		t.Errorf("baseline = %v", after.Layout.Bars[1].Baseline)
	}
	if before.Layout.Width != 640 {
		t.Error("earlier state must not change")
	}
}

func TestSetStartDate(t *testing.T) {
	g := newTestGraph()
	g.Configure(make([]int, 31))

	s := g.SetStartDate(calendar.NewDate(2024, time.March, 1))
	if s.TodayIndex != 10 {
		t.Errorf("TodayIndex = %d, want 10", s.TodayIndex)
	}
	if len(s.Labels) != 31 || s.Labels[0].Text != "1" || s.Labels[30].Text != "31" {
		t.Errorf("labels = %v", s.Labels)
	}
	if s.Labels[1].X != s.Layout.Slots.Left(1) {
		t.Errorf("label X = %v, want slot left %v", s.Labels[1].X, s.Layout.Slots.Left(1))
	}

	s = g.SetStartDate(calendar.NewDate(2024, time.February, 28))
	if s.Labels[0].Text != "28" || s.Labels[1].Text != "29" || s.Labels[2].Text != "1" {
		t.Errorf("mid-month labels = %v", s.Labels[:3])
	}

	s = g.ClearStartDate()
	if s.TodayIndex != calendar.DefaultTodayIndex || s.Start != nil || len(s.Labels) != 0 {
		t.Errorf("cleared state = %+v", s)
	}
}

func TestStartDateCopied(t *testing.T) {
	g := newTestGraph()
	s := g.SetStartDate(calendar.NewDate(2024, time.March, 1))
	s.Start.Day = 20
	if g.State().Start.Day != 1 {
		t.Error("state start date must not alias graph input")
	}
}

func TestSegmentsClassified(t *testing.T) {
	g := newTestGraph()
	g.SetStartDate(calendar.NewDate(2024, time.March, 9)) // today index 2
	s := g.Configure([]int{1, 0, 3, 4, 5})

	segs := s.Segments()
	want := []classify.Class{classify.Past, classify.Past, classify.Today, classify.Future, classify.Future}
	for i, seg := range segs {
		if seg.Class != want[i] {
			t.Errorf("segment %d class = %v, want %v", i, seg.Class, want[i])
		}
		if seg.Color != s.Palette.For(want[i]) {
			t.Errorf("segment %d color = %v", i, seg.Color)
		}
	}
	if segs[1].Visible {
		t.Error("zero value should not be visible")
	}

	counts := s.Counts()
	if counts[classify.Past] != 1 || counts[classify.Today] != 1 || counts[classify.Future] != 2 {
		t.Errorf("Counts() = %v", counts)
	}
}

func TestVisibleLabelsAlternate(t *testing.T) {
	g := newTestGraph()
	g.SetStartDate(calendar.NewDate(2024, time.March, 1))
	s := g.Configure([]int{1, 2, 3, 4, 5})

	var got []string
	for _, l := range s.VisibleLabels() {
		got = append(got, l.Text)
	}
	if want := []string{"1", "3", "5"}; !reflect.DeepEqual(got, want) {
		t.Errorf("VisibleLabels() = %v, want %v", got, want)
	}
}

func TestStatesAreIndependent(t *testing.T) {
	g := newTestGraph()
	first := g.Configure([]int{1, 2, 3})
	g.Configure([]int{9, 9, 9, 9})
	if len(first.Layout.Bars) != 3 || first.Layout.Max != 3 {
		t.Errorf("earlier state changed: %+v", first.Layout)
	}
}
