package layout

import "math"

const (
	// BarShare is the fraction of the drawing width given to bars.
	BarShare = 0.75
	// GapShare is the fraction of the drawing width given to inter-bar gaps.
	GapShare = 1 - BarShare
)

// Frame describes the drawing area a layout is computed for.
// All values are in pixels.
type Frame struct {
	Width       float64 // horizontal space shared by all slots
	Height      float64 // full view height
	Padding     float64 // horizontal padding, also applied top and bottom
	LabelHeight float64 // space reserved below the baseline for day labels
}

// Baseline is the y coordinate of a zero value.
func (f Frame) Baseline() float64 {
	return f.Height - f.Padding - f.LabelHeight
}

// BarRange is the pixel height available to the tallest bar.
func (f Frame) BarRange() float64 {
	return f.Height - 2*f.Padding - f.LabelHeight
}

// Layout is the complete bar geometry for one series.
type Layout struct {
	Frame
	Values []int // normalized (non-negative) values
	Max    int   // largest value; 0 for empty or all-zero series
	Slots  Slots
	Bars   []Bar // one per value, in day order
}

// StrokeWidth is the line width a surface uses to stroke each bar.
func (l Layout) StrokeWidth() float64 { return l.Slots.BarWidth }

// Empty reports whether the layout has nothing to draw.
func (l Layout) Empty() bool {
	for _, b := range l.Bars {
		if b.Visible {
			return false
		}
	}
	return true
}

// Compute lays out values inside f. Negative values are taken as their
// magnitude. The input slice is not modified.
func Compute(values []int, f Frame) Layout {
	norm := Normalize(values)
	l := Layout{
		Frame:  f,
		Values: norm,
		Max:    Max(norm),
		Slots:  ComputeSlots(f.Width, len(norm), f.Padding),
	}
	if len(norm) == 0 {
		return l
	}

	baseline := f.Baseline()
	barRange := f.BarRange()
	l.Bars = make([]Bar, len(norm))
	for i, v := range norm {
		b := Bar{
			Index:    i,
			Value:    v,
			X:        l.Slots.Center(i),
			Baseline: baseline,
			Top:      baseline,
		}
		if v != 0 && l.Max != 0 && barRange > 0 {
			b.Top = baseline - Scale(float64(v), float64(l.Max), barRange)
			b.Visible = true
		}
		l.Bars[i] = b
	}
	return l
}

// Normalize returns a copy of values with every entry replaced by its
// absolute value. math.MinInt, whose negation overflows, becomes
// math.MaxInt. A nil slice stays nil.
func Normalize(values []int) []int {
	if values == nil {
		return nil
	}
	out := make([]int, len(values))
	for i, v := range values {
		switch {
		case v == math.MinInt:
			v = math.MaxInt
		case v < 0:
			v = -v
		}
		out[i] = v
	}
	return out
}

// Max returns the largest value, or 0 for an empty series.
func Max(values []int) int {
	var m int
	for _, v := range values {
		m = max(m, v)
	}
	return m
}

// Scale maps value linearly from [0, domainMax] onto [0, rangeMax].
// An empty domain maps everything to 0.
func Scale(value, domainMax, rangeMax float64) float64 {
	if domainMax == 0 {
		return 0
	}
	return rangeMax * (value / domainMax)
}
