package layout

// Slots is the horizontal division of the drawing width into day slots.
type Slots struct {
	Count    int
	BarWidth float64
	GapWidth float64
	Padding  float64
}

// ComputeSlots divides width among n days. Zero days yields zero-width slots.
func ComputeSlots(width float64, n int, padding float64) Slots {
	s := Slots{Count: n, Padding: padding}
	if n <= 0 {
		s.Count = 0
		return s
	}
	s.BarWidth = width * BarShare / float64(n)
	s.GapWidth = width * GapShare / float64(n)
	return s
}

// Pitch is the distance between the centers of adjacent days.
func (s Slots) Pitch() float64 { return s.BarWidth + s.GapWidth }

// Center returns the x coordinate of day i's bar.
func (s Slots) Center(i int) float64 {
	return s.Padding + s.BarWidth/2 + s.GapWidth/2 + float64(i)*s.Pitch()
}

// Left returns the left edge of day i's bar, where its label starts.
func (s Slots) Left(i int) float64 {
	return s.Center(i) - s.BarWidth/2
}

// Total is the width covered by all bars and gaps.
func (s Slots) Total() float64 {
	return float64(s.Count) * s.Pitch()
}
