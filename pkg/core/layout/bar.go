package layout

// Bar is the vertical segment drawn for one day.
// When Visible is false there is nothing to stroke and Top equals Baseline.
type Bar struct {
	Index    int
	Value    int
	X        float64 // horizontal center
	Baseline float64 // y of the zero value
	Top      float64 // y of the bar's end; smaller is higher
	Visible  bool
}

// Height returns the drawn length of the bar.
func (b Bar) Height() float64 { return b.Baseline - b.Top }
