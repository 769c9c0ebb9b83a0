// Package month assembles a complete month graph from its inputs.
//
// A [Graph] owns the inputs a host view would hold: the value series, the
// optional start date, horizontal padding, surface size and whether day
// labels are drawn. Every mutation rebuilds a complete [State] and replaces
// the previous one, so a caller never observes geometry, labels and today
// index that disagree with each other.
//
// # Usage
//
//	g := month.New(metrics.NewStatic(1080), month.WithHeight(320))
//	if err := g.SetHorizontalPadding("content_inset"); err != nil {
//	    return err
//	}
//	g.SetStartDate(calendar.NewDate(2024, time.March, 1))
//	s := g.Configure(spend)
//
//	for _, seg := range s.Segments() {
//	    if seg.Visible {
//	        // stroke seg.X from seg.Baseline to seg.Top in seg.Color
//	    }
//	}
//
// # Concurrency
//
// A Graph has a single owner and must not be mutated from multiple
// goroutines. The [State] values it returns are immutable and may be shared
// freely.
package month
