// Package layout computes bar geometry for month graphs.
//
// # Overview
//
// Given a series of daily values and a drawing frame, [Compute] produces one
// vertical [Bar] per day: a segment from a shared baseline up to a height
// proportional to the day's value. The result is a complete [Layout] holding
// everything a rendering surface needs to stroke the bars.
//
// # Slot Sizing
//
// The drawing width is split into one slot per day. Three quarters of the
// width goes to bars and one quarter to the gaps between them, both divided
// evenly across the days:
//
//	barWidth = width * 0.75 / n
//	gapWidth = width * 0.25 / n
//
// The ratio is fixed. A bar is centered in its slot, so the center of day i is
//
//	padding + barWidth/2 + gapWidth/2 + i*(barWidth+gapWidth)
//
// # Bar Heights
//
// Values are mapped linearly from [0, max] to [0, height - 2*padding - labelHeight],
// where max is the largest value in the series. Bars grow upward from
//
//	baseline = height - padding - labelHeight
//
// Days with a zero value, every day of a series whose maximum is zero, and every
// day of a frame too short to hold a bar have no bar ([Bar.Visible] is false).
// An empty series yields an empty layout.
//
// # Immutability
//
// A [Layout] is never patched. Any change to the values or the frame means
// calling [Compute] again and replacing the previous result.
package layout
