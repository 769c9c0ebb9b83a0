// Package styles defines colors and SVG drawing styles for month graphs.
//
// # Palette
//
// A [Palette] holds the three bar colors (past, today, future) and the label
// color. [DefaultPalette] is the graph's fixed look: teal past days, a white
// today bar, muted indigo future days and translucent white labels. Colors
// accept both #rrggbb and #aarrggbb, with alpha first.
//
// # Styles
//
// A [Style] writes the SVG for each bar and label:
//
//   - [Rounded]: round stroke caps, the default
//   - [Flat]: square-ended bars
//
// Sinks hand a style fully resolved [Bar] and [Label] values; styles do no
// geometry of their own.
package styles
