// Package io reads and writes daily value series.
//
// # Formats
//
// [ReadSeries] accepts three encodings, detected from the first
// non-blank character:
//
// A JSON object with an optional start date:
//
//	{"start_date": "2024-03-01", "values": [12, 0, 7, 30]}
//
// A bare JSON array of integers:
//
//	[12, 0, 7, 30]
//
// Plain text with one integer per line. Blank lines and lines starting
// with '#' are ignored:
//
//	# March
//	12
//	0
//	7
//
// Series longer than [errors.MaxSeriesLength] are rejected, and a start
// date must be YYYY-MM-DD. Values keep their sign; the layout counts
// negative values by magnitude.
//
// [WriteSeries] always produces the JSON object form, which [ReadSeries]
// reads back unchanged.
//
// [errors.MaxSeriesLength]: github.com/matzehuels/monthgraph/pkg/errors.MaxSeriesLength
package io
