// Package chart defines the serialized form of a month graph.
//
// A [Document] carries everything a renderer needs without recomputing the
// layout: the frame, slot widths, per-day segments with their class and
// color, and the day labels. `monthgraph layout` writes it and the HTTP API
// returns it from /v1/layout; the caches hold its JSON encoding.
//
// Use [Export] to build a Document from a [month.State], and
// [MarshalDocument] / [UnmarshalDocument] to move it across process
// boundaries. Decoding rejects unknown versions and segment classes.
package chart
