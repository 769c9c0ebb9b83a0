// Package server exposes the month graph pipeline over HTTP.
//
// # Routes
//
//	GET  /healthz             liveness and build info
//	POST /v1/layout           layout document (JSON)
//	POST /v1/render?format=   rendered artifact (svg, png, pdf, json, term)
//
// Both POST routes take a JSON body with the pipeline options:
//
//	{"values": [4, 0, 7], "start_date": "2024-03-01", "height": 240}
//
// Fields left out fall back to the server defaults, which come from the
// config file. Every request builds its own month graph, so handlers share
// nothing mutable besides the cache.
//
// Responses carry an X-Request-Id header (a UUID, or the caller's own id
// when supplied) and X-Cache: hit|miss on cacheable routes. Validation
// failures return 400 with a JSON error body.
package server
