// Package pkg provides the core libraries for monthgraph, a bar chart of
// one calendar month of daily values.
//
// # Overview
//
// Each day is a vertical bar. Bars before today are drawn in the past
// color, today's bar in the today color, and later bars in the future
// color. Day-of-month labels sit under every other bar. The pkg directory
// is organized into three areas:
//
//  1. [core] - Domain logic (dates, classification, layout, rendering)
//  2. [pipeline] - Orchestration (layout → render) shared by CLI and API
//  3. Infrastructure ([cache], [config], [server], [observability])
//
// # Architecture
//
// The typical data flow:
//
//	values + start date
//	         ↓
//	    [core/month] package (holds the inputs, rebuilds state)
//	         ↓
//	    [core/layout] + [core/calendar] (slots, bars, labels, today index)
//	         ↓
//	    [core/render/sink] package (SVG, PNG, PDF, JSON, terminal)
//
// # Quick Start
//
//	import (
//	    "time"
//
//	    "github.com/matzehuels/monthgraph/pkg/core/calendar"
//	    "github.com/matzehuels/monthgraph/pkg/core/metrics"
//	    "github.com/matzehuels/monthgraph/pkg/core/month"
//	    "github.com/matzehuels/monthgraph/pkg/core/render/sink"
//	)
//
//	g := month.New(metrics.NewStatic(720), month.WithHeight(240))
//	g.SetStartDate(calendar.Date{Year: 2024, Month: time.March, Day: 1})
//	state := g.Configure([]int{4, 0, 7, 12, 3})
//	svg := sink.RenderSVG(state)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/calendar] - Day-granularity dates, clocks, day labels and the
// today index.
//
// [core/classify] - Past, today and future classification of a day index.
//
// [core/layout] - Slot geometry: bar and gap widths, centers, baseline and
// linear bar heights.
//
// [core/metrics] - Display metrics providers: density, screen width and
// named dimensions, for static surfaces and terminals.
//
// [core/month] - The month graph. Every setter rebuilds a complete
// immutable [month.State].
//
// [core/render/styles] - Palettes and bar styles (rounded, flat).
//
// [core/render/sink] - Output formats. PNG and PDF go through [core/render]
// conversion helpers.
//
// ## Serialization
//
// [chart] - The JSON/BSON layout document.
//
// [io] - Reading and writing value series.
//
// ## Infrastructure
//
// [pipeline] - Validation, defaults and cached layout/render used by the CLI
// and the HTTP API.
//
// [cache] - Layout and artifact caches: null, file, Redis and MongoDB.
//
// [config] - TOML configuration.
//
// [server] - HTTP API.
//
// [observability] - Hooks for layout, render, cache and request events.
//
// [errors] - Coded errors and input validation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/layout/...        # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// Redis and MongoDB tests only check unavailable backends; they need no
// running services.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core
// [core/calendar]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/calendar
// [core/classify]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/classify
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/layout
// [core/metrics]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/metrics
// [core/month]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/month
// [month.State]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/month#State
// [core/render]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/render
// [core/render/styles]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/render/styles
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/core/render/sink
// [chart]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/chart
// [io]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/server
// [observability]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/monthgraph/pkg/errors
package pkg
