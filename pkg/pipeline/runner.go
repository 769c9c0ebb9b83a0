package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/monthgraph/pkg/cache"
	"github.com/matzehuels/monthgraph/pkg/chart"
	"github.com/matzehuels/monthgraph/pkg/core/month"
	"github.com/matzehuels/monthgraph/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs layout and render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	layoutStart := time.Now()
	doc, state, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result := &Result{
		State:    state,
		Document: doc,
		Stats: Stats{
			Days:       len(state.Layout.Values),
			Max:        state.Layout.Max,
			LayoutTime: time.Since(layoutStart),
		},
	}
	r.Logger.Info("computed layout",
		"days", result.Stats.Days,
		"today", state.TodayIndex,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, doc, state, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)
	return result, nil
}

// Layout computes the month state and its document.
func (r *Runner) Layout(ctx context.Context, opts Options) (chart.Document, month.State, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return chart.Document{}, month.State{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(opts.Values))
	start := time.Now()
	state, err := ComputeLayout(opts)
	hooks.OnLayoutComplete(ctx, len(opts.Values), time.Since(start), err)
	if err != nil {
		return chart.Document{}, month.State{}, err
	}

	doc := chart.Export(state)
	doc.Style = opts.Style
	return doc, state, nil
}

// LayoutDocument returns the JSON layout document, served from the cache
// when an identical series was laid out for the same surface and day.
func (r *Runner) LayoutDocument(ctx context.Context, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	key := r.Keyer.LayoutKey(cache.HashValues(opts.Values), opts.LayoutKeyOpts())

	if data, hit := r.get(ctx, key, "layout"); hit {
		return data, true, nil
	}

	doc, _, err := r.Layout(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	data, err := chart.MarshalDocument(doc)
	if err != nil {
		return nil, false, fmt.Errorf("marshal document: %w", err)
	}
	r.set(ctx, key, "layout", data, cache.TTLLayout)
	return data, false, nil
}

// RenderWithCacheInfo renders every requested format, reporting whether
// all of them came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc chart.Document, state month.State, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	docData, err := chart.MarshalDocument(doc)
	if err != nil {
		return nil, false, fmt.Errorf("serialize document for cache key: %w", err)
	}
	docHash := cache.Hash(docData)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !cacheable(format) {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if data, hit := r.get(ctx, key, "artifact"); hit {
			artifacts[format] = data
		} else {
			missing = append(missing, format)
		}
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, missing)
	start := time.Now()
	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, state, renderOpts)
	hooks.OnRenderComplete(ctx, missing, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		if cacheable(format) {
			key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
			r.set(ctx, key, "artifact", data, cache.TTLArtifact)
		}
	}
	return artifacts, false, nil
}

// Render is RenderWithCacheInfo without the cache hit info.
func (r *Runner) Render(ctx context.Context, doc chart.Document, state month.State, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, state, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// get reads key, treating backend errors as misses.
func (r *Runner) get(ctx context.Context, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "type", keyType, "err", err)
		return nil, false
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, keyType)
	return nil, false
}

func (r *Runner) set(ctx context.Context, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Warn("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
