package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jabulente/bubblechart/pkg/cache"
	"github.com/jabulente/bubblechart/pkg/chart"
	"github.com/jabulente/bubblechart/pkg/errors"
	"github.com/jabulente/bubblechart/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
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

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Input)
	ds, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	observability.Pipeline().OnLoadComplete(ctx, opts.Input, len(ds.Areas), time.Since(loadStart), err)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Dataset = ds
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.BubbleCount = len(ds.Areas)
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded dataset",
		"rows", len(ds.Areas),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, len(ds.Areas))
	layout, layoutHit, err := r.GenerateLayoutWithCacheInfo(ctx, ds, opts)
	observability.Pipeline().OnLayoutComplete(ctx, len(ds.Areas), time.Since(layoutStart), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layout
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	if data, err := chart.MarshalLayout(layout); err == nil {
		result.LayoutHash = cache.Hash(data)
	}

	r.Logger.Info("computed layout",
		"bubbles", len(layout.Bubbles),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, layout, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads the dataset with caching and returns cache hit info.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (Dataset, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return Dataset{}, false, err
	}
	r.applyLogger(&opts)

	// The cache key hashes the file contents, so an edited file is a miss
	// even at the same path.
	raw, err := os.ReadFile(opts.Input)
	if err != nil {
		return Dataset{}, false, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", opts.Input)
	}
	cacheKey := r.Keyer.DatasetKey(cache.Hash(raw), opts.DatasetKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if ds, err := UnmarshalDataset(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "dataset")
				return ds, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "dataset")
	}

	ds, err := Load(ctx, opts)
	if err != nil {
		return Dataset{}, false, err
	}

	if data, err := MarshalDataset(ds); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDataset)
		observability.Cache().OnCacheSet(ctx, "dataset", len(data))
	}

	return ds, false, nil
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache hit info.
func (r *Runner) Load(ctx context.Context, opts Options) (Dataset, error) {
	ds, _, err := r.LoadWithCacheInfo(ctx, opts)
	return ds, err
}

// GenerateLayoutWithCacheInfo generates a layout with caching and returns cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, ds Dataset, opts Options) (chart.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return chart.Layout{}, false, err
	}
	r.applyLogger(&opts)

	dsData, _ := MarshalDataset(ds)
	cacheKey := r.Keyer.LayoutKey(cache.Hash(dsData), opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		if cached, err := chart.UnmarshalLayout(data); err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	layout, err := GenerateLayout(ds, opts)
	if err != nil {
		return chart.Layout{}, false, err
	}

	if data, err := chart.MarshalLayout(layout); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return layout, false, nil
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, ds Dataset, opts Options) (chart.Layout, error) {
	layout, _, err := r.GenerateLayoutWithCacheInfo(ctx, ds, opts)
	return layout, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, layout chart.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	layoutData, err := chart.MarshalLayout(layout)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize layout for cache key")
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil // All artifacts from cache
	}

	rendered, err := RenderFromLayout(layout, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, layout chart.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, layout, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
