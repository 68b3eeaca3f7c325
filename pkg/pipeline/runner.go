package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dangsayz/spreadpress/pkg/cache"
	"github.com/dangsayz/spreadpress/pkg/errors"
	"github.com/dangsayz/spreadpress/pkg/gallery"
	"github.com/dangsayz/spreadpress/pkg/observability"
	"github.com/dangsayz/spreadpress/pkg/render"
	"github.com/dangsayz/spreadpress/pkg/spread"
	"github.com/dangsayz/spreadpress/pkg/theme"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
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

// Execute runs the complete plan → decorate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, g gallery.Gallery, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGallery, err, "validate gallery")
	}
	if opts.Title == "" {
		opts.Title = g.Title
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	galleryData, err := gallery.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("hash gallery: %w", err)
	}
	result.GalleryHash = cache.Hash(galleryData)
	result.Stats.ImageCount = len(g.Images)

	// Stage 1: Plan
	planStart := time.Now()
	spreads, planHit, err := r.PlanWithCacheInfo(ctx, g, result.GalleryHash, opts)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.Spreads = spreads
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.SpreadCount = len(spreads)
	result.CacheInfo.PlanHit = planHit

	r.Logger.Info("planned spreads",
		"images", len(g.Images),
		"spreads", len(spreads),
		"theme", opts.Theme,
		"duration", result.Stats.PlanTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, spreads, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// PlanWithCacheInfo plans a gallery with caching and returns cache hit info.
// galleryHash may be empty, in which case it is computed from the gallery.
func (r *Runner) PlanWithCacheInfo(ctx context.Context, g gallery.Gallery, galleryHash string, opts Options) ([]spread.DecoratedSpread, bool, error) {
	if err := opts.ValidateForPlan(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if galleryHash == "" {
		data, err := gallery.Marshal(g)
		if err != nil {
			return nil, false, fmt.Errorf("hash gallery: %w", err)
		}
		galleryHash = cache.Hash(data)
	}
	cacheKey := r.Keyer.PlanKey(galleryHash, opts.PlanKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached []spread.DecoratedSpread
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "plan")
				return cached, true, nil
			}
			// Corrupt entry falls through to recompute
		}
	}
	observability.Cache().OnCacheMiss(ctx, "plan")

	// Plan
	th, err := theme.Resolve(opts.Theme)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidTheme, err, "resolve theme %s", opts.Theme)
	}

	observability.Pipeline().OnPlanStart(ctx, th.Name, len(g.Images))
	planStart := time.Now()

	captions := opts.captionStyles()
	if captions == nil {
		captions = th.Captions
	}
	spreads := spread.Decorate(th.Plan(g.Images), captions)

	observability.Pipeline().OnPlanComplete(ctx, th.Name, len(spreads), time.Since(planStart), nil)

	// Cache the result
	if data, err := json.Marshal(spreads); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPlan)
		observability.Cache().OnCacheSet(ctx, "plan", len(data))
	}

	return spreads, false, nil
}

// Plan is a convenience wrapper that discards the cache hit info.
func (r *Runner) Plan(ctx context.Context, g gallery.Gallery, opts Options) ([]spread.DecoratedSpread, error) {
	spreads, _, err := r.PlanWithCacheInfo(ctx, g, "", opts)
	return spreads, err
}

// RenderWithCacheInfo renders artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, spreads []spread.DecoratedSpread, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from plan content
	planData, err := json.Marshal(spreads)
	if err != nil {
		return nil, false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash := cache.Hash(planData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()

	rendered, err := render.Render(spreads, render.Options{
		Title:   opts.Title,
		Formats: opts.Formats,
	})

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, spreads []spread.DecoratedSpread, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, spreads, opts)
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
