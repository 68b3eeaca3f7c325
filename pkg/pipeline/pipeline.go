// Package pipeline provides the core planning pipeline for Spreadpress.
//
// This package implements the complete plan → decorate → render pipeline
// that is shared by the CLI and the HTTP API. Centralizing it keeps both
// entry points behaviorally identical: the same gallery, theme, and
// options always produce the same spreads and artifacts.
//
// # Architecture
//
// The pipeline consists of two cached stages:
//
//  1. Plan: partition the gallery into spreads with the theme's rule
//     table, then layer caption decoration on top
//  2. Render: generate output artifacts (JSON, HTML)
//
// Stage results are cached by content hash, so re-planning an unchanged
// gallery is a cache lookup.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Theme:   "editorial",
//	    Formats: []string{"html"},
//	}
//	result, err := runner.Execute(ctx, g, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dangsayz/spreadpress/pkg/cache"
	"github.com/dangsayz/spreadpress/pkg/errors"
	"github.com/dangsayz/spreadpress/pkg/render"
	"github.com/dangsayz/spreadpress/pkg/spread"
	"github.com/dangsayz/spreadpress/pkg/theme"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultTheme is the theme used when none is specified.
const DefaultTheme = theme.DefaultName

// DefaultFormat is the artifact format used when none is specified.
const DefaultFormat = render.FormatJSON

// Format constants re-exported for callers that don't import pkg/render.
const (
	FormatJSON = render.FormatJSON
	FormatHTML = render.FormatHTML
)

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	return render.ValidateFormats(formats)
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the planning pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Plan options
	Theme          string   `json:"theme,omitempty"`           // Built-in name or .toml path
	CaptionPattern []string `json:"caption_pattern,omitempty"` // Overrides the theme's rotation
	Refresh        bool     `json:"refresh,omitempty"`         // Skip cache reads

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"` // HTML page title; defaults to the gallery title

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForPlan(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForPlan checks plan options and applies plan defaults.
func (o *Options) ValidateForPlan() error {
	if err := errors.ValidateThemeName(o.Theme); err != nil {
		return err
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	for _, s := range o.CaptionPattern {
		switch spread.CaptionStyle(s) {
		case spread.CaptionNone, spread.CaptionOverlay, spread.CaptionBelow, spread.CaptionMarginNote:
		default:
			return errors.New(errors.ErrCodeInvalidInput, "unknown caption style: %q", s)
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks render options and applies render defaults.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := render.ValidateFormats(o.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "validate formats")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// captionStyles converts the string override into typed styles.
// Returns nil when no override is set, so the theme's rotation applies.
func (o *Options) captionStyles() []spread.CaptionStyle {
	if len(o.CaptionPattern) == 0 {
		return nil
	}
	styles := make([]spread.CaptionStyle, len(o.CaptionPattern))
	for i, s := range o.CaptionPattern {
		styles[i] = spread.CaptionStyle(s)
	}
	return styles
}

// PlanKeyOpts returns cache key options for the plan stage.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		Theme:          o.Theme,
		CaptionPattern: o.CaptionPattern,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Title:  o.Title,
	}
}

// =============================================================================
// Result Types
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spreads is the decorated plan.
	Spreads []spread.DecoratedSpread

	// GalleryHash is the content hash of the input gallery.
	GalleryHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ImageCount  int
	SpreadCount int
	PlanTime    time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit   bool // Whether the plan came from cache
	RenderHit bool // Whether all artifacts came from cache
}
