// Package cache provides the caching layer for the planning pipeline.
//
// Three backends implement the Cache interface:
//   - FileCache: JSON entries under a directory, for CLI usage
//   - RedisCache: shared cache for multi-instance server deployments
//   - NullCache: no-op, for tests and --no-cache
//
// Cache keys are derived from content hashes by a Keyer, so identical
// galleries planned with identical options share entries regardless of
// where the request came from. ScopedKeyer prefixes keys for per-user
// isolation in hosted deployments.
package cache

import (
	"context"
	"time"
)

// Cache is the interface for cache backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default TTLs per entry class. Galleries change when photographers edit
// them, so they expire faster than derived artifacts, which are pure
// functions of their hashed inputs.
const (
	// TTLGallery is the TTL for cached gallery documents.
	TTLGallery = 1 * time.Hour

	// TTLPlan is the TTL for cached spread plans.
	TTLPlan = 24 * time.Hour

	// TTLArtifact is the TTL for rendered artifacts.
	TTLArtifact = 24 * time.Hour
)

// PlanKeyOpts captures every option that changes a plan's content.
type PlanKeyOpts struct {
	Theme          string   `json:"theme"`
	CaptionPattern []string `json:"caption_pattern,omitempty"`
}

// ArtifactKeyOpts captures every option that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Title  string `json:"title,omitempty"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// GalleryKey generates a key for a stored gallery document.
	GalleryKey(galleryID string) string

	// PlanKey generates a key for a spread plan derived from the gallery
	// content hash and planning options.
	PlanKey(galleryHash string, opts PlanKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact derived from the
	// plan content hash and render options.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// GalleryKey generates a key for a gallery document.
func (k *DefaultKeyer) GalleryKey(galleryID string) string {
	return "gallery:" + galleryID
}

// PlanKey generates a key for a spread plan.
func (k *DefaultKeyer) PlanKey(galleryHash string, opts PlanKeyOpts) string {
	return hashKey("plan", galleryHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
