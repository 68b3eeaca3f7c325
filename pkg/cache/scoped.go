package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// In the hosted deployment each photographer's entries live in their own
// namespace so a shared Redis never leaks plans across accounts.
//
// Example usage:
//
//	// Per-user keys for private galleries
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for the demo gallery
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GalleryKey generates a prefixed key for a gallery document.
func (k *ScopedKeyer) GalleryKey(galleryID string) string {
	return k.prefix + k.inner.GalleryKey(galleryID)
}

// PlanKey generates a prefixed key for a spread plan.
func (k *ScopedKeyer) PlanKey(galleryHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(galleryHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}

// Ensure ScopedKeyer implements Keyer.
var _ Keyer = (*ScopedKeyer)(nil)
