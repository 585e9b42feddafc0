package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Useful when several charts or users share one Redis or MongoDB
// instance and need separate cache namespaces.
//
// Example usage:
//
//	// Per-user keys for a hosted deployment
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Shared keys for public datasets
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

// DatasetKey generates a prefixed key for parsed dataset caching.
func (k *ScopedKeyer) DatasetKey(dataHash string, opts DatasetKeyOpts) string {
	return k.prefix + k.inner.DatasetKey(dataHash, opts)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(datasetHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
