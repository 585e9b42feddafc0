// Package cache provides pluggable caching backends for the layout and
// render stages. A file-backed cache serves the CLI, Redis and MongoDB
// backends serve server deployments, and a null cache disables caching.
package cache

import (
	"context"
	"time"
)

// Default TTLs for the different cache stages.
// Layouts are deterministic for a given dataset and options, so they can
// live longer than parsed datasets, whose source files may change on disk.
const (
	// TTLDataset is the TTL for parsed dataset columns.
	TTLDataset = 24 * time.Hour

	// TTLLayout is the TTL for computed bubble layouts.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is the TTL for rendered artifacts (SVG, PNG, PDF).
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the interface all caching backends implement.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was found; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of zero means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// DatasetKeyOpts captures the column selection that shapes a parsed dataset.
type DatasetKeyOpts struct {
	AreaColumn  string
	LabelColumn string
	ValueColumn string
	ColorColumn string
}

// LayoutKeyOpts captures the options that affect a computed layout.
type LayoutKeyOpts struct {
	Spacing       float64
	MaxIterations int
	Threshold     float64
	Width         int
	Height        int
}

// ArtifactKeyOpts captures the options that affect a rendered artifact.
type ArtifactKeyOpts struct {
	Format string
	Style  string
	Scale  float64
	Title  string
	Footer string
}

// Keyer generates cache keys for the pipeline stages.
// The layered design lets downstream stages reuse upstream results:
// the same dataset hash yields the same layout key for identical options.
type Keyer interface {
	// DatasetKey generates a key for parsed dataset caching.
	DatasetKey(dataHash string, opts DatasetKeyOpts) string

	// LayoutKey generates a key for layout caching.
	LayoutKey(datasetHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for artifact caching.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
// All keys embed a SHA-256 hash of the options so that any option change
// produces a distinct key.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DatasetKey generates a key for parsed dataset caching.
func (k *DefaultKeyer) DatasetKey(dataHash string, opts DatasetKeyOpts) string {
	return hashKey("dataset", dataHash, opts)
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(datasetHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", datasetHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
