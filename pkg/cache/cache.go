// Package cache provides render-artifact caching for wavetrace.
//
// Rendering a document is deterministic, so artifacts are cached under
// a hash of the source and the render options. Three backends are
// provided:
//   - null: caching disabled
//   - file: directory-backed cache for CLI usage
//   - redis: shared cache for multi-instance server deployments
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached. Renders are
// pure functions of their key, so the TTL only bounds storage growth.
const TTLArtifact = 24 * time.Hour

// Cache stores rendered artifacts by key.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKeyOpts are the render options that vary an artifact for the
// same source document.
type RenderKeyOpts struct {
	Kind   string `json:"kind"`
	Skin   string `json:"skin,omitempty"`
	Strict bool   `json:"strict,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// RenderKey generates a key for a rendered artifact from the
	// source hash and the options that shaped the render.
	RenderKey(sourceHash string, opts RenderKeyOpts) string
}

// DefaultKeyer is the standard key scheme: prefix plus a SHA-256 over
// the key parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered artifact.
func (k *DefaultKeyer) RenderKey(sourceHash string, opts RenderKeyOpts) string {
	return hashKey("render", sourceHash, opts)
}
