// Package pipeline provides the core rendering pipeline for wavetrace.
//
// This package implements the complete decode → dispatch → render
// pipeline used by the CLI and API alike. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Validate the JSON source into a diagram document
//  2. Dispatch: Select the renderer from the document's selector
//     ("signal" or "reg"; "assign" is recognized but unsupported)
//  3. Render: Generate the SVG artifact
//
// Rendering is deterministic, so artifacts are cached under a hash of
// the source and the render options.
//
// # Usage
//
// Create a Runner and render a document:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, source, pipeline.Options{Skin: "default"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.SVG
package pipeline

import (
	"time"

	"github.com/mlandau/wavetrace/pkg/diagram"
)

// Options configures one pipeline run. This struct supports JSON
// serialization for API requests.
type Options struct {
	// Skin overrides the document's configured skin for timing
	// diagrams.
	Skin string `json:"skin,omitempty"`

	// Strict disables rendering extensions beyond the reference
	// dialect.
	Strict bool `json:"strict,omitempty"`

	// Refresh bypasses the cache and re-renders.
	Refresh bool `json:"refresh,omitempty"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kind is the pipeline the document selected.
	Kind diagram.Kind

	// SVG is the rendered artifact.
	SVG []byte

	// SourceHash is the content hash of the input document.
	SourceHash string

	// CacheHit reports whether the artifact came from the cache.
	CacheHit bool

	// Duration is the wall time of the run, including cache lookups.
	Duration time.Duration
}
