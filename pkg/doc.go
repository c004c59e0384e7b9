// Package pkg provides the core libraries for wavetrace diagram rendering.
//
// # Overview
//
// Wavetrace turns compact textual descriptions of digital signals and
// register layouts into SVG diagrams. The pkg directory is organized
// into four main areas:
//
//  1. [diagram] - Input model (strict JSON decoding and validation)
//  2. [wave] / [render] - Layout and SVG generation
//  3. [cache] / [store] - Artifact caching and gallery persistence
//  4. [pipeline] - Orchestration (decode → dispatch → render)
//
// # Architecture
//
// The typical data flow through wavetrace:
//
//	JSON source document
//	         ↓
//	    [diagram] package (decode + validate)
//	         ↓
//	    [wave] package (wave string → brick sequence)
//	         ↓
//	    [render/timing] or [render/bitfield] (layout + SVG)
//	         ↓
//	    SVG output
//
// # Quick Start
//
// Render a timing diagram from a source document:
//
//	import "github.com/mlandau/wavetrace/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Render(ctx, source, pipeline.Options{})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("wave.svg", res.SVG, 0o644)
//
// # Main Packages
//
// [diagram] - The input document model. Decodes the loose JSON dialect
// into tagged structs at the boundary so the layout engines never do
// deferred key lookups.
//
// [wave] - The waveform compiler. Expands wave strings into brick
// sequences, applying period stretching, phase trimming and the
// transition rules between symbols.
//
// [render/timing] - Timing diagram layout and SVG generation: lanes,
// group braces, inter-lane arcs, inline labels, gap squiggles, ticks.
//
// [render/bitfield] - Register bitfield layout: multi-lane field
// cages, bit indexes, attribute rows and type highlighting.
//
// [render/nodelink] - Signal hierarchy diagrams via Graphviz, used by
// the inspect command.
//
// [skin] - Visual themes. A skin carries the CSS block and the brick
// geometry written into the SVG defs section.
//
// [cache] - Render artifact caching with file, Redis and null
// backends, keyed by source hash and render options.
//
// [store] - The diagram gallery: in-memory and MongoDB backends.
//
// [pipeline] - The runner used by CLI and server. Decodes a source,
// consults the cache and dispatches to the right renderer.
//
// [errors] - Coded errors shared across packages; codes map to HTTP
// statuses at the API boundary.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/render/timing    # Specific package
//
// [diagram]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/diagram
// [wave]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/wave
// [render]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render
// [render/timing]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render/timing
// [render/bitfield]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render/bitfield
// [render/nodelink]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render/nodelink
// [skin]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/skin
// [cache]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/cache
// [store]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/store
// [pipeline]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/errors
package pkg
