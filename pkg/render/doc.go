// Package render contains the diagram renderers.
//
// # Overview
//
// Each subpackage turns a decoded document into a complete SVG byte
// slice:
//
//   - [timing]: signal timing diagrams (lanes, arcs, labels, gaps)
//   - [bitfield]: register bitfield layouts
//   - [nodelink]: signal hierarchy diagrams via Graphviz
//
// # Timing Diagrams
//
// The [timing] renderer lays out one lane per signal, two bricks per
// time slot, with group braces, inter-lane arcs and tick rows around
// the wave area:
//
//	r := timing.New(timing.WithSkin("dark"))
//	svg, err := r.Render(doc)
//
// # Bitfield Diagrams
//
// The [bitfield] renderer draws the field cage of a register across
// one or more lanes, with bit indexes and attribute rows:
//
//	svg, err := bitfield.New().Render(doc)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the group and lane containment
// tree of a timing document using Graphviz. It is a debugging aid, not
// a waveform view:
//
//	dot, err := nodelink.ToDOT(doc, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [timing]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render/timing
// [bitfield]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render/bitfield
// [nodelink]: https://pkg.go.dev/github.com/mlandau/wavetrace/pkg/render/nodelink
package render
