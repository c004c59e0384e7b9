// Package nodelink renders a document's signal hierarchy as a
// node-link diagram.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz:
// groups and lanes appear as boxes connected by containment arrows.
// It backs the inspect command, which answers "what structure did the
// parser see" without drawing the full waveform.
//
// # Usage
//
// Convert a decoded document to DOT format, then render to SVG:
//
//	dot, err := nodelink.ToDOT(doc, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, lane labels include the wave string,
//     period, phase and node events.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with
// rounded box nodes; groups are dashed and grey, lanes white.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package nodelink
