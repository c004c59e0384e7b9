package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the wave string, period and phase in lane
	// labels. When false, only the lane name is shown.
	Detailed bool
}

// ToDOT converts a signal hierarchy to Graphviz DOT format. Groups
// are rendered with dashed grey boxes, lanes with white ones, and the
// containment edges follow the document order top to bottom.
func ToDOT(doc *diagram.Document, opts Options) (string, error) {
	if doc == nil || doc.Signal == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "document has no signal section")
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	n := 0
	var walk func(node *diagram.SignalNode, parent string)
	walk = func(node *diagram.SignalNode, parent string) {
		for _, child := range node.Children {
			id := fmt.Sprintf("n%d", n)
			n++
			if child.IsGroup() {
				name := child.Name
				if name == "" {
					name = "(group)"
				}
				fmt.Fprintf(&buf, "  %s [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey, fontcolor=black];\n", id, name)
				if parent != "" {
					edges = append(edges, fmt.Sprintf("  %s -> %s;", parent, id))
				}
				walk(child, id)
				continue
			}
			fmt.Fprintf(&buf, "  %s [label=%q];\n", id, laneLabel(child.Lane, opts.Detailed))
			if parent != "" {
				edges = append(edges, fmt.Sprintf("  %s -> %s;", parent, id))
			}
		}
	}
	walk(doc.Signal, "")

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

func laneLabel(l *diagram.Lane, detailed bool) string {
	name := l.Name
	if name == "" {
		name = "(unnamed)"
	}
	if !detailed {
		return name
	}
	parts := []string{fmt.Sprintf("wave: %s", l.Wave)}
	if l.Period != 1 {
		parts = append(parts, fmt.Sprintf("period: %g", l.Period))
	}
	if l.Phase != 0 {
		parts = append(parts, fmt.Sprintf("phase: %g", l.Phase))
	}
	if l.Node != "" {
		parts = append(parts, fmt.Sprintf("node: %s", l.Node))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz header so the drawing always
// starts at origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
