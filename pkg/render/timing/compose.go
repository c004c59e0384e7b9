package timing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/svg"
)

// compose assembles the final SVG document: stylesheet, the defs for
// every brick shape the render uses, then the lane stack with its
// grid, labels, arcs and gaps, and the group braces along the margin.
func (sc *scene) compose(doc *diagram.Document, flat *flatSignals, content []laneContent, strict bool) ([]byte, error) {
	laneGroups := &bytes.Buffer{}
	glengths := sc.renderWaveLanes(laneGroups, content)

	labels := &bytes.Buffer{}
	if !strict {
		sc.renderLabels(labels, flat.lanes)
	}

	marks := &bytes.Buffer{}
	sc.renderMarks(marks, len(content))

	arcs := &bytes.Buffer{}
	if err := sc.renderArcs(arcs, flat.lanes, doc.Edges); err != nil {
		return nil, err
	}

	gaps := &bytes.Buffer{}
	sc.renderGaps(gaps, flat.lanes)

	// The left margin fits the widest title at its indentation depth.
	textWidthMax := 0.0
	for i, w := range glengths {
		if v := w + flat.widths[i]; v > textWidthMax {
			textWidthMax = v
		}
	}
	xg := math.Ceil((textWidthMax-titleTGO)/sc.xs) * sc.xs
	width := xg + sc.xs*float64(sc.xmax+1)
	height := float64(len(content))*laneYO + sc.yh0 + sc.yh1 + sc.yf0 + sc.yf1

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" id=\"svgcontent_%d\" class=\"WaveDrom\" viewBox=\"0 0 %s %s\" width=\"%s\" height=\"%s\" overflow=\"hidden\">\n",
		sc.index, svg.Num(width), svg.Num(height), svg.Num(width), svg.Num(height))
	fmt.Fprintf(buf, "<style type=\"text/css\">%s</style>\n", sc.skin.CSS)

	var ids []string
	for _, lc := range content {
		for _, b := range lc.bricks {
			ids = append(ids, b.Shape)
		}
	}
	sc.skin.WriteDefs(buf, ids)

	fmt.Fprintf(buf, "<g id=\"waves_%d\">\n", sc.index)
	fmt.Fprintf(buf, "<rect width=\"%s\" height=\"%s\" style=\"stroke:none;fill:white\"/>\n", svg.Num(width), svg.Num(height))
	fmt.Fprintf(buf, "<g id=\"lanes_%d\" transform=\"translate(%s,%s)\">\n",
		sc.index, svg.Num(xg+0.5), svg.Num(sc.yh0+sc.yh1+0.5))
	buf.Write(labels.Bytes())
	buf.Write(marks.Bytes())
	buf.Write(laneGroups.Bytes())
	buf.Write(arcs.Bytes())
	buf.Write(gaps.Bytes())
	buf.WriteString("</g>\n")
	sc.renderGroups(buf, flat.groups)
	buf.WriteString("</g>\n</svg>\n")

	return buf.Bytes(), nil
}
