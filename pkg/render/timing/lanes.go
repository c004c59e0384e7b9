package timing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/svg"
	"github.com/mlandau/wavetrace/pkg/wave"
)

// laneContent is one lane after wave interpretation: the title, the
// raw phase in time slots, the brick sequence and the value overlay.
type laneContent struct {
	name   string
	phase  float64
	bricks []wave.Brick
	data   []string
}

// parseWaveLanes interprets every lane's wave string. The stretch
// factor folds the lane period and the global hscale into the brick
// stream so later passes work in plain brick coordinates.
func (sc *scene) parseWaveLanes(lanes []*diagram.Lane) ([]laneContent, error) {
	content := make([]laneContent, 0, len(lanes))
	for _, l := range lanes {
		sc.period = l.Period
		sc.phase = l.Phase * 2

		lc := laneContent{name: l.Name, phase: l.Phase, data: l.Data}
		if l.Wave != "" {
			bricks, err := wave.ParseLane(l.Wave, sc.period*sc.hscale-1, sc.phase)
			if err != nil {
				return nil, err
			}
			lc.bricks = bricks
		}
		content = append(content, lc)
	}
	return content, nil
}

// renderWaveLanes emits one group per lane: the right-anchored title
// and the brick uses, phase-shifted into place. It returns the title
// widths used to size the left margin and records the widest lane's
// brick count on the scene.
func (sc *scene) renderWaveLanes(buf *bytes.Buffer, content []laneContent) []float64 {
	glengths := make([]float64, 0, len(content))
	xmax := 0

	for j, lc := range content {
		dy := laneY0 + float64(j)*laneYO
		fmt.Fprintf(buf, "<g id=\"wavelane_%d_%d\" transform=\"translate(0,%s)\">\n", j, sc.index, svg.Num(dy))
		fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" text-anchor=\"end\" class=\"info\" xml:space=\"preserve\"><tspan>%s</tspan></text>\n",
			svg.Num(titleTGO), svg.Num(sc.ym), svg.Escape(lc.name))
		glengths = append(glengths, textWidth(lc.name, 11))

		// A positive phase scrolls the lane left by whole bricks and
		// nudges the remainder here; a negative one shifts right.
		xoffset := -2 * lc.phase
		if lc.phase > 0 {
			xoffset = math.Ceil(2*lc.phase) - 2*lc.phase
		}
		if xoffset != 0 {
			fmt.Fprintf(buf, "<g id=\"wavelane_draw_%d_%d\" transform=\"translate(%s,0)\">\n", j, sc.index, svg.Num(xoffset*sc.xs))
		} else {
			fmt.Fprintf(buf, "<g id=\"wavelane_draw_%d_%d\">\n", j, sc.index)
		}
		sc.renderLaneUses(buf, lc)
		buf.WriteString("</g>\n</g>\n")

		if len(lc.bricks) > xmax {
			xmax = len(lc.bricks)
		}
	}

	sc.xmax = xmax
	return glengths
}

// renderLaneUses writes the brick <use> chain and, when the lane has a
// value overlay, one centered label per data-brick run.
func (sc *scene) renderLaneUses(buf *bytes.Buffer, lc laneContent) {
	if len(lc.bricks) == 0 {
		return
	}
	for i, b := range lc.bricks {
		if x := float64(i) * sc.xs; x != 0 {
			fmt.Fprintf(buf, "<use xlink:href=\"#%s\" transform=\"translate(%s)\"/>\n", b.Shape, svg.Num(x))
		} else {
			fmt.Fprintf(buf, "<use xlink:href=\"#%s\"/>\n", b.Shape)
		}
	}

	if len(lc.data) == 0 {
		return
	}
	markers := findLaneMarkers(wave.Shapes(lc.bricks))
	for k, m := range markers {
		if k >= len(lc.data) {
			break
		}
		tx := math.Trunc(m)*sc.xs + sc.xlabel
		fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" text-anchor=\"middle\" xml:space=\"preserve\"><tspan>%s</tspan></text>\n",
			svg.Num(tx), svg.Num(sc.ym), svg.Escape(lc.data[k]))
	}
}

// findLaneMarkers locates the center brick of every run of data-value
// bricks; the overlay labels anchor there.
func findLaneMarkers(shapes []string) []float64 {
	var out []float64
	run := 0
	for i, s := range shapes {
		if isDataShape(s) {
			run++
			continue
		}
		if run != 0 {
			out = append(out, float64(i)-float64(run+1)/2)
			run = 0
		}
	}
	if run != 0 {
		out = append(out, float64(len(shapes))-float64(run+1)/2)
	}
	return out
}

func isDataShape(s string) bool {
	return len(s) == 5 && s[:4] == "vvv-" && s[4] >= '2' && s[4] <= '9'
}
