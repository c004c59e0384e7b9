package timing

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
	"github.com/mlandau/wavetrace/pkg/svg"
)

type point struct {
	x, y float64
}

// arcStyle variants: plain spline, arrowhead at the end, arrowheads at
// both ends.
const (
	arcPlain = "fill:none;stroke:#00F;stroke-width:1"
	arcHead  = "marker-end:url(#arrowhead);stroke:#0041c4;stroke-width:1;fill:none"
	arcBoth  = "marker-end:url(#arrowhead);marker-start:url(#arrowtail);stroke:#0041c4;stroke-width:1;fill:none"
)

// renderArcs collects the named events from every lane's node string
// and draws the edge splines between them, plus a boxed label for each
// lowercase or digit event. An edge naming an event no lane defines is
// an error.
func (sc *scene) renderArcs(buf *bytes.Buffer, lanes []*diagram.Lane, edges []string) error {
	events := map[rune]point{}
	var order []rune

	for idx, l := range lanes {
		sc.period = l.Period
		sc.phase = l.Phase * 2
		if l.Node == "" {
			continue
		}
		pos := 0.0
		step := 1.0
		for _, r := range l.Node {
			switch r {
			case '<':
				step = 0.25
				continue
			case '>':
				step = 1
				continue
			}
			x := math.Trunc(sc.xs*(2*pos*sc.period*sc.hscale-sc.phase) + sc.xlabel)
			y := math.Trunc(float64(idx)*laneYO + laneY0 + sc.ys*0.5)
			if r != '.' {
				if _, ok := events[r]; !ok {
					order = append(order, r)
				}
				events[r] = point{x, y}
			}
			pos += step
		}
	}

	fmt.Fprintf(buf, "<g id=\"wavearcs_%d\">\n", sc.index)

	for _, e := range edges {
		e = strings.TrimSpace(e)
		words := strings.Fields(e)
		if len(words) == 0 || len(words[0]) == 0 {
			return errors.New(errors.ErrCodeInvalidGrammar, "empty edge definition")
		}
		directive := []rune(words[0])
		frmName := directive[0]
		toName := directive[len(directive)-1]
		shape := string(directive[1 : len(directive)-1])
		label := strings.TrimPrefix(e[len(words[0]):], " ")

		frm, ok := events[frmName]
		if !ok {
			return errors.New(errors.ErrCodeUnresolvedEvent, "edge %q references undefined event %q", e, string(frmName))
		}
		to, ok := events[toName]
		if !ok {
			return errors.New(errors.ErrCodeUnresolvedEvent, "edge %q references undefined event %q", e, string(toName))
		}

		d, style, lx, ly := arcShape(shape, frm, to, label != "")
		fmt.Fprintf(buf, "<path id=\"gmark_%s_%s\" d=\"%s\" style=\"%s\"/>\n",
			svg.Escape(string(frmName)), svg.Escape(string(toName)), d, style)
		if label != "" {
			sc.renderLabelBox(buf, point{lx, ly}, label)
		}
	}

	for _, r := range order {
		if (unicode.IsLower(r) || unicode.IsDigit(r)) && events[r].x > 0 {
			sc.renderLabelBox(buf, events[r], string(r))
		}
	}

	buf.WriteString("</g>\n")
	return nil
}

// arcShape resolves an edge shape token into a path, its stroke style
// and the label anchor. Unknown tokens fall back to a straight line.
func arcShape(shape string, frm, to point, hasLabel bool) (d, style string, lx, ly float64) {
	dx := to.x - frm.x
	dy := to.y - frm.y
	lx = (frm.x + to.x) / 2
	ly = (frm.y + to.y) / 2

	d = fmt.Sprintf("M %s,%s %s,%s", svg.Num(frm.x), svg.Num(frm.y), svg.Num(to.x), svg.Num(to.y))
	style = arcPlain

	curve := func(c1x, c2x float64) string {
		return fmt.Sprintf("M %s,%s c %s,0 %s,%s %s,%s",
			svg.Num(frm.x), svg.Num(frm.y), svg.Num(c1x), svg.Num(c2x), svg.Num(dy), svg.Num(dx), svg.Num(dy))
	}
	elbowH := fmt.Sprintf("m %s,%s %s,0 0,%s", svg.Num(frm.x), svg.Num(frm.y), svg.Num(dx), svg.Num(dy))
	elbowV := fmt.Sprintf("m %s,%s 0,%s %s,0", svg.Num(frm.x), svg.Num(frm.y), svg.Num(dy), svg.Num(dx))
	elbowZ := fmt.Sprintf("m %s,%s %s,0 0,%s %s,0", svg.Num(frm.x), svg.Num(frm.y), svg.Num(dx/2), svg.Num(dy), svg.Num(dx/2))

	switch shape {
	case "-":
	case "~", "~>", "<~>":
		d = curve(0.7*dx, 0.3*dx)
	case "-~", "-~>", "<-~>":
		d = curve(0.7*dx, dx)
	case "~-", "~->":
		d = curve(0, 0.3*dx)
	case "-|", "-|>", "<-|>":
		d = elbowH
	case "|-", "|->":
		d = elbowV
	case "-|-", "-|->", "<-|->":
		d = elbowZ
	case "->", "<->":
	default:
		return d, style, lx, ly
	}

	switch {
	case strings.HasPrefix(shape, "<"):
		style = arcBoth
	case strings.HasSuffix(shape, ">"):
		style = arcHead
	}

	if hasLabel {
		switch shape {
		case "-~", "-~>", "<-~>":
			lx = frm.x + dx*0.75
		case "~-", "~->":
			lx = frm.x + dx*0.25
		case "-|", "-|>", "<-|>":
			lx = to.x
		case "|-", "|->":
			lx = frm.x
		}
	}
	return d, style, lx, ly
}

// renderLabelBox writes centered text on a white backing rectangle at
// point p.
func (sc *scene) renderLabelBox(buf *bytes.Buffer, p point, text string) {
	w := textWidth(text, 11) + 2
	fmt.Fprintf(buf, "<g transform=\"translate(%s,%s)\">\n", svg.Num(p.x), svg.Num(p.y))
	fmt.Fprintf(buf, "<rect x=\"%s\" y=\"-5\" width=\"%s\" height=\"11\" style=\"fill:#FFF;\"/>\n",
		svg.Num(math.Trunc(-w/2)), svg.Num(w))
	fmt.Fprintf(buf, "<text y=\"3\" text-anchor=\"middle\" style=\"font-size:11px;\"><tspan>%s</tspan></text>\n",
		svg.Escape(text))
	buf.WriteString("</g>\n")
}
