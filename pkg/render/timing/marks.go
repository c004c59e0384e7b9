package timing

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/svg"
)

// renderMarks draws the dashed time grid plus the head and foot
// decorations: caption text and tick/tock numeral rows. One grid line
// lands every time slot, so every 2*hscale bricks.
func (sc *scene) renderMarks(buf *bytes.Buffer, laneCount int) {
	mstep := 2 * int(sc.hscale)
	mmstep := float64(mstep) * sc.xs
	marks := sc.xmax / mstep
	gy := float64(laneCount) * laneYO

	fmt.Fprintf(buf, "<g id=\"gmarks_%d\">\n", sc.index)
	buf.WriteString("<g style=\"stroke:#888;stroke-width:0.5;stroke-dasharray:1,3\">\n")
	for i := 0; i <= marks; i++ {
		x := float64(i) * mmstep
		fmt.Fprintf(buf, "<line id=\"gmark_%d_%d\" x1=\"%s\" y1=\"0\" x2=\"%s\" y2=\"%s\"/>\n",
			i, sc.index, svg.Num(x), svg.Num(x), svg.Num(gy))
	}
	buf.WriteString("</g>\n")

	if sc.head != nil && sc.head.Text != "" {
		y := -13.0
		if sc.yh0 > 0 {
			y = -33
		}
		sc.capText(buf, sc.head.Text, y)
	}
	if sc.foot != nil && sc.foot.Text != "" {
		y := gy + 25
		if sc.yf0 > 0 {
			y = gy + 45
		}
		sc.capText(buf, sc.foot.Text, y)
	}

	if sc.head != nil {
		sc.tickTock(buf, sc.head.Tick, 0, mmstep, -5, marks+1)
		sc.tickTock(buf, sc.head.Tock, mmstep/2, mmstep, -5, marks)
	}
	if sc.foot != nil {
		sc.tickTock(buf, sc.foot.Tick, 0, mmstep, gy+15, marks+1)
		sc.tickTock(buf, sc.foot.Tock, mmstep/2, mmstep, gy+15, marks)
	}

	buf.WriteString("</g>\n")
}

func (sc *scene) capText(buf *bytes.Buffer, text string, y float64) {
	cx := float64(sc.xmax) * sc.xs / 2
	fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" text-anchor=\"middle\" fill=\"#000\" xml:space=\"preserve\"><tspan>%s</tspan></text>\n",
		svg.Num(cx), svg.Num(y), svg.Escape(text))
}

// tickTock writes one row of grid numerals. Sequences and stepped
// pairs are shifted right when a horizontal window trims the diagram
// start, so the numbering stays aligned with absolute time.
func (sc *scene) tickTock(buf *bytes.Buffer, t *diagram.Ticks, x, dx, y float64, length int) {
	if t == nil || length <= 0 {
		return
	}
	shift := sc.xminCfg / 2

	labels := make([]string, 0, length)
	switch {
	case t.Seq:
		for i := 0; i < length; i++ {
			labels = append(labels, svg.Num(t.Start+shift+float64(i)))
		}
	case t.Pair:
		dp := 0
		if j := strings.IndexByte(t.StepText, '.'); j >= 0 {
			dp = len(t.StepText) - j - 1
		}
		for i := 0; i < length; i++ {
			v := t.Start + shift + float64(i)*t.Step
			labels = append(labels, strconv.FormatFloat(v, 'f', dp, 64))
		}
	default:
		labels = t.Values
		if len(labels) == 0 {
			return
		}
	}

	buf.WriteString("<g class=\"muted\" text-anchor=\"middle\" xml:space=\"preserve\">\n")
	for i := 0; i < length && i < len(labels); i++ {
		fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\">%s</text>\n",
			svg.Num(float64(i)*dx+x), svg.Num(y), svg.Escape(labels[i]))
	}
	buf.WriteString("</g>\n")
}
