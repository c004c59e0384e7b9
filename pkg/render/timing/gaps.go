package timing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/svg"
)

// renderGaps overlays the discontinuity squiggle wherever a lane's
// wave string marks a gap. The squiggle symbol sits in the defs block
// and is reused per occurrence.
func (sc *scene) renderGaps(buf *bytes.Buffer, lanes []*diagram.Lane) {
	fmt.Fprintf(buf, "<g id=\"wavegaps_%d\">\n", sc.index)

	for idx, l := range lanes {
		sc.period = l.Period
		sc.phase = math.Trunc(l.Phase*2) + sc.xminCfg

		dy := laneY0 + float64(idx)*laneYO
		fmt.Fprintf(buf, "<g id=\"wavegap_%d_%d\" transform=\"translate(0,%s)\">\n", idx, sc.index, svg.Num(dy))
		sc.renderGapUses(buf, l.Wave)
		buf.WriteString("</g>\n")
	}

	buf.WriteString("</g>\n")
}

// renderGapUses walks the wave string counting elapsed time. Inside a
// subcycle bracket each symbol advances half a slot, so the squiggle
// lands on the symbol itself; outside, it lands on the slot center one
// period back.
func (sc *scene) renderGapUses(buf *bytes.Buffer, wave string) {
	sub := false
	pos := 0.0
	for _, r := range wave {
		switch r {
		case '<':
			sub = true
			continue
		case '>':
			sub = false
			continue
		}
		if sub {
			pos += sc.period
		} else {
			pos += 2 * sc.period
		}
		if r == '|' {
			at := pos
			if !sub {
				at = pos - sc.period
			}
			dx := sc.xs * (at*sc.hscale - sc.phase)
			fmt.Fprintf(buf, "<use xlink:href=\"#gap\" transform=\"translate(%s)\"/>\n", svg.Num(dx))
		}
	}
}
