package timing

import (
	"bytes"
	"fmt"
	"math"

	"github.com/mlandau/wavetrace/pkg/svg"
)

// renderGroups draws one curly brace per group span along the left
// margin, with the group name rotated alongside it. Unnamed groups get
// the brace only.
func (sc *scene) renderGroups(buf *bytes.Buffer, groups []groupSpan) {
	fmt.Fprintf(buf, "<g id=\"groups_%d\">\n<g>\n", sc.index)

	for i, g := range groups {
		dx := g.x + 0.5
		dy := float64(g.y)*laneYO + 3.5 + sc.yh0 + sc.yh1
		h := math.Trunc(float64(g.height)*laneYO - 16)

		fmt.Fprintf(buf, "<path id=\"group_%d_%d\" d=\"m %s,%s c -3,0 -5,2 -5,5 l 0,%s c 0,3 2,5 5,5\" style=\"stroke:#0041c4;stroke-width:1;fill:none\"/>\n",
			i, sc.index, svg.Num(dx), svg.Num(dy), svg.Num(h))

		if !g.named {
			continue
		}
		x := math.Trunc(g.x - 10)
		y := math.Trunc(laneYO*(float64(g.y)+float64(g.height)/2) + sc.yh0 + sc.yh1)
		fmt.Fprintf(buf, "<g transform=\"translate(%s,%s)\">\n<g transform=\"rotate(270)\">\n", svg.Num(x), svg.Num(y))
		fmt.Fprintf(buf, "<text text-anchor=\"middle\" class=\"info\" xml:space=\"preserve\"><tspan>%s</tspan></text>\n", svg.Escape(g.name))
		buf.WriteString("</g>\n</g>\n")
	}

	buf.WriteString("</g>\n</g>\n")
}
