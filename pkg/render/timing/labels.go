package timing

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/svg"
)

// labelToken matches one element of the inline label mini-language: a
// single word character, a dot placeholder, or a braced word, each
// with an optional fractional slot offset in parentheses.
var labelToken = regexp.MustCompile(`([.\w]|\{\w+\})(?:\((\d*\.?\d+)\))?`)

// renderLabels draws per-slot annotation text over the lanes. Each
// label sits on a small white backing rectangle so it stays readable
// on top of the wave strokes.
func (sc *scene) renderLabels(buf *bytes.Buffer, lanes []*diagram.Lane) {
	fmt.Fprintf(buf, "<g id=\"labels_%d\">\n", sc.index)

	for idx, l := range lanes {
		sc.period = l.Period
		sc.phase = l.Phase * 2

		dy := laneY0 + float64(idx)*laneYO
		fmt.Fprintf(buf, "<g id=\"labels_%d_%d\" transform=\"translate(0,%s)\">\n", idx, sc.index, svg.Num(dy))

		if l.Label != "" {
			pos := 0.0
			for _, tok := range labelToken.FindAllStringSubmatch(l.Label, -1) {
				if tok[1] == "." {
					pos++
					continue
				}
				text := tok[1]
				if len(text) > 2 && text[0] == '{' {
					text = text[1 : len(text)-1]
				}
				offset := 0.0
				if tok[2] != "" {
					offset, _ = strconv.ParseFloat(tok[2], 64)
				}

				x := math.Trunc(sc.xs*(2*(pos+offset)*sc.period*sc.hscale-sc.phase) + sc.xlabel)
				y := math.Trunc(sc.ys * 0.5)
				lw := float64(len(text)) * fontW

				fmt.Fprintf(buf, "<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"8\" style=\"fill:#FFF;\"/>\n",
					svg.Num(x-lw/2), svg.Num(y-5), svg.Num(lw))
				fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\" text-anchor=\"middle\" style=\"font-size:8px;\">%s</text>\n",
					svg.Num(x), svg.Num(y+2), svg.Escape(text))
				pos++
			}
		}

		buf.WriteString("</g>\n")
	}

	buf.WriteString("</g>\n")
}
