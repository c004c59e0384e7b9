package skin

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/mlandau/wavetrace/pkg/svg"
)

// WriteDefs writes the <defs> block for a render: the arc arrow
// markers, the gap squiggle and one symbol group per brick shape id in
// ids. Only the shapes a render actually uses are emitted.
func (s *Skin) WriteDefs(buf *bytes.Buffer, ids []string) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	sort.Strings(unique)

	buf.WriteString("<defs>\n")
	s.writeMarkers(buf)
	s.writeGap(buf)
	for _, id := range unique {
		s.writeBrick(buf, id)
	}
	buf.WriteString("</defs>\n")
}

func (s *Skin) writeMarkers(buf *bytes.Buffer) {
	buf.WriteString(`<marker id="arrowhead" style="fill:#0041c4" markerHeight="7" markerWidth="10" markerUnits="strokeWidth" viewBox="0 -4 11 8" refX="15" refY="0" orient="auto"><path d="M0 -3.5 L10.5 0 L0 3.5 z"/></marker>` + "\n")
	buf.WriteString(`<marker id="arrowtail" style="fill:#0041c4" markerHeight="7" markerWidth="10" markerUnits="strokeWidth" viewBox="-11 -4 11 8" refX="-15" refY="0" orient="auto"><path d="M0 -3.5 L-10.5 0 L0 3.5 z"/></marker>` + "\n")
}

func (s *Skin) writeGap(buf *bytes.Buffer) {
	buf.WriteString(`<g id="gap">` +
		`<path d="m 7,-2 -4,0 c -5,0 -5,24 -10,24 l 4,0 C 2,22 2,-2 7,-2 z" class="gaps"/>` +
		`<path d="M -7,22 C -2,22 -2,-2 3,-2" class="s1"/>` +
		`<path d="M -3,22 C 2,22 2,-2 7,-2" class="s1"/>` +
		`</g>` + "\n")
}

// rails returns the horizontal strokes a logical level occupies within
// the socket: rail lines for driven levels, both box edges for
// multi-strand levels, the midline for high impedance and for literal
// pass-through symbols.
func (s *Skin) rails(level byte) []float64 {
	switch level {
	case '1':
		return []float64{0}
	case '0':
		return []float64{s.SocketHeight}
	case 'x', 'v', 'd', 'u':
		return []float64{0, s.SocketHeight}
	default: // 'z' and literal pass-through
		return []float64{s.SocketHeight / 2}
	}
}

// fillClass maps a value-marker suffix ("-2".."-9") to its palette
// class; plain boxes fill white.
func fillClass(suffix string) string {
	if len(suffix) == 2 && suffix[0] == '-' {
		return "f" + string(suffix[1])
	}
	return "f2"
}

// writeBrick emits one symbol group for a canonical shape id. The id
// grammar is: clock shapes (pclk/nclk/Pclk/Nclk), transitions
// "XmY[-a][-b]", or steady shapes built from a repeated level character
// plus an optional value suffix ("111", "vvv-3", "AAA").
func (s *Skin) writeBrick(buf *bytes.Buffer, id string) {
	fmt.Fprintf(buf, `<g id="%s">`, svg.Escape(id))
	switch {
	case id == "pclk" || id == "Pclk":
		s.writeClock(buf, true, id == "Pclk")
	case id == "nclk" || id == "Nclk":
		s.writeClock(buf, false, id == "Nclk")
	case len(id) >= 3 && id[1] == 'm':
		s.writeTransition(buf, id)
	default:
		s.writeSteady(buf, id)
	}
	buf.WriteString("</g>\n")
}

func (s *Skin) writeClock(buf *bytes.Buffer, rising, arrow bool) {
	xs, ys := s.SocketWidth, s.SocketHeight
	if rising {
		fmt.Fprintf(buf, `<path d="M0,%s L0,0 L%s,0" class="s1"/>`, svg.Num(ys), svg.Num(xs))
	} else {
		fmt.Fprintf(buf, `<path d="M0,0 L0,%s L%s,%s" class="s1"/>`, svg.Num(ys), svg.Num(xs), svg.Num(ys))
	}
	if arrow {
		tip, tail := ys*0.3, ys*0.7
		if !rising {
			tip, tail = tail, tip
		}
		fmt.Fprintf(buf, `<path d="M-1.6,%s L0,%s L1.6,%s z" style="fill:#0041c4;stroke:none"/>`,
			svg.Num(tail), svg.Num(tip), svg.Num(tail))
	}
}

func (s *Skin) writeSteady(buf *bytes.Buffer, id string) {
	xs, ys := s.SocketWidth, s.SocketHeight
	level := id[0]
	suffix := ""
	if i := strings.IndexByte(id, '-'); i >= 0 {
		suffix = id[i:]
	}

	if level == 'v' {
		fmt.Fprintf(buf, `<rect x="0" y="0" width="%s" height="%s" class="%s" style="stroke:none"/>`,
			svg.Num(xs), svg.Num(ys), fillClass(suffix))
	}
	cls := "s1"
	if level == 'd' || level == 'u' {
		cls = "s2"
	}
	for _, y := range s.rails(level) {
		fmt.Fprintf(buf, `<path d="M0,%s L%s,%s" class="%s"/>`, svg.Num(y), svg.Num(xs), svg.Num(y), cls)
	}
	if level == 'x' {
		fmt.Fprintf(buf, `<path d="M0,%s L%s,0" class="s1"/>`, svg.Num(ys), svg.Num(xs))
	}
}

func (s *Skin) writeTransition(buf *bytes.Buffer, id string) {
	xs, ys := s.SocketWidth, s.SocketHeight
	from, to := id[0], id[2]
	t0, t1 := xs*3/20, xs*9/20

	// Value suffixes: "vmv-a-b" carries both sides, otherwise a single
	// suffix belongs to whichever side is a value box.
	var fromSuffix, toSuffix string
	suffixes := splitSuffixes(id[3:])
	switch {
	case from == 'v' && to == 'v':
		if len(suffixes) > 0 {
			fromSuffix = suffixes[0]
		}
		if len(suffixes) > 1 {
			toSuffix = suffixes[1]
		}
	case to == 'v':
		if len(suffixes) > 0 {
			toSuffix = suffixes[0]
		}
	case from == 'v':
		if len(suffixes) > 0 {
			fromSuffix = suffixes[0]
		}
	}

	if from == 'v' {
		fmt.Fprintf(buf, `<rect x="0" y="0" width="%s" height="%s" class="%s" style="stroke:none"/>`,
			svg.Num(t0), svg.Num(ys), fillClass(fromSuffix))
	}
	if to == 'v' {
		fmt.Fprintf(buf, `<rect x="%s" y="0" width="%s" height="%s" class="%s" style="stroke:none"/>`,
			svg.Num(t1), svg.Num(xs-t1), svg.Num(ys), fillClass(toSuffix))
	}

	for _, a := range s.rails(from) {
		for _, b := range s.rails(to) {
			fmt.Fprintf(buf, `<path d="M0,%s L%s,%s L%s,%s L%s,%s" class="s1"/>`,
				svg.Num(a), svg.Num(t0), svg.Num(a), svg.Num(t1), svg.Num(b), svg.Num(xs), svg.Num(b))
		}
	}
}

// splitSuffixes splits a trailing suffix run like "-2-3" into its
// dash-prefixed parts.
func splitSuffixes(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, "-") {
		if part != "" {
			out = append(out, "-"+part)
		}
	}
	return out
}
