// Package bitfield renders register field descriptions into SVG
// bit-cage diagrams.
//
// A register is split across one or more horizontal lanes; each lane
// shows a cage of bit cells with the field names centered inside,
// index numerals above, and attribute rows below. Bit 0 sits at the
// right edge unless the diagram is flipped.
package bitfield

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
	"github.com/mlandau/wavetrace/pkg/svg"
)

// typeColors is the field highlight palette, keyed by the type
// selector.
var typeColors = map[int]string{
	2: "FF0000", 3: "AAFF00", 4: "00FFD5",
	5: "FFBF00", 6: "00FF1A", 7: "006AFF",
}

// options are the resolved lane geometry settings. Out-of-range
// values in the document fall back to the defaults rather than
// erroring, matching the permissive input dialect.
type options struct {
	vspace     float64
	hspace     float64
	lanes      int
	bits       int
	hflip      bool
	vflip      bool
	fontsize   float64
	fontfamily string
	fontweight string
}

func resolveOptions(c diagram.Config) options {
	o := options{
		vspace:     80,
		hspace:     800,
		lanes:      1,
		bits:       32,
		hflip:      c.HFlip,
		vflip:      c.VFlip,
		fontsize:   14,
		fontfamily: "sans-serif",
		fontweight: "normal",
	}
	if c.VSpace > 19 {
		o.vspace = c.VSpace
	}
	if c.HSpace > 39 {
		o.hspace = c.HSpace
	}
	if c.Lanes > 0 {
		o.lanes = c.Lanes
	}
	if c.Bits > 4 {
		o.bits = c.Bits
	}
	if c.FontSize > 5 {
		o.fontsize = c.FontSize
	}
	if c.FontFamily != "" {
		o.fontfamily = c.FontFamily
	}
	if c.FontWeight != "" {
		o.fontweight = c.FontWeight
	}
	return o
}

// fieldPos is a field's absolute and in-lane bit range.
type fieldPos struct {
	lsb, msb   int
	lsbm, msbm int
}

// Renderer converts bitfield documents to SVG. Safe for concurrent
// use.
type Renderer struct{}

// New returns a bitfield Renderer.
func New() *Renderer { return &Renderer{} }

// Render draws the register description of doc as a complete SVG
// document.
func (r *Renderer) Render(doc *diagram.Document) ([]byte, error) {
	if doc == nil || doc.Reg == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no reg section")
	}

	opt := resolveOptions(doc.Config)
	sc := &scene{opt: opt, mod: opt.bits / opt.lanes}
	if sc.mod == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "lane count exceeds bit width")
	}

	// All lanes reserve room for the longest attribute column so the
	// vertical rhythm stays uniform.
	maxAttrs := 0
	for _, f := range doc.Reg {
		if n := len(f.Attrs); n > maxAttrs {
			maxAttrs = n
		}
	}
	if maxAttrs > 1 {
		sc.extra = float64(maxAttrs-1) * 16
	}

	pos := make([]fieldPos, len(doc.Reg))
	lsb := 0
	for i, f := range doc.Reg {
		pos[i].lsb = lsb
		pos[i].lsbm = lsb % sc.mod
		lsb += f.Bits
		pos[i].msb = lsb - 1
		pos[i].msbm = pos[i].msb % sc.mod
	}

	width := opt.hspace + 9
	height := (opt.vspace+sc.extra)*float64(opt.lanes) + 5

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" class=\"WaveDrom\" viewBox=\"0 0 %s %s\" width=\"%s\" height=\"%s\">\n",
		svg.Num(width), svg.Num(height), svg.Num(width), svg.Num(height))
	for i := 0; i < opt.lanes; i++ {
		sc.index = i
		sc.renderLane(buf, doc.Reg, pos)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

// scene is the per-render state shared by the lane passes.
type scene struct {
	opt   options
	mod   int
	index int
	extra float64
}

func (sc *scene) renderLane(buf *bytes.Buffer, fields []diagram.Field, pos []fieldPos) {
	i := sc.index
	if !sc.opt.hflip {
		i = sc.opt.lanes - sc.index - 1
	}
	y := float64(i)*sc.opt.vspace + 0.5

	fmt.Fprintf(buf, "<g transform=\"translate(4.5,%s)\" text-anchor=\"middle\" font-size=\"%s\" font-family=\"%s\" font-weight=\"%s\">\n",
		svg.Num(y), svg.Num(sc.opt.fontsize), svg.Escape(sc.opt.fontfamily), svg.Escape(sc.opt.fontweight))
	sc.renderCage(buf, pos)
	sc.renderLabels(buf, fields, pos)
	buf.WriteString("</g>\n")
}

// renderCage draws the cell outline: the two long rails and one
// divider per bit, full height on field boundaries and notched
// elsewhere.
func (sc *scene) renderCage(buf *bytes.Buffer, pos []fieldPos) {
	hs, vs, mod := sc.opt.hspace, sc.opt.vspace, sc.mod

	fmt.Fprintf(buf, "<g stroke=\"black\" stroke-width=\"1\" stroke-linecap=\"round\" transform=\"translate(0,%s)\">\n", svg.Num(vs/4))
	sc.hline(buf, hs, 0, 0)
	if sc.opt.vflip {
		sc.vline(buf, 0, 0, 0)
	} else {
		sc.vline(buf, vs/2, 0, 0)
	}
	sc.hline(buf, hs, 0, vs/2)

	bit := sc.index * mod
	emit := func(j int) {
		x := float64(j) * (hs / float64(mod))
		onBoundary := j == mod
		if !onBoundary {
			for _, p := range pos {
				if p.lsb == bit {
					onBoundary = true
					break
				}
			}
		}
		if onBoundary {
			sc.vline(buf, vs/2, x, 0)
		} else {
			sc.vline(buf, vs/16, x, 0)
			sc.vline(buf, vs/16, x, vs*7/16)
		}
		bit++
	}
	if sc.opt.vflip {
		for j := 0; j <= mod; j++ {
			emit(j)
		}
	} else {
		for j := mod; j > 0; j-- {
			emit(j)
		}
	}
	buf.WriteString("</g>\n")
}

func (sc *scene) hline(buf *bytes.Buffer, length, x, y float64) {
	fmt.Fprintf(buf, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n",
		svg.Num(x), svg.Num(y), svg.Num(x+length), svg.Num(y))
}

func (sc *scene) vline(buf *bytes.Buffer, length, x, y float64) {
	fmt.Fprintf(buf, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n",
		svg.Num(x), svg.Num(y), svg.Num(x), svg.Num(y+length))
}

// renderLabels draws the four text layers of one lane: highlight
// blanks, bit index numerals, field names and attribute rows.
func (sc *scene) renderLabels(buf *bytes.Buffer, fields []diagram.Field, pos []fieldPos) {
	step := sc.opt.hspace / float64(sc.mod)
	vs := sc.opt.vspace

	blanks := &bytes.Buffer{}
	bits := &bytes.Buffer{}
	names := &bytes.Buffer{}
	attrs := &bytes.Buffer{}

	for fi, f := range fields {
		lsbm, msbm := 0, sc.mod-1
		lsb := sc.index * sc.mod
		msb := (sc.index+1)*sc.mod - 1

		inLane := false
		if pos[fi].lsb/sc.mod == sc.index {
			inLane = true
			lsbm = pos[fi].lsbm
			lsb = pos[fi].lsb
			if pos[fi].msb/sc.mod == sc.index {
				msb = pos[fi].msb
				msbm = pos[fi].msbm
			}
		} else if pos[fi].msb/sc.mod == sc.index {
			inLane = true
			msb = pos[fi].msb
			msbm = pos[fi].msbm
		}
		if !inLane {
			continue
		}

		sc.bitIndex(bits, lsb, step, lsbm)
		if lsbm != msbm {
			sc.bitIndex(bits, msb, step, msbm)
		}

		cx := step * (float64(msbm+lsbm) / 2)
		if !sc.opt.vflip {
			cx = step * (float64(sc.mod) - float64(msbm+lsbm)/2 - 1)
		}
		if f.Name != "" {
			sc.multiText(names, f.Name, cx, 0)
		}

		if f.Name == "" || f.Type != 0 {
			style := "fill-opacity:0.1"
			if c, ok := typeColors[f.Type]; ok {
				style += ";fill:#" + c
			}
			ix := float64(lsbm)
			if !sc.opt.vflip {
				ix = float64(sc.mod - msbm - 1)
			}
			fmt.Fprintf(blanks, "<rect x=\"%s\" y=\"0\" width=\"%s\" height=\"%s\" style=\"%s\"/>\n",
				svg.Num(step*ix), svg.Num(step*float64(msbm-lsbm+1)), svg.Num(vs/2), style)
		}

		for ai, a := range f.Attrs {
			sc.attrLabel(attrs, a, cx, 16*float64(ai), step, f.Bits)
		}
	}

	buf.WriteString("<g text-anchor=\"middle\">\n<g>\n")
	fmt.Fprintf(buf, "<g transform=\"translate(0,%s)\">\n%s</g>\n", svg.Num(vs/4), blanks.Bytes())
	fmt.Fprintf(buf, "<g transform=\"translate(%s,%s)\">\n%s</g>\n", svg.Num(step/2), svg.Num(vs/5), bits.Bytes())
	fmt.Fprintf(buf, "<g transform=\"translate(%s,%s)\">\n%s</g>\n", svg.Num(step/2), svg.Num(vs/2+4), names.Bytes())
	fmt.Fprintf(buf, "<g transform=\"translate(%s,%s)\">\n%s</g>\n", svg.Num(step/2), svg.Num(vs), attrs.Bytes())
	buf.WriteString("</g>\n</g>\n")
}

func (sc *scene) bitIndex(buf *bytes.Buffer, n int, step float64, m int) {
	x := step * float64(m)
	if !sc.opt.vflip {
		x = step * float64(sc.mod-m-1)
	}
	fmt.Fprintf(buf, "<text x=\"%s\">%d</text>\n", svg.Num(x), n)
}

// attrLabel writes one attribute row entry: integer attributes become
// per-bit binary digits under their cells, text attributes a centered
// label, split on newlines.
func (sc *scene) attrLabel(buf *bytes.Buffer, a diagram.Attr, x, y, step float64, bits int) {
	if a.IsInt {
		for i := 0; i < bits; i++ {
			v := (a.Value >> i) & 1
			xi := x + step*(float64(bits)/2-float64(i)-0.5)
			fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\">%d</text>\n", svg.Num(xi), svg.Num(y), v)
		}
		return
	}
	sc.multiText(buf, a.Text, x, y)
}

// multiText writes body centered at (x, y), stacking newline-separated
// lines vertically at fontsize steps around y.
func (sc *scene) multiText(buf *bytes.Buffer, body string, x, y float64) {
	lines := strings.Split(body, "\n")
	if len(lines) == 1 {
		sc.text(buf, body, x, y)
		return
	}
	for i, line := range lines {
		dy := (-float64(len(lines)-1)/2 + float64(i)) * sc.opt.fontsize
		sc.text(buf, line, x, y+dy)
	}
}

func (sc *scene) text(buf *bytes.Buffer, body string, x, y float64) {
	if y != 0 {
		fmt.Fprintf(buf, "<text x=\"%s\" y=\"%s\">%s</text>\n", svg.Num(x), svg.Num(y), svg.Escape(body))
		return
	}
	fmt.Fprintf(buf, "<text x=\"%s\">%s</text>\n", svg.Num(x), svg.Escape(body))
}
