package wave

import "strings"

// Symbol classification tables. These mirror the descriptor alphabet:
// sharp-edge clocks {p,n,P,N}, sharp-edge levels {h,l,H,L}, plain levels
// {0,1,x,z,d,u} and multi-value markers {2..9,=}.
var (
	// sharpClk maps clock symbols to their canonical edge shape.
	sharpClk = map[rune]string{'p': "pclk", 'n': "nclk", 'P': "Pclk", 'N': "Nclk"}

	// sharpSig maps sharp-edged level symbols to the edge shape that
	// reaches their level.
	sharpSig = map[rune]string{'h': "pclk", 'l': "nclk", 'H': "Pclk", 'L': "Nclk"}

	// level maps a symbol to its logical level character. Symbols absent
	// from the table are their own level (0, 1, x, z, d, u and any
	// unrecognized literal).
	level = map[rune]rune{
		'=': 'v', '2': 'v', '3': 'v', '4': 'v', '5': 'v',
		'6': 'v', '7': 'v', '8': 'v', '9': 'v',
		'h': '1', 'H': '1', 'l': '0', 'L': '0',
	}

	// transLevel is the level at the end of a cycle; clocks end on the
	// opposite rail from their edge direction.
	transLevel = map[rune]rune{'p': '0', 'P': '0', 'n': '1', 'N': '1'}

	// dataSuffix distinguishes the multi-value marker shapes.
	dataSuffix = map[rune]string{
		'=': "-2", '2': "-2", '3': "-3", '4': "-4", '5': "-5",
		'6': "-6", '7': "-7", '8': "-8", '9': "-9",
	}

	// clkInvert is the inverse brick to each clock symbol.
	clkInvert = map[rune]string{'p': "nclk", 'n': "pclk", 'P': "nclk", 'N': "pclk"}

	// excluded pairs sit at identical levels; the transition brick is
	// suppressed and only the steady shape is emitted.
	excluded = map[string]string{
		"hp": "111", "Hp": "111",
		"ln": "000", "Ln": "000",
		"nh": "111", "Nh": "111",
		"pl": "000", "Pl": "000",
	}
)

func levelOf(c rune) rune {
	if l, ok := level[c]; ok {
		return l
	}
	return c
}

func transLevelOf(c rune) rune {
	if l, ok := transLevel[c]; ok {
		return l
	}
	return levelOf(c)
}

// steadyShape is the three-character steady form of a symbol, plus the
// value suffix for multi-value markers ("vvv-3").
func steadyShape(c rune) string {
	return strings.Repeat(string(levelOf(c)), 3) + dataSuffix[c]
}

// GenBrick expands one descriptor symbol into its brick sequence.
//
// prev is zero when the symbol starts the lane. repeat counts trailing
// '.'/'|' continuation characters. subcycle truncates the output to
// repeat+1 bricks. stretch is the per-brick replication factor derived
// from period×hscale−1; the only valid fractional value is -0.5, which
// down-samples by keeping even-indexed bricks.
func GenBrick(prev, this rune, stretch float64, repeat int, subcycle bool) []Brick {
	var out []Brick

	_, isClk := sharpClk[this]
	_, isSharpSig := sharpSig[this]

	switch {
	case isClk || isSharpSig:
		var first Brick
		if prev == 0 {
			if isClk {
				first = brick(sharpClk[this])
			} else {
				first = steady(steadyShape(this))
			}
		} else if shape, ok := excluded[string(prev)+string(this)]; ok {
			first = steady(shape)
		} else if isClk {
			first = brick(sharpClk[this])
		} else {
			first = brick(sharpSig[this])
		}

		if isClk {
			inv := brick(clkInvert[this])
			for i := 0; i <= repeat; i++ {
				out = append(out, first, inv)
			}
		} else {
			out = append(out, first)
			rest := steady(steadyShape(this))
			for i := 0; i < 2*repeat+1; i++ {
				out = append(out, rest)
			}
		}

	default:
		value := steady(steadyShape(this))
		var transition Brick
		if prev == 0 {
			transition = value
		} else {
			transition = brick(string(transLevelOf(prev)) + "m" + string(levelOf(this)) +
				dataSuffix[prev] + dataSuffix[this])
		}
		out = append(out, transition, value)
		for i := 0; i < repeat; i++ {
			out = append(out, value, value)
		}
	}

	if subcycle {
		if len(out) > repeat+1 {
			out = out[:repeat+1]
		}
	}

	// Half-rate clocks keep their edge pattern instead of dropping every
	// other brick.
	if !(stretch == -0.5 && isClk) {
		out = stretchBricks(out, stretch)
	}

	return out
}

// fillers maps brick shapes to the steady brick used to pad stretched
// output. Lookup order: whole shape, the shape's third character, then
// its last character (which picks up the value suffix digit).
var fillers = map[string]string{
	"Pclk": "111", "Nclk": "000", "pclk": "111", "nclk": "000",
	"0": "000", "1": "111", "x": "xxx", "d": "ddd", "u": "uuu", "z": "zzz",
	"2": "vvv-2", "3": "vvv-3", "4": "vvv-4", "5": "vvv-5",
	"6": "vvv-6", "7": "vvv-7", "8": "vvv-8", "9": "vvv-9",
}

func fillerFor(shape string) string {
	if f, ok := fillers[shape]; ok {
		return f
	}
	rs := []rune(shape)
	if len(rs) > 2 {
		if f, ok := fillers[string(rs[2])]; ok {
			return f
		}
	}
	if f, ok := fillers[string(rs[len(rs)-1])]; ok {
		return f
	}
	// Literal pass-through symbols stretch as their own steady shape.
	return strings.Repeat(string(rs[len(rs)-1]), 3)
}

// stretchBricks replicates or down-samples a brick sequence.
// A positive integer stretch appends that many steady fillers after each
// brick; -0.5 keeps only even-indexed bricks.
func stretchBricks(bricks []Brick, stretch float64) []Brick {
	if stretch == -0.5 {
		out := make([]Brick, 0, (len(bricks)+1)/2)
		for i := 0; i < len(bricks); i += 2 {
			out = append(out, bricks[i])
		}
		return out
	}

	n := int(stretch)
	if n <= 0 {
		return bricks
	}
	out := make([]Brick, 0, len(bricks)*(1+n))
	for _, b := range bricks {
		out = append(out, b)
		filler := steady(fillerFor(b.Shape))
		for i := 0; i < n; i++ {
			out = append(out, filler)
		}
	}
	return out
}
