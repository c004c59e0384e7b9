// Package wave interprets the wave-descriptor mini-language.
//
// A wave descriptor is a compact string such as "p...=.x" where each
// character describes one time slot of a signal. The interpreter turns
// a descriptor into a sequence of bricks: canonical shape ids that the
// rendering layer maps onto skin-defined SVG fragments.
//
// Each logical time slot expands to bricks in multiples of the half-slot
// grid; a plain symbol expands to a transition brick plus steady repeats,
// a clock symbol alternates its edge shape with its inverse.
package wave

import "strings"

// Brick is one rendered half-slot segment of a waveform lane.
//
// Shape is a canonical shape id ("111", "0m1", "vvv-3", "pclk", ...)
// resolved against the active skin's symbol library at draw time.
type Brick struct {
	Shape      string
	Transition bool // edge or boundary brick, not a steady repeat
}

// clkShapes are the four sharp clock-edge shapes.
var clkShapes = map[string]bool{"pclk": true, "nclk": true, "Pclk": true, "Nclk": true}

func brick(shape string) Brick {
	return Brick{
		Shape:      shape,
		Transition: clkShapes[shape] || strings.Contains(shape, "m"),
	}
}

func steady(shape string) Brick {
	return Brick{Shape: shape}
}

// Shapes returns just the shape ids of bricks, mainly for tests and for
// the data-overlay scan which keys off value-marker shapes.
func Shapes(bricks []Brick) []string {
	out := make([]string, len(bricks))
	for i, b := range bricks {
		out[i] = b.Shape
	}
	return out
}
