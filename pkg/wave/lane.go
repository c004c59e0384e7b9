package wave

import (
	"math"

	"github.com/mlandau/wavetrace/pkg/errors"
)

// ParseLane interprets a full wave descriptor into its brick sequence.
//
// stretch is period×hscale−1 for the owning lane. phase is the lane
// phase in half-slot units; ceil(phase) leading bricks are trimmed so a
// positive phase shifts the waveform left.
//
// '|' draws like 'x' but marks a timeline gap (the overlay is placed by
// the layout engine, which re-walks the descriptor). '<' and '>' bracket
// a sub-cycle section rendered at finer granularity; an unterminated
// bracket is a grammar error. Any other unrecognized character passes
// through as a literal steady shape.
func ParseLane(text string, stretch, phase float64) ([]Brick, error) {
	var out []Brick

	stack := []rune(text)
	var prev, this rune
	subcycle := false

	pop := func() rune {
		c := stack[0]
		stack = stack[1:]
		return c
	}

	for len(stack) > 0 {
		prev = this
		this = pop()
		repeat := 0

		if this == '|' {
			this = 'x'
		}
		if this == '<' || this == '>' {
			entering := this == '<'
			subcycle = entering
			this = prev
			prev = 0
			if entering && len(stack) == 0 {
				return nil, errors.New(errors.ErrCodeInvalidGrammar,
					"wave descriptor %q: unterminated sub-cycle bracket", text)
			}
			if len(stack) == 0 || (stack[0] != '.' && stack[0] != '|') {
				continue
			}
			pop()
		}
		for len(stack) > 0 && (stack[0] == '.' || stack[0] == '|') {
			pop()
			repeat++
		}
		if this == 0 {
			// Descriptor opened with a bracket; nothing to repeat yet.
			continue
		}
		out = append(out, GenBrick(prev, this, stretch, repeat, subcycle)...)
	}

	if subcycle {
		return nil, errors.New(errors.ErrCodeInvalidGrammar,
			"wave descriptor %q: unterminated sub-cycle bracket", text)
	}

	if trim := int(math.Ceil(phase)); trim > 0 {
		if trim >= len(out) {
			out = nil
		} else {
			out = out[trim:]
		}
	}

	return out, nil
}
