package timing

import "github.com/mlandau/wavetrace/pkg/diagram"

// flatSignals is the signal tree flattened into drawing order: the
// lanes top to bottom, each lane's title indentation, and the group
// bracket spans discovered along the way.
type flatSignals struct {
	lanes  []*diagram.Lane
	widths []float64 // title indentation per lane
	groups []groupSpan
}

// groupSpan records one group bracket. x is the indentation depth of
// the group's members, y and height count lanes.
type groupSpan struct {
	x      float64
	y      int
	height int
	name   string
	named  bool
}

// flattenSignals walks the signal tree depth first. Named groups
// indent their members by 25 units, unnamed ones by 10, so sibling
// brackets at different depths never overlap.
func flattenSignals(root *diagram.SignalNode) *flatSignals {
	f := &flatSignals{}
	walkSignals(root, f, &walkState{})
	return f
}

type walkState struct {
	x  float64 // current indentation
	xx float64 // deepest indentation reached inside the last subtree
	y  int     // lanes emitted so far
}

func walkSignals(node *diagram.SignalNode, f *flatSignals, st *walkState) {
	delta := 10.0
	if node.Named {
		delta = 25
	}
	st.x += delta

	for _, child := range node.Children {
		if child.IsGroup() {
			prevY := st.y
			walkSignals(child, f, st)
			f.groups = append(f.groups, groupSpan{
				x:      st.xx,
				y:      prevY,
				height: st.y - prevY,
				name:   child.Name,
				named:  child.Named,
			})
		} else {
			f.lanes = append(f.lanes, child.Lane)
			f.widths = append(f.widths, st.x)
			st.y++
		}
	}

	st.xx = st.x
	st.x -= delta
}
