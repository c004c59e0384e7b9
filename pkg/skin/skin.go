// Package skin supplies the visual themes for timing diagrams.
//
// A skin is a read-only table: socket geometry (the unit cell one time
// slot occupies), a stylesheet, and the brick symbol library emitted
// into the document's <defs> section. Skins are resolved once per
// render, by name, at the outermost document; nested sub-documents
// inherit the resolved geometry.
package skin

import (
	"sort"

	"github.com/mlandau/wavetrace/pkg/errors"
)

// Skin is a named visual theme.
type Skin struct {
	Name string

	// Socket geometry: one brick occupies SocketWidth×SocketHeight
	// user units; a time slot is two bricks wide.
	SocketWidth  float64
	SocketHeight float64

	// LabelX/LabelY position in-lane text relative to the lane origin.
	LabelX float64
	LabelY float64

	// CSS is the stylesheet injected once per document.
	CSS string
}

const baseCSS = `text{font-size:11pt;font-style:normal;font-variant:normal;font-weight:normal;text-align:center;fill-opacity:1;font-family:Helvetica}` +
	`.muted{fill:#aaa}.warning{fill:#f6b900}.error{fill:#f60000}.info{fill:#0041c4}` +
	`.h1{font-size:33pt;font-weight:bold}.h2{font-size:27pt;font-weight:bold}.h3{font-size:20pt;font-weight:bold}` +
	`.s1{fill:none;stroke:#000;stroke-width:1;stroke-linecap:round;stroke-linejoin:miter}` +
	`.s2{fill:none;stroke:#000;stroke-width:0.5;stroke-linecap:round;stroke-dasharray:1,3}` +
	`.f2{fill:#fff}.f3{fill:#ffffb4}.f4{fill:#ffe0b9}.f5{fill:#b9e0ff}` +
	`.f6{fill:#ccfca8}.f7{fill:#e0c9ff}.f8{fill:#ffc9e0}.f9{fill:#c9fff3}` +
	`.gaps{fill:#fff;stroke:#000;stroke-width:1}`

const darkCSS = baseCSS +
	`svg{background:#1b1b1b}text{fill:#e0e0e0}.s1{stroke:#e0e0e0}.muted{fill:#666}` +
	`.gaps{fill:#1b1b1b;stroke:#e0e0e0}`

const lowkeyCSS = baseCSS +
	`.s1{stroke:#444;stroke-width:0.75}.info{fill:#446}.f3,.f4,.f5,.f6,.f7,.f8,.f9{fill-opacity:0.4}`

// registry holds the built-in skins. The default socket is 20×20 with
// the in-lane label anchor at (6,15); the narrow family halves the
// socket width.
var registry = map[string]*Skin{
	"default": {Name: "default", SocketWidth: 20, SocketHeight: 20, LabelX: 6, LabelY: 15, CSS: baseCSS},
	"narrow":  {Name: "narrow", SocketWidth: 10, SocketHeight: 20, LabelX: 3, LabelY: 15, CSS: baseCSS},
	"lowkey":  {Name: "lowkey", SocketWidth: 20, SocketHeight: 20, LabelX: 6, LabelY: 15, CSS: lowkeyCSS},
	"dark":    {Name: "dark", SocketWidth: 20, SocketHeight: 20, LabelX: 6, LabelY: 15, CSS: darkCSS},
}

// ByName looks up a skin. An empty name selects the default skin;
// an unknown name fails with INVALID_SKIN.
func ByName(name string) (*Skin, error) {
	if name == "" {
		name = "default"
	}
	s, ok := registry[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidSkin, "unknown skin %q", name)
	}
	return s, nil
}

// Default returns the default skin.
func Default() *Skin {
	return registry["default"]
}

// Names lists the available skin names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
