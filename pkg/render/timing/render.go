// Package timing renders decoded signal documents into SVG timing
// diagrams.
//
// Rendering walks the document in passes that mirror the drawing
// order: the signal tree is flattened into lanes and group spans, each
// lane's wave string is interpreted into bricks, then lanes, time
// marks, inline labels, arcs and gap squiggles are emitted into a
// single composed <svg> element. All geometry derives from the skin's
// socket size; one time slot is two brick sockets wide.
package timing

import (
	"math"

	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
	"github.com/mlandau/wavetrace/pkg/skin"
)

// Vertical rhythm of a composed diagram, in user units.
const (
	laneY0   = 5.0   // first lane top offset
	laneYO   = 30.0  // lane pitch
	titleTGO = -10.0 // lane title right edge, relative to the lane origin
	fontW    = 7.0   // inline label glyph advance
)

// Renderer converts signal documents to SVG. The zero value is not
// usable; call New. A Renderer is stateless across calls and safe for
// concurrent use.
type Renderer struct {
	strict   bool
	index    int
	skinName string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithStrictCompat disables extensions beyond the reference dialect,
// currently the inline label mini-language.
func WithStrictCompat() Option {
	return func(r *Renderer) { r.strict = true }
}

// WithIndex sets the document index used to namespace element ids when
// several diagrams share one page.
func WithIndex(n int) Option {
	return func(r *Renderer) { r.index = n }
}

// WithSkin overrides the document's configured skin.
func WithSkin(name string) Option {
	return func(r *Renderer) { r.skinName = name }
}

// New returns a Renderer with the given options applied.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, o := range opts {
		o(r)
	}
	return r
}

// scene carries the per-render mutable state. A fresh scene is built
// for every Render call so concurrent renders never share geometry.
type scene struct {
	skin  *skin.Skin
	index int

	// Socket geometry, copied out of the skin.
	xs, ys, xlabel, ym float64

	hscale   float64
	xminCfg  float64
	xmaxCfg  float64
	hasBound bool

	// Head and foot reservations.
	yh0, yh1, yf0, yf1 float64
	head, foot         *diagram.Caption

	// Per-lane cursor while walking wave strings.
	period float64
	phase  float64

	xmax int // brick count of the widest lane
}

// newScene resolves the skin and the document configuration into an
// immutable geometry for one render.
func (r *Renderer) newScene(doc *diagram.Document) (*scene, error) {
	name := doc.Config.Skin
	if r.skinName != "" {
		name = r.skinName
	}
	sk, err := skin.ByName(name)
	if err != nil {
		return nil, err
	}

	sc := &scene{
		skin:   sk,
		index:  r.index,
		xs:     sk.SocketWidth,
		ys:     sk.SocketHeight,
		xlabel: sk.LabelX,
		ym:     sk.LabelY,
		hscale: 1,
		period: 1,
	}

	if h := doc.Config.HScale; h != 0 {
		// Half-integer hscale values round to even (2.5 resolves to 2).
		n := math.RoundToEven(h)
		if n > 0 {
			if n > 100 {
				n = 100
			}
			sc.hscale = n
		}
	}

	if b := doc.Config.HBounds; b != nil {
		lo := math.Floor(b[0])
		hi := math.Ceil(b[1])
		if lo < hi {
			sc.xminCfg = 2 * lo
			sc.xmaxCfg = 2 * hi
			sc.hasBound = true
		}
	}

	if doc.Head != nil {
		sc.head = doc.Head
		if doc.Head.Tick != nil || doc.Head.Tock != nil {
			sc.yh0 = 20
		}
		if doc.Head.Text != "" {
			sc.yh1 = 46
		}
	}
	if doc.Foot != nil {
		sc.foot = doc.Foot
		if doc.Foot.Tick != nil || doc.Foot.Tock != nil {
			sc.yf0 = 20
		}
		if doc.Foot.Text != "" {
			sc.yf1 = 46
		}
	}

	return sc, nil
}

// Render draws doc as a complete SVG document.
func (r *Renderer) Render(doc *diagram.Document) ([]byte, error) {
	if doc == nil || doc.Signal == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document has no signal section")
	}

	sc, err := r.newScene(doc)
	if err != nil {
		return nil, err
	}

	flat := flattenSignals(doc.Signal)

	content, err := sc.parseWaveLanes(flat.lanes)
	if err != nil {
		return nil, err
	}

	return sc.compose(doc, flat, content, r.strict)
}
