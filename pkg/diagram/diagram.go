// Package diagram defines the input document model for wavetrace.
//
// A document is strict JSON with one of three top-level selectors:
// "signal" (timing diagram), "reg" (register bitfield diagram) or
// "assign" (recognized but unsupported). The loose attribute bags of
// the input format are validated here, at the boundary, into tagged
// structs; the layout engines never do deferred key lookups.
package diagram

// Document is a fully decoded wavetrace source document.
type Document struct {
	// Signal is the root of the signal tree; nil when the document is
	// not a timing diagram. The root is an unnamed group whose children
	// are the top-level entries.
	Signal *SignalNode

	// Reg is the ordered register field list; nil when the document is
	// not a bitfield diagram.
	Reg []Field

	// HasAssign marks a document that selects the assign pipeline.
	HasAssign bool

	Config Config
	Head   *Caption
	Foot   *Caption
	Edges  []string
}

// Kind reports which pipeline the document selects.
func (d *Document) Kind() Kind {
	switch {
	case d.Signal != nil:
		return KindSignal
	case d.Reg != nil:
		return KindReg
	case d.HasAssign:
		return KindAssign
	default:
		return KindUnknown
	}
}

// Kind identifies the rendering pipeline a document selects.
type Kind int

const (
	KindUnknown Kind = iota
	KindSignal
	KindReg
	KindAssign
)

func (k Kind) String() string {
	switch k {
	case KindSignal:
		return "signal"
	case KindReg:
		return "reg"
	case KindAssign:
		return "assign"
	default:
		return "unknown"
	}
}

// SignalNode is one node of the signal tree: either a group with
// ordered children or a leaf lane.
type SignalNode struct {
	// Lane is set for leaf nodes and nil for groups.
	Lane *Lane

	// Group fields. Named is true when the group's list opened with a
	// string or number label; named groups indent their members.
	Name     string
	Named    bool
	Children []*SignalNode
}

// IsGroup reports whether the node is a group.
func (n *SignalNode) IsGroup() bool { return n.Lane == nil }

// Lane is one signal's channel record.
type Lane struct {
	Name   string
	Wave   string
	Data   []string // value overlay, pre-split
	Period float64  // time-slot width multiplier, default 1
	Phase  float64  // x shift in time slots
	Node   string   // per-slot event names for arcs
	Label  string   // inline label mini-language (non-strict feature)
}

// Field is one named bit-range segment of a bitfield diagram.
type Field struct {
	Name  string
	Bits  int
	Attrs []Attr
	Type  int // highlight palette selector, 0 when untyped
}

// Attr is one attribute annotation of a register field; either free
// text or an integer rendered as per-bit binary digits.
type Attr struct {
	Text  string
	Value int64
	IsInt bool
}

// Caption is a head or foot decoration of a timing diagram.
type Caption struct {
	Text string
	Tick *Ticks
	Tock *Ticks
}

// Ticks configures a row of timing-index numerals.
type Ticks struct {
	// Seq: values count up from Start.
	Seq   bool
	Start float64

	// Pair: values are Start + i·Step; decimal places follow StepText.
	Pair     bool
	Step     float64
	StepText string

	// Values: explicit label list, used verbatim.
	Values []string
}

// Config carries the recognized top-level options. Signal-diagram and
// bitfield-diagram options share the object; each pipeline reads its
// own subset and silently falls back to defaults for out-of-range
// numeric values.
type Config struct {
	// Signal diagram options.
	Skin    string
	HScale  float64
	HBounds *[2]float64

	// Bitfield diagram options.
	VSpace     float64
	HSpace     float64
	Lanes      int
	Bits       int
	HFlip      bool
	VFlip      bool
	FontSize   float64
	FontFamily string
	FontWeight string
}
