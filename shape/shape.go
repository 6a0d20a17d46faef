// Package shape defines the visual vocabulary of a node (box, circle,
// record, connector) and an edge's arrow styling, grounded on the
// reference std_shapes module.
package shape

import (
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/style"
)

const (
	padding     = 60.
	connPadding = 10.
)

// Orientation is the graph's layout direction; it also doubles as the
// record-splitting axis (Record arrays split along X when TopToBottom,
// because records grow opposite to the overall flow direction).
type Orientation int

const (
	TopToBottom Orientation = iota
	LeftToRight
)

func (o Orientation) Flip() Orientation {
	if o == TopToBottom {
		return LeftToRight
	}
	return TopToBottom
}

func (o Orientation) IsLeftToRight() bool { return o == LeftToRight }

// RecordDef is a record label's recursive structure: a leaf cell carrying
// text and an optional port name, or an array of sibling cells.
type RecordDef struct {
	Text  string
	Port  string // empty means no port
	Array []RecordDef
}

func NewRecordText(text string) RecordDef      { return RecordDef{Text: text} }
func NewRecordPort(text, port string) RecordDef { return RecordDef{Text: text, Port: port} }
func NewRecordArray(children []RecordDef) RecordDef {
	return RecordDef{Array: children}
}

func (r RecordDef) IsArray() bool { return r.Array != nil }

// Kind tags which concrete shape an Element draws.
type Kind int

const (
	KindNone Kind = iota
	KindBox
	KindCircle
	KindDoubleCircle
	KindRecord
	KindConnector
)

// ShapeKind is a closed sum over the drawable node shapes. Text holds the
// label for Box/Circle/DoubleCircle/Connector; Record holds the recursive
// record tree; for Connector, an empty Text means "no label" (a pure
// routing waypoint) rather than a blank string label.
type ShapeKind struct {
	Kind         Kind
	Text         string
	Record       RecordDef
	ConnectorSet bool // true if Connector carries a non-empty label
}

func NewBox(text string) ShapeKind          { return ShapeKind{Kind: KindBox, Text: text} }
func NewCircle(text string) ShapeKind       { return ShapeKind{Kind: KindCircle, Text: text} }
func NewDoubleCircle(text string) ShapeKind { return ShapeKind{Kind: KindDoubleCircle, Text: text} }
func NewRecord(r RecordDef) ShapeKind       { return ShapeKind{Kind: KindRecord, Record: r} }

// NewConnector builds a connector shape. ConnectorSet is true only for a
// non-empty label, so NewConnector("") (e.g. from `label=""`) is the same
// unlabelled pass-through connector as EmptyConnectorShape().
func NewConnector(label string) ShapeKind {
	return ShapeKind{Kind: KindConnector, Text: label, ConnectorSet: label != ""}
}

func EmptyConnectorShape() ShapeKind {
	return ShapeKind{Kind: KindConnector, ConnectorSet: false}
}

// HasLabel reports whether a connector carries rendered text.
func (s ShapeKind) HasLabel() bool {
	return s.Kind == KindConnector && s.ConnectorSet
}

// Element is a drawable node: its shape, resolved style, orientation, and
// position.
type Element struct {
	Shape       ShapeKind
	Look        style.Attr
	Orientation Orientation
	Pos         geom.Position
}

// Create builds a regular (non-connector) element at the origin with a
// large halo, matching the reference shapes.rs padding used for ordinary
// nodes.
func Create(shape ShapeKind, look style.Attr, orientation Orientation, size geom.Point) Element {
	return Element{
		Shape:       shape,
		Look:        look,
		Orientation: orientation,
		Pos:         geom.NewPosition(geom.Zero(), size, geom.Zero(), geom.Splat(padding)),
	}
}

// CreateConnector builds a connector element. Connectors start at zero
// size; Resize fills in their real size once their label (if any) is
// known, exactly as the reference Element::resize does post-construction.
func CreateConnector(label string, look style.Attr, dir Orientation) Element {
	return Element{
		Shape:       NewConnector(label),
		Look:        look,
		Orientation: dir,
		Pos:         geom.NewPosition(geom.Zero(), geom.Zero(), geom.Zero(), geom.Splat(connPadding)),
	}
}

func EmptyConnector(dir Orientation) Element {
	return CreateConnector("", style.Simple(), dir)
}

func (e *Element) MoveTo(to geom.Point) { e.Pos.MoveTo(to) }

func (e Element) IsConnector() bool { return e.Shape.Kind == KindConnector }

func (e *Element) Transpose() {
	e.Orientation = e.Orientation.Flip()
	e.Pos.Transpose()
}

// Resize recomputes a connector's size and center offset from its current
// label and orientation. Non-connector elements are sized once at creation
// and never resized (their size depends on attributes that don't change
// after the graph builder runs).
func (e *Element) Resize(getShapeSize func(Orientation, ShapeKind, int, bool) geom.Point) {
	if e.Shape.Kind != KindConnector {
		return
	}
	size := getShapeSize(e.Orientation, e.Shape, e.Look.FontSize, false)
	e.Pos.SetSize(size)
	if e.Orientation == TopToBottom {
		e.Pos.SetNewCenterPoint(geom.Pt(0, size.Y/2))
	} else {
		e.Pos.SetNewCenterPoint(geom.Pt(size.X/2, 0))
	}
}

// LineEnd selects whether an arrow endpoint is undecorated or carries an
// arrowhead.
type LineEnd int

const (
	LineEndNone LineEnd = iota
	LineEndArrow
)

// Arrow is an edge's rendering attributes: endpoint decorations, dash
// style, label text, optional record ports, and resolved style.
type Arrow struct {
	Start    LineEnd
	End      LineEnd
	Style    style.LineStyle
	Text     string
	Look     style.Attr
	SrcPort  string
	DstPort  string
}

func DefaultArrow() Arrow {
	return Arrow{Start: LineEndNone, End: LineEndArrow, Style: style.LineNormal, Look: style.Simple()}
}

func SimpleArrow(text string) Arrow {
	a := DefaultArrow()
	a.Text = text
	return a
}

func InvisibleArrow() Arrow {
	return Arrow{Start: LineEndNone, End: LineEndNone, Style: style.LineNone, Look: style.Simple()}
}

// Reverse swaps start/end decoration and ports, used when the lowering
// pass reverses a back edge: the DAG edge direction flips, but the drawn
// arrowhead must still point at the user's originally intended
// destination, so head/tail and ports swap together.
func (a Arrow) Reverse() Arrow {
	return Arrow{
		Start:   a.End,
		End:     a.Start,
		Style:   a.Style,
		Text:    a.Text,
		Look:    a.Look,
		SrcPort: a.DstPort,
		DstPort: a.SrcPort,
	}
}
