package render

import (
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

// RenderElement draws a single node: its shape (dispatching box, circle,
// double circle, record, or connector label), plus debug overlays
// (bounding box and center dot) when debug is set.
func RenderElement(sink Sink, e *shape.Element, debug bool) {
	if debug {
		tl, _ := e.Pos.BBox(true)
		sink.DrawRect(tl, e.Pos.Size(true), style.Debug0(), nil)
	}

	switch e.Shape.Kind {
	case shape.KindNone:
		// nothing to draw
	case shape.KindRecord:
		renderRecord(sink, e.Shape.Record, e.Orientation, e.Pos.Center(), e.Pos.Size(false), e.Look)
	case shape.KindBox:
		tl, _ := e.Pos.BBox(false)
		sink.DrawRect(tl, e.Pos.Size(false), e.Look, nil)
		sink.DrawText(e.Pos.Center(), e.Shape.Text, e.Look)
	case shape.KindCircle:
		sink.DrawCircle(e.Pos.Center(), e.Pos.Size(false), e.Look)
		sink.DrawText(e.Pos.Center(), e.Shape.Text, e.Look)
	case shape.KindDoubleCircle:
		sink.DrawCircle(e.Pos.Center(), e.Pos.Size(false), e.Look)
		inner := e.Pos.Size(false).Sub(geom.Splat(15))
		sink.DrawCircle(e.Pos.Center(), inner, e.Look)
		sink.DrawText(e.Pos.Center(), e.Shape.Text, e.Look)
	case shape.KindConnector:
		if debug {
			tl, _ := e.Pos.BBox(true)
			sink.DrawRect(tl, e.Pos.Size(true), style.Debug0(), nil)
			tl2, _ := e.Pos.BBox(false)
			sink.DrawRect(tl2, e.Pos.Size(false), style.Debug1(), nil)
		}
		if e.Shape.HasLabel() {
			sink.DrawText(e.Pos.Middle(), e.Shape.Text, e.Look)
		}
	}

	if debug {
		sink.DrawCircle(e.Pos.Center(), geom.Pt(6, 6), style.Debug2())
	}
}

// GetConnectorLocation returns where an edge approaching from `from` should
// attach to e, along with the control point for the curve's first segment.
// If port is non-empty and e is a record, the attachment uses the named
// cell's sub-rectangle instead of the whole record.
func GetConnectorLocation(e *shape.Element, from geom.Point, force float64, port string) (geom.Point, geom.Point) {
	switch e.Shape.Kind {
	case shape.KindNone:
		return geom.Zero(), geom.Zero()
	case shape.KindRecord:
		loc := e.Pos.Center()
		size := e.Pos.Size(false)
		if port != "" {
			loc, size = getRecordPortLocation(e.Shape.Record, e.Orientation, loc, size, e.Look.FontSize, port)
		}
		return geom.GetConnectionPointForBox(loc, size, from, force)
	case shape.KindBox:
		return geom.GetConnectionPointForBox(e.Pos.Center(), e.Pos.Size(false), from, force)
	case shape.KindCircle, shape.KindDoubleCircle:
		return geom.GetConnectionPointForCircle(e.Pos.Center(), e.Pos.Size(false), from, force)
	default:
		panic("render: this shape kind cannot be an edge endpoint")
	}
}

// GetPassthroughPath computes the enter/exit control points for an edge
// that merely routes through e (a connector waypoint, not an endpoint).
func GetPassthroughPath(e *shape.Element, from, to geom.Point, force float64) (geom.Point, geom.Point) {
	if e.Shape.Kind != shape.KindConnector {
		panic("render: can't pass an edge through a non-connector shape")
	}
	loc := e.Pos.Center()
	size := e.Pos.Size(false)
	return geom.GetPassthroughPathInvisible(size, loc, from, to, force)
}
