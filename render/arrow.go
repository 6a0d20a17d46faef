package render

import (
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

// controlPair is one (enter, exit) control point pair along an edge's path.
type controlPair [2]geom.Point

// GenerateCurveForElements walks the chain of elements an edge visits
// (endpoint, any number of connector waypoints, endpoint) and produces the
// enter/exit control point pairs describing the whole curve.
func GenerateCurveForElements(elements []*shape.Element, arrow shape.Arrow, force float64) []controlPair {
	var path []controlPair

	toLoc := elements[1].Pos.Center()
	fromAnchor, fromControl := GetConnectorLocation(elements[0], toLoc, force, arrow.SrcPort)

	prevExitLoc := fromAnchor
	path = append(path, controlPair{fromAnchor, fromControl})

	for i := 1; i < len(elements); i++ {
		isLast := i == len(elements)-1

		var anchor, control geom.Point
		if isLast {
			anchor, control = GetConnectorLocation(elements[i], prevExitLoc, force, arrow.DstPort)
		} else {
			toLoc := elements[i+1].Pos.Center()
			anchor, control = GetPassthroughPath(elements[i], prevExitLoc, toLoc, force)
		}
		prevExitLoc = anchor
		path = append(path, controlPair{control, anchor})
	}

	return path
}

// RenderArrow draws a full edge: the routed curve, optional debug markers
// per segment, and the arrowhead/dash/label styling carried by arrow.
func RenderArrow(sink Sink, debug bool, elements []*shape.Element, arrow shape.Arrow) {
	const force = 30.0
	path := GenerateCurveForElements(elements, arrow, force)

	if debug {
		for _, seg := range path {
			sink.DrawLine(seg[0], seg[1], style.Debug2())
			sink.DrawCircle(seg[0], geom.Pt(6, 6), style.Debug1())
			sink.DrawCircle(seg[1], geom.Pt(6, 6), style.Debug1())
		}
	}

	var dash bool
	switch arrow.Style {
	case style.LineNone:
		return
	case style.LineNormal:
		dash = false
	case style.LineDashed, style.LineDotted:
		dash = true
	}

	start := arrow.Start == shape.LineEndArrow
	end := arrow.End == shape.LineEndArrow

	pairs := make([][2]geom.Point, len(path))
	for i, p := range path {
		pairs[i] = p
	}
	sink.DrawArrow(pairs, dash, [2]bool{start, end}, arrow.Look, arrow.Text)
}
