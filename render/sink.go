// Package render draws a lowered, placed VisualGraph onto an abstract
// Sink: shape dispatch (box/circle/double circle/record/connector), record
// recursive layout, arrow routing through pass-through connectors, and
// Bezier curve generation for multi-hop edges. Grounded on the reference
// std_shapes::render module.
package render

import (
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/style"
)

// ClipHandle identifies a clip region previously registered with a Sink,
// used to round a record's outer corners while still drawing its internal
// cell dividers square.
type ClipHandle int

// Sink is the drawing surface a renderer targets; svgsink implements this
// for SVG output, but any backend (raster, a different vector format) can
// satisfy it.
type Sink interface {
	DrawRect(topLeft, size geom.Point, look style.Attr, clip *ClipHandle)
	DrawCircle(center, size geom.Point, look style.Attr)
	DrawText(loc geom.Point, text string, look style.Attr)
	DrawLine(from, to geom.Point, look style.Attr)
	// DrawArrow renders a path built from consecutive (enter, exit) control
	// point pairs as a single Bezier curve, optionally dashed, with
	// arrowheads at either end and an optional label following the path.
	DrawArrow(path [][2]geom.Point, dashed bool, startEnd [2]bool, look style.Attr, text string)
	CreateClip(topLeft, size geom.Point, radius int) ClipHandle
}
