package shape

import (
	"math"

	"github.com/dotlayout/dotlayout/geom"
)

const (
	boxShapePadding    = 10.
	circleShapePadding = 20.
)

// GetRecordSize recursively computes a record's bounding size: a leaf cell
// is its padded text size; an array sums along the split axis (dir) and
// takes the max across the perpendicular axis, flipping the split axis at
// each recursion level (records alternate row/column layout going down).
func GetRecordSize(rec RecordDef, dir Orientation, fontSize int) geom.Point {
	if !rec.IsArray() {
		return geom.PadShapeScalar(geom.GetSizeForStr(rec.Text, fontSize), boxShapePadding)
	}
	var x, y float64
	for _, elem := range rec.Array {
		ret := GetRecordSize(elem, dir.Flip(), fontSize)
		if dir.IsLeftToRight() {
			x += ret.X
			y = math.Max(y, ret.Y)
		} else {
			x = math.Max(x, ret.X)
			y += ret.Y
		}
	}
	return geom.Pt(x, y)
}

// GetShapeSize returns the size a shape needs at the given font size. If
// makeXYSame is set, the result is squared (used for circles so aspect
// ratio stays 1:1 even when the label is wide).
func GetShapeSize(dir Orientation, s ShapeKind, font int, makeXYSame bool) geom.Point {
	var res geom.Point
	switch s.Kind {
	case KindBox:
		res = geom.PadShapeScalar(geom.GetSizeForStr(s.Text, font), boxShapePadding)
	case KindCircle, KindDoubleCircle:
		res = geom.PadShapeScalar(geom.GetSizeForStr(s.Text, font), circleShapePadding)
	case KindRecord:
		res = geom.PadShapeScalar(GetRecordSize(s.Record, dir, font), boxShapePadding)
	case KindConnector:
		if s.ConnectorSet {
			res = geom.PadShapeScalar(geom.GetSizeForStr(s.Text, font), boxShapePadding)
		} else {
			res = geom.Pt(1, 1)
		}
	default:
		res = geom.Pt(1, 1)
	}
	if makeXYSame {
		res = geom.MakeSizeSquare(res)
	}
	return res
}

// RecordVisitor is the shared descent used both to locate a named port's
// sub-rectangle and to emit draw calls for a record, matching the
// reference's single recursive walker parameterized by a visitor.
type RecordVisitor interface {
	HandleBox(loc, size geom.Point)
	HandleText(loc, size geom.Point, label, port string)
}

// VisitRecord walks rec, computing each cell's location and size given the
// record's overall loc/size, and calls the visitor for the outer box and
// every leaf cell.
func VisitRecord(rec RecordDef, dir Orientation, loc, size geom.Point, fontSize int, visitor RecordVisitor) {
	visitor.HandleBox(loc, size)
	if !rec.IsArray() {
		visitor.HandleText(loc, size, rec.Text, rec.Port)
		return
	}

	sizes := make([]geom.Point, len(rec.Array))
	var sum, mx geom.Point
	for i, elem := range rec.Array {
		sz := GetRecordSize(elem, dir, fontSize)
		sizes[i] = sz
		sum = geom.Pt(sum.X+sz.X, sum.Y+sz.Y)
		mx = geom.Pt(math.Max(mx.X, sz.X), math.Max(mx.Y, sz.Y))
	}
	for i, sz := range sizes {
		if dir.IsLeftToRight() {
			sizes[i] = geom.Pt(size.X*sz.X/sum.X, size.Y)
		} else {
			sizes[i] = geom.Pt(size.X, size.Y*sz.Y/sum.Y)
		}
	}

	if dir.IsLeftToRight() {
		startX := loc.X - size.X/2
		for i, elem := range rec.Array {
			loc2 := geom.Pt(startX+sizes[i].X/2, loc.Y)
			VisitRecord(elem, dir.Flip(), loc2, sizes[i], fontSize, visitor)
			startX += sizes[i].X
		}
	} else {
		startY := loc.Y - size.Y/2
		for i, elem := range rec.Array {
			loc2 := geom.Pt(loc.X, startY+sizes[i].Y/2)
			VisitRecord(elem, dir.Flip(), loc2, sizes[i], fontSize, visitor)
			startY += sizes[i].Y
		}
	}
}

// portLocator finds the loc/size of the cell tagged with a given port.
type portLocator struct {
	portName string
	loc      geom.Point
	size     geom.Point
}

func (p *portLocator) HandleBox(geom.Point, geom.Point) {}
func (p *portLocator) HandleText(loc, size geom.Point, _ string, port string) {
	if port != "" && port == p.portName {
		p.loc, p.size = loc, size
	}
}

// GetRecordPortLocation returns the loc/size of the sub-cell tagged with
// portName, or the outer loc/size unchanged if no cell has that port.
func GetRecordPortLocation(rec RecordDef, dir Orientation, loc, size geom.Point, fontSize int, portName string) (geom.Point, geom.Point) {
	v := &portLocator{portName: portName, loc: loc, size: size}
	VisitRecord(rec, dir, loc, size, fontSize, v)
	return v.loc, v.size
}
