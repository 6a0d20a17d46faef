package render

import (
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

// portLocator implements shape.RecordVisitor to find a named port's
// sub-rectangle, reusing the descent shared with sizing.
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

func getRecordPortLocation(rec shape.RecordDef, dir shape.Orientation, loc, size geom.Point, fontSize int, portName string) (geom.Point, geom.Point) {
	v := &portLocator{portName: portName, loc: loc, size: size}
	shape.VisitRecord(rec, dir, loc, size, fontSize, v)
	return v.loc, v.size
}

// recordRenderer implements shape.RecordVisitor to draw every cell's box
// and label, through a shared clip region if the record has rounded
// corners.
type recordRenderer struct {
	look  style.Attr
	clip  *ClipHandle
	sink  Sink
}

func (r *recordRenderer) HandleBox(loc, size geom.Point) {
	r.sink.DrawRect(geom.Pt(loc.X-size.X/2, loc.Y-size.Y/2), size, r.look, r.clip)
}

func (r *recordRenderer) HandleText(loc, _ geom.Point, label, _ string) {
	r.sink.DrawText(loc, label, r.look)
}

// renderRecord draws every cell of a record (clipped to rounded corners if
// requested), then an unfilled outer border on top.
func renderRecord(sink Sink, rec shape.RecordDef, dir shape.Orientation, loc, size geom.Point, look style.Attr) {
	var clip *ClipHandle
	if look.Rounded > 0 {
		xy := geom.Pt(loc.X-size.X/2, loc.Y-size.Y/2)
		ch := sink.CreateClip(xy, size, 15)
		clip = &ch
	}

	cellLook := look
	cellLook.Rounded = 0
	r := &recordRenderer{look: cellLook, clip: clip, sink: sink}
	shape.VisitRecord(rec, dir, loc, size, look.FontSize, r)

	border := look
	border.FillColor = nil
	sink.DrawRect(geom.Pt(loc.X-size.X/2, loc.Y-size.Y/2), size, border, nil)
}
