package geom

// Position stores the four geometric facts every visual element carries:
// the absolute middle (center of mass), the size, a center offset (nonzero
// for connectors/labels whose attachment point is not their center of
// mass), and a symmetric halo applied only during placement.
type Position struct {
	middle       Point
	size         Point
	centerOffset Point
	halo         Point
}

func NewPosition(middle, size, centerOffset, halo Point) Position {
	return Position{middle: middle, size: size, centerOffset: centerOffset, halo: halo}
}

// Center is the attachment point: middle + centerOffset.
func (p Position) Center() Point { return p.middle.Add(p.centerOffset) }

// Middle is the center of mass, ignoring any center offset.
func (p Position) Middle() Point { return p.middle }

// Size returns the element's dimensions, with or without the halo pad.
func (p Position) Size(withHalo bool) Point {
	if !withHalo {
		return p.size
	}
	return p.size.Add(p.halo)
}

func (p *Position) SetSize(size Point) { p.size = size }

// BBox returns the (top-left, bottom-right) corners of the element.
func (p Position) BBox(withHalo bool) (Point, Point) {
	sz := p.Size(withHalo)
	half := sz.Scale(0.5)
	return p.middle.Sub(half), p.middle.Add(half)
}

func (p Position) Left(withHalo bool) float64 {
	tl, _ := p.BBox(withHalo)
	return tl.X
}

func (p Position) Right(withHalo bool) float64 {
	_, br := p.BBox(withHalo)
	return br.X
}

func (p Position) Top(withHalo bool) float64 {
	tl, _ := p.BBox(withHalo)
	return tl.Y
}

func (p Position) Bottom(withHalo bool) float64 {
	_, br := p.BBox(withHalo)
	return br.Y
}

// DistanceToLeft / DistanceToRight give the half-width from the center (the
// attachment point, not the middle) to the respective side, with halo.
func (p Position) DistanceToLeft(withHalo bool) float64 {
	return p.Center().X - p.Left(withHalo)
}

func (p Position) DistanceToRight(withHalo bool) float64 {
	return p.Right(withHalo) - p.Center().X
}

func (p Position) InXRange(x float64, withHalo bool) bool {
	return x >= p.Left(withHalo) && x <= p.Right(withHalo)
}

// MoveTo re-centers the element on `to`, measured from its attachment
// point (center), not its middle.
func (p *Position) MoveTo(to Point) {
	p.middle = to.Sub(p.centerOffset)
}

// SetNewCenterPoint sets the center offset directly. The offset must not
// exceed the element's half-size (an offset of exactly half puts the
// attachment point on the shape's edge); violating this is a programmer
// error (an attachment point can never sit outside the shape it anchors).
func (p *Position) SetNewCenterPoint(offset Point) {
	if offset.X >= p.size.X/2+Epsilon || offset.Y >= p.size.Y/2+Epsilon {
		panic("geom: center offset must not exceed half the element size")
	}
	p.centerOffset = offset
}

func (p *Position) Translate(d Point) { p.middle = p.middle.Add(d) }

func (p *Position) SetX(x float64) { p.middle.X = x }
func (p *Position) SetY(y float64) { p.middle.Y = y }

// AlignToLeft moves the element so its left (haloed) edge sits at x.
func (p *Position) AlignToLeft(x float64) {
	p.middle.X = x + p.size.X/2 + p.halo.X/2
}

// AlignToRight moves the element so its right (haloed) edge sits at x.
func (p *Position) AlignToRight(x float64) {
	p.middle.X = x - p.size.X/2 - p.halo.X/2
}

// AlignToTop moves the element so its top (haloed) edge sits at y.
func (p *Position) AlignToTop(y float64) {
	p.middle.Y = y + p.size.Y/2 + p.halo.Y/2
}

func (p *Position) Transpose() {
	p.middle = p.middle.Transpose()
	p.size = p.size.Transpose()
	p.centerOffset = p.centerOffset.Transpose()
	p.halo = p.halo.Transpose()
}

// DoBoxesIntersect reports whether two axis-aligned boxes (given as
// top-left/bottom-right pairs) overlap, using the epsilon-aware comparison
// for the boundary case: boxes that only touch do not overlap.
func DoBoxesIntersect(a0, a1, b0, b1 Point) bool {
	xSeparate := LessOrEqual(a1.X, b0.X) || LessOrEqual(b1.X, a0.X)
	ySeparate := LessOrEqual(a1.Y, b0.Y) || LessOrEqual(b1.Y, a0.Y)
	return !xSeparate && !ySeparate
}
