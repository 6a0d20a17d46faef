package geom

import "math"

// EllipseLineIntersection finds where the line from the origin through `m`
// (direction only; m need not be on the ellipse) crosses an axis-aligned
// ellipse with half-axes a.X, a.Y, substituting y = slope*x into
// (x/a)^2 + (y/b)^2 = 1 and solving for x, then picking the sign that
// matches the approach direction.
func EllipseLineIntersection(halfAxes Point, approachFrom Point) Point {
	a, b := halfAxes.X, halfAxes.Y
	if approachFrom.X == 0 {
		y := b
		if approachFrom.Y < 0 {
			y = -b
		}
		return Point{0, y}
	}
	slope := approachFrom.Y / approachFrom.X
	denom := math.Sqrt(b*b + a*a*slope*slope)
	x := (a * b) / denom
	if approachFrom.X < 0 {
		x = -x
	}
	y := slope * x
	return Point{x, y}
}

// GetConnectionPointForCircle returns the (anchor, control) pair on an
// ellipse centered at `center` with bounding size `size`, approached from
// `from`, with a control vector of the given force pointing back at `from`.
func GetConnectionPointForCircle(center, size, from Point, force float64) (Point, Point) {
	halfAxes := size.Scale(0.5)
	dir := from.Sub(center)
	var anchorLocal Point
	if dir.X == 0 {
		y := halfAxes.Y
		if dir.Y < 0 {
			y = -halfAxes.Y
		}
		anchorLocal = Point{0, y}
	} else {
		anchorLocal = EllipseLineIntersection(halfAxes, dir)
	}
	anchor := center.Add(anchorLocal)
	control := anchor.Add(CreateVectorOfLength(center, from, force))
	return anchor, control
}

// GetConnectionPointForBox returns the (anchor, control) pair on a box
// centered at `center` with the given size, approached from `from`: the
// box is first clipped to the half closer to `from` along the X axis,
// then the intersection side (left/right vs top/bottom) is chosen by
// comparing the approach slope to the box's aspect ratio.
func GetConnectionPointForBox(center, size, from Point, force float64) (Point, Point) {
	half := size.Scale(0.5)

	left, right := center.X-half.X, center.X+half.X
	top, bottom := center.Y-half.Y, center.Y+half.Y
	if from.X < center.X {
		right = center.X
	} else {
		left = center.X
	}

	dx := from.X - center.X
	dy := from.Y - center.Y

	var anchor Point
	gainX := half.X
	gainY := half.Y
	if gainX == 0 {
		gainX = Epsilon
	}
	if gainY == 0 {
		gainY = Epsilon
	}

	if math.Abs(dx)/gainX > math.Abs(dy)/gainY {
		x := right
		if dx < 0 {
			x = left
		}
		y := center.Y
		if dx != 0 {
			y = center.Y + dy*((x-center.X)/dx)
		}
		if y < top {
			y = top
		}
		if y > bottom {
			y = bottom
		}
		anchor = Point{x, y}
	} else {
		y := bottom
		if dy < 0 {
			y = top
		}
		x := center.X
		if dy != 0 {
			x = center.X + dx*((y-center.Y)/dy)
		}
		if x < left {
			x = left
		}
		if x > right {
			x = right
		}
		anchor = Point{x, y}
	}

	control := anchor.Add(CreateVectorOfLength(center, from, force))
	return anchor, control
}

// GetPassthroughPathInvisible computes the pass-through control vectors for
// a connector node: R is the connector's center, from/to are the
// neighboring anchor points on either side. The two outward unit vectors
// (R->from, R->to) are built at length `force`; if they nearly cancel (the
// near-180-degree case that arises on self-edges) one is rotated 90
// degrees instead of being used directly. Otherwise the final vector
// interpolates between them, weighted by how close R sits to `from` vs
// `to`, snapping to the axis when R shares an X or Y with `to`.
func GetPassthroughPathInvisible(size, R, from, to Point, force float64) (Point, Point) {
	ar := CreateVectorOfLength(from, R, force)
	rb := CreateVectorOfLength(R, to, force)

	outFrom := ar.Scale(-1)
	outTo := rb

	sum := outFrom.Add(outTo)
	if sum.Length() < 1. {
		outTo = outFrom.RotateAround(Point{}, math.Pi/2)
	}

	aToR := R.Sub(from).Length()
	rToB := to.Sub(R).Length()
	total := aToR + rToB
	ratio := 0.5
	if total > 0 {
		ratio = 1 - aToR/total
	}

	control := Interpolate(outFrom, outTo, ratio)

	if R.X == to.X {
		control.X = 0
	}
	if R.Y == to.Y {
		control.Y = 0
	}

	anchor := R
	return anchor, anchor.Add(control)
}

// SegmentRectIntersection reports whether the segment [seg0, seg1]
// intersects the axis-aligned rectangle [rect0, rect1] (top-left,
// bottom-right corners).
func SegmentRectIntersection(seg0, seg1, rect0, rect1 Point) bool {
	minX, maxX := rect0.X, rect1.X
	minY, maxY := rect0.Y, rect1.Y

	x0, y0 := seg0.X, seg0.Y
	x1, y1 := seg1.X, seg1.Y

	if x0 == x1 {
		if x0 < minX || x0 > maxX {
			return false
		}
		lo, hi := y0, y1
		if lo > hi {
			lo, hi = hi, lo
		}
		return hi >= minY && lo <= maxY
	}

	if (x0 < minX && x1 < minX) || (x0 > maxX && x1 > maxX) {
		return false
	}
	if (y0 < minY && y1 < minY) || (y0 > maxY && y1 > maxY) {
		return false
	}

	slope := (y1 - y0) / (x1 - x0)
	yAt := func(x float64) float64 { return y0 + slope*(x-x0) }

	clippedX0, clippedX1 := x0, x1
	if clippedX0 > clippedX1 {
		clippedX0, clippedX1 = clippedX1, clippedX0
	}
	lo := math.Max(clippedX0, minX)
	hi := math.Min(clippedX1, maxX)
	if lo > hi {
		return false
	}

	yLo, yHi := yAt(lo), yAt(hi)
	if yLo > yHi {
		yLo, yHi = yHi, yLo
	}
	return yHi >= minY && yLo <= maxY
}
