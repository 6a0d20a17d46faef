package placer

import (
	"math"

	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/graph"
)

// computeBoundsForNode returns the leftmost and rightmost x coordinates
// already occupied by the node's row neighbors, i.e. the x range the node
// itself is free to move within.
func computeBoundsForNode(g *graph.VisualGraph, node dag.NodeHandle) (float64, float64) {
	level := g.DAG.Level(node)
	row := g.DAG.Row(level)
	if len(row) == 0 {
		panic("placer: empty row")
	}

	idx := -1
	for i, x := range row {
		if x == node {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("placer: node not found in its own rank row")
	}

	leftmost := math.Inf(-1)
	if idx > 0 {
		leftmost = g.Element(row[idx-1]).Pos.Right(true)
	}
	rightmost := math.Inf(1)
	if idx < len(row)-1 {
		rightmost = g.Element(row[idx+1]).Pos.Left(true)
	}

	loc := g.Element(node).Pos.Center()
	if loc.X < leftmost || loc.X > rightmost {
		panic("placer: node center outside its computed bounds")
	}
	return leftmost, rightmost
}

// StraightenEdges centers every two-hop connector (a single-predecessor,
// single-successor waypoint between two ordinary nodes) on the straight
// line between its neighbors, provided doing so wouldn't cross another box
// in its row.
func StraightenEdges(g *graph.VisualGraph) int {
	cnt := 0
	var toStraighten []dag.NodeHandle

	for rowIdx := 1; rowIdx < g.DAG.NumLevels()-1; rowIdx++ {
		row := g.DAG.Row(rowIdx)

	outer:
		for _, elem := range row {
			if !g.IsConnector(elem) {
				continue
			}
			pred, okPred := g.DAG.SinglePred(elem)
			succ, okSucc := g.DAG.SingleSucc(elem)
			if !okPred || !okSucc {
				continue
			}
			if g.IsConnector(pred) || g.IsConnector(succ) {
				continue
			}

			p1 := g.Element(pred).Pos.Center()
			p2 := g.Element(succ).Pos.Center()

			for _, other := range row {
				r0, r1 := g.Element(other).Pos.BBox(false)
				if geom.SegmentRectIntersection(p1, p2, r0, r1) {
					continue outer
				}
			}

			toStraighten = append(toStraighten, elem)
		}
	}

	for _, elem := range toStraighten {
		pred, _ := g.DAG.SinglePred(elem)
		succ, _ := g.DAG.SingleSucc(elem)
		p1 := g.Element(pred).Pos.Center()
		p2 := g.Element(succ).Pos.Center()
		newX := p1.Add(p2).Scale(0.5).X

		lo, hi := computeBoundsForNode(g, elem)
		if geom.InRange([2]float64{lo, hi}, newX) {
			g.Element(elem).Pos.SetX(newX)
			cnt++
		}
	}
	return cnt
}

// HandleDisconnectedNodes snaps any node with no edges at all flush against
// its left row neighbor, or against its right neighbor when it has no left
// one.
func HandleDisconnectedNodes(g *graph.VisualGraph) int {
	cnt := 0
	for rowIdx := 0; rowIdx < g.DAG.NumLevels(); rowIdx++ {
		row := append([]dag.NodeHandle(nil), g.DAG.Row(rowIdx)...)
		for _, elem := range row {
			if len(g.DAG.Successors(elem)) != 0 || len(g.DAG.Predecessors(elem)) != 0 {
				continue
			}

			lo, hi := computeBoundsForNode(g, elem)
			if !math.IsInf(lo, 0) {
				g.Element(elem).Pos.AlignToLeft(lo + Epsilon)
				cnt++
				continue
			}
			if !math.IsInf(hi, 0) {
				g.Element(elem).Pos.AlignToRight(hi - Epsilon)
				cnt++
				continue
			}
		}
	}
	return cnt
}

// AlignSelfEdges nudges a self-edge connector flush against whichever
// neighbor its predecessor sits on, since a self-edge connector otherwise
// floats wherever the rank row happened to place it.
func AlignSelfEdges(g *graph.VisualGraph) int {
	cnt := 0
	for rowIdx := 0; rowIdx < g.DAG.NumLevels(); rowIdx++ {
		row := append([]dag.NodeHandle(nil), g.DAG.Row(rowIdx)...)

		for i, curr := range row {
			if !g.IsConnector(curr) {
				continue
			}

			foundBefore, foundAfter := false, false
			for _, pred := range g.DAG.Predecessors(curr) {
				for idx, x := range row {
					if x == pred {
						if idx < i {
							foundBefore = true
						}
						if idx > i {
							foundAfter = true
						}
						break
					}
				}
			}

			if foundBefore {
				prevPos := g.Element(row[i-1]).Pos
				g.Element(curr).Pos.AlignToLeft(prevPos.Right(true))
				cnt++
				continue
			}
			if foundAfter {
				nextPos := g.Element(row[i+1]).Pos
				g.Element(curr).Pos.AlignToRight(nextPos.Left(true))
				cnt++
				continue
			}
		}
	}
	return cnt
}

var crossingOffsets = []geom.Point{
	geom.Pt(0, 15), geom.Pt(0, 25), geom.Pt(0, 35), geom.Pt(0, 45),
	geom.Pt(0, 55), geom.Pt(0, 65), geom.Pt(0, 75), geom.Pt(0, 85), geom.Pt(0, 95),
	geom.Pt(0, -10), geom.Pt(0, 20), geom.Pt(0, -20), geom.Pt(0, 30), geom.Pt(0, -30),
	geom.Pt(0, 40), geom.Pt(0, -40), geom.Pt(0, 50), geom.Pt(0, -50),
	geom.Pt(0, 90), geom.Pt(0, -90),
}

func isIntersectingAny(segs [][2]geom.Point, rects [][2]geom.Point) bool {
	for _, seg := range segs {
		for _, rect := range rects {
			if geom.SegmentRectIntersection(seg[0], seg[1], rect[0], rect[1]) {
				return true
			}
		}
	}
	return false
}

// AdjustCrossingEdges nudges a two-segment connector path vertically (by
// one of a fixed list of offsets) whenever it crosses one of its own row
// neighbors or a box in the row directly above or below (other than its
// own predecessor and successor), preserving the row_idx>1 quirk from the
// reference: a connector in row 1 never gets the row-above boxes included
// (only row > 1 does), so row 1, like row 0, is checked against the row
// below only - this is kept verbatim rather than "fixed".
func AdjustCrossingEdges(g *graph.VisualGraph) int {
	cnt := 0
	var toMove []struct {
		node dag.NodeHandle
		d    geom.Point
	}
	length := g.DAG.NumLevels()

outer:
	for rowIdx := 0; rowIdx < length; rowIdx++ {
		row := g.DAG.Row(rowIdx)

		var all []dag.NodeHandle
		if rowIdx > 1 {
			all = append(all, g.DAG.Row(rowIdx-1)...)
		}
		if rowIdx < length-1 {
			all = append(all, g.DAG.Row(rowIdx+1)...)
		}

		for i := 0; i < len(row); i++ {
			curr := row[i]
			if !g.IsConnector(curr) {
				continue
			}

			pred, okPred := g.DAG.SinglePred(curr)
			succ, okSucc := g.DAG.SingleSucc(curr)
			if !okPred || !okSucc {
				continue
			}

			p0 := g.Element(pred).Pos.Center()
			p1 := g.Element(curr).Pos.Center()
			p2 := g.Element(succ).Pos.Center()
			seg0 := [2]geom.Point{p0, p1}
			seg1 := [2]geom.Point{p1, p2}

			var posAll [][2]geom.Point
			if i > 0 {
				a, b := g.Element(row[i-1]).Pos.BBox(false)
				posAll = append(posAll, [2]geom.Point{a, b})
			}
			if i < len(row)-1 {
				a, b := g.Element(row[i+1]).Pos.BBox(false)
				posAll = append(posAll, [2]geom.Point{a, b})
			}

			for _, e := range all {
				if e != pred && e != succ {
					a, b := g.Element(e).Pos.BBox(false)
					posAll = append(posAll, [2]geom.Point{a, b})
				}
			}

			if isIntersectingAny([][2]geom.Point{seg0, seg1}, posAll) {
				for _, offset := range crossingOffsets {
					cseg0 := [2]geom.Point{seg0[0], seg0[1].Add(offset)}
					cseg1 := [2]geom.Point{seg1[0].Add(offset), seg1[1]}
					if !isIntersectingAny([][2]geom.Point{cseg0, cseg1}, posAll) {
						toMove = append(toMove, struct {
							node dag.NodeHandle
							d    geom.Point
						}{curr, offset})
						continue outer
					}
				}
			}
		}
	}

	for _, m := range toMove {
		g.Element(m.node).Pos.Translate(m.d)
		cnt++
	}
	return cnt
}

// FixEdges runs the full edge-cleanup pass: disconnect handling, self-edge
// alignment, a re-flush to the left margin, straightening, and finally
// crossing-edge dodging.
func FixEdges(g *graph.VisualGraph) {
	HandleDisconnectedNodes(g)
	AlignSelfEdges(g)
	AlignToLeft(g)

	StraightenEdges(g)
	AdjustCrossingEdges(g)
}
