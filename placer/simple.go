// Package placer assigns final (x, y) coordinates to every node in a
// lowered graph: an initial row-stacking pass, Brandes-Köpf horizontal
// alignment, a label-shuffling pass, structural verification, and an
// edge-straightening cleanup. Grounded on the reference topo::placer
// module.
package placer

import (
	"math"

	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/graph"
)

// Epsilon is the minimum gap left between adjacent boxes in a row, so
// touching-but-not-overlapping boxes don't get flagged as intersecting.
const Epsilon = 1e-5

// AlignToLeft shifts the whole drawing so its leftmost (haloed) edge sits
// at x=0.
func AlignToLeft(g *graph.VisualGraph) {
	firstX := 10000.0
	for n := dag.NodeHandle(0); int(n) < g.NumNodes(); n++ {
		tl, _ := g.Element(n).Pos.BBox(true)
		firstX = math.Min(firstX, tl.X)
	}
	for n := dag.NodeHandle(0); int(n) < g.NumNodes(); n++ {
		g.Element(n).Pos.Translate(geom.Pt(-firstX, 0))
	}
}

// assignYCoordinates stacks rows top to bottom, each row's height equal to
// its tallest element.
func assignYCoordinates(g *graph.VisualGraph) {
	lowestPoint := 0.0
	for i := 0; i < g.DAG.NumLevels(); i++ {
		row := g.DAG.Row(i)

		maxHeight := 0.0
		for _, idx := range row {
			h := g.Element(idx).Pos.Size(true).Y
			maxHeight = math.Max(maxHeight, h)
		}

		newCenter := lowestPoint + maxHeight/2
		for _, idx := range row {
			h := g.Element(idx).Pos.Size(true).Y
			g.Element(idx).Pos.AlignToTop(newCenter - h/2)
		}

		lowestPoint += maxHeight
	}
}

// assignXCoordinates lays each row out left to right in its current
// (rank-insertion) order, a cheap starting point before BK refines it.
func assignXCoordinates(g *graph.VisualGraph) {
	for i := 0; i < g.DAG.NumLevels(); i++ {
		row := g.DAG.Row(i)
		rightmost := 0.0
		for _, idx := range row {
			pos := &g.Element(idx).Pos
			pos.AlignToLeft(rightmost + Epsilon)
			_, br := pos.BBox(true)
			rightmost = br.X + Epsilon
		}
	}
}

// DoSimplePlacement assigns initial y and x coordinates row by row.
func DoSimplePlacement(g *graph.VisualGraph) {
	assignYCoordinates(g)
	assignXCoordinates(g)
}
