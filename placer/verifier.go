package placer

import (
	"fmt"

	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/graph"
)

// VerifyOrderInRank checks that every row's boxes are non-overlapping and
// left-to-right in the same order the rank row records, comparing every
// element in the row to the row's first element (matching the reference's
// check verbatim, including its choice to anchor on the first element
// rather than the immediately preceding one).
func VerifyOrderInRank(g *graph.VisualGraph) {
	for row := 0; row < g.DAG.NumLevels(); row++ {
		currentRow := g.DAG.Row(row)
		if len(currentRow) == 0 {
			continue
		}

		first := currentRow[0]
		for _, curr := range currentRow[1:] {
			bb0a, bb0b := g.Element(first).Pos.BBox(true)
			bb1a, bb1b := g.Element(curr).Pos.BBox(true)
			if geom.DoBoxesIntersect(bb0a, bb0b, bb1a, bb1b) {
				panic("placer: boxes must not intersect")
			}
			if !(bb0a.X < bb1a.X) {
				panic(fmt.Sprintf("placer: order of boxes must be sequential on the x axis (row %d)", row))
			}
		}
	}
}
