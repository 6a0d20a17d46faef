package placer

import (
	"github.com/dotlayout/dotlayout/graph"
	"github.com/dotlayout/dotlayout/shape"
)

// Layout assigns final coordinates to every node in g. Left-to-right
// graphs are placed by transposing to top-to-bottom, running the whole
// pipeline, then transposing back - so every placement pass only ever has
// to reason about one orientation.
func Layout(g *graph.VisualGraph, disableLayout bool) {
	needTranspose := g.Orientation() != shape.TopToBottom
	if needTranspose {
		g.Transpose()
	}

	MoveLabelsBetweenRows(g)

	DoSimplePlacement(g)

	VerifyOrderInRank(g)

	if disableLayout {
		if needTranspose {
			g.Transpose()
		}
		return
	}

	NewBK(g).Do()

	VerifyOrderInRank(g)

	FixEdges(g)

	if needTranspose {
		g.Transpose()
	}
}
