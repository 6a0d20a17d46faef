package placer

import (
	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/graph"
	"github.com/dotlayout/dotlayout/shape"
)

// getRowWidth sums the haloed width of every element in a row.
func getRowWidth(g *graph.VisualGraph, idx int) float64 {
	sum := 0.0
	for _, elem := range g.DAG.Row(idx) {
		sum += g.Element(elem).Pos.Size(true).X
	}
	return sum
}

// moveLabel relocates curr's label onto pred, which must currently be an
// unlabelled connector. Returns whether the move happened.
func moveLabel(g *graph.VisualGraph, curr, pred dag.NodeHandle) bool {
	predElem := g.Element(pred)
	if predElem.Shape.Kind != shape.KindConnector || predElem.Shape.ConnectorSet {
		return false
	}

	currElem := g.Element(curr)
	if currElem.Shape.Kind != shape.KindConnector || !currElem.Shape.ConnectorSet {
		return false
	}

	predElem.Shape = currElem.Shape
	currElem.Shape = shape.EmptyConnectorShape()
	predElem.Resize(shape.GetShapeSize)
	currElem.Resize(shape.GetShapeSize)
	return true
}

// moveTextUp shuffles single-predecessor label connectors up or down
// between adjacent rows to even out row width, returning how many moves
// happened.
func moveTextUp(g *graph.VisualGraph) int {
	prevRowSize := getRowWidth(g, 0)
	cnt := 0

	for i := 1; i < g.DAG.NumLevels(); i++ {
		row := append([]dag.NodeHandle(nil), g.DAG.Row(i)...)
		currRowSize := getRowWidth(g, i)

		for _, elem := range row {
			if !g.IsConnector(elem) {
				continue
			}
			preds := g.DAG.Predecessors(elem)
			if len(preds) != 1 {
				continue
			}
			pred := preds[0]
			if !g.IsConnector(pred) {
				continue
			}

			predSize := g.Element(pred).Pos.Size(true).X
			currSize := g.Element(elem).Pos.Size(true).X

			if prevRowSize+currSize < currRowSize {
				if moveLabel(g, elem, pred) {
					currRowSize -= currSize
					prevRowSize += currSize
					cnt++
					continue
				}
			}

			if prevRowSize > currRowSize+predSize {
				if moveLabel(g, pred, elem) {
					currRowSize += predSize
					prevRowSize -= predSize
					cnt++
					continue
				}
			}
		}
		prevRowSize = currRowSize
	}
	return cnt
}

// MoveLabelsBetweenRows runs three rounds of moveTextUp, matching the
// reference's fixed iteration count.
func MoveLabelsBetweenRows(g *graph.VisualGraph) {
	for i := 0; i < 3; i++ {
		moveTextUp(g)
	}
}
