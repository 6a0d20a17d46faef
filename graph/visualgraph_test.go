package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/graph"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

func newBoxNode(g *graph.VisualGraph, text string) dag.NodeHandle {
	elem := shape.Create(shape.NewBox(text), style.Simple(), g.Orientation(), geom.Pt(80, 40))
	return g.AddNode(elem)
}

func TestLowerReversesBackEdge(t *testing.T) {
	t.Parallel()

	g := graph.New(shape.TopToBottom)
	a := newBoxNode(g, "a")
	b := newBoxNode(g, "b")
	g.AddEdge(shape.DefaultArrow(), a, b)
	g.AddEdge(shape.DefaultArrow(), b, a) // would create a cycle; must be reversed

	g.Lower(true)

	assert.True(t, g.DAG.IsReachable(a, b))
	assert.False(t, g.DAG.IsReachable(b, a))
}

func TestLowerSplitsLabelledEdgeThroughConnector(t *testing.T) {
	t.Parallel()

	g := graph.New(shape.TopToBottom)
	a := newBoxNode(g, "a")
	b := newBoxNode(g, "b")
	g.AddEdge(shape.SimpleArrow("label"), a, b)

	before := g.NumNodes()
	g.Lower(true)

	assert.Greater(t, g.NumNodes(), before)
	assert.Len(t, g.Edges(), 1)
	path := g.Edges()[0].Path
	assert.Len(t, path, 3)
	assert.True(t, g.IsConnector(path[1]))
	assert.Empty(t, g.Edges()[0].Arrow.Text, "label text moves onto the connector node")
}

func TestLowerSplitsLongEdgeAndExpandsSelfEdge(t *testing.T) {
	t.Parallel()

	g := graph.New(shape.TopToBottom)
	a := newBoxNode(g, "a")
	b := newBoxNode(g, "b")
	c := newBoxNode(g, "c")
	// a feeds both b and c, and c feeds b: b ends up two ranks below a, so
	// the a->b edge must be split through a connector waypoint.
	g.AddEdge(shape.DefaultArrow(), a, c)
	g.AddEdge(shape.DefaultArrow(), c, b)
	g.AddEdge(shape.DefaultArrow(), a, b)
	g.AddEdge(shape.DefaultArrow(), a, a) // self-edge

	g.Lower(true)

	var longEdge *graph.EdgePath
	for i := range g.Edges() {
		if len(g.Edges()[i].Path) == 3 && g.Edges()[i].Path[0] == a && g.Edges()[i].Path[2] == b {
			longEdge = &g.Edges()[i]
		}
	}
	if assert.NotNil(t, longEdge) {
		assert.True(t, g.IsConnector(longEdge.Path[1]))
	}

	foundSelfEdge := false
	for _, e := range g.Edges() {
		if len(e.Path) == 3 && e.Path[0] == a && e.Path[2] == a {
			foundSelfEdge = true
			assert.True(t, g.IsConnector(e.Path[1]))
		}
	}
	assert.True(t, foundSelfEdge)
}
