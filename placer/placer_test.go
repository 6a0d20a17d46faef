package placer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/graph"
	"github.com/dotlayout/dotlayout/placer"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

func newBoxNode(g *graph.VisualGraph, text string) shape.Element {
	return shape.Create(shape.NewBox(text), style.Simple(), g.Orientation(), geom.Pt(80, 40))
}

func buildDiamond(t *testing.T) *graph.VisualGraph {
	t.Helper()
	g := graph.New(shape.TopToBottom)
	a := g.AddNode(newBoxNode(g, "a"))
	b := g.AddNode(newBoxNode(g, "b"))
	c := g.AddNode(newBoxNode(g, "c"))
	d := g.AddNode(newBoxNode(g, "d"))
	g.AddEdge(shape.DefaultArrow(), a, b)
	g.AddEdge(shape.DefaultArrow(), a, c)
	g.AddEdge(shape.DefaultArrow(), b, d)
	g.AddEdge(shape.DefaultArrow(), c, d)
	g.Lower(true)
	return g
}

func TestLayoutProducesNonOverlappingRows(t *testing.T) {
	t.Parallel()

	g := buildDiamond(t)
	placer.Layout(g, false)

	assert.NotPanics(t, func() { placer.VerifyOrderInRank(g) })
}

func TestLayoutSkipsBKWhenDisabled(t *testing.T) {
	t.Parallel()

	g := buildDiamond(t)
	placer.Layout(g, true)

	assert.NotPanics(t, func() { placer.VerifyOrderInRank(g) })
}

func TestAlignToLeftZeroesMinimumX(t *testing.T) {
	t.Parallel()

	g := buildDiamond(t)
	placer.DoSimplePlacement(g)
	placer.AlignToLeft(g)

	minX := 1e9
	for n := dag.NodeHandle(0); int(n) < g.NumNodes(); n++ {
		tl, _ := g.Element(n).Pos.BBox(true)
		if tl.X < minX {
			minX = tl.X
		}
	}
	assert.InDelta(t, 0, minX, 1e-6)
}
