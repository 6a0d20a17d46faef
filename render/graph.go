package render

import (
	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/graph"
	"github.com/dotlayout/dotlayout/shape"
)

// RenderGraph draws every node, then every edge, of a placed graph onto
// sink.
func RenderGraph(sink Sink, g *graph.VisualGraph, debug bool) {
	for n := dag.NodeHandle(0); int(n) < g.NumNodes(); n++ {
		RenderElement(sink, g.Element(n), debug)
	}

	for _, e := range g.Edges() {
		elements := make([]*shape.Element, len(e.Path))
		for i, h := range e.Path {
			elements[i] = g.Element(h)
		}
		RenderArrow(sink, debug, elements, e.Arrow)
	}
}
