// Package graph implements VisualGraph, the data structure used to assign
// (x, y) locations to every shape and edge in a drawing: a DAG of node
// handles paired with the drawable Elements and Arrows they carry,
// grounded on the reference topo::layout module.
package graph

import (
	"github.com/dotlayout/dotlayout/crossopt"
	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/rankopt"
	"github.com/dotlayout/dotlayout/shape"
)

// EdgePath is an arrow together with the ordered chain of node handles it
// visits - initially just [from, to], but grown by lowering as label and
// long-edge connectors are spliced in.
type EdgePath struct {
	Arrow shape.Arrow
	Path  []dag.NodeHandle
}

// selfEdge is a saved self-loop, held aside during lowering until
// expandSelfEdges turns it into a proper connector-based edge.
type selfEdge struct {
	arrow shape.Arrow
	node  dag.NodeHandle
}

// VisualGraph owns every drawable node, the edges between them, and the DAG
// that tracks their rank structure.
type VisualGraph struct {
	nodes       []shape.Element
	edges       []EdgePath
	selfEdges   []selfEdge
	DAG         *dag.DAG
	orientation shape.Orientation
}

func New(orientation shape.Orientation) *VisualGraph {
	return &VisualGraph{DAG: dag.New(), orientation: orientation}
}

func (g *VisualGraph) Orientation() shape.Orientation { return g.orientation }

func (g *VisualGraph) NumNodes() int { return g.DAG.Len() }

func (g *VisualGraph) Element(n dag.NodeHandle) *shape.Element { return &g.nodes[n] }

func (g *VisualGraph) IsConnector(n dag.NodeHandle) bool { return g.nodes[n].IsConnector() }

// Transpose flips every element's orientation and position, used when
// swapping between top-to-bottom and left-to-right layouts.
func (g *VisualGraph) Transpose() {
	for n := dag.NodeHandle(0); int(n) < g.NumNodes(); n++ {
		g.nodes[n].Transpose()
	}
}

// AddNode registers a drawable element and returns its stable handle.
func (g *VisualGraph) AddNode(elem shape.Element) dag.NodeHandle {
	h := g.DAG.NewNode()
	if int(h) != len(g.nodes) {
		panic("graph: node handle desynchronized from element slice")
	}
	g.nodes = append(g.nodes, elem)
	return h
}

// AddEdge records an arrow between two already-added nodes. The DAG
// adjacency itself is populated later by lowering, once back edges have
// been identified and reversed.
func (g *VisualGraph) AddEdge(arrow shape.Arrow, from, to dag.NodeHandle) {
	if int(from) >= len(g.nodes) || int(to) >= len(g.nodes) {
		panic("graph: invalid node handle")
	}
	g.edges = append(g.edges, EdgePath{Arrow: arrow, Path: []dag.NodeHandle{from, to}})
}

// Edges exposes the current edge list, e.g. for rendering.
func (g *VisualGraph) Edges() []EdgePath { return g.edges }

// Lower canonicalizes the graph into a form the placer can consume:
// back edges get reversed into a valid DAG, labelled edges and self-edges
// get split through connector nodes, ranks get assigned and optionally
// optimized, and edges spanning more than one rank get split through
// connector waypoints.
func (g *VisualGraph) Lower(disableOptimizations bool) {
	g.toValidDAG()
	g.splitTextEdges()
	g.splitLongEdges(disableOptimizations)

	for n := dag.NodeHandle(0); int(n) < g.NumNodes(); n++ {
		g.nodes[n].Resize(shape.GetShapeSize)
	}
}

// toValidDAG reverses any edge that would create a cycle (back edges,
// detected by checking whether the source is already reachable from the
// destination before the edge is added) and pulls self-edges aside for
// later expansion.
func (g *VisualGraph) toValidDAG() {
	edges := g.edges
	g.edges = nil

	if len(g.nodes) != g.DAG.Len() {
		panic("graph: bad number of nodes")
	}

	for _, e := range edges {
		if len(e.Path) != 2 {
			panic("graph: expected a 2-node edge before lowering")
		}
		arrow := e.Arrow
		from, to := e.Path[0], e.Path[1]

		if from == to {
			g.selfEdges = append(g.selfEdges, selfEdge{arrow: arrow, node: from})
			continue
		}

		if g.DAG.IsReachable(to, from) {
			from, to = to, from
			arrow = arrow.Reverse()
		}

		g.DAG.AddEdge(from, to)
		g.edges = append(g.edges, EdgePath{Arrow: arrow, Path: []dag.NodeHandle{from, to}})
		g.DAG.VerifyIfEnabled()
	}
}

// splitTextEdges replaces every labelled edge with a two-hop edge through a
// newly created connector node that carries the label, since only
// connectors (not plain node-to-node arrows) render edge text.
func (g *VisualGraph) splitTextEdges() {
	edges := make([]EdgePath, len(g.edges))
	copy(edges, g.edges)

	for i := range edges {
		e := &edges[i]
		if len(e.Path) != 2 {
			panic("graph: expected a 2-node edge before text splitting")
		}
		if e.Arrow.Text == "" {
			continue
		}
		from, to := e.Path[0], e.Path[1]
		text := e.Arrow.Text

		dir := g.nodes[from].Orientation
		conn := shape.CreateConnector(text, e.Arrow.Look, dir)
		connHandle := g.AddNode(conn)

		e.Path = []dag.NodeHandle{from, connHandle, to}
		e.Arrow.Text = ""

		if !g.DAG.RemoveEdge(from, to) {
			panic("graph: expected the edge to be in the graph")
		}
		g.DAG.AddEdge(from, connHandle)
		g.DAG.AddEdge(connHandle, to)
	}

	g.edges = edges
}

// splitLongEdges assigns ranks (optionally sink-optimizing them), then
// inserts an empty connector waypoint wherever an edge spans more than one
// rank, so every edge in the final DAG skips at most one level. Finally it
// runs crossing optimization and expands the saved self-edges.
func (g *VisualGraph) splitLongEdges(disableOptimizations bool) {
	g.DAG.RecomputeNodeRanks()
	g.DAG.VerifyIfEnabled()
	if !disableOptimizations {
		rankopt.New(g.DAG).Optimize()
	}

	edges := make([]EdgePath, len(g.edges))
	copy(edges, g.edges)
	g.edges = nil

	for ei := range edges {
		e := &edges[ei]
		lst := append([]dag.NodeHandle(nil), e.Path...)

		i := 1
		for i < len(lst) {
			prev, curr := lst[i-1], lst[i]

			prevLevel := g.DAG.Level(prev)
			currLevel := g.DAG.Level(curr)
			if prevLevel >= currLevel {
				panic("graph: invalid edge, rank must increase along its path")
			}
			if prevLevel+1 == currLevel {
				i++
				continue
			}

			dir := g.nodes[prev].Orientation
			conn := shape.EmptyConnector(dir)
			connHandle := g.AddNode(conn)

			next := append([]dag.NodeHandle(nil), lst[:i]...)
			next = append(next, connHandle)
			next = append(next, lst[i:]...)
			lst = next

			g.DAG.RemoveEdge(prev, curr)
			g.DAG.AddEdge(prev, connHandle)
			g.DAG.AddEdge(connHandle, curr)
			g.DAG.UpdateNodeRankLevel(connHandle, prevLevel+1, nil)
		}

		e.Path = lst
	}
	g.edges = edges

	if !disableOptimizations {
		crossopt.New(g.DAG).Optimize()
	}
	g.expandSelfEdges()
}

// expandSelfEdges converts every saved self-loop into a proper edge that
// visits a connector placed right next to its node in the same rank row.
func (g *VisualGraph) expandSelfEdges() {
	for _, se := range g.selfEdges {
		arrow := se.arrow
		node := se.node
		level := g.DAG.Level(node)
		text := arrow.Text
		arrow.Text = ""

		dir := g.nodes[node].Orientation
		conn := shape.CreateConnector(text, arrow.Look, dir)
		connHandle := g.AddNode(conn)

		marker := node
		g.DAG.UpdateNodeRankLevel(connHandle, level, &marker)
		g.edges = append(g.edges, EdgePath{
			Arrow: arrow,
			Path:  []dag.NodeHandle{node, connHandle, node},
		})
	}
	g.selfEdges = nil
}
