// Package builder converts a parsed DOT AST into a graph.VisualGraph:
// scoped attribute resolution (graph/node/edge defaults, inherited
// through nested subgraph scopes) followed by shape and arrow styling.
// Grounded on the reference gv::builder module.
package builder

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	"github.com/dotlayout/dotlayout/dag"
	"github.com/dotlayout/dotlayout/dot"
	"github.com/dotlayout/dotlayout/graph"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

// propertyList is a flattened snapshot of a node's or edge's attributes
// at the point it was declared.
type propertyList map[string]dot.AttrValue

type edgeDesc struct {
	from, to         string
	props            propertyList
	directed         bool
	fromPort, toPort string
}

// Builder accumulates a graph's nodes and edges from a parsed AST, then
// materializes them into a graph.VisualGraph.
type Builder struct {
	globalState propertyList
	nodeOrder   []string
	nodes       map[string]propertyList
	edges       []edgeDesc

	globalAttr *scopedMap[string, dot.AttrValue]
	nodeAttr   *scopedMap[string, dot.AttrValue]
	edgeAttr   *scopedMap[string, dot.AttrValue]
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{
		nodes:      make(map[string]propertyList),
		globalAttr: newScopedMap[string, dot.AttrValue](),
		nodeAttr:   newScopedMap[string, dot.AttrValue](),
		edgeAttr:   newScopedMap[string, dot.AttrValue](),
	}
}

// Build parses attribute scopes out of g and materializes a VisualGraph.
// A returned error is always non-fatal attribute warnings (unparseable
// integers, unresolvable colors) aggregated with multierr; the graph
// itself is still usable.
func Build(g *dot.Graph) (*graph.VisualGraph, error) {
	b := New()
	b.VisitGraph(g)
	return b.materialize()
}

// VisitGraph walks every statement of g, accumulating node/edge
// attributes in the current scope. Subgraphs share the builder's single
// node/edge namespace (DOT has no real node scoping), but attribute
// defaults nest: a subgraph's own graph/node/edge attribute statements
// only apply for the statements that follow, inside that subgraph.
func (b *Builder) VisitGraph(g *dot.Graph) {
	b.globalAttr.Push()
	b.nodeAttr.Push()
	b.edgeAttr.Push()

	for _, stmt := range g.Stmts {
		b.visitStmt(&stmt)
	}

	// The flattened graph-level state is recomputed at the end of every
	// visited graph. The top-level call flattens last, after every
	// subgraph's scope has been popped, so graph attributes set inside a
	// subgraph are not part of the final state - matching the reference
	// builder's documented imprecision for subgraph-scoped graph
	// attributes.
	b.globalState = b.globalAttr.Flatten()

	b.globalAttr.Pop()
	b.nodeAttr.Pop()
	b.edgeAttr.Pop()
}

func (b *Builder) visitStmt(stmt *dot.Stmt) {
	switch stmt.Kind {
	case dot.StmtEdge:
		b.visitEdge(&stmt.Edge)
	case dot.StmtNode:
		b.visitNode(&stmt.Node)
	case dot.StmtAttr:
		b.visitAttr(&stmt.Attr)
	case dot.StmtSubgraph:
		b.VisitGraph(stmt.Subgraph)
	}
}

func (b *Builder) visitEdge(e *dot.EdgeStmt) {
	b.edgeAttr.Push()
	for _, entry := range e.List.Entries {
		b.edgeAttr.Insert(entry.Key, entry.Value)
	}

	b.initNodeWithName(e.From.Name, false)

	prev := e.From.Name
	prevPort := e.From.Port
	for _, hop := range e.Hops {
		b.initNodeWithName(hop.ID.Name, false)

		b.edges = append(b.edges, edgeDesc{
			from:     prev,
			to:       hop.ID.Name,
			props:    b.edgeAttr.Flatten(),
			directed: hop.Arrow == dot.ArrowDirected,
			fromPort: prevPort,
			toPort:   hop.ID.Port,
		})
		prev = hop.ID.Name
		prevPort = hop.ID.Port
	}
	b.edgeAttr.Pop()
}

// initNodeWithName registers name the first time it's seen, or - if
// overwrite is set, which happens for an explicit node statement rather
// than a node mentioned only as an edge endpoint - merges the current
// node-attribute scope into its already-recorded properties.
func (b *Builder) initNodeWithName(name string, overwrite bool) {
	attrs := b.nodeAttr.Flatten()

	if existing, ok := b.nodes[name]; ok {
		if !overwrite {
			return
		}
		for k, v := range attrs {
			existing[k] = v
		}
		return
	}
	b.nodeOrder = append(b.nodeOrder, name)
	b.nodes[name] = attrs
}

func (b *Builder) visitNode(n *dot.NodeStmt) {
	b.nodeAttr.Push()
	for _, entry := range n.List.Entries {
		b.nodeAttr.Insert(entry.Key, entry.Value)
	}
	b.initNodeWithName(n.ID.Name, true)
	b.nodeAttr.Pop()
}

func (b *Builder) visitAttr(a *dot.AttrStmt) {
	var target *scopedMap[string, dot.AttrValue]
	switch a.Target {
	case dot.TargetGraph:
		target = b.globalAttr
	case dot.TargetNode:
		target = b.nodeAttr
	case dot.TargetEdge:
		target = b.edgeAttr
	}
	for _, entry := range a.List.Entries {
		target.Insert(entry.Key, entry.Value)
	}
}

func (b *Builder) materialize() (*graph.VisualGraph, error) {
	dir := shape.TopToBottom
	if rd, ok := b.globalState["rankdir"]; ok && !rd.IsHTML && rd.Text == "LR" {
		dir = shape.LeftToRight
	}

	vg := graph.New(dir)
	nodeMap := make(map[string]dag.NodeHandle, len(b.nodeOrder))

	var warnings error
	for _, name := range b.nodeOrder {
		elem, warn := shapeFromAttributes(dir, b.nodes[name], name)
		warnings = multierr.Append(warnings, warn)
		nodeMap[name] = vg.AddNode(elem)
	}

	for _, e := range b.edges {
		arrow, warn := arrowFromAttributes(e.props, e.directed, e.fromPort, e.toPort)
		warnings = multierr.Append(warnings, warn)
		from, ok1 := nodeMap[e.from]
		to, ok2 := nodeMap[e.to]
		if !ok1 || !ok2 {
			continue
		}
		vg.AddEdge(arrow, from, to)
	}

	return vg, warnings
}

func attrText(props propertyList, key string) (string, bool) {
	v, ok := props[key]
	if !ok || v.IsHTML {
		return "", false
	}
	return v.Text, true
}

func parseUint(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func arrowFromAttributes(props propertyList, hasArrow bool, fromPort, toPort string) (shape.Arrow, error) {
	lineWidth := 1
	fontSize := 14
	label := ""
	color := "black"
	lineStyle := style.LineNormal

	end := shape.LineEndNone
	if hasArrow {
		end = shape.LineEndArrow
	}

	if v, ok := attrText(props, "label"); ok {
		label = v
	}
	if v, ok := attrText(props, "style"); ok && v == "dashed" {
		lineStyle = style.LineDashed
	}
	if v, ok := attrText(props, "color"); ok {
		color = v
	}

	var warn error
	if v, ok := attrText(props, "penwidth"); ok {
		if n, ok := parseUint(v); ok {
			lineWidth = n
		} else {
			warn = multierr.Append(warn, fmt.Errorf("builder: can't parse penwidth %q", v))
		}
	}
	if v, ok := attrText(props, "fontsize"); ok {
		if n, ok := parseUint(v); ok {
			fontSize = n
		} else {
			warn = multierr.Append(warn, fmt.Errorf("builder: can't parse fontsize %q", v))
		}
	}

	lineColor, ok := style.ResolveColor(color)
	if !ok {
		warn = multierr.Append(warn, fmt.Errorf("builder: can't resolve color %q", color))
	}

	look := style.New(lineColor, lineWidth, nil, 0, fontSize)
	return shape.Arrow{
		Start:   shape.LineEndNone,
		End:     end,
		Style:   lineStyle,
		Text:    label,
		Look:    look,
		SrcPort: fromPort,
		DstPort: toPort,
	}, warn
}

func shapeFromAttributes(dir shape.Orientation, props propertyList, defaultName string) (shape.Element, error) {
	label := defaultName
	if v, ok := props["label"]; ok {
		if v.IsHTML {
			label = extractHTMLLabelText(v.Text)
		} else {
			label = v.Text
		}
	}

	kind := shape.NewCircle(label)
	makeXYSame := false
	rounded := 0

	if v, ok := attrText(props, "shape"); ok {
		switch v {
		case "box":
			kind = shape.NewBox(label)
		case "doublecircle":
			kind = shape.NewDoubleCircle(label)
			makeXYSame = true
		case "record":
			kind = shape.NewRecord(dot.ParseRecordString(label))
		case "Mrecord":
			rounded = 15
			kind = shape.NewRecord(dot.ParseRecordString(label))
		}
	}

	edgeColor := "black"
	if v, ok := attrText(props, "color"); ok {
		edgeColor = v
	}

	fillColor := "white"
	if v, ok := attrText(props, "style"); ok && v == "filled" {
		if _, hasFill := props["fillcolor"]; !hasFill {
			fillColor = "lightgray"
		}
	}
	if v, ok := attrText(props, "fillcolor"); ok {
		fillColor = v
	}

	fontSize := 14
	lineWidth := 1

	var warn error
	if v, ok := attrText(props, "fontsize"); ok {
		if n, ok := parseUint(v); ok {
			fontSize = n
		} else {
			warn = multierr.Append(warn, fmt.Errorf("builder: can't parse fontsize %q", v))
		}
	}
	// The reference builder reads the node "width" attribute into the
	// same line-width field used for stroke width, not a node-sizing
	// knob; preserved as-is rather than "fixed", since get_shape_size
	// fully determines actual node size from content.
	if v, ok := attrText(props, "width"); ok {
		if n, ok := parseUint(v); ok {
			lineWidth = n
		} else {
			warn = multierr.Append(warn, fmt.Errorf("builder: can't parse width %q", v))
		}
	}

	// Records grow opposite to the overall flow direction.
	dir = dir.Flip()

	sz := shape.GetShapeSize(dir, kind, fontSize, makeXYSame)

	lineColor, ok := style.ResolveColor(edgeColor)
	if !ok {
		warn = multierr.Append(warn, fmt.Errorf("builder: can't resolve color %q", edgeColor))
	}
	fc, ok := style.ResolveColor(fillColor)
	if !ok {
		warn = multierr.Append(warn, fmt.Errorf("builder: can't resolve color %q", fillColor))
	}

	look := style.New(lineColor, lineWidth, &fc, rounded, fontSize)
	return shape.Create(kind, look, dir, sz), warn
}
