package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/dot"
)

func TestParseSimpleDigraph(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph G { a -> b -> c; }`).Parse()
	require.NoError(t, err)
	assert.Equal(t, "G", g.Name)
	require.Len(t, g.Stmts, 1)

	edge := g.Stmts[0]
	require.Equal(t, dot.StmtEdge, edge.Kind)
	assert.Equal(t, "a", edge.Edge.From.Name)
	require.Len(t, edge.Edge.Hops, 2)
	assert.Equal(t, "b", edge.Edge.Hops[0].ID.Name)
	assert.Equal(t, "c", edge.Edge.Hops[1].ID.Name)
	assert.Equal(t, dot.ArrowDirected, edge.Edge.Hops[0].Arrow)
}

func TestParseNodeWithAttributesAndPort(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { a [label="hi", shape=box]; a:f0 -> b; }`).Parse()
	require.NoError(t, err)
	require.Len(t, g.Stmts, 2)

	node := g.Stmts[0]
	require.Equal(t, dot.StmtNode, node.Kind)
	label, ok := node.Node.List.Get("label")
	require.True(t, ok)
	assert.Equal(t, "hi", label.Text)
	shapeAttr, ok := node.Node.List.Get("shape")
	require.True(t, ok)
	assert.Equal(t, "box", shapeAttr.Text)

	edge := g.Stmts[1]
	assert.Equal(t, "f0", edge.Edge.From.Port)
}

func TestParseGraphNodeEdgeDefaultAttrStmts(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { graph [rankdir=LR]; node [shape=circle]; edge [style=dashed]; }`).Parse()
	require.NoError(t, err)
	require.Len(t, g.Stmts, 3)
	assert.Equal(t, dot.TargetGraph, g.Stmts[0].Attr.Target)
	assert.Equal(t, dot.TargetNode, g.Stmts[1].Attr.Target)
	assert.Equal(t, dot.TargetEdge, g.Stmts[2].Attr.Target)
}

func TestParseSubgraph(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { subgraph cluster0 { a; b; } }`).Parse()
	require.NoError(t, err)
	require.Len(t, g.Stmts, 1)
	require.Equal(t, dot.StmtSubgraph, g.Stmts[0].Kind)
	assert.Equal(t, "cluster0", g.Stmts[0].Subgraph.Name)
	assert.Len(t, g.Stmts[0].Subgraph.Stmts, 2)
}

func TestParseHTMLLabel(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { a [label=<<b>bold</b>>]; }`).Parse()
	require.NoError(t, err)
	require.Len(t, g.Stmts, 1)
	label, ok := g.Stmts[0].Node.List.Get("label")
	require.True(t, ok)
	assert.True(t, label.IsHTML)
	assert.Equal(t, "<b>bold</b>", label.Text)
}

func TestParseRejectsMissingOpenBrace(t *testing.T) {
	t.Parallel()

	_, err := dot.NewParser(`digraph a -> b }`).Parse()
	require.Error(t, err)
}

func TestParseRejectsTrailingContent(t *testing.T) {
	t.Parallel()

	_, err := dot.NewParser(`digraph { a; } digraph { b; }`).Parse()
	require.Error(t, err)
}
