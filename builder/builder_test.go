package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/builder"
	"github.com/dotlayout/dotlayout/dot"
	"github.com/dotlayout/dotlayout/shape"
)

func TestBuildSimpleDigraphProducesNodesAndEdge(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { a -> b; }`).Parse()
	require.NoError(t, err)

	vg, warn := builder.Build(g)
	assert.NoError(t, warn)
	require.Equal(t, 2, vg.NumNodes())
	require.Len(t, vg.Edges(), 1)
	assert.Equal(t, shape.KindCircle, vg.Element(0).Shape.Kind)
}

func TestBuildHonorsRankdirLR(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { rankdir=LR; a -> b; }`).Parse()
	require.NoError(t, err)

	vg, warn := builder.Build(g)
	assert.NoError(t, warn)
	assert.Equal(t, shape.LeftToRight, vg.Orientation())
}

func TestBuildAppliesNodeDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph {
		node [shape=box];
		a;
		b [shape=doublecircle];
	}`).Parse()
	require.NoError(t, err)

	vg, warn := builder.Build(g)
	assert.NoError(t, warn)
	assert.Equal(t, shape.KindBox, vg.Element(0).Shape.Kind)
	assert.Equal(t, shape.KindDoubleCircle, vg.Element(1).Shape.Kind)
}

func TestBuildRecordShapeParsesLabelIntoCells(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { a [shape=record, label="<f0> left|<f1> right"]; }`).Parse()
	require.NoError(t, err)

	vg, warn := builder.Build(g)
	assert.NoError(t, warn)
	elem := vg.Element(0)
	require.Equal(t, shape.KindRecord, elem.Shape.Kind)
	require.True(t, elem.Shape.Record.IsArray())
	require.Len(t, elem.Shape.Record.Array, 2)
	assert.Equal(t, "f0", elem.Shape.Record.Array[0].Port)
}

func TestBuildUnresolvableColorProducesWarningNotFatalError(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { a [color="not-a-real-color"]; }`).Parse()
	require.NoError(t, err)

	vg, warn := builder.Build(g)
	require.NotNil(t, vg)
	assert.Error(t, warn)
}

func TestBuildSharesNodeAcrossMultipleEdgeMentions(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph { a -> b; a -> c; }`).Parse()
	require.NoError(t, err)

	vg, warn := builder.Build(g)
	assert.NoError(t, warn)
	assert.Equal(t, 3, vg.NumNodes())
	assert.Len(t, vg.Edges(), 2)
}
