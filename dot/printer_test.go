package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/dot"
)

func TestDumpASTPrintsNodesEdgesAndAttributes(t *testing.T) {
	t.Parallel()

	g, err := dot.NewParser(`digraph G { a [label="hi"]; a -> b; }`).Parse()
	require.NoError(t, err)

	var buf strings.Builder
	dot.DumpAST(&buf, g)

	out := buf.String()
	assert.Contains(t, out, "Graph: G")
	assert.Contains(t, out, "Node")
	assert.Contains(t, out, `"label" = "hi"`)
	assert.Contains(t, out, "->")
}
