package pipeline_test

import (
	"context"
	"testing"

	"cdr.dev/slog/sloggers/slogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/pipeline"
)

func TestRenderDOTProducesSVGForSimpleGraph(t *testing.T) {
	t.Parallel()

	log := slogtest.Make(t, nil)
	out, err := pipeline.RenderDOT(context.Background(), log, `digraph { a -> b -> c; }`, pipeline.Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
}

func TestRenderDOTReturnsErrorForInvalidSource(t *testing.T) {
	t.Parallel()

	log := slogtest.Make(t, nil)
	_, err := pipeline.RenderDOT(context.Background(), log, `digraph { a -> }`, pipeline.Options{})
	require.Error(t, err)
}

func TestRenderDOTHonorsDisableLayoutOption(t *testing.T) {
	t.Parallel()

	log := slogtest.Make(t, nil)
	out, err := pipeline.RenderDOT(context.Background(), log, `digraph { a -> b; }`, pipeline.Options{DisableLayout: true})
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
}
