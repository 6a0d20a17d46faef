package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cdr.dev/slog/sloggers/slogtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/pipeline"
)

func TestRenderProducesSVGForValidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.dot")
	require.NoError(t, os.WriteFile(path, []byte(`digraph { a -> b; }`), 0o644))

	log := slogtest.Make(t, nil)
	out := render(context.Background(), log, path, pipeline.Options{})
	assert.Contains(t, out, "<svg")
}

func TestRenderReturnsErrorPageForSyntaxError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "graph.dot")
	require.NoError(t, os.WriteFile(path, []byte(`digraph { a -> }`), 0o644))

	log := slogtest.Make(t, nil)
	out := render(context.Background(), log, path, pipeline.Options{})
	assert.Contains(t, out, "<pre>")
	assert.NotContains(t, out, "<svg")
}

func TestRenderReturnsErrorPageForMissingFile(t *testing.T) {
	t.Parallel()

	log := slogtest.Make(t, nil)
	out := render(context.Background(), log, filepath.Join(t.TempDir(), "missing.dot"), pipeline.Options{})
	assert.Contains(t, out, "could not read")
}
