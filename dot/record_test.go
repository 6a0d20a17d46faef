package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/dot"
)

func TestParseRecordStringSingleCell(t *testing.T) {
	t.Parallel()

	rec := dot.ParseRecordString("hello")
	require.True(t, rec.IsArray())
	require.Len(t, rec.Array, 1)
	assert.Equal(t, "hello", rec.Array[0].Text)
	assert.Empty(t, rec.Array[0].Port)
}

func TestParseRecordStringMultipleCellsWithPorts(t *testing.T) {
	t.Parallel()

	rec := dot.ParseRecordString("<f0> one|two|<f2> three")
	require.True(t, rec.IsArray())
	require.Len(t, rec.Array, 3)
	assert.Equal(t, "one", rec.Array[0].Text)
	assert.Equal(t, "f0", rec.Array[0].Port)
	assert.Equal(t, "two", rec.Array[1].Text)
	assert.Empty(t, rec.Array[1].Port)
	assert.Equal(t, "three", rec.Array[2].Text)
	assert.Equal(t, "f2", rec.Array[2].Port)
}

func TestParseRecordStringNestedRow(t *testing.T) {
	t.Parallel()

	rec := dot.ParseRecordString("a|{b|c}")
	require.True(t, rec.IsArray())
	require.Len(t, rec.Array, 2)
	assert.Equal(t, "a", rec.Array[0].Text)

	nested := rec.Array[1]
	require.True(t, nested.IsArray())
	require.Len(t, nested.Array, 2)
	assert.Equal(t, "b", nested.Array[0].Text)
	assert.Equal(t, "c", nested.Array[1].Text)
}
