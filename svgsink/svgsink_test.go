package svgsink_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/style"
	"github.com/dotlayout/dotlayout/svgsink"
)

func TestFinalizeWrapsContentWithHeaderAndFooter(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	w.DrawRect(geom.Pt(10, 10), geom.Pt(50, 20), style.Simple(), nil)

	out := w.Finalize()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`))
	assert.True(t, strings.HasSuffix(out, "</svg>"))
	assert.Contains(t, out, "<rect")
	assert.Contains(t, out, "startarrow")
	assert.Contains(t, out, "endarrow")
}

func TestDrawRectGrowsViewBoxToFitShape(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	w.DrawRect(geom.Pt(100, 200), geom.Pt(50, 30), style.Simple(), nil)

	out := w.Finalize()
	require.Contains(t, out, `viewBox="0 0`)
	assert.Contains(t, out, "155") // 100 + 50 + 5
	assert.Contains(t, out, "235") // 200 + 30 + 5
}

func TestDrawTextEmitsOneTspanPerLine(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	w.DrawText(geom.Pt(0, 0), "first\nsecond", style.Simple())

	out := w.Finalize()
	assert.Equal(t, 2, strings.Count(out, "<tspan"))
}

func TestDrawTextEscapesSpecialCharacters(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	w.DrawText(geom.Pt(0, 0), `<a> & "b"`, style.Simple())

	out := w.Finalize()
	assert.Contains(t, out, "&lt;a&gt; &amp; &quot;b&quot;")
}

func TestDrawArrowWithoutMarkersOmitsMarkerAttributes(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	path := [][2]geom.Point{
		{geom.Pt(0, 0), geom.Pt(10, 0)},
		{geom.Pt(20, 0), geom.Pt(30, 0)},
	}
	w.DrawArrow(path, false, [2]bool{false, false}, style.Simple(), "")

	out := w.Finalize()
	assert.NotContains(t, out, "marker-start")
	assert.NotContains(t, out, "marker-end")
	assert.Contains(t, out, "M 0 0 C 10 0, 20 0, 30 0")
}

func TestDrawArrowWithHeadsAddsMarkerAttributesAndIncrementsCounter(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	path := [][2]geom.Point{
		{geom.Pt(0, 0), geom.Pt(10, 0)},
		{geom.Pt(20, 0), geom.Pt(30, 0)},
	}
	w.DrawArrow(path, true, [2]bool{true, true}, style.Simple(), "label")
	w.DrawArrow(path, false, [2]bool{false, true}, style.Simple(), "")

	out := w.Finalize()
	assert.Contains(t, out, `id="arrow0"`)
	assert.Contains(t, out, `id="arrow1"`)
	assert.Contains(t, out, "marker-start")
	assert.Contains(t, out, `stroke-dasharray="5,5"`)
	assert.Contains(t, out, "label")
}

func TestCreateClipReturnsSequentialHandles(t *testing.T) {
	t.Parallel()

	w := svgsink.New()
	h0 := w.CreateClip(geom.Pt(0, 0), geom.Pt(10, 10), 5)
	h1 := w.CreateClip(geom.Pt(0, 0), geom.Pt(10, 10), 5)

	assert.EqualValues(t, 0, h0)
	assert.EqualValues(t, 1, h1)

	out := w.Finalize()
	assert.Contains(t, out, `id="C0"`)
	assert.Contains(t, out, `id="C1"`)
}
