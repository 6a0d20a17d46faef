package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/render"
	"github.com/dotlayout/dotlayout/shape"
	"github.com/dotlayout/dotlayout/style"
)

type recordedCall struct {
	kind string
}

type fakeSink struct {
	calls []recordedCall
}

func (f *fakeSink) DrawRect(geom.Point, geom.Point, style.Attr, *render.ClipHandle) {
	f.calls = append(f.calls, recordedCall{"rect"})
}
func (f *fakeSink) DrawCircle(geom.Point, geom.Point, style.Attr) {
	f.calls = append(f.calls, recordedCall{"circle"})
}
func (f *fakeSink) DrawText(geom.Point, string, style.Attr) {
	f.calls = append(f.calls, recordedCall{"text"})
}
func (f *fakeSink) DrawLine(geom.Point, geom.Point, style.Attr) {
	f.calls = append(f.calls, recordedCall{"line"})
}
func (f *fakeSink) DrawArrow([][2]geom.Point, bool, [2]bool, style.Attr, string) {
	f.calls = append(f.calls, recordedCall{"arrow"})
}
func (f *fakeSink) CreateClip(geom.Point, geom.Point, int) render.ClipHandle {
	f.calls = append(f.calls, recordedCall{"clip"})
	return 0
}

func TestRenderElementBoxDrawsRectAndText(t *testing.T) {
	t.Parallel()

	e := shape.Create(shape.NewBox("hi"), style.Simple(), shape.TopToBottom, geom.Pt(80, 40))
	sink := &fakeSink{}
	render.RenderElement(sink, &e, false)

	require.Len(t, sink.calls, 2)
	assert.Equal(t, "rect", sink.calls[0].kind)
	assert.Equal(t, "text", sink.calls[1].kind)
}

func TestRenderElementConnectorWithoutLabelDrawsNothing(t *testing.T) {
	t.Parallel()

	e := shape.EmptyConnector(shape.TopToBottom)
	sink := &fakeSink{}
	render.RenderElement(sink, &e, false)

	assert.Empty(t, sink.calls)
}

func TestRenderArrowSuppressedWhenLineStyleNone(t *testing.T) {
	t.Parallel()

	a := shape.Create(shape.NewBox("a"), style.Simple(), shape.TopToBottom, geom.Pt(80, 40))
	b := shape.Create(shape.NewBox("b"), style.Simple(), shape.TopToBottom, geom.Pt(80, 40))
	b.Pos.Translate(geom.Pt(0, 200))

	arrow := shape.InvisibleArrow()
	sink := &fakeSink{}
	render.RenderArrow(sink, false, []*shape.Element{&a, &b}, arrow)

	assert.Empty(t, sink.calls)
}
