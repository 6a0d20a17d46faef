package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotlayout/dotlayout/geom"
)

func TestWeightedMedian(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.0, geom.WeightedMedian([]float64{1, 2, 3}))
	assert.Equal(t, 1.5, geom.WeightedMedian([]float64{1, 2}))
	assert.Equal(t, 2.5, geom.WeightedMedian([]float64{1, 2, 3, 4}))
	assert.Panics(t, func() { geom.WeightedMedian(nil) })
}

func TestTransposeRoundTrip(t *testing.T) {
	t.Parallel()

	pos := geom.NewPosition(geom.Pt(3, 4), geom.Pt(10, 20), geom.Pt(1, 0), geom.Pt(2, 2))
	orig := pos
	pos.Transpose()
	pos.Transpose()
	assert.Equal(t, orig, pos)
}

func TestDoBoxesIntersect(t *testing.T) {
	t.Parallel()

	a0, a1 := geom.Pt(0, 0), geom.Pt(10, 10)
	b0, b1 := geom.Pt(5, 5), geom.Pt(15, 15)
	assert.True(t, geom.DoBoxesIntersect(a0, a1, b0, b1))

	c0, c1 := geom.Pt(20, 20), geom.Pt(30, 30)
	assert.False(t, geom.DoBoxesIntersect(a0, a1, c0, c1))
}

func TestSegmentRectIntersection(t *testing.T) {
	t.Parallel()

	rect0, rect1 := geom.Pt(0, 0), geom.Pt(10, 10)

	assert.True(t, geom.SegmentRectIntersection(geom.Pt(-5, 5), geom.Pt(5, 5), rect0, rect1))
	assert.False(t, geom.SegmentRectIntersection(geom.Pt(-5, -5), geom.Pt(-1, -1), rect0, rect1))
	assert.True(t, geom.SegmentRectIntersection(geom.Pt(5, -5), geom.Pt(5, 15), rect0, rect1))
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, geom.InRange([2]float64{0, 10}, 5))
	assert.False(t, geom.InRange([2]float64{0, 10}, 11))
}
