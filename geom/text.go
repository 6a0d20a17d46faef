package geom

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GetSizeForStr estimates the rendered bounding box of a (possibly
// multi-line) label at the given font size, used by shape sizing. Exact
// glyph metrics from an arbitrary SVG-rendering font are unknowable ahead
// of time, so this scales basicfont.Face7x13's fixed-width advance by the
// ratio between the requested size and the face's nominal 13px height -
// close enough to drive box/circle padding decisions, which is all shape
// sizing needs.
func GetSizeForStr(label string, fontSize int) Point {
	lines := strings.Split(label, "\n")
	const nominalHeight = 13
	scale := float64(fontSize) / nominalHeight
	if scale <= 0 {
		scale = 1
	}

	var maxWidth fixedInt
	for _, line := range lines {
		w := font.MeasureString(basicfont.Face7x13, line)
		if fixedInt(w) > maxWidth {
			maxWidth = fixedInt(w)
		}
	}

	width := float64(maxWidth.Round()) * scale
	height := float64(len(lines)) * float64(fontSize) * 1.2
	if width <= 0 {
		width = float64(fontSize)
	}
	if height <= 0 {
		height = float64(fontSize)
	}
	return Point{X: width, Y: height}
}

// fixedInt mirrors golang.org/x/image/math/fixed.Int26_6's Round semantics
// without importing the package just for one call site.
type fixedInt int64

func (f fixedInt) Round() int { return int((f + 32) >> 6) }
