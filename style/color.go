package style

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Color is a resolved RGBA color. StyleAttr only ever stores a Color, never
// a raw DOT color string, so attribute resolution happens exactly once, at
// graph-build time.
type Color struct {
	R, G, B, A uint8
}

func RGBA(r, g, b, a uint8) Color { return Color{r, g, b, a} }

func Black() Color { return Color{0, 0, 0, 255} }
func White() Color { return Color{255, 255, 255, 255} }

// Transparent reports the fully transparent color used as the default fill
// when a shape has none.
func Transparent() Color { return Color{0, 0, 0, 0} }

// ToWebColor renders the color as a CSS-compatible string for SVG
// attributes, omitting the alpha channel entirely when it is fully opaque
// so existing golden fixtures that assume "#rrggbb" keep matching.
func (c Color) ToWebColor() string {
	if c.A == 0 {
		return "transparent"
	}
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	hex := cf.Hex()
	if c.A == 255 {
		return hex
	}
	return "rgba(" + itoa(int(c.R)) + "," + itoa(int(c.G)) + "," + itoa(int(c.B)) + "," + ftoa(float64(c.A)/255) + ")"
}

// ResolveColor interprets a raw DOT color attribute value. It mirrors the
// reference builder's normalize_color quirks - a ':'-suffixed color list
// only honors the first entry, and the literal "transparent" resolves to
// opaque white (a DOT convention for "no fill, but act as if white") -
// before falling back to the full CSS color grammar. Unparseable input
// resolves to black; the caller is expected to record a warning rather
// than treat this as fatal, per the error handling policy.
func ResolveColor(raw string) (Color, bool) {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexByte(raw, ':'); idx >= 0 {
		raw = raw[:idx]
	}
	if raw == "" {
		return Black(), false
	}
	if strings.EqualFold(raw, "transparent") {
		return White(), true
	}

	parsed, err := csscolorparser.Parse(raw)
	if err != nil {
		return Black(), false
	}
	r, g, b, a := parsed.RGBA255()
	return Color{r, g, b, a}, true
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func ftoa(v float64) string {
	// Two decimal places is plenty of precision for an alpha channel.
	scaled := int(v*100 + 0.5)
	return itoa(scaled/100) + "." + itoa(scaled%100)
}
