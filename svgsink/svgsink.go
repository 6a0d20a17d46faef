// Package svgsink renders a layout onto SVG markup. It implements
// render.Sink: every draw call appends a fragment to an internal buffer,
// and the viewBox grows incrementally to fit whatever has been drawn so
// far. Grounded on the reference SVGWriter backend.
package svgsink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dotlayout/dotlayout/geom"
	"github.com/dotlayout/dotlayout/render"
	"github.com/dotlayout/dotlayout/style"
)

const (
	svgHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

	svgDefs = `<defs>
<marker id="startarrow" markerWidth="10" markerHeight="7"
refX="0" refY="3.5" orient="auto">
<polygon points="10 0, 10 7, 0 3.5" />
</marker>
<marker id="endarrow" markerWidth="10" markerHeight="7"
refX="10" refY="3.5" orient="auto">
<polygon points="0 0, 10 3.5, 0 7" />
</marker>

</defs>`

	svgFooter = `</svg>`
)

type fontStyle struct {
	class string
	rule  string
}

// Writer accumulates SVG draw calls and renders them into a single
// document on Finalize. The zero value is ready to use.
type Writer struct {
	content     strings.Builder
	viewSize    geom.Point
	counter     int
	fontStyles  map[int]fontStyle
	clipRegions []string
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{fontStyles: make(map[int]fontStyle)}
}

var _ render.Sink = (*Writer)(nil)

// growWindow expands the viewBox so that point, offset by size, remains
// inside it with a small margin.
func (w *Writer) growWindow(point, size geom.Point) {
	w.viewSize.X = max(w.viewSize.X, point.X+size.X+5)
	w.viewSize.Y = max(w.viewSize.Y, point.Y+size.Y+5)
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// getOrCreateFontStyle returns the CSS class name for fontSize, registering
// a new class the first time a given size is seen.
func (w *Writer) getOrCreateFontStyle(fontSize int) string {
	if fs, ok := w.fontStyles[fontSize]; ok {
		return fs.class
	}
	if w.fontStyles == nil {
		w.fontStyles = make(map[int]fontStyle)
	}
	class := fmt.Sprintf("a%d", fontSize)
	rule := fmt.Sprintf(".a%d { font-size: %dpx; font-family: Times, serif; }", fontSize, fontSize)
	w.fontStyles[fontSize] = fontStyle{class: class, rule: rule}
	return class
}

func (w *Writer) emitFontStyles() string {
	var b strings.Builder
	b.WriteString("<style>\n")
	for _, fs := range w.fontStyles {
		b.WriteString(fs.rule)
		b.WriteByte('\n')
	}
	b.WriteString("</style>\n")
	for _, c := range w.clipRegions {
		b.WriteString(c)
		b.WriteByte('\n')
	}
	return b.String()
}

// Finalize assembles the header, marker defs, accumulated font/clip
// styles, drawn content, and footer into one complete SVG document.
func (w *Writer) Finalize() string {
	var b strings.Builder
	b.WriteString(svgHeader)
	fmt.Fprintf(&b, "<svg width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		formatCoord(w.viewSize.X), formatCoord(w.viewSize.Y), formatCoord(w.viewSize.X), formatCoord(w.viewSize.Y))
	b.WriteString(svgDefs)
	b.WriteString(w.emitFontStyles())
	b.WriteString(w.content.String())
	b.WriteString(svgFooter)
	return b.String()
}

func (w *Writer) DrawRect(topLeft, size geom.Point, look style.Attr, clip *render.ClipHandle) {
	w.growWindow(topLeft, size)

	var clipOption string
	if clip != nil {
		clipOption = fmt.Sprintf("clip-path=\"url(#C%d)\"", *clip)
	}
	fill := style.Transparent()
	if look.FillColor != nil {
		fill = *look.FillColor
	}
	fmt.Fprintf(&w.content,
		"<g>\n<rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\" stroke-width=\"%d\" stroke=\"%s\" rx=\"%d\" %s />\n</g>\n",
		formatCoord(topLeft.X), formatCoord(topLeft.Y), formatCoord(size.X), formatCoord(size.Y),
		fill.ToWebColor(), look.LineWidth, look.LineColor.ToWebColor(), look.Rounded, clipOption)
}

func (w *Writer) DrawCircle(center, size geom.Point, look style.Attr) {
	w.growWindow(center, size)
	fill := style.Transparent()
	if look.FillColor != nil {
		fill = *look.FillColor
	}
	fmt.Fprintf(&w.content,
		"<g>\n<ellipse cx=\"%s\" cy=\"%s\" rx=\"%s\" ry=\"%s\" fill=\"%s\" stroke-width=\"%d\" stroke=\"%s\"/>\n</g>\n",
		formatCoord(center.X), formatCoord(center.Y), formatCoord(size.X/2), formatCoord(size.Y/2),
		fill.ToWebColor(), look.LineWidth, look.LineColor.ToWebColor())
}

func (w *Writer) DrawText(loc geom.Point, text string, look style.Attr) {
	class := w.getOrCreateFontStyle(look.FontSize)

	lines := strings.Split(text, "\n")
	var tspans strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&tspans, "<tspan x = \"%s\" dy=\"1.0em\">", formatCoord(loc.X))
		tspans.WriteString(escapeString(line))
		tspans.WriteString("</tspan>")
	}

	sizeY := float64(len(lines)+1) * float64(look.FontSize)
	w.growWindow(loc, geom.Pt(10, float64(len(text))*10))

	fmt.Fprintf(&w.content,
		"<text dominant-baseline=\"middle\" text-anchor=\"middle\" x=\"%s\" y=\"%s\" class=\"%s\">%s</text>",
		formatCoord(loc.X), formatCoord(loc.Y-sizeY/2), class, tspans.String())
}

func (w *Writer) DrawLine(from, to geom.Point, look style.Attr) {
	fmt.Fprintf(&w.content,
		"<g>\n<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke-width=\"%d\" stroke=\"%s\" />\n</g>\n",
		formatCoord(from.X), formatCoord(from.Y), formatCoord(to.X), formatCoord(to.Y),
		look.LineWidth, look.LineColor.ToWebColor())
}

// DrawArrow renders path as a single Bezier curve: "M x y C cx cy, ex ey,
// ex ey" for the first segment, then "S cx cy, ex ey" for every
// subsequent one, matching the reference's exit/entry control point
// pairing.
func (w *Writer) DrawArrow(path [][2]geom.Point, dashed bool, startEnd [2]bool, look style.Attr, text string) {
	for _, seg := range path {
		w.growWindow(seg[0], geom.Zero())
		w.growWindow(seg[1], geom.Zero())
	}

	dash := ""
	if dashed {
		dash = `stroke-dasharray="5,5"`
	}
	start := ""
	if startEnd[0] {
		start = `marker-start="url(#startarrow)"`
	}
	end := ""
	if startEnd[1] {
		end = `marker-end="url(#endarrow)"`
	}

	var pathBuilder strings.Builder
	fmt.Fprintf(&pathBuilder, "M %s %s C %s %s, %s %s, %s %s ",
		formatCoord(path[0][0].X), formatCoord(path[0][0].Y),
		formatCoord(path[0][1].X), formatCoord(path[0][1].Y),
		formatCoord(path[1][0].X), formatCoord(path[1][0].Y),
		formatCoord(path[1][1].X), formatCoord(path[1][1].Y))
	for _, seg := range path[2:] {
		fmt.Fprintf(&pathBuilder, "S %s %s, %s %s ",
			formatCoord(seg[0].X), formatCoord(seg[0].Y), formatCoord(seg[1].X), formatCoord(seg[1].Y))
	}

	fmt.Fprintf(&w.content,
		"<g>\n<path id=\"arrow%d\" d=\"%s\" stroke=\"%s\" stroke-width=\"%d\" %s %s %s \nfill=\"transparent\" />\n</g>\n",
		w.counter, pathBuilder.String(), look.LineColor.ToWebColor(), look.LineWidth, dash, start, end)

	class := w.getOrCreateFontStyle(look.FontSize)
	fmt.Fprintf(&w.content,
		"<text><textPath href=\"#arrow%d\" startOffset=\"50%%\" text-anchor=\"middle\" class=\"%s\">%s</textPath></text>",
		w.counter, class, escapeString(text))
	w.counter++
}

func (w *Writer) CreateClip(topLeft, size geom.Point, radius int) render.ClipHandle {
	handle := render.ClipHandle(len(w.clipRegions))
	clip := fmt.Sprintf("<clipPath id=\"C%d\"><rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" rx=\"%d\" /></clipPath>",
		handle, formatCoord(topLeft.X), formatCoord(topLeft.Y), formatCoord(size.X), formatCoord(size.Y), radius)
	w.clipRegions = append(w.clipRegions, clip)
	return handle
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeString(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}
