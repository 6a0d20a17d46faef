package style

// LineStyle selects how an edge's stroke is dashed.
type LineStyle int

const (
	LineNormal LineStyle = iota
	LineDashed
	LineDotted
	LineNone
)

// Align is horizontal text alignment inside a label; carried for
// completeness with the reference style model even though the SVG back end
// currently only emits centered text (vertical/record text all anchors on
// its own cell center, so off-center alignment has no renderer consumer
// yet - see DESIGN.md).
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Attr is the resolved style of a drawable element or arrow: colors,
// stroke width, corner rounding, and font size. Unlike the DOT source
// text, every field here is already a concrete value - no further parsing
// happens once an Attr exists.
type Attr struct {
	LineColor Color
	LineWidth int
	FillColor *Color // nil means "no fill"
	Rounded   int
	FontSize  int
	FontColor Color
	Align     Align
}

func Simple() Attr {
	white := White()
	return Attr{
		LineColor: Black(),
		LineWidth: 2,
		FillColor: &white,
		Rounded:   0,
		FontSize:  15,
		FontColor: Black(),
		Align:     AlignCenter,
	}
}

func New(line Color, lineWidth int, fill *Color, rounded, fontSize int) Attr {
	return Attr{
		LineColor: line,
		LineWidth: lineWidth,
		FillColor: fill,
		Rounded:   rounded,
		FontSize:  fontSize,
		FontColor: Black(),
		Align:     AlignCenter,
	}
}

// Debug styles used only when the renderer is asked to emit debug markers
// (bounding boxes, anchor dots).
func Debug0() Attr { pink := Color{255, 192, 203, 255}; return New(Black(), 1, &pink, 0, 15) }
func Debug1() Attr { ab := Color{240, 248, 255, 255}; return New(Black(), 1, &ab, 0, 15) }
func Debug2() Attr { white := White(); return New(Black(), 1, &white, 0, 15) }
