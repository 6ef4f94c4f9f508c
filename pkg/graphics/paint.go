package graphics

// PaintStyle selects between filling and stroking.
type PaintStyle int

const (
	// PaintStyleFill fills the shape's interior.
	PaintStyleFill PaintStyle = iota
	// PaintStyleStroke strokes the shape's outline.
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64
	Antialias   bool
}

// FillPaint creates a fill paint with the given color.
func FillPaint(color Color) Paint {
	return Paint{Color: color, Antialias: true}
}

// StrokePaint creates a stroke paint with the given color and width.
func StrokePaint(color Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width, Antialias: true}
}
