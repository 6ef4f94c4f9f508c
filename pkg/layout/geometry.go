package layout

import (
	"math"

	"github.com/go-drift/fastscroll/pkg/graphics"
)

// Unbounded is the max-constraint value for an axis with no upper bound.
const Unbounded = math.MaxFloat64

// Constraints describe the min/max box a render object may occupy.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight creates constraints that force an exact size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose creates constraints bounded above by size with no lower bound.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain clamps size to these constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	w := size.Width
	if w < c.MinWidth {
		w = c.MinWidth
	}
	if w > c.MaxWidth {
		w = c.MaxWidth
	}
	h := size.Height
	if h < c.MinHeight {
		h = c.MinHeight
	}
	if h > c.MaxHeight {
		h = c.MaxHeight
	}
	return graphics.Size{Width: w, Height: h}
}

// Deflate returns constraints reduced by the given insets, never negative.
func (c Constraints) Deflate(insets EdgeInsets) Constraints {
	horizontal := insets.Left + insets.Right
	vertical := insets.Top + insets.Bottom
	deflated := Constraints{
		MinWidth:  maxFloat(0, c.MinWidth-horizontal),
		MaxWidth:  maxFloat(0, c.MaxWidth-horizontal),
		MinHeight: maxFloat(0, c.MinHeight-vertical),
		MaxHeight: maxFloat(0, c.MaxHeight-vertical),
	}
	return deflated
}

// EdgeInsets describe padding on each side of a box.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// EdgeInsetsAll creates uniform insets.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with shared horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with explicit per-side values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Alignment is re-exported from graphics for layout call sites.
type Alignment = graphics.Alignment

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
