package widgets

import (
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
)

// getChildOffset extracts the offset from a child's parent data.
func getChildOffset(child layout.RenderBox) graphics.Offset {
	if child == nil {
		return graphics.Offset{}
	}
	if data, ok := child.ParentData().(*layout.BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

// setParentOnChild wires the render tree parent pointer.
func setParentOnChild(child, parent layout.RenderObject) {
	layout.SetParentOnChild(child, parent)
}

// withinBounds checks whether a position falls inside a size.
func withinBounds(position graphics.Offset, size graphics.Size) bool {
	return layout.WithinBounds(position, size)
}

// Root creates a top-level view widget with the given child.
func Root(child core.Widget) View {
	return View{Child: child}
}

// Padded wraps a child with the specified padding.
func Padded(padding layout.EdgeInsets, child core.Widget) Padding {
	return Padding{Padding: padding, Child: child}
}

// VSpace creates a fixed-height vertical spacer.
func VSpace(height float64) SizedBox {
	return SizedBox{Height: height}
}

// HSpace creates a fixed-width horizontal spacer.
func HSpace(width float64) SizedBox {
	return SizedBox{Width: width}
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// PaddingAll wraps a child with uniform padding on all sides.
func PaddingAll(value float64, child core.Widget) Padding {
	return Padding{Padding: layout.EdgeInsetsAll(value), Child: child}
}
