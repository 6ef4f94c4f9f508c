package widgets

import (
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
)

// StackFit determines how children are sized within a Stack.
type StackFit int

const (
	// StackFitLoose allows children to size themselves.
	StackFitLoose StackFit = iota
	// StackFitExpand forces children to fill the stack.
	StackFitExpand
)

// Stack overlays children on top of each other.
//
// Children are painted in order, with the first child at the bottom and
// the last child on top. Hit testing proceeds in reverse (topmost first).
//
// Non-positioned children use the Alignment to determine their position.
// For absolute positioning, wrap children in [Positioned]:
//
//	Stack{
//	    Children: []core.Widget{
//	        content,
//	        Positioned(indicator).Top(0).Bottom(0).Right(0).Width(24),
//	    },
//	}
type Stack struct {
	core.RenderObjectBase
	// Children are the widgets to overlay. First child is at the bottom,
	// last child is on top.
	Children []core.Widget
	// Alignment positions non-Positioned children within the stack.
	// Defaults to top-left.
	Alignment layout.Alignment
	// Fit controls how children are sized.
	Fit StackFit
}

// StackOf creates a stack with the given children.
func StackOf(children ...core.Widget) Stack {
	return Stack{Children: children}
}

// ChildrenWidgets returns the child widgets.
func (s Stack) ChildrenWidgets() []core.Widget {
	return s.Children
}

// CreateRenderObject creates the renderStack.
func (s Stack) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	stack := &renderStack{
		alignment: s.Alignment,
		fit:       s.Fit,
	}
	stack.SetSelf(stack)
	return stack
}

// UpdateRenderObject updates the renderStack.
func (s Stack) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if stack, ok := renderObject.(*renderStack); ok {
		stack.alignment = s.Alignment
		stack.fit = s.Fit
		stack.MarkNeedsLayout()
	}
}

type renderStack struct {
	layout.RenderBoxBase
	children  []layout.RenderBox
	alignment layout.Alignment
	fit       StackFit
}

func (r *renderStack) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		setParentOnChild(child, nil)
	}
	r.children = make([]layout.RenderBox, 0, len(children))
	for _, child := range children {
		if box := layout.AsRenderBox(child); box != nil {
			r.children = append(r.children, box)
			setParentOnChild(box, r)
		}
	}
}

func (r *renderStack) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderStack) PerformLayout() {
	constraints := r.Constraints()
	size := layoutStackChildren(r.children, r.fit, r.alignment, constraints)
	r.SetSize(size)
}

func (r *renderStack) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, getChildOffset(child))
	}
}

// HitTest tests children in reverse order (topmost first).
func (r *renderStack) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if hitTestChildrenReverse(r.children, position, result) {
		return true
	}
	result.Add(r)
	return true
}

// layoutStackChildren lays out children by fit mode, sizes the stack to the
// largest child, then finalizes positioned children and aligns the rest.
func layoutStackChildren(children []layout.RenderBox, fit StackFit, alignment layout.Alignment, constraints layout.Constraints) graphics.Size {
	var stackWidth, stackHeight float64
	if fit == StackFitExpand {
		stackWidth = constraints.MaxWidth
		stackHeight = constraints.MaxHeight
	}

	// First pass: layout to determine stack size. Positioned children that
	// stretch (both edges set) are re-laid out in the second pass once the
	// stack size is known.
	for _, child := range children {
		var childConstraints layout.Constraints
		if fit == StackFitExpand {
			childConstraints = layout.Tight(graphics.Size{Width: stackWidth, Height: stackHeight})
		} else if pos, ok := child.(*renderPositioned); ok {
			childConstraints = positionedFirstPassConstraints(pos, constraints)
		} else {
			childConstraints = layout.Loose(graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
		}
		child.Layout(childConstraints, true) // true: we read child.Size()
		childSize := child.Size()
		if childSize.Width > stackWidth {
			stackWidth = childSize.Width
		}
		if childSize.Height > stackHeight {
			stackHeight = childSize.Height
		}
	}

	size := constraints.Constrain(graphics.Size{Width: stackWidth, Height: stackHeight})

	// Second pass: finalize positioned children.
	for _, child := range children {
		if pos, ok := child.(*renderPositioned); ok {
			layoutPositionedChild(pos, size, alignment)
		}
	}

	// Third pass: position non-positioned children using alignment.
	for _, child := range children {
		if _, ok := child.(*renderPositioned); ok {
			continue
		}
		offset := alignment.WithinRect(
			graphics.RectFromLTWH(0, 0, size.Width, size.Height),
			child.Size(),
		)
		child.SetParentData(&layout.BoxParentData{Offset: offset})
	}

	return size
}

// positionedFirstPassConstraints calculates constraints for a positioned
// child during the first layout pass. Explicit Width/Height apply as tight
// constraints; single-edge offsets reduce the max constraint; edge-based
// stretching (both edges set) stays loose until the stack size is known.
func positionedFirstPassConstraints(pos *renderPositioned, constraints layout.Constraints) layout.Constraints {
	var minWidth, maxWidth, minHeight, maxHeight float64

	if pos.width != nil {
		minWidth = *pos.width
		maxWidth = *pos.width
	} else if pos.left != nil && pos.right != nil {
		maxWidth = constraints.MaxWidth
	} else {
		maxWidth = constraints.MaxWidth
		if pos.left != nil {
			maxWidth -= *pos.left
		}
		if pos.right != nil {
			maxWidth -= *pos.right
		}
		if maxWidth < 0 {
			maxWidth = 0
		}
	}

	if pos.height != nil {
		minHeight = *pos.height
		maxHeight = *pos.height
	} else if pos.top != nil && pos.bottom != nil {
		maxHeight = constraints.MaxHeight
	} else {
		maxHeight = constraints.MaxHeight
		if pos.top != nil {
			maxHeight -= *pos.top
		}
		if pos.bottom != nil {
			maxHeight -= *pos.bottom
		}
		if maxHeight < 0 {
			maxHeight = 0
		}
	}

	return layout.Constraints{
		MinWidth:  minWidth,
		MaxWidth:  maxWidth,
		MinHeight: minHeight,
		MaxHeight: maxHeight,
	}
}

// layoutPositionedChild finalizes a positioned child within the given stack
// size: re-layout when stretching across an axis, then compute the offset.
// Axes with no position fall back to the stack alignment.
func layoutPositionedChild(pos *renderPositioned, stackSize graphics.Size, stackAlignment layout.Alignment) {
	if pos.child == nil {
		pos.SetSize(graphics.Size{})
		return
	}

	stretchesWidth := pos.width == nil && pos.left != nil && pos.right != nil
	stretchesHeight := pos.height == nil && pos.top != nil && pos.bottom != nil

	if stretchesWidth || stretchesHeight {
		childSize := pos.child.Size()
		var minWidth, maxWidth, minHeight, maxHeight float64

		if stretchesWidth {
			w := stackSize.Width - *pos.left - *pos.right
			if w < 0 {
				w = 0
			}
			minWidth = w
			maxWidth = w
		} else {
			maxWidth = childSize.Width
		}

		if stretchesHeight {
			h := stackSize.Height - *pos.top - *pos.bottom
			if h < 0 {
				h = 0
			}
			minHeight = h
			maxHeight = h
		} else {
			maxHeight = childSize.Height
		}

		childConstraints := layout.Constraints{
			MinWidth:  minWidth,
			MaxWidth:  maxWidth,
			MinHeight: minHeight,
			MaxHeight: maxHeight,
		}
		pos.child.Layout(childConstraints, true) // true: we read child.Size()
	}

	childSize := pos.child.Size()
	pos.SetSize(childSize)

	hasHorizontalPosition := pos.left != nil || pos.right != nil
	hasVerticalPosition := pos.top != nil || pos.bottom != nil

	var alignedOffset graphics.Offset
	if !hasHorizontalPosition || !hasVerticalPosition {
		alignedOffset = stackAlignment.WithinRect(
			graphics.RectFromLTWH(0, 0, stackSize.Width, stackSize.Height),
			childSize,
		)
	}

	var x, y float64
	if pos.left != nil {
		x = *pos.left
	} else if pos.right != nil {
		x = stackSize.Width - *pos.right - childSize.Width
	} else {
		x = alignedOffset.X
	}

	if pos.top != nil {
		y = *pos.top
	} else if pos.bottom != nil {
		y = stackSize.Height - *pos.bottom - childSize.Height
	} else {
		y = alignedOffset.Y
	}

	pos.child.SetParentData(&layout.BoxParentData{})
	pos.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{X: x, Y: y}})
}

// hitTestChildrenReverse tests children in reverse order and returns true if any child was hit.
func hitTestChildrenReverse(children []layout.RenderBox, position graphics.Offset, result *layout.HitTestResult) bool {
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		offset := getChildOffset(child)
		local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
		if child.HitTest(local, result) {
			return true
		}
	}
	return false
}

// positioned places a child within a [Stack] using absolute positioning.
//
// Create with the [Positioned] constructor and configure with builder methods:
//
//	// Pin to the right edge, full height, fixed width
//	widgets.Positioned(bar).Top(0).Bottom(0).Right(0).Width(24)
//
//	// Stretch to fill with a uniform inset
//	widgets.Positioned(overlay).Fill(16)
//
// When both Left and Right are set (or Top and Bottom), the child stretches
// to fill that dimension. Width/Height override the stretching behavior.
// Axes with no position use the Stack's Alignment.
type positioned struct {
	core.RenderObjectBase
	child  core.Widget
	left   *float64
	top    *float64
	right  *float64
	bottom *float64
	width  *float64
	height *float64
}

// Positioned creates a positioned child for use within a [Stack].
func Positioned(child core.Widget) positioned {
	return positioned{child: child}
}

// Left sets the distance from the left edge of the Stack.
func (p positioned) Left(v float64) positioned {
	p.left = &v
	return p
}

// Top sets the distance from the top edge of the Stack.
func (p positioned) Top(v float64) positioned {
	p.top = &v
	return p
}

// Right sets the distance from the right edge of the Stack.
func (p positioned) Right(v float64) positioned {
	p.right = &v
	return p
}

// Bottom sets the distance from the bottom edge of the Stack.
func (p positioned) Bottom(v float64) positioned {
	p.bottom = &v
	return p
}

// Width overrides the child's width.
func (p positioned) Width(v float64) positioned {
	p.width = &v
	return p
}

// Height overrides the child's height.
func (p positioned) Height(v float64) positioned {
	p.height = &v
	return p
}

// Fill sets all four edges to the given inset value, causing the child
// to stretch to fill the Stack with uniform margins.
func (p positioned) Fill(inset float64) positioned {
	l, t, r, b := inset, inset, inset, inset
	p.left = &l
	p.top = &t
	p.right = &r
	p.bottom = &b
	return p
}

// ChildWidget returns the child widget.
func (p positioned) ChildWidget() core.Widget {
	return p.child
}

// CreateRenderObject creates the renderPositioned.
func (p positioned) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	pos := &renderPositioned{
		left:   p.left,
		top:    p.top,
		right:  p.right,
		bottom: p.bottom,
		width:  p.width,
		height: p.height,
	}
	pos.SetSelf(pos)
	return pos
}

// UpdateRenderObject updates the renderPositioned.
func (p positioned) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if pos, ok := renderObject.(*renderPositioned); ok {
		pos.left = p.left
		pos.top = p.top
		pos.right = p.right
		pos.bottom = p.bottom
		pos.width = p.width
		pos.height = p.height
		pos.MarkNeedsLayout()
	}
}

type renderPositioned struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	left   *float64
	top    *float64
	right  *float64
	bottom *float64
	width  *float64
	height *float64
}

func (r *renderPositioned) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	setParentOnChild(r.child, r)
}

func (r *renderPositioned) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderPositioned) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(graphics.Size{})
		return
	}
	// Outside a Stack only Width/Height apply; edges need a Stack.
	childConstraints := constraints
	if r.width != nil {
		childConstraints.MinWidth = *r.width
		childConstraints.MaxWidth = *r.width
	}
	if r.height != nil {
		childConstraints.MinHeight = *r.height
		childConstraints.MaxHeight = *r.height
	}
	r.child.Layout(childConstraints, true) // true: we read child.Size()
	r.SetSize(r.child.Size())
	r.child.SetParentData(&layout.BoxParentData{})
}

func (r *renderPositioned) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderPositioned) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if r.child == nil {
		return false
	}
	offset := getChildOffset(r.child)
	local := graphics.Offset{X: position.X - offset.X, Y: position.Y - offset.Y}
	return r.child.HitTest(local, result)
}
