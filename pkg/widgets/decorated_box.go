package widgets

import (
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
)

// DecoratedBox paints a background and border behind its child.
//
// Decorations apply in this order:
//  1. Background color
//  2. Border stroke (drawn on top of background)
//  3. Child widget
//
// Use BorderRadius for rounded corners.
type DecoratedBox struct {
	core.RenderObjectBase
	Child        core.Widget
	Color        graphics.Color
	BorderColor  graphics.Color
	BorderWidth  float64
	BorderRadius float64
}

func (d DecoratedBox) ChildWidget() core.Widget {
	return d.Child
}

func (d DecoratedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderDecoratedBox{
		color:        d.Color,
		borderColor:  d.BorderColor,
		borderWidth:  d.BorderWidth,
		borderRadius: d.BorderRadius,
	}
	box.SetSelf(box)
	return box
}

func (d DecoratedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderDecoratedBox); ok {
		box.color = d.Color
		box.borderColor = d.BorderColor
		box.borderWidth = d.BorderWidth
		box.borderRadius = d.BorderRadius
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderDecoratedBox struct {
	layout.RenderBoxBase
	child        layout.RenderBox
	color        graphics.Color
	borderColor  graphics.Color
	borderWidth  float64
	borderRadius float64
}

func (r *renderDecoratedBox) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	setParentOnChild(r.child, r)
}

func (r *renderDecoratedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderDecoratedBox) PerformLayout() {
	constraints := r.Constraints()
	if r.child == nil {
		r.SetSize(constraints.Constrain(graphics.Size{}))
		return
	}
	r.child.Layout(constraints, true) // true: we read child.Size()
	r.SetSize(constraints.Constrain(r.child.Size()))
	r.child.SetParentData(&layout.BoxParentData{})
}

func (r *renderDecoratedBox) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	rect := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	if r.color != graphics.ColorTransparent {
		r.drawShape(ctx, rect, graphics.FillPaint(r.color))
	}
	if r.borderWidth > 0 && r.borderColor != graphics.ColorTransparent {
		r.drawShape(ctx, rect, graphics.StrokePaint(r.borderColor, r.borderWidth))
	}
	if r.child != nil {
		ctx.PaintChild(r.child, getChildOffset(r.child))
	}
}

func (r *renderDecoratedBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if r.child != nil && r.child.HitTest(position, result) {
		return true
	}
	result.Add(r)
	return true
}

func (r *renderDecoratedBox) drawShape(ctx *layout.PaintContext, rect graphics.Rect, paint graphics.Paint) {
	if r.borderRadius > 0 {
		rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(r.borderRadius))
		ctx.Canvas.DrawRRect(rrect, paint)
		return
	}
	ctx.Canvas.DrawRect(rect, paint)
}
