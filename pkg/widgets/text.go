package widgets

import (
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
)

// Text displays a single line of styled text.
//
//	Text{Content: "A", Style: graphics.TextStyle{FontSize: 20}}
type Text struct {
	core.RenderObjectBase
	Content string
	Style   graphics.TextStyle
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{}
	text.SetSelf(text)
	text.update(t)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*renderText); ok {
		text.update(t)
	}
}

type renderText struct {
	layout.RenderBoxBase
	content string
	style   graphics.TextStyle
	layout  *graphics.TextLayout
}

func (r *renderText) update(widget Text) {
	if r.content == widget.Content && r.style == widget.Style && r.layout != nil {
		return
	}
	r.content = widget.Content
	r.style = widget.Style
	r.layout = graphics.NewTextLayout(widget.Content, widget.Style)
	r.MarkNeedsLayout()
	r.MarkNeedsPaint()
}

func (r *renderText) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{}
	if r.layout != nil {
		size = r.layout.Size()
	}
	r.SetSize(constraints.Constrain(size))
}

func (r *renderText) Paint(ctx *layout.PaintContext) {
	if r.layout == nil || r.content == "" {
		return
	}
	ctx.Canvas.DrawText(r.layout, graphics.Offset{})
}

func (r *renderText) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}
