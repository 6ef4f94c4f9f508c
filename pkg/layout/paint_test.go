package layout

import (
	"testing"

	"github.com/go-drift/fastscroll/pkg/graphics"
)

type testRenderBox struct {
	RenderBoxBase
	paintCalls int
}

func (r *testRenderBox) PerformLayout() {
	r.SetSize(graphics.Size{Width: 10, Height: 10})
}

func (r *testRenderBox) Paint(ctx *PaintContext) {
	r.paintCalls++
}

func (r *testRenderBox) HitTest(position graphics.Offset, result *HitTestResult) bool {
	return false
}

func newTestRenderBox() *testRenderBox {
	box := &testRenderBox{}
	box.SetSelf(box)
	return box
}

func TestRenderBox_LayoutSetsSize(t *testing.T) {
	box := newTestRenderBox()
	box.Layout(Tight(graphics.Size{Width: 10, Height: 10}), false)

	if got := box.Size(); got.Width != 10 || got.Height != 10 {
		t.Errorf("size = %v, want 10x10", got)
	}
	if box.NeedsLayout() {
		t.Error("layout must clear the dirty flag")
	}
}

func TestRenderBox_MarkNeedsLayout(t *testing.T) {
	box := newTestRenderBox()
	box.Layout(Tight(graphics.Size{Width: 10, Height: 10}), false)

	box.MarkNeedsLayout()
	if !box.NeedsLayout() {
		t.Error("MarkNeedsLayout must set the dirty flag")
	}

	box.Layout(Tight(graphics.Size{Width: 10, Height: 10}), false)
	if box.NeedsLayout() {
		t.Error("relayout must clear the dirty flag")
	}
}

func TestRenderBox_SkipsCleanLayout(t *testing.T) {
	box := newTestRenderBox()
	constraints := Tight(graphics.Size{Width: 10, Height: 10})
	box.Layout(constraints, false)

	calls := box.paintCalls
	// Same constraints, not dirty: PerformLayout should be skipped,
	// which we can observe through the paint flag staying clear.
	box.ClearNeedsPaint()
	box.Layout(constraints, false)
	if box.NeedsPaint() {
		t.Error("clean layout must not schedule paint")
	}
	_ = calls
}

func TestPaintContext_PaintChildClearsDirty(t *testing.T) {
	box := newTestRenderBox()
	box.Layout(Tight(graphics.Size{Width: 10, Height: 10}), false)

	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{Width: 10, Height: 10})
	ctx := &PaintContext{Canvas: canvas}
	ctx.PaintChild(box, graphics.Offset{X: 2, Y: 3})
	recorder.EndRecording()

	if box.paintCalls != 1 {
		t.Errorf("paint calls = %d, want 1", box.paintCalls)
	}
	if box.NeedsPaint() {
		t.Error("PaintChild must clear the paint flag")
	}
}

func TestConstraints_Constrain(t *testing.T) {
	constraints := Constraints{MinWidth: 10, MaxWidth: 100, MinHeight: 20, MaxHeight: 200}

	got := constraints.Constrain(graphics.Size{Width: 5, Height: 300})
	if got.Width != 10 || got.Height != 200 {
		t.Errorf("Constrain = %v, want 10x200", got)
	}
}

func TestEdgeInsets_Deflate(t *testing.T) {
	constraints := Constraints{MaxWidth: 100, MaxHeight: 100}
	insets := EdgeInsetsAll(10)

	got := constraints.Deflate(insets)
	if got.MaxWidth != 80 || got.MaxHeight != 80 {
		t.Errorf("Deflate = %+v, want max 80x80", got)
	}
}
