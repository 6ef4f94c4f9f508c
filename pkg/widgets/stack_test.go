package widgets_test

import (
	"testing"

	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
	fstest "github.com/go-drift/fastscroll/pkg/testing"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

// marker is a zero-size-agnostic box used to find a specific child.
type marker struct {
	core.StatelessBase
	Name  string
	Child core.Widget
}

func (m marker) Key() any {
	return m.Name
}

func (m marker) Build(ctx core.BuildContext) core.Widget {
	return m.Child
}

func childOffset(t *testing.T, tester *fstest.WidgetTester, key string) graphics.Offset {
	t.Helper()
	ro := tester.Find(fstest.ByKey(key)).RenderObject()
	if ro == nil {
		t.Fatalf("no render object under key %q", key)
	}
	// The marker is stateless; the render object belongs to the wrapped
	// positioned or box child.
	pd, ok := ro.ParentData().(*layout.BoxParentData)
	if !ok {
		t.Fatalf("key %q: no box parent data", key)
	}
	return pd.Offset
}

func TestStack_PositionedAbsolute(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Stack{
		Children: []core.Widget{
			widgets.SizedBox{Width: 300, Height: 300},
			marker{
				Name:  "pinned",
				Child: widgets.Positioned(widgets.SizedBox{Width: 50, Height: 40}).Left(20).Top(30),
			},
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	offset := childOffset(t, tester, "pinned")
	if offset.X != 20 || offset.Y != 30 {
		t.Errorf("positioned offset = %v, want (20, 30)", offset)
	}
}

func TestStack_PositionedRightBottom(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 400})

	if err := tester.PumpWidget(widgets.Stack{
		Fit: widgets.StackFitLoose,
		Children: []core.Widget{
			widgets.SizedBox{Width: 400, Height: 400},
			marker{
				Name:  "corner",
				Child: widgets.Positioned(widgets.SizedBox{Width: 24, Height: 24}).Right(0).Bottom(0),
			},
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	offset := childOffset(t, tester, "corner")
	if offset.X != 376 || offset.Y != 376 {
		t.Errorf("corner offset = %v, want (376, 376)", offset)
	}
}

func TestStack_PositionedStretchesBetweenEdges(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 500})

	if err := tester.PumpWidget(widgets.Stack{
		Children: []core.Widget{
			widgets.SizedBox{Width: 200, Height: 500},
			marker{
				Name:  "bar",
				Child: widgets.Positioned(widgets.SizedBox{}).Top(0).Bottom(0).Right(0).Width(24),
			},
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	ro := tester.Find(fstest.ByKey("bar")).RenderObject()
	if ro == nil {
		t.Fatal("no render object for bar")
	}
	size := ro.Size()
	if size.Width != 24 || size.Height != 500 {
		t.Errorf("bar size = %v, want 24x500", size)
	}
	offset := childOffset(t, tester, "bar")
	if offset.X != 176 || offset.Y != 0 {
		t.Errorf("bar offset = %v, want (176, 0)", offset)
	}
}

func TestStack_ExpandFitFillsConstraints(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Stack{
		Fit: widgets.StackFitExpand,
		Children: []core.Widget{
			marker{Name: "filled", Child: widgets.SizedBox{}},
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	ro := tester.Find(fstest.ByKey("filled")).RenderObject()
	if ro == nil {
		t.Fatal("no render object")
	}
	size := ro.Size()
	if size.Width != fstest.DefaultTestWidth || size.Height != fstest.DefaultTestHeight {
		t.Errorf("size = %v, want %vx%v", size, fstest.DefaultTestWidth, fstest.DefaultTestHeight)
	}
}
