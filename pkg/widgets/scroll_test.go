package widgets_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	fstest "github.com/go-drift/fastscroll/pkg/testing"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

func TestScrollPosition_Clamping(t *testing.T) {
	position := widgets.NewScrollPosition(nil, widgets.ClampingScrollPhysics{}, nil)
	position.SetExtents(0, 500)

	position.SetOffset(250)
	if position.Offset() != 250 {
		t.Errorf("Offset = %v, want 250", position.Offset())
	}

	position.SetOffset(-100)
	if position.Offset() != 0 {
		t.Errorf("Offset below min = %v, want 0", position.Offset())
	}

	position.SetOffset(900)
	if position.Offset() != 500 {
		t.Errorf("Offset above max = %v, want 500", position.Offset())
	}
}

func TestScrollPosition_ExtentsShrinkClampsOffset(t *testing.T) {
	position := widgets.NewScrollPosition(nil, widgets.ClampingScrollPhysics{}, nil)
	position.SetExtents(0, 500)
	position.SetOffset(400)

	position.SetExtents(0, 300)
	if position.Offset() != 300 {
		t.Errorf("Offset after shrink = %v, want 300", position.Offset())
	}
}

func TestScrollPosition_ApplyUserOffset(t *testing.T) {
	notified := 0
	position := widgets.NewScrollPosition(nil, widgets.ClampingScrollPhysics{}, func() {
		notified++
	})
	position.SetExtents(0, 500)

	position.ApplyUserOffset(100)
	if position.Offset() != 100 {
		t.Errorf("Offset = %v, want 100", position.Offset())
	}
	if notified == 0 {
		t.Error("user offset must notify")
	}

	// Dragging past the edge clamps.
	position.ApplyUserOffset(1000)
	if position.Offset() != 500 {
		t.Errorf("Offset = %v, want 500", position.Offset())
	}
}

func TestScrollController_JumpToAndListeners(t *testing.T) {
	controller := &widgets.ScrollController{}
	position := widgets.NewScrollPosition(controller, widgets.ClampingScrollPhysics{}, nil)
	position.SetExtents(0, 1000)

	fired := 0
	remove := controller.AddListener(func() { fired++ })

	controller.JumpTo(300)
	if controller.Offset() != 300 {
		t.Errorf("Offset = %v, want 300", controller.Offset())
	}
	if fired == 0 {
		t.Error("JumpTo must notify listeners")
	}

	remove()
	before := fired
	controller.JumpTo(100)
	if fired != before {
		t.Error("removed listener must not fire")
	}
}

func TestScrollController_NoClients(t *testing.T) {
	controller := &widgets.ScrollController{InitialScrollOffset: 42}
	if controller.HasClients() {
		t.Error("fresh controller must have no clients")
	}
	if controller.Offset() != 42 {
		t.Errorf("Offset without clients = %v, want initial 42", controller.Offset())
	}
	// JumpTo without clients records the offset for later attachment.
	controller.JumpTo(60)
	if controller.Offset() != 60 {
		t.Errorf("Offset = %v, want 60", controller.Offset())
	}
}

func TestScrollView_DragScrollsContent(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	controller := &widgets.ScrollController{}
	if err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 5000, Width: 100},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if controller.ViewportExtent() != fstest.DefaultTestHeight {
		t.Fatalf("viewport = %v, want %v", controller.ViewportExtent(), fstest.DefaultTestHeight)
	}

	// Drag upward to scroll down.
	start := graphics.Offset{X: 400, Y: 400}
	if err := tester.DragFrom(start, graphics.Offset{Y: -200}); err != nil {
		t.Fatalf("DragFrom: %v", err)
	}
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatalf("settle: %v", err)
	}

	if controller.Offset() <= 0 {
		t.Errorf("offset after drag = %v, want > 0", controller.Offset())
	}
	if max := controller.MaxScrollExtent(); controller.Offset() > max {
		t.Errorf("offset %v exceeds max %v", controller.Offset(), max)
	}
}

func TestScrollView_BallisticSettlesWithinRange(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	controller := &widgets.ScrollController{}
	if err := tester.PumpWidget(widgets.ScrollView{
		Controller: controller,
		Child:      widgets.SizedBox{Height: 2000, Width: 100},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if err := tester.DragFrom(graphics.Offset{X: 400, Y: 500}, graphics.Offset{Y: -300}); err != nil {
		t.Fatalf("DragFrom: %v", err)
	}
	if err := tester.PumpAndSettle(10 * time.Second); err != nil {
		t.Fatalf("settle: %v", err)
	}

	if widgets.HasActiveBallistics() {
		t.Error("ballistics must be idle after settling")
	}
	offset := controller.Offset()
	if offset < 0 || offset > controller.MaxScrollExtent() {
		t.Errorf("settled offset %v outside [0, %v]", offset, controller.MaxScrollExtent())
	}
}

func TestListViewBuilder_VirtualizationWindow(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	built := make(map[int]bool)
	controller := &widgets.ScrollController{}
	list := widgets.ListViewBuilder{
		ItemCount:  1000,
		ItemExtent: 50,
		Controller: controller,
		ItemBuilder: func(ctx core.BuildContext, index int) core.Widget {
			built[index] = true
			return widgets.Text{Content: fmt.Sprintf("Item %d", index)}
		},
	}

	// The first build happens before the viewport is measured and builds
	// everything; once the viewport is known the window applies.
	if err := tester.PumpWidget(list); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}

	// Jump deep into the list: only the window around the offset rebuilds.
	for k := range built {
		delete(built, k)
	}
	controller.JumpTo(500 * 50)
	if err := tester.Pump(); err != nil {
		t.Fatalf("Pump: %v", err)
	}
	if !built[500] {
		t.Error("item at the new offset must be built")
	}
	if built[0] {
		t.Error("items far above the viewport must not be rebuilt")
	}
	if built[999] {
		t.Error("items far below the viewport must not be rebuilt")
	}
}

func TestListView_ShowsChildren(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.ListView{
		Children: []core.Widget{
			widgets.Text{Content: "alpha"},
			widgets.Text{Content: "beta"},
		},
	}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if !tester.Find(fstest.ByText("alpha")).Exists() {
		t.Error("first child missing")
	}
	if !tester.Find(fstest.ByText("beta")).Exists() {
		t.Error("second child missing")
	}
}
