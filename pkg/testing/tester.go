package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/fastscroll/pkg/animation"
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without real rendering.
// It drives the same build, layout, and paint phases as a live embedder but
// uses a fake clock and a recording canvas instead of the platform layer.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	rootRender layout.RenderObject
	clock      *FakeClock
	prevClock  animation.Clock
	size       graphics.Size
	dispatches []func()
	pointers   map[int]*pointerState
	recorder   *graphics.PictureRecorder
	lastFrame  *graphics.DisplayList
}

// NewWidgetTester creates a tester with the default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	clk := NewFakeClock()
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		clock:      clk,
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		pointers:   make(map[int]*pointerState),
		recorder:   &graphics.PictureRecorder{},
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock. Must be
// called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}
	animation.SetClock(t.prevClock)
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *WidgetTester) SetSize(size graphics.Size) {
	t.size = size
}

// Clock returns the fake clock for advancing time in tests.
func (t *WidgetTester) Clock() *FakeClock {
	return t.clock
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}

	t.root = core.MountRoot(widgets.Root(widget), t.buildOwner)
	if renderElement, ok := t.root.(interface{ RenderObject() layout.RenderObject }); ok {
		t.rootRender = renderElement.RenderObject()
	}

	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.ScheduleLayout(t.rootRender)
		pipeline.SchedulePaint(t.rootRender)
	}

	return t.Pump()
}

// Unmount tears down the mounted tree without replacing it.
func (t *WidgetTester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootRender = nil
	}
}

// Pump runs a single frame cycle: dispatches, simulations, build, layout,
// paint.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	widgets.StepBallistics()
	animation.StepTickers()

	t.buildOwner.FlushBuild()

	if t.rootRender != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.FlushLayoutForRoot(t.rootRender, layout.Tight(t.size))
		pipeline.FlushPaint()

		canvas := t.recorder.BeginRecording(t.size)
		t.rootRender.Paint(&layout.PaintContext{Canvas: canvas})
		t.lastFrame = t.recorder.EndRecording()
	}

	return nil
}

// PumpFrames runs count frames, advancing the fake clock by 16ms each.
func (t *WidgetTester) PumpFrames(count int) error {
	const frameDuration = 16 * time.Millisecond
	for i := 0; i < count; i++ {
		t.clock.Advance(frameDuration)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle runs frames until the framework is idle or the timeout is
// reached. Each frame advances the fake clock by 16ms. Returns
// ErrSettleTimeout if the framework does not settle within timeout.
func (t *WidgetTester) PumpAndSettle(timeout time.Duration) error {
	const frameDuration = 16 * time.Millisecond
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(frameDuration)
		elapsed += frameDuration
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() ||
		animation.HasActiveTickers() ||
		widgets.HasActiveBallistics() ||
		len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// RootRenderObject returns the root render object of the mounted tree.
func (t *WidgetTester) RootRenderObject() layout.RenderObject {
	return t.rootRender
}

// LastFrame returns the display list recorded by the most recent Pump.
func (t *WidgetTester) LastFrame() *graphics.DisplayList {
	return t.lastFrame
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// extractRenderObject walks from an element to find its render object.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if ro, ok := e.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}
