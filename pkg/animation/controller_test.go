package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/fastscroll/pkg/animation"
	fstest "github.com/go-drift/fastscroll/pkg/testing"
)

func withFakeClock(t *testing.T) *fstest.FakeClock {
	t.Helper()
	clk := fstest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestFadeController_ForwardReachesOne(t *testing.T) {
	clk := withFakeClock(t)

	controller := animation.NewFadeController(300 * time.Millisecond)
	if controller.Value() != 0 {
		t.Fatalf("initial value = %v, want 0", controller.Value())
	}

	controller.Forward()
	if !controller.IsAnimating() {
		t.Fatal("Forward must start the ticker")
	}

	for i := 0; i < 40 && controller.IsAnimating(); i++ {
		clk.Advance(16 * time.Millisecond)
		animation.StepTickers()
	}

	if controller.Value() != 1 {
		t.Errorf("value after forward = %v, want 1", controller.Value())
	}
	if controller.IsAnimating() {
		t.Error("animation must stop at the target")
	}
}

func TestFadeController_ReverseFromOne(t *testing.T) {
	clk := withFakeClock(t)

	controller := animation.NewFadeController(200 * time.Millisecond)
	controller.Snap(1)

	controller.Reverse()
	for i := 0; i < 40 && controller.IsAnimating(); i++ {
		clk.Advance(16 * time.Millisecond)
		animation.StepTickers()
	}

	if controller.Value() != 0 {
		t.Errorf("value after reverse = %v, want 0", controller.Value())
	}
}

func TestFadeController_SnapSkipsAnimation(t *testing.T) {
	withFakeClock(t)

	controller := animation.NewFadeController(300 * time.Millisecond)
	notified := 0
	controller.AddListener(func() { notified++ })

	controller.Snap(1)
	if controller.Value() != 1 {
		t.Errorf("value = %v, want 1", controller.Value())
	}
	if controller.IsAnimating() {
		t.Error("Snap must not animate")
	}
	if notified != 1 {
		t.Errorf("notifications = %d, want 1", notified)
	}

	// Snapping to the current value is silent.
	controller.Snap(1)
	if notified != 1 {
		t.Errorf("notifications after redundant snap = %d, want 1", notified)
	}
}

func TestFadeController_ZeroDurationSnaps(t *testing.T) {
	withFakeClock(t)

	controller := animation.NewFadeController(0)
	controller.Forward()
	if controller.Value() != 1 {
		t.Errorf("value = %v, want 1 immediately", controller.Value())
	}
	if animation.HasActiveTickers() {
		t.Error("zero-duration transition must not leave a ticker running")
	}
}

func TestTicker_StartStop(t *testing.T) {
	clk := withFakeClock(t)

	var elapsed []time.Duration
	ticker := animation.NewTicker(func(d time.Duration) {
		elapsed = append(elapsed, d)
	})

	ticker.Start()
	if !ticker.IsActive() {
		t.Fatal("ticker must be active after Start")
	}

	clk.Advance(16 * time.Millisecond)
	animation.StepTickers()
	clk.Advance(16 * time.Millisecond)
	animation.StepTickers()

	if len(elapsed) != 2 {
		t.Fatalf("ticks = %d, want 2", len(elapsed))
	}
	if elapsed[1] != 32*time.Millisecond {
		t.Errorf("second tick elapsed = %v, want 32ms", elapsed[1])
	}

	ticker.Stop()
	if ticker.IsActive() {
		t.Error("ticker must be inactive after Stop")
	}
	animation.StepTickers()
	if len(elapsed) != 2 {
		t.Error("stopped ticker must not tick")
	}
}
