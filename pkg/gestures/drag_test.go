package gestures_test

import (
	"testing"

	"github.com/go-drift/fastscroll/pkg/gestures"
	"github.com/go-drift/fastscroll/pkg/graphics"
)

func event(pointer int, phase gestures.PointerPhase, y, ts float64) gestures.PointerEvent {
	return gestures.PointerEvent{
		Pointer:   pointer,
		Phase:     phase,
		Position:  graphics.Offset{X: 100, Y: y},
		Timestamp: ts,
	}
}

func TestVerticalDrag_StartsAfterSlop(t *testing.T) {
	recognizer := gestures.NewVerticalDragGestureRecognizer()
	started := false
	recognizer.OnStart = func(gestures.DragStartDetails) { started = true }

	recognizer.AddPointer(event(1, gestures.PointerPhaseDown, 100, 0))
	recognizer.HandleEvent(event(1, gestures.PointerPhaseMove, 102, 0.008))
	if started {
		t.Fatal("drag must not start within the touch slop")
	}

	recognizer.HandleEvent(event(1, gestures.PointerPhaseMove, 110, 0.016))
	if !started {
		t.Fatal("drag must start after the slop is exceeded")
	}
	if !recognizer.IsDragging() {
		t.Error("IsDragging must report an active drag")
	}
}

func TestVerticalDrag_UpdateDeltas(t *testing.T) {
	recognizer := gestures.NewVerticalDragGestureRecognizer()
	var total float64
	recognizer.OnUpdate = func(details gestures.DragUpdateDetails) {
		total += details.PrimaryDelta
	}

	recognizer.AddPointer(event(1, gestures.PointerPhaseDown, 100, 0))
	recognizer.HandleEvent(event(1, gestures.PointerPhaseMove, 120, 0.008))
	recognizer.HandleEvent(event(1, gestures.PointerPhaseMove, 150, 0.016))
	recognizer.HandleEvent(event(1, gestures.PointerPhaseUp, 150, 0.024))

	if total <= 0 {
		t.Errorf("accumulated delta = %v, want > 0", total)
	}
}

func TestVerticalDrag_EndReportsVelocity(t *testing.T) {
	recognizer := gestures.NewVerticalDragGestureRecognizer()
	var velocity float64
	ended := false
	recognizer.OnEnd = func(details gestures.DragEndDetails) {
		velocity = details.PrimaryVelocity
		ended = true
	}

	recognizer.AddPointer(event(1, gestures.PointerPhaseDown, 100, 0))
	for i := 1; i <= 5; i++ {
		recognizer.HandleEvent(event(1, gestures.PointerPhaseMove, 100+float64(i)*40, float64(i)*0.016))
	}
	recognizer.HandleEvent(event(1, gestures.PointerPhaseUp, 300, 6*0.016))

	if !ended {
		t.Fatal("OnEnd must fire after a drag")
	}
	if velocity <= 0 {
		t.Errorf("velocity = %v, want > 0 for a downward fling", velocity)
	}
	if recognizer.IsDragging() {
		t.Error("drag must end on pointer up")
	}
}

func TestVerticalDrag_CancelStopsDrag(t *testing.T) {
	recognizer := gestures.NewVerticalDragGestureRecognizer()
	canceled := false
	recognizer.OnCancel = func() { canceled = true }

	recognizer.AddPointer(event(1, gestures.PointerPhaseDown, 100, 0))
	recognizer.HandleEvent(event(1, gestures.PointerPhaseMove, 140, 0.008))
	recognizer.HandleEvent(event(1, gestures.PointerPhaseCancel, 140, 0.016))

	if !canceled {
		t.Error("OnCancel must fire")
	}
	if recognizer.IsDragging() {
		t.Error("drag must end on cancel")
	}
}

func TestVerticalDrag_IgnoresOtherPointers(t *testing.T) {
	recognizer := gestures.NewVerticalDragGestureRecognizer()
	updates := 0
	recognizer.OnUpdate = func(gestures.DragUpdateDetails) { updates++ }

	recognizer.AddPointer(event(1, gestures.PointerPhaseDown, 100, 0))
	recognizer.HandleEvent(event(2, gestures.PointerPhaseMove, 200, 0.008))

	if updates != 0 {
		t.Error("events from untracked pointers must be ignored")
	}
}
