package gestures

import "math"

// DragStartDetails describes the beginning of a drag.
type DragStartDetails struct {
	Pointer   int
	PositionX float64
	PositionY float64
}

// DragUpdateDetails describes an in-progress drag movement.
type DragUpdateDetails struct {
	Pointer      int
	PositionX    float64
	PositionY    float64
	PrimaryDelta float64
}

// DragEndDetails describes the end of a drag with its release velocity.
type DragEndDetails struct {
	Pointer         int
	PrimaryVelocity float64
}

// touchSlop is the movement threshold before a drag is recognized.
const touchSlop = 4.0

// VerticalDragGestureRecognizer recognizes vertical drags on a single
// pointer. Events are delivered by the render object that owns the
// recognizer; there is no arena since hit testing already resolves to a
// single handler (topmost wins).
type VerticalDragGestureRecognizer struct {
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	pointer     int
	tracking    bool
	dragging    bool
	lastY       float64
	lastTime    float64
	velocity    float64
	accumulated float64
}

// NewVerticalDragGestureRecognizer creates an idle recognizer.
func NewVerticalDragGestureRecognizer() *VerticalDragGestureRecognizer {
	return &VerticalDragGestureRecognizer{}
}

// AddPointer begins tracking a pointer from its down event.
func (r *VerticalDragGestureRecognizer) AddPointer(event PointerEvent) {
	if event.Phase != PointerPhaseDown {
		return
	}
	r.pointer = event.Pointer
	r.tracking = true
	r.dragging = false
	r.lastY = event.Position.Y
	r.lastTime = event.Timestamp
	r.velocity = 0
	r.accumulated = 0
}

// HandleEvent advances recognition with a move, up, or cancel event.
func (r *VerticalDragGestureRecognizer) HandleEvent(event PointerEvent) {
	if !r.tracking || event.Pointer != r.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		delta := event.Position.Y - r.lastY
		dt := event.Timestamp - r.lastTime
		if dt > 0 {
			r.velocity = delta / dt
		}
		r.lastY = event.Position.Y
		r.lastTime = event.Timestamp

		if !r.dragging {
			r.accumulated += delta
			if math.Abs(r.accumulated) < touchSlop {
				return
			}
			r.dragging = true
			if r.OnStart != nil {
				r.OnStart(DragStartDetails{
					Pointer:   event.Pointer,
					PositionX: event.Position.X,
					PositionY: event.Position.Y,
				})
			}
			delta = r.accumulated
		}
		if r.OnUpdate != nil {
			r.OnUpdate(DragUpdateDetails{
				Pointer:      event.Pointer,
				PositionX:    event.Position.X,
				PositionY:    event.Position.Y,
				PrimaryDelta: delta,
			})
		}
	case PointerPhaseUp:
		wasDragging := r.dragging
		velocity := r.velocity
		r.reset()
		if wasDragging && r.OnEnd != nil {
			r.OnEnd(DragEndDetails{Pointer: event.Pointer, PrimaryVelocity: velocity})
		}
	case PointerPhaseCancel:
		wasDragging := r.dragging
		r.reset()
		if wasDragging && r.OnCancel != nil {
			r.OnCancel()
		}
	}
}

// IsDragging reports whether a drag is past the slop threshold.
func (r *VerticalDragGestureRecognizer) IsDragging() bool {
	return r.dragging
}

// Dispose cancels any in-flight drag.
func (r *VerticalDragGestureRecognizer) Dispose() {
	wasDragging := r.dragging
	r.reset()
	if wasDragging && r.OnCancel != nil {
		r.OnCancel()
	}
}

func (r *VerticalDragGestureRecognizer) reset() {
	r.tracking = false
	r.dragging = false
	r.velocity = 0
	r.accumulated = 0
}
