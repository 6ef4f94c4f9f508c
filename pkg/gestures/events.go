// Package gestures provides the pointer event model and drag recognition
// used by scrollable and draggable render objects.
package gestures

import "github.com/go-drift/fastscroll/pkg/graphics"

// PointerPhase identifies where an event sits in a pointer's lifecycle.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent is a single pointer sample routed through hit testing.
// Position is in the coordinate space of the receiving render object.
type PointerEvent struct {
	Pointer   int
	Phase     PointerPhase
	Position  graphics.Offset
	Delta     graphics.Offset
	Timestamp float64 // seconds, monotonic
}
