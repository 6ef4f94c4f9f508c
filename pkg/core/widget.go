// Package core provides the widget and element framework interfaces and lifecycle.
//
// Widget is an immutable description of part of the UI. Widgets are lightweight
// configuration objects that can be created frequently without performance
// concerns. Element is the instantiation of a Widget at a particular location
// in the tree; elements manage lifecycle and identity.
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type myState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *myState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: fmt.Sprintf("Count: %d", s.count)}
//	}
//
// Controllers and long-lived services use NewX() constructors returning
// pointers. Immutable configuration objects (widgets) use struct literals.
package core

// Widget is an immutable description of part of the UI.
type Widget interface {
	// CreateElement instantiates the element that hosts this widget.
	CreateElement() Element
	// Key identifies the widget for reconciliation. Nil means unkeyed.
	Key() any
}

// StatelessWidget builds its subtree purely from its configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state that outlives rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds mutable state for a StatefulWidget.
type State interface {
	// InitState is called once when the state is first mounted.
	InitState()
	// Build describes the subtree for the current state.
	Build(ctx BuildContext) Widget
	// DidUpdateWidget is called when the widget configuration changes.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Dispose releases resources when the element unmounts.
	Dispose()
}

// BuildContext is the element's view handed to build methods.
type BuildContext interface {
	// Widget returns the widget configuration hosted at this location.
	Widget() Widget
	// FindAncestor walks up the element tree until predicate matches.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a widget in the tree.
type Element interface {
	Widget() Widget
	Depth() int
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	MarkNeedsBuild()
	RebuildIfNeeded()
	VisitChildren(visitor func(Element) bool)
	FindAncestor(predicate func(Element) bool) Element
}

// MountRoot inflates a widget as the root of an element tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}
