package fastscroll

import (
	"fmt"

	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/platform"
)

// CompatibilityAction is the scrolling integration chosen at attach time.
type CompatibilityAction int

const (
	// CompatNone leaves scrolling integration alone. Chosen on legacy
	// embedders with no refresh-capable ancestor; fast scrolling still
	// works, only the pull-to-refresh interaction degrades.
	CompatNone CompatibilityAction = iota
	// EnableNativeNestedScroll uses the embedder's nested scroll support.
	EnableNativeNestedScroll
	// DelegateToParentRefresh hands refresh coordination to an ancestor
	// refresh container on embedders without nested scroll support.
	DelegateToParentRefresh
)

// String returns a human-readable representation of the action.
func (a CompatibilityAction) String() string {
	switch a {
	case CompatNone:
		return "none"
	case EnableNativeNestedScroll:
		return "nested_scroll"
	case DelegateToParentRefresh:
		return "parent_refresh"
	default:
		return fmt.Sprintf("CompatibilityAction(%d)", int(a))
	}
}

// RefreshParent is an ancestor that coordinates pull-to-refresh and can be
// locked while a fast-scroll drag is in flight.
type RefreshParent interface {
	SetRefreshLocked(locked bool)
}

// ResolveCompat picks the scrolling integration for the given embedder
// feature level and refresh ancestor (nil when none exists).
func ResolveCompat(level platform.FeatureLevel, parent RefreshParent) CompatibilityAction {
	if level.SupportsNestedScroll() {
		return EnableNativeNestedScroll
	}
	if parent != nil {
		return DelegateToParentRefresh
	}
	return CompatNone
}

// RefreshContainer marks a subtree as coordinated by a pull-to-refresh
// surface. FastScrollView discovers the nearest enclosing container at
// attach time on legacy embedders.
type RefreshContainer struct {
	core.StatefulBase
	Child core.Widget
	// OnLockChanged reports refresh lock transitions, for the host surface.
	OnLockChanged func(locked bool)
}

func (r RefreshContainer) CreateState() core.State {
	return &refreshContainerState{}
}

type refreshContainerState struct {
	core.StateBase
	locked bool
}

// SetRefreshLocked implements RefreshParent.
func (s *refreshContainerState) SetRefreshLocked(locked bool) {
	if s.locked == locked {
		return
	}
	s.locked = locked
	if widget, ok := s.widget(); ok && widget.OnLockChanged != nil {
		widget.OnLockChanged(locked)
	}
}

// RefreshLocked reports whether a fast-scroll drag holds the lock.
func (s *refreshContainerState) RefreshLocked() bool {
	return s.locked
}

func (s *refreshContainerState) Build(ctx core.BuildContext) core.Widget {
	widget, ok := s.widget()
	if !ok {
		return nil
	}
	return widget.Child
}

func (s *refreshContainerState) widget() (RefreshContainer, bool) {
	if s.Element() == nil {
		return RefreshContainer{}, false
	}
	widget, ok := s.Element().Widget().(RefreshContainer)
	return widget, ok
}

// findRefreshParent walks up from the container element looking for a
// RefreshParent, typically a RefreshContainer's state.
func findRefreshParent(element core.Element) RefreshParent {
	if element == nil {
		return nil
	}
	found := element.FindAncestor(func(candidate core.Element) bool {
		if stateful, ok := candidate.(*core.StatefulElement); ok {
			_, ok := stateful.State().(RefreshParent)
			return ok
		}
		return false
	})
	if found == nil {
		return nil
	}
	stateful, ok := found.(*core.StatefulElement)
	if !ok {
		return nil
	}
	parent, _ := stateful.State().(RefreshParent)
	return parent
}
