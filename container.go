package fastscroll

import (
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/platform"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

// Child keys, stable across the container's lifetime.
const (
	KeyScroller = "fast_scroller"
	KeyList     = "recycler_view"
)

// AttachmentState tracks whether the container is mounted in a tree.
type AttachmentState int

const (
	Detached AttachmentState = iota
	Attached
)

// String returns a human-readable representation of the state.
func (s AttachmentState) String() string {
	switch s {
	case Detached:
		return "detached"
	case Attached:
		return "attached"
	default:
		return "unknown"
	}
}

// Config configures a FastScrollView at construction time.
type Config struct {
	// Theme styles both children identically. Nil uses the defaults, and
	// sizes the container fill-width/wrap-height.
	Theme *Theme
	// Adapter is the initial content source; may be nil.
	Adapter Adapter
	// LayoutManager is the initial geometry policy; nil means linear.
	LayoutManager LayoutManager
	// FastScrollEnabled defaults the indicator on. Nil means enabled.
	FastScrollEnabled *bool
}

// FastScrollView is a composite container owning exactly two children: a
// ListView and a fast-scroll Scroller overlaid on its right edge. The pair
// is constructed eagerly and keeps identity for the container's lifetime;
// mounting and unmounting bind and release them as a unit.
//
//	view := fastscroll.NewFastScrollView(fastscroll.Config{})
//	view.SetAdapter(contacts)
//
// FastScrollView is a widget: place it in a tree and the element lifecycle
// drives attachment.
type FastScrollView struct {
	theme    *Theme
	list     *ListView
	scroller *Scroller

	state  AttachmentState
	compat CompatibilityAction

	element *core.StatefulElement
}

// NewFastScrollView constructs the container and both children.
func NewFastScrollView(config Config) *FastScrollView {
	theme := config.Theme
	if theme == nil {
		theme = DefaultTheme()
	}
	f := &FastScrollView{
		theme:    theme,
		list:     NewListView(),
		scroller: NewScroller(theme),
	}
	if config.LayoutManager != nil {
		f.list.SetLayoutManager(config.LayoutManager)
	}
	if config.Adapter != nil {
		f.SetAdapter(config.Adapter)
	}
	if config.FastScrollEnabled != nil {
		f.scroller.SetEnabled(*config.FastScrollEnabled)
	}
	return f
}

// Scroller returns the indicator child. Identity is stable.
func (f *FastScrollView) Scroller() *Scroller {
	return f.scroller
}

// List returns the list child. Identity is stable.
func (f *FastScrollView) List() *ListView {
	return f.list
}

// AttachmentState reports whether the container is mounted.
func (f *FastScrollView) AttachmentState() AttachmentState {
	return f.state
}

// CompatAction returns the integration chosen at the last attach.
func (f *FastScrollView) CompatAction() CompatibilityAction {
	return f.compat
}

// SetAdapter routes the adapter to both children: the list receives it
// unconditionally; the scroller's section provider is set iff the adapter
// implements SectionIndexer, cleared otherwise. Works in any attachment
// state.
func (f *FastScrollView) SetAdapter(adapter Adapter) {
	f.list.SetAdapter(adapter)
	if indexer, ok := adapter.(SectionIndexer); ok {
		f.scroller.SetSectionIndexer(indexer)
	} else {
		f.scroller.SetSectionIndexer(nil)
	}
}

// Adapter returns the current content source, or nil.
func (f *FastScrollView) Adapter() Adapter {
	return f.list.Adapter()
}

// SetLayoutManager forwards the geometry policy to the list.
func (f *FastScrollView) SetLayoutManager(manager LayoutManager) {
	f.list.SetLayoutManager(manager)
}

// LayoutManager returns the list's geometry policy.
func (f *FastScrollView) LayoutManager() LayoutManager {
	return f.list.LayoutManager()
}

// SetFastScrollEnabled forwards to the scroller.
func (f *FastScrollView) SetFastScrollEnabled(enabled bool) {
	f.scroller.SetEnabled(enabled)
}

// SetFastScrollListener forwards to the scroller; nil clears.
func (f *FastScrollView) SetFastScrollListener(listener Listener) {
	f.scroller.SetListener(listener)
}

// SetHideScrollbar forwards to the scroller.
func (f *FastScrollView) SetHideScrollbar(hide bool) {
	f.scroller.SetHideScrollbar(hide)
}

// SetTrackVisible forwards to the scroller.
func (f *FastScrollView) SetTrackVisible(visible bool) {
	f.scroller.SetTrackVisible(visible)
}

// SetTrackColor forwards to the scroller.
func (f *FastScrollView) SetTrackColor(color graphics.Color) {
	f.scroller.SetTrackColor(color)
}

// SetHandleColor forwards to the scroller.
func (f *FastScrollView) SetHandleColor(color graphics.Color) {
	f.scroller.SetHandleColor(color)
}

// SetBubbleVisible forwards to the scroller.
func (f *FastScrollView) SetBubbleVisible(visible, alwaysVisible bool) {
	f.scroller.SetBubbleVisible(visible, alwaysVisible)
}

// SetBubbleColor forwards to the scroller.
func (f *FastScrollView) SetBubbleColor(color graphics.Color) {
	f.scroller.SetBubbleColor(color)
}

// SetBubbleTextColor forwards to the scroller.
func (f *FastScrollView) SetBubbleTextColor(color graphics.Color) {
	f.scroller.SetBubbleTextColor(color)
}

// SetBubbleTextSize forwards to the scroller.
func (f *FastScrollView) SetBubbleTextSize(size float64) {
	f.scroller.SetBubbleTextSize(size)
}

// CreateElement implements core.Widget.
func (f *FastScrollView) CreateElement() core.Element {
	return core.NewStatefulElement()
}

// Key implements core.Widget.
func (f *FastScrollView) Key() any {
	return nil
}

// CreateState implements core.StatefulWidget.
func (f *FastScrollView) CreateState() core.State {
	return &fastScrollViewState{}
}

// attach runs the bind sequence: container mounted, list inserted, scroller
// bound to the list, then compat resolved for the embedder.
func (f *FastScrollView) attach(element *core.StatefulElement) {
	f.element = element
	f.state = Attached
	f.list.setOnChanged(func() {
		if f.element != nil {
			f.element.MarkNeedsBuild()
		}
	})
	f.scroller.Attach(f.list)
	refreshParent := findRefreshParent(element)
	f.compat = ResolveCompat(platform.HostFeatureLevel(), refreshParent)
	if f.compat == DelegateToParentRefresh {
		f.scroller.setRefreshParent(refreshParent)
	}
}

// detach runs the release sequence in reverse: scroller released first,
// children deactivated, container unmounted last.
func (f *FastScrollView) detach() {
	f.scroller.Detach()
	f.list.setOnChanged(nil)
	f.compat = CompatNone
	f.element = nil
	f.state = Detached
}

type fastScrollViewState struct {
	core.StateBase
	container *FastScrollView
}

func (s *fastScrollViewState) InitState() {
	if container, ok := s.widget(); ok {
		s.container = container
		container.attach(s.Element())
	}
}

func (s *fastScrollViewState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old, ok := oldWidget.(*FastScrollView)
	if !ok {
		return
	}
	current, ok := s.widget()
	if !ok || old == current {
		return
	}
	// A different container value rebinds in place.
	old.detach()
	s.container = current
	current.attach(s.Element())
}

func (s *fastScrollViewState) Dispose() {
	if s.container != nil {
		s.container.detach()
		s.container = nil
	}
	s.StateBase.Dispose()
}

func (s *fastScrollViewState) Build(ctx core.BuildContext) core.Widget {
	container, ok := s.widget()
	if !ok {
		return nil
	}
	var content core.Widget = widgets.Stack{
		Fit: widgets.StackFitExpand,
		Children: []core.Widget{
			childHost{key: KeyList, child: container.list.Build(ctx)},
			childHost{key: KeyScroller, child: container.scroller.Build(ctx)},
		},
	}
	if container.theme != nil && container.theme.BackgroundColor != graphics.ColorTransparent {
		content = widgets.DecoratedBox{
			Color: container.theme.BackgroundColor,
			Child: content,
		}
	}
	if container.theme != nil && (container.theme.Width > 0 || container.theme.Height > 0) {
		return widgets.SizedBox{
			Width:  container.theme.Width,
			Height: container.theme.Height,
			Child:  content,
		}
	}
	return content
}

func (s *fastScrollViewState) widget() (*FastScrollView, bool) {
	if s.Element() == nil {
		return nil, false
	}
	container, ok := s.Element().Widget().(*FastScrollView)
	return container, ok
}

// childHost pins a stable key on each of the container's two children.
type childHost struct {
	core.StatelessBase
	key   string
	child core.Widget
}

func (h childHost) Key() any {
	return h.key
}

func (h childHost) Build(ctx core.BuildContext) core.Widget {
	return h.child
}
