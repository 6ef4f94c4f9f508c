package fastscroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-drift/fastscroll/pkg/animation"
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/gestures"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

var (
	// ErrDetached is returned by position queries on an unbound scroller.
	ErrDetached = errors.New("fastscroll: scroller not attached to a list")
	// ErrNoSections is returned when the bound adapter has no section index.
	ErrNoSections = errors.New("fastscroll: no section index available")
)

// Listener observes fast-scroll drag gestures.
type Listener interface {
	OnFastScrollStart()
	OnFastScrollStop()
}

const fadeDuration = 300 * time.Millisecond

// Scroller is the fast-scroll indicator half of a FastScrollView: a
// draggable handle on the right edge, an optional track, and a section
// bubble fed by the adapter's SectionIndexer.
//
// A Scroller keeps its identity for the container's lifetime; it binds to a
// ListView via Attach and releases it via Detach.
type Scroller struct {
	list     *ListView
	indexer  SectionIndexer
	listener Listener

	enabled             bool
	hideScrollbar       bool
	trackVisible        bool
	handleWidth         float64
	trackColor          graphics.Color
	handleColor         graphics.Color
	bubbleColor         graphics.Color
	bubbleTextColor     graphics.Color
	bubbleTextSize      float64
	bubbleVisible       bool
	bubbleAlwaysVisible bool
	autoHideDelay       time.Duration

	fade          *animation.FadeController
	hideTicker    *animation.Ticker
	removeScroll  func()
	removeFade    func()
	dragging      bool
	dragFraction  float64
	refreshParent RefreshParent

	paintListeners []func()
}

// NewScroller creates a detached scroller styled by the given theme.
// A nil theme uses the defaults.
func NewScroller(theme *Theme) *Scroller {
	if theme == nil {
		theme = DefaultTheme()
	}
	s := &Scroller{
		enabled:         true,
		hideScrollbar:   theme.HideScrollbar,
		trackVisible:    theme.TrackVisible,
		handleWidth:     theme.HandleWidth,
		trackColor:      theme.TrackColor,
		handleColor:     theme.HandleColor,
		bubbleColor:     theme.BubbleColor,
		bubbleTextColor: theme.BubbleTextColor,
		bubbleTextSize:  theme.BubbleTextSize,
		bubbleVisible:   true,
		autoHideDelay:   theme.AutoHideDelay,
	}
	if s.handleWidth <= 0 {
		s.handleWidth = 8
	}
	if s.autoHideDelay <= 0 {
		s.autoHideDelay = 1500 * time.Millisecond
	}
	s.fade = animation.NewFadeController(fadeDuration)
	s.removeFade = s.fade.AddListener(s.notifyPaint)
	s.hideTicker = animation.NewTicker(s.hideTick)
	if !s.hideScrollbar {
		s.fade.Snap(1)
	}
	return s
}

// Attach binds the scroller to a list and subscribes to its scrolling.
// Attaching while already bound rebinds to the new list.
func (s *Scroller) Attach(list *ListView) {
	if s.list != nil {
		s.Detach()
	}
	s.list = list
	if list != nil {
		s.removeScroll = list.Controller().AddListener(s.onScroll)
	}
	if s.hideScrollbar {
		s.fade.Snap(0)
	} else {
		s.fade.Snap(1)
	}
}

// Detach releases the bound list and cancels drag and fade state.
func (s *Scroller) Detach() {
	if s.dragging {
		s.endDrag()
	}
	if s.removeScroll != nil {
		s.removeScroll()
		s.removeScroll = nil
	}
	s.hideTicker.Stop()
	s.fade.Snap(0)
	s.list = nil
	s.refreshParent = nil
}

// Attached reports whether a list is bound.
func (s *Scroller) Attached() bool {
	return s.list != nil
}

// SetSectionIndexer sets or clears the section label source.
func (s *Scroller) SetSectionIndexer(indexer SectionIndexer) {
	s.indexer = indexer
	s.notifyPaint()
}

// SectionIndexer returns the current section label source, or nil.
func (s *Scroller) SectionIndexer() SectionIndexer {
	return s.indexer
}

// SectionLabelAt returns the bubble label for the given adapter position.
// Returns ErrDetached when no list is bound and ErrNoSections when the
// adapter exposes no section index.
func (s *Scroller) SectionLabelAt(position int) (string, error) {
	if s.list == nil {
		return "", fmt.Errorf("section label at %d: %w", position, ErrDetached)
	}
	if s.indexer == nil {
		return "", fmt.Errorf("section label at %d: %w", position, ErrNoSections)
	}
	sections := s.indexer.Sections()
	if len(sections) == 0 {
		return "", fmt.Errorf("section label at %d: %w", position, ErrNoSections)
	}
	section := s.indexer.SectionForPosition(position)
	if section < 0 {
		section = 0
	}
	if section >= len(sections) {
		section = len(sections) - 1
	}
	return sections[section], nil
}

// ScrollToSection jumps the bound list to the first item of the given
// section. The section index is clamped into the indexer's range.
func (s *Scroller) ScrollToSection(section int) error {
	if s.list == nil {
		return fmt.Errorf("scroll to section %d: %w", section, ErrDetached)
	}
	if s.indexer == nil {
		return fmt.Errorf("scroll to section %d: %w", section, ErrNoSections)
	}
	sections := s.indexer.Sections()
	if len(sections) == 0 {
		return fmt.Errorf("scroll to section %d: %w", section, ErrNoSections)
	}
	if section < 0 {
		section = 0
	}
	if section >= len(sections) {
		section = len(sections) - 1
	}
	s.list.JumpToPosition(s.indexer.PositionForSection(section))
	return nil
}

// SetListener sets or clears the drag gesture observer.
func (s *Scroller) SetListener(listener Listener) {
	s.listener = listener
}

// SetEnabled toggles the indicator. Disabled scrollers draw nothing and
// ignore pointer input.
func (s *Scroller) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.notifyPaint()
}

// Enabled reports whether the indicator is active.
func (s *Scroller) Enabled() bool {
	return s.enabled
}

// SetHideScrollbar toggles auto-hiding of the handle after idle.
func (s *Scroller) SetHideScrollbar(hide bool) {
	s.hideScrollbar = hide
	if hide {
		s.scheduleAutoHide()
	} else {
		s.hideTicker.Stop()
		s.fade.Forward()
	}
	s.notifyPaint()
}

// SetTrackVisible toggles the idle-visible track behind the handle.
func (s *Scroller) SetTrackVisible(visible bool) {
	s.trackVisible = visible
	s.notifyPaint()
}

// SetTrackColor sets the track color.
func (s *Scroller) SetTrackColor(color graphics.Color) {
	s.trackColor = color
	s.notifyPaint()
}

// SetHandleColor sets the handle color.
func (s *Scroller) SetHandleColor(color graphics.Color) {
	s.handleColor = color
	s.notifyPaint()
}

// SetBubbleVisible controls the section bubble: visible enables it during
// drags, alwaysVisible keeps it up whenever the handle shows.
func (s *Scroller) SetBubbleVisible(visible, alwaysVisible bool) {
	s.bubbleVisible = visible
	s.bubbleAlwaysVisible = alwaysVisible
	s.notifyPaint()
}

// SetBubbleColor sets the bubble background color.
func (s *Scroller) SetBubbleColor(color graphics.Color) {
	s.bubbleColor = color
	s.notifyPaint()
}

// SetBubbleTextColor sets the bubble label color.
func (s *Scroller) SetBubbleTextColor(color graphics.Color) {
	s.bubbleTextColor = color
	s.notifyPaint()
}

// SetBubbleTextSize sets the bubble label font size.
func (s *Scroller) SetBubbleTextSize(size float64) {
	s.bubbleTextSize = size
	s.notifyPaint()
}

// Dragging reports whether a handle drag is in flight.
func (s *Scroller) Dragging() bool {
	return s.dragging
}

// HandleOpacity returns the current fade value in [0, 1].
func (s *Scroller) HandleOpacity() float64 {
	return s.fade.Value()
}

func (s *Scroller) setRefreshParent(parent RefreshParent) {
	s.refreshParent = parent
}

func (s *Scroller) startDrag() {
	if s.dragging || s.list == nil {
		return
	}
	s.dragging = true
	s.dragFraction = s.list.ScrollFraction()
	s.hideTicker.Stop()
	s.fade.Forward()
	if s.refreshParent != nil {
		s.refreshParent.SetRefreshLocked(true)
	}
	if s.listener != nil {
		s.listener.OnFastScrollStart()
	}
	s.notifyPaint()
}

func (s *Scroller) dragTo(fraction float64) {
	if !s.dragging || s.list == nil {
		return
	}
	s.dragFraction = widgets.Clamp(fraction, 0, 1)
	s.list.JumpToFraction(s.dragFraction)
}

func (s *Scroller) endDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.refreshParent != nil {
		s.refreshParent.SetRefreshLocked(false)
	}
	if s.listener != nil {
		s.listener.OnFastScrollStop()
	}
	s.scheduleAutoHide()
	s.notifyPaint()
}

func (s *Scroller) onScroll() {
	if s.dragging {
		s.notifyPaint()
		return
	}
	s.fade.Forward()
	s.scheduleAutoHide()
	s.notifyPaint()
}

func (s *Scroller) scheduleAutoHide() {
	if !s.hideScrollbar {
		return
	}
	s.hideTicker.Stop()
	s.hideTicker.Start()
}

func (s *Scroller) hideTick(elapsed time.Duration) {
	if elapsed < s.autoHideDelay {
		return
	}
	s.hideTicker.Stop()
	if !s.dragging {
		s.fade.Reverse()
	}
}

// bubbleLabel returns the label to render, empty when the bubble is hidden.
func (s *Scroller) bubbleLabel() string {
	if !s.bubbleVisible || s.list == nil {
		return ""
	}
	if !s.dragging && !s.bubbleAlwaysVisible {
		return ""
	}
	fraction := s.dragFraction
	if !s.dragging {
		fraction = s.list.ScrollFraction()
	}
	label, err := s.SectionLabelAt(s.list.PositionAtFraction(fraction))
	if err != nil {
		return ""
	}
	return label
}

func (s *Scroller) addPaintListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	index := len(s.paintListeners)
	s.paintListeners = append(s.paintListeners, listener)
	return func() {
		if index < len(s.paintListeners) {
			s.paintListeners[index] = nil
		}
	}
}

func (s *Scroller) notifyPaint() {
	for _, listener := range s.paintListeners {
		if listener != nil {
			listener()
		}
	}
}

// Build renders the indicator overlay. It fills the container; painting and
// hit testing confine themselves to the right-edge strip.
func (s *Scroller) Build(ctx core.BuildContext) core.Widget {
	return scrollerView{scroller: s}
}

type scrollerView struct {
	core.RenderObjectBase
	scroller *Scroller
}

func (v scrollerView) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderScroller{scroller: v.scroller}
	r.SetSelf(r)
	r.removePaint = v.scroller.addPaintListener(r.MarkNeedsPaint)
	r.configureDrag()
	return r
}

func (v scrollerView) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderScroller); ok {
		if r.scroller != v.scroller {
			if r.removePaint != nil {
				r.removePaint()
			}
			r.scroller = v.scroller
			r.removePaint = v.scroller.addPaintListener(r.MarkNeedsPaint)
		}
		r.MarkNeedsPaint()
	}
}

const (
	minHandleExtent  = 48.0
	touchStripFactor = 3.0
	bubbleMargin     = 16.0
	bubblePadding    = 12.0
)

type renderScroller struct {
	layout.RenderBoxBase
	scroller    *Scroller
	drag        *gestures.VerticalDragGestureRecognizer
	removePaint func()
}

func (r *renderScroller) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
}

func (r *renderScroller) handleGeometry() (top, height float64) {
	s := r.scroller
	size := r.Size()
	height = minHandleExtent
	if s.list != nil {
		content := s.list.ContentExtent()
		if content > 0 {
			height = widgets.Clamp(size.Height*size.Height/content, minHandleExtent, size.Height)
		}
	}
	fraction := 0.0
	if s.list != nil {
		fraction = s.list.ScrollFraction()
	}
	top = fraction * (size.Height - height)
	return top, height
}

func (r *renderScroller) Paint(ctx *layout.PaintContext) {
	s := r.scroller
	if !s.enabled || s.list == nil {
		return
	}
	opacity := s.fade.Value()
	size := r.Size()
	right := size.Width
	width := s.handleWidth

	if s.trackVisible {
		track := graphics.RectFromLTWH(right-width, 0, width, size.Height)
		ctx.Canvas.DrawRect(track, graphics.FillPaint(s.trackColor))
	}
	if opacity <= 0 {
		return
	}

	top, height := r.handleGeometry()
	handle := graphics.RectFromLTWH(right-width, top, width, height)
	handleColor := s.handleColor.WithAlpha(opacity * s.handleColor.Alpha())
	rrect := graphics.RRectFromRectAndRadius(handle, graphics.CircularRadius(width/2))
	ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(handleColor))

	r.paintBubble(ctx, top, height)
}

func (r *renderScroller) paintBubble(ctx *layout.PaintContext, handleTop, handleHeight float64) {
	s := r.scroller
	label := s.bubbleLabel()
	if label == "" {
		return
	}
	text := graphics.NewTextLayout(label, graphics.TextStyle{
		Color:    s.bubbleTextColor,
		FontSize: s.bubbleTextSize,
	})
	textSize := text.Size()
	size := r.Size()

	side := textSize.Height + 2*bubblePadding
	if w := textSize.Width + 2*bubblePadding; w > side {
		side = w
	}
	left := size.Width - s.handleWidth - bubbleMargin - side
	top := handleTop + handleHeight/2 - side/2
	top = widgets.Clamp(top, 0, size.Height-side)

	rect := graphics.RectFromLTWH(left, top, side, side)
	rrect := graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(side/2))
	ctx.Canvas.DrawRRect(rrect, graphics.FillPaint(s.bubbleColor))

	textOrigin := graphics.Offset{
		X: left + (side-textSize.Width)/2,
		Y: top + (side-textSize.Height)/2,
	}
	ctx.Canvas.DrawText(text, textOrigin)
}

func (r *renderScroller) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	s := r.scroller
	if !s.enabled || s.list == nil {
		return false
	}
	if s.fade.Value() <= 0 && !s.trackVisible {
		return false
	}
	size := r.Size()
	strip := s.handleWidth * touchStripFactor
	if strip < 24 {
		strip = 24
	}
	if position.X < size.Width-strip || position.X > size.Width {
		return false
	}
	if position.Y < 0 || position.Y > size.Height {
		return false
	}
	result.Add(r)
	return true
}

func (r *renderScroller) HandlePointer(event gestures.PointerEvent) {
	if r.drag == nil {
		return
	}
	if event.Phase == gestures.PointerPhaseDown {
		r.drag.AddPointer(event)
		return
	}
	r.drag.HandleEvent(event)
}

func (r *renderScroller) configureDrag() {
	r.drag = gestures.NewVerticalDragGestureRecognizer()
	r.drag.OnStart = func(details gestures.DragStartDetails) {
		r.scroller.startDrag()
		r.dragToY(details.PositionY)
	}
	r.drag.OnUpdate = func(details gestures.DragUpdateDetails) {
		r.dragToY(details.PositionY)
	}
	r.drag.OnEnd = func(details gestures.DragEndDetails) {
		r.scroller.endDrag()
	}
	r.drag.OnCancel = func() {
		r.scroller.endDrag()
	}
}

func (r *renderScroller) dragToY(y float64) {
	_, handleHeight := r.handleGeometry()
	travel := r.Size().Height - handleHeight
	if travel <= 0 {
		return
	}
	r.scroller.dragTo((y - handleHeight/2) / travel)
}
