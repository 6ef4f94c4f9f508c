package widgets

import (
	"math"
	"slices"
	"sync"
	"time"

	"github.com/go-drift/fastscroll/pkg/animation"
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/gestures"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
)

// ScrollView provides vertically scrollable content.
//
// ScrollView wraps a single child widget and enables scrolling when the
// child exceeds the viewport.
//
// # Scroll Physics
//
// The Physics field controls scroll behavior:
//   - [ClampingScrollPhysics] (default): stops at edges, no overscroll
//   - [BouncingScrollPhysics]: resistance and bounce-back at edges
//
// # Scroll Controller
//
// Use a [ScrollController] to programmatically control or observe scroll
// position:
//
//	controller := &widgets.ScrollController{}
//	controller.AddListener(func() {
//	    fmt.Println("Offset:", controller.Offset())
//	})
//
// For scrollable lists, see [ListViewBuilder] which adds item-based layout
// and virtualization.
type ScrollView struct {
	core.StatelessBase

	Child      core.Widget
	Controller *ScrollController
	Physics    ScrollPhysics
	Padding    layout.EdgeInsets
}

func (s ScrollView) Build(ctx core.BuildContext) core.Widget {
	child := s.Child
	if s.Padding != (layout.EdgeInsets{}) {
		child = Padding{Padding: s.Padding, Child: child}
	}

	return scrollViewCore{
		Child:      child,
		Controller: s.Controller,
		Physics:    s.Physics,
	}
}

// scrollViewCore is the internal render object widget for ScrollView.
type scrollViewCore struct {
	core.RenderObjectBase
	Child      core.Widget
	Controller *ScrollController
	Physics    ScrollPhysics
}

func (s scrollViewCore) ChildWidget() core.Widget {
	return s.Child
}

func (s scrollViewCore) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	controller := s.Controller
	if controller == nil {
		controller = &ScrollController{}
	}
	physics := s.Physics
	if physics == nil {
		physics = ClampingScrollPhysics{}
	}
	scroll := &renderScrollView{
		controller: controller,
		physics:    physics,
	}
	scroll.SetSelf(scroll)
	scroll.position = NewScrollPosition(controller, physics, func() {
		scroll.MarkNeedsPaint()
	})
	scroll.configureDrag()
	return scroll
}

func (s scrollViewCore) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if scroll, ok := renderObject.(*renderScrollView); ok {
		scroll.updateController(s.Controller)
		scroll.updatePhysics(s.Physics)
		scroll.configureDrag()
		scroll.MarkNeedsLayout()
		scroll.MarkNeedsPaint()
	}
}

type renderScrollView struct {
	layout.RenderBoxBase
	child      layout.RenderBox
	controller *ScrollController
	physics    ScrollPhysics
	position   *ScrollPosition
	drag       *gestures.VerticalDragGestureRecognizer
}

func (r *renderScrollView) SetChild(child layout.RenderObject) {
	setParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	setParentOnChild(r.child, r)
}

func (r *renderScrollView) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderScrollView) PerformLayout() {
	constraints := r.Constraints()
	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	if size.Width <= 0 {
		size.Width = constraints.MinWidth
	}
	if size.Height <= 0 {
		size.Height = constraints.MinHeight
	}
	r.SetSize(size)
	if r.controller != nil {
		r.controller.setViewportExtent(size.Height)
	}
	if r.child != nil {
		childConstraints := layout.Constraints{
			MinWidth:  size.Width,
			MaxWidth:  size.Width,
			MinHeight: 0,
			MaxHeight: layout.Unbounded,
		}
		r.child.Layout(childConstraints, true) // true: we read child.Size() for scroll extents
		r.child.SetParentData(&layout.BoxParentData{})
	}
	r.updateExtents()
}

func (r *renderScrollView) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	size := r.Size()
	clipRect := graphics.RectFromLTWH(0, 0, size.Width, size.Height)

	ctx.Canvas.Save()
	ctx.Canvas.ClipRect(clipRect)
	ctx.Canvas.Translate(0, -r.scrollOffset())
	r.child.Paint(ctx)
	if clearer, ok := r.child.(interface{ ClearNeedsPaint() }); ok {
		clearer.ClearNeedsPaint()
	}
	ctx.Canvas.Restore()
}

func (r *renderScrollView) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	size := r.Size()
	if position.X < 0 || position.Y < 0 || position.X > size.Width || position.Y > size.Height {
		return false
	}
	if r.child != nil {
		local := graphics.Offset{X: position.X, Y: position.Y + r.scrollOffset()}
		if r.child.HitTest(local, result) {
			result.Add(r)
			return true
		}
	}
	result.Add(r)
	return true
}

func (r *renderScrollView) HandlePointer(event gestures.PointerEvent) {
	if r.drag == nil {
		return
	}
	switch event.Phase {
	case gestures.PointerPhaseDown:
		if r.position != nil {
			r.position.StopBallistic()
		}
		r.drag.AddPointer(event)
	default:
		r.drag.HandleEvent(event)
	}
}

func (r *renderScrollView) configureDrag() {
	if r.drag == nil {
		r.drag = gestures.NewVerticalDragGestureRecognizer()
	}
	r.drag.OnStart = func(details gestures.DragStartDetails) {
		if r.position != nil {
			r.position.StopBallistic()
		}
	}
	r.drag.OnUpdate = func(details gestures.DragUpdateDetails) {
		if r.position == nil {
			return
		}
		r.position.ApplyUserOffset(-details.PrimaryDelta)
	}
	r.drag.OnEnd = func(details gestures.DragEndDetails) {
		if r.position == nil {
			return
		}
		r.position.StartBallistic(-details.PrimaryVelocity)
	}
	r.drag.OnCancel = func() {
		if r.position != nil {
			r.position.StopBallistic()
		}
	}
}

func (r *renderScrollView) updateController(controller *ScrollController) {
	if controller == nil {
		return
	}
	if r.controller == controller {
		return
	}
	if r.controller != nil && r.position != nil {
		r.controller.detach(r.position)
	}
	r.controller = controller
	if r.position != nil {
		r.position.controller = controller
		r.controller.attach(r.position)
	}
}

func (r *renderScrollView) updatePhysics(physics ScrollPhysics) {
	if physics == nil {
		return
	}
	r.physics = physics
	if r.position != nil {
		r.position.physics = physics
	}
}

func (r *renderScrollView) updateExtents() {
	if r.position == nil {
		return
	}
	size := r.Size()
	content := 0.0
	if r.child != nil {
		content = r.child.Size().Height
	}
	if r.controller != nil {
		r.controller.setContentExtent(content)
	}
	max := content - size.Height
	if max < 0 {
		max = 0
	}
	r.position.SetExtents(0, max)
}

func (r *renderScrollView) scrollOffset() float64 {
	if r.position == nil {
		return 0
	}
	return r.position.Offset()
}

// ScrollController controls scroll position.
type ScrollController struct {
	InitialScrollOffset float64
	positions           []*ScrollPosition
	viewportExtent      float64
	contentExtent       float64
	listeners           map[int]func()
	nextListenerID      int
}

// Offset returns the current scroll offset.
func (c *ScrollController) Offset() float64 {
	if len(c.positions) > 0 {
		return c.positions[0].Offset()
	}
	return c.InitialScrollOffset
}

// ViewportExtent returns the current viewport extent.
func (c *ScrollController) ViewportExtent() float64 {
	return c.viewportExtent
}

// ContentExtent returns the total scrollable content extent.
func (c *ScrollController) ContentExtent() float64 {
	return c.contentExtent
}

// MaxScrollExtent returns the maximum scroll offset.
func (c *ScrollController) MaxScrollExtent() float64 {
	if len(c.positions) > 0 {
		return c.positions[0].max
	}
	max := c.contentExtent - c.viewportExtent
	if max < 0 {
		max = 0
	}
	return max
}

// HasClients reports whether any scroll position is attached.
func (c *ScrollController) HasClients() bool {
	return len(c.positions) > 0
}

// AddListener registers a callback for scroll changes.
// Returns an unregister function.
func (c *ScrollController) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = listener
	return func() {
		delete(c.listeners, id)
	}
}

// JumpTo moves all attached positions to a new offset.
func (c *ScrollController) JumpTo(offset float64) {
	c.InitialScrollOffset = offset
	if len(c.positions) == 0 {
		c.notifyListeners()
		return
	}
	for _, position := range c.positions {
		position.SetOffset(offset)
	}
}

// AnimateTo moves to a new offset immediately (placeholder for animations).
func (c *ScrollController) AnimateTo(offset float64, _ time.Duration) {
	c.JumpTo(offset)
}

func (c *ScrollController) attach(position *ScrollPosition) {
	if slices.Contains(c.positions, position) {
		return
	}
	c.positions = append(c.positions, position)
}

func (c *ScrollController) detach(position *ScrollPosition) {
	for i, existing := range c.positions {
		if existing == position {
			c.positions = append(c.positions[:i], c.positions[i+1:]...)
			return
		}
	}
}

func (c *ScrollController) setViewportExtent(extent float64) {
	if extent == c.viewportExtent {
		return
	}
	c.viewportExtent = extent
	c.notifyListeners()
}

func (c *ScrollController) setContentExtent(extent float64) {
	if extent == c.contentExtent {
		return
	}
	c.contentExtent = extent
	c.notifyListeners()
}

func (c *ScrollController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// ScrollPosition stores the current scroll offset and extents.
type ScrollPosition struct {
	offset     float64
	min        float64
	max        float64
	physics    ScrollPhysics
	onUpdate   func()
	controller *ScrollController
	ballistic  *ballisticState
}

// NewScrollPosition creates a new scroll position.
func NewScrollPosition(controller *ScrollController, physics ScrollPhysics, onUpdate func()) *ScrollPosition {
	if physics == nil {
		physics = ClampingScrollPhysics{}
	}
	position := &ScrollPosition{
		physics:    physics,
		onUpdate:   onUpdate,
		controller: controller,
	}
	if controller != nil {
		position.offset = controller.InitialScrollOffset
		controller.attach(position)
	}
	return position
}

// Offset returns the current scroll offset.
func (p *ScrollPosition) Offset() float64 {
	return p.offset
}

// SetOffset updates the scroll offset.
func (p *ScrollPosition) SetOffset(value float64) {
	allowOverscroll := isBouncing(p.physics)
	clamped := p.clampOffset(value, allowOverscroll)
	if clamped == p.offset {
		return
	}
	p.offset = clamped
	p.notify()
}

// SetExtents updates the min/max scroll extents.
func (p *ScrollPosition) SetExtents(min, max float64) {
	if max < min {
		max = min
	}
	p.min = min
	p.max = max
	p.SetOffset(p.offset)
}

// ApplyUserOffset applies a drag delta with physics.
func (p *ScrollPosition) ApplyUserOffset(delta float64) {
	p.StopBallistic()
	if p.physics == nil {
		p.SetOffset(p.offset + delta)
		return
	}
	adjusted := p.physics.ApplyPhysicsToUserOffset(p, delta)
	proposed := p.offset + adjusted
	overscroll := p.physics.ApplyBoundaryConditions(p, proposed)
	proposed -= overscroll
	p.SetOffset(proposed)
}

// StartBallistic begins inertial scrolling with the provided velocity.
func (p *ScrollPosition) StartBallistic(velocity float64) {
	p.StopBallistic()
	velocity = p.normalizeBallisticVelocity(velocity)
	// Always animate back when overscrolled.
	if isOverscrolled(p) {
		p.ballistic = newBallisticState(p, velocity)
		registerBallistic(p)
		p.notify()
		return
	}
	if math.Abs(velocity) < 5 {
		return
	}
	p.ballistic = newBallisticState(p, velocity)
	registerBallistic(p)
	p.notify()
}

func (p *ScrollPosition) normalizeBallisticVelocity(velocity float64) float64 {
	if math.IsNaN(velocity) || math.IsInf(velocity, 0) {
		return 0
	}
	velocity *= 0.9
	viewport := viewportExtentForPosition(p)
	maxAbs := Clamp(viewport*5.4, 1080, 4500)
	return Clamp(velocity, -maxAbs, maxAbs)
}

// StopBallistic halts any ongoing inertial scroll.
func (p *ScrollPosition) StopBallistic() {
	if p.ballistic != nil {
		unregisterBallistic(p)
		p.ballistic = nil
	}
}

func (p *ScrollPosition) notify() {
	if p.onUpdate != nil {
		p.onUpdate()
	}
	if p.controller != nil {
		p.controller.notifyListeners()
	}
}

// ScrollPhysics determines scroll behavior.
type ScrollPhysics interface {
	ApplyPhysicsToUserOffset(position *ScrollPosition, offset float64) float64
	ApplyBoundaryConditions(position *ScrollPosition, value float64) float64
}

// ClampingScrollPhysics clamps at edges.
type ClampingScrollPhysics struct{}

// ApplyPhysicsToUserOffset returns the raw delta for clamping physics.
func (ClampingScrollPhysics) ApplyPhysicsToUserOffset(_ *ScrollPosition, offset float64) float64 {
	return offset
}

// ApplyBoundaryConditions clamps at the min/max extents.
func (ClampingScrollPhysics) ApplyBoundaryConditions(position *ScrollPosition, value float64) float64 {
	if value < position.min {
		return value - position.min
	}
	if value > position.max {
		return value - position.max
	}
	return 0
}

// BouncingScrollPhysics adds resistance near edges.
type BouncingScrollPhysics struct{}

// ApplyPhysicsToUserOffset reduces delta when overscrolling.
func (BouncingScrollPhysics) ApplyPhysicsToUserOffset(position *ScrollPosition, offset float64) float64 {
	if (position.offset <= position.min && offset < 0) || (position.offset >= position.max && offset > 0) {
		overscroll := 0.0
		if position.offset < position.min {
			overscroll = position.min - position.offset
		} else if position.offset > position.max {
			overscroll = position.offset - position.max
		}
		viewport := viewportExtentForPosition(position)
		fraction := overscroll / viewport
		resistance := 1.0 / (1.0 + 2.4*fraction)
		if resistance < 0.12 {
			resistance = 0.12
		}
		return offset * resistance
	}
	return offset
}

// ApplyBoundaryConditions allows overscroll; clampOffset bounds it.
func (BouncingScrollPhysics) ApplyBoundaryConditions(position *ScrollPosition, value float64) float64 {
	return 0
}

func (p *ScrollPosition) clampOffset(value float64, allowOverscroll bool) float64 {
	if !allowOverscroll {
		return Clamp(value, p.min, p.max)
	}
	limit := Clamp(viewportExtentForPosition(p)*0.35, 80, 220)
	return Clamp(value, p.min-limit, p.max+limit)
}

func viewportExtentForPosition(p *ScrollPosition) float64 {
	if p != nil && p.controller != nil && p.controller.viewportExtent > 0 {
		return p.controller.viewportExtent
	}
	return 600
}

func isBouncing(physics ScrollPhysics) bool {
	switch physics.(type) {
	case BouncingScrollPhysics:
		return true
	default:
		return false
	}
}

func isOverscrolled(position *ScrollPosition) bool {
	return position.offset < position.min || position.offset > position.max
}

type ballisticState struct {
	position *ScrollPosition
	velocity float64
	lastTime time.Time
}

func newBallisticState(position *ScrollPosition, velocity float64) *ballisticState {
	return &ballisticState{
		position: position,
		velocity: velocity,
		lastTime: animation.Now(),
	}
}

func (b *ballisticState) step(now time.Time) bool {
	if now.Before(b.lastTime) {
		b.lastTime = now
		return false
	}
	dt := now.Sub(b.lastTime).Seconds()
	b.lastTime = now
	if dt <= 0 {
		return false
	}
	// Cap dt to avoid large jumps after stalled frames.
	const maxDt = 0.032
	if dt > maxDt {
		dt = maxDt
	}
	return b.advance(dt)
}

func (b *ballisticState) advance(dt float64) bool {
	if dt <= 0 {
		return false
	}
	pos := b.position

	// Ease back toward the boundary when overscrolled.
	if isOverscrolled(pos) {
		target := pos.min
		if pos.offset > pos.max {
			target = pos.max
		}
		const returnRate = 14.0
		delta := (target - pos.offset) * Clamp(returnRate*dt, 0, 1)
		pos.offset += delta
		if math.Abs(target-pos.offset) < 0.5 {
			pos.offset = target
			pos.notify()
			return true
		}
		pos.notify()
		return false
	}

	velocity := b.velocity
	decel := 2200.0 + 0.385*math.Abs(velocity)
	if velocity > 0 {
		velocity -= decel * dt
		if velocity < 0 {
			velocity = 0
		}
	} else if velocity < 0 {
		velocity += decel * dt
		if velocity > 0 {
			velocity = 0
		}
	}
	offset := pos.offset + velocity*dt

	b.velocity = velocity
	pos.offset = pos.clampOffset(offset, isBouncing(pos.physics))
	pos.notify()

	return math.Abs(velocity) < 5
}

var ballisticMu sync.Mutex
var ballisticPositions = make(map[*ScrollPosition]struct{})

func registerBallistic(position *ScrollPosition) {
	ballisticMu.Lock()
	ballisticPositions[position] = struct{}{}
	ballisticMu.Unlock()
}

func unregisterBallistic(position *ScrollPosition) {
	ballisticMu.Lock()
	delete(ballisticPositions, position)
	ballisticMu.Unlock()
}

// HasActiveBallistics returns true if any scroll simulations are running.
func HasActiveBallistics() bool {
	ballisticMu.Lock()
	defer ballisticMu.Unlock()
	return len(ballisticPositions) > 0
}

// StepBallistics advances any active scroll simulations.
func StepBallistics() {
	ballisticMu.Lock()
	if len(ballisticPositions) == 0 {
		ballisticMu.Unlock()
		return
	}
	now := animation.Now()
	positions := make([]*ScrollPosition, 0, len(ballisticPositions))
	for position := range ballisticPositions {
		positions = append(positions, position)
	}
	ballisticMu.Unlock()

	for _, position := range positions {
		if position.ballistic == nil {
			continue
		}
		if position.ballistic.step(now) {
			position.StopBallistic()
		}
	}
}
