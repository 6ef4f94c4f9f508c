// Package widgets provides the building-block widgets the fast-scroll
// container composes: boxes, flex layout, stacks, text, and scrolling.
package widgets

import (
	"fmt"

	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/graphics"
	"github.com/go-drift/fastscroll/pkg/layout"
)

// Axis represents the layout direction.
// AxisVertical is the zero value, making it the default for ScrollDirection fields.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// CrossAxisAlignment controls how children are positioned along the cross axis
// (vertical for [Row], horizontal for [Column]).
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStart places children at the start of the cross axis.
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	// CrossAxisAlignmentEnd places children at the end of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
	// CrossAxisAlignmentStretch stretches children to fill the cross axis.
	CrossAxisAlignmentStretch
)

// MainAxisSize controls how much space the flex container takes along its main axis.
type MainAxisSize int

const (
	// MainAxisSizeMin sizes the container to fit its children (shrink-wrap).
	MainAxisSizeMin MainAxisSize = iota
	// MainAxisSizeMax expands to fill all available space along the main axis.
	MainAxisSizeMax
)

// Row lays out children horizontally from left to right.
type Row struct {
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	MainAxisSize       MainAxisSize
}

func (r Row) CreateElement() core.Element {
	return core.NewRenderObjectElement()
}

func (r Row) Key() any {
	return nil
}

func (r Row) ChildrenWidgets() []core.Widget {
	return r.Children
}

func (r Row) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{
		direction:      AxisHorizontal,
		alignment:      r.MainAxisAlignment,
		crossAlignment: r.CrossAxisAlignment,
		axisSize:       r.MainAxisSize,
	}
	flex.SetSelf(flex)
	return flex
}

func (r Row) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok {
		flex.direction = AxisHorizontal
		flex.alignment = r.MainAxisAlignment
		flex.crossAlignment = r.CrossAxisAlignment
		flex.axisSize = r.MainAxisSize
		flex.MarkNeedsLayout()
		flex.MarkNeedsPaint()
	}
}

// Column lays out children vertically from top to bottom.
//
// By default (MainAxisSizeMin), Column shrinks to fit its children. Set
// MainAxisSizeMax to expand and fill available vertical space.
type Column struct {
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
	MainAxisSize       MainAxisSize
}

// ColumnOf creates a vertical layout with default alignment.
func ColumnOf(children ...core.Widget) Column {
	return Column{Children: children}
}

func (c Column) CreateElement() core.Element {
	return core.NewRenderObjectElement()
}

func (c Column) Key() any {
	return nil
}

func (c Column) ChildrenWidgets() []core.Widget {
	return c.Children
}

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	flex := &renderFlex{
		direction:      AxisVertical,
		alignment:      c.MainAxisAlignment,
		crossAlignment: c.CrossAxisAlignment,
		axisSize:       c.MainAxisSize,
	}
	flex.SetSelf(flex)
	return flex
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if flex, ok := renderObject.(*renderFlex); ok {
		flex.direction = AxisVertical
		flex.alignment = c.MainAxisAlignment
		flex.crossAlignment = c.CrossAxisAlignment
		flex.axisSize = c.MainAxisSize
		flex.MarkNeedsLayout()
		flex.MarkNeedsPaint()
	}
}

type renderFlex struct {
	layout.RenderBoxBase
	children       []layout.RenderBox
	direction      Axis
	alignment      MainAxisAlignment
	crossAlignment CrossAxisAlignment
	axisSize       MainAxisSize
}

func (r *renderFlex) SetChildren(children []layout.RenderObject) {
	for _, child := range r.children {
		setParentOnChild(child, nil)
	}
	r.children = make([]layout.RenderBox, 0, len(children))
	for _, child := range children {
		if box := layout.AsRenderBox(child); box != nil {
			r.children = append(r.children, box)
			setParentOnChild(box, r)
		}
	}
}

func (r *renderFlex) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderFlex) PerformLayout() {
	constraints := r.Constraints()

	childConstraints := r.childConstraints(constraints)
	var mainExtent, crossExtent float64
	for _, child := range r.children {
		child.Layout(childConstraints, true) // true: we read child.Size()
		childSize := child.Size()
		if r.direction == AxisHorizontal {
			mainExtent += childSize.Width
			if childSize.Height > crossExtent {
				crossExtent = childSize.Height
			}
		} else {
			mainExtent += childSize.Height
			if childSize.Width > crossExtent {
				crossExtent = childSize.Width
			}
		}
	}

	size := r.resolveSize(constraints, mainExtent, crossExtent)
	r.SetSize(size)

	availableMain := size.Height
	availableCross := size.Width
	if r.direction == AxisHorizontal {
		availableMain = size.Width
		availableCross = size.Height
	}

	cursor := 0.0
	switch r.alignment {
	case MainAxisAlignmentEnd:
		cursor = availableMain - mainExtent
	case MainAxisAlignmentCenter:
		cursor = (availableMain - mainExtent) / 2
	}

	for _, child := range r.children {
		childSize := child.Size()
		childMain := childSize.Height
		childCross := childSize.Width
		if r.direction == AxisHorizontal {
			childMain = childSize.Width
			childCross = childSize.Height
		}
		cross := 0.0
		switch r.crossAlignment {
		case CrossAxisAlignmentEnd:
			cross = availableCross - childCross
		case CrossAxisAlignmentCenter:
			cross = (availableCross - childCross) / 2
		}
		var offset graphics.Offset
		if r.direction == AxisHorizontal {
			offset = graphics.Offset{X: cursor, Y: cross}
		} else {
			offset = graphics.Offset{X: cross, Y: cursor}
		}
		child.SetParentData(&layout.BoxParentData{Offset: offset})
		cursor += childMain
	}
}

func (r *renderFlex) childConstraints(constraints layout.Constraints) layout.Constraints {
	if r.direction == AxisHorizontal {
		child := layout.Constraints{MaxWidth: layout.Unbounded, MaxHeight: constraints.MaxHeight}
		if r.crossAlignment == CrossAxisAlignmentStretch {
			child.MinHeight = constraints.MaxHeight
		}
		return child
	}
	child := layout.Constraints{MaxWidth: constraints.MaxWidth, MaxHeight: layout.Unbounded}
	if r.crossAlignment == CrossAxisAlignmentStretch {
		child.MinWidth = constraints.MaxWidth
	}
	return child
}

func (r *renderFlex) resolveSize(constraints layout.Constraints, mainExtent, crossExtent float64) graphics.Size {
	var desired graphics.Size
	if r.direction == AxisHorizontal {
		desired = graphics.Size{Width: mainExtent, Height: crossExtent}
		if r.axisSize == MainAxisSizeMax && constraints.MaxWidth < layout.Unbounded {
			desired.Width = constraints.MaxWidth
		}
	} else {
		desired = graphics.Size{Width: crossExtent, Height: mainExtent}
		if r.axisSize == MainAxisSizeMax && constraints.MaxHeight < layout.Unbounded {
			desired.Height = constraints.MaxHeight
		}
	}
	return constraints.Constrain(desired)
}

func (r *renderFlex) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, getChildOffset(child))
	}
}

func (r *renderFlex) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, r.Size()) {
		return false
	}
	if hitTestChildrenReverse(r.children, position, result) {
		return true
	}
	result.Add(r)
	return true
}
