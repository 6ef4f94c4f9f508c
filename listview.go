package fastscroll

import (
	"math"

	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

// ListView is the retained list half of a FastScrollView. It owns the
// scroll controller and the adapter and layout-manager slots, and renders
// through the fixed-extent virtualizing list builder.
//
// A ListView keeps its identity across adapter and layout changes; the
// container constructs it once and mutates it in place.
type ListView struct {
	controller    *widgets.ScrollController
	adapter       Adapter
	layoutManager LayoutManager
	onChanged     func()
}

// NewListView creates a detached list with a default linear layout.
func NewListView() *ListView {
	return &ListView{
		controller:    &widgets.ScrollController{},
		layoutManager: LinearLayoutManager{},
	}
}

// Controller returns the scroll controller owned by this list.
func (l *ListView) Controller() *widgets.ScrollController {
	return l.controller
}

// SetAdapter replaces the list's content source. A nil adapter empties the
// list.
func (l *ListView) SetAdapter(adapter Adapter) {
	l.adapter = adapter
	l.notifyChanged()
}

// Adapter returns the current content source, or nil.
func (l *ListView) Adapter() Adapter {
	return l.adapter
}

// SetLayoutManager replaces the item geometry policy. A nil manager resets
// to the default linear layout.
func (l *ListView) SetLayoutManager(manager LayoutManager) {
	if manager == nil {
		manager = LinearLayoutManager{}
	}
	l.layoutManager = manager
	l.notifyChanged()
}

// LayoutManager returns the current item geometry policy.
func (l *ListView) LayoutManager() LayoutManager {
	return l.layoutManager
}

// ItemCount returns the adapter's item count, zero when no adapter is set.
func (l *ListView) ItemCount() int {
	if l.adapter == nil {
		return 0
	}
	return l.adapter.ItemCount()
}

// FirstVisiblePosition returns the adapter position of the first item whose
// row intersects the viewport top.
func (l *ListView) FirstVisiblePosition() int {
	extent := l.layoutManager.RowExtent()
	if extent <= 0 {
		return 0
	}
	count := l.ItemCount()
	if count == 0 {
		return 0
	}
	row := int(math.Floor(l.controller.Offset() / extent))
	position := row * l.layoutManager.SpanCount()
	if position < 0 {
		position = 0
	}
	if position > count-1 {
		position = count - 1
	}
	return position
}

// ContentExtent returns the total scrollable content height.
func (l *ListView) ContentExtent() float64 {
	return float64(l.rowCount()) * l.layoutManager.RowExtent()
}

// ViewportExtent returns the last laid-out viewport height.
func (l *ListView) ViewportExtent() float64 {
	return l.controller.ViewportExtent()
}

// ScrollFraction returns the scroll position as a fraction in [0, 1].
func (l *ListView) ScrollFraction() float64 {
	max := l.controller.MaxScrollExtent()
	if max <= 0 {
		return 0
	}
	return widgets.Clamp(l.controller.Offset()/max, 0, 1)
}

// JumpToFraction scrolls to the given fraction of the scrollable range.
func (l *ListView) JumpToFraction(fraction float64) {
	fraction = widgets.Clamp(fraction, 0, 1)
	l.controller.JumpTo(fraction * l.controller.MaxScrollExtent())
}

// JumpToPosition scrolls so the row containing the given adapter position
// sits at the viewport top, clamped to the scrollable range.
func (l *ListView) JumpToPosition(position int) {
	count := l.ItemCount()
	if count == 0 {
		return
	}
	if position < 0 {
		position = 0
	}
	if position > count-1 {
		position = count - 1
	}
	row := position / l.layoutManager.SpanCount()
	offset := float64(row) * l.layoutManager.RowExtent()
	if max := l.ContentExtent() - l.ViewportExtent(); offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	l.controller.JumpTo(offset)
}

// PositionAtFraction returns the adapter position the given scroll fraction
// lands on. Used for bubble labels during handle drags.
func (l *ListView) PositionAtFraction(fraction float64) int {
	count := l.ItemCount()
	if count == 0 {
		return 0
	}
	fraction = widgets.Clamp(fraction, 0, 1)
	position := int(fraction * float64(count))
	if position >= count {
		position = count - 1
	}
	return position
}

// Build renders the list content. Rows outside the viewport plus cache
// region are not built.
func (l *ListView) Build(ctx core.BuildContext) core.Widget {
	adapter := l.adapter
	span := l.layoutManager.SpanCount()
	count := l.ItemCount()
	return widgets.ListViewBuilder{
		ItemCount:   l.rowCount(),
		ItemExtent:  l.layoutManager.RowExtent(),
		CacheExtent: l.layoutManager.RowExtent() * 2,
		Controller:  l.controller,
		ItemBuilder: func(ctx core.BuildContext, row int) core.Widget {
			if adapter == nil {
				return nil
			}
			if span <= 1 {
				return adapter.Item(ctx, row)
			}
			start := row * span
			end := start + span
			if end > count {
				end = count
			}
			cells := make([]core.Widget, 0, span)
			for position := start; position < end; position++ {
				cells = append(cells, adapter.Item(ctx, position))
			}
			return widgets.Row{Children: cells}
		},
	}
}

func (l *ListView) rowCount() int {
	count := l.ItemCount()
	if count == 0 {
		return 0
	}
	span := l.layoutManager.SpanCount()
	return (count + span - 1) / span
}

func (l *ListView) setOnChanged(fn func()) {
	l.onChanged = fn
}

func (l *ListView) notifyChanged() {
	if l.onChanged != nil {
		l.onChanged()
	}
}
