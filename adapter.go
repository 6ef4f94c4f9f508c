package fastscroll

import (
	"github.com/go-drift/fastscroll/pkg/core"
)

// Adapter supplies list content by position.
//
// Adapters are plain data-to-widget mappers; the list owns scrolling and
// virtualization. An adapter that also implements [SectionIndexer] enables
// the section bubble on the fast scroller.
type Adapter interface {
	// ItemCount returns the number of items in the data set.
	ItemCount() int
	// Item builds the widget for the item at the given position.
	Item(ctx core.BuildContext, position int) core.Widget
}

// SectionIndexer exposes section structure for bubble labels.
//
// Positions map onto sections monotonically: PositionForSection(s) is the
// first position of section s, and SectionForPosition is its inverse.
type SectionIndexer interface {
	// Sections returns the ordered section labels.
	Sections() []string
	// SectionForPosition returns the section index containing position.
	SectionForPosition(position int) int
	// PositionForSection returns the first position of the given section.
	PositionForSection(section int) int
}

// LayoutManager determines item geometry for a list.
type LayoutManager interface {
	// SpanCount returns the number of items per row.
	SpanCount() int
	// RowExtent returns the fixed height of one row.
	RowExtent() float64
}

const defaultRowExtent = 48.0

// LinearLayoutManager lays items out one per row.
type LinearLayoutManager struct {
	// ItemHeight is the fixed height of each item. Zero uses the default.
	ItemHeight float64
}

func (m LinearLayoutManager) SpanCount() int { return 1 }

func (m LinearLayoutManager) RowExtent() float64 {
	if m.ItemHeight > 0 {
		return m.ItemHeight
	}
	return defaultRowExtent
}

// GridLayoutManager lays items out in rows of Spans columns.
type GridLayoutManager struct {
	// Spans is the number of columns. Values below 1 are treated as 1.
	Spans int
	// ItemHeight is the fixed height of each row. Zero uses the default.
	ItemHeight float64
}

func (m GridLayoutManager) SpanCount() int {
	if m.Spans < 1 {
		return 1
	}
	return m.Spans
}

func (m GridLayoutManager) RowExtent() float64 {
	if m.ItemHeight > 0 {
		return m.ItemHeight
	}
	return defaultRowExtent
}
