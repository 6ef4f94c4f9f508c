package fastscroll_test

import (
	"testing"

	fastscroll "github.com/go-drift/fastscroll"
)

func TestListView_Defaults(t *testing.T) {
	list := fastscroll.NewListView()
	if list.Controller() == nil {
		t.Fatal("list must own a scroll controller")
	}
	if _, ok := list.LayoutManager().(fastscroll.LinearLayoutManager); !ok {
		t.Fatalf("default layout manager = %T, want linear", list.LayoutManager())
	}
	if list.ItemCount() != 0 {
		t.Errorf("ItemCount with no adapter = %d, want 0", list.ItemCount())
	}
	if list.ScrollFraction() != 0 {
		t.Errorf("ScrollFraction with no content = %v, want 0", list.ScrollFraction())
	}
}

func TestListView_ContentExtentLinear(t *testing.T) {
	list := fastscroll.NewListView()
	list.SetAdapter(plainAdapter{count: 100})
	list.SetLayoutManager(fastscroll.LinearLayoutManager{ItemHeight: 56})

	if got, want := list.ContentExtent(), 100*56.0; got != want {
		t.Errorf("ContentExtent = %v, want %v", got, want)
	}
}

func TestListView_ContentExtentGrid(t *testing.T) {
	list := fastscroll.NewListView()
	list.SetAdapter(plainAdapter{count: 10})
	list.SetLayoutManager(fastscroll.GridLayoutManager{Spans: 3, ItemHeight: 40})

	// 10 items in rows of 3 -> 4 rows.
	if got, want := list.ContentExtent(), 4*40.0; got != want {
		t.Errorf("ContentExtent = %v, want %v", got, want)
	}
}

func TestListView_NilLayoutManagerResets(t *testing.T) {
	list := fastscroll.NewListView()
	list.SetLayoutManager(fastscroll.GridLayoutManager{Spans: 2})
	list.SetLayoutManager(nil)
	if _, ok := list.LayoutManager().(fastscroll.LinearLayoutManager); !ok {
		t.Fatalf("layout manager after nil = %T, want linear", list.LayoutManager())
	}
}

func TestListView_PositionAtFraction(t *testing.T) {
	list := fastscroll.NewListView()
	list.SetAdapter(plainAdapter{count: 130})

	cases := []struct {
		fraction float64
		want     int
	}{
		{0, 0},
		{1, 129},
		{0.5, 65},
		{-1, 0},
		{2, 129},
	}
	for _, tc := range cases {
		if got := list.PositionAtFraction(tc.fraction); got != tc.want {
			t.Errorf("PositionAtFraction(%v) = %d, want %d", tc.fraction, got, tc.want)
		}
	}
}

func TestListView_JumpToPosition(t *testing.T) {
	list := fastscroll.NewListView()

	// Without an adapter nothing moves.
	list.JumpToPosition(5)
	if got := list.Controller().Offset(); got != 0 {
		t.Errorf("offset with no adapter = %v, want 0", got)
	}

	list.SetAdapter(plainAdapter{count: 100})
	list.SetLayoutManager(fastscroll.LinearLayoutManager{ItemHeight: 50})

	list.JumpToPosition(10)
	if got := list.Controller().Offset(); got != 500 {
		t.Errorf("offset = %v, want 500", got)
	}

	list.JumpToPosition(-3)
	if got := list.Controller().Offset(); got != 0 {
		t.Errorf("negative position offset = %v, want 0", got)
	}

	// Past-the-end positions clamp to the last row.
	list.JumpToPosition(500)
	if got := list.Controller().Offset(); got != 99*50.0 {
		t.Errorf("clamped offset = %v, want %v", got, 99*50.0)
	}
}

func TestLayoutManager_Defaults(t *testing.T) {
	linear := fastscroll.LinearLayoutManager{}
	if linear.SpanCount() != 1 {
		t.Errorf("linear SpanCount = %d, want 1", linear.SpanCount())
	}
	if linear.RowExtent() <= 0 {
		t.Error("linear RowExtent must default positive")
	}

	grid := fastscroll.GridLayoutManager{}
	if grid.SpanCount() != 1 {
		t.Errorf("grid SpanCount with zero Spans = %d, want 1", grid.SpanCount())
	}

	grid = fastscroll.GridLayoutManager{Spans: 4, ItemHeight: 72}
	if grid.SpanCount() != 4 {
		t.Errorf("grid SpanCount = %d, want 4", grid.SpanCount())
	}
	if grid.RowExtent() != 72 {
		t.Errorf("grid RowExtent = %v, want 72", grid.RowExtent())
	}
}
