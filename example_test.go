package fastscroll_test

import (
	"fmt"

	"github.com/go-drift/fastscroll"
	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

type contactAdapter struct {
	names []string
}

func (a contactAdapter) ItemCount() int { return len(a.names) }

func (a contactAdapter) Item(ctx core.BuildContext, position int) core.Widget {
	return widgets.Text{Content: a.names[position]}
}

func (a contactAdapter) Sections() []string {
	seen := map[byte]bool{}
	var sections []string
	for _, name := range a.names {
		if !seen[name[0]] {
			seen[name[0]] = true
			sections = append(sections, string(name[0]))
		}
	}
	return sections
}

func (a contactAdapter) SectionForPosition(position int) int {
	sections := a.Sections()
	for i, s := range sections {
		if s[0] == a.names[position][0] {
			return i
		}
	}
	return 0
}

func (a contactAdapter) PositionForSection(section int) int {
	target := a.Sections()[section][0]
	for i, name := range a.names {
		if name[0] == target {
			return i
		}
	}
	return 0
}

// This example shows how to create a fast-scrollable list with section labels.
func ExampleNewFastScrollView() {
	adapter := contactAdapter{names: []string{"Ada", "Alan", "Barbara", "Grace"}}

	view := fastscroll.NewFastScrollView(fastscroll.Config{
		Adapter: adapter,
	})

	fmt.Println(view.List().ItemCount())
	fmt.Println(view.AttachmentState())
	// Output:
	// 4
	// detached
}

// This example shows how to restyle the scroll indicator after construction.
func ExampleFastScrollView_styling() {
	view := fastscroll.NewFastScrollView(fastscroll.Config{})

	view.SetTrackVisible(true)
	view.SetHideScrollbar(true)
	view.SetBubbleVisible(true, false)
	_ = view
}
