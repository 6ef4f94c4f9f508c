package fastscroll_test

import (
	"errors"
	"testing"

	fastscroll "github.com/go-drift/fastscroll"
)

func TestScroller_AttachDetach(t *testing.T) {
	scroller := fastscroll.NewScroller(nil)
	if scroller.Attached() {
		t.Fatal("new scroller must start detached")
	}

	list := fastscroll.NewListView()
	scroller.Attach(list)
	if !scroller.Attached() {
		t.Fatal("Attach must bind the list")
	}

	scroller.Detach()
	if scroller.Attached() {
		t.Fatal("Detach must release the list")
	}

	// Detach is idempotent.
	scroller.Detach()
}

func TestScroller_Rebind(t *testing.T) {
	scroller := fastscroll.NewScroller(nil)
	first := fastscroll.NewListView()
	second := fastscroll.NewListView()

	scroller.Attach(first)
	scroller.Attach(second)
	if !scroller.Attached() {
		t.Fatal("rebinding must leave the scroller attached")
	}
}

func TestScroller_SectionLabelErrors(t *testing.T) {
	scroller := fastscroll.NewScroller(nil)

	if _, err := scroller.SectionLabelAt(0); !errors.Is(err, fastscroll.ErrDetached) {
		t.Errorf("detached: err = %v, want ErrDetached", err)
	}

	scroller.Attach(fastscroll.NewListView())
	if _, err := scroller.SectionLabelAt(0); !errors.Is(err, fastscroll.ErrNoSections) {
		t.Errorf("no indexer: err = %v, want ErrNoSections", err)
	}

	scroller.SetSectionIndexer(alphabetAdapter{perSection: 5})
	label, err := scroller.SectionLabelAt(67)
	if err != nil {
		t.Fatalf("SectionLabelAt(67): %v", err)
	}
	if label != "N" {
		t.Errorf("label = %q, want %q", label, "N")
	}
}

func TestScroller_SectionLabelClampsOutOfRange(t *testing.T) {
	scroller := fastscroll.NewScroller(nil)
	scroller.Attach(fastscroll.NewListView())
	scroller.SetSectionIndexer(alphabetAdapter{perSection: 5})

	label, err := scroller.SectionLabelAt(100000)
	if err != nil {
		t.Fatalf("SectionLabelAt: %v", err)
	}
	if label != "Z" {
		t.Errorf("past-the-end label = %q, want %q", label, "Z")
	}

	label, err = scroller.SectionLabelAt(-5)
	if err != nil {
		t.Fatalf("SectionLabelAt: %v", err)
	}
	if label != "A" {
		t.Errorf("negative label = %q, want %q", label, "A")
	}
}

func TestScroller_ScrollToSection(t *testing.T) {
	scroller := fastscroll.NewScroller(nil)
	if err := scroller.ScrollToSection(3); !errors.Is(err, fastscroll.ErrDetached) {
		t.Errorf("detached: err = %v, want ErrDetached", err)
	}

	list := fastscroll.NewListView()
	list.SetAdapter(alphabetAdapter{perSection: 5})
	scroller.Attach(list)
	if err := scroller.ScrollToSection(3); !errors.Is(err, fastscroll.ErrNoSections) {
		t.Errorf("no indexer: err = %v, want ErrNoSections", err)
	}

	scroller.SetSectionIndexer(alphabetAdapter{perSection: 5})
	if err := scroller.ScrollToSection(13); err != nil {
		t.Fatalf("ScrollToSection(13): %v", err)
	}
	if got := list.FirstVisiblePosition(); got != 65 {
		t.Errorf("first visible position = %d, want 65", got)
	}

	if err := scroller.ScrollToSection(100); err != nil {
		t.Fatalf("ScrollToSection(100): %v", err)
	}
	if got := list.FirstVisiblePosition(); got != 125 {
		t.Errorf("clamped section position = %d, want 125", got)
	}
}

func TestScroller_ThemeDefaults(t *testing.T) {
	scroller := fastscroll.NewScroller(nil)
	if !scroller.Enabled() {
		t.Error("scroller must default to enabled")
	}
	if scroller.Dragging() {
		t.Error("new scroller must not report a drag")
	}
}

func TestScroller_OpacityFollowsHideSetting(t *testing.T) {
	theme := fastscroll.DefaultTheme()
	theme.HideScrollbar = true
	scroller := fastscroll.NewScroller(theme)
	scroller.Attach(fastscroll.NewListView())
	if scroller.HandleOpacity() != 0 {
		t.Error("auto-hiding scroller must attach hidden")
	}

	visible := fastscroll.NewScroller(nil)
	visible.Attach(fastscroll.NewListView())
	if visible.HandleOpacity() != 1 {
		t.Error("persistent scroller must attach visible")
	}
}
