package core_test

import (
	"testing"

	"github.com/go-drift/fastscroll/pkg/core"
	"github.com/go-drift/fastscroll/pkg/errors"
	"github.com/go-drift/fastscroll/pkg/layout"
	fstest "github.com/go-drift/fastscroll/pkg/testing"
	"github.com/go-drift/fastscroll/pkg/widgets"
)

type probe struct {
	core.StatelessBase
	OnBuild func()
	Child   core.Widget
}

func (p probe) Build(ctx core.BuildContext) core.Widget {
	if p.OnBuild != nil {
		p.OnBuild()
	}
	return p.Child
}

type counterWidget struct {
	core.StatefulBase
	OnState func(*counterState)
}

func (c counterWidget) CreateState() core.State {
	return &counterState{}
}

type counterState struct {
	core.StateBase
	count    int
	builds   int
	disposed bool
}

func (s *counterState) InitState() {
	if widget, ok := s.Element().Widget().(counterWidget); ok && widget.OnState != nil {
		widget.OnState(s)
	}
}

func (s *counterState) Build(ctx core.BuildContext) core.Widget {
	s.builds++
	return widgets.SizedBox{Width: 10, Height: 10}
}

func (s *counterState) Dispose() {
	s.disposed = true
	s.StateBase.Dispose()
}

func TestStatelessElement_BuildsChild(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	builds := 0
	err := tester.PumpWidget(probe{
		OnBuild: func() { builds++ },
		Child:   widgets.SizedBox{Width: 10, Height: 10},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if builds != 1 {
		t.Errorf("builds = %d, want 1", builds)
	}
}

func TestStatefulElement_SetStateRebuilds(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	var state *counterState
	err := tester.PumpWidget(counterWidget{
		OnState: func(s *counterState) { state = s },
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}
	if state == nil {
		t.Fatal("InitState did not run")
	}
	if state.builds != 1 {
		t.Fatalf("builds = %d, want 1", state.builds)
	}

	state.SetState(func() { state.count++ })
	tester.Pump()
	if state.builds != 2 {
		t.Errorf("builds after SetState = %d, want 2", state.builds)
	}
}

func TestStatefulElement_DisposeOnUnmount(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	var state *counterState
	err := tester.PumpWidget(counterWidget{
		OnState: func(s *counterState) { state = s },
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	tester.Unmount()
	if !state.disposed {
		t.Error("state must be disposed on unmount")
	}

	// SetState after disposal is a no-op, never a panic.
	state.SetState(func() { state.count++ })
}

type orderWidget struct {
	core.StatefulBase
	name  string
	child core.Widget
	log   *[]string
}

func (w orderWidget) CreateState() core.State {
	return &orderState{}
}

type orderState struct {
	core.StateBase
}

func (s *orderState) Build(ctx core.BuildContext) core.Widget {
	widget := s.Element().Widget().(orderWidget)
	if widget.child != nil {
		return widget.child
	}
	return widgets.SizedBox{Width: 10, Height: 10}
}

func (s *orderState) Dispose() {
	widget := s.Element().Widget().(orderWidget)
	*widget.log = append(*widget.log, widget.name)
	s.StateBase.Dispose()
}

func TestStatefulElement_DisposeBeforeChildUnmount(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	var log []string
	err := tester.PumpWidget(orderWidget{
		name: "outer",
		log:  &log,
		child: orderWidget{
			name: "inner",
			log:  &log,
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	tester.Unmount()
	if len(log) != 2 || log[0] != "outer" || log[1] != "inner" {
		t.Errorf("dispose order = %v, want [outer inner]", log)
	}
}

type panicky struct {
	core.StatelessBase
}

func (panicky) Build(ctx core.BuildContext) core.Widget {
	panic("boom")
}

type capturingHandler struct {
	errors.LogHandler
	buildErrs []*errors.BuildError
}

func (h *capturingHandler) HandleBuildError(err *errors.BuildError) {
	h.buildErrs = append(h.buildErrs, err)
}

func TestElement_BuildPanicIsReported(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	handler := &capturingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	// A panicking build must not take the harness down.
	if err := tester.PumpWidget(panicky{}); err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	if len(handler.buildErrs) != 1 {
		t.Fatalf("build errors reported = %d, want 1", len(handler.buildErrs))
	}
	if handler.buildErrs[0].Recovered != "boom" {
		t.Errorf("recovered = %v, want boom", handler.buildErrs[0].Recovered)
	}
}

func TestFindAncestor(t *testing.T) {
	tester := fstest.NewWidgetTesterWithT(t)

	err := tester.PumpWidget(probe{
		Child: widgets.Padding{
			Padding: layout.EdgeInsetsAll(4),
			Child:   widgets.SizedBox{Width: 10, Height: 10},
		},
	})
	if err != nil {
		t.Fatalf("PumpWidget: %v", err)
	}

	inner := tester.Find(fstest.ByType[widgets.SizedBox]()).First()
	found := inner.FindAncestor(func(e core.Element) bool {
		_, ok := e.Widget().(probe)
		return ok
	})
	if found == nil {
		t.Error("ancestor probe not found")
	}
}
