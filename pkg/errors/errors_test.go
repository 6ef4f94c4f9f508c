package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/fastscroll/pkg/errors"
)

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := &errors.Error{
		Op:   "fastscroll.LoadTheme",
		Kind: errors.KindConfig,
		Err:  cause,
	}

	msg := err.Error()
	if !strings.Contains(msg, "fastscroll.LoadTheme") {
		t.Errorf("message %q missing op", msg)
	}
	if !strings.Contains(msg, "underlying failure") {
		t.Errorf("message %q missing cause", msg)
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap must expose the cause")
	}
}

func TestErrorKind_String(t *testing.T) {
	kinds := map[errors.ErrorKind]string{
		errors.KindConfig: "config",
		errors.KindPanic:  "panic",
		errors.KindBuild:  "build",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

type recordingHandler struct {
	errs   []*errors.Error
	panics []*errors.PanicError
	builds []*errors.BuildError
}

func (h *recordingHandler) HandleError(err *errors.Error)           { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError)      { h.panics = append(h.panics, err) }
func (h *recordingHandler) HandleBuildError(err *errors.BuildError) { h.builds = append(h.builds, err) }

func TestReport_RoutesToHandler(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	errors.Report(&errors.Error{Op: "op", Kind: errors.KindRender})
	errors.ReportPanic(&errors.PanicError{Op: "op", Value: "bang"})
	errors.ReportBuildError(&errors.BuildError{Widget: "W", Recovered: "bang"})

	if len(handler.errs) != 1 || len(handler.panics) != 1 || len(handler.builds) != 1 {
		t.Fatalf("handler saw %d/%d/%d reports, want 1/1/1",
			len(handler.errs), len(handler.panics), len(handler.builds))
	}
}

func TestReport_NilIsIgnored(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	errors.Report(nil)
	errors.ReportPanic(nil)
	errors.ReportBuildError(nil)

	if len(handler.errs)+len(handler.panics)+len(handler.builds) != 0 {
		t.Error("nil reports must be dropped")
	}
}

func TestReport_StampsTimestamp(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	errors.Report(&errors.Error{Op: "op"})
	if handler.errs[0].Timestamp.Equal(time.Time{}) {
		t.Error("zero timestamp must be stamped at report time")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := errors.CaptureStack()
	if !strings.Contains(stack, "TestCaptureStack") {
		t.Error("stack trace must include the calling frame")
	}
}
