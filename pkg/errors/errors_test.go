package errors

import (
	"errors"
	"strings"
	"testing"
)

// captureHandler records reported errors for assertions.
type captureHandler struct {
	errs   []*EngineError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *EngineError) { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError)  { h.panics = append(h.panics, err) }

func TestErrorKind_String(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown: "unknown",
		KindMount:   "mount",
		KindRender:  "render",
		KindState:   "state",
		KindPanic:   "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestEngineError_ErrorAndUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &EngineError{Op: "vdom.Mount", Kind: KindMount, Err: inner}

	if !strings.Contains(err.Error(), "vdom.Mount") {
		t.Errorf("expected op in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "[mount]") {
		t.Errorf("expected kind in message, got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to match wrapped error")
	}
}

func TestMountError_Error(t *testing.T) {
	err := &MountError{Reason: "component constructor is nil"}
	if err.Error() != "mount: component constructor is nil" {
		t.Errorf("unexpected message %q", err.Error())
	}

	err = &MountError{Reason: "not a component", Component: "main.Counter"}
	if !strings.Contains(err.Error(), "main.Counter") {
		t.Errorf("expected component name in message, got %q", err.Error())
	}
}

func TestReport_SetsTimestampAndDispatches(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(&EngineError{Op: "test", Kind: KindRender, Err: errors.New("x")})

	if len(handler.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(handler.errs))
	}
	if handler.errs[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestReport_NilIsNoop(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)

	if len(handler.errs) != 0 || len(handler.panics) != 0 {
		t.Error("expected nil reports to be dropped")
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	handler := &captureHandler{}
	SetHandler(handler)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("recovered value")
	}()

	if len(handler.panics) != 1 {
		t.Fatalf("expected 1 panic report, got %d", len(handler.panics))
	}
	p := handler.panics[0]
	if p.Value != "recovered value" {
		t.Errorf("expected panic value to be captured, got %v", p.Value)
	}
	if p.Op != "test.op" {
		t.Errorf("expected op 'test.op', got %q", p.Op)
	}
	if p.StackTrace == "" {
		t.Error("expected stack trace to be captured")
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}
