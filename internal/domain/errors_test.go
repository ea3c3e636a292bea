package domain

import (
	"errors"
	"testing"
)

func TestOpError_Error(t *testing.T) {
	base := errors.New("boom")

	e := &OpError{Op: "config.load_bench", Kind: KindNotFound, Path: "/tmp/x.yml", Err: base}
	got := e.Error()
	want := "config.load_bench: not_found (path=/tmp/x.yml): boom"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	e2 := &OpError{Op: "benchstore.write", Kind: KindExecution}
	if got := e2.Error(); got != "benchstore.write: execution" {
		t.Errorf("Error() = %q", got)
	}

	var nilErr *OpError
	if got := nilErr.Error(); got != "<nil>" {
		t.Errorf("nil Error() = %q", got)
	}
}

func TestOpError_Unwrap(t *testing.T) {
	base := errors.New("boom")
	e := &OpError{Op: "op", Kind: KindExecution, Err: base}

	if !errors.Is(e, base) {
		t.Error("errors.Is should reach the wrapped error")
	}
}

func TestIsKind(t *testing.T) {
	e := &OpError{Op: "op", Kind: KindInvalidConfig}

	if !IsKind(e, KindInvalidConfig) {
		t.Error("IsKind should match the kind")
	}
	if IsKind(e, KindNotFound) {
		t.Error("IsKind should not match a different kind")
	}
	if IsKind(errors.New("plain"), KindExecution) {
		t.Error("IsKind should be false for non-OpError")
	}
}
