package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "gateway.fetch",
		Kind: KindFetch,
		Path: "ipfs://bafy...",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindFetch {
		t.Fatalf("expected kind %s, got %s", KindFetch, got.Kind)
	}
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "typetable.load", Kind: KindInvalidConfig}

	if !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected IsKind to match")
	}
	if IsKind(err, KindFetch) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
	if IsKind(errors.New("plain"), KindFetch) {
		t.Fatalf("expected IsKind to reject non-OpError")
	}
}

func TestRenderErrorMessage(t *testing.T) {
	err := NewRenderError(StageRendering, "boom")

	if !strings.Contains(err.Error(), "rendering") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}
