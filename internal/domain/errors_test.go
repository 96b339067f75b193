package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "yamldates.load",
		Kind: KindInvalidConfig,
		Path: "dates/demo.yaml",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindInvalidConfig {
		t.Fatalf("expected kind %s", KindInvalidConfig)
	}
	if !strings.Contains(err.Error(), "path=dates/demo.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestOpErrorNil(t *testing.T) {
	var err *OpError
	if err.Error() != "<nil>" {
		t.Fatalf("expected <nil>, got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}

func TestInvalidArgumentClassification(t *testing.T) {
	err := invalidArgument("domain.test", "value %d", 13)

	if !IsKind(err, KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected errors.Is(ErrInvalidArgument)")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("did not expect KindNotFound")
	}
	if IsKind(errors.New("plain"), KindInvalidArgument) {
		t.Fatalf("plain errors carry no kind")
	}
}
