package main

import (
	"errors"
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func TestWrapOperationError(t *testing.T) {
	base := errors.New("permission denied")
	err := WrapOperationError("save deck", base)
	if err.Error() != "failed to save deck: permission denied" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match the cause")
	}
	if WrapOperationError("save deck", nil) != nil {
		t.Error("nil error should stay nil")
	}
}

func TestWrapOperationErrorProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		op := rapid.String().Draw(t, "op")
		msg := rapid.String().Draw(t, "msg")
		base := errors.New(msg)

		err := WrapOperationError(op, base)
		if want := fmt.Sprintf("failed to %s: %s", op, msg); err.Error() != want {
			t.Fatalf("Error() = %q, want %q", err.Error(), want)
		}
		if errors.Unwrap(err) != base {
			t.Fatal("Unwrap should return the cause")
		}
	})
}
