package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorHierarchy(t *testing.T) {
	// Entity-specific errors must match their generic kind
	if !errors.Is(ErrUserNotFound, ErrNotFound) {
		t.Error("ErrUserNotFound should wrap ErrNotFound")
	}
	if !errors.Is(ErrTaskNotFound, ErrNotFound) {
		t.Error("ErrTaskNotFound should wrap ErrNotFound")
	}
	if !errors.Is(ErrUsernameExists, ErrDuplicate) {
		t.Error("ErrUsernameExists should wrap ErrDuplicate")
	}
	if !errors.Is(ErrDuplicateTitle, ErrDuplicate) {
		t.Error("ErrDuplicateTitle should wrap ErrDuplicate")
	}

	// Kinds must not bleed into each other
	if errors.Is(ErrTaskNotFound, ErrDuplicate) {
		t.Error("ErrTaskNotFound should not match ErrDuplicate")
	}
}

func TestIsNotFoundError(t *testing.T) {
	wrapped := fmt.Errorf("lookup failed: %w", ErrTaskNotFound)

	if !IsNotFoundError(ErrNotFound) {
		t.Error("Expected IsNotFoundError to match ErrNotFound")
	}
	if !IsNotFoundError(wrapped) {
		t.Error("Expected IsNotFoundError to match a wrapped ErrTaskNotFound")
	}
	if IsNotFoundError(ErrDuplicateTitle) {
		t.Error("Expected IsNotFoundError to reject duplicate errors")
	}
	if IsNotFoundError(nil) {
		t.Error("Expected IsNotFoundError to reject nil")
	}
}

func TestIsDuplicateError(t *testing.T) {
	wrapped := fmt.Errorf("insert failed: %w", ErrDuplicateTitle)

	if !IsDuplicateError(wrapped) {
		t.Error("Expected IsDuplicateError to match a wrapped ErrDuplicateTitle")
	}
	if IsDuplicateError(ErrTaskNotFound) {
		t.Error("Expected IsDuplicateError to reject not found errors")
	}
}

func TestStoreError(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewStoreError("task", "insert", "exec failed", inner)

	if !errors.Is(err, inner) {
		t.Error("Expected StoreError to unwrap to the original error")
	}

	msg := err.Error()
	for _, want := range []string{"task", "insert", "exec failed", "connection refused"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected error message to contain %q, got %q", want, msg)
		}
	}

	// Without a wrapped error the message still names the operation
	bare := NewStoreError("user", "get", "bad state", nil)
	if !strings.Contains(bare.Error(), "get operation on user failed") {
		t.Errorf("Unexpected message: %q", bare.Error())
	}
}
