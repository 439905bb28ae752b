package utils

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestStructuredErrorUnwrap(t *testing.T) {
	root := os.ErrPermission
	err := NewFileSystemError("read src/main.go", root)

	if !errors.Is(err, os.ErrPermission) {
		t.Error("structured error should unwrap to its root cause")
	}

	var se *StructuredError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find the structured error")
	}
	if se.Category != CategoryFileSystem {
		t.Errorf("Expected filesystem category, got %v", se.Category)
	}
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCategory
	}{
		{NewConfigurationError("missing key", nil), CategoryConfiguration},
		{NewUserInputError("no task"), CategoryUser},
		{NewWorkspaceError("no workspace", nil), CategoryWorkspace},
		{NewNetworkError("request failed", nil), CategoryNetwork},
		{fmt.Errorf("plain error"), CategorySystem},
		{fmt.Errorf("wrapped: %w", NewNetworkError("inner", nil)), CategoryNetwork},
	}

	for _, c := range cases {
		if got := CategoryOf(c.err); got != c.want {
			t.Errorf("CategoryOf(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	err := NewNetworkError("completion request failed", errors.New("connection refused"))
	msg := UserMessage(err)
	if msg != "completion request failed: connection refused" {
		t.Errorf("Unexpected user message: %q", msg)
	}

	plain := errors.New("something odd")
	if UserMessage(plain) != "something odd" {
		t.Errorf("Plain errors should pass through, got %q", UserMessage(plain))
	}
}
