package app

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestOperationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OperationError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "op only",
			err:      &OperationError{Op: "save"},
			expected: "save",
		},
		{
			name:     "op and target",
			err:      &OperationError{Op: "open", Target: "/path/file.txt"},
			expected: "open /path/file.txt",
		},
		{
			name:     "op, target, and context",
			err:      &OperationError{Op: "open", Target: "/path/file.txt", Context: "permission denied"},
			expected: "open /path/file.txt (permission denied)",
		},
		{
			name:     "full error chain",
			err:      &OperationError{Op: "open", Target: "/path/file.txt", Context: "read failed", Err: errors.New("io error")},
			expected: "open /path/file.txt (read failed): io error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestOperationError_WithContext(t *testing.T) {
	err := NewOperationError("save", "/path/file.txt", nil)
	err = err.WithContext("disk full")

	if err.Context != "disk full" {
		t.Errorf("expected context 'disk full', got '%s'", err.Context)
	}

	var nilErr *OperationError
	if nilErr.WithContext("context") != nil {
		t.Error("expected nil result for nil receiver")
	}
}

func TestOperationError_Is(t *testing.T) {
	err := NewOperationError("save", "Untitled", ErrNoPath)

	if !errors.Is(err, ErrNoPath) {
		t.Error("errors.Is should match the wrapped sentinel")
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should not match an unrelated error")
	}
	if !errors.Is(err, err) {
		t.Error("errors.Is should match the same wrapper")
	}
	if errors.Is(err, NewOperationError("save", "Untitled", ErrNoPath)) {
		t.Error("errors.Is should not match a different wrapper")
	}
}

func TestComponentError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ComponentError
		expected string
	}{
		{"nil", nil, ""},
		{"component only", &ComponentError{Component: "backend"}, "backend"},
		{"component and action", &ComponentError{Component: "backend", Action: "init"}, "backend: init"},
		{"component and error", &ComponentError{Component: "clipboard", Err: errors.New("no xclip")}, "clipboard: no xclip"},
		{"full", NewComponentError("backend", "init", errors.New("no tty")), "backend: init: no tty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestComponentError_Unwrap(t *testing.T) {
	inner := errors.New("no tty")
	err := NewComponentError("backend", "init", inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestRecoveredPanicError(t *testing.T) {
	err := &RecoveredPanicError{Value: "boom", Stack: "goroutine 1"}
	msg := err.Error()
	if !strings.HasPrefix(msg, "panic: boom") || !strings.Contains(msg, "goroutine 1") {
		t.Errorf("Error() = %q", msg)
	}

	bare := &RecoveredPanicError{Value: 42}
	if bare.Error() != "panic: 42" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "panic: 42")
	}
}
