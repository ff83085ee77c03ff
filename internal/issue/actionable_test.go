// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "write tables"},
			expected: "failed to write tables",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "write tables", Resource: "types.adoc"},
			expected: "failed to write tables: types.adoc",
		},
		{
			name:     "full context",
			err:      &ActionableError{Operation: "load configuration", Resource: "config.cue", Cause: errors.New("bad value")},
			expected: "failed to load configuration: config.cue: bad value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying error")
	err := NewErrorContext().WithOperation("test").Wrap(fmt.Errorf("wrapped: %w", cause)).BuildError()

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through the chain")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
	if ae.Operation != "test" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	err := NewErrorContext().
		WithOperation("run sanity checks").
		WithResource("lp64d").
		WithSuggestion("Set CC").
		WithSuggestion("Inspect the checks").
		Wrap(fmt.Errorf("outer: %w", errors.New("inner"))).
		Build()

	brief := err.Format(false)
	if !strings.Contains(brief, "\n  • Set CC") || !strings.Contains(brief, "\n  • Inspect the checks") {
		t.Errorf("Format(false) missing suggestions:\n%s", brief)
	}
	if strings.Contains(brief, "Error chain") {
		t.Error("Format(false) should not include the error chain")
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "1. outer: inner") || !strings.Contains(verbose, "2. inner") {
		t.Errorf("Format(true) missing error chain:\n%s", verbose)
	}
}

func TestErrorContext_BuildWithoutOperation(t *testing.T) {
	t.Parallel()

	if NewErrorContext().WithResource("x").Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil interface", err)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "x") != nil {
		t.Error("WrapWithOperation(nil) should return nil")
	}
	err := WrapWithOperation(errors.New("boom"), "write tables")
	if err.Error() != "failed to write tables: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
}
