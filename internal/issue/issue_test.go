// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestGet_KnownIds(t *testing.T) {
	t.Parallel()
	for _, id := range Ids() {
		i := Get(id)
		if i == nil {
			t.Fatalf("Get(%d) returned nil", id)
		}
		if i.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, i.Id())
		}
		if strings.TrimSpace(string(i.MarkdownMsg())) == "" {
			t.Errorf("issue %d has empty message", id)
		}
	}
}

func TestGet_UnknownId(t *testing.T) {
	t.Parallel()
	if Get(Id(9999)) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestValues_CoversAllIds(t *testing.T) {
	t.Parallel()
	if len(Values()) != len(Ids()) {
		t.Errorf("Values() length %d != Ids() length %d", len(Values()), len(Ids()))
	}
}

func TestActionableError_Error(t *testing.T) {
	t.Parallel()
	cause := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("generate module map").
		WithResource("/build/Foo/module.modulemap").
		Wrap(cause).
		Build()
	got := err.Error()
	want := "failed to generate module map: /build/Foo/module.modulemap: permission denied"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestActionableError_FormatSuggestions(t *testing.T) {
	t.Parallel()
	err := NewErrorContext().
		WithOperation("load manifest").
		WithSuggestion("Run 'modmap init' to create one").
		Build()
	got := err.Format(false)
	if !strings.Contains(got, "• Run 'modmap init' to create one") {
		t.Errorf("suggestions missing from %q", got)
	}
	if !err.HasSuggestions() {
		t.Error("HasSuggestions() = false")
	}
}

func TestActionableError_FormatVerboseChain(t *testing.T) {
	t.Parallel()
	inner := errors.New("disk full")
	err := NewErrorContext().
		WithOperation("write descriptor").
		Wrap(inner).
		Build()
	got := err.Format(true)
	if !strings.Contains(got, "Error chain:") || !strings.Contains(got, "disk full") {
		t.Errorf("verbose chain missing from %q", got)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	t.Parallel()
	if NewErrorContext().Build() != nil {
		t.Error("Build without operation must return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError without operation must return nil")
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()
	if WrapWithOperation(nil, "anything") != nil {
		t.Error("wrapping nil must return nil")
	}
	err := WrapWithOperation(errors.New("boom"), "resolve linkage")
	if err == nil || !strings.Contains(err.Error(), "resolve linkage") {
		t.Errorf("unexpected: %v", err)
	}
}
