// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"modmap-cli/internal/issue"
)

func TestNewServiceError_PanicsOnNilErr(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil Err")
		}
	}()
	newServiceError(nil, issue.ManifestNotFoundId, "")
}

func TestServiceError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()
	inner := errors.New("boom")
	svcErr := newServiceError(inner, 0, "")
	if svcErr.Error() != "boom" {
		t.Errorf("Error() = %q", svcErr.Error())
	}
	if !errors.Is(svcErr, inner) {
		t.Error("Unwrap chain broken")
	}
}

func TestRenderServiceError_NilIsNoop(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	renderServiceError(&sb, nil)
	if sb.Len() != 0 {
		t.Errorf("unexpected output: %q", sb.String())
	}
}

func TestRenderServiceError_StyledMessageOnly(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	renderServiceError(&sb, newServiceError(errors.New("x"), 0, "styled message\n"))
	if !strings.Contains(sb.String(), "styled message") {
		t.Errorf("styled message missing from %q", sb.String())
	}
}

func TestRenderServiceError_IssueHelp(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	renderServiceError(&sb, newServiceError(errors.New("x"), issue.ManifestNotFoundId, ""))
	if !strings.Contains(sb.String(), "modmap init") {
		t.Errorf("issue help text missing from output")
	}
}
