// SPDX-License-Identifier: MPL-2.0

package modulemap

import (
	"fmt"
	"os"
	"strings"

	"modmap-cli/internal/diag"
	"modmap-cli/pkg/fspath"
)

// Render produces the module map descriptor text for a plan. Content is fully
// determined by the decision: exactly one umbrella line appears, selected by
// the decision kind.
func Render(plan *Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s {\n", plan.Identifier)
	switch plan.Decision.Kind {
	case BareDirectory:
		fmt.Fprintf(&b, "    umbrella \"%s\"\n", plan.Decision.Path)
	default: // FlatHeader, NestedHeader
		fmt.Fprintf(&b, "    umbrella header \"%s\"\n", plan.Decision.Path)
	}
	fmt.Fprintf(&b, "    link \"%s\"\n", plan.Identifier)
	b.WriteString("    export *\n")
	b.WriteString("}\n")
	return b.String()
}

// Write persists the descriptor for a plan, creating the output directory
// (and any missing ancestors) first. The open/write/close sequence is one
// scoped operation: the file is created exclusively, and a failed write
// removes the partial file, so a concurrent reader never observes a
// half-written descriptor as "already exists". A concurrent writer winning
// the creation race is benign (the content is identical either way) and is
// treated as success.
//
// Write panics when the output directory is not absolute: that indicates a
// miscomputed build-tree path upstream, a caller bug rather than bad input.
func Write(plan *Plan) error {
	outputDir := fspath.Dir(plan.DescriptorPath)
	if !fspath.IsAbs(outputDir) {
		panic(fmt.Sprintf("modulemap: output directory %q is not absolute", outputDir))
	}

	if err := os.MkdirAll(outputDir.String(), 0o755); err != nil {
		return &WriteError{Path: outputDir, Cause: err}
	}

	f, err := os.OpenFile(plan.DescriptorPath.String(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return &WriteError{Path: plan.DescriptorPath, Cause: err}
	}

	if _, err := f.WriteString(Render(plan)); err != nil {
		_ = f.Close()
		_ = os.Remove(plan.DescriptorPath.String())
		return &WriteError{Path: plan.DescriptorPath, Cause: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(plan.DescriptorPath.String())
		return &WriteError{Path: plan.DescriptorPath, Cause: err}
	}
	return nil
}

// Generate runs classification and, when a plan results, writes the
// descriptor. It is the per-module entry point used by the build driver;
// diagnostics are returned for the caller to render.
func Generate(req Request) ([]diag.Diagnostic, error) {
	plan, diags, err := Classify(req)
	if err != nil || plan == nil {
		return diags, err
	}
	return diags, Write(plan)
}
