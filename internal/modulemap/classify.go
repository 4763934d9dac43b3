// SPDX-License-Identifier: MPL-2.0

package modulemap

import (
	"fmt"
	"os"
	"strings"

	"modmap-cli/internal/diag"
	"modmap-cli/pkg/fspath"
	"modmap-cli/pkg/types"
)

// Classify inspects a module's include directory and decides which umbrella
// strategy applies. It returns a nil *Plan with no error when there is
// nothing to generate: either the descriptor already exists at the expected
// output location, or the include directory is missing (advisory diagnostic,
// the module simply cannot be imported).
//
// The decision order is fixed, first match wins:
//
//  1. descriptor exists            -> nothing to do
//  2. include dir missing          -> warning, nothing to do
//  3. include/<id>.h               -> FlatHeader (no subdirectories allowed)
//  4. include/<id>/<id>.h          -> NestedHeader (exactly one subdirectory,
//     no top-level headers allowed)
//  5. otherwise                    -> BareDirectory (always valid)
//
// An umbrella header's presence silently changes what the compiler treats as
// the module interface, so conflicting sibling content fails closed with
// UnsupportedLayoutError instead of being ignored.
func Classify(req Request) (*Plan, []diag.Diagnostic, error) {
	descriptorPath := req.DescriptorPath()
	if fileExists(descriptorPath) {
		return nil, nil, nil
	}

	entries, err := os.ReadDir(req.IncludeDir.String())
	if err != nil {
		if os.IsNotExist(err) {
			d := diag.Warning(diag.CodeMissingIncludeDir,
				fmt.Sprintf("module %q has no public headers; it cannot be imported", req.DeclaredName),
				req.IncludeDir.String())
			return nil, []diag.Diagnostic{d}, nil
		}
		return nil, nil, fmt.Errorf("listing include directory %s: %w", req.IncludeDir, err)
	}

	// One listing, partitioned once. Only direct children matter.
	var headers, subdirs []string
	for _, entry := range entries {
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, entry.Name())
		case strings.HasSuffix(entry.Name(), HeaderSuffix):
			headers = append(headers, entry.Name())
		}
	}

	umbrellaName := req.Identifier.String() + HeaderSuffix

	// Flat case: include/<id>.h.
	if containsName(headers, umbrellaName) {
		if len(subdirs) > 0 {
			return nil, nil, &UnsupportedLayoutError{
				Module: req.DeclaredName,
				Detail: fmt.Sprintf("umbrella header %s cannot coexist with subdirectories under %s",
					umbrellaName, req.IncludeDir),
			}
		}
		plan := &Plan{
			Identifier:     req.Identifier,
			Decision:       Decision{Kind: FlatHeader, Path: fspath.JoinStr(req.IncludeDir, umbrellaName)},
			DescriptorPath: descriptorPath,
		}
		return plan, nil, nil
	}

	var diags []diag.Diagnostic
	diags = appendMismatchAdvisory(diags, req, req.IncludeDir)

	// Nested case: include/<id>/<id>.h.
	nestedDir := fspath.JoinStr(req.IncludeDir, req.Identifier.String())
	nestedUmbrella := fspath.JoinStr(nestedDir, umbrellaName)
	if fileExists(nestedUmbrella) {
		if len(subdirs) != 1 || len(headers) != 0 {
			return nil, diags, &UnsupportedLayoutError{
				Module: req.DeclaredName,
				Detail: fmt.Sprintf("nested umbrella header %s requires %s to contain exactly that directory and no top-level headers",
					nestedUmbrella, req.IncludeDir),
			}
		}
		plan := &Plan{
			Identifier:     req.Identifier,
			Decision:       Decision{Kind: NestedHeader, Path: nestedUmbrella},
			DescriptorPath: descriptorPath,
		}
		return plan, diags, nil
	}

	diags = appendMismatchAdvisory(diags, req, nestedDir)

	// Fallback: the include directory itself is the umbrella. Always valid.
	plan := &Plan{
		Identifier:     req.Identifier,
		Decision:       Decision{Kind: BareDirectory, Path: req.IncludeDir},
		DescriptorPath: descriptorPath,
	}
	return plan, diags, nil
}

// appendMismatchAdvisory emits the rename advisory when the umbrella header
// named after the normalized identifier was not found at dir, but a sibling
// named after the declared name exists there. Advisory only; classification
// continues unchanged. Deliberately not emitted when declared name and
// identifier coincide.
func appendMismatchAdvisory(diags []diag.Diagnostic, req Request, dir types.FilesystemPath) []diag.Diagnostic {
	if string(req.DeclaredName) == req.Identifier.String() {
		return diags
	}
	declaredHeader := fspath.JoinStr(dir, string(req.DeclaredName)+HeaderSuffix)
	if !fileExists(declaredHeader) {
		return diags
	}
	return append(diags, diag.Warning(diag.CodeUmbrellaNameMismatch,
		fmt.Sprintf("module %q has a header %q; rename it to %q for it to act as the umbrella header",
			req.DeclaredName, string(req.DeclaredName)+HeaderSuffix, req.Identifier.String()+HeaderSuffix),
		declaredHeader.String()))
}

// containsName reports whether names contains the exact entry name.
func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// fileExists reports whether path exists and is a regular file.
func fileExists(path types.FilesystemPath) bool {
	info, err := os.Stat(path.String())
	return err == nil && info.Mode().IsRegular()
}
