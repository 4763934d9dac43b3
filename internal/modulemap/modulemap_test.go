// SPDX-License-Identifier: MPL-2.0

package modulemap

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"modmap-cli/internal/diag"
	"modmap-cli/pkg/types"
)

// newRequest builds a Request rooted in a fresh temp dir with the given
// include-directory contents. Entries ending in "/" become subdirectories.
func newRequest(t *testing.T, declared types.ModuleName, id types.CIdentifier, entries ...string) Request {
	t.Helper()
	root := t.TempDir()
	includeDir := filepath.Join(root, "include")
	if err := os.MkdirAll(includeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		p := filepath.Join(includeDir, filepath.FromSlash(strings.TrimSuffix(e, "/")))
		if strings.HasSuffix(e, "/") {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte("// header\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return Request{
		Identifier:   id,
		DeclaredName: declared,
		IncludeDir:   types.FilesystemPath(includeDir),
		OutputDir:    types.FilesystemPath(filepath.Join(root, "build", string(id))),
	}
}

func TestClassify_FlatHeader(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo.h")

	plan, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if plan == nil {
		t.Fatal("expected a plan")
	}
	if plan.Decision.Kind != FlatHeader {
		t.Errorf("kind = %q, want FlatHeader", plan.Decision.Kind)
	}
	if got := plan.Decision.Path.String(); got != filepath.Join(req.IncludeDir.String(), "Foo.h") {
		t.Errorf("path = %q", got)
	}
}

func TestClassify_FlatHeaderWithExtraSiblingHeaders(t *testing.T) {
	t.Parallel()
	// Extra top-level headers do not conflict with a flat umbrella; only
	// subdirectories do.
	req := newRequest(t, "Foo", "Foo", "Foo.h", "extra.h")

	plan, _, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan == nil || plan.Decision.Kind != FlatHeader {
		t.Fatalf("expected FlatHeader, got %+v", plan)
	}
}

func TestClassify_FlatHeaderPlusSubdirectoryFails(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo.h", "nested/")

	_, _, err := Classify(req)
	if !errors.Is(err, ErrUnsupportedLayout) {
		t.Fatalf("expected ErrUnsupportedLayout, got %v", err)
	}
	var layoutErr *UnsupportedLayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected *UnsupportedLayoutError, got %T", err)
	}
	if layoutErr.Module != "Foo" {
		t.Errorf("error names module %q, want Foo", layoutErr.Module)
	}
}

func TestClassify_NestedHeader(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo/Foo.h")

	plan, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if plan == nil || plan.Decision.Kind != NestedHeader {
		t.Fatalf("expected NestedHeader, got %+v", plan)
	}
	want := filepath.Join(req.IncludeDir.String(), "Foo", "Foo.h")
	if plan.Decision.Path.String() != want {
		t.Errorf("path = %q, want %q", plan.Decision.Path, want)
	}
}

func TestClassify_NestedHeaderPlusTopLevelHeaderFails(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo/Foo.h", "stray.h")

	_, _, err := Classify(req)
	if !errors.Is(err, ErrUnsupportedLayout) {
		t.Fatalf("expected ErrUnsupportedLayout, got %v", err)
	}
}

func TestClassify_NestedHeaderPlusSecondSubdirectoryFails(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo/Foo.h", "other/")

	_, _, err := Classify(req)
	if !errors.Is(err, ErrUnsupportedLayout) {
		t.Fatalf("expected ErrUnsupportedLayout, got %v", err)
	}
}

func TestClassify_BareDirectoryFallback(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "a.h", "b.h", "sub/c.h")

	plan, _, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan == nil || plan.Decision.Kind != BareDirectory {
		t.Fatalf("expected BareDirectory, got %+v", plan)
	}
	if plan.Decision.Path != req.IncludeDir {
		t.Errorf("path = %q, want include dir %q", plan.Decision.Path, req.IncludeDir)
	}
}

func TestClassify_EmptyIncludeDirIsBareDirectory(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo")

	plan, _, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan == nil || plan.Decision.Kind != BareDirectory {
		t.Fatalf("expected BareDirectory, got %+v", plan)
	}
}

func TestClassify_MissingIncludeDirWarnsAndSkips(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo")
	if err := os.Remove(req.IncludeDir.String()); err != nil {
		t.Fatal(err)
	}

	plan, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != nil {
		t.Errorf("expected no plan, got %+v", plan)
	}
	if len(diags) != 1 || diags[0].Code != diag.CodeMissingIncludeDir {
		t.Fatalf("expected missing_include_dir diagnostic, got %v", diags)
	}
	if diags[0].Severity != diag.SeverityWarning {
		t.Errorf("severity = %q, want warning", diags[0].Severity)
	}
}

func TestClassify_ExistingDescriptorShortCircuits(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo.h")
	if err := os.MkdirAll(req.OutputDir.String(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(req.DescriptorPath().String(), []byte("module Foo {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	plan, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != nil || len(diags) != 0 {
		t.Errorf("expected nothing to do, got plan=%+v diags=%v", plan, diags)
	}
}

func TestClassify_RenameAdvisoryAtFlatLevel(t *testing.T) {
	t.Parallel()
	// Declared "Foo-Bar" normalizes to "FooBar". Only "Foo-Bar.h" exists, so
	// the flat umbrella is not found, the advisory fires, and classification
	// falls through to BareDirectory.
	req := newRequest(t, "Foo-Bar", "FooBar", "Foo-Bar.h")

	plan, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan == nil || plan.Decision.Kind != BareDirectory {
		t.Fatalf("expected BareDirectory fallback, got %+v", plan)
	}
	if len(diags) != 1 || diags[0].Code != diag.CodeUmbrellaNameMismatch {
		t.Fatalf("expected umbrella_name_mismatch diagnostic, got %v", diags)
	}
	if !strings.Contains(diags[0].Message, "Foo-Bar.h") || !strings.Contains(diags[0].Message, "FooBar.h") {
		t.Errorf("advisory should reference both names: %q", diags[0].Message)
	}
}

func TestClassify_RenameAdvisoryAtNestedLevel(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo-Bar", "FooBar", "FooBar/Foo-Bar.h")

	plan, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan == nil || plan.Decision.Kind != BareDirectory {
		t.Fatalf("expected BareDirectory fallback, got %+v", plan)
	}
	found := false
	for _, d := range diags {
		if d.Code == diag.CodeUmbrellaNameMismatch {
			found = true
		}
	}
	if !found {
		t.Errorf("expected umbrella_name_mismatch diagnostic, got %v", diags)
	}
}

func TestClassify_NoAdvisoryWhenNamesMatch(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "other.h")

	_, diags, err := Classify(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", diags)
	}
}

func TestRender_FlatHeader(t *testing.T) {
	t.Parallel()
	plan := &Plan{
		Identifier: "Foo",
		Decision:   Decision{Kind: FlatHeader, Path: "/pkg/include/Foo.h"},
	}
	got := Render(plan)
	want := "module Foo {\n" +
		"    umbrella header \"/pkg/include/Foo.h\"\n" +
		"    link \"Foo\"\n" +
		"    export *\n" +
		"}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_BareDirectory(t *testing.T) {
	t.Parallel()
	plan := &Plan{
		Identifier: "Foo",
		Decision:   Decision{Kind: BareDirectory, Path: "/pkg/include"},
	}
	got := Render(plan)
	if !strings.Contains(got, "umbrella \"/pkg/include\"\n") {
		t.Errorf("expected bare umbrella line, got %q", got)
	}
	if strings.Contains(got, "umbrella header") {
		t.Errorf("bare directory must not render an umbrella header line: %q", got)
	}
}

func TestGenerate_WritesDescriptor(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo.h")

	diags, err := Generate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}

	data, err := os.ReadFile(req.DescriptorPath().String())
	if err != nil {
		t.Fatalf("descriptor not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "module Foo {") ||
		!strings.Contains(content, "umbrella header") ||
		!strings.Contains(content, "link \"Foo\"") ||
		!strings.Contains(content, "export *") {
		t.Errorf("unexpected descriptor content:\n%s", content)
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	t.Parallel()
	req := newRequest(t, "Foo", "Foo", "Foo.h")

	if _, err := Generate(req); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(req.DescriptorPath().String())
	if err != nil {
		t.Fatal(err)
	}
	firstInfo, err := os.Stat(req.DescriptorPath().String())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Generate(req); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(req.DescriptorPath().String())
	if err != nil {
		t.Fatal(err)
	}
	secondInfo, err := os.Stat(req.DescriptorPath().String())
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("descriptor content changed between runs")
	}
	if !firstInfo.ModTime().Equal(secondInfo.ModTime()) {
		t.Error("second run rewrote the descriptor; expected short-circuit")
	}
}

func TestWrite_PanicsOnRelativeOutputDir(t *testing.T) {
	t.Parallel()
	plan := &Plan{
		Identifier:     "Foo",
		Decision:       Decision{Kind: FlatHeader, Path: "/pkg/include/Foo.h"},
		DescriptorPath: "build/Foo/module.modulemap",
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for relative output directory")
		}
	}()
	_ = Write(plan)
}

func TestWrite_ReadOnlyOutputDirReturnsWriteError(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("directory permission bits are not enforced on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permission checks")
	}

	dir := t.TempDir()
	outDir := filepath.Join(dir, "build")
	if err := os.MkdirAll(outDir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(outDir, 0o755) })

	plan := &Plan{
		Identifier:     "Foo",
		Decision:       Decision{Kind: FlatHeader, Path: "/pkg/include/Foo.h"},
		DescriptorPath: types.FilesystemPath(filepath.Join(outDir, DescriptorFileName)),
	}

	err := Write(plan)
	if err == nil {
		t.Fatal("expected write failure in read-only output directory")
	}
	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("expected *WriteError, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrWrite) {
		t.Error("WriteError must match ErrWrite")
	}
	if writeErr.Path != plan.DescriptorPath {
		t.Errorf("Path = %q, want attempted descriptor path %q", writeErr.Path, plan.DescriptorPath)
	}
}

func TestWrite_ExistingFileIsBenign(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	descriptor := filepath.Join(dir, DescriptorFileName)
	plan := &Plan{
		Identifier:     "Foo",
		Decision:       Decision{Kind: FlatHeader, Path: "/pkg/include/Foo.h"},
		DescriptorPath: types.FilesystemPath(descriptor),
	}
	if err := Write(plan); err != nil {
		t.Fatalf("first write: %v", err)
	}
	// A concurrent writer winning the creation race must not surface an error.
	if err := Write(plan); err != nil {
		t.Fatalf("second write: %v", err)
	}
}
