// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modmap-cli/internal/diag"
	"modmap-cli/pkg/pack"
	"modmap-cli/pkg/types"
)

const testManifest = `pack: {
	name:    "demo"
	version: "1.0.0"
}

modules: [
	{
		name:        "Core"
		kind:        "clang"
		path:        "Sources/Core"
		include_dir: "Sources/Core/include"
		sources: ["Sources/Core/core.c"]
	},
	{
		name: "App"
		kind: "source"
		path: "Sources/App"
		sources: ["Sources/App/main.code"]
		deps: ["Core"]
	},
]
`

func parseTestManifest(t *testing.T) *pack.Manifest {
	t.Helper()
	m, err := pack.Parse([]byte(testManifest), "modpack.cue")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return m
}

func TestSelectTargets_DefaultsToAllClang(t *testing.T) {
	t.Parallel()
	m := parseTestManifest(t)
	targets, err := selectTargets(m, nil)
	if err != nil {
		t.Fatalf("selectTargets() error = %v", err)
	}
	if len(targets) != 1 || !targets["Core"] {
		t.Errorf("targets = %v, want only Core", targets)
	}
}

func TestSelectTargets_RejectsUnknownModule(t *testing.T) {
	t.Parallel()
	m := parseTestManifest(t)
	if _, err := selectTargets(m, []string{"Nope"}); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestSelectTargets_RejectsSourceModule(t *testing.T) {
	t.Parallel()
	m := parseTestManifest(t)
	if _, err := selectTargets(m, []string{"App"}); err == nil {
		t.Error("expected error for non-clang module")
	}
}

func TestRequestFor_ResolvesPathsAgainstRoot(t *testing.T) {
	t.Parallel()
	m := parseTestManifest(t)
	mod, _ := m.Module("Core")

	root := types.FilesystemPath("/pack")
	out := types.FilesystemPath("/pack/build")
	req := requestFor(mod, root, out)

	if got, want := req.IncludeDir.String(), filepath.Join("/pack", "Sources/Core/include"); got != want {
		t.Errorf("IncludeDir = %q, want %q", got, want)
	}
	if got, want := req.OutputDir.String(), filepath.Join("/pack/build", "Core"); got != want {
		t.Errorf("OutputDir = %q, want %q", got, want)
	}
	if req.DeclaredName != "Core" {
		t.Errorf("DeclaredName = %q", req.DeclaredName)
	}
}

func TestRequestFor_DefaultsIncludeDir(t *testing.T) {
	t.Parallel()
	mod := &pack.Module{
		Name: "Bare",
		Kind: pack.KindClang,
		Path: "Sources/Bare",
	}
	req := requestFor(mod, "/pack", "/pack/build")
	if got, want := req.IncludeDir.String(), filepath.Join("/pack", "Sources/Bare", "include"); got != want {
		t.Errorf("IncludeDir = %q, want %q", got, want)
	}
}

func TestBuildDir_Resolution(t *testing.T) {
	// Not parallel: reads the package-level cfg.
	root := types.FilesystemPath("/pack")

	if got := buildDir(root, "out"); got.String() != filepath.Join("/pack", "out") {
		t.Errorf("flag-relative buildDir = %q", got)
	}
	if got := buildDir(root, "/abs/out"); got.String() != "/abs/out" {
		t.Errorf("flag-absolute buildDir = %q", got)
	}

	origBuildDir := cfg.BuildDir
	t.Cleanup(func() { cfg.BuildDir = origBuildDir })
	cfg.BuildDir = "cfgout"
	if got := buildDir(root, ""); got.String() != filepath.Join("/pack", "cfgout") {
		t.Errorf("config buildDir = %q", got)
	}
	cfg.BuildDir = ""
	if got := buildDir(root, ""); got.String() != filepath.Join("/pack", "build") {
		t.Errorf("default buildDir = %q", got)
	}
}

func TestRunGenerate_EndToEnd(t *testing.T) {
	// Not parallel: mutates the package-level manifestFile flag var.
	dir := t.TempDir()

	inclDir := filepath.Join(dir, "Sources", "Core", "include")
	if err := os.MkdirAll(inclDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inclDir, "Core.h"), []byte("// core\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	manifestPath := filepath.Join(dir, pack.ManifestFileName)
	if err := os.WriteFile(manifestPath, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	origManifest, origBuildDirFlag := manifestFile, generateBuildDirFlag
	t.Cleanup(func() { manifestFile, generateBuildDirFlag = origManifest, origBuildDirFlag })
	manifestFile = manifestPath
	generateBuildDirFlag = ""

	if err := runGenerate(generateCmd, nil); err != nil {
		t.Fatalf("runGenerate() error = %v", err)
	}

	descriptor := filepath.Join(dir, "build", "Core", "module.modulemap")
	data, err := os.ReadFile(descriptor)
	if err != nil {
		t.Fatalf("descriptor not written: %v", err)
	}
	content := string(data)
	for _, want := range []string{"module Core {", `link "Core"`, "export *"} {
		if !strings.Contains(content, want) {
			t.Errorf("descriptor missing %q:\n%s", want, content)
		}
	}

	// Second run must be a no-op against the existing descriptor.
	info1, _ := os.Stat(descriptor)
	if err := runGenerate(generateCmd, nil); err != nil {
		t.Fatalf("second runGenerate() error = %v", err)
	}
	info2, _ := os.Stat(descriptor)
	if !info1.ModTime().Equal(info2.ModTime()) {
		t.Error("descriptor rewritten on idempotent rerun")
	}
}

func TestRenderMissingHeadersHelp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	renderMissingHeadersHelp(&buf, []diag.Diagnostic{
		diag.Warning(diag.CodeMissingIncludeDir,
			`module "Core" has no public headers; it cannot be imported`,
			"/pack/Sources/Core/include"),
	})
	if !strings.Contains(buf.String(), "No public headers") {
		t.Errorf("expected issue catalog guidance, got %q", buf.String())
	}

	buf.Reset()
	renderMissingHeadersHelp(&buf, []diag.Diagnostic{
		diag.Warning(diag.CodeUmbrellaNameMismatch, "rename advisory", "/pack/include/core.h"),
	})
	if buf.String() != "" {
		t.Errorf("unexpected output for unrelated diagnostic: %q", buf.String())
	}

	buf.Reset()
	renderMissingHeadersHelp(&buf, nil)
	if buf.String() != "" {
		t.Errorf("unexpected output for empty diagnostics: %q", buf.String())
	}
}

func TestRunGenerate_MissingManifestFails(t *testing.T) {
	// Not parallel: mutates the package-level manifestFile flag var.
	origManifest := manifestFile
	t.Cleanup(func() { manifestFile = origManifest })
	manifestFile = filepath.Join(t.TempDir(), pack.ManifestFileName)

	err := runGenerate(generateCmd, nil)
	if err == nil {
		t.Fatal("expected error for missing manifest")
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 1 {
		t.Errorf("error = %v, want ExitError with code 1", err)
	}
}
