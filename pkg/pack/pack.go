// SPDX-License-Identifier: MPL-2.0

package pack

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"modmap-cli/internal/cueutil"
	"modmap-cli/pkg/types"
)

// ManifestFileName is the canonical manifest file name at a pack root.
const ManifestFileName = "modpack.cue"

var (
	//go:embed pack_schema.cue
	packSchema string

	// ErrManifestNotFound is returned when modpack.cue is not found at the
	// pack root. Callers can check for this error using errors.Is.
	ErrManifestNotFound = errors.New("modpack.cue not found")

	// ErrInvalidManifest is the sentinel error wrapped by InvalidManifestError.
	ErrInvalidManifest = errors.New("invalid manifest")
)

type (
	// PackInfo is the pack identity block of a manifest.
	PackInfo struct {
		Name        string
		Version     string
		Description string
	}

	// Manifest is a fully parsed and validated modpack.cue. The dependency
	// references of every module are guaranteed to resolve within the pack.
	Manifest struct {
		Pack    PackInfo
		Modules []*Module

		byName map[types.ModuleName]*Module
	}

	// InvalidManifestError is returned when a manifest parses but fails
	// structural validation (duplicate module names, unknown dependency
	// references). It wraps ErrInvalidManifest for errors.Is() compatibility.
	InvalidManifestError struct {
		Reason string
	}

	// packDTO mirrors the CUE schema for decoding. It is internal to parsing;
	// the typed model above is what callers see.
	packDTO struct {
		Pack struct {
			Name        string `json:"name"`
			Version     string `json:"version"`
			Description string `json:"description"`
		} `json:"pack"`
		Modules []moduleDTO `json:"modules"`
	}

	moduleDTO struct {
		Name       string   `json:"name"`
		Kind       string   `json:"kind"`
		Path       string   `json:"path"`
		IncludeDir string   `json:"include_dir,omitempty"`
		Sources    []string `json:"sources"`
		Deps       []string `json:"deps"`
	}
)

// Error implements the error interface for InvalidManifestError.
func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("invalid manifest: %s", e.Reason)
}

// Unwrap returns ErrInvalidManifest for errors.Is() compatibility.
func (e *InvalidManifestError) Unwrap() error { return ErrInvalidManifest }

// Load reads and parses the manifest at path. A missing file is reported as
// ErrManifestNotFound so callers can distinguish "no pack here" from a
// malformed manifest.
func Load(path types.FilesystemPath) (*Manifest, error) {
	data, err := os.ReadFile(path.String())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data, path.String())
}

// Parse decodes manifest bytes against the embedded schema and validates the
// result. filename is used in error messages only.
func Parse(data []byte, filename string) (*Manifest, error) {
	result, err := cueutil.ParseAndDecodeString[packDTO](packSchema, data, "#Pack",
		cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}

	dto := result.Value
	m := &Manifest{
		Pack: PackInfo{
			Name:        dto.Pack.Name,
			Version:     dto.Pack.Version,
			Description: dto.Pack.Description,
		},
		byName: make(map[types.ModuleName]*Module, len(dto.Modules)),
	}

	for _, md := range dto.Modules {
		name := types.ModuleName(md.Name)
		if valid, errs := name.IsValid(); !valid {
			return nil, &InvalidManifestError{Reason: errs[0].Error()}
		}
		if _, exists := m.byName[name]; exists {
			return nil, &InvalidManifestError{Reason: fmt.Sprintf("duplicate module name %q", name)}
		}

		mod := &Module{
			Name:       name,
			Kind:       ModuleKind(md.Kind),
			Path:       types.FilesystemPath(md.Path),
			IncludeDir: types.FilesystemPath(md.IncludeDir),
		}
		for _, s := range md.Sources {
			mod.Sources = append(mod.Sources, types.FilesystemPath(s))
		}
		for _, d := range md.Deps {
			mod.Deps = append(mod.Deps, types.ModuleName(d))
		}

		m.Modules = append(m.Modules, mod)
		m.byName[name] = mod
	}

	// Dependency references must resolve within the pack.
	for _, mod := range m.Modules {
		for _, dep := range mod.Deps {
			if dep == mod.Name {
				return nil, &InvalidManifestError{
					Reason: fmt.Sprintf("module %q depends on itself", mod.Name),
				}
			}
			if _, ok := m.byName[dep]; !ok {
				return nil, &InvalidManifestError{
					Reason: fmt.Sprintf("module %q depends on unknown module %q", mod.Name, dep),
				}
			}
		}
	}

	return m, nil
}

// Module returns the module with the given declared name, if present.
func (m *Manifest) Module(name types.ModuleName) (*Module, bool) {
	mod, ok := m.byName[name]
	return mod, ok
}

// ClangModules returns the native-interop modules in declaration order.
func (m *Manifest) ClangModules() []*Module {
	var out []*Module
	for _, mod := range m.Modules {
		if mod.IsClang() {
			out = append(out, mod)
		}
	}
	return out
}

// Dependencies returns the direct dependencies of the named module in
// declaration order. Returns nil for unknown modules.
func (m *Manifest) Dependencies(name types.ModuleName) []*Module {
	mod, ok := m.byName[name]
	if !ok {
		return nil
	}
	deps := make([]*Module, 0, len(mod.Deps))
	for _, d := range mod.Deps {
		deps = append(deps, m.byName[d])
	}
	return deps
}
