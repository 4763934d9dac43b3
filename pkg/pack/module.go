// SPDX-License-Identifier: MPL-2.0

package pack

import (
	"modmap-cli/pkg/types"
)

const (
	// KindClang marks a native-interop module with C-family sources and a
	// public include directory.
	KindClang ModuleKind = "clang"
	// KindSource marks a host-language module with no native sources.
	KindSource ModuleKind = "source"
)

type (
	// ModuleKind distinguishes native-interop modules from host-language ones.
	ModuleKind string

	// Module is a single build target declared in a modpack.cue manifest.
	// Instances are owned by the Manifest and must be treated as read-only.
	Module struct {
		// Name is the declared module name from the manifest.
		Name types.ModuleName
		// Kind is the module flavor (clang or source).
		Kind ModuleKind
		// Path is the module root, relative to the pack root.
		Path types.FilesystemPath
		// IncludeDir is the public header directory of a clang module,
		// relative to the pack root. Empty for source modules. The directory
		// is not required to exist on disk; a missing directory downgrades to
		// an advisory diagnostic at classification time.
		IncludeDir types.FilesystemPath
		// Sources are the module's source files, relative to the pack root.
		Sources []types.FilesystemPath
		// Deps are the declared names of this module's direct dependencies.
		Deps []types.ModuleName
	}
)

// CIdentifier returns the module's normalized identifier, derived from the
// declared name. Module maps, link directives, and descriptor file paths are
// all keyed by this value, never by the declared name.
func (m *Module) CIdentifier() types.CIdentifier {
	return types.CIdentifierFor(m.Name)
}

// IsClang reports whether the module is a native-interop module.
func (m *Module) IsClang() bool { return m.Kind == KindClang }
