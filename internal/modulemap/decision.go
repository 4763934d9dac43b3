// SPDX-License-Identifier: MPL-2.0

package modulemap

import (
	"modmap-cli/pkg/fspath"
	"modmap-cli/pkg/types"
)

const (
	// DescriptorFileName is the file name of a generated module map descriptor.
	DescriptorFileName = "module.modulemap"

	// HeaderSuffix is the public header file suffix considered during
	// classification.
	HeaderSuffix = ".h"
)

const (
	// FlatHeader selects an umbrella header directly under the include
	// directory (include/<id>.h).
	FlatHeader DecisionKind = "flat_header"
	// NestedHeader selects an umbrella header nested one level down
	// (include/<id>/<id>.h).
	NestedHeader DecisionKind = "nested_header"
	// BareDirectory selects the include directory itself as the umbrella.
	// This is the always-valid fallback.
	BareDirectory DecisionKind = "bare_directory"
)

type (
	// DecisionKind tags the umbrella strategy chosen by classification.
	DecisionKind string

	// Decision is the outcome of layout classification: an umbrella strategy
	// plus the path it points at (an umbrella header file for FlatHeader and
	// NestedHeader, the include directory itself for BareDirectory).
	// Decisions are transient values, computed fresh on every call and never
	// persisted.
	Decision struct {
		Kind DecisionKind
		Path types.FilesystemPath
	}

	// Request carries the classification inputs for one module. All paths
	// must be absolute; the rendered descriptor embeds them verbatim.
	Request struct {
		// Identifier is the module's normalized identifier. The umbrella
		// lookups, the link directive, and the descriptor location are all
		// keyed by it.
		Identifier types.CIdentifier
		// DeclaredName is the module's declared name, used in error values
		// and in the rename-advisory check when it differs from Identifier.
		DeclaredName types.ModuleName
		// IncludeDir is the module's public header directory.
		IncludeDir types.FilesystemPath
		// OutputDir is the build-tree directory that receives the descriptor.
		OutputDir types.FilesystemPath
	}

	// Plan bundles a positive classification with the descriptor path it
	// must be written to. A nil *Plan from Classify means there is nothing
	// to generate for this module.
	Plan struct {
		Identifier     types.CIdentifier
		Decision       Decision
		DescriptorPath types.FilesystemPath
	}
)

// DescriptorPath returns the expected descriptor location for a request.
func (r Request) DescriptorPath() types.FilesystemPath {
	return fspath.JoinStr(r.OutputDir, DescriptorFileName)
}
