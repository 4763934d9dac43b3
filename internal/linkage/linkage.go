// SPDX-License-Identifier: MPL-2.0

// Package linkage decides whether a module requires linking against the C++
// standard library, based on its own sources and the transitive source
// composition of its dependency closure.
package linkage

import (
	"strings"

	"modmap-cli/internal/depgraph"
	"modmap-cli/pkg/pack"
	"modmap-cli/pkg/types"
)

// CxxRuntimeLinkFlag is the single link argument emitted when C++ runtime
// linkage is required.
const CxxRuntimeLinkFlag = "-lc++"

// cxxExtensions is the fixed allow-list of C++ source file extensions.
// Matching is case-sensitive: ".C" is C++ by convention while ".c" is C.
var cxxExtensions = map[string]bool{
	".cc":  true,
	".cpp": true,
	".cxx": true,
	".c++": true,
	".C":   true,
	".mm":  true,
}

type (
	// Resolver answers C++ runtime linkage queries against one manifest and
	// its dependency graph. The manifest is consumed read-only.
	//
	// Every query recomputes the transitive walk; nothing is memoized. That
	// is a known, accepted cost: queries are bounded by pack size and a
	// higher layer is free to cache per manifest snapshot.
	Resolver struct {
		manifest *pack.Manifest
		graph    *depgraph.Graph
		exts     map[string]bool
	}

	// Option configures a Resolver.
	Option func(*Resolver)
)

// WithExtraExtensions extends the C++ extension allow-list (entries must
// include the leading dot, e.g. ".ipp").
func WithExtraExtensions(exts []string) Option {
	return func(r *Resolver) {
		for _, e := range exts {
			if strings.HasPrefix(e, ".") {
				r.exts[e] = true
			}
		}
	}
}

// NewResolver builds a Resolver over the manifest's dependency graph.
func NewResolver(m *pack.Manifest, opts ...Option) *Resolver {
	r := &Resolver{
		manifest: m,
		graph:    depgraph.FromManifest(m),
		exts:     make(map[string]bool, len(cxxExtensions)),
	}
	for ext := range cxxExtensions {
		r.exts[ext] = true
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RequiresCxxRuntime reports whether the named module, or any native-interop
// module in its transitive dependency set, contains a C++ source file. The
// result is a monotonic OR over the reachable set, so it does not depend on
// traversal order; the walk stops at the first hit.
func (r *Resolver) RequiresCxxRuntime(name types.ModuleName) bool {
	mod, ok := r.manifest.Module(name)
	if !ok {
		return false
	}
	if r.hasCxxSources(mod) {
		return true
	}
	for _, depName := range r.graph.Reachable(name) {
		dep, ok := r.manifest.Module(depName)
		if !ok || !dep.IsClang() {
			continue
		}
		if r.hasCxxSources(dep) {
			return true
		}
	}
	return false
}

// LinkFlags returns the link arguments the named module needs: exactly
// [CxxRuntimeLinkFlag] when C++ runtime linkage is required, nil otherwise.
func (r *Resolver) LinkFlags(name types.ModuleName) []string {
	if r.RequiresCxxRuntime(name) {
		return []string{CxxRuntimeLinkFlag}
	}
	return nil
}

func (r *Resolver) hasCxxSources(mod *pack.Module) bool {
	for _, src := range mod.Sources {
		if r.exts[src.Ext()] {
			return true
		}
	}
	return false
}
