// SPDX-License-Identifier: MPL-2.0

// Package modulemap synthesizes clang module map descriptors from a module's
// on-disk header layout.
//
// This package intentionally combines two related concerns:
//   - Layout classification: deciding which umbrella strategy an include
//     directory supports (flat umbrella header, nested umbrella header, or
//     bare umbrella directory), or rejecting ambiguous layouts
//   - Descriptor writing: rendering the module map text and persisting it,
//     idempotently, under the module's normalized identifier
//
// These concerns are tightly coupled because the writer's idempotence check
// ("descriptor already exists, nothing to do") is the classifier's first step;
// splitting them would force both halves to restate the same output-path
// contract.
//
// File organization:
//   - decision.go: the Decision sum type and classification Request
//   - classify.go: layout classification (Classify)
//   - write.go: rendering and persistence (Write, Render)
//   - errors.go: UnsupportedLayoutError, WriteError
package modulemap
