// SPDX-License-Identifier: MPL-2.0

// Package pack provides the read-only package manifest model consumed by the
// module map generator and the linkage resolver.
//
// A pack is described by a modpack.cue file at the package root. It declares
// the pack's identity and its modules. Modules come in two kinds:
//
//   - "clang" modules wrap native (C/C++/Objective-C family) sources and
//     carry an include directory whose layout drives module map synthesis;
//   - "source" modules are host-language targets with no native sources.
//
// The manifest is parsed through internal/cueutil against an embedded CUE
// schema, then validated structurally: module names must be unique and every
// dependency reference must name a module declared in the same pack. The
// model is immutable after Load; nothing in this repository mutates it.
package pack
