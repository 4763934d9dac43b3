// SPDX-License-Identifier: MPL-2.0

// Package modcache derives the shared compiler module cache location and the
// per-toolchain flags that enable it.
package modcache

import (
	"os"

	"modmap-cli/pkg/fspath"
	"modmap-cli/pkg/types"
)

const (
	// CacheDirName is the fixed suffix segment appended to the prefix
	// directory.
	CacheDirName = "ModuleCache"

	// DisableEnv disables module cache flags when set to any non-empty
	// value. Test runs set it so parallel suites don't contend on one
	// shared cache.
	DisableEnv = "MODMAP_TESTS_MODULECACHE"
)

const (
	// ToolchainClang expects a single combined flag
	// (-fmodules-cache-path=<dir>).
	ToolchainClang Toolchain = "clang"
	// ToolchainSwift expects the flag name and the path as two separate
	// arguments (-module-cache-path <dir>).
	ToolchainSwift Toolchain = "swift"
)

// Toolchain selects the flag shape for enabling the module cache.
type Toolchain string

// Dir returns the module cache directory for a prefix: always
// <prefix>/ModuleCache. Pure function of its input.
func Dir(prefix types.FilesystemPath) types.FilesystemPath {
	return fspath.JoinStr(prefix, CacheDirName)
}

// Flags returns the compiler arguments that enable the shared module cache
// under prefix for the given toolchain. When DisableEnv is set the result is
// empty regardless of toolchain; the override is checked before any path
// construction.
func Flags(prefix types.FilesystemPath, tc Toolchain) []string {
	if os.Getenv(DisableEnv) != "" {
		return nil
	}
	dir := Dir(prefix)
	switch tc {
	case ToolchainSwift:
		return []string{"-module-cache-path", dir.String()}
	default: // ToolchainClang
		return []string{"-fmodules-cache-path=" + dir.String()}
	}
}
