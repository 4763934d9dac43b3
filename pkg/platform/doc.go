// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes runtime.GOOS string literals so
// platform-specific branches (config directory lookup, path handling)
// compare against named constants instead of scattered magic strings.
package platform
