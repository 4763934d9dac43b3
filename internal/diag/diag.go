// SPDX-License-Identifier: MPL-2.0

// Package diag defines structured diagnostics returned by the core alongside
// primary results. The core never writes to stderr itself; the CLI layer
// decides how diagnostics are rendered, which keeps classification and
// generation pure and testable.
package diag

const (
	// SeverityWarning indicates a recoverable, advisory diagnostic.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal error diagnostic.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by the core.
const (
	// CodeMissingIncludeDir is emitted when a clang module's include
	// directory does not exist; the module gets no module map.
	CodeMissingIncludeDir = "missing_include_dir"
	// CodeUmbrellaNameMismatch is emitted when an umbrella header named after
	// the declared module name exists where one named after the normalized
	// identifier was expected.
	CodeUmbrellaNameMismatch = "umbrella_name_mismatch"
	// CodeManifestLoadFailed is emitted when the manifest cannot be loaded
	// and the CLI continues in a degraded mode.
	CodeManifestLoadFailed = "manifest_load_failed"
)

type (
	// Severity represents diagnostic severity.
	Severity string

	// Diagnostic represents a structured diagnostic that is returned to
	// callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "missing_include_dir").
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)

// Warning constructs a warning-severity Diagnostic.
func Warning(code, message, path string) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Path:     path,
	}
}
