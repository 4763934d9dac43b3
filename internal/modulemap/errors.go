// SPDX-License-Identifier: MPL-2.0

package modulemap

import (
	"errors"
	"fmt"

	"modmap-cli/pkg/types"
)

var (
	// ErrUnsupportedLayout is the sentinel error wrapped by UnsupportedLayoutError.
	ErrUnsupportedLayout = errors.New("unsupported include directory layout")

	// ErrWrite is the sentinel error wrapped by WriteError.
	ErrWrite = errors.New("module map write failed")
)

type (
	// UnsupportedLayoutError is returned when an include directory shape is
	// ambiguous: an umbrella header coexists with sibling content it cannot
	// account for. The classifier fails closed rather than guessing which
	// files form the module interface.
	UnsupportedLayoutError struct {
		// Module is the declared name of the offending module.
		Module types.ModuleName
		// Detail describes the conflicting content.
		Detail string
	}

	// WriteError is returned when descriptor persistence fails (directory
	// creation, file open, or write). It carries the attempted path and is
	// propagated without retries; transient-vs-permanent classification is
	// left to the caller.
	WriteError struct {
		Path  types.FilesystemPath
		Cause error
	}
)

// Error implements the error interface for UnsupportedLayoutError.
func (e *UnsupportedLayoutError) Error() string {
	return fmt.Sprintf("target %q failed modulemap generation: %s", e.Module, e.Detail)
}

// Unwrap returns ErrUnsupportedLayout for errors.Is() compatibility.
func (e *UnsupportedLayoutError) Unwrap() error { return ErrUnsupportedLayout }

// Error implements the error interface for WriteError.
func (e *WriteError) Error() string {
	return fmt.Sprintf("writing module map %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause so callers can use errors.Is/As.
func (e *WriteError) Unwrap() error { return e.Cause }

// Is reports ErrWrite so errors.Is(err, ErrWrite) matches while Unwrap still
// exposes the underlying I/O cause.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
