// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidModuleName is the sentinel error wrapped by InvalidModuleNameError.
var ErrInvalidModuleName = errors.New("invalid module name")

type (
	// ModuleName is a module's declared name as written in the package
	// manifest. Declared names may contain characters that are not usable as
	// compiler module tokens (e.g. "Foo-Bar"); use CIdentifierFor to obtain
	// the normalized form.
	ModuleName string

	// InvalidModuleNameError is returned when a ModuleName is empty,
	// whitespace-only, or contains path separators.
	InvalidModuleNameError struct {
		Value ModuleName
	}
)

// String returns the string representation of the ModuleName.
func (n ModuleName) String() string { return string(n) }

// IsValid returns whether the ModuleName is valid. A valid name is non-empty,
// not whitespace-only, and contains no path separators.
func (n ModuleName) IsValid() (bool, []error) {
	s := string(n)
	if strings.TrimSpace(s) == "" || strings.ContainsAny(s, "/\\") {
		return false, []error{&InvalidModuleNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidModuleNameError.
func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: must be non-empty and free of path separators", e.Value)
}

// Unwrap returns ErrInvalidModuleName for errors.Is() compatibility.
func (e *InvalidModuleNameError) Unwrap() error { return ErrInvalidModuleName }

// CIdentifierFor derives the normalized identifier for a declared module name.
// Runes outside [A-Za-z0-9_] are dropped ("Foo-Bar" becomes "FooBar"), and a
// leading digit gets a '_' prefix, so the result is always a valid C99
// identifier. The transform is deterministic: equal names always normalize
// identically.
func CIdentifierFor(name ModuleName) CIdentifier {
	var b strings.Builder
	b.Grow(len(name) + 1)
	for _, r := range string(name) {
		if r == '_' || r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || unicode.IsDigit(rune(s[0])) {
		s = "_" + s
	}
	return CIdentifier(s)
}
