// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrInvalidCIdentifier is the sentinel error wrapped by InvalidCIdentifierError.
var ErrInvalidCIdentifier = errors.New("invalid C identifier")

type (
	// CIdentifier is a module's normalized identifier: a form of the declared
	// name that is safe to use as a compiler module token or link library
	// name. A valid value matches [A-Za-z_][A-Za-z0-9_]*.
	// The zero value ("") is invalid.
	CIdentifier string

	// InvalidCIdentifierError is returned when a CIdentifier value is empty
	// or contains runes outside [A-Za-z0-9_] (or starts with a digit).
	InvalidCIdentifierError struct {
		Value CIdentifier
	}
)

// String returns the string representation of the CIdentifier.
func (c CIdentifier) String() string { return string(c) }

// IsValid returns whether the CIdentifier is a valid C99 identifier.
func (c CIdentifier) IsValid() (bool, []error) {
	s := string(c)
	if s == "" {
		return false, []error{&InvalidCIdentifierError{Value: c}}
	}
	for i, r := range s {
		ok := r == '_' || r < 128 && (unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r))
		if !ok {
			return false, []error{&InvalidCIdentifierError{Value: c}}
		}
	}
	return true, nil
}

// Error implements the error interface for InvalidCIdentifierError.
func (e *InvalidCIdentifierError) Error() string {
	return fmt.Sprintf("invalid C identifier %q: must match [A-Za-z_][A-Za-z0-9_]*", e.Value)
}

// Unwrap returns ErrInvalidCIdentifier for errors.Is() compatibility.
func (e *InvalidCIdentifierError) Unwrap() error { return ErrInvalidCIdentifier }
