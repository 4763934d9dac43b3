// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ToolchainClang emits combined clang-style cache flags.
	ToolchainClang Toolchain = "clang"
	// ToolchainSwift emits two-token swiftc-style cache flags.
	ToolchainSwift Toolchain = "swift"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidToolchain is returned when a Toolchain value is not recognized.
	ErrInvalidToolchain = errors.New("invalid toolchain")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidBuildDirPath is returned when a BuildDirPath value is whitespace-only.
	ErrInvalidBuildDirPath = errors.New("invalid build dir path")
	// ErrInvalidCachePrefixPath is returned when a CachePrefixPath value is whitespace-only.
	ErrInvalidCachePrefixPath = errors.New("invalid cache prefix path")
	// ErrInvalidSourceExtension is the sentinel error wrapped by InvalidSourceExtensionError.
	ErrInvalidSourceExtension = errors.New("invalid source extension")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Toolchain selects the flag shape for module cache arguments.
	Toolchain string

	// InvalidToolchainError is returned when a Toolchain value is not recognized.
	// It wraps ErrInvalidToolchain for errors.Is() compatibility.
	InvalidToolchainError struct {
		Value Toolchain
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// BuildDirPath represents the directory that receives generated module maps.
	// The zero value ("") is valid and means "use the default build directory".
	// Non-zero values must not be whitespace-only.
	BuildDirPath string

	// InvalidBuildDirPathError is returned when a BuildDirPath value is
	// non-empty but whitespace-only.
	InvalidBuildDirPathError struct {
		Value BuildDirPath
	}

	// CachePrefixPath represents the directory under which the module cache
	// directory is created. The zero value ("") is valid and means "use the
	// build directory". Non-zero values must not be whitespace-only.
	CachePrefixPath string

	// InvalidCachePrefixPathError is returned when a CachePrefixPath value is
	// non-empty but whitespace-only.
	InvalidCachePrefixPathError struct {
		Value CachePrefixPath
	}

	// SourceExtension is a filename extension treated as C++ for runtime
	// linkage resolution. A valid extension starts with a dot and has at
	// least one character after it.
	SourceExtension string

	// InvalidSourceExtensionError is returned when a SourceExtension value
	// does not start with a dot or is just a dot.
	InvalidSourceExtensionError struct {
		Value SourceExtension
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// Toolchain selects clang-style or swiftc-style cache flags.
		Toolchain Toolchain `json:"toolchain" mapstructure:"toolchain"`
		// BuildDir is where generated module maps are written.
		BuildDir BuildDirPath `json:"build_dir" mapstructure:"build_dir"`
		// CachePrefix is where the module cache directory is created.
		CachePrefix CachePrefixPath `json:"cache_prefix" mapstructure:"cache_prefix"`
		// ExtraCxxExtensions adds source extensions treated as C++.
		ExtraCxxExtensions []SourceExtension `json:"extra_cxx_extensions" mapstructure:"extra_cxx_extensions"`
		// UI configures the user interface.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// String returns the string representation of the Toolchain.
func (t Toolchain) String() string { return string(t) }

// IsValid returns whether the Toolchain is one of the defined toolchains,
// and a list of validation errors if it is not.
func (t Toolchain) IsValid() (bool, []error) {
	switch t {
	case ToolchainClang, ToolchainSwift:
		return true, nil
	default:
		return false, []error{&InvalidToolchainError{Value: t}}
	}
}

// Error implements the error interface for InvalidToolchainError.
func (e *InvalidToolchainError) Error() string {
	return fmt.Sprintf("invalid toolchain %q (valid: clang, swift)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidToolchainError) Unwrap() error {
	return ErrInvalidToolchain
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the BuildDirPath.
func (p BuildDirPath) String() string { return string(p) }

// IsValid returns whether the BuildDirPath is valid.
// The zero value ("") is valid (means "use the default build directory").
// Non-zero values must not be whitespace-only.
func (p BuildDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidBuildDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidBuildDirPathError.
func (e *InvalidBuildDirPathError) Error() string {
	return fmt.Sprintf("invalid build dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidBuildDirPath for errors.Is() compatibility.
func (e *InvalidBuildDirPathError) Unwrap() error { return ErrInvalidBuildDirPath }

// String returns the string representation of the CachePrefixPath.
func (p CachePrefixPath) String() string { return string(p) }

// IsValid returns whether the CachePrefixPath is valid.
// The zero value ("") is valid (means "use the build directory").
// Non-zero values must not be whitespace-only.
func (p CachePrefixPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidCachePrefixPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCachePrefixPathError.
func (e *InvalidCachePrefixPathError) Error() string {
	return fmt.Sprintf("invalid cache prefix path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidCachePrefixPath for errors.Is() compatibility.
func (e *InvalidCachePrefixPathError) Unwrap() error { return ErrInvalidCachePrefixPath }

// String returns the string representation of the SourceExtension.
func (x SourceExtension) String() string { return string(x) }

// IsValid returns whether the SourceExtension is valid.
// A valid extension starts with a dot followed by at least one character.
func (x SourceExtension) IsValid() (bool, []error) {
	if len(x) < 2 || x[0] != '.' {
		return false, []error{&InvalidSourceExtensionError{Value: x}}
	}
	return true, nil
}

// Error implements the error interface for InvalidSourceExtensionError.
func (e *InvalidSourceExtensionError) Error() string {
	return fmt.Sprintf("invalid source extension %q: must start with a dot followed by at least one character", e.Value)
}

// Unwrap returns ErrInvalidSourceExtension for errors.Is() compatibility.
func (e *InvalidSourceExtensionError) Unwrap() error { return ErrInvalidSourceExtension }

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to Toolchain.IsValid(), BuildDir.IsValid(),
// CachePrefix.IsValid(), each ExtraCxxExtensions entry's IsValid(),
// and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.Toolchain.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.BuildDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.CachePrefix.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	for _, ext := range c.ExtraCxxExtensions {
		if valid, fieldErrs := ext.IsValid(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Toolchain:          ToolchainClang,
		BuildDir:           "", // Will use ./build if empty
		CachePrefix:        "", // Will use the build dir if empty
		ExtraCxxExtensions: []SourceExtension{},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
