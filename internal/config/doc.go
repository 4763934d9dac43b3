// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the modmap configuration.
//
// Configuration comes from two layers. The global layer is a config.cue file
// in the platform config directory (XDG on Linux, %APPDATA% on Windows,
// ~/Library/Application Support on macOS), validated against an embedded CUE
// schema and merged into viper. The project layer is an optional modmap.toml
// next to the pack manifest; its values override the global layer.
package config
