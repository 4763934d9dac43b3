// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modmap.
//
// This package implements the Cobra command hierarchy for the modmap CLI:
// the root command, descriptor generation, linkage and cache flag queries,
// module listing, and pack scaffolding.
package cmd
