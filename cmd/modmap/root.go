// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"modmap-cli/internal/config"
	"modmap-cli/internal/issue"
	"modmap-cli/pkg/pack"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// manifestFile is the path to the pack manifest
	manifestFile string

	// cfg is the loaded configuration, replaced by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "modmap",
		Short: "Module maps and linkage for mixed-language packs",
		Long: TitleStyle.Render("modmap") + SubtitleStyle.Render(" - module maps and linkage for mixed-language packs") + `

modmap reads a modpack.cue manifest, classifies each native-interop
module's public header layout, and generates clang module map
descriptors so host-language code can import C-family targets. It also
answers C++ runtime linkage queries over the transitive dependency
graph and derives the shared module cache compiler flags.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'modmap init' to create a starter modpack.cue
  2. Declare clang modules with their include directories
  3. Run 'modmap generate' to write module.modulemap descriptors

` + SubtitleStyle.Render("Examples:") + `
  modmap modules            List the modules declared in the pack
  modmap generate           Generate descriptors for all clang modules
  modmap linkage App        Print link flags for the App module
  modmap cache-flags        Print module cache compiler flags`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/modmap/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "manifest", "m", pack.ManifestFileName, "path to the pack manifest")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(linkageCmd)
	rootCmd.AddCommand(cacheFlagsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig loads the layered configuration: global config.cue plus a
// project-local modmap.toml next to the manifest.
func initRootConfig() {
	loaded, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
		ProjectDirPath: filepath.Dir(manifestFile),
	})
	if err != nil {
		// Config problems degrade to defaults; the user is told why.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		return
	}

	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
