// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"modmap-cli/internal/linkage"
	"modmap-cli/pkg/types"

	"github.com/spf13/cobra"
)

var linkageCmd = &cobra.Command{
	Use:   "linkage <module>",
	Short: "Print C++ runtime link flags for a module",
	Long: `Linkage reports the link arguments a module needs for the C++ runtime.
A module requires -lc++ when it, or any clang module in its transitive
dependency set, contains a C++ source file. Modules without C++ sources
anywhere in their closure print nothing and exit successfully.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkage,
}

func runLinkage(cmd *cobra.Command, args []string) error {
	m, _, err := loadManifest()
	if err != nil {
		return failWith(err)
	}

	name := types.ModuleName(args[0])
	if _, ok := m.Module(name); !ok {
		return failWith(fmt.Errorf("module %q is not declared in the pack", args[0]))
	}

	resolver := linkage.NewResolver(m, linkage.WithExtraExtensions(extraExtensions()))
	flags := resolver.LinkFlags(name)

	if len(flags) == 0 {
		if verbose {
			fmt.Fprintf(os.Stderr, "%s %s needs no C++ runtime linkage\n",
				VerboseStyle.Render("·"), ModuleStyle.Render(args[0]))
		}
		return nil
	}

	for _, f := range flags {
		fmt.Println(f)
	}
	return nil
}

// extraExtensions returns the configured additional C++ source extensions
// as plain strings for the resolver.
func extraExtensions() []string {
	out := make([]string, 0, len(cfg.ExtraCxxExtensions))
	for _, ext := range cfg.ExtraCxxExtensions {
		out = append(out, ext.String())
	}
	return out
}
