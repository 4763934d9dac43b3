// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"modmap-cli/internal/depgraph"
	"modmap-cli/pkg/pack"

	"github.com/spf13/cobra"
)

var (
	// modulesTopoFlag switches the listing to dependency order.
	modulesTopoFlag bool

	modulesCmd = &cobra.Command{
		Use:   "modules",
		Short: "List the modules declared in the pack",
		Long: `Modules lists every module in the manifest with its kind and direct
dependencies. With --topo the listing follows topological order, so each
module appears after everything it depends on.`,
		RunE: runModules,
	}
)

func init() {
	modulesCmd.Flags().BoolVar(&modulesTopoFlag, "topo", false, "list modules in dependency order")
}

func runModules(cmd *cobra.Command, args []string) error {
	m, _, err := loadManifest()
	if err != nil {
		return failWith(err)
	}

	mods := m.Modules
	if modulesTopoFlag {
		order, err := depgraph.FromManifest(m).TopologicalSort()
		if err != nil {
			return failWith(err)
		}
		mods = make([]*pack.Module, 0, len(order))
		for _, name := range order {
			if mod, ok := m.Module(name); ok {
				mods = append(mods, mod)
			}
		}
	}

	fmt.Println(TitleStyle.Render(m.Pack.Name) + SubtitleStyle.Render(" "+m.Pack.Version))
	if m.Pack.Description != "" {
		fmt.Println(SubtitleStyle.Render(m.Pack.Description))
	}
	fmt.Println()

	for _, mod := range mods {
		line := "  " + ModuleStyle.Render(mod.Name.String()) + SubtitleStyle.Render(" ("+string(mod.Kind)+")")
		if ident := mod.CIdentifier(); ident.String() != mod.Name.String() {
			line += VerboseStyle.Render(" as " + ident.String())
		}
		if len(mod.Deps) > 0 {
			names := make([]string, len(mod.Deps))
			for i, d := range mod.Deps {
				names[i] = d.String()
			}
			line += SubtitleStyle.Render(" -> " + strings.Join(names, ", "))
		}
		fmt.Println(line)
	}

	return nil
}
