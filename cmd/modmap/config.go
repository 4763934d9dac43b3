// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"modmap-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage modmap configuration",
		Long: `Config inspects and manages the layered modmap configuration: the global
config.cue in the platform config directory plus an optional project-local
modmap.toml next to the manifest.`,
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(config.GenerateCUE(cfg))
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the global config directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return failWith(err)
			}
			fmt.Println(dir)
			return nil
		},
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a default global config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return failWith(err)
			}
			dir, err := config.ConfigDir()
			if err != nil {
				return failWith(err)
			}
			fmt.Println(SuccessStyle.Render("✓ ") + "Config ready under " + ModuleStyle.Render(dir))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
}
