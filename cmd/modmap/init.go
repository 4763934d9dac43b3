// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"modmap-cli/pkg/pack"

	"github.com/spf13/cobra"
)

// starterManifest is the scaffold written by 'modmap init'.
const starterManifest = `pack: {
	name:        "my-pack"
	version:     "0.1.0"
	description: "A mixed-language pack"
}

modules: [
	{
		name:        "Core"
		kind:        "clang"
		path:        "Sources/Core"
		include_dir: "Sources/Core/include"
		sources: ["Sources/Core/core.c"]
	},
	{
		name: "App"
		kind: "source"
		path: "Sources/App"
		sources: ["Sources/App/main.code"]
		deps: ["Core"]
	},
]
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter modpack.cue in the current directory",
	Long: `Init scaffolds a minimal modpack.cue with one clang module and one
source module depending on it. Refuses to overwrite an existing manifest.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	f, err := os.OpenFile(pack.ManifestFileName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return failWith(fmt.Errorf("%s already exists, refusing to overwrite", pack.ManifestFileName))
		}
		return failWith(err)
	}

	if _, err := f.WriteString(starterManifest); err != nil {
		_ = f.Close()
		_ = os.Remove(pack.ManifestFileName)
		return failWith(err)
	}
	if err := f.Close(); err != nil {
		return failWith(err)
	}

	fmt.Println(SuccessStyle.Render("✓ ") + "Created " + ModuleStyle.Render(pack.ManifestFileName))
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Declare your modules and their include directories")
	fmt.Println("  2. Run " + ModuleStyle.Render("modmap generate") + " to write module maps")
	return nil
}
