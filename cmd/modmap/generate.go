// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"modmap-cli/internal/depgraph"
	"modmap-cli/internal/issue"
	"modmap-cli/internal/modulemap"
	"modmap-cli/pkg/fspath"
	"modmap-cli/pkg/pack"
	"modmap-cli/pkg/types"

	"github.com/spf13/cobra"
)

var (
	// generateBuildDirFlag overrides the build output directory.
	generateBuildDirFlag string

	generateCmd = &cobra.Command{
		Use:   "generate [module...]",
		Short: "Generate module map descriptors for clang modules",
		Long: `Generate classifies each clang module's public header layout and writes a
module.modulemap descriptor into the build tree. Without arguments every
clang module in the pack is processed, in dependency order. Existing
descriptors are left untouched, so repeated runs are no-ops.`,
		RunE: runGenerate,
	}
)

func init() {
	generateCmd.Flags().StringVarP(&generateBuildDirFlag, "build-dir", "o", "", "build output directory (default <pack root>/build)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	m, root, err := loadManifest()
	if err != nil {
		return failWith(err)
	}

	order, err := depgraph.FromManifest(m).TopologicalSort()
	if err != nil {
		var cycleErr *depgraph.CycleError
		if errors.As(err, &cycleErr) {
			return failWith(newServiceError(err, issue.DependencyCycleId,
				ErrorStyle.Render("✗ "+cycleErr.Error())+"\n"))
		}
		return failWith(err)
	}

	targets, err := selectTargets(m, args)
	if err != nil {
		return failWith(err)
	}

	outDir := buildDir(root, generateBuildDirFlag)

	var generated, failed int
	for _, name := range order {
		mod, ok := m.Module(name)
		if !ok || !mod.IsClang() || !targets[name] {
			continue
		}

		req := requestFor(mod, root, outDir)
		diags, genErr := modulemap.Generate(req)
		renderDiagnostics(os.Stderr, diags)
		renderMissingHeadersHelp(os.Stderr, diags)

		if genErr != nil {
			failed++
			var layoutErr *modulemap.UnsupportedLayoutError
			if errors.As(genErr, &layoutErr) {
				renderServiceError(os.Stderr, newServiceError(genErr, issue.UnsupportedLayoutId,
					ErrorStyle.Render("✗ "+layoutErr.Error())+"\n"))
			} else {
				fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ ")+formatErrorForDisplay(genErr, verbose))
			}
			continue
		}

		generated++
		if verbose {
			fmt.Fprintf(os.Stderr, "%s %s %s\n",
				SuccessStyle.Render("✓"),
				ModuleStyle.Render(mod.Name.String()),
				VerboseStyle.Render(req.DescriptorPath().String()))
		}
	}

	if failed > 0 {
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d of %d module(s) failed module map generation", failed, failed+generated),
		}
	}

	fmt.Printf("%s %d module map(s) up to date under %s\n",
		SuccessStyle.Render("✓"), generated, ModuleStyle.Render(outDir.String()))
	return nil
}

// selectTargets resolves the positional arguments into the set of clang
// modules to process. With no arguments every clang module is selected.
func selectTargets(m *pack.Manifest, args []string) (map[types.ModuleName]bool, error) {
	targets := make(map[types.ModuleName]bool)

	if len(args) == 0 {
		for _, mod := range m.ClangModules() {
			targets[mod.Name] = true
		}
		return targets, nil
	}

	for _, arg := range args {
		name := types.ModuleName(arg)
		mod, ok := m.Module(name)
		if !ok {
			return nil, fmt.Errorf("module %q is not declared in the pack", arg)
		}
		if !mod.IsClang() {
			return nil, fmt.Errorf("module %q is not a clang module", arg)
		}
		targets[name] = true
	}
	return targets, nil
}

// requestFor builds the classification request for one clang module. All
// request paths are absolute: relative manifest paths resolve against the
// pack root, and the descriptor lands in <buildDir>/<identifier>/.
func requestFor(mod *pack.Module, root, outDir types.FilesystemPath) modulemap.Request {
	ident := mod.CIdentifier()

	includeDir := mod.IncludeDir
	if includeDir == "" {
		includeDir = fspath.JoinStr(mod.Path, "include")
	}

	return modulemap.Request{
		Identifier:   ident,
		DeclaredName: mod.Name,
		IncludeDir:   fspath.Join(root, includeDir),
		OutputDir:    fspath.JoinStr(outDir, ident.String()),
	}
}

// failWith renders a ServiceError (when the error is one) and converts the
// failure into a non-zero ExitError for Execute.
func failWith(err error) error {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(os.Stderr, svcErr)
	}
	return &ExitError{Code: 1, Err: err}
}
