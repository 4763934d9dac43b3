// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"modmap-cli/internal/modcache"
	"modmap-cli/pkg/types"

	"github.com/spf13/cobra"
)

var (
	// cacheToolchainFlag overrides the configured toolchain.
	cacheToolchainFlag string
	// cachePrefixFlag overrides the configured cache prefix.
	cachePrefixFlag string

	cacheFlagsCmd = &cobra.Command{
		Use:   "cache-flags",
		Short: "Print module cache compiler flags",
		Long: `Cache-flags prints the compiler arguments that enable the shared module
cache, one per line. The cache directory is always <prefix>/ModuleCache;
clang takes a single combined flag while swiftc takes the flag name and
the path as two arguments. Setting ` + modcache.DisableEnv + ` suppresses
all output.`,
		RunE: runCacheFlags,
	}
)

func init() {
	cacheFlagsCmd.Flags().StringVarP(&cacheToolchainFlag, "toolchain", "t", "", "toolchain flag shape: clang or swift (default from config)")
	cacheFlagsCmd.Flags().StringVar(&cachePrefixFlag, "cache-prefix", "", "directory the ModuleCache is created under (default build dir)")
}

func runCacheFlags(cmd *cobra.Command, args []string) error {
	tc := modcache.Toolchain(cfg.Toolchain)
	if cacheToolchainFlag != "" {
		switch cacheToolchainFlag {
		case "clang":
			tc = modcache.ToolchainClang
		case "swift":
			tc = modcache.ToolchainSwift
		default:
			return failWith(fmt.Errorf("unknown toolchain %q (valid: clang, swift)", cacheToolchainFlag))
		}
	}

	prefix, err := cachePrefix()
	if err != nil {
		return failWith(err)
	}

	flags := modcache.Flags(prefix, tc)
	if verbose {
		fmt.Fprintf(os.Stderr, "%s cache dir %s\n",
			VerboseStyle.Render("·"), ModuleStyle.Render(modcache.Dir(prefix).String()))
	}
	for _, f := range flags {
		fmt.Println(f)
	}
	return nil
}

// cachePrefix resolves the cache prefix directory: flag, then config, then
// the pack build directory. The manifest is only consulted when neither
// explicit source is set.
func cachePrefix() (types.FilesystemPath, error) {
	if cachePrefixFlag != "" {
		return types.FilesystemPath(cachePrefixFlag), nil
	}
	if cfg.CachePrefix != "" {
		return types.FilesystemPath(cfg.CachePrefix), nil
	}

	_, root, err := loadManifest()
	if err != nil {
		return "", err
	}
	return buildDir(root, ""), nil
}
