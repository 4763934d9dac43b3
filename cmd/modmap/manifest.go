// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"modmap-cli/internal/diag"
	"modmap-cli/internal/issue"
	"modmap-cli/pkg/fspath"
	"modmap-cli/pkg/pack"
	"modmap-cli/pkg/types"

	"github.com/charmbracelet/log"
)

// loadManifest loads and validates the pack manifest selected by the
// --manifest flag. The returned root is the absolute pack root directory;
// all relative manifest paths are resolved against it. Load failures are
// returned as ServiceError so RunE handlers render the issue catalog entry.
func loadManifest() (*pack.Manifest, types.FilesystemPath, error) {
	absManifest, err := fspath.Abs(types.FilesystemPath(manifestFile))
	if err != nil {
		return nil, "", err
	}

	m, err := pack.Load(absManifest)
	if err != nil {
		switch {
		case errors.Is(err, pack.ErrManifestNotFound):
			return nil, "", newServiceError(err, issue.ManifestNotFoundId, "")
		default:
			return nil, "", newServiceError(err, issue.ManifestParseErrorId,
				ErrorStyle.Render("✗ Failed to load manifest")+"\n"+
					formatErrorForDisplay(err, verbose)+"\n")
		}
	}

	return m, fspath.Dir(absManifest), nil
}

// buildDir resolves the build output directory: the --build-dir flag wins,
// then the configured build_dir, then <root>/build. The result is always
// absolute because root is.
func buildDir(root types.FilesystemPath, flagValue string) types.FilesystemPath {
	switch {
	case flagValue != "":
		if fspath.IsAbs(types.FilesystemPath(flagValue)) {
			return types.FilesystemPath(flagValue)
		}
		return fspath.JoinStr(root, flagValue)
	case cfg.BuildDir != "":
		if fspath.IsAbs(types.FilesystemPath(cfg.BuildDir)) {
			return types.FilesystemPath(cfg.BuildDir)
		}
		return fspath.JoinStr(root, cfg.BuildDir.String())
	default:
		return fspath.JoinStr(root, "build")
	}
}

// renderDiagnostics writes structured core diagnostics as styled lines.
func renderDiagnostics(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		style := WarningStyle
		label := "Warning"
		if d.Severity == diag.SeverityError {
			style = ErrorStyle
			label = "Error"
		}
		line := style.Render(label+": ") + d.Message
		if d.Path != "" {
			line += " " + VerboseStyle.Render("("+d.Path+")")
		}
		fmt.Fprintln(w, line)
	}
}

// renderMissingHeadersHelp prints the issue catalog guidance for a missing
// include directory. Rendered at most once per diagnostic batch, after the
// per-diagnostic lines.
func renderMissingHeadersHelp(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		if d.Code != diag.CodeMissingIncludeDir {
			continue
		}
		entry := issue.Get(issue.NoPublicHeadersId)
		if entry == nil {
			return
		}
		rendered, err := entry.Render("dark")
		if err != nil {
			log.Warn("failed to render issue catalog entry", "issueID", issue.NoPublicHeadersId, "error", err)
			return
		}
		fmt.Fprint(w, rendered)
		return
	}
}
