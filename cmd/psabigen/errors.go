// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"

	"github.com/invowk/psabigen/internal/config"
	"github.com/invowk/psabigen/internal/issue"
	"github.com/invowk/psabigen/internal/render"
	"github.com/invowk/psabigen/internal/sanity"
	"github.com/invowk/psabigen/internal/scalar"
	"github.com/invowk/psabigen/internal/vtype"
)

// errOutputWrite marks failures to deliver rendered output.
var errOutputWrite = errors.New("output write failed")

// issueFor maps an error to the catalog entry that explains it.
func issueFor(err error) (issue.Id, bool) {
	switch {
	case errors.Is(err, vtype.ErrUnlistedFraction):
		return issue.SizeInvariantId, true
	case errors.Is(err, render.ErrUnknownFormat):
		return issue.UnknownFormatId, true
	case errors.Is(err, scalar.ErrUnknownABI):
		return issue.UnknownABIId, true
	case errors.Is(err, sanity.ErrInvalidArch), errors.Is(err, sanity.ErrArchMismatch):
		return issue.InvalidArchId, true
	case errors.Is(err, sanity.ErrCompileFailed):
		return issue.CompileFailedId, true
	case errors.Is(err, errOutputWrite):
		return issue.OutputWriteFailedId, true
	default:
		return 0, false
	}
}

// fail explains err on stderr when the catalog knows it and converts it into
// an ExitError. Failed compiles keep the compiler's exit status.
func (a *App) fail(err error) error {
	if id, ok := issueFor(err); ok {
		a.renderIssue(id)
	}

	code := 1
	var compileErr *sanity.CompileError
	if errors.As(err, &compileErr) && compileErr.ExitCode > 0 {
		code = compileErr.ExitCode
	}
	return &ExitError{Code: code, Err: err}
}

// renderIssue writes the catalog entry for id to stderr.
func (a *App) renderIssue(id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render(glamourStyle(a.cfg.UI.ColorScheme))
	if err != nil {
		a.logger.Debug("failed to render issue", "id", id, "err", err)
		return
	}
	_, _ = io.WriteString(a.stderr, rendered)
}

// glamourStyle maps the configured color scheme to a glamour style name.
func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors list their suggestions, and the full chain in verbose mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
