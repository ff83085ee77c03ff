// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/invowk/psabigen/internal/issue"
	"github.com/invowk/psabigen/internal/render"

	"github.com/spf13/cobra"
)

// outputFlags holds the output flags of one table command. Unset flags fall
// back to the configuration.
type outputFlags struct {
	format   string
	output   string
	notes    bool
	noTuples bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "output format: asciidoc, markdown, preview, table, toml or cue (default from config)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write to this file instead of stdout")
}

func (o *outputFlags) registerVector(cmd *cobra.Command) {
	o.register(cmd)
	cmd.Flags().BoolVar(&o.notes, "notes", false, "add a Notes column with footnote markers")
	cmd.Flags().BoolVar(&o.noTuples, "no-tuples", false, "omit the vector tuple type table")
}

// resolveFormat picks the --format flag over the configured format.
func (a *App) resolveFormat(o *outputFlags) (render.Format, error) {
	name := string(a.cfg.Output.Format)
	if o.format != "" {
		name = o.format
	}
	return render.ParseFormat(name)
}

// vectorSettings resolves --notes and --no-tuples against the configuration.
func (a *App) vectorSettings(cmd *cobra.Command, o *outputFlags) (notes, tuples bool) {
	notes, tuples = a.cfg.Output.Notes, a.cfg.Output.Tuples
	if cmd.Flags().Changed("notes") {
		notes = o.notes
	}
	if cmd.Flags().Changed("no-tuples") {
		tuples = !o.noTuples
	}
	return notes, tuples
}

// writeTables renders the tables in the resolved format and delivers them.
func (a *App) writeTables(o *outputFlags, tables ...render.Table) error {
	format, err := a.resolveFormat(o)
	if err != nil {
		return a.fail(err)
	}
	opts := render.Options{Style: glamourStyle(a.cfg.UI.ColorScheme)}

	return a.writeOutput(o.output, func(w io.Writer) error {
		return render.Write(w, format, opts, tables...)
	})
}

// writeOutput runs produce into memory and only then writes the result to
// path (stdout when empty), so a failing producer leaves no partial output.
func (a *App) writeOutput(path string, produce func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := produce(&buf); err != nil {
		return a.fail(err)
	}

	if path == "" {
		if _, err := a.stdout.Write(buf.Bytes()); err != nil {
			return a.fail(outputError("stdout", err))
		}
		return nil
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return a.fail(outputError(path, err))
	}
	a.logger.Debug("wrote output", "path", path, "bytes", buf.Len())
	return nil
}

func outputError(target string, err error) error {
	return issue.NewErrorContext().
		WithOperation("write output").
		WithResource(target).
		WithSuggestion("Check that the destination directory exists and is writable").
		Wrap(fmt.Errorf("%w: %w", errOutputWrite, err)).
		BuildError()
}
