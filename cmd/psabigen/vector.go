// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/psabigen/internal/vtable"

	"github.com/spf13/cobra"
)

func newVectorCommand(app *App) *cobra.Command {
	out := &outputFlags{}

	vectorCmd := &cobra.Command{
		Use:   "vector",
		Short: "Write the vector data and tuple type tables",
		Long: `Write the vector data and tuple type tables.

Rows list every legal combination of element width, LMUL, base type and
tuple field count, with the symbolic size in terms of VLEN and the
alignment in bytes. This is what psabigen does without a subcommand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runVector(cmd, out)
		},
	}
	out.registerVector(vectorCmd)

	return vectorCmd
}

func (a *App) runVector(cmd *cobra.Command, out *outputFlags) error {
	notes, tuples := a.vectorSettings(cmd, out)

	tables, err := vtable.Tables(vtable.Options{Notes: notes, Tuples: tuples})
	if err != nil {
		return a.fail(err)
	}
	for _, t := range tables {
		a.logger.Debug("built table", "title", t.Title, "rows", len(t.Rows))
	}

	return a.writeTables(out, tables...)
}
