// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/invowk/psabigen/internal/vtable"

	"github.com/spf13/cobra"
)

func newNotesCommand(app *App) *cobra.Command {
	out := &outputFlags{}

	notesCmd := &cobra.Command{
		Use:   "notes",
		Short: "Write the legend for the vector table footnote markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.writeTables(out, vtable.Legend())
		},
	}
	out.register(notesCmd)

	return notesCmd
}
