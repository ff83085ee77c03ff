// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"github.com/invowk/psabigen/internal/render"
	"github.com/invowk/psabigen/internal/scalar"

	"github.com/spf13/cobra"
)

func newScalarCommand(app *App) *cobra.Command {
	out := &outputFlags{}
	var (
		abiName string
		all     bool
	)

	scalarCmd := &cobra.Command{
		Use:   "scalar",
		Short: "Write the C scalar type size and alignment table",
		Long: `Write the C scalar type size and alignment table for an ABI.

Supported ABIs: ` + strings.Join(scalar.ABINames(), ", ") + `.
The ABI defaults to sanity.abi from the configuration (lp64d).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var abis []scalar.ABI
			if all {
				abis = scalar.ABIs()
			} else {
				abi, err := app.resolveABI(abiName)
				if err != nil {
					return app.fail(err)
				}
				abis = []scalar.ABI{abi}
			}

			tables := make([]render.Table, 0, len(abis))
			for _, abi := range abis {
				tables = append(tables, scalar.Table(abi))
			}
			return app.writeTables(out, tables...)
		},
	}
	out.register(scalarCmd)
	scalarCmd.Flags().StringVar(&abiName, "abi", "", "ABI name (default from config)")
	scalarCmd.Flags().BoolVar(&all, "all", false, "write one table per supported ABI")
	scalarCmd.MarkFlagsMutuallyExclusive("abi", "all")

	return scalarCmd
}

// resolveABI picks the named ABI, falling back to the configured one.
func (a *App) resolveABI(name string) (scalar.ABI, error) {
	if name == "" {
		name = a.cfg.Sanity.ABI
	}
	return scalar.LookupABI(name)
}
