// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the psabigen CLI commands.
//
// The root command writes the RISC-V vector type tables. Subcommands cover the
// scalar type tables, the C sanity checks, the footnote legend and the
// configuration file.
package cmd
