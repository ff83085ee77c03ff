// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the psabigen command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	out := &outputFlags{}

	rootCmd := &cobra.Command{
		Use:   "psabigen",
		Short: "Generate RISC-V psABI type tables",
		Long: TitleStyle.Render("psabigen") + SubtitleStyle.Render(" - RISC-V psABI type table generator") + `

psabigen enumerates the RISC-V vector types (SEW, LMUL, base type and
tuple field count), computes their symbolic sizes and alignments, and
writes the tables published in the psABI document.

Without a subcommand it writes the vector data and tuple type tables
as AsciiDoc, exactly as they appear in the psABI.

` + SubtitleStyle.Render("Examples:") + `
  psabigen                        Write the vector type tables
  psabigen --notes -f table       Show the tables with footnotes in the terminal
  psabigen scalar --abi ilp32f    Write the scalar type table for ILP32F
  psabigen sanity --compile       Check a RISC-V toolchain against the psABI
  psabigen config init            Create a default configuration file`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfig(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runVector(cmd, out)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/psabigen/config.cue)")
	out.registerVector(rootCmd)

	rootCmd.AddCommand(
		newVectorCommand(app),
		newScalarCommand(app),
		newSanityCommand(app),
		newNotesCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it. It is called by main.main and
// exits the process on failure.
func Execute() {
	app := NewApp(Dependencies{})
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
