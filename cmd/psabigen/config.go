// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/invowk/psabigen/internal/config"
	"github.com/invowk/psabigen/internal/sanity"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `psabigen config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage psabigen configuration",
		Long: `Manage psabigen configuration.

Configuration is read from the first of:
  - the file given with --config
  - Linux: ~/.config/psabigen/config.cue
    macOS: ~/Library/Application Support/psabigen/config.cue
    Windows: %APPDATA%\psabigen\config.cue
  - ./config.cue`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig()
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(app.stdout, config.GenerateCUE(app.cfg))
			return err
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.initConfig()
		},
	})

	return cfgCmd
}

func (a *App) showConfig() error {
	var sb strings.Builder

	field := func(indent, key, value string) {
		fmt.Fprintf(&sb, "%s%s: %s\n", indent, CmdStyle.Render(key), SuccessStyle.Render(value))
	}
	unset := func(indent, key, note string) {
		fmt.Fprintf(&sb, "%s%s: %s\n", indent, CmdStyle.Render(key), SubtitleStyle.Render(note))
	}

	sb.WriteString(TitleStyle.Render("Current Configuration"))
	sb.WriteString("\n\n")
	if a.cfgPath != "" {
		field("", "Config file", a.cfgPath)
	} else {
		unset("", "Config file", "(using defaults)")
	}

	cfg := a.cfg
	sb.WriteString("\n" + CmdStyle.Render("output") + ":\n")
	field("  ", "format", cfg.Output.Format.String())
	field("  ", "notes", fmt.Sprintf("%v", cfg.Output.Notes))
	field("  ", "tuples", fmt.Sprintf("%v", cfg.Output.Tuples))

	sb.WriteString("\n" + CmdStyle.Render("sanity") + ":\n")
	field("  ", "abi", cfg.Sanity.ABI)
	if cfg.Sanity.Arch != "" {
		field("  ", "arch", cfg.Sanity.Arch)
	} else {
		unset("  ", "arch", "(smallest ISA for the ABI)")
	}
	if cfg.Sanity.CompileCommand != "" {
		field("  ", "compile_command", cfg.Sanity.CompileCommand)
	} else {
		unset("  ", "compile_command", "(default) "+sanity.DefaultCompileCommand)
	}

	sb.WriteString("\n" + CmdStyle.Render("ui") + ":\n")
	field("  ", "color_scheme", cfg.UI.ColorScheme.String())
	field("  ", "verbose", fmt.Sprintf("%v", cfg.UI.Verbose))

	_, err := io.WriteString(a.stdout, sb.String())
	return err
}

func (a *App) initConfig() error {
	path, created, err := config.CreateDefaultConfig("")
	if err != nil {
		return err
	}

	if !created {
		_, err = fmt.Fprintf(a.stdout, "%s %s\n", WarningStyle.Render("Configuration file already exists:"), path)
		return err
	}
	_, err = fmt.Fprintf(a.stdout, "%s %s\n", SuccessStyle.Render("Created configuration file:"), path)
	return err
}
