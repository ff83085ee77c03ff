// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/invowk/psabigen/internal/sanity"

	"github.com/spf13/cobra"
)

type sanityFlags struct {
	abi            string
	arch           string
	output         string
	compile        bool
	compileCommand string
}

func newSanityCommand(app *App) *cobra.Command {
	flags := &sanityFlags{}

	sanityCmd := &cobra.Command{
		Use:   "sanity",
		Short: "Generate or run C checks of a toolchain against the psABI",
		Long: `Generate a C translation unit that statically asserts the psABI scalar
type sizes, alignments, signedness and predefined macros for an ABI.

With --compile the source is fed on stdin to a compile command run by the
built-in POSIX shell. The command sees PSABI_ABI, PSABI_ARCH and PSABI_XLEN
in its environment. The default command is:

  ` + sanity.DefaultCompileCommand + `

` + SubtitleStyle.Render("Examples:") + `
  psabigen sanity --abi ilp32d > check.c
  CC=riscv64-linux-gnu-gcc psabigen sanity --compile --abi lp64d --arch rv64gc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runSanity(cmd, flags)
		},
	}
	sanityCmd.Flags().StringVar(&flags.abi, "abi", "", "ABI name (default from config)")
	sanityCmd.Flags().StringVar(&flags.arch, "arch", "", "ISA string, e.g. rv64gc (default: smallest ISA for the ABI)")
	sanityCmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the source to this file instead of stdout")
	sanityCmd.Flags().BoolVar(&flags.compile, "compile", false, "compile the checks instead of printing them")
	sanityCmd.Flags().StringVar(&flags.compileCommand, "compile-command", "", "shell command receiving the source on stdin (default from config)")

	return sanityCmd
}

func (a *App) runSanity(cmd *cobra.Command, flags *sanityFlags) error {
	abi, err := a.resolveABI(flags.abi)
	if err != nil {
		return a.fail(err)
	}

	archName := flags.arch
	if archName == "" {
		archName = a.cfg.Sanity.Arch
	}
	arch := sanity.DefaultArch(abi)
	if archName != "" {
		if arch, err = sanity.ParseArch(archName); err != nil {
			return a.fail(err)
		}
	}
	if err := arch.Supports(abi); err != nil {
		return a.fail(err)
	}
	a.logger.Debug("sanity target", "abi", abi.Name, "arch", arch.Name)

	if !flags.compile {
		return a.writeOutput(flags.output, func(w io.Writer) error {
			return sanity.Generate(w, abi, &arch)
		})
	}

	command := flags.compileCommand
	if command == "" {
		command = a.cfg.Sanity.CompileCommand
	}
	compiler := &sanity.Compiler{
		Command: command,
		Env:     os.Environ(),
		Stdout:  a.stdout,
		Stderr:  a.stderr,
		Logger:  a.logger,
	}
	if err := compiler.Run(cmd.Context(), abi, arch); err != nil {
		return a.fail(err)
	}

	_, err = fmt.Fprintf(a.stdout, "%s sanity checks for %s on %s passed\n", SuccessStyle.Render("✓"), abi.Name, arch.Name)
	return err
}
