// SPDX-License-Identifier: MPL-2.0

package sanity

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/invowk/psabigen/internal/scalar"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// DefaultCompileCommand checks the generated source with a syntax-only compile.
const DefaultCompileCommand = `${CC:-cc} -march="$PSABI_ARCH" -mabi="$PSABI_ABI" -fsyntax-only -x c -`

var (
	// ErrEmptyCommand is returned when no compile command is configured.
	ErrEmptyCommand = errors.New("compile command is empty")
	// ErrCompileFailed is the sentinel wrapped by CompileError.
	ErrCompileFailed = errors.New("sanity check compile failed")
)

type (
	// Compiler runs a shell command over generated sanity sources.
	// The command runs in an embedded POSIX shell, so it behaves the same on
	// every host; the source is fed on stdin.
	Compiler struct {
		// Command is the shell command line. Empty means DefaultCompileCommand.
		Command string
		// Env is the base environment in KEY=VALUE form.
		Env []string
		// Dir is the working directory (empty for the current one).
		Dir    string
		Stdout io.Writer
		Stderr io.Writer
		Logger *log.Logger
	}

	// CompileError reports a compile command that exited non-zero.
	// It wraps ErrCompileFailed for errors.Is() compatibility.
	CompileError struct {
		ABI      string
		Arch     string
		ExitCode int
	}
)

// Run generates the checks for abi and arch and feeds them to the command.
func (c *Compiler) Run(ctx context.Context, abi scalar.ABI, arch Arch) error {
	var src bytes.Buffer
	if err := Generate(&src, abi, &arch); err != nil {
		return err
	}

	command := c.Command
	if strings.TrimSpace(command) == "" {
		command = DefaultCompileCommand
	}

	file, err := syntax.NewParser().Parse(strings.NewReader(command), "compile_command")
	if err != nil {
		return fmt.Errorf("failed to parse compile command: %w", err)
	}
	if len(file.Stmts) == 0 {
		return ErrEmptyCommand
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(c.environ(abi, arch)...)),
		interp.StdIO(&src, c.stdout(), c.stderr()),
	}
	if c.Dir != "" {
		opts = append(opts, interp.Dir(c.Dir))
	}
	runner, err := interp.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create shell runner: %w", err)
	}

	c.logger().Debug("running sanity compile", "abi", abi.Name, "arch", arch.Name, "command", command)
	if err := runner.Run(ctx, file); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return &CompileError{ABI: abi.Name, Arch: arch.Name, ExitCode: int(exitStatus)}
		}
		return fmt.Errorf("failed to run compile command: %w", err)
	}
	c.logger().Debug("sanity compile passed", "abi", abi.Name, "arch", arch.Name)
	return nil
}

// environ returns the command environment: the base environment followed by
// PSABI_ABI, PSABI_ARCH and PSABI_XLEN. Later entries win.
func (c *Compiler) environ(abi scalar.ABI, arch Arch) []string {
	env := make([]string, 0, len(c.Env)+3)
	env = append(env, c.Env...)
	env = append(env,
		"PSABI_ABI="+abi.Name,
		"PSABI_ARCH="+arch.Name,
		fmt.Sprintf("PSABI_XLEN=%d", arch.XLEN),
	)
	return env
}

func (c *Compiler) stdout() io.Writer {
	if c.Stdout == nil {
		return io.Discard
	}
	return c.Stdout
}

func (c *Compiler) stderr() io.Writer {
	if c.Stderr == nil {
		return io.Discard
	}
	return c.Stderr
}

func (c *Compiler) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}

// Error implements the error interface for CompileError.
func (e *CompileError) Error() string {
	return fmt.Sprintf("sanity checks for %s on %s failed to compile (exit status %d)", e.ABI, e.Arch, e.ExitCode)
}

// Unwrap returns ErrCompileFailed for errors.Is() compatibility.
func (e *CompileError) Unwrap() error { return ErrCompileFailed }
