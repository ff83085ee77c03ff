// SPDX-License-Identifier: MPL-2.0

package sanity

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/invowk/psabigen/internal/scalar"
)

func mustABI(t *testing.T, name string) scalar.ABI {
	t.Helper()
	abi, err := scalar.LookupABI(name)
	if err != nil {
		t.Fatal(err)
	}
	return abi
}

func TestParseArch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		wantXLEN int
		wantFLEN int
		wantRVE  bool
		wantErr  bool
	}{
		{in: "rv64imafdc", wantXLEN: 64, wantFLEN: 64},
		{in: "RV64GC", wantXLEN: 64, wantFLEN: 64},
		{in: "rv32imafc", wantXLEN: 32, wantFLEN: 32},
		{in: "rv32imac", wantXLEN: 32},
		{in: "rv32ec", wantXLEN: 32, wantRVE: true},
		{in: "rv64imafdcv_zba_zbb", wantXLEN: 64, wantFLEN: 64},
		{in: "rv128i", wantErr: true},
		{in: "rv64", wantErr: true},
		{in: "rv64mac", wantErr: true},
		{in: "rv32i2p1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			a, err := ParseArch(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArch) {
					t.Fatalf("ParseArch(%q) error = %v, want ErrInvalidArch", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArch(%q) error = %v", tt.in, err)
			}
			if a.XLEN != tt.wantXLEN || a.FLEN != tt.wantFLEN || a.IsRVE() != tt.wantRVE {
				t.Errorf("ParseArch(%q) = %+v", tt.in, a)
			}
		})
	}
}

func TestDefaultArch_SupportsEveryABI(t *testing.T) {
	t.Parallel()

	for _, abi := range scalar.ABIs() {
		arch := DefaultArch(abi)
		if err := arch.Supports(abi); err != nil {
			t.Errorf("DefaultArch(%s) = %s: %v", abi.Name, arch.Name, err)
		}
		parsed, err := ParseArch(arch.Name)
		if err != nil {
			t.Errorf("DefaultArch(%s) = %q does not parse: %v", abi.Name, arch.Name, err)
			continue
		}
		if parsed != arch {
			t.Errorf("DefaultArch(%s) = %+v, parsed back as %+v", abi.Name, arch, parsed)
		}
	}
}

func TestArch_Supports(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arch    string
		abi     string
		wantErr bool
	}{
		{"rv64gc", "lp64d", false},
		{"rv64gc", "lp64", false},
		{"rv64imac", "lp64f", true},
		{"rv32gc", "lp64d", true},
		{"rv32imafc", "ilp32d", true},
		{"rv32ec", "ilp32e", false},
		{"rv32imac", "ilp32e", true},
		{"rv32ec", "ilp32", true},
	}

	for _, tt := range tests {
		t.Run(tt.arch+"/"+tt.abi, func(t *testing.T) {
			t.Parallel()

			arch, err := ParseArch(tt.arch)
			if err != nil {
				t.Fatal(err)
			}
			err = arch.Supports(mustABI(t, tt.abi))
			if tt.wantErr != (err != nil) {
				t.Fatalf("Supports() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrArchMismatch) {
				t.Errorf("Supports() error = %v, want ErrArchMismatch", err)
			}
		})
	}
}

func TestGenerate_LP64D(t *testing.T) {
	t.Parallel()

	arch, err := ParseArch("rv64imafdc")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, mustABI(t, "lp64d"), &arch); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"// RISC-V LP64D sanity checks",
		"CHECK_SIZE_ALIGN(long, 8, 8);",
		"CHECK_SIZE_ALIGN(__int128, 16, 16);",
		"CHECK_SIZE_ALIGN(_Atomic(_Complex float), 8, 8);",
		`CHECK_EQ("_Alignof(max_align_t)", 16, _Alignof(max_align_t));`,
		"#ifndef __riscv_float_abi_double\n",
		"#ifdef __riscv_float_abi_soft\n",
		"#ifdef __riscv_abi_rve\n",
		"CHECK_DEFINED_EQ(__riscv_xlen, 64);",
		"CHECK_DEFINED_EQ(__riscv_flen, 64);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerate_ILP32E(t *testing.T) {
	t.Parallel()

	arch, err := ParseArch("rv32ec")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Generate(&buf, mustABI(t, "ilp32e"), &arch); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "__int128") {
		t.Error("ilp32e output should not check __int128")
	}
	for _, want := range []string{
		"CHECK_SIZE_ALIGN(long, 4, 4);",
		"#ifndef __riscv_abi_rve\n",
		"#ifndef __riscv_float_abi_soft\n",
		"#ifdef __riscv_flen\n",
		"CHECK_DEFINED_EQ(__riscv_xlen, 32);",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestGenerate_WithoutArch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Generate(&buf, mustABI(t, "ilp32"), nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "__riscv_xlen") {
		t.Error("arch checks emitted without an arch")
	}
}

func TestGenerate_ArchMismatch(t *testing.T) {
	t.Parallel()

	arch, err := ParseArch("rv32gc")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	err = Generate(&buf, mustABI(t, "lp64d"), &arch)
	if !errors.Is(err, ErrArchMismatch) {
		t.Fatalf("Generate() error = %v, want ErrArchMismatch", err)
	}
	if buf.Len() != 0 {
		t.Error("Generate() wrote output on failure")
	}
}

func TestCompiler_Run(t *testing.T) {
	t.Parallel()

	abi := mustABI(t, "lp64d")
	var stdout bytes.Buffer
	c := &Compiler{
		Command: `read -r first; echo "$first"; echo "$PSABI_ABI $PSABI_ARCH $PSABI_XLEN"`,
		Stdout:  &stdout,
	}
	if err := c.Run(context.Background(), abi, DefaultArch(abi)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "// RISC-V LP64D sanity checks    -*- C -*-\nlp64d rv64imafdc 64\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestCompiler_RunBaseEnv(t *testing.T) {
	t.Parallel()

	abi := mustABI(t, "ilp32")
	var stdout bytes.Buffer
	c := &Compiler{
		Command: `echo "${CC:-none}"`,
		Env:     []string{"CC=riscv32-unknown-elf-gcc"},
		Stdout:  &stdout,
	}
	if err := c.Run(context.Background(), abi, DefaultArch(abi)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "riscv32-unknown-elf-gcc" {
		t.Errorf("stdout = %q", got)
	}
}

func TestCompiler_RunFailure(t *testing.T) {
	t.Parallel()

	abi := mustABI(t, "lp64")
	c := &Compiler{Command: "exit 3"}
	err := c.Run(context.Background(), abi, DefaultArch(abi))
	if !errors.Is(err, ErrCompileFailed) {
		t.Fatalf("Run() error = %v, want ErrCompileFailed", err)
	}
	var compileErr *CompileError
	if !errors.As(err, &compileErr) || compileErr.ExitCode != 3 {
		t.Errorf("Run() error = %#v, want exit code 3", err)
	}
}

func TestCompiler_RunInvalidCommand(t *testing.T) {
	t.Parallel()

	abi := mustABI(t, "lp64")
	c := &Compiler{Command: "if then"}
	if err := c.Run(context.Background(), abi, DefaultArch(abi)); err == nil {
		t.Fatal("Run() should fail to parse the command")
	}
}

func TestCompiler_RunEmptyCommandUsesDefault(t *testing.T) {
	t.Parallel()

	abi := mustABI(t, "lp64")
	var stderr bytes.Buffer
	c := &Compiler{
		Command: "   ",
		Env:     []string{"CC=psabigen-no-such-compiler"},
		Stderr:  &stderr,
	}
	err := c.Run(context.Background(), abi, DefaultArch(abi))
	if !errors.Is(err, ErrCompileFailed) {
		t.Fatalf("Run() error = %v, want ErrCompileFailed from the missing compiler", err)
	}
}
