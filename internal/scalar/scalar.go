// SPDX-License-Identifier: MPL-2.0

// Package scalar describes the RISC-V psABI calling conventions (ilp32*,
// lp64*) and the sizes and alignments of the C scalar types under each one.
package scalar

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/invowk/psabigen/internal/render"
)

const (
	// FloatSoft passes floating-point values in integer registers.
	FloatSoft FloatABI = "soft"
	// FloatSingle passes single-precision values in FP registers.
	FloatSingle FloatABI = "single"
	// FloatDouble passes single- and double-precision values in FP registers.
	FloatDouble FloatABI = "double"

	// MaxAlign is _Alignof(max_align_t) under every ABI.
	MaxAlign = 16
)

// ErrUnknownABI is returned when an ABI name is not recognized.
var ErrUnknownABI = errors.New("unknown ABI")

var (
	abis = []ABI{
		{Name: "ilp32", XLEN: 32, Float: FloatSoft},
		{Name: "ilp32e", XLEN: 32, Float: FloatSoft, RVE: true},
		{Name: "ilp32f", XLEN: 32, Float: FloatSingle},
		{Name: "ilp32d", XLEN: 32, Float: FloatDouble},
		{Name: "lp64", XLEN: 64, Float: FloatSoft},
		{Name: "lp64f", XLEN: 64, Float: FloatSingle},
		{Name: "lp64d", XLEN: 64, Float: FloatDouble},
	}

	ilp32Types = []Type{
		{Name: "_Bool", Size: 1, Align: 1},
		{Name: "char", Size: 1, Align: 1},
		{Name: "short", Size: 2, Align: 2},
		{Name: "int", Size: 4, Align: 4},
		{Name: "wchar_t", Size: 4, Align: 4},
		{Name: "wint_t", Size: 4, Align: 4},
		{Name: "long", Size: 4, Align: 4},
		{Name: "long long", Size: 8, Align: 8},
		{Name: "void *", Size: 4, Align: 4},
		{Name: "float", Size: 4, Align: 4},
		{Name: "double", Size: 8, Align: 8},
		{Name: "long double", Size: 16, Align: 16},
		{Name: "_Complex float", Size: 8, Align: 4},
		{Name: "_Complex double", Size: 16, Align: 8},
		{Name: "_Complex long double", Size: 32, Align: 16},
	}

	lp64Types = []Type{
		{Name: "_Bool", Size: 1, Align: 1},
		{Name: "char", Size: 1, Align: 1},
		{Name: "short", Size: 2, Align: 2},
		{Name: "int", Size: 4, Align: 4},
		{Name: "wchar_t", Size: 4, Align: 4},
		{Name: "wint_t", Size: 4, Align: 4},
		{Name: "long", Size: 8, Align: 8},
		{Name: "long long", Size: 8, Align: 8},
		{Name: "__int128", Size: 16, Align: 16},
		{Name: "void *", Size: 8, Align: 8},
		{Name: "float", Size: 4, Align: 4},
		{Name: "double", Size: 8, Align: 8},
		{Name: "long double", Size: 16, Align: 16},
		{Name: "_Complex float", Size: 8, Align: 4},
		{Name: "_Complex double", Size: 16, Align: 8},
		{Name: "_Complex long double", Size: 32, Align: 16},
		{Name: "_Atomic(_Bool)", Size: 1, Align: 1},
		{Name: "_Atomic(char)", Size: 1, Align: 1},
		{Name: "_Atomic(short)", Size: 2, Align: 2},
		{Name: "_Atomic(int)", Size: 4, Align: 4},
		{Name: "_Atomic(wchar_t)", Size: 4, Align: 4},
		{Name: "_Atomic(wint_t)", Size: 4, Align: 4},
		{Name: "_Atomic(long)", Size: 8, Align: 8},
		{Name: "_Atomic(long long)", Size: 8, Align: 8},
		{Name: "_Atomic(__int128)", Size: 16, Align: 16},
		{Name: "_Atomic(void *)", Size: 8, Align: 8},
		{Name: "_Atomic(float)", Size: 4, Align: 4},
		{Name: "_Atomic(double)", Size: 8, Align: 8},
		{Name: "_Atomic(long double)", Size: 16, Align: 16},
		{Name: "_Atomic(_Complex float)", Size: 8, Align: 8},
		{Name: "_Atomic(_Complex double)", Size: 16, Align: 16},
		{Name: "_Atomic(_Complex long double)", Size: 32, Align: 16},
	}
)

type (
	// FloatABI is the floating-point calling convention of an ABI.
	FloatABI string

	// ABI is a RISC-V psABI integer and floating-point calling convention.
	ABI struct {
		Name  string
		XLEN  int
		Float FloatABI
		// RVE marks the reduced-register ABI for the E base ISA.
		RVE bool
	}

	// Type is a C scalar type with its size and alignment in bytes.
	Type struct {
		Name  string
		Size  int
		Align int
	}

	// UnknownABIError is returned by LookupABI for unrecognized names.
	// It wraps ErrUnknownABI for errors.Is() compatibility.
	UnknownABIError struct {
		Name string
	}
)

// ABIs returns every supported ABI, 32-bit first.
func ABIs() []ABI { return slices.Clone(abis) }

// ABINames returns the names of every supported ABI.
func ABINames() []string {
	names := make([]string, len(abis))
	for i, a := range abis {
		names[i] = a.Name
	}
	return names
}

// LookupABI finds an ABI by name (case-insensitive).
func LookupABI(name string) (ABI, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	idx := slices.IndexFunc(abis, func(a ABI) bool { return a.Name == want })
	if idx < 0 {
		return ABI{}, &UnknownABIError{Name: name}
	}
	return abis[idx], nil
}

// Types returns the C scalar types checked under the ABI.
func (a ABI) Types() []Type {
	if a.XLEN == 64 {
		return slices.Clone(lp64Types)
	}
	return slices.Clone(ilp32Types)
}

// FLEN returns the minimum floating-point register width the ABI needs.
func (a ABI) FLEN() int {
	switch a.Float {
	case FloatSingle:
		return 32
	case FloatDouble:
		return 64
	default:
		return 0
	}
}

// String returns the ABI name.
func (a ABI) String() string { return a.Name }

// Error implements the error interface for UnknownABIError.
func (e *UnknownABIError) Error() string {
	return fmt.Sprintf("unknown ABI %q (expected one of: %s)", e.Name, strings.Join(ABINames(), ", "))
}

// Unwrap returns ErrUnknownABI for errors.Is() compatibility.
func (e *UnknownABIError) Unwrap() error { return ErrUnknownABI }

// Table returns the scalar size and alignment table for the ABI.
func Table(a ABI) render.Table {
	t := render.Table{
		Title: fmt.Sprintf("Type sizes and alignments for scalar types (%s)", a.Name),
		Columns: []render.Column{
			{Title: "Type", Weight: 4, Pad: 30, HeaderPad: 30},
			{Title: "Size (Bytes)", Weight: 2, Right: true, Pad: 12, HeaderPad: 12},
			{Title: "Alignment (Bytes)", Weight: 2, Right: true},
		},
	}
	for _, typ := range a.Types() {
		t.Rows = append(t.Rows, []string{typ.Name, strconv.Itoa(typ.Size), strconv.Itoa(typ.Align)})
	}
	t.Rows = append(t.Rows, []string{"max_align_t", "", strconv.Itoa(MaxAlign)})
	return t
}
