// SPDX-License-Identifier: MPL-2.0

package sanity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/invowk/psabigen/internal/scalar"
)

var (
	// ErrInvalidArch is returned when an ISA string cannot be parsed.
	ErrInvalidArch = errors.New("invalid architecture string")
	// ErrArchMismatch is returned when an ISA cannot host the requested ABI.
	ErrArchMismatch = errors.New("architecture does not support ABI")
)

// Arch is a parsed RISC-V ISA string such as "rv64imafdc".
type Arch struct {
	// Name is the ISA string as given.
	Name string
	XLEN int
	// FLEN is 0 without F, 32 with F and 64 with D.
	FLEN int
	// Extensions are the single-letter extensions, with "g" expanded.
	Extensions string
}

// ParseArch parses a single-letter ISA string ("rv32imac", "rv64gc").
// Multi-letter extensions after an underscore are ignored.
func ParseArch(s string) (Arch, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	base, _, _ := strings.Cut(name, "_")

	var a Arch
	switch {
	case strings.HasPrefix(base, "rv32"):
		a.XLEN = 32
	case strings.HasPrefix(base, "rv64"):
		a.XLEN = 64
	default:
		return Arch{}, fmt.Errorf("%w: %q must start with rv32 or rv64", ErrInvalidArch, s)
	}

	exts := strings.ReplaceAll(base[4:], "g", "imafd")
	if exts == "" || (exts[0] != 'i' && exts[0] != 'e') {
		return Arch{}, fmt.Errorf("%w: %q needs an i, e or g base", ErrInvalidArch, s)
	}
	for _, r := range exts {
		if r < 'a' || r > 'z' {
			return Arch{}, fmt.Errorf("%w: %q contains %q", ErrInvalidArch, s, r)
		}
	}

	switch {
	case strings.ContainsRune(exts, 'd'):
		a.FLEN = 64
	case strings.ContainsRune(exts, 'f'):
		a.FLEN = 32
	}
	a.Name = name
	a.Extensions = exts
	return a, nil
}

// DefaultArch returns the smallest common ISA that hosts the ABI.
func DefaultArch(abi scalar.ABI) Arch {
	a := Arch{XLEN: abi.XLEN, FLEN: abi.FLEN(), Extensions: "imac"}
	switch {
	case abi.RVE:
		a.Extensions = "ec"
	case abi.Float == scalar.FloatSingle:
		a.Extensions = "imafc"
	case abi.Float == scalar.FloatDouble:
		a.Extensions = "imafdc"
	}
	a.Name = fmt.Sprintf("rv%d%s", a.XLEN, a.Extensions)
	return a
}

// IsRVE reports whether the ISA uses the reduced E base.
func (a Arch) IsRVE() bool {
	return strings.HasPrefix(a.Extensions, "e")
}

// Supports checks that the ISA can host the ABI.
func (a Arch) Supports(abi scalar.ABI) error {
	if a.XLEN != abi.XLEN {
		return fmt.Errorf("%w: %s is %d-bit, %s needs %d-bit", ErrArchMismatch, a.Name, a.XLEN, abi.Name, abi.XLEN)
	}
	if a.FLEN < abi.FLEN() {
		return fmt.Errorf("%w: %s has FLEN %d, %s needs %d", ErrArchMismatch, a.Name, a.FLEN, abi.Name, abi.FLEN())
	}
	if abi.RVE != a.IsRVE() {
		return fmt.Errorf("%w: %s and %s disagree on the E base", ErrArchMismatch, a.Name, abi.Name)
	}
	return nil
}

// String returns the ISA string.
func (a Arch) String() string { return a.Name }
