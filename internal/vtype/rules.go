// SPDX-License-Identifier: MPL-2.0

package vtype

import (
	"errors"
	"fmt"
	"strconv"
)

// BaseSize is the size in bytes of one vector register, in terms of VLEN.
const BaseSize = "(VLEN / 8)"

const (
	// MarkerNarrow flags types whose SEW/LMUL ratio exceeds 32.
	MarkerNarrow Marker = iota + 1
	// MarkerHalfFloat flags 16-bit floating-point types.
	MarkerHalfFloat
	// MarkerBFloat flags brain-float types.
	MarkerBFloat
	// MarkerSingleFloat flags 32-bit floating-point types.
	MarkerSingleFloat
	// MarkerDoubleFloat flags 64-bit floating-point types.
	MarkerDoubleFloat
	// MarkerInt64 flags 64-bit integer types.
	MarkerInt64
)

// ErrUnlistedFraction is returned when a size multiplier below one has no
// rendering. It means the enumeration domain and the size rules disagree.
var ErrUnlistedFraction = errors.New("size multiplier has no rendering")

var (
	// fractionRenderings maps multipliers below one, in eighths, to their suffix.
	fractionRenderings = map[int]string{
		1: " / 8",
		2: " / 4",
		3: " * 0.375",
		4: " / 2",
		5: " * 0.625",
		6: " * 0.75",
		7: " * 0.875",
	}

	markerLegend = map[Marker]string{
		MarkerNarrow:      "Only available when ELEN is 64 (the SEW/LMUL ratio is larger than 32).",
		MarkerHalfFloat:   "Only available with half-precision floating-point support (Zvfh or Zvfhmin).",
		MarkerBFloat:      "Only available with BFloat16 support (Zvfbfmin).",
		MarkerSingleFloat: "Only available with single-precision floating-point support (Zve32f or V).",
		MarkerDoubleFloat: "Only available with double-precision floating-point support (Zve64d or V).",
		MarkerInt64:       "Only available with 64-bit element support (Zve64x or V).",
	}
)

type (
	// Marker is a footnote attached to a vector type in the documentation.
	Marker uint8

	// InvariantError reports a size multiplier that the size rules cannot
	// render. It wraps ErrUnlistedFraction. Callers should treat it as fatal.
	InvariantError struct {
		Grouping Grouping
		Tuples   TupleCount
		// Eighths is the offending multiplier, in eighths of a register.
		Eighths int
	}
)

// RegistersConsumed returns the number of physical registers one value of
// grouping g occupies. Fractional groupings still occupy a whole register.
func RegistersConsumed(g Grouping) int {
	if g.IsFractional() {
		return 1
	}
	return g.Eighths() / 8
}

// IsLegal reports whether the combination names a real vector type.
// Pass NoTuple for plain vector types.
func IsLegal(w ElementWidth, g Grouping, b BaseType, nf TupleCount) bool {
	if RegistersConsumed(g)*int(nf) > MaxRegisters {
		return false
	}
	if b == BFloat && w != 16 {
		return false
	}
	if b == Float && w == 16 {
		return false
	}
	return true
}

// SizeExpression returns the size in bytes of a type with grouping g and nf
// fields as an expression of VLEN, e.g. "(VLEN / 8) * 2" or "(VLEN / 8) / 4".
func SizeExpression(g Grouping, nf TupleCount) (string, error) {
	eighths := g.Eighths() * int(nf)
	switch {
	case eighths == 8:
		return BaseSize, nil
	case eighths > 8:
		return BaseSize + " * " + strconv.FormatFloat(float64(eighths)/8, 'g', -1, 64), nil
	}
	suffix, ok := fractionRenderings[eighths]
	if !ok {
		return "", &InvariantError{Grouping: g, Tuples: nf, Eighths: eighths}
	}
	return BaseSize + suffix, nil
}

// FootnoteMarkers returns the footnotes that apply to a type, in legend order.
func FootnoteMarkers(w ElementWidth, g Grouping, b BaseType) []Marker {
	var markers []Marker
	// (32 / SEW) * LMUL < 1, kept in integers: LMUL is eighths/8.
	if 4*g.Eighths() < int(w) {
		markers = append(markers, MarkerNarrow)
	}
	if b == Float && w == 16 {
		markers = append(markers, MarkerHalfFloat)
	}
	if b == BFloat {
		markers = append(markers, MarkerBFloat)
	}
	if b == Float && w == 32 {
		markers = append(markers, MarkerSingleFloat)
	}
	if b == Float && w == 64 {
		markers = append(markers, MarkerDoubleFloat)
	}
	if b.IsInteger() && w == 64 {
		markers = append(markers, MarkerInt64)
	}
	return markers
}

// Markers returns every footnote marker in legend order.
func Markers() []Marker {
	return []Marker{MarkerNarrow, MarkerHalfFloat, MarkerBFloat, MarkerSingleFloat, MarkerDoubleFloat, MarkerInt64}
}

// String returns the footnote token, e.g. "*1".
func (m Marker) String() string { return "*" + strconv.Itoa(int(m)) }

// Description returns the footnote text shown in the legend.
func (m Marker) Description() string { return markerLegend[m] }

// Error implements the error interface for InvariantError.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("size of LMUL %s with NF %d is %d/8 of a register, which has no rendering",
		e.Grouping, e.Tuples, e.Eighths)
}

// Unwrap returns ErrUnlistedFraction for errors.Is() compatibility.
func (e *InvariantError) Unwrap() error { return ErrUnlistedFraction }
