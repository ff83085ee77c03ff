// SPDX-License-Identifier: MPL-2.0

package vtype

import (
	"errors"
	"fmt"
	"slices"
)

const (
	// LMULF8 groups one eighth of a register.
	LMULF8 Grouping = iota
	// LMULF4 groups one quarter of a register.
	LMULF4
	// LMULF2 groups half a register.
	LMULF2
	// LMUL1 groups a single register.
	LMUL1
	// LMUL2 groups two registers.
	LMUL2
	// LMUL4 groups four registers.
	LMUL4
	// LMUL8 groups eight registers.
	LMUL8
)

const (
	// Int is a signed integer element.
	Int BaseType = iota
	// Uint is an unsigned integer element.
	Uint
	// Float is an IEEE floating-point element.
	Float
	// BFloat is a brain-float element stored in a 16-bit container.
	BFloat
)

const (
	// NoTuple is the field count of a plain (non-tuple) vector type.
	NoTuple TupleCount = 1
	// MinTupleFields is the smallest field count of a tuple type.
	MinTupleFields TupleCount = 2
	// MaxTupleFields is the largest field count of a tuple type.
	MaxTupleFields TupleCount = 8

	// MaxRegisters is the number of physical registers one type may occupy.
	MaxRegisters = 8
)

var (
	// ErrIllegalType is returned when a combination does not name a vector type.
	ErrIllegalType = errors.New("illegal vector type")
	// ErrOutOfDomain is returned when a value lies outside its enumeration domain.
	ErrOutOfDomain = errors.New("value outside vector type domain")

	widths     = []ElementWidth{8, 16, 32, 64}
	groupings  = []Grouping{LMULF8, LMULF4, LMULF2, LMUL1, LMUL2, LMUL4, LMUL8}
	baseTypes  = []BaseType{Int, Uint, Float, BFloat}
	tupleSizes = []TupleCount{2, 3, 4, 5, 6, 7, 8}

	groupingTags = [...]string{"mf8", "mf4", "mf2", "m1", "m2", "m4", "m8"}
	// groupingEighths holds each LMUL as an exact count of eighths of a register.
	groupingEighths = [...]int{1, 2, 4, 8, 16, 32, 64}

	baseTypeTags = [...]string{"int", "uint", "float", "bfloat"}
)

type (
	// ElementWidth is the element width in bits (SEW).
	ElementWidth uint8

	// Grouping is the register grouping factor (LMUL).
	Grouping uint8

	// BaseType is the numeric kind of a vector element.
	BaseType uint8

	// TupleCount is the number of fields of a tuple type (NF).
	// NoTuple marks a plain vector type.
	TupleCount uint8

	// OutOfDomainError is returned when a value is not part of its domain.
	// It wraps ErrOutOfDomain for errors.Is() compatibility.
	OutOfDomainError struct {
		Domain string
		Value  int
	}
)

// Widths returns the element widths in ascending order.
func Widths() []ElementWidth { return slices.Clone(widths) }

// Groupings returns the grouping factors in canonical order (mf8 first).
func Groupings() []Grouping { return slices.Clone(groupings) }

// BaseTypes returns the base types in table order.
func BaseTypes() []BaseType { return slices.Clone(baseTypes) }

// TupleCounts returns the tuple field counts in ascending order.
func TupleCounts() []TupleCount { return slices.Clone(tupleSizes) }

// IsValid reports whether w is one of the supported element widths.
func (w ElementWidth) IsValid() (bool, []error) {
	if !slices.Contains(widths, w) {
		return false, []error{&OutOfDomainError{Domain: "element width", Value: int(w)}}
	}
	return true, nil
}

// Bytes returns the element width in bytes.
func (w ElementWidth) Bytes() int { return int(w) / 8 }

// String returns the grouping tag used in type names (e.g. "mf2", "m4").
func (g Grouping) String() string {
	if int(g) >= len(groupingTags) {
		return fmt.Sprintf("Grouping(%d)", uint8(g))
	}
	return groupingTags[g]
}

// IsValid reports whether g is one of the supported grouping factors.
func (g Grouping) IsValid() (bool, []error) {
	if int(g) >= len(groupingTags) {
		return false, []error{&OutOfDomainError{Domain: "grouping", Value: int(g)}}
	}
	return true, nil
}

// IsFractional reports whether g groups less than one register.
func (g Grouping) IsFractional() bool { return g < LMUL1 }

// Eighths returns the grouping factor as a count of eighths of a register.
func (g Grouping) Eighths() int { return groupingEighths[g] }

// String returns the base type tag used in type names.
func (b BaseType) String() string {
	if int(b) >= len(baseTypeTags) {
		return fmt.Sprintf("BaseType(%d)", uint8(b))
	}
	return baseTypeTags[b]
}

// IsValid reports whether b is one of the supported base types.
func (b BaseType) IsValid() (bool, []error) {
	if int(b) >= len(baseTypeTags) {
		return false, []error{&OutOfDomainError{Domain: "base type", Value: int(b)}}
	}
	return true, nil
}

// IsInteger reports whether b is a signed or unsigned integer.
func (b BaseType) IsInteger() bool { return b == Int || b == Uint }

// IsValid reports whether n is NoTuple or a supported tuple field count.
func (n TupleCount) IsValid() (bool, []error) {
	if n != NoTuple && (n < MinTupleFields || n > MaxTupleFields) {
		return false, []error{&OutOfDomainError{Domain: "tuple field count", Value: int(n)}}
	}
	return true, nil
}

// IsTuple reports whether n describes a tuple type.
func (n TupleCount) IsTuple() bool { return n >= MinTupleFields }

// Error implements the error interface for OutOfDomainError.
func (e *OutOfDomainError) Error() string {
	return fmt.Sprintf("%s %d is outside the vector type domain", e.Domain, e.Value)
}

// Unwrap returns ErrOutOfDomain for errors.Is() compatibility.
func (e *OutOfDomainError) Unwrap() error { return ErrOutOfDomain }
