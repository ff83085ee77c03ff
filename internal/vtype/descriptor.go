// SPDX-License-Identifier: MPL-2.0

package vtype

import (
	"fmt"
	"strings"
)

// InternalPrefix is prepended to a type name to form its compiler-internal name.
const InternalPrefix = "__rvv_"

// Descriptor is a legal vector type. Build one with NewDescriptor.
type Descriptor struct {
	Width    ElementWidth
	Grouping Grouping
	Base     BaseType
	// Tuples is NoTuple for plain vector types.
	Tuples TupleCount
}

// NewDescriptor validates the combination and returns its descriptor.
// A zero tuple count is read as NoTuple.
func NewDescriptor(w ElementWidth, g Grouping, b BaseType, nf TupleCount) (Descriptor, error) {
	if nf == 0 {
		nf = NoTuple
	}

	var errs []error
	for _, check := range []func() (bool, []error){w.IsValid, g.IsValid, b.IsValid, nf.IsValid} {
		if valid, fieldErrs := check(); !valid {
			errs = append(errs, fieldErrs...)
		}
	}
	if len(errs) > 0 {
		return Descriptor{}, errs[0]
	}

	d := Descriptor{Width: w, Grouping: g, Base: b, Tuples: nf}
	if !IsLegal(w, g, b, nf) {
		return Descriptor{}, fmt.Errorf("%w: %s", ErrIllegalType, d.TypeName())
	}
	return d, nil
}

// TypeName returns the C type name, e.g. "vint32m2_t" or "vfloat64m1x4_t".
func (d Descriptor) TypeName() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "v%s%d%s", d.Base, d.Width, d.Grouping)
	if d.Tuples.IsTuple() {
		fmt.Fprintf(&sb, "x%d", d.Tuples)
	}
	sb.WriteString("_t")
	return sb.String()
}

// InternalName returns the compiler-internal name, e.g. "__rvv_vint32m2_t".
func (d Descriptor) InternalName() string { return InternalPrefix + d.TypeName() }

// Alignment returns the alignment in bytes. It depends only on the element width.
func (d Descriptor) Alignment() int { return d.Width.Bytes() }

// Size returns the size expression of the type.
func (d Descriptor) Size() (string, error) { return SizeExpression(d.Grouping, d.fields()) }

// Markers returns the footnote markers of the type.
func (d Descriptor) Markers() []Marker { return FootnoteMarkers(d.Width, d.Grouping, d.Base) }

// Registers returns the physical registers the whole type occupies.
func (d Descriptor) Registers() int { return RegistersConsumed(d.Grouping) * int(d.fields()) }

func (d Descriptor) fields() TupleCount {
	if d.Tuples == 0 {
		return NoTuple
	}
	return d.Tuples
}
