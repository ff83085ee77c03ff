// SPDX-License-Identifier: MPL-2.0

package vtype

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func TestRegistersConsumed(t *testing.T) {
	t.Parallel()

	want := map[Grouping]int{
		LMULF8: 1,
		LMULF4: 1,
		LMULF2: 1,
		LMUL1:  1,
		LMUL2:  2,
		LMUL4:  4,
		LMUL8:  8,
	}
	for _, g := range Groupings() {
		if got := RegistersConsumed(g); got != want[g] {
			t.Errorf("RegistersConsumed(%s) = %d, want %d", g, got, want[g])
		}
	}
}

func TestIsLegal_FullGrid(t *testing.T) {
	t.Parallel()

	legalBases := map[ElementWidth][]BaseType{
		8:  {Int, Uint, Float},
		16: {Int, Uint, BFloat},
		32: {Int, Uint, Float},
		64: {Int, Uint, Float},
	}

	for _, w := range Widths() {
		for _, g := range Groupings() {
			for _, b := range BaseTypes() {
				want := slices.Contains(legalBases[w], b)
				if got := IsLegal(w, g, b, NoTuple); got != want {
					t.Errorf("IsLegal(%d, %s, %s) = %v, want %v", w, g, b, got, want)
				}
			}
		}
	}
}

func TestIsLegal_TupleRegisterBound(t *testing.T) {
	t.Parallel()

	for _, g := range Groupings() {
		for _, nf := range TupleCounts() {
			want := RegistersConsumed(g)*int(nf) <= MaxRegisters
			if got := IsLegal(32, g, Int, nf); got != want {
				t.Errorf("IsLegal(32, %s, int, %d) = %v, want %v", g, nf, got, want)
			}
		}
	}
}

func TestIsLegal_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w    ElementWidth
		g    Grouping
		b    BaseType
		nf   TupleCount
		want bool
	}{
		{"bfloat16 m1", 16, LMUL1, BFloat, NoTuple, true},
		{"bfloat32 m1", 32, LMUL1, BFloat, NoTuple, false},
		{"float16 m1", 16, LMUL1, Float, NoTuple, false},
		{"float8 mf8", 8, LMULF8, Float, NoTuple, true},
		{"int64 mf8", 64, LMULF8, Int, NoTuple, true},
		{"float32 m8 x2 spans 16 registers", 32, LMUL8, Float, 2, false},
		{"int8 m4 x2 fills 8 registers", 8, LMUL4, Int, 2, true},
		{"int8 m2 x5 spans 10 registers", 8, LMUL2, Int, 5, false},
		{"uint16 mf8 x8", 16, LMULF8, Uint, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsLegal(tt.w, tt.g, tt.b, tt.nf); got != tt.want {
				t.Errorf("IsLegal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeExpression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		g    Grouping
		nf   TupleCount
		want string
	}{
		{LMUL1, NoTuple, "(VLEN / 8)"},
		{LMULF8, NoTuple, "(VLEN / 8) / 8"},
		{LMULF4, NoTuple, "(VLEN / 8) / 4"},
		{LMULF2, NoTuple, "(VLEN / 8) / 2"},
		{LMUL2, NoTuple, "(VLEN / 8) * 2"},
		{LMUL8, NoTuple, "(VLEN / 8) * 8"},
		{LMULF8, 2, "(VLEN / 8) / 4"},
		{LMULF8, 3, "(VLEN / 8) * 0.375"},
		{LMULF8, 4, "(VLEN / 8) / 2"},
		{LMULF8, 5, "(VLEN / 8) * 0.625"},
		{LMULF8, 6, "(VLEN / 8) * 0.75"},
		{LMULF8, 7, "(VLEN / 8) * 0.875"},
		{LMULF8, 8, "(VLEN / 8)"},
		{LMULF4, 5, "(VLEN / 8) * 1.25"},
		{LMULF2, 3, "(VLEN / 8) * 1.5"},
		{LMULF2, 7, "(VLEN / 8) * 3.5"},
		{LMUL4, 2, "(VLEN / 8) * 8"},
	}

	for _, tt := range tests {
		t.Run(tt.g.String()+"x"+strconv.Itoa(int(tt.nf)), func(t *testing.T) {
			t.Parallel()
			got, err := SizeExpression(tt.g, tt.nf)
			if err != nil {
				t.Fatalf("SizeExpression() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SizeExpression() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSizeExpression_UnlistedFraction(t *testing.T) {
	t.Parallel()

	_, err := SizeExpression(LMULF8, 0)
	if !errors.Is(err, ErrUnlistedFraction) {
		t.Fatalf("SizeExpression(mf8, 0) error = %v, want ErrUnlistedFraction", err)
	}

	var invErr *InvariantError
	if !errors.As(err, &invErr) {
		t.Fatalf("error should be *InvariantError, got %T", err)
	}
	if invErr.Eighths != 0 || invErr.Grouping != LMULF8 {
		t.Errorf("InvariantError = %+v", invErr)
	}
}

// scaleFactor reads the multiplier back out of a rendered size expression.
func scaleFactor(t *testing.T, expr string) float64 {
	t.Helper()

	rest := strings.TrimPrefix(expr, BaseSize)
	if rest == "" {
		return 1
	}
	op, num, ok := strings.Cut(strings.TrimSpace(rest), " ")
	if !ok {
		t.Fatalf("malformed size expression %q", expr)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		t.Fatalf("malformed size expression %q: %v", expr, err)
	}
	if op == "/" {
		return 1 / v
	}
	return v
}

func TestSizeExpression_DoublingGroupingDoublesScale(t *testing.T) {
	t.Parallel()

	gs := Groupings()
	counts := append([]TupleCount{NoTuple}, TupleCounts()...)
	for i := 0; i+1 < len(gs); i++ {
		for _, nf := range counts {
			small, err := SizeExpression(gs[i], nf)
			if err != nil {
				t.Fatalf("SizeExpression(%s, %d) error = %v", gs[i], nf, err)
			}
			large, err := SizeExpression(gs[i+1], nf)
			if err != nil {
				t.Fatalf("SizeExpression(%s, %d) error = %v", gs[i+1], nf, err)
			}
			if got, want := scaleFactor(t, large), 2*scaleFactor(t, small); got != want {
				t.Errorf("%s x%d scale = %g, want double of %s (%g)", gs[i+1], nf, got, gs[i], want)
			}
		}
	}
}

func TestFootnoteMarkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		w    ElementWidth
		g    Grouping
		b    BaseType
		want []Marker
	}{
		{"bfloat16 m1", 16, LMUL1, BFloat, []Marker{MarkerBFloat}},
		{"int64 mf8", 64, LMULF8, Int, []Marker{MarkerNarrow, MarkerInt64}},
		{"uint64 m1", 64, LMUL1, Uint, []Marker{MarkerNarrow, MarkerInt64}},
		{"int8 mf8", 8, LMULF8, Int, []Marker{MarkerNarrow}},
		{"int8 mf4 ratio one", 8, LMULF4, Int, nil},
		{"float16 mf4", 16, LMULF4, Float, []Marker{MarkerNarrow, MarkerHalfFloat}},
		{"float32 mf2", 32, LMULF2, Float, []Marker{MarkerNarrow, MarkerSingleFloat}},
		{"float32 mf4", 32, LMULF4, Float, []Marker{MarkerNarrow, MarkerSingleFloat}},
		{"float64 m8", 64, LMUL8, Float, []Marker{MarkerDoubleFloat}},
		{"int32 m2", 32, LMUL2, Int, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FootnoteMarkers(tt.w, tt.g, tt.b); !slices.Equal(got, tt.want) {
				t.Errorf("FootnoteMarkers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFootnoteMarkers_NarrowRatio(t *testing.T) {
	t.Parallel()

	for _, w := range Widths() {
		for _, g := range Groupings() {
			for _, b := range BaseTypes() {
				ratio := (32 / float64(w)) * (float64(g.Eighths()) / 8)
				got := slices.Contains(FootnoteMarkers(w, g, b), MarkerNarrow)
				if want := ratio < 1; got != want {
					t.Errorf("FootnoteMarkers(%d, %s, %s) narrow = %t, want %t (ratio %g)", w, g, b, got, want, ratio)
				}
			}
		}
	}
}

func TestMarker_Legend(t *testing.T) {
	t.Parallel()

	for i, m := range Markers() {
		if got, want := m.String(), "*"+strconv.Itoa(i+1); got != want {
			t.Errorf("Marker.String() = %q, want %q", got, want)
		}
		if m.Description() == "" {
			t.Errorf("marker %s has no legend text", m)
		}
	}
}
