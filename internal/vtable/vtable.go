// SPDX-License-Identifier: MPL-2.0

package vtable

import (
	"strconv"
	"strings"

	"github.com/invowk/psabigen/internal/render"
	"github.com/invowk/psabigen/internal/vtype"
)

const (
	// DataTypesTitle is the caption of the plain vector type table.
	DataTypesTitle = "Type sizes and alignments for vector data types"
	// TupleTypesTitle is the caption of the vector tuple type table.
	TupleTypesTitle = "Type sizes and alignments for vector tuple types"
)

type (
	// Row is one legal vector type with its computed properties.
	Row struct {
		vtype.Descriptor
		// SizeExpr is the size in bytes as an expression of VLEN.
		SizeExpr  string
		Footnotes []vtype.Marker
	}

	// Options selects which tables are produced and how.
	Options struct {
		// Tuples includes the tuple type table.
		Tuples bool
		// Notes appends a footnote column.
		Notes bool
	}
)

// DefaultOptions returns the options that reproduce the psABI document.
func DefaultOptions() Options {
	return Options{Tuples: true}
}

// DataTypes enumerates the plain vector types in documentation order.
func DataTypes() ([]Row, error) {
	var rows []Row
	for _, w := range vtype.Widths() {
		for _, g := range vtype.Groupings() {
			var err error
			if rows, err = appendLegal(rows, w, g, vtype.NoTuple); err != nil {
				return nil, err
			}
		}
	}
	return rows, nil
}

// TupleTypes enumerates the vector tuple types in documentation order.
func TupleTypes() ([]Row, error) {
	var rows []Row
	for _, w := range vtype.Widths() {
		for _, g := range vtype.Groupings() {
			for _, nf := range vtype.TupleCounts() {
				var err error
				if rows, err = appendLegal(rows, w, g, nf); err != nil {
					return nil, err
				}
			}
		}
	}
	return rows, nil
}

// appendLegal appends a row for every base type that forms a legal type
// with w, g and nf.
func appendLegal(rows []Row, w vtype.ElementWidth, g vtype.Grouping, nf vtype.TupleCount) ([]Row, error) {
	for _, b := range vtype.BaseTypes() {
		if !vtype.IsLegal(w, g, b, nf) {
			continue
		}
		d := vtype.Descriptor{Width: w, Grouping: g, Base: b, Tuples: nf}
		size, err := d.Size()
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Descriptor: d, SizeExpr: size, Footnotes: d.Markers()})
	}
	return rows, nil
}

// Tables builds the documentation tables. Rows are computed in full before
// any table is returned; an error means no table is produced.
func Tables(opts Options) ([]render.Table, error) {
	data, err := DataTypes()
	if err != nil {
		return nil, err
	}
	tables := []render.Table{NewTable(DataTypesTitle, data, opts.Notes)}

	if opts.Tuples {
		tuples, err := TupleTypes()
		if err != nil {
			return nil, err
		}
		tables = append(tables, NewTable(TupleTypesTitle, tuples, opts.Notes))
	}
	return tables, nil
}

// NewTable lays rows out under the psABI column set.
func NewTable(title string, rows []Row, notes bool) render.Table {
	t := render.Table{Title: title, Columns: columns(notes)}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Cells(notes))
	}
	return t
}

// Cells returns the row's table cells.
func (r Row) Cells(notes bool) []string {
	cells := []string{r.InternalName(), r.TypeName(), r.SizeExpr, strconv.Itoa(r.Alignment())}
	if notes {
		cells = append(cells, r.Notes())
	}
	return cells
}

// Notes returns the footnote markers as AsciiDoc monospace tokens,
// e.g. "`*1`, `*6`".
func (r Row) Notes() string {
	tokens := make([]string, len(r.Footnotes))
	for i, m := range r.Footnotes {
		tokens[i] = "`" + m.String() + "`"
	}
	return strings.Join(tokens, ", ")
}

func columns(notes bool) []render.Column {
	cols := []render.Column{
		{Title: "Internal Name", Weight: 4, Pad: 22, HeaderPad: 22},
		{Title: "Type", Weight: 3, Pad: 20, HeaderPad: 20},
		{Title: "Size (Bytes)", Weight: 3, Right: true, Pad: 18, HeaderPad: 13},
		{Title: "Alignment (Bytes)", Weight: 2, Right: true},
	}
	if notes {
		cols[3].Pad = len(cols[3].Title)
		cols[3].HeaderPad = len(cols[3].Title)
		cols = append(cols, render.Column{Title: "Notes", Weight: 2})
	}
	return cols
}

// Legend returns the footnote legend as a two-column table.
func Legend() render.Table {
	t := render.Table{
		Title: "Notes for vector types",
		Columns: []render.Column{
			{Title: "Note", Weight: 1, Pad: 4, HeaderPad: 4},
			{Title: "Description", Weight: 6},
		},
	}
	for _, m := range vtype.Markers() {
		t.Rows = append(t.Rows, []string{m.String(), m.Description()})
	}
	return t
}
