// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"io"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/format"
	"github.com/pelletier/go-toml/v2"
)

type (
	// Document is the structured export of a set of tables.
	Document struct {
		Tables []TableDocument `json:"tables" toml:"table"`
	}

	// TableDocument is one exported table.
	TableDocument struct {
		Title   string     `json:"title" toml:"title"`
		Columns []string   `json:"columns" toml:"columns"`
		Rows    [][]string `json:"rows" toml:"rows"`
	}
)

// NewDocument collects the tables for export.
func NewDocument(tables ...Table) Document {
	doc := Document{Tables: make([]TableDocument, 0, len(tables))}
	for _, t := range tables {
		rows := t.Rows
		if rows == nil {
			rows = [][]string{}
		}
		doc.Tables = append(doc.Tables, TableDocument{
			Title:   t.Title,
			Columns: t.Titles(),
			Rows:    rows,
		})
	}
	return doc
}

// TOML writes the tables as an array of [[table]] entries.
func TOML(w io.Writer, tables ...Table) error {
	data, err := toml.Marshal(NewDocument(tables...))
	if err != nil {
		return fmt.Errorf("failed to encode TOML: %w", err)
	}
	return writeAll(w, string(data))
}

// CUE writes the tables as a formatted CUE value.
func CUE(w io.Writer, tables ...Table) error {
	ctx := cuecontext.New()
	v := ctx.Encode(NewDocument(tables...))
	if err := v.Err(); err != nil {
		return fmt.Errorf("failed to encode CUE: %w", err)
	}
	data, err := format.Node(v.Syntax())
	if err != nil {
		return fmt.Errorf("failed to format CUE: %w", err)
	}
	out := string(data)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out += "\n"
	}
	return writeAll(w, out)
}
