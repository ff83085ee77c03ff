// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"io"
	"strings"
)

// AsciiDoc writes the tables as AsciiDoc blocks separated by a blank line:
//
//	.Title
//	[cols="4,3,>3,>2"]
//	[width=80%]
//	|===
//	| Header ...
//
//	| cell ...
//	|===
func AsciiDoc(w io.Writer, tables ...Table) error {
	var sb strings.Builder
	for i, t := range tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		width := t.Width
		if width == "" {
			width = DefaultWidth
		}

		fmt.Fprintf(&sb, ".%s\n", t.Title)
		fmt.Fprintf(&sb, "[cols=%q]\n", t.ColsAttr())
		fmt.Fprintf(&sb, "[width=%s]\n", width)
		sb.WriteString("|===\n")

		header := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			header[j] = pad(c.Title, c.HeaderPad)
		}
		writeAsciiDocRow(&sb, header)
		sb.WriteString("\n")

		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				if j < len(t.Columns) {
					cell = pad(cell, t.Columns[j].Pad)
				}
				cells[j] = cell
			}
			writeAsciiDocRow(&sb, cells)
		}
		sb.WriteString("|===\n")
	}
	return writeAll(w, sb.String())
}

func writeAsciiDocRow(sb *strings.Builder, cells []string) {
	sb.WriteString("| ")
	sb.WriteString(strings.Join(cells, " | "))
	sb.WriteString("\n")
}

// pad left-justifies s in a field of n characters.
func pad(s string, n int) string {
	if n <= 0 {
		return s
	}
	return fmt.Sprintf("%-*s", n, s)
}
