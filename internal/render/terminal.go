// SPDX-License-Identifier: MPL-2.0

package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Terminal draws the tables with lipgloss borders.
func Terminal(w io.Writer, tables ...Table) error {
	var sb strings.Builder
	for i, t := range tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		columns := t.Columns
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(borderStyle).
			Headers(t.Titles()...).
			Rows(t.Rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col < len(columns) && columns[col].Right {
					return cellStyle.Align(lipgloss.Right)
				}
				return cellStyle
			})

		sb.WriteString(titleStyle.Render(t.Title))
		sb.WriteString("\n")
		sb.WriteString(tbl.Render())
		sb.WriteString("\n")
	}
	return writeAll(w, sb.String())
}
