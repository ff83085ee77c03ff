// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultWrapWidth = 120

// Markdown writes the tables as GitHub-flavored pipe tables.
func Markdown(w io.Writer, tables ...Table) error {
	return writeAll(w, markdown(tables))
}

// Preview renders the Markdown tables for the terminal with glamour.
func Preview(w io.Writer, opts Options, tables ...Table) error {
	wrap := opts.WrapWidth
	if wrap <= 0 {
		wrap = defaultWrapWidth
	}

	rendererOpts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	switch opts.Style {
	case "", "auto":
		rendererOpts = append(rendererOpts, glamour.WithAutoStyle())
	default:
		rendererOpts = append(rendererOpts, glamour.WithStandardStyle(opts.Style))
	}

	renderer, err := glamour.NewTermRenderer(rendererOpts...)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := renderer.Render(markdown(tables))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	return writeAll(w, out)
}

func markdown(tables []Table) string {
	var sb strings.Builder
	for i, t := range tables {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "**%s**\n\n", t.Title)
		writeMarkdownRow(&sb, t.Titles())

		rule := make([]string, len(t.Columns))
		for j, c := range t.Columns {
			rule[j] = "---"
			if c.Right {
				rule[j] = "---:"
			}
		}
		writeMarkdownRow(&sb, rule)

		for _, row := range t.Rows {
			writeMarkdownRow(&sb, row)
		}
	}
	return sb.String()
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(cell, "|", `\|`))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}
