// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// FormatAsciiDoc writes AsciiDoc tables, the psABI document format.
	FormatAsciiDoc Format = "asciidoc"
	// FormatMarkdown writes GitHub-flavored Markdown tables.
	FormatMarkdown Format = "markdown"
	// FormatPreview renders the Markdown tables for the terminal with glamour.
	FormatPreview Format = "preview"
	// FormatTable draws bordered terminal tables with lipgloss.
	FormatTable Format = "table"
	// FormatTOML exports the tables as TOML.
	FormatTOML Format = "toml"
	// FormatCUE exports the tables as CUE.
	FormatCUE Format = "cue"

	// DefaultWidth is the AsciiDoc table width attribute.
	DefaultWidth = "80%"
)

// ErrUnknownFormat is returned when a format name is not recognized.
var ErrUnknownFormat = errors.New("unknown output format")

type (
	// Format names an output format.
	Format string

	// UnknownFormatError is returned by ParseFormat for unrecognized names.
	// It wraps ErrUnknownFormat for errors.Is() compatibility.
	UnknownFormatError struct {
		Value string
	}

	// Column describes one table column.
	Column struct {
		// Title is the header text.
		Title string
		// Weight is the relative AsciiDoc column width.
		Weight int
		// Right aligns the column's cells to the right.
		Right bool
		// Pad is the minimum width of body cells in AsciiDoc output (0 for none).
		Pad int
		// HeaderPad is the minimum width of the header cell in AsciiDoc output.
		HeaderPad int
	}

	// Table is a titled documentation table.
	Table struct {
		Title   string
		Columns []Column
		Rows    [][]string
		// Width is the AsciiDoc width attribute; empty means DefaultWidth.
		Width string
	}

	// Options carries presentation settings that only some formats use.
	Options struct {
		// Style is the glamour style for previews ("auto", "dark", "light", "notty").
		Style string
		// WrapWidth is the preview word-wrap width (0 for the default).
		WrapWidth int
	}
)

// Formats returns every supported format name.
func Formats() []Format {
	return []Format{FormatAsciiDoc, FormatMarkdown, FormatPreview, FormatTable, FormatTOML, FormatCUE}
}

// ParseFormat maps a format name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", &UnknownFormatError{Value: name}
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Error implements the error interface for UnknownFormatError.
func (e *UnknownFormatError) Error() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return fmt.Sprintf("unknown output format %q (expected one of: %s)", e.Value, strings.Join(names, ", "))
}

// Unwrap returns ErrUnknownFormat for errors.Is() compatibility.
func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }

// Write renders the tables in format f.
func Write(w io.Writer, f Format, opts Options, tables ...Table) error {
	switch f {
	case FormatAsciiDoc:
		return AsciiDoc(w, tables...)
	case FormatMarkdown:
		return Markdown(w, tables...)
	case FormatPreview:
		return Preview(w, opts, tables...)
	case FormatTable:
		return Terminal(w, tables...)
	case FormatTOML:
		return TOML(w, tables...)
	case FormatCUE:
		return CUE(w, tables...)
	default:
		return &UnknownFormatError{Value: string(f)}
	}
}

// Titles returns the column titles.
func (t Table) Titles() []string {
	titles := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		titles[i] = c.Title
	}
	return titles
}

// ColsAttr returns the AsciiDoc cols attribute value, e.g. "4,3,>3,>2".
func (t Table) ColsAttr() string {
	specs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		spec := strconv.Itoa(c.Weight)
		if c.Right {
			spec = ">" + spec
		}
		specs[i] = spec
	}
	return strings.Join(specs, ",")
}

func writeAll(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
