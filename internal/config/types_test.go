// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format OutputFormat
		want   bool
	}{
		{FormatAsciiDoc, true},
		{FormatMarkdown, true},
		{FormatPreview, true},
		{FormatTable, true},
		{FormatTOML, true},
		{FormatCUE, true},
		{"", false},
		{"html", false},
		{"AsciiDoc", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			valid, errs := tt.format.IsValid()
			if valid != tt.want {
				t.Fatalf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !valid && !errors.Is(errs[0], ErrInvalidOutputFormat) {
				t.Errorf("error %v does not wrap ErrInvalidOutputFormat", errs[0])
			}
		})
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if valid, _ := c.IsValid(); !valid {
			t.Errorf("%q should be valid", c)
		}
	}

	valid, errs := ColorScheme("neon").IsValid()
	if valid {
		t.Fatal("neon should be invalid")
	}
	if !errors.Is(errs[0], ErrInvalidColorScheme) {
		t.Errorf("error %v does not wrap ErrInvalidColorScheme", errs[0])
	}
}

func TestConfig_IsValid(t *testing.T) {
	t.Parallel()

	if valid, errs := DefaultConfig().IsValid(); !valid {
		t.Fatalf("DefaultConfig() invalid: %v", errs)
	}

	cfg := DefaultConfig()
	cfg.Output.Format = "html"
	cfg.UI.ColorScheme = "neon"

	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("IsValid() = true, want false")
	}

	err := errs[0]
	for _, sentinel := range []error{ErrInvalidConfig, ErrInvalidOutputFormat, ErrInvalidColorScheme} {
		if !errors.Is(err, sentinel) {
			t.Errorf("errors.Is(%v, %v) = false", err, sentinel)
		}
	}

	var ice *InvalidConfigError
	if !errors.As(err, &ice) || len(ice.FieldErrors) != 2 {
		t.Errorf("want InvalidConfigError with 2 field errors, got %v", err)
	}
}
