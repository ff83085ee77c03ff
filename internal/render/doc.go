// SPDX-License-Identifier: MPL-2.0

// Package render writes documentation tables in the formats psabigen supports:
// AsciiDoc for the psABI document, Markdown, a glamour preview, a lipgloss
// terminal table, and TOML or CUE exports of the same rows.
//
// Every writer builds its whole output before touching the destination, so a
// failure never leaves a half-written table behind.
package render
