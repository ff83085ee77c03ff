// SPDX-License-Identifier: MPL-2.0

// Package sanity generates C translation units that assert, at compile time,
// that a toolchain lays out scalar types the way the psABI says it should,
// and runs a configured compile command over them.
//
// The generated file only uses _Static_assert and the preprocessor, so a
// syntax-only compile (for example "cc -fsyntax-only -x c -") is enough to
// check a toolchain.
package sanity
