// SPDX-License-Identifier: MPL-2.0

// Package vtype models the RISC-V vector type system: element widths (SEW),
// register grouping factors (LMUL), base types and tuple field counts (NF).
//
// The domains are closed and fixed at compile time. The package decides which
// combinations name a real vector type and derives each type's names, its
// size as an expression of VLEN, its alignment and its footnote markers.
// Every function is pure; nothing here holds state.
package vtype
