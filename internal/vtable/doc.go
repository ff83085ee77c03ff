// SPDX-License-Identifier: MPL-2.0

// Package vtable enumerates the legal RISC-V vector types in documentation
// order and turns them into tables: one for plain vector data types and one
// for vector tuple types.
//
// Row order is part of the output contract: ascending element width, then
// grouping from mf8 to m8, then (for tuples) field count, then base type
// in the order int, uint, float, bfloat.
package vtable
