// SPDX-License-Identifier: MPL-2.0

// Package cueutil parses CUE documents against an embedded schema definition
// and decodes the validated result into Go values.
package cueutil
