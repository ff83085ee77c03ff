// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting for psabigen.
//
// ActionableError carries the failed operation, the resource involved and
// suggestions for fixing the problem. Issue is a catalog of longer Markdown
// explanations, rendered for the terminal with glamour, shown when a command
// fails in a way that has a known remedy.
package issue
