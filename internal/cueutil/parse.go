// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// ErrFileTooLarge is returned when a document exceeds the size limit.
var ErrFileTooLarge = errors.New("file exceeds maximum size")

// Result holds a decoded document together with the unified CUE value it
// was decoded from.
type Result[T any] struct {
	Value   T
	Unified cue.Value
}

// ParseAndDecode compiles data, unifies it with the schema definition at
// defPath (e.g. "#Config"), validates it and decodes it into T.
func ParseAndDecode[T any](schema, data []byte, defPath string, opts ...Option) (*Result[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := o.filename
	if name == "" {
		name = "input.cue"
	}

	if o.maxFileSize > 0 && int64(len(data)) > o.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, exceeds maximum of %d bytes", ErrFileTooLarge, name, len(data), o.maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileBytes(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}

	def := schemaValue.LookupPath(cue.ParsePath(defPath))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("internal error: schema has no %s: %w", defPath, err)
	}

	userValue := ctx.CompileBytes(data, cue.Filename(name))
	if err := userValue.Err(); err != nil {
		return nil, FormatError(err)
	}

	unified := def.Unify(userValue)
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err)
	}

	var value T
	if err := unified.Decode(&value); err != nil {
		return nil, FormatError(err)
	}

	return &Result[T]{Value: value, Unified: unified}, nil
}

// ParseAndDecodeString is ParseAndDecode for string inputs.
func ParseAndDecodeString[T any](schema, data, defPath string, opts ...Option) (*Result[T], error) {
	return ParseAndDecode[T]([]byte(schema), []byte(data), defPath, opts...)
}

// FormatError flattens a CUE error list into one message with positions,
// one problem per line.
func FormatError(err error) error {
	details := strings.TrimSpace(cueerrors.Details(err, nil))
	if details == "" {
		return err
	}
	return errors.New(details)
}
