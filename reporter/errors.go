// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package reporter contains the types used for reporting errors from
// parse operations that span many files. The simplest way to use it is to
// configure a [Reporter] on a batch parse; the default policy stops at the
// first error.
package reporter

import (
	"errors"
	"fmt"
)

// ErrInvalidSource is a sentinel error that is returned by a batch parse when
// one or more errors were reported but the configured reporter always
// returned nil.
var ErrInvalidSource = errors.New("parse failed: invalid source")

// Position is a location in a source file.
type Position struct {
	Path string
	// Byte offset into the file.
	Offset int
	// 1-indexed line and column, the column measured in runes. A zero Line
	// means the position was constructed without line information.
	Line, Col int
}

// String implements [fmt.Stringer].
//
// Positions render as path:offset, which is the format parse errors use.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Path, p.Offset)
}

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the Position and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() Position
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying a location in
// the source that caused the error.
func (e errorWithPos) GetPosition() Position {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error. This error will not include location information.
func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
