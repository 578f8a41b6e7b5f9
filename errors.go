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

package chunky

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/chunky/report"
	"github.com/bufbuild/chunky/reporter"
	"github.com/bufbuild/chunky/source"
)

// ErrUnexpectedInput is the error every [ParseError] wraps.
var ErrUnexpectedInput = errors.New("unexpected input")

// ParseError is returned by [Parse] when the parser fails. It records where
// the failure happened and what would have been accepted there.
type ParseError struct {
	File     *source.File
	Offset   int
	Expected []string
}

var (
	_ reporter.ErrorWithPos = (*ParseError)(nil)
	_ report.Diagnose       = (*ParseError)(nil)
)

// Path returns the path of the file that failed to parse.
func (e *ParseError) Path() string {
	return e.File.Path()
}

// Message returns the error message without position information.
func (e *ParseError) Message() string {
	switch len(e.Expected) {
	case 0:
		return ErrUnexpectedInput.Error()
	case 1:
		return fmt.Sprintf("%v, expected %s", ErrUnexpectedInput, e.Expected[0])
	default:
		return fmt.Sprintf("%v, expected one of: %s", ErrUnexpectedInput, strings.Join(e.Expected, ", "))
	}
}

// Error implements [error].
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path(), e.Offset, e.Message())
}

// Unwrap returns the error without position information. It always wraps
// [ErrUnexpectedInput].
func (e *ParseError) Unwrap() error {
	if len(e.Expected) == 0 {
		return ErrUnexpectedInput
	}
	return fmt.Errorf("%w%s", ErrUnexpectedInput, strings.TrimPrefix(e.Message(), ErrUnexpectedInput.Error()))
}

// GetPosition implements [reporter.ErrorWithPos].
func (e *ParseError) GetPosition() reporter.Position {
	loc := e.File.Location(e.Offset, source.Runes)
	return reporter.Position{
		Path:   e.Path(),
		Offset: e.Offset,
		Line:   loc.Line,
		Col:    loc.Column,
	}
}

// Span returns the span of the character the parse failed at. At the end of
// the file, the span is empty.
func (e *ParseError) Span() source.Span {
	_, n := utf8.DecodeRuneInString(e.File.Text()[e.Offset:])
	return e.File.Span(e.Offset, e.Offset+n)
}

// Diagnose implements [report.Diagnose].
func (e *ParseError) Diagnose(d *report.Diagnostic) {
	var what string
	switch {
	case e.Offset == e.File.Len():
		what = "found end of input"
	default:
		what = fmt.Sprintf("found %q", e.Span().Text())
	}
	d.Apply(
		report.Message("%s", e.Message()),
		report.Snippet(e.Span(), "%s", what),
	)
}

// GrammarError is a fault in how a grammar was put together, such as a
// left-recursive rule with no base case. It is raised as a panic while
// parsing and returned as an error by [Parse]; no combinator recovers from it.
type GrammarError struct {
	// The file being parsed, if known, and the offset the fault was detected at.
	Path   string
	Offset int

	// The rule the fault was detected in, if any.
	Rule   string
	Reason string
}

// Error implements [error].
func (e *GrammarError) Error() string {
	var out strings.Builder
	out.WriteString("chunky: invalid grammar")
	if e.Rule != "" {
		fmt.Fprintf(&out, " in rule %q", e.Rule)
	}
	if e.Path != "" {
		fmt.Fprintf(&out, " (at %s:%d)", e.Path, e.Offset)
	}
	fmt.Fprintf(&out, ": %s", e.Reason)
	return out.String()
}
