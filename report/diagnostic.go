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

package report

import (
	"fmt"

	"github.com/bufbuild/chunky/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Red. Indicates that the input could not be parsed.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set the level; that is set by the diagnostics
	// framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a single message in a [Report], with enough metadata to render
// it against the source text it refers to.
//
// To construct a diagnostic, create one using a function like [Report.Error].
// Then, call [Diagnostic.Apply] to apply options to it. You should at minimum
// apply [Message] and either [InFile] or at least one [Snippet].
type Diagnostic struct {
	message string
	level   Level

	// The file this diagnostic occurs in, if it has no associated annotations.
	inFile string

	annotations        []Annotation
	notes, help, debug []string
}

// Annotation is an annotated source code span within a [Diagnostic].
type Annotation struct {
	source.Span

	// A message to show under this span. May be empty.
	Message string

	// Whether this is the "primary" annotation, which is rendered in the
	// diagnostic's color.
	Primary bool
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.Apply] are ignored.
type DiagnosticOption func(*Diagnostic)

// Message returns this diagnostic's message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Level returns this diagnostic's level.
func (d *Diagnostic) Level() Level {
	return d.level
}

// InFile returns the path this diagnostic is about, even if it has no
// annotations.
func (d *Diagnostic) InFile() string {
	if primary := d.Primary(); !primary.IsZero() {
		return primary.Path()
	}
	return d.inFile
}

// Annotations returns the annotated spans of this diagnostic, primary first.
func (d *Diagnostic) Annotations() []Annotation {
	return d.annotations
}

// Notes returns the notes attached to this diagnostic.
func (d *Diagnostic) Notes() []string { return d.notes }

// Help returns the help text attached to this diagnostic.
func (d *Diagnostic) Help() []string { return d.help }

// Debug returns the debugging information attached to this diagnostic.
func (d *Diagnostic) Debug() []string { return d.debug }

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, annotation := range d.annotations {
		if annotation.Primary {
			return annotation.Span
		}
	}

	return source.Span{}
}

// Apply applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) Apply(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	msg := fmt.Sprintf(format, args...)
	return func(d *Diagnostic) {
		if d.message != "" {
			panic("chunky/report: set diagnostic message more than once")
		}
		d.message = msg
	}
}

// InFile returns a DiagnosticOption that causes a diagnostic without a
// primary span to mention the given file.
func InFile(path string) DiagnosticOption {
	return func(d *Diagnostic) {
		if d.inFile != "" {
			panic("chunky/report: set diagnostic path more than once")
		}
		d.inFile = path
	}
}

// Snippet returns a DiagnosticOption that adds a new annotated span to a
// diagnostic.
//
// Any additional arguments are passed to [fmt.Sprintf] to produce a message
// to go with the span. Snippet(span) is equivalent to Snippet(span, "").
//
// The first annotation added is the "primary" annotation, and will be rendered
// differently from the others. A nil Spanner or a zero span yields a nil
// option.
func Snippet(at source.Spanner, args ...any) DiagnosticOption {
	if at == nil {
		return nil
	}
	span := at.Span()
	if span.IsZero() {
		return nil
	}

	annotation := Annotation{Span: span}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("chunky/report: expected string as first Snippet argument")
		}
		annotation.Message = fmt.Sprintf(format, args[1:]...)
	}

	return func(d *Diagnostic) {
		annotation.Primary = len(d.annotations) == 0
		d.annotations = append(d.annotations, annotation)
	}
}

// Note returns a DiagnosticOption that provides the user with context about the
// diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	note := fmt.Sprintf(format, args...)
	return func(d *Diagnostic) { d.notes = append(d.notes, note) }
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	help := fmt.Sprintf(format, args...)
	return func(d *Diagnostic) { d.help = append(d.help, help) }
}

// Debug returns a DiagnosticOption that appends debugging information to a
// diagnostic that is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	debug := fmt.Sprintf(format, args...)
	return func(d *Diagnostic) { d.debug = append(d.debug, debug) }
}
