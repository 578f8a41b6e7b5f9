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
	"github.com/rs/zerolog"

	"github.com/bufbuild/chunky/source"
)

// Option configures a call to [Parse].
type Option func(*Cursor)

// WithLogger sets the logger trace events are written to. Events are logged
// at debug level; by default, nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Cursor) { c.shared.logger = logger }
}

// WithValue adds an entry to the context the parse starts with.
func WithValue(key, value any) Option {
	return func(c *Cursor) { c.ctx = c.ctx.With(key, value) }
}

// Parse runs p from the start of file and returns the value it produced.
//
// If p fails, the error is a [*ParseError]. If the grammar is malformed in a
// way that is only detectable while parsing, the error is a [*GrammarError].
//
// Parse does not require p to consume the whole file.
func Parse(p Parser, file *source.File, options ...Option) (value any, err error) {
	r, err := ParseResult(p, file, options...)
	if err != nil {
		return nil, err
	}
	if !r.OK {
		return nil, &ParseError{File: file, Offset: r.Offset, Expected: r.Expected}
	}
	return r.Value, nil
}

// ParseString is a shorthand for calling [Parse] with a new file.
func ParseString(p Parser, path, text string, options ...Option) (any, error) {
	return Parse(p, source.NewFile(path, text), options...)
}

// ParseResult is like [Parse], but returns p's result as-is instead of
// converting a failure into an error. The only errors it returns are
// [*GrammarError]s.
func ParseResult(p Parser, file *source.File, options ...Option) (r Result, err error) {
	c := NewCursor(file)
	for _, option := range options {
		option(c)
	}

	defer func() {
		panicked := recover()
		if panicked == nil {
			return
		}
		ge, ok := panicked.(*GrammarError)
		if !ok {
			panic(panicked)
		}
		if ge.Path == "" {
			ge.Path = file.Path()
		}
		r, err = Result{}, ge
	}()

	r = p.Parse(c)
	c.trace().Str("path", file.Path()).Object("result", r).Msg("parse")
	return r, nil
}
