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
	"sync"
)

// Parser is anything that can be run against a [Cursor].
//
// On success, a parser leaves the cursor just past what it matched. On
// failure, it may leave the cursor anywhere; callers that need to recover
// from a failure use [TryRun].
//
// Parsers must be safe to run from many parses at once; all parse state lives
// in the cursor.
type Parser interface {
	Parse(c *Cursor) Result
}

// Func adapts a function into a [Parser].
type Func func(c *Cursor) Result

// Parse implements [Parser].
func (f Func) Parse(c *Cursor) Result {
	return f(c)
}

// Run runs p against the live cursor.
func Run(p Parser, c *Cursor) Result {
	return p.Parse(c)
}

// TryRun runs p speculatively. The cursor's offset and context are only
// updated if p succeeds; on failure, the cursor is exactly as it was before
// the call.
func TryRun(p Parser, c *Cursor) Result {
	mark := c.Mark()
	r := p.Parse(c)
	if !r.OK {
		c.Rewind(mark)
	}
	return r
}

// Lazy returns a parser that calls thunk the first time it is run, and then
// behaves like the parser thunk returned. This allows mutually recursive
// grammars to refer to rules that are not constructed yet.
func Lazy(thunk func() Parser) Parser {
	return &lazy{thunk: thunk}
}

type lazy struct {
	once  sync.Once
	thunk func() Parser
	p     Parser
}

func (l *lazy) Parse(c *Cursor) Result {
	l.once.Do(func() {
		l.p = l.thunk()
		l.thunk = nil
	})
	if l.p == nil {
		panic(&GrammarError{Offset: c.Offset(), Reason: "lazy parser resolved to nil"})
	}
	return l.p.Parse(c)
}
