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
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bufbuild/chunky/source"
)

// Cursor is the mutable state of a parse: a position in a [source.File], a
// [Context], and a handle on state shared by every cursor of the same parse
// (the token cache and the precedence engine's bookkeeping).
//
// A Cursor is owned by a single goroutine.
type Cursor struct {
	file   *source.File
	offset int
	ctx    Context

	// Index of the first cached token whose end exceeds offset. May be stale
	// after a rewind or after another cursor inserted a token; see syncTokens.
	tokIdx int

	shared *parseState
}

// parseState is the part of a parse that every clone of a cursor shares.
type parseState struct {
	// Sorted by start offset, pairwise disjoint, never invalidated.
	tokens []Token
	// Matches that could not join tokens because they are empty or overlap
	// a cached token, such as a keyword inside a cached identifier.
	overlaps map[tokenKey]Token

	// Active invocations of each precedence rule, innermost last.
	recs map[*Precedence][]*recState

	logger zerolog.Logger
	depth  int
}

// CursorMark is an opaque checkpoint of a [Cursor], produced by [Cursor.Mark].
type CursorMark struct {
	shared *parseState
	offset int
	ctx    Context
	tokIdx int
}

// NewCursor returns a new cursor at the start of file, with an empty context
// and an empty token cache.
func NewCursor(file *source.File) *Cursor {
	return &Cursor{
		file: file,
		shared: &parseState{
			recs:   make(map[*Precedence][]*recState),
			logger: zerolog.Nop(),
		},
	}
}

// File returns the file this cursor is reading.
func (c *Cursor) File() *source.File {
	return c.file
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// SetOffset moves the cursor to offset.
//
// Panics if offset is not within [0, c.File().Len()].
func (c *Cursor) SetOffset(offset int) {
	if offset < 0 || offset > c.file.Len() {
		panic(fmt.Sprintf("chunky: offset %d out of bounds for %q (length %d)", offset, c.file.Path(), c.file.Len()))
	}
	c.offset = offset
	c.syncTokens()
}

// Advance moves the cursor n bytes forward.
func (c *Cursor) Advance(n int) {
	c.SetOffset(c.offset + n)
}

// Context returns the current context.
func (c *Cursor) Context() Context {
	return c.ctx
}

// SetContext replaces the current context.
func (c *Cursor) SetContext(ctx Context) {
	c.ctx = ctx
}

// Rest returns the text from the current offset to the end of the file.
func (c *Cursor) Rest() string {
	return c.file.Text()[c.offset:]
}

// Take returns up to the next n bytes of text, without advancing.
func (c *Cursor) Take(n int) string {
	rest := c.Rest()
	return rest[:min(n, len(rest))]
}

// StartsWith returns whether the text at the current offset starts with s.
func (c *Cursor) StartsWith(s string) bool {
	return strings.HasPrefix(c.Rest(), s)
}

// Len returns the length of this cursor's file, in bytes.
func (c *Cursor) Len() int {
	return c.file.Len()
}

// AtEOF returns whether the cursor is at the end of its file.
func (c *Cursor) AtEOF() bool {
	return c.offset == c.file.Len()
}

// Span returns a span of this cursor's file.
func (c *Cursor) Span(start, end int) source.Span {
	return c.file.Span(start, end)
}

// Clone returns an independent copy of this cursor. The clone shares the
// token cache and precedence bookkeeping with c.
func (c *Cursor) Clone() *Cursor {
	clone := *c
	return &clone
}

// Mark returns a checkpoint that [Cursor.Rewind] can return to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{
		shared: c.shared,
		offset: c.offset,
		ctx:    c.ctx,
		tokIdx: c.tokIdx,
	}
}

// Rewind restores the offset and context captured by m.
//
// Panics if m was not produced by this cursor or one of its clones.
func (c *Cursor) Rewind(m CursorMark) {
	if m.shared != c.shared {
		panic("chunky: rewound cursor to a mark from a different parse")
	}
	c.offset = m.offset
	c.ctx = m.ctx
	c.tokIdx = m.tokIdx
}

// Succeed returns a successful result spanning start to the current offset.
func (c *Cursor) Succeed(value any, start int) Result {
	return Success(value, start, c.offset)
}

// Fail returns a failed result at the current offset.
func (c *Cursor) Fail(expected ...string) Result {
	return Failure(c.offset, expected...)
}

// Tokens returns a snapshot of the non-overlapping tokens cached so far, in
// source order.
func (c *Cursor) Tokens() []Token {
	return append([]Token(nil), c.shared.tokens...)
}

// Logger returns the logger trace events for this parse are written to.
func (c *Cursor) Logger() *zerolog.Logger {
	return &c.shared.logger
}

// syncTokens re-establishes the token index invariant by walking from the
// previous index toward the current offset. Because cached tokens are sorted
// and disjoint, the walk converges from any starting index.
func (c *Cursor) syncTokens() {
	toks := c.shared.tokens
	i := min(c.tokIdx, len(toks))
	for i > 0 && toks[i-1].End > c.offset {
		i--
	}
	for i < len(toks) && toks[i].End <= c.offset {
		i++
	}
	c.tokIdx = i
}
