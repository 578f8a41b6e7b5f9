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
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Matcher recognizes a token at the start of rest, returning its length in
// bytes.
type Matcher func(rest string) (n int, ok bool)

// Literal returns a matcher for exactly s.
func Literal(s string) Matcher {
	return func(rest string) (int, bool) {
		if strings.HasPrefix(rest, s) {
			return len(s), true
		}
		return 0, false
	}
}

// Pattern returns a matcher for re, anchored at the start of the remaining
// text.
func Pattern(re *regexp.Regexp) Matcher {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)`)
	return func(rest string) (int, bool) {
		loc := anchored.FindStringIndex(rest)
		if loc == nil {
			return 0, false
		}
		return loc[1], true
	}
}

// TokenType is a [Parser] for an atomic lexical unit. Matches are cached in
// the cursor by type and start offset, so re-parsing a token at an offset
// where it was already found does not run the matcher again.
//
// Failed matches are not cached.
type TokenType struct {
	name  string
	match Matcher
}

// NewTokenType returns a new token type. name is used as the expected
// description when the token is missing.
func NewTokenType(name string, match Matcher) *TokenType {
	if match == nil {
		panic("chunky: nil matcher for token " + name)
	}
	return &TokenType{name: name, match: match}
}

// Name returns this token type's name.
func (t *TokenType) Name() string {
	return t.name
}

// String implements [fmt.Stringer].
func (t *TokenType) String() string {
	return t.name
}

// Parse implements [Parser]. On success the value is a [Token].
func (t *TokenType) Parse(c *Cursor) Result {
	offset := c.Offset()
	tok, ok := c.token(t)
	c.trace().
		Str("token", t.name).
		Int("offset", offset).
		Bool("found", ok).
		Msg("token")

	if !ok {
		return c.Fail(t.name)
	}
	return Success(tok, tok.Start, tok.End)
}

// Token is a match of a [TokenType].
type Token struct {
	Type       *TokenType
	Text       string
	Start, End int
}

// Is returns whether this token is of the given type.
func (t Token) Is(tt *TokenType) bool {
	return t.Type == tt
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%s%q[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (t Token) MarshalZerologObject(e *zerolog.Event) {
	e.Str("type", t.Type.Name()).
		Str("text", t.Text).
		Int("start", t.Start).
		Int("end", t.End)
}

// tokenKey identifies a match of a token type at some offset.
type tokenKey struct {
	t     *TokenType
	start int
}

// token looks up or matches a token of type t at the current offset, and
// moves the cursor past it.
func (c *Cursor) token(t *TokenType) (Token, bool) {
	c.syncTokens()
	toks := c.shared.tokens
	i := c.tokIdx
	if i < len(toks) && toks[i].Start == c.offset && toks[i].Type == t {
		c.SetOffset(toks[i].End)
		return toks[i], true
	}

	key := tokenKey{t, c.offset}
	if tok, ok := c.shared.overlaps[key]; ok {
		c.SetOffset(tok.End)
		return tok, true
	}

	n, ok := t.match(c.Rest())
	if !ok {
		return Token{}, false
	}
	tok := Token{
		Type:  t,
		Text:  c.file.Text()[c.offset : c.offset+n],
		Start: c.offset,
		End:   c.offset + n,
	}

	// Every token before i ends at or before tok.Start, so tok only needs to
	// be checked against its right neighbor. Zero-width and overlapping
	// matches go to the side table instead.
	if n > 0 && (i == len(toks) || toks[i].Start >= tok.End) {
		c.shared.tokens = slices.Insert(toks, i, tok)
	} else {
		if c.shared.overlaps == nil {
			c.shared.overlaps = make(map[tokenKey]Token)
		}
		c.shared.overlaps[key] = tok
	}
	c.SetOffset(tok.End)
	return tok, true
}
