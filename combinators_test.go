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


package chunky_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/chunky"
	"github.com/bufbuild/chunky/text"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	p := chunky.Optional(text.Str("ab"))

	c := newCursor("abc")
	assert.Equal(t, chunky.Success("ab", 0, 2), chunky.Run(p, c))
	assert.Equal(t, chunky.Success(nil, 2, 2), chunky.Run(p, c))
	assert.Equal(t, 2, c.Offset())

	// A failed attempt that mutated the cursor is rolled back.
	c = newCursor("test")
	assert.Equal(t, chunky.Success(nil, 0, 0), chunky.Run(chunky.Optional(mutate(false)), c))
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, 0, c.Context().Len())
}

func TestPredicate(t *testing.T) {
	t.Parallel()

	p := chunky.Predicate(mutate(true))
	c := newCursor("test")
	r := chunky.Run(p, c)
	assert.Equal(t, chunky.Success("test", 0, 2), r)
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, 0, c.Context().Len())

	r = chunky.Run(chunky.Predicate(text.Str("x")), c)
	assert.Equal(t, chunky.Failure(0, `"x"`), r)
}

func TestNot(t *testing.T) {
	t.Parallel()

	c := newCursor("abc")
	assert.Equal(t, chunky.Failure(0), chunky.Run(chunky.Not(text.Str("ab")), c))
	assert.Equal(t, chunky.Success(nil, 0, 0), chunky.Run(chunky.Not(text.Str("x")), c))
	assert.Equal(t, 0, c.Offset())
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	p := chunky.OneOf(text.Str("ab"), text.Str("a"), text.Str("c"))

	tests := []struct {
		name string
		src  string
		want chunky.Result
	}{
		{name: "first", src: "abc", want: chunky.Success("ab", 0, 2)},
		{name: "second", src: "ac", want: chunky.Success("a", 0, 1)},
		{name: "third", src: "c", want: chunky.Success("c", 0, 1)},
		{name: "none", src: "x", want: chunky.Failure(0, `"ab"`, `"a"`, `"c"`)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, chunky.Run(p, newCursor(test.src)))
		})
	}

	// Failures deeper in an alternative are reported at the starting offset.
	deep := chunky.OneOf(chunky.Seq(text.Str("a"), text.Str("b")), text.Str("c"))
	c := newCursor("ax")
	assert.Equal(t, chunky.Failure(0, `"b"`, `"c"`), chunky.Run(deep, c))
	assert.Equal(t, 0, c.Offset())

	// Duplicate expectations are merged.
	dup := chunky.OneOf(text.Digit, text.AlphaNum)
	assert.Equal(t,
		[]string{
			`any character between "0" and "9"`,
			`any character between "A" and "Z"`,
			`any character between "a" and "z"`,
		},
		chunky.Run(dup, newCursor(".")).Expected,
	)

	assert.Equal(t, chunky.Failure(0), chunky.Run(chunky.OneOf(), newCursor("x")))
}

func TestSeq(t *testing.T) {
	t.Parallel()

	p := chunky.Seq(text.Str("a"), text.Str("b"), text.Str("c"))

	r := chunky.Run(p, newCursor("abcd"))
	assert.Equal(t, chunky.Success([]any{"a", "b", "c"}, 0, 3), r)

	c := newCursor("abx")
	r = chunky.Run(p, c)
	assert.Equal(t, chunky.Failure(2, `"c"`), r)

	// The empty sequence matches nothing.
	c = newCursor("abc")
	c.SetOffset(1)
	assert.Equal(t, chunky.Success([]any{}, 1, 1), chunky.Run(chunky.Seq(), c))

	// Payloads merge left to right.
	labeled := chunky.Seq(
		chunky.Label("x", text.Str("a")),
		chunky.Label("y", text.Str("b")),
		chunky.Label("x", text.Str("c")),
	)
	r = chunky.Run(labeled, newCursor("abc"))
	require.True(t, r.OK)
	assert.Equal(t, map[string]any{"x": "c", "y": "b"}, r.Payload)
}

func TestMany(t *testing.T) {
	t.Parallel()

	a := text.Str("a")
	tests := []struct {
		name   string
		parser chunky.Parser
		src    string
		want   chunky.Result
	}{
		{name: "many0-empty", parser: chunky.Many0(a), src: "b", want: chunky.Success([]any{}, 0, 0)},
		{name: "many0", parser: chunky.Many0(a), src: "aaab", want: chunky.Success([]any{"a", "a", "a"}, 0, 3)},
		{name: "many1-empty", parser: chunky.Many1(a), src: "b", want: chunky.Failure(0, `"a"`)},
		{name: "many1", parser: chunky.Many1(a), src: "ab", want: chunky.Success([]any{"a"}, 0, 1)},
		{name: "bounded", parser: chunky.Many(a, 1, 2), src: "aaa", want: chunky.Success([]any{"a", "a"}, 0, 2)},
		{name: "too-few", parser: chunky.Many(a, 3, 4), src: "aab", want: chunky.Failure(2, `"a"`)},
		{name: "exact", parser: chunky.Many(a, 2, 2), src: "aaa", want: chunky.Success([]any{"a", "a"}, 0, 2)},
		{name: "zero", parser: chunky.Many(a, 0, 0), src: "aaa", want: chunky.Success([]any{}, 0, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.want, chunky.Run(test.parser, newCursor(test.src)))
		})
	}

	assert.Panics(t, func() { chunky.Many(a, -1, 2) })
	assert.Panics(t, func() { chunky.Many(a, 3, 2) })
}

func TestManyEmptyMatch(t *testing.T) {
	t.Parallel()

	// A parser that can match nothing must not loop forever.
	r := chunky.Run(chunky.Many0(chunky.Optional(text.Str("a"))), newCursor("aab"))
	assert.Equal(t, chunky.Success([]any{"a", "a", nil}, 0, 2), r)

	// Lower bounds are still met by empty matches.
	r = chunky.Run(chunky.Many(chunky.Optional(text.Str("a")), 3, -1), newCursor("b"))
	assert.Equal(t, chunky.Success([]any{nil, nil, nil}, 0, 0), r)
}

func TestManyPayload(t *testing.T) {
	t.Parallel()

	item := chunky.Seq(chunky.Label("d", text.Digit), chunky.Optional(text.Str(",")))
	r := chunky.Run(chunky.Many1(item), newCursor("1,2,3"))
	require.True(t, r.OK)
	assert.Equal(t, map[string]any{"d": []any{"1", "2", "3"}}, r.Payload)
	v, ok := r.Get("d")
	assert.True(t, ok)
	assert.Len(t, v, 3)
}

func TestMapValueRaw(t *testing.T) {
	t.Parallel()

	word := chunky.Many1(text.Alpha)

	r := chunky.Run(chunky.Raw(word), newCursor("hello world"))
	assert.Equal(t, chunky.Success("hello", 0, 5), r)

	r = chunky.Run(chunky.Value(word, 42), newCursor("hello"))
	assert.Equal(t, chunky.Success(42, 0, 5), r)

	upper := chunky.Map(chunky.Raw(word), func(r chunky.Result, c *chunky.Cursor) any {
		assert.Equal(t, r.End, c.Offset())
		return strings.ToUpper(r.Value.(string)) //nolint:errcheck
	})
	r = chunky.Run(upper, newCursor("hello"))
	assert.Equal(t, chunky.Success("HELLO", 0, 5), r)

	// Failures pass through untouched.
	r = chunky.Run(upper, newCursor("1"))
	assert.False(t, r.OK)
	assert.Equal(t, 0, r.Offset)
}

func TestNamed(t *testing.T) {
	t.Parallel()

	number := chunky.Named("number", chunky.Raw(chunky.Many1(text.Digit)))

	assert.Equal(t, chunky.Success("12", 0, 2), chunky.Run(number, newCursor("12a")))
	assert.Equal(t, chunky.Failure(0, "number"), chunky.Run(number, newCursor("a")))

	// The offset of the failure is kept.
	pair := chunky.Named("pair", chunky.Seq(text.Digit, text.Digit))
	assert.Equal(t, chunky.Failure(1, "pair"), chunky.Run(pair, newCursor("1a")))
}

func TestSet(t *testing.T) {
	t.Parallel()

	p := chunky.Set(chunky.Label("a", text.Str("a")), map[string]any{"kind": "letter"})
	r := chunky.Run(p, newCursor("a"))
	assert.Equal(t, map[string]any{"a": "a", "kind": "letter"}, r.Payload)

	p = chunky.SetFunc(chunky.Label("a", text.Str("a")), func(payload map[string]any) map[string]any {
		return map[string]any{"b": payload["a"].(string) + "!"} //nolint:errcheck
	})
	r = chunky.Run(p, newCursor("a"))
	assert.Equal(t, map[string]any{"a": "a", "b": "a!"}, r.Payload)

	r = chunky.Run(p, newCursor("x"))
	assert.False(t, r.OK)
	assert.Nil(t, r.Payload)
}

func TestLazyRecursion(t *testing.T) {
	t.Parallel()

	// parens = "(" parens ")" | ""
	var parens chunky.Parser
	parens = chunky.Optional(chunky.Seq(
		text.Str("("),
		chunky.Lazy(func() chunky.Parser { return parens }),
		text.Str(")"),
	))

	c := newCursor("((()))x")
	r := chunky.Run(parens, c)
	assert.True(t, r.OK)
	assert.Equal(t, 6, c.Offset())

	c = newCursor("(()")
	chunky.Run(parens, c)
	assert.Equal(t, 0, c.Offset())
}
