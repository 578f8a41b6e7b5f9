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
	"slices"
	"strconv"
	"strings"
)

// StackGroup is a stack of previously matched strings, stored in the parse
// [Context]. It makes grammars with back-references expressible, such as
// heredocs or matching XML tags.
//
// Stack groups are identified by pointer, not by name.
//
// Peek, Pop and Drop address the stack with an optional range:
//
//   - No arguments: the top item.
//   - One argument i: the i-th most recently pushed item, 0 being the top.
//   - Two arguments start, end: the items from the start-th to the end-th most
//     recently pushed, inclusive, concatenated oldest first.
//
// Negative indices count from the bottom instead, -1 being the oldest item.
type StackGroup struct {
	name string
}

// NewStackGroup returns a new, empty stack group.
func NewStackGroup(name string) *StackGroup {
	return &StackGroup{name: name}
}

// Name returns this group's name.
func (g *StackGroup) Name() string {
	return g.name
}

// String implements [fmt.Stringer].
func (g *StackGroup) String() string {
	return "StackGroup(" + g.name + ")"
}

// Items returns the contents of this group's stack in c, oldest first.
func (g *StackGroup) Items(c *Cursor) []string {
	return slices.Clone(g.items(c.Context()))
}

// Push returns a parser that matches p and pushes the text it matched onto
// the stack. The value is the matched text.
func (g *StackGroup) Push(p Parser) Parser {
	raw := Raw(p)
	return Func(func(c *Cursor) Result {
		r := raw.Parse(c)
		if r.OK {
			items := g.items(c.Context())
			c.SetContext(c.Context().With(g, append(slices.Clip(items), r.Value.(string)))) //nolint:errcheck
		}
		return r
	})
}

// Peek returns a parser that matches the addressed items as a literal,
// leaving the stack as is.
//
// Fails with nothing expected if the range is out of bounds.
func (g *StackGroup) Peek(at ...int) Parser {
	return g.match("Peek", at, false)
}

// Pop is like [StackGroup.Peek], but removes the addressed items on success.
//
// Removal is part of the cursor's context, so it is undone when an enclosing
// parser backtracks.
func (g *StackGroup) Pop(at ...int) Parser {
	return g.match("Pop", at, true)
}

// Drop returns a parser that removes the addressed items without matching
// anything. It always succeeds with a nil value; if the range is out of
// bounds, the stack is left as is.
func (g *StackGroup) Drop(at ...int) Parser {
	checkRange("Drop", at)
	return Func(func(c *Cursor) Result {
		items := g.items(c.Context())
		if lo, hi, ok := stackRange(len(items), at); ok {
			c.SetContext(c.Context().With(g, slices.Concat(items[:lo], items[hi:])))
		}
		return c.Succeed(nil, c.Offset())
	})
}

func (g *StackGroup) match(op string, at []int, remove bool) Parser {
	checkRange(op, at)
	return Func(func(c *Cursor) Result {
		items := g.items(c.Context())
		lo, hi, ok := stackRange(len(items), at)
		if !ok {
			return c.Fail()
		}

		text := strings.Join(items[lo:hi], "")
		if !c.StartsWith(text) {
			return c.Fail(strconv.Quote(text))
		}

		start := c.Offset()
		c.Advance(len(text))
		if remove {
			c.SetContext(c.Context().With(g, slices.Concat(items[:lo], items[hi:])))
		}
		return c.Succeed(text, start)
	})
}

func (g *StackGroup) items(ctx Context) []string {
	v, _ := ctx.Value(g)
	items, _ := v.([]string)
	return items
}

// stackRange converts range arguments into slice bounds of a stack with n
// items.
func stackRange(n int, at []int) (lo, hi int, ok bool) {
	var start, end int
	switch len(at) {
	case 1:
		start, end = at[0], at[0]
	case 2:
		start, end = at[0], at[1]
	}

	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 || end < start || end >= n {
		return 0, 0, false
	}
	return n - 1 - end, n - start, true
}

func checkRange(op string, at []int) {
	if len(at) > 2 {
		panic(fmt.Sprintf("chunky: StackGroup.%s takes at most two indices, got %d", op, len(at)))
	}
}
