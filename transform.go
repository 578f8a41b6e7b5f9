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

// Map returns a parser that replaces the value of a successful match of p
// with f's return value.
//
// f receives the whole result and the cursor positioned after the match, so
// it can look at the matched range or the context.
func Map(p Parser, f func(r Result, c *Cursor) any) Parser {
	return Func(func(c *Cursor) Result {
		r := p.Parse(c)
		if r.OK {
			r.Value = f(r, c)
		}
		return r
	})
}

// Value returns a parser that replaces the value of a successful match of p
// with v.
func Value(p Parser, v any) Parser {
	return Map(p, func(Result, *Cursor) any { return v })
}

// Raw returns a parser that replaces the value of a successful match of p with
// the text between the starting offset and the offset p stopped at.
func Raw(p Parser) Parser {
	return Func(func(c *Cursor) Result {
		start := c.Offset()
		r := p.Parse(c)
		if r.OK {
			r.Value = c.File().Text()[start:c.Offset()]
		}
		return r
	})
}
