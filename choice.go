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

// Optional returns a parser that matches p, or succeeds with a nil value and
// an empty range if p fails.
func Optional(p Parser) Parser {
	return Func(func(c *Cursor) Result {
		start := c.Offset()
		if r := TryRun(p, c); r.OK {
			return r
		}
		return Success(nil, start, start)
	})
}

// Predicate returns a parser that reports p's result without consuming
// any input.
func Predicate(p Parser) Parser {
	return Func(func(c *Cursor) Result {
		mark := c.Mark()
		r := p.Parse(c)
		c.Rewind(mark)
		return r
	})
}

// Not returns a parser that succeeds with a nil value and an empty range if p
// fails, and fails with nothing expected if p succeeds. It never consumes
// input.
func Not(p Parser) Parser {
	return Func(func(c *Cursor) Result {
		mark := c.Mark()
		r := p.Parse(c)
		c.Rewind(mark)

		if r.OK {
			return c.Fail()
		}
		return c.Succeed(nil, c.Offset())
	})
}

// OneOf returns a parser that tries each of ps in order and returns the first
// success.
//
// If every alternative fails, the result is a failure at the starting offset
// that expects anything any alternative expected.
func OneOf(ps ...Parser) Parser {
	return Func(func(c *Cursor) Result {
		var expected []string
		for _, p := range ps {
			r := TryRun(p, c)
			if r.OK {
				return r
			}
			expected = MergeExpected(expected, r.Expected)
		}
		return Failure(c.Offset(), expected...)
	})
}
