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


// Package text provides leaf parsers that match characters, literal strings,
// and regular expressions at the cursor.
//
// All of the parsers in this package work on Unicode code points: "one
// character" is one rune of UTF-8 encoded text.
package text

import (
	"regexp"
	"strconv"

	"github.com/bufbuild/chunky"
)

// Str returns a parser that matches exactly s. The value is s.
func Str(s string) chunky.Parser {
	expected := strconv.Quote(s)
	return chunky.Func(func(c *chunky.Cursor) chunky.Result {
		if !c.StartsWith(s) {
			return c.Fail(expected)
		}
		start := c.Offset()
		c.Advance(len(s))
		return c.Succeed(s, start)
	})
}

// Regexp returns a parser that matches re at the cursor, as if re began with
// ^. The value is the matched text.
//
// A failed match expects nothing; wrap the parser in [chunky.Named] to give it
// a description.
func Regexp(re *regexp.Regexp) chunky.Parser {
	anchored := regexp.MustCompile(`^(?:` + re.String() + `)`)
	return chunky.Func(func(c *chunky.Cursor) chunky.Result {
		loc := anchored.FindStringIndex(c.Rest())
		if loc == nil {
			return c.Fail()
		}
		start := c.Offset()
		c.Advance(loc[1])
		return c.Succeed(c.File().Text()[start:c.Offset()], start)
	})
}

// EOF returns a parser that matches the end of the input.
func EOF() chunky.Parser {
	return chunky.Func(func(c *chunky.Cursor) chunky.Result {
		if !c.AtEOF() {
			return c.Fail("end of input")
		}
		return c.Succeed(nil, c.Offset())
	})
}
