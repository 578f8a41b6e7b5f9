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


package text

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bufbuild/chunky"
)

var (
	// Digit matches any character between '0' and '9'.
	Digit = AnyIn("09")
	// Alpha matches any ASCII letter.
	Alpha = AnyIn("AZ", "az")
	// AlphaNum matches any ASCII letter or digit.
	AlphaNum = AnyIn("09", "AZ", "az")

	// UnicodeDigit matches any character in Unicode category N.
	UnicodeDigit = Class("unicode number", unicode.IsNumber)
	// UnicodeLetter matches any character in Unicode category L.
	UnicodeLetter = Class("unicode letter", unicode.IsLetter)
	// UnicodeAlphaNum matches any character in Unicode category L or N.
	UnicodeAlphaNum = Class("unicode letter or number", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsNumber(r)
	})
)

// Any returns a parser that matches any single character. The value is the
// character as a string.
func Any() chunky.Parser {
	return Class("any character", func(rune) bool { return true })
}

// AnyOf returns a parser that matches any one of the characters in chars.
func AnyOf(chars string) chunky.Parser {
	var expected []string
	for _, r := range chars {
		expected = append(expected, strconv.Quote(string(r)))
	}
	return class(expected, func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// AnyIn returns a parser that matches any character within one of the given
// inclusive ranges. Each range is a two-character string, such as "az".
func AnyIn(ranges ...string) chunky.Parser {
	type bounds struct{ lo, hi rune }
	parsed := make([]bounds, 0, len(ranges))
	expected := make([]string, 0, len(ranges))
	for _, rng := range ranges {
		lo, n := utf8.DecodeRuneInString(rng)
		hi, m := utf8.DecodeRuneInString(rng[n:])
		if n == 0 || m == 0 || n+m != len(rng) {
			panic(fmt.Sprintf("chunky/text: invalid character range %q", rng))
		}
		parsed = append(parsed, bounds{lo, hi})
		expected = append(expected, fmt.Sprintf(
			"any character between %s and %s",
			strconv.Quote(string(lo)), strconv.Quote(string(hi)),
		))
	}

	return class(expected, func(r rune) bool {
		for _, b := range parsed {
			if b.lo <= r && r <= b.hi {
				return true
			}
		}
		return false
	})
}

// Class returns a parser that matches any single character for which match
// returns true. name describes the class in diagnostics.
func Class(name string, match func(rune) bool) chunky.Parser {
	return class([]string{name}, match)
}

func class(expected []string, match func(rune) bool) chunky.Parser {
	return chunky.Func(func(c *chunky.Cursor) chunky.Result {
		r, n := utf8.DecodeRuneInString(c.Rest())
		if n == 0 || (r == utf8.RuneError && n == 1) || !match(r) {
			return c.Fail(expected...)
		}
		start := c.Offset()
		c.Advance(n)
		return c.Succeed(string(r), start)
	})
}
