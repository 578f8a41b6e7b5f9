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

// Named returns a parser that behaves like p, except that when it fails the
// expected set is replaced with just name. This collapses the internals of a
// rule into one label that makes sense in a diagnostic.
//
// When tracing is enabled, Named also logs when the rule is entered and
// whether it matched.
func Named(name string, p Parser) Parser {
	return Func(func(c *Cursor) Result {
		offset := c.Offset()
		c.trace().Str("parser", name).Int("offset", offset).Msg("enter")

		exit := c.enter()
		r := p.Parse(c)
		exit()

		if !r.OK {
			r.Expected = []string{name}
		}
		c.trace().Str("parser", name).Int("offset", offset).Bool("found", r.OK).Msg("exit")
		return r
	})
}

// Label returns a parser that binds the value of a successful match of p to
// key in the result's payload.
func Label(key string, p Parser) Parser {
	return Func(func(c *Cursor) Result {
		r := p.Parse(c)
		if r.OK {
			r.Payload = withPayload(r.Payload, map[string]any{key: r.Value})
		}
		return r
	})
}

// Set returns a parser that adds fixed entries to the payload of a
// successful match of p.
func Set(p Parser, values map[string]any) Parser {
	return SetFunc(p, func(map[string]any) map[string]any { return values })
}

// SetFunc is like [Set], but computes the entries to add from the payload
// p produced.
func SetFunc(p Parser, f func(payload map[string]any) map[string]any) Parser {
	return Func(func(c *Cursor) Result {
		r := p.Parse(c)
		if r.OK {
			r.Payload = withPayload(r.Payload, f(r.Payload))
		}
		return r
	})
}
