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
)

// Seq returns a parser that matches each of ps in order.
//
// The value is a []any holding each element's value. The first failure is
// returned unchanged. Payloads are merged left to right.
func Seq(ps ...Parser) Parser {
	return Func(func(c *Cursor) Result {
		start, end := c.Offset(), c.Offset()
		values := make([]any, 0, len(ps))
		var payload map[string]any

		for i, p := range ps {
			r := p.Parse(c)
			if !r.OK {
				return r
			}
			if i == 0 {
				start = r.Start
			}
			end = r.End
			values = append(values, r.Value)
			payload = withPayload(payload, r.Payload)
		}

		r := Success(values, start, end)
		r.Payload = payload
		return r
	})
}

// Many returns a parser that matches p between lo and hi times. A negative
// hi means there is no upper bound.
//
// The value is a []any of each match's value, and the payload maps each key
// any match bound to a []any of the values it was bound to. If p matches fewer
// than lo times, the failure of the last attempt is returned.
func Many(p Parser, lo, hi int) Parser {
	if lo < 0 || (hi >= 0 && hi < lo) {
		panic(fmt.Sprintf("chunky: invalid repetition bounds [%d, %d]", lo, hi))
	}

	return Func(func(c *Cursor) Result {
		start, end := c.Offset(), c.Offset()
		var values []any
		var payload map[string]any

		for hi < 0 || len(values) < hi {
			before := c.Offset()
			r := TryRun(p, c)
			if !r.OK {
				if len(values) < lo {
					return r
				}
				break
			}

			values = append(values, r.Value)
			end = r.End
			for k, v := range r.Payload {
				if payload == nil {
					payload = make(map[string]any)
				}
				list, _ := payload[k].([]any)
				payload[k] = append(list, v)
			}

			// A match that consumed nothing would match forever.
			if c.Offset() == before && len(values) >= lo {
				break
			}
		}

		if values == nil {
			values = []any{}
		}
		r := Success(values, start, end)
		r.Payload = payload
		return r
	})
}

// Many0 is Many(p, 0, -1).
func Many0(p Parser) Parser {
	return Many(p, 0, -1)
}

// Many1 is Many(p, 1, -1).
func Many1(p Parser) Parser {
	return Many(p, 1, -1)
}
