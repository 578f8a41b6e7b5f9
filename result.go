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
	"maps"
	"slices"

	"github.com/rs/zerolog"
)

// Result is the outcome of running a [Parser].
//
// A successful result has OK set, and uses Value, Start, End and Payload. A
// failed result uses Offset and Expected. Results are plain values; a failure
// is never a Go error.
type Result struct {
	OK bool

	// The parsed value and the half-open byte range it covers.
	Value      any
	Start, End int

	// Values bound by [Label] and [Set]. Treated as immutable; combinators
	// that modify it make a copy.
	Payload map[string]any

	// Where the failure happened, and human-readable descriptions of what
	// would have been accepted there, in first-seen order without duplicates.
	Offset   int
	Expected []string
}

// Success returns a successful result.
func Success(value any, start, end int) Result {
	return Result{OK: true, Value: value, Start: start, End: end}
}

// Failure returns a failed result at offset.
func Failure(offset int, expected ...string) Result {
	return Result{Offset: offset, Expected: MergeExpected(nil, expected)}
}

// Len returns the number of bytes a successful result covers.
func (r Result) Len() int {
	return r.End - r.Start
}

// Get returns the payload value bound to key.
func (r Result) Get(key string) (any, bool) {
	v, ok := r.Payload[key]
	return v, ok
}

// String implements [fmt.Stringer].
func (r Result) String() string {
	if r.OK {
		return fmt.Sprintf("ok[%d:%d](%v)", r.Start, r.End, r.Value)
	}
	return fmt.Sprintf("fail@%d%q", r.Offset, r.Expected)
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (r Result) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("ok", r.OK)
	if r.OK {
		e.Int("start", r.Start).Int("end", r.End)
		return
	}
	e.Int("offset", r.Offset).Strs("expected", r.Expected)
}

// MergeExpected appends the elements of b to a that a does not already
// contain, preserving order.
//
// a is never modified in place; the result may alias a when b adds nothing.
func MergeExpected(a, b []string) []string {
	var out []string
	for _, s := range b {
		if slices.Contains(a, s) || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return a
	}
	return append(slices.Clip(a), out...)
}

// withPayload returns a copy of p with the entries of q added.
func withPayload(p, q map[string]any) map[string]any {
	if len(q) == 0 {
		return p
	}
	if len(p) == 0 {
		return q
	}
	out := maps.Clone(p)
	maps.Copy(out, q)
	return out
}
