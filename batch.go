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
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/chunky/reporter"
	"github.com/bufbuild/chunky/source"
)

// Batch parses many files with the same grammar concurrently.
//
// Each file gets its own cursor, so nothing but the grammar itself is shared
// between parses.
type Batch struct {
	// Loads the files to parse. This field is required.
	Opener source.Opener
	// The maximum number of files to parse at once. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails the batch after encountering any
	// errors.
	Reporter reporter.Reporter
	// Options applied to every parse.
	Options []Option
}

// Parse parses each of paths with p, returning the values in the same order.
// A path that appears more than once is only parsed once.
//
// Parse failures are sent to the reporter as [*ParseError]s; if the reporter
// swallows all of them, Parse returns [reporter.ErrInvalidSource]. Errors
// from the opener and [*GrammarError]s abort the batch.
func (b *Batch) Parse(ctx context.Context, p Parser, paths ...string) ([]any, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	par := b.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	h := reporter.NewHandler(b.Reporter)
	sem := semaphore.NewWeighted(int64(par))
	group, ctx := errgroup.WithContext(ctx)

	values := make([]any, len(paths))
	first := make(map[string]int, len(paths))
	for i, path := range paths {
		if _, ok := first[path]; ok {
			continue
		}
		first[path] = i

		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			v, err := b.parseOne(p, path, h)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := h.Error(); err != nil {
		return nil, err
	}

	for i, path := range paths {
		values[i] = values[first[path]]
	}
	return values, nil
}

func (b *Batch) parseOne(p Parser, path string, h *reporter.Handler) (any, error) {
	file, err := b.Opener.Open(path)
	if err != nil {
		return nil, h.HandleError(fmt.Errorf("chunky: opening %q: %w", path, err))
	}

	r, err := ParseResult(p, file, b.Options...)
	if err != nil {
		return nil, err
	}
	if !r.OK {
		return nil, h.HandleError(&ParseError{File: file, Offset: r.Offset, Expected: r.Expected})
	}
	return r.Value, nil
}
