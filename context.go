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
)

// Context is the grammar-defined payload carried by a [Cursor].
//
// A Context is persistent: every update returns a new Context and leaves the
// receiver untouched, so snapshotting one is just copying the value. Values
// stored in a Context must themselves be treated as immutable.
//
// The zero Context is empty and ready to use.
type Context struct {
	m map[any]any
}

// Value returns the value stored under key, if any.
func (c Context) Value(key any) (any, bool) {
	v, ok := c.m[key]
	return v, ok
}

// With returns a copy of this context with key set to value.
//
// key must be comparable.
func (c Context) With(key, value any) Context {
	m := make(map[any]any, len(c.m)+1)
	maps.Copy(m, c.m)
	m[key] = value
	return Context{m}
}

// Without returns a copy of this context with key removed.
func (c Context) Without(key any) Context {
	if _, ok := c.m[key]; !ok {
		return c
	}
	m := maps.Clone(c.m)
	delete(m, key)
	return Context{m}
}

// Len returns the number of entries in this context.
func (c Context) Len() int {
	return len(c.m)
}

// Key is a typed key into a [Context]. Keys are compared by identity, so two
// keys with the same name are still distinct.
type Key[T any] struct {
	name string
}

// NewKey returns a new, unique key. The name is only used for debugging.
func NewKey[T any](name string) *Key[T] {
	return &Key[T]{name: name}
}

// Get returns the value stored under this key.
func (k *Key[T]) Get(c Context) (T, bool) {
	v, ok := c.Value(k)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true //nolint:errcheck // Only Set writes under k.
}

// Set returns a copy of c with this key set to v.
func (k *Key[T]) Set(c Context, v T) Context {
	return c.With(k, v)
}

// Delete returns a copy of c with this key removed.
func (k *Key[T]) Delete(c Context) Context {
	return c.Without(k)
}

// String implements [fmt.Stringer].
func (k *Key[T]) String() string {
	var zero T
	return fmt.Sprintf("Key[%T](%s)", zero, k.name)
}
