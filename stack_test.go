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


package chunky_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/chunky"
	"github.com/bufbuild/chunky/text"
)

const stackSrc = "Foo Bar Quz Qux Bar Foo Quz Qux "

var word = chunky.Seq(chunky.Many1(text.Alpha), text.Str(" "))

// runAt runs p speculatively at offset, keeping c's context.
func runAt(c *chunky.Cursor, p chunky.Parser, offset int) chunky.Result {
	c.SetOffset(offset)
	return chunky.TryRun(p, c)
}

func TestStackPush(t *testing.T) {
	t.Parallel()

	stack := chunky.NewStackGroup("test")
	c := newCursor(stackSrc)
	assert.Equal(t, chunky.Success("Foo ", 0, 4), runAt(c, stack.Push(word), 0))
	assert.Equal(t, []string{"Foo "}, stack.Items(c))

	assert.Equal(t,
		chunky.Failure(3,
			`any character between "A" and "Z"`,
			`any character between "a" and "z"`,
		),
		runAt(c, stack.Push(word), 3),
	)
	assert.Equal(t, []string{"Foo "}, stack.Items(c))
	assert.Equal(t, "StackGroup(test)", stack.String())
}

func TestStackPeek(t *testing.T) {
	t.Parallel()

	t.Run("top", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 0)
		runAt(c, stack.Push(word), 4)

		assert.Equal(t, chunky.Success("Bar ", 16, 20), runAt(c, stack.Peek(), 16))
		assert.Equal(t, chunky.Failure(8, `"Bar "`), runAt(c, stack.Peek(), 8))
		// Peek leaves the stack alone.
		assert.Equal(t, chunky.Success("Bar ", 4, 8), runAt(c, stack.Peek(), 4))
		assert.Equal(t, []string{"Foo ", "Bar "}, stack.Items(c))
	})

	t.Run("nth", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 0)
		runAt(c, stack.Push(word), 4)

		assert.Equal(t, chunky.Success("Foo ", 20, 24), runAt(c, stack.Peek(1), 20))
		assert.Equal(t, chunky.Failure(8, `"Foo "`), runAt(c, stack.Peek(1), 8))
		// Negative indices count from the bottom.
		assert.Equal(t, chunky.Success("Foo ", 20, 24), runAt(c, stack.Peek(-1), 20))
		assert.Equal(t, chunky.Success("Bar ", 16, 20), runAt(c, stack.Peek(-2), 16))
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 8)
		runAt(c, stack.Push(word), 12)

		assert.Equal(t, chunky.Success("Quz Qux ", 24, 32), runAt(c, stack.Peek(0, 1), 24))
		assert.Equal(t, chunky.Failure(4, `"Quz Qux "`), runAt(c, stack.Peek(0, 1), 4))
	})

	t.Run("out-of-range", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		assert.Equal(t, chunky.Failure(0), runAt(c, stack.Peek(), 0))

		runAt(c, stack.Push(word), 0)
		assert.Equal(t, chunky.Failure(0), runAt(c, stack.Peek(1), 0))
		assert.Equal(t, chunky.Failure(0), runAt(c, stack.Peek(1, 0), 0))
		assert.Equal(t, chunky.Failure(0), runAt(c, stack.Peek(-2), 0))
	})

	assert.Panics(t, func() { chunky.NewStackGroup("test").Peek(0, 1, 2) })
}

func TestStackPop(t *testing.T) {
	t.Parallel()

	t.Run("top", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 0)
		runAt(c, stack.Push(word), 4)

		assert.Equal(t, chunky.Success("Bar ", 16, 20), runAt(c, stack.Pop(), 16))
		assert.Equal(t, chunky.Failure(8, `"Foo "`), runAt(c, stack.Pop(), 8))
		assert.Equal(t, chunky.Success("Foo ", 20, 24), runAt(c, stack.Pop(), 20))
		assert.Empty(t, stack.Items(c))
		assert.Equal(t, chunky.Failure(0), runAt(c, stack.Pop(), 0))
	})

	t.Run("nth", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 0)
		runAt(c, stack.Push(word), 4)

		assert.Equal(t, chunky.Success("Foo ", 20, 24), runAt(c, stack.Pop(1), 20))
		assert.Equal(t, []string{"Bar "}, stack.Items(c))
	})

	t.Run("range", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 8)
		runAt(c, stack.Push(word), 12)

		assert.Equal(t, chunky.Success("Quz Qux ", 24, 32), runAt(c, stack.Pop(0, 1), 24))
		assert.Equal(t, chunky.Failure(4), runAt(c, stack.Pop(0, 1), 4))
	})

	t.Run("rollback", func(t *testing.T) {
		t.Parallel()
		stack := chunky.NewStackGroup("test")
		c := newCursor(stackSrc)
		runAt(c, stack.Push(word), 0)

		assert.Equal(t, chunky.Success("Foo ", 20, 24), runAt(c, stack.Peek(), 20))
		assert.Equal(t, chunky.Failure(24, `"!"`), runAt(c, chunky.Seq(stack.Pop(), text.Str("!")), 20))
		assert.Equal(t, chunky.Success("Foo ", 20, 24), runAt(c, stack.Peek(), 20))
	})
}

func TestStackDrop(t *testing.T) {
	t.Parallel()

	stack := chunky.NewStackGroup("test")
	c := newCursor(stackSrc)
	runAt(c, stack.Push(word), 0)
	runAt(c, stack.Push(word), 4)
	runAt(c, stack.Push(word), 8)

	assert.Equal(t, chunky.Success(nil, 12, 12), runAt(c, stack.Drop(1), 12))
	assert.Equal(t, []string{"Foo ", "Quz "}, stack.Items(c))

	// Out of range drops are no-ops.
	assert.True(t, runAt(c, stack.Drop(5), 12).OK)
	assert.Equal(t, []string{"Foo ", "Quz "}, stack.Items(c))

	assert.True(t, runAt(c, stack.Drop(0, 1), 12).OK)
	assert.Empty(t, stack.Items(c))
}

func TestStackGroupsAreDistinct(t *testing.T) {
	t.Parallel()

	a, b := chunky.NewStackGroup("same"), chunky.NewStackGroup("same")
	c := newCursor(stackSrc)
	runAt(c, a.Push(word), 0)
	assert.Equal(t, []string{"Foo "}, a.Items(c))
	assert.Empty(t, b.Items(c))
}

func TestHeredoc(t *testing.T) {
	t.Parallel()

	// <<TAG ... TAG, where the body is anything up to the tag.
	tags := chunky.NewStackGroup("heredoc")
	heredoc := chunky.Seq(
		text.Str("<<"),
		tags.Push(chunky.Many1(text.Alpha)),
		text.Str("\n"),
		chunky.Raw(chunky.Many0(chunky.Seq(chunky.Not(tags.Peek()), text.Any()))),
		tags.Pop(),
	)

	v, err := chunky.ParseString(heredoc, "test", "<<EOT\nsome EO text\nEOT")
	if assert.NoError(t, err) {
		assert.Equal(t, "some EO text\n", v.([]any)[3]) //nolint:errcheck
	}

	_, err = chunky.ParseString(heredoc, "test", "<<EOT\nunterminated\nEOF")
	assert.ErrorIs(t, err, chunky.ErrUnexpectedInput)
}
