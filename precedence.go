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

// Precedence is a rule made of alternatives ordered from highest to lowest
// precedence, which may be left-recursive.
//
// Alternative 0 is the base case and must be able to match without recursing
// into the rule. Every other alternative is typically written as
//
//	Seq(p.Left(), operator, p.Right())
//
// where [Precedence.Left] is whatever the rule has matched so far at the
// current position, and [Precedence.Right] is the rule restricted to
// alternatives of strictly higher precedence than the current one. This
// yields left-associative operators, with lower-indexed alternatives binding
// tighter.
//
// The rule is resolved with seed-and-grow: first the highest-precedence
// alternative that matches is taken as the seed, then the alternatives are
// retried with the seed available through Left for as long as that produces a
// strictly longer match. Only attempts that start with Left can grow the seed;
// an alternative that matches without it never replaces an earlier match, so
// the first alternative to match wins as in [OneOf].
//
// Once the rule succeeds, the failures of alternatives that were tried along
// the way are discarded: a successful result carries no expected set. A
// caller that fails right after the rule reports only what it expected
// itself, so trailing operators such as "1 +" surface as an error at the
// operator, not at the missing operand.
//
// Calling the rule from one of its own alternatives at the position the rule
// started at is the same as calling Left, so naturally left-recursive rules
// such as Seq(p, "+", p.Right()) work too.
type Precedence struct {
	name string
	alts []Parser
}

// recState is the bookkeeping for one active invocation of a [Precedence].
type recState struct {
	offset int
	// Highest alternative this invocation may use.
	limit int
	// The alternative currently running.
	option int

	// Set when Left hands out the seed; only attempts that used it may grow
	// the seed.
	usedLeft bool

	hasSeed   bool
	seed      Result
	seedLevel int
	seedMark  CursorMark
}

// NewPrecedence returns a new, empty rule. Its alternatives must be provided
// with [Precedence.Define] before it is run; this allows them to refer to the
// rule itself.
func NewPrecedence(name string) *Precedence {
	return &Precedence{name: name}
}

// WithPrecedence builds a rule in one step, passing the rule to build so that
// the alternatives can use [Precedence.Left] and [Precedence.Right].
func WithPrecedence(name string, build func(p *Precedence) []Parser) *Precedence {
	p := NewPrecedence(name)
	p.Define(build(p)...)
	return p
}

// Define sets this rule's alternatives, highest precedence first.
//
// Panics if called more than once, or with no alternatives.
func (p *Precedence) Define(alts ...Parser) {
	switch {
	case p.alts != nil:
		panic(&GrammarError{Rule: p.name, Reason: "alternatives defined more than once"})
	case len(alts) == 0:
		panic(&GrammarError{Rule: p.name, Reason: "no alternatives"})
	}
	p.alts = alts
}

// Name returns this rule's name.
func (p *Precedence) Name() string {
	return p.name
}

// Parse implements [Parser].
func (p *Precedence) Parse(c *Cursor) Result {
	if p.alts == nil {
		panic(&GrammarError{Rule: p.name, Offset: c.Offset(), Reason: "alternatives not defined"})
	}
	if st := p.top(c); st != nil && st.offset == c.Offset() {
		return p.left(c)
	}
	return p.invoke(c, len(p.alts)-1)
}

// Left returns a parser for whatever this rule has matched so far at the
// position the innermost active invocation of the rule started at.
//
// It must be the first thing an alternative matches. It fails if nothing has
// been matched yet, or if what has been matched came from an alternative of
// lower precedence than the one currently running.
func (p *Precedence) Left() Parser {
	return Func(p.left)
}

// Right returns a parser for this rule, restricted to the alternatives of
// strictly higher precedence than the one currently running.
func (p *Precedence) Right() Parser {
	return Func(func(c *Cursor) Result {
		st := p.top(c)
		switch {
		case st == nil:
			panic(&GrammarError{Rule: p.name, Offset: c.Offset(), Reason: "Right used outside of the rule"})
		case st.option == 0:
			panic(&GrammarError{Rule: p.name, Offset: c.Offset(), Reason: "Right used in the base alternative"})
		}
		return p.invoke(c, st.option-1)
	})
}

func (p *Precedence) top(c *Cursor) *recState {
	stack := c.shared.recs[p]
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

func (p *Precedence) left(c *Cursor) Result {
	st := p.top(c)
	switch {
	case st == nil:
		panic(&GrammarError{Rule: p.name, Offset: c.Offset(), Reason: "Left used outside of the rule"})
	case c.Offset() != st.offset:
		panic(&GrammarError{Rule: p.name, Offset: c.Offset(), Reason: "Left used after the start of an alternative"})
	case !st.hasSeed && st.option == 0:
		// The base alternative recursed before anything was matched, so
		// nothing can ever be matched.
		panic(&GrammarError{Rule: p.name, Offset: c.Offset(), Reason: "no non-recursive base alternative"})
	case !st.hasSeed, st.seedLevel > st.option:
		return c.Fail()
	}

	st.usedLeft = true
	c.Rewind(st.seedMark)
	return st.seed
}

// invoke runs this rule at the current offset using alternatives up to limit.
func (p *Precedence) invoke(c *Cursor, limit int) Result {
	st := &recState{offset: c.Offset(), limit: limit}
	c.shared.recs[p] = append(c.shared.recs[p], st)
	defer func() {
		stack := c.shared.recs[p]
		c.shared.recs[p] = stack[:len(stack)-1]
	}()

	start := c.Mark()
	exit := c.enter()
	defer exit()

	// Seed with the highest-precedence alternative that matches.
	var expected []string
	for i := 0; i <= limit && !st.hasSeed; i++ {
		st.option = i
		r := TryRun(p.alts[i], c)
		if !r.OK {
			expected = MergeExpected(expected, r.Expected)
			continue
		}
		p.grow(c, st, r, i)
	}
	if !st.hasSeed {
		return Failure(st.offset, expected...)
	}

	// Grow the seed until no alternative makes it longer. Each step consumes
	// at least one more byte, so this terminates.
	for grew := true; grew; {
		grew = false
		for i := 1; i <= limit; i++ {
			c.Rewind(start)
			st.option = i
			st.usedLeft = false
			r := TryRun(p.alts[i], c)
			if r.OK && st.usedLeft && c.Offset() > st.seedMark.offset {
				p.grow(c, st, r, i)
				grew = true
				break
			}
		}
	}

	c.Rewind(st.seedMark)
	return st.seed
}

// grow records r, produced by alternative level, as the new seed.
func (p *Precedence) grow(c *Cursor, st *recState, r Result, level int) {
	st.hasSeed = true
	st.seed = r
	st.seedLevel = level
	st.seedMark = c.Mark()

	c.trace().
		Str("rule", p.name).
		Int("offset", st.offset).
		Int("alternative", level).
		Int("end", c.Offset()).
		Msg("seed")
}
