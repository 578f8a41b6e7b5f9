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
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/bufbuild/chunky"
	"github.com/bufbuild/chunky/internal/corpora"
	"github.com/bufbuild/chunky/report"
	"github.com/bufbuild/chunky/text"
)

// binop is a node of a calculator expression tree.
type binop struct {
	op   string
	l, r any
}

func (b binop) String() string {
	return fmt.Sprintf("(%s %v %v)", b.op, b.l, b.r)
}

func eval(v any) int {
	switch v := v.(type) {
	case int:
		return v
	case binop:
		l, r := eval(v.l), eval(v.r)
		switch v.op {
		case "+":
			return l + r
		case "-":
			return l - r
		case "*":
			return l * r
		}
	}
	panic(fmt.Sprintf("unexpected node %#v", v))
}

// calc is an integer calculator with the usual precedence and
// left-associativity rules.
var calc = func() chunky.Parser {
	var (
		number = chunky.NewTokenType("number", chunky.Pattern(regexp.MustCompile(`\d+`)))
		lparen = chunky.NewTokenType(`"("`, chunky.Literal("("))
		rparen = chunky.NewTokenType(`")"`, chunky.Literal(")"))
		plus   = chunky.NewTokenType(`"+"`, chunky.Literal("+"))
		minus  = chunky.NewTokenType(`"-"`, chunky.Literal("-"))
		star   = chunky.NewTokenType(`"*"`, chunky.Literal("*"))
	)

	skip := chunky.Many0(text.AnyOf(" \t\n"))
	second := func(r chunky.Result, _ *chunky.Cursor) any {
		return r.Value.([]any)[1] //nolint:errcheck
	}
	lex := func(p chunky.Parser) chunky.Parser {
		return chunky.Map(chunky.Seq(skip, p), func(r chunky.Result, c *chunky.Cursor) any {
			return second(r, c).(chunky.Token).Text //nolint:errcheck
		})
	}
	node := func(r chunky.Result, _ *chunky.Cursor) any {
		v := r.Value.([]any) //nolint:errcheck
		return binop{op: v[1].(string), l: v[0], r: v[2]} //nolint:errcheck
	}

	expr := chunky.WithPrecedence("expression", func(e *chunky.Precedence) []chunky.Parser {
		return []chunky.Parser{
			chunky.OneOf(
				chunky.Map(lex(number), func(r chunky.Result, _ *chunky.Cursor) any {
					n, _ := strconv.Atoi(r.Value.(string)) //nolint:errcheck
					return n
				}),
				chunky.Map(chunky.Seq(lex(lparen), e, lex(rparen)), second),
			),
			chunky.Map(chunky.Seq(e.Left(), lex(star), e.Right()), node),
			chunky.Map(chunky.Seq(e.Left(), lex(chunky.OneOf(plus, minus)), e.Right()), node),
		}
	})

	return chunky.Map(
		chunky.Seq(expr, skip, text.EOF()),
		func(r chunky.Result, _ *chunky.Cursor) any { return r.Value.([]any)[0] }, //nolint:errcheck
	)
}()

func TestCalc(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata/calc",
		Refresh:    "CHUNKY_REFRESH",
		Extensions: []string{"calc"},
		Outputs:    []corpora.Output{{Extension: "out"}},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		v, err := chunky.ParseString(calc, path, text)
		if err == nil {
			outputs[0] = fmt.Sprintf("%v = %d\n", v, eval(v))
			return
		}

		r := new(report.Report)
		if pe, ok := err.(*chunky.ParseError); ok { //nolint:errorlint
			r.Error(pe)
		} else {
			r.Errorf("%v", err)
		}
		outputs[0], _, _ = report.Renderer{}.RenderString(r)
	})
}
