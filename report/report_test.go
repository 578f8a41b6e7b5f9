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


package report_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bufbuild/chunky/report"
	"github.com/bufbuild/chunky/source"
)

func TestProtoRoundTrip(t *testing.T) {
	t.Parallel()

	files := source.NewMap(nil)
	files.Add("a.txt", "hello\nworld\n")
	file, err := files.Open("a.txt")
	require.NoError(t, err)

	r := new(report.Report)
	r.Errorf("unexpected input").Apply(
		report.Snippet(file.Span(6, 11), "expected %s", "greeting"),
		report.Note("greetings come first"),
	)
	r.Warnf("trailing newline").Apply(report.InFile("a.txt"))

	s, err := r.ToProto()
	require.NoError(t, err)

	diags := s.GetFields()["diagnostics"].GetListValue().GetValues()
	require.Len(t, diags, 2)
	first := diags[0].GetStructValue().GetFields()
	assert.Equal(t, "error", first["level"].GetStringValue())
	ann := first["annotations"].GetListValue().GetValues()[0].GetStructValue().GetFields()
	assert.InDelta(t, 2, ann["line"].GetNumberValue(), 0)
	assert.InDelta(t, 1, ann["column"].GetNumberValue(), 0)
	assert.Equal(t, "expected greeting", ann["message"].GetStringValue())

	// Go through JSON to make sure the struct survives interchange.
	data, err := protojson.Marshal(s)
	require.NoError(t, err)
	decoded := new(structpb.Struct)
	require.NoError(t, protojson.Unmarshal(data, decoded))

	assert.Empty(t, cmp.Diff(s, decoded, protocmp.Transform()))

	back := new(report.Report)
	require.NoError(t, back.AppendFromProto(decoded, files))

	again, err := back.ToProto()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(s, again, protocmp.Transform()))

	render := report.Renderer{ShowRemarks: true}
	want, _, _ := render.RenderString(r)
	got, _, _ := render.RenderString(back)
	assert.Equal(t, want, got)

	viaJSON, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(viaJSON))
}

func TestAppendFromProtoErrors(t *testing.T) {
	t.Parallel()

	s, err := structpb.NewStruct(map[string]any{
		"diagnostics": []any{map[string]any{"level": "fatal"}},
	})
	require.NoError(t, err)
	err = new(report.Report).AppendFromProto(s, source.NewMap(nil))
	require.ErrorContains(t, err, `unknown level "fatal"`)
}

func TestAsError(t *testing.T) {
	t.Parallel()

	file := source.NewFile("x.txt", "abc")
	r := report.Report{}
	r.Errorf("bad %s", "thing").Apply(report.Snippet(file.Span(1, 2)))
	r.Error(&report.ErrInFile{Err: errors.New("unreadable"), Path: "y.txt"})
	assert.Equal(t, 2, r.ErrorCount())

	err := &report.AsError{Report: r}
	assert.Equal(t, "error: x.txt:1:2: bad thing\nerror: y.txt: unreadable", err.Error())
}

func TestSort(t *testing.T) {
	t.Parallel()

	a := source.NewFile("a.txt", "0123456789")
	b := source.NewFile("b.txt", "0123456789")

	r := new(report.Report)
	r.Errorf("b5").Apply(report.Snippet(b.Span(5, 6)))
	r.Errorf("a7").Apply(report.Snippet(a.Span(7, 8)))
	r.Errorf("a2").Apply(report.Snippet(a.Span(2, 3)))
	r.Sort()

	var got []string
	for i := range r.Diagnostics {
		got = append(got, r.Diagnostics[i].Message())
	}
	assert.Equal(t, []string{"a2", "a7", "b5"}, got)
}

func TestRenderOptions(t *testing.T) {
	t.Parallel()

	r := new(report.Report)
	r.Warnf("suspicious")
	r.Remarkf("hidden")

	text, errs, warns := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, "warning: suspicious\n", text)
	assert.Equal(t, 0, errs)
	assert.Equal(t, 1, warns)

	text, errs, warns = report.Renderer{Compact: true, WarningsAreErrors: true}.RenderString(r)
	assert.Equal(t, "error: suspicious\n", text)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 0, warns)

	text, _, _ = report.Renderer{Colorize: true}.RenderString(r)
	assert.Contains(t, text, "\033[1;33mwarning: suspicious\033[0m")
	assert.Contains(t, text, "encountered 1 warning")

	assert.Panics(t, func() {
		new(report.Report).Errorf("once").Apply(report.Message("twice"))
	})
}

func TestColorize(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.txt", "ab\n")
	r := new(report.Report)
	r.Errorf("boom").Apply(
		report.Snippet(file.Span(0, 1), "here"),
		report.Snippet(file.Span(1, 2), "and here"),
		report.Note("look closer"),
	)
	r.Remarkf("hi")

	text, _, _ := report.Renderer{Colorize: true, ShowRemarks: true}.RenderString(r)
	for _, want := range []string{
		"\033[1;31merror: boom\033[0m",
		"\033[0;31m^ here",
		"\033[0;34m- and here",
		"\033[0;34m   |\033[0m",
		"\033[1;36mnote: \033[0mlook closer",
		"\033[1;36mremark: hi\033[0m",
		"\033[1;31mencountered 1 error\033[0m",
	} {
		assert.Contains(t, text, want)
	}

	plain, _, _ := report.Renderer{ShowRemarks: true}.RenderString(r)
	assert.NotContains(t, plain, "\033[")
}
