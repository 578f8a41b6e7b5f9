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

package report

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/bufbuild/chunky/source"
)

// ToProto converts this report into a [structpb.Struct] with the following
// shape:
//
//	{
//	  "diagnostics": [{
//	    "level": "error",
//	    "message": "...",
//	    "in_file": "...",
//	    "annotations": [{
//	      "file": "...", "start": 0, "end": 1, "line": 1, "column": 1,
//	      "message": "...", "primary": true
//	    }],
//	    "notes": ["..."], "help": ["..."], "debug": ["..."]
//	  }]
//	}
//
// Line and column are 1-indexed and measured in runes.
func (r *Report) ToProto() (*structpb.Struct, error) {
	diagnostics := make([]any, 0, len(r.Diagnostics))
	for i := range r.Diagnostics {
		d := &r.Diagnostics[i]

		annotations := make([]any, 0, len(d.annotations))
		for _, a := range d.annotations {
			loc := a.Location(a.Start, source.Runes)
			annotations = append(annotations, map[string]any{
				"file":    a.Path(),
				"start":   a.Start,
				"end":     a.End,
				"line":    loc.Line,
				"column":  loc.Column,
				"message": a.Message,
				"primary": a.Primary,
			})
		}

		diagnostics = append(diagnostics, map[string]any{
			"level":       d.level.String(),
			"message":     d.message,
			"in_file":     d.InFile(),
			"annotations": annotations,
			"notes":       stringsToList(d.notes),
			"help":        stringsToList(d.help),
			"debug":       stringsToList(d.debug),
		})
	}

	s, err := structpb.NewStruct(map[string]any{"diagnostics": diagnostics})
	if err != nil {
		return nil, fmt.Errorf("chunky/report: converting report: %w", err)
	}
	return s, nil
}

// MarshalJSON implements [json.Marshaler], by way of [Report.ToProto].
func (r *Report) MarshalJSON() ([]byte, error) {
	s, err := r.ToProto()
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// AppendFromProto appends the diagnostics in a struct produced by
// [Report.ToProto] to this report.
//
// files is used to resolve the paths that annotations refer to.
func (r *Report) AppendFromProto(s *structpb.Struct, files source.Opener) error {
	list := s.GetFields()["diagnostics"].GetListValue()
	for i, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()

		level, err := parseLevel(fields["level"].GetStringValue())
		if err != nil {
			return fmt.Errorf("chunky/report: diagnostic %d: %w", i, err)
		}
		d := Diagnostic{
			level:   level,
			message: fields["message"].GetStringValue(),
			notes:   listToStrings(fields["notes"]),
			help:    listToStrings(fields["help"]),
			debug:   listToStrings(fields["debug"]),
		}

		for j, av := range fields["annotations"].GetListValue().GetValues() {
			af := av.GetStructValue().GetFields()
			path := af["file"].GetStringValue()
			file, err := files.Open(path)
			if err != nil {
				return fmt.Errorf("chunky/report: diagnostic %d, annotation %d: %w", i, j, err)
			}
			d.annotations = append(d.annotations, Annotation{
				Span:    file.Span(int(af["start"].GetNumberValue()), int(af["end"].GetNumberValue())),
				Message: af["message"].GetStringValue(),
				Primary: af["primary"].GetBoolValue(),
			})
		}
		if len(d.annotations) == 0 {
			d.inFile = fields["in_file"].GetStringValue()
		}

		r.Diagnostics = append(r.Diagnostics, d)
	}
	return nil
}

func parseLevel(s string) (Level, error) {
	for _, l := range []Level{Error, Warning, Remark} {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

func stringsToList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func listToStrings(v *structpb.Value) []string {
	var out []string
	for _, s := range v.GetListValue().GetValues() {
		out = append(out, s.GetStringValue())
	}
	return out
}
