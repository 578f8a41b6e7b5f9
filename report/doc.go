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

/*
Package report provides diagnostics for parse failures. It offers diagnostic
construction, interchange, and ASCII art rendering functionality.

Diagnostics are collected into a [Report], which is a helpful builder over
a slice of [Diagnostic]s. Each [Diagnostic] consists of a message plus
metadata for rendering, such as source code spans, notes, and help text.

Reports can be rendered using a [Renderer], which provides several options
for how to render the result to the user. A Report can also be converted
into a [structpb.Struct] using [Report.ToProto], which can be serialized to
JSON as an alternative, machine-readable error output.

# Defining Diagnostics

Generally, to define a diagnostic, define a new Go error type and make it
implement [Diagnose]. That way, callers that use the library can type assert
to programmatically determine the nature of a failure, and every place that
emits the diagnostic gets the same UX.

Diagnostic messages do not begin with a capital letter and do not end in
punctuation. The words "error", "warning", "remark", "help", and "note" are
never capitalized.

[structpb.Struct]: https://pkg.go.dev/google.golang.org/protobuf/types/known/structpb#Struct
*/
package report
