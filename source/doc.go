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

// Package source provides the input side of a parse: immutable source files
// and spans within them.
//
// [File] is a named piece of text that a parser consumes. It tracks its
// contents, its path (used only for diagnostics), and book-keeping information
// for turning byte offsets into line/column pairs. [Span] is a region of some
// [File]. [Opener] is a common interface for loading [File]s from somewhere.
package source
