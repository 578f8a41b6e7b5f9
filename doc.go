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

// Package chunky provides parser combinators: small parsers that are composed
// into recursive-descent parsers for custom languages, with backtracking,
// ordered choice, left recursion and back-references.
//
// # Parsers and Cursors
//
// A [Parser] maps a [Cursor] to a [Result]. The cursor holds the position in
// the [source.File] being parsed and a [Context], a persistent bag of
// grammar-defined values. Parsers advance the cursor as they match.
//
// There are two ways to run a parser. [Run] runs it against the live cursor,
// which is what a sequence does with its elements. [TryRun] runs it
// speculatively, and only keeps the cursor's new position and context if the
// parser succeeded; this is how choices, optional elements and repetitions
// abandon a failed attempt.
//
// # Combinators
//
// The building blocks are:
//   - [Seq], [Many], [Many0] and [Many1] for sequencing and repetition.
//   - [OneOf], [Optional], [Predicate] and [Not] for choice and lookahead.
//   - [Map], [Value] and [Raw] for transforming values.
//   - [Named], [Label] and [Set] for diagnostics and payloads.
//   - [Lazy] for rules that refer to rules defined later.
//
// Leaf parsers that match characters and patterns live in package text.
// [TokenType] is a leaf parser whose matches are cached in the cursor, which
// keeps backtracking-heavy grammars from re-running their lexers.
//
// # Left Recursion
//
// [Precedence] resolves operator grammars written with left recursion, such
// as expr = expr '+' expr | expr '*' expr | number, using seed-and-grow. See
// its documentation for how to lay out alternatives.
//
// # Back-References
//
// [StackGroup] pushes matched text onto a stack kept in the context, so that
// it can be matched again later (for example, the closing delimiter of a
// heredoc).
//
// # Entry Points
//
// [Parse] runs a parser over a file and converts a failure into a
// [*ParseError], which renders as a diagnostic through package report.
// [Batch] parses many files concurrently.
package chunky
