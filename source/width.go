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

package source

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the number of columns a tab advances to, when measuring in
// [TermWidth].
const TabstopWidth = 4

// Width returns the approximate width of text in terminal columns, assuming it
// is printed starting at column zero.
//
// Tabs are expanded to the next multiple of [TabstopWidth].
func Width(text string) int {
	return AdvanceWidth(0, text)
}

// AdvanceWidth is like [Width], but starts measuring at the given column. This
// matters for tabstop calculations.
func AdvanceWidth(column int, text string) int {
	// uniseg.StringWidth does not know about tabstops, so we split on them
	// and advance manually.
	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			column += TabstopWidth - column%TabstopWidth
		}
		column += uniseg.StringWidth(chunk)
	}
	return column
}

// ExpandTabs replaces every tab in text with enough spaces to reach the next
// tabstop, assuming text starts at column zero.
func ExpandTabs(text string) string {
	if !strings.Contains(text, "\t") {
		return text
	}

	var out strings.Builder
	var column int
	for i, chunk := range strings.Split(text, "\t") {
		if i > 0 {
			tab := TabstopWidth - column%TabstopWidth
			out.WriteString(strings.Repeat(" ", tab))
			column += tab
		}
		out.WriteString(chunk)
		column += uniseg.StringWidth(chunk)
	}
	return out.String()
}
