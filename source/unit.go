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

import "fmt"

// Unit is a unit of measurement for the column of a [Location].
type Unit int8

const (
	// Bytes counts columns in UTF-8 code units.
	Bytes Unit = iota
	// Runes counts columns in Unicode code points.
	Runes
	// UTF16 counts columns in UTF-16 code units, which is what most editors
	// speaking LSP expect.
	UTF16
	// TermWidth counts columns in approximate terminal cells, expanding tabs
	// to tabstops.
	TermWidth
)

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "Bytes"
	case Runes:
		return "Runes"
	case UTF16:
		return "UTF16"
	case TermWidth:
		return "TermWidth"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}
