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

import "fmt"

// levelColors are the ANSI color codes for each level. Accents (line bars,
// secondary underlines) are blue.
var levelColors = map[Level]int{
	Error:   31,
	Warning: 33,
	Remark:  36,
}

const accentColor = 34

// styleSheet holds the escape sequences a [Renderer] writes. The zero value
// renders without color.
type styleSheet struct {
	reset, accent string
	plain, bold   map[Level]string
}

func newStyleSheet(r Renderer) styleSheet {
	if !r.Colorize {
		return styleSheet{}
	}

	c := styleSheet{
		reset:  "\033[0m",
		accent: sgr(false, accentColor),
		plain:  make(map[Level]string, len(levelColors)),
		bold:   make(map[Level]string, len(levelColors)),
	}
	for level, color := range levelColors {
		c.plain[level] = sgr(false, color)
		c.bold[level] = sgr(true, color)
	}
	return c
}

// sgr returns a "select graphic rendition" sequence for a foreground color.
func sgr(bold bool, color int) string {
	weight := 0
	if bold {
		weight = 1
	}
	return fmt.Sprintf("\033[%d;%dm", weight, color)
}

// ColorForLevel returns the non-bold color for l.
func (c styleSheet) ColorForLevel(l Level) string {
	return c.plain[l]
}

// BoldForLevel returns the bold color for l.
func (c styleSheet) BoldForLevel(l Level) string {
	return c.bold[l]
}
