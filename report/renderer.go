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
	"io"
	"strconv"
	"strings"

	"github.com/bufbuild/chunky/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	//
	// Ignored by [Renderer.Diagnostic].
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings the report contains.
//
// On the other hand, the actual error-typed return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		if !r.ShowRemarks && d.level == Remark {
			continue
		}

		if _, err = io.WriteString(out, r.Diagnostic(d)+"\n"); err != nil {
			return errorCount, warningCount, err
		}
		if !r.Compact {
			if _, err = io.WriteString(out, "\n"); err != nil {
				return errorCount, warningCount, err
			}
		}

		switch {
		case d.level == Error, d.level == Warning && r.WarningsAreErrors:
			errorCount++
		case d.level == Warning:
			warningCount++
		}
	}
	if r.Compact {
		return errorCount, warningCount, nil
	}

	c := newStyleSheet(r)
	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Error), "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Error), "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Warning), "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	level := d.level
	if level == Warning && r.WarningsAreErrors {
		level = Error
	}

	c := newStyleSheet(r)

	// For the compact style, we imitate the Go compiler.
	if r.Compact {
		primary := d.Primary()
		switch {
		case !primary.IsZero():
			start := primary.StartLoc()
			return fmt.Sprintf(
				"%s%s: %s:%d:%d: %s%s",
				c.ColorForLevel(level), level,
				primary.Path(), start.Line, start.Column,
				d.message, c.reset,
			)
		case d.inFile != "":
			return fmt.Sprintf("%s%s: %s: %s%s", c.ColorForLevel(level), level, d.inFile, d.message, c.reset)
		default:
			return fmt.Sprintf("%s%s: %s%s", c.ColorForLevel(level), level, d.message, c.reset)
		}
	}

	// For the other styles, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(level), level, ": ", d.message, c.reset)

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, a := range d.annotations {
		greatestLine = max(greatestLine, a.StartLoc().Line)
	}
	barWidth := max(2, len(strconv.Itoa(greatestLine)))
	pad := strings.Repeat(" ", barWidth)

	var prev *source.File
	for i, a := range d.annotations {
		start := a.StartLoc()
		switch {
		case i == 0:
			fmt.Fprintf(&out, "\n%s%s--> %s:%d:%d%s", c.accent, pad, a.Path(), start.Line, start.Column, c.reset)
		case a.File != prev:
			fmt.Fprintf(&out, "\n%s%s::: %s:%d:%d%s", c.accent, pad, a.Path(), start.Line, start.Column, c.reset)
		}
		if a.File != prev {
			fmt.Fprintf(&out, "\n%s%s |%s", c.accent, pad, c.reset)
			prev = a.File
		}

		text := a.File.Line(start.Line)
		fmt.Fprintf(&out, "\n%s%*d |%s", c.accent, barWidth, start.Line, c.reset)
		if text != "" {
			out.WriteString(" ")
			out.WriteString(source.ExpandTabs(text))
		}

		// Multi-line spans are underlined up to the end of their first line.
		startCol := start.Column - 1
		endCol := source.Width(text)
		if end := a.EndLoc(); end.Line == start.Line {
			endCol = end.Column - 1
		}
		carets := max(1, endCol-startCol)

		color, mark := c.accent, "-"
		if a.Primary {
			color, mark = c.ColorForLevel(level), "^"
		}
		fmt.Fprintf(&out, "\n%s%s |%s %s%s%s", c.accent, pad, c.reset,
			strings.Repeat(" ", startCol), color, strings.Repeat(mark, carets))
		if a.Message != "" {
			out.WriteString(" ")
			out.WriteString(a.Message)
		}
		out.WriteString(c.reset)
	}

	// Render a remedial file name for spanless errors.
	if len(d.annotations) == 0 && d.inFile != "" {
		fmt.Fprintf(&out, "\n%s%s--> %s%s", c.accent, pad, d.inFile, c.reset)
	}

	type footer struct{ color, kind, text string }
	footers := make([]footer, 0, len(d.notes)+len(d.help)+len(d.debug))
	for _, note := range d.notes {
		footers = append(footers, footer{c.BoldForLevel(Remark), "note", note})
	}
	for _, help := range d.help {
		footers = append(footers, footer{c.BoldForLevel(Remark), "help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.debug {
			footers = append(footers, footer{c.BoldForLevel(Error), "debug", debug})
		}
	}
	for _, f := range footers {
		fmt.Fprintf(&out, "\n%s%s = %s%s: %s", c.accent, pad, f.color, f.kind, c.reset)
		for i, line := range strings.Split(f.text, "\n") {
			if i > 0 {
				out.WriteString("\n")
				out.WriteString(strings.Repeat(" ", barWidth+3+len(f.kind)+2))
			}
			out.WriteString(line)
		}
	}

	out.WriteString(c.reset)
	return out.String()
}

func pluralize(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return fmt.Sprint(count, " ", what, "s")
}
