// Copyright 2025 The Papyrus Authors
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

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// The units columns are reported in. Underlines are always measured in
	// terminal columns.
	Units source.Unit
}

// Render renders a diagnostic report to out.
//
// Returns the number of errors and warnings rendered. The error return is
// only for failures writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for _, d := range report.Diagnostics {
		if !r.ShowRemarks && d.level == Remark {
			continue
		}

		switch d.level {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}

		text := r.Diagnostic(d)
		if !r.Compact {
			text += "\n"
		}
		if _, err = fmt.Fprintln(out, text); err != nil {
			return errorCount, warningCount, err
		}
	}

	if r.Compact || errorCount+warningCount == 0 {
		return errorCount, warningCount, nil
	}

	c := newStyleSheet(r)
	var summary string
	switch {
	case errorCount > 0 && warningCount > 0:
		summary = c.bError + "encountered " + plural(errorCount, "error") + " and " + plural(warningCount, "warning")
	case errorCount > 0:
		summary = c.bError + "encountered " + plural(errorCount, "error")
	default:
		summary = c.bWarning + "encountered " + plural(warningCount, "warning")
	}
	_, err = fmt.Fprintln(out, summary+c.reset)
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string, without a trailing
// newline.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	c := newStyleSheet(r)
	var out strings.Builder

	primary := d.Primary()
	if r.Compact {
		if !primary.IsZero() {
			loc := primary.StartLoc(r.Units)
			fmt.Fprintf(&out, "%s:%d:%d: ", primary.Path(), loc.Line, loc.Column)
		} else if d.inFile != "" {
			fmt.Fprintf(&out, "%s: ", d.inFile)
		}
		fmt.Fprintf(&out, "%s%s:%s %s", c.bold(d.level), d.level, c.reset, d.message)
		if d.tag != "" {
			fmt.Fprintf(&out, " [%s]", d.tag)
		}
		return out.String()
	}

	fmt.Fprintf(&out, "%s%s", c.bold(d.level), d.level)
	if d.tag != "" {
		fmt.Fprintf(&out, "[%s]", d.tag)
	}
	fmt.Fprintf(&out, ": %s%s", d.message, c.reset)

	// The gutter is as wide as the largest line number we show.
	gutter := 0
	for _, a := range d.annotations {
		gutter = max(gutter, len(strconv.Itoa(a.EndLoc(r.Units).Line)))
	}
	margin := strings.Repeat(" ", gutter)

	switch {
	case !primary.IsZero():
		loc := primary.StartLoc(r.Units)
		fmt.Fprintf(&out, "\n%s%s--> %s%s:%d:%d", margin, c.nAccent, c.reset, primary.Path(), loc.Line, loc.Column)
	case d.inFile != "":
		fmt.Fprintf(&out, "\n%s--> %s%s", c.nAccent, c.reset, d.inFile)
	}

	for _, a := range d.annotations {
		if a.File != primary.File {
			loc := a.StartLoc(r.Units)
			fmt.Fprintf(&out, "\n%s%s::: %s%s:%d:%d", margin, c.nAccent, c.reset, a.Path(), loc.Line, loc.Column)
		}
		fmt.Fprintf(&out, "\n%s %s|%s", margin, c.nAccent, c.reset)
		r.snippet(&out, c, d.level, a, gutter)
	}

	if len(d.annotations) > 0 && len(d.notes)+len(d.help) > 0 {
		fmt.Fprintf(&out, "\n%s %s|%s", margin, c.nAccent, c.reset)
	}
	for _, n := range d.notes {
		fmt.Fprintf(&out, "\n%s %s= note:%s %s", margin, c.bAccent, c.reset, n)
	}
	for _, h := range d.help {
		fmt.Fprintf(&out, "\n%s %s= help:%s %s", margin, c.bAccent, c.reset, h)
	}
	return out.String()
}

// snippet renders the first line of an annotation with an underline below
// it. Multi-line spans are underlined to the end of their first line.
func (r Renderer) snippet(out *strings.Builder, c styleSheet, level Level, a Annotation, gutter int) {
	start := a.StartLoc(source.Bytes)
	lineStart, lineEnd := a.LineOffsets(start.Line)
	line := strings.TrimRight(a.File.Text()[lineStart:lineEnd], "\r\n")

	from := min(a.Start-lineStart, len(line))
	to := max(min(a.End-lineStart, len(line)), from)
	prefix, underlined := line[:from], line[from:to]

	col := source.Measure(prefix, 0, source.TermWidth)
	width := max(1, source.Measure(underlined, col, source.TermWidth))

	color, mark := c.color(level), "^"
	if !a.Primary {
		color, mark = c.nAccent, "-"
	}

	fmt.Fprintf(out, "\n%s%*d |%s %s", c.nAccent, gutter, start.Line, c.reset, expandTabs(line))
	fmt.Fprintf(out, "\n%s%s |%s %s%s%s",
		c.nAccent, strings.Repeat(" ", gutter), c.reset,
		strings.Repeat(" ", col), color, strings.Repeat(mark, width))
	if a.Message != "" {
		fmt.Fprintf(out, " %s", a.Message)
	}
	out.WriteString(c.reset)
}

// expandTabs replaces tabs with spaces up to the next tabstop, so that the
// underline lines up with the text.
func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var out strings.Builder
	col := 0
	for _, chunk := range strings.SplitAfter(line, "\t") {
		text, tab := strings.CutSuffix(chunk, "\t")
		out.WriteString(text)
		col += source.Measure(text, col, source.TermWidth)
		if tab {
			n := source.TabstopWidth - col%source.TabstopWidth
			out.WriteString(strings.Repeat(" ", n))
			col += n
		}
	}
	return out.String()
}

func plural(count int, what string) string {
	if count == 1 {
		return "1 " + what
	}
	return strconv.Itoa(count) + " " + what + "s"
}
