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

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
)

func TestRender(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.psc", "Function Foo(\n")
	r := new(report.Report)
	r.Errorf("expected `)`").With(
		report.Tag("syntax-missing"),
		report.Snippet(file.Span(13, 13), "expected here"),
	)

	text, errs, warns := report.Renderer{}.RenderString(r)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 0, warns)
	assert.Equal(t, strings.Join([]string{
		"error[syntax-missing]: expected `)`",
		" --> test.psc:1:14",
		"  |",
		"1 | Function Foo(",
		"  |" + strings.Repeat(" ", 14) + "^ expected here",
		"",
		"encountered 1 error",
		"",
	}, "\n"), text)

	text, _, _ = report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, "test.psc:1:14: error: expected `)` [syntax-missing]\n", text)
	assert.Equal(t, strings.TrimSuffix(text, "\n"), r.Diagnostics[0].String())
}

func TestRenderTabs(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.psc", "\tx = 1 +\n")
	r := new(report.Report)
	r.Warnf("dangling operator").With(report.Snippet(file.Span(7, 8)))

	text, _, warns := report.Renderer{Compact: true}.RenderString(r)
	assert.Equal(t, 1, warns)
	assert.Equal(t, "test.psc:1:8: warning: dangling operator\n", text)

	text, _, _ = report.Renderer{Units: source.TermWidth}.RenderString(r)
	assert.Contains(t, text, "1 |     x = 1 +\n")
	assert.Contains(t, text, "  |           ^\n")
}

func TestReport(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.psc", "Int x = \nx = )\n")
	r := new(report.Report)
	r.Errorf("unexpected `)`").With(report.Tag("syntax-unexpected"), report.Snippet(file.Span(13, 14)))
	r.Remarkf("just saying").With(report.InFile("test.psc"))
	r.Errorf("expected expression").With(report.Tag("syntax-missing"), report.Snippet(file.Span(8, 8)))

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, r.Count(report.Error))
	assert.True(t, r.HasErrors())

	r.Sort()
	assert.Equal(t, []report.Tag{"", "syntax-missing", "syntax-unexpected"}, r.Tags())
	assert.Equal(t, "test.psc", r.Diagnostics[0].Path())
	assert.True(t, r.Diagnostics[1].Is("syntax-missing"))

	idx := r.Index()
	assert.Equal(t, 2, idx.Len())
	require.Len(t, idx.At(8), 1)
	assert.Equal(t, "expected expression", idx.At(8)[0].Message())
	assert.Len(t, idx.At(13), 1)
	assert.Empty(t, idx.At(14))

	text, _, _ := report.Renderer{}.RenderString(r)
	assert.NotContains(t, text, "just saying")
	text, _, _ = report.Renderer{ShowRemarks: true, Compact: true}.RenderString(r)
	assert.Contains(t, text, "test.psc: remark: just saying\n")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	file := source.NewFile("test.psc", "EndFunction\n")
	d := new(report.Report).Errorf("stray terminator").With(
		report.Snippet(file.Span(0, 11)),
		report.Snippet(source.Span{}),
		report.Note("no function is open"),
		report.Help("remove it"),
	)
	assert.Len(t, d.Annotations(), 1)
	assert.True(t, d.Annotations()[0].Primary)
	assert.Equal(t, []string{"no function is open"}, d.Notes())
	assert.Equal(t, []string{"remove it"}, d.Help())

	assert.Panics(t, func() { d.With(report.Message("again")) })
	assert.Panics(t, func() { d.With(report.Tag("a"), report.Tag("b")) })

	text := report.Renderer{}.Diagnostic(d)
	assert.Contains(t, text, "  = note: no function is open")
	assert.Contains(t, text, "  = help: remove it")
}
