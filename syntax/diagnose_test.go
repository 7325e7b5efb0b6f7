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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
)

func TestDiagnose(t *testing.T) {
	t.Parallel()

	text := "ScriptName Foo\nFunction Bar(\n"
	tree := parser.Parse(text)
	file := source.NewFile("Foo.psc", text)

	var r report.Report
	syntax.Diagnose(tree, file, &r)
	require.Len(t, r.Diagnostics, 2)

	paren, end := r.Diagnostics[0], r.Diagnostics[1]
	assert.Equal(t, syntax.TagMissing, paren.Tag())
	assert.Contains(t, paren.Message(), "expected `)`")
	assert.Equal(t, 28, paren.Primary().Start)
	assert.Equal(t, 28, paren.Primary().End)
	assert.Equal(t, "Foo.psc", paren.Path())

	assert.Equal(t, syntax.TagMissing, end.Tag())
	assert.Contains(t, end.Message(), "expected `EndFunction`")
	assert.Equal(t, len(text), end.Primary().Start)
	assert.True(t, r.HasErrors())
}

func TestDiagnoseOffsets(t *testing.T) {
	t.Parallel()

	// A diagnostic inside a token is offset by the token's position.
	text := "ScriptName Foo\nString s = \"a\\qb\"\n"
	tree := parser.Parse(text)
	file := source.NewFile("Foo.psc", text)

	var r report.Report
	syntax.Diagnose(tree, file, &r)
	require.Len(t, r.Diagnostics, 1)
	d := r.Diagnostics[0]
	assert.Equal(t, syntax.TagBadEscape, d.Tag())
	assert.Equal(t, `\q`, d.Primary().Text())
}

func TestDiagnoseValid(t *testing.T) {
	t.Parallel()

	var r report.Report
	syntax.Diagnose(parser.Parse(everyKind), source.NewFile("Everything.psc", everyKind), &r)
	assert.Zero(t, r.Len())
}

func TestDiagnoseWithoutFile(t *testing.T) {
	t.Parallel()

	var r report.Report
	syntax.Diagnose(parser.Parse("Function Bar("), nil, &r)
	require.NotZero(t, r.Len())
	for _, d := range r.Diagnostics {
		assert.True(t, d.Primary().IsZero())
	}
}
