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

package dump_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/dump"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
)

type m = map[string]any

func header(name any) m {
	return m{"kind": "ScriptHeader", "children": []any{
		m{"token": "ScriptName", "text": "ScriptName"},
		m{"kind": "Identifier", "children": []any{name}},
		m{"kind": "Empty"},
		m{"kind": "FlagList"},
		m{"token": "Newline", "text": "\n"},
	}}
}

func TestYAML(t *testing.T) {
	t.Parallel()

	out, err := dump.YAML(parser.Parse("ScriptName Foo\n"), dump.Options{})
	require.NoError(t, err)

	var got any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	want := m{"kind": "Script", "children": []any{
		header(m{"token": "Identifier", "text": "Foo"}),
		m{"kind": "DefinitionList"},
		m{"token": "EndOfFile", "text": ""},
	}}
	if diff := cmp.Diff(any(want), got); diff != "" {
		t.Errorf("YAML dump mismatch (-want +got):\n%s\n%s", diff, out)
	}

	// Tokens are written one per line.
	assert.Contains(t, out, "{token: Identifier, text: Foo}")
}

func TestYAMLOptions(t *testing.T) {
	t.Parallel()

	out, err := dump.YAML(parser.Parse("ScriptName Foo ; comment\n"), dump.Options{
		Trivia:    true,
		Spans:     true,
		SkipEmpty: true,
	})
	require.NoError(t, err)

	var got any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	header := got.(m)["children"].([]any)[0].(m)
	assert.Equal(t, []any{0, 25}, header["span"])

	children := header["children"].([]any)
	require.Len(t, children, 4) // No Empty for the absent Extends.
	assert.Equal(t, m{
		"token":    "ScriptName",
		"text":     "ScriptName",
		"trailing": []any{m{"Whitespace": " "}},
		"span":     []any{0, 11},
	}, children[0])
	assert.Equal(t, m{
		"kind": "Identifier",
		"span": []any{11, 24},
		"children": []any{m{
			"token": "Identifier",
			"text":  "Foo",
			"trailing": []any{
				m{"Whitespace": " "},
				m{"LineComment": "; comment"},
			},
			"span": []any{11, 24},
		}},
	}, children[1])
}

func TestYAMLErrors(t *testing.T) {
	t.Parallel()

	out, err := dump.YAML(parser.Parse("Function Foo("), dump.Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "missing: true")
	assert.Contains(t, out, "expected `)`")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	tree := parser.Parse("ScriptName Foo\n")
	out, err := dump.JSON(tree, dump.Options{})
	require.NoError(t, err)

	var got any
	require.NoError(t, json.Unmarshal(out, &got))
	want := m{"kind": "Script", "children": []any{
		header(m{"token": "Identifier", "text": "Foo"}),
		m{"kind": "DefinitionList"},
		m{"token": "EndOfFile", "text": ""},
	}}
	if diff := cmp.Diff(any(want), got); diff != "" {
		t.Errorf("JSON dump mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSpans(t *testing.T) {
	t.Parallel()

	text := "ScriptName Foo\nInt x\n"
	out, err := dump.JSON(parser.Parse(text), dump.Options{Spans: true})
	require.NoError(t, err)

	var got m
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, []any{0.0, float64(len(text))}, got["span"])

	// The JSON and YAML dumps agree.
	yamlOut, err := dump.YAML(parser.Parse(text), dump.Options{Spans: true})
	require.NoError(t, err)
	var fromYAML any
	require.NoError(t, yaml.Unmarshal([]byte(yamlOut), &fromYAML))
	fromJSON, err := json.Marshal(fromYAML)
	require.NoError(t, err)
	var roundTrip m
	require.NoError(t, json.NewDecoder(strings.NewReader(string(fromJSON))).Decode(&roundTrip))
	assert.Empty(t, cmp.Diff(got, roundTrip))
}
