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

package outline_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/outline"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
)

const questScript = `ScriptName MyQuest Extends Quest Conditional
Import Utility

Int Property Count = 0 Auto
Float fValue = 1.5 ; tuning

{ Adds things up. }
Int Function Sum(Int a, Int b = 2) Global
	Return a + b
EndFunction

Auto State Waiting
	Event OnInit()
	EndEvent
EndState

ObjectReference Property Target Hidden
	ObjectReference Function Get()
		Return None
	EndFunction
EndProperty
`

func TestSymbols(t *testing.T) {
	t.Parallel()

	got := outline.Symbols(parser.Parse(questScript))
	want := outline.Symbol{
		Name: "MyQuest", Kind: outline.Script, Detail: "ScriptName MyQuest Extends Quest Conditional",
		Children: []outline.Symbol{
			{Name: "Utility", Kind: outline.Import, Detail: "Import Utility"},
			{Name: "Count", Kind: outline.Property, Detail: "Int Property Count = 0 Auto"},
			{Name: "fValue", Kind: outline.Variable, Detail: "Float fValue = 1.5"},
			{Name: "Sum", Kind: outline.Function, Detail: "Int Function Sum(Int a, Int b = 2) Global"},
			{Name: "Waiting", Kind: outline.State, Detail: "Auto State Waiting", Children: []outline.Symbol{
				{Name: "OnInit", Kind: outline.Event, Detail: "Event OnInit()"},
			}},
			{Name: "Target", Kind: outline.Property, Detail: "ObjectReference Property Target Hidden", Children: []outline.Symbol{
				{Name: "Get", Kind: outline.Function, Detail: "ObjectReference Function Get()"},
			}},
		},
	}

	ignoreRanges := cmpopts.IgnoreFields(outline.Symbol{}, "Start", "End", "NameStart", "NameEnd")
	if diff := cmp.Diff(want, got, ignoreRanges); diff != "" {
		t.Errorf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestSymbolRanges(t *testing.T) {
	t.Parallel()

	script := outline.Symbols(parser.Parse(questScript))
	assert.Equal(t, 0, script.Start)
	assert.Equal(t, len(questScript), script.End)

	require.Len(t, script.Children, 6)
	sum := script.Children[3]
	assert.Equal(t, "Int Function Sum", questScript[sum.Start:sum.Start+16])
	assert.Equal(t, "EndFunction", questScript[sum.End-len("EndFunction\n"):sum.End-1])
	assert.Equal(t, "Sum", questScript[sum.NameStart:sum.NameEnd])

	// The doc comment is trivia, outside of the range.
	assert.Greater(t, sum.Start, strings.Index(questScript, "{ Adds"))

	fValue := script.Children[2]
	assert.Equal(t, "Float fValue = 1.5 ; tuning\n", questScript[fValue.Start:fValue.End])
}

func TestEnclosing(t *testing.T) {
	t.Parallel()

	script := outline.Symbols(parser.Parse(questScript))
	offset := strings.Index(questScript, "EndEvent")

	var names []string
	for _, sym := range script.Enclosing(offset) {
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"MyQuest", "Waiting", "OnInit"}, names)
	assert.Nil(t, script.Enclosing(len(questScript)+5))
}

func TestSymbolsBroken(t *testing.T) {
	t.Parallel()

	script := outline.Symbols(parser.Parse("Function (\nEndFunction\nState\n"))
	assert.Equal(t, "", script.Name)
	require.Len(t, script.Children, 2)
	assert.Equal(t, outline.Function, script.Children[0].Kind)
	assert.Equal(t, "", script.Children[0].Name)
	assert.Equal(t, script.Children[0].NameStart, script.Children[0].NameEnd)
	assert.Equal(t, outline.State, script.Children[1].Kind)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "function", outline.Function.String())
	assert.Equal(t, "outline.Event", outline.Event.GoString())
}
