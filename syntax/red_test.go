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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

func TestRedPositions(t *testing.T) {
	t.Parallel()

	tree := parser.Parse(everyKind)
	root := tree.Navigate().Root()
	assert.Equal(t, 0, root.Start())
	assert.Equal(t, len(everyKind), root.End())
	assert.True(t, root.Parent().IsZero())
	assert.Equal(t, -1, root.Index())

	var check func(r syntax.Red)
	check = func(r syntax.Red) {
		pos := r.Start()
		for i := range r.NumChildren() {
			child := r.Child(i)
			assert.Equal(t, pos, child.Start(), "%v", child)
			assert.True(t, child.Parent() == r, "%v", child)
			assert.Equal(t, i, child.Index())
			assert.Equal(t, r.Node().Child(i).ID(), child.Green().ID())
			assert.Equal(t, everyKind[child.Start():child.End()], child.Text())
			pos += child.Width()
			check(child)
		}
		if !r.IsToken() {
			assert.Equal(t, r.End(), pos, "%v", r)
		}
	}
	check(root)
}

func TestRedMemoized(t *testing.T) {
	t.Parallel()

	nav := parser.Parse(everyKind).Navigate()
	root := nav.Root()
	assert.Equal(t, 1, nav.Len())
	assert.True(t, root == nav.Root())

	defs := root.Child(syntax.ScriptSlotDefinitions)
	first := defs.Child(3)
	n := nav.Len()
	assert.True(t, first == defs.Child(3))
	assert.Equal(t, n, nav.Len())

	// A second navigator projects its own reds.
	other := parser.Parse(everyKind).Navigate()
	assert.False(t, other.Root() == root)
}

func TestRedSiblings(t *testing.T) {
	t.Parallel()

	root := parser.Parse(everyKind).Navigate().Root()
	defs := root.Child(syntax.ScriptSlotDefinitions)
	require.Equal(t, 6, defs.NumChildren())

	var kinds []syntax.Kind
	for def := range defs.Children() {
		kinds = append(kinds, def.Kind())
	}
	assert.Equal(t, []syntax.Kind{
		syntax.KindImportStatement,
		syntax.KindPropertyDefinition,
		syntax.KindVariableDefinition,
		syntax.KindFunctionDefinition,
		syntax.KindStateDefinition,
		syntax.KindPropertyDefinition,
	}, kinds)

	for i := range defs.NumChildren() - 1 {
		assert.True(t, defs.Child(i).NextSibling() == defs.Child(i+1))
		assert.True(t, defs.Child(i+1).PrevSibling() == defs.Child(i))
	}
	assert.True(t, defs.Child(0).PrevSibling().IsZero())
	assert.True(t, defs.Child(5).NextSibling().IsZero())
	assert.True(t, root.NextSibling().IsZero())
}

func TestRedTokens(t *testing.T) {
	t.Parallel()

	root := parser.Parse(everyKind).Navigate().Root()

	var tokens []syntax.Red
	for tok := range root.Tokens() {
		require.True(t, tok.IsToken())
		tokens = append(tokens, tok)
	}
	require.NotEmpty(t, tokens)
	assert.True(t, root.FirstToken() == tokens[0])
	assert.True(t, root.LastToken() == tokens[len(tokens)-1])
	assert.Equal(t, token.EndOfFile, root.LastToken().Token().Kind())
	assert.True(t, tokens[0].PrevToken().IsZero())
	assert.True(t, tokens[len(tokens)-1].NextToken().IsZero())

	for i := range len(tokens) - 1 {
		assert.True(t, tokens[i].NextToken() == tokens[i+1], "after %v", tokens[i])
		assert.True(t, tokens[i+1].PrevToken() == tokens[i], "before %v", tokens[i+1])
	}

	for offset := range len(everyKind) {
		tok := root.TokenAt(offset)
		require.False(t, tok.IsZero(), "offset %d", offset)
		assert.True(t, tok.IsToken())
		assert.LessOrEqual(t, tok.Start(), offset)
		assert.Less(t, offset, tok.End())
	}
	assert.True(t, root.TokenAt(len(everyKind)).IsZero())
	assert.True(t, root.TokenAt(-1).IsZero())
}

func TestRedEnclosing(t *testing.T) {
	t.Parallel()

	root := parser.Parse(everyKind).Navigate().Root()

	name := strings.Index(everyKind, "Sum(")
	tok := root.Enclosing(name, name+3)
	require.True(t, tok.IsToken())
	assert.Equal(t, "Sum", tok.Token().Text())
	assert.Equal(t, syntax.KindIdentifier, tok.Parent().Kind())

	header := tok.Parent().Parent()
	assert.Equal(t, syntax.KindFunctionHeader, header.Kind())
	slot := header.Slot(syntax.FunctionHeaderSlotName)
	assert.True(t, slot == tok.Parent())
	assert.Equal(t, "Sum", slot.Green().AsNode().AsIdentifier().Name().Text())

	start := strings.Index(everyKind, "{ Adds")
	end := strings.Index(everyKind, "EndFunction\n") + len("EndFunction\n")
	def := root.Enclosing(start, end)
	assert.Equal(t, syntax.KindFunctionDefinition, def.Kind())
	assert.Equal(t, 3, def.Index())

	// An empty range is enclosed by the token it falls in.
	at := root.Enclosing(name, name)
	assert.True(t, at == tok)

	assert.True(t, root.Enclosing(0, len(everyKind)) == root)
	assert.True(t, root.Enclosing(0, len(everyKind)+1).IsZero())

	var depth int
	for range tok.Ancestors() {
		depth++
	}
	assert.Equal(t, 5, depth) // Identifier, FunctionHeader, FunctionDefinition, DefinitionList, Script.
}

func TestCreateRed(t *testing.T) {
	t.Parallel()

	nav := parser.Parse(everyKind).Navigate()
	root := nav.Root()
	defs := root.Child(syntax.ScriptSlotDefinitions)
	want := defs.Child(3)

	green := defs.Node().Child(3)
	got := syntax.CreateRed(nav, green, defs, want.Start())
	assert.True(t, got == want)
	start, width := got.Span()
	assert.Equal(t, want.Start(), start)
	assert.Equal(t, green.Width(), width)
	assert.True(t, got.Parent() == defs)

	detached := syntax.CreateRed(nav, green, syntax.Red{}, 10)
	assert.True(t, detached.Parent().IsZero())
	assert.Equal(t, 10, detached.Start())
	assert.Equal(t, green.Text(), detached.Text())

	// A root is cached per position.
	moved := syntax.CreateRed(nav, root.Green(), syntax.Red{}, 10)
	assert.Equal(t, 10, moved.Start())
	assert.Equal(t, 10, moved.Child(0).Start())
	assert.Equal(t, 0, nav.Root().Start())
	assert.True(t, syntax.CreateRed(nav, root.Green(), syntax.Red{}, 0) == nav.Root())

	// A child is only found at its own position, which stays put.
	assert.Panics(t, func() { syntax.CreateRed(nav, green, defs, 999) }, "wrong position")
	assert.Equal(t, want.Start(), defs.Child(3).Start())
	assert.True(t, defs.Child(3) == want)

	assert.True(t, syntax.CreateRed(nav, syntax.Element{}, defs, 0).IsZero())
	assert.Panics(t, func() { syntax.CreateRed(nav, root.Green(), defs, 0) }, "not a child")

	other := parser.Parse(everyKind).Navigate()
	assert.Panics(t, func() { syntax.CreateRed(other, green, defs, 0) }, "foreign parent")
}

func TestRedZero(t *testing.T) {
	t.Parallel()

	var r syntax.Red
	assert.True(t, r.IsZero())
	assert.True(t, r.Parent().IsZero())
	assert.True(t, r.Green().IsZero())
	assert.Equal(t, -1, r.Index())
	assert.Equal(t, "<nil>", r.String())
	assert.True(t, syntax.NewNavigator(syntax.Element{}).Root().IsZero())
}
