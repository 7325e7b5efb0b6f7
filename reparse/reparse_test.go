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

package reparse_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/reparse"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

const questScript = `ScriptName MyQuest Extends Quest Conditional
Import Utility

Int Property Count = 0 Auto
Float fValue = 1.5

{ Adds things up. }
Int Function Sum(Int a, Int b = 2) Global
	Int total = a + b * 2
	If total > 10 && !bDone
		total -= 1
	ElseIf total == 0
		Return -1
	Else
		Debug.Notification("x" + total as String)
	EndIf
	While total < 5
		total += 1
	EndWhile
	Return total
EndFunction

Auto State Waiting
	Event OnInit()
		Actor[] actors = new Actor[5]
		actors[0] = Game.GetPlayer()
	EndEvent
EndState
`

// shape is everything about a tree that a parse of its text determines.
type shape struct {
	Kind        syntax.Kind
	Token       token.Kind
	Text        string
	Leading     []syntax.Trivia
	Trailing    []syntax.Trivia
	Diagnostics []syntax.Diagnostic
	Missing     bool
	Children    []shape
}

func shapeOf(e syntax.Element) shape {
	s := shape{Kind: e.Kind()}
	if e.IsToken() {
		tok := e.AsToken()
		s.Token = tok.Kind()
		s.Text = tok.Text()
		s.Leading = tok.Leading()
		s.Trailing = tok.Trailing()
		s.Diagnostics = tok.Diagnostics()
		s.Missing = tok.IsMissing()
		return s
	}
	for child := range e.AsNode().Children() {
		s.Children = append(s.Children, shapeOf(child))
	}
	return s
}

// at returns the edit replacing the nth occurrence of old in text.
func at(t *testing.T, text, old string, n int, with string) reparse.Edit {
	t.Helper()
	start := 0
	for i := 0; ; i++ {
		idx := strings.Index(text[start:], old)
		require.NotEqual(t, -1, idx, "%q occurs fewer than %d times", old, n+1)
		if i == n {
			start += idx
			break
		}
		start += idx + len(old)
	}
	return reparse.Edit{Start: start, End: start + len(old), Text: with}
}

// checkReparse reparses tree with edit, and checks the result against a
// full parse of the edited text.
func checkReparse(t *testing.T, tree syntax.Tree, edit reparse.Edit) (syntax.Tree, reparse.Mode) {
	t.Helper()
	text := edit.Apply(tree.Text())

	got, mode := reparse.Reparse(tree, edit)
	want := parser.Parse(text)

	require.Equal(t, text, got.Text(), "edit %v (%v)", edit, mode)
	require.NoError(t, got.Root().Verify())
	if diff := cmp.Diff(shapeOf(want.Root().Element()), shapeOf(got.Root().Element()), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("edit %v (%v) differs from a full parse (-want +got):\n%s", edit, mode, diff)
	}
	return got, mode
}

func TestReparseModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		old  string
		n    int
		with string
		mode reparse.Mode
	}{
		{name: "rename-local", old: "total", with: "sum", mode: reparse.Token},
		{name: "integer", old: "10", with: "100", mode: reparse.Token},
		{name: "doc-comment", old: "things up", with: "numbers", mode: reparse.Token},
		{name: "string", old: `"x"`, with: `"sum: "`, mode: reparse.Token},
		{name: "integer-to-float", old: "10", with: "1.5", mode: reparse.Block},
		{name: "insert-statement", old: "\t\ttotal += 1\n", with: "\t\ttotal += 2\n\t\ttotal += 1\n", mode: reparse.Block},
		{name: "new-parameter", old: "Int b = 2)", with: "Int b = 2, Int c)", mode: reparse.Block},
		{name: "state-name", old: "Waiting", with: "Wait ing", mode: reparse.Block},
		{name: "header-flag", old: " Conditional", with: " Conditional Hidden", mode: reparse.Block},
		{name: "delete-end", old: "EndFunction", with: "", mode: reparse.Full},
		{name: "break-header", old: "ScriptName", with: "ScriptNam", mode: reparse.Full},
		{name: "same-text", old: "Quest", n: 1, with: "Quest", mode: reparse.Unchanged},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			tree := parser.Parse(questScript)
			_, mode := checkReparse(t, tree, at(t, questScript, test.old, test.n, test.with))
			assert.Equal(t, test.mode, mode)
		})
	}
}

func TestReparseAppend(t *testing.T) {
	t.Parallel()

	tree := parser.Parse(questScript)
	end := len(questScript)
	_, mode := checkReparse(t, tree, reparse.Edit{Start: end, End: end, Text: "Int z\n"})
	assert.Equal(t, reparse.Full, mode)
}

func TestReparseUnchanged(t *testing.T) {
	t.Parallel()

	tree := parser.Parse(questScript)
	for _, edit := range []reparse.Edit{
		{Start: 5, End: 5},
		{Start: 0, End: 10, Text: "ScriptName"},
		{Start: len(questScript), End: len(questScript)},
	} {
		got, mode := reparse.Reparse(tree, edit)
		assert.Equal(t, reparse.Unchanged, mode, "%v", edit)
		assert.Equal(t, tree.Root().ID(), got.Root().ID(), "%v", edit)
	}
}

func TestReparseSharing(t *testing.T) {
	t.Parallel()

	tree := parser.Parse(questScript)
	got, mode := checkReparse(t, tree, at(t, questScript, "10", 0, "100"))
	require.Equal(t, reparse.Token, mode)

	assert.Same(t, tree.Store(), got.Store())
	assert.NotEqual(t, tree.Root().ID(), got.Root().ID())

	oldDefs, newDefs := tree.Script().Definitions(), got.Script().Definitions()
	require.Equal(t, oldDefs.Len(), newDefs.Len())
	for i := range oldDefs.Len() {
		if i == 3 {
			assert.NotEqual(t, oldDefs.At(i).ID(), newDefs.At(i).ID(), "Sum")
			continue
		}
		assert.Equal(t, oldDefs.At(i).ID(), newDefs.At(i).ID(), "definition %d", i)
	}
	assert.Equal(t, tree.Script().Header().ID(), got.Script().Header().ID())

	// Within Sum, only the If statement is rebuilt.
	oldBody := oldDefs.At(3).AsFunctionDefinition().Body().Statements()
	newBody := newDefs.At(3).AsFunctionDefinition().Body().Statements()
	for i := range oldBody.Len() {
		if oldBody.At(i).Kind() == syntax.KindIfStatement {
			assert.NotEqual(t, oldBody.At(i).ID(), newBody.At(i).ID())
			continue
		}
		assert.Equal(t, oldBody.At(i).ID(), newBody.At(i).ID(), "statement %d", i)
	}

	// The old tree is untouched.
	assert.Equal(t, questScript, tree.Text())
}

func TestReparseBlockSharing(t *testing.T) {
	t.Parallel()

	tree := parser.Parse(questScript)
	got, mode := checkReparse(t, tree, at(t, questScript, "Waiting", 0, "Wait ing"))
	require.Equal(t, reparse.Block, mode)

	oldDefs, newDefs := tree.Script().Definitions(), got.Script().Definitions()
	for i := range 4 {
		assert.Equal(t, oldDefs.At(i).ID(), newDefs.At(i).ID(), "definition %d", i)
	}
	assert.NotEqual(t, oldDefs.At(4).ID(), newDefs.At(4).ID())
}

func TestReparseSweep(t *testing.T) {
	t.Parallel()

	edits := map[string]func(int) reparse.Edit{
		"delete":  func(i int) reparse.Edit { return reparse.Edit{Start: i, End: i + 1} },
		"insert":  func(i int) reparse.Edit { return reparse.Edit{Start: i, End: i, Text: "x"} },
		"newline": func(i int) reparse.Edit { return reparse.Edit{Start: i, End: i, Text: "\n"} },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tree := parser.Parse(questScript)
			for i := 0; i < len(questScript); i += 7 {
				checkReparse(t, tree, edit(i))
			}
		})
	}
}

func TestReparseRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		edit reparse.Edit
		mode reparse.Mode
	}{
		{
			// The last line was skipped inside the unclosed function.
			name: "skipped-after-block",
			text: "ScriptName Foo\nFunction EndFunction\nFunction\n",
			edit: reparse.Edit{Start: 19, End: 23, Text: "Auto"},
			mode: reparse.Full,
		},
		{
			name: "skipped-in-statement",
			text: "ScriptName Foo\nFunction F()\n\tx = 1\n\t) junk\nEndFunction\n",
			edit: reparse.Edit{Start: 33, End: 34, Text: "2"},
			mode: reparse.Token,
		},
		{
			name: "cr-before-lf",
			text: "ScriptName Foo\nImport Utility\n\nInt x\n",
			edit: reparse.Edit{Start: 28, End: 30, Text: "\r"},
			mode: reparse.Full,
		},
		{
			name: "lf-after-cr",
			text: "ScriptName Foo\nInt x\rInt y\n",
			edit: reparse.Edit{Start: 21, End: 21, Text: "\n"},
			mode: reparse.Full,
		},
		{
			name: "crlf-kept",
			text: "ScriptName Foo\r\nInt x\r\nInt y\r\n",
			edit: reparse.Edit{Start: 20, End: 21, Text: "z"},
			mode: reparse.Token,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, mode := checkReparse(t, parser.Parse(test.text), test.edit)
			assert.Equal(t, test.mode, mode)
		})
	}
}

// TestReparseCorpus checks edits at every offset of the parser corpus, which
// covers scripts that recover from errors.
func TestReparseCorpus(t *testing.T) {
	t.Parallel()

	root := filepath.Join("..", "parser", "testdata", "corpus")
	paths, err := doublestar.Glob(os.DirFS(root), "*.psc")
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	pieces := []string{"", "x", "\r", "\n", "\r\n", "EndFunction\n", ";/", "/;", "Function F()\n", ")"}
	for _, path := range paths {
		data, err := os.ReadFile(filepath.Join(root, path))
		require.NoError(t, err)
		text := string(data)

		t.Run(path, func(t *testing.T) {
			t.Parallel()

			tree := parser.Parse(text)
			step := max(1, len(text)/200)
			for i := 0; i <= len(text); i += step {
				for _, piece := range pieces {
					checkReparse(t, tree, reparse.Edit{Start: i, End: i, Text: piece})
					if i < len(text) {
						checkReparse(t, tree, reparse.Edit{Start: i, End: i + 1, Text: piece})
					}
				}
			}
		})
	}
}

func TestReparseChain(t *testing.T) {
	t.Parallel()

	// Typing a statement one byte at a time, starting a new line.
	tree := parser.Parse(questScript)
	pos := at(t, questScript, "\tReturn total\n", 0, "").Start
	for _, c := range "\tDebug.Trace(total)\n" {
		tree, _ = checkReparse(t, tree, reparse.Edit{Start: pos, End: pos, Text: string(c)})
		pos++
	}
	assert.Contains(t, tree.Text(), "\tDebug.Trace(total)\n\tReturn total\n")
}

func TestEditCheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, reparse.Edit{Start: 0, End: 3}.Check(3))
	assert.ErrorIs(t, reparse.Edit{Start: 2, End: 1}.Check(3), reparse.ErrOutOfRange)
	assert.ErrorIs(t, reparse.Edit{Start: 0, End: 4}.Check(3), reparse.ErrOutOfRange)
	assert.ErrorIs(t, reparse.Edit{Start: -1, End: 0}.Check(3), reparse.ErrOutOfRange)
	assert.Panics(t, func() {
		reparse.Reparse(parser.Parse("x"), reparse.Edit{Start: 0, End: 2})
	})

	edit := reparse.Edit{Start: 1, End: 3, Text: "xyz"}
	assert.Equal(t, 1, edit.Delta())
	assert.Equal(t, "axyzd", edit.Apply("abcd"))
}
