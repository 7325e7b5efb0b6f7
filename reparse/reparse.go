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

package reparse

import (
	"slices"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// Reparse returns the tree of tree's text with edit applied, and how it was
// built.
//
// The result is the tree [parser.Parse] would build for the new text. In
// [Token] and [Block] mode, new nodes are allocated in tree's store and
// every subtree outside the rebuilt region is shared with tree. In [Full]
// mode, the text is parsed into a new store.
//
// Panics if the edit is out of range; see [Edit.Check].
func Reparse(tree syntax.Tree, edit Edit) (syntax.Tree, Mode) {
	old := tree.Text()
	text := edit.Apply(old)
	if old[edit.Start:edit.End] == edit.Text {
		return tree, Unchanged
	}

	root := tree.Navigate().Root()
	if target, tok, ok := relex(root, edit, text); ok {
		return replace(target, tok.Element()), Token
	}
	if target, node, ok := reparseBlock(root, edit, text, len(old)); ok {
		return replace(target, node.Element()), Block
	}
	return parser.ParseInto(syntax.NewStore(), text), Full
}

// relex relexes the token the edit falls in, along with its neighbours.
//
// This succeeds when the token keeps its kind and both neighbours come out
// unchanged. Since the parser only looks at token kinds, the tree is then the
// same but for the one token.
func relex(root syntax.Red, edit Edit, text string) (syntax.Red, syntax.Token, bool) {
	mid := root.TokenAt(edit.Start)
	if mid.IsZero() {
		// Past the last byte; only the end of the file can grow here.
		mid = root.LastToken()
	}
	if mid.IsZero() || mid.Token().IsMissing() || edit.End > mid.End() ||
		hasSkipped(mid.Token()) {
		return syntax.Red{}, syntax.Token{}, false
	}

	window := []syntax.Red{mid}
	if prev := realToken(mid.PrevToken(), syntax.Red.PrevToken); !prev.IsZero() {
		window = slices.Insert(window, 0, prev)
	}
	if next := realToken(mid.NextToken(), syntax.Red.NextToken); !next.IsZero() {
		window = append(window, next)
	}
	first, last := window[0], window[len(window)-1]

	before := realToken(first.PrevToken(), syntax.Red.PrevToken)
	atLineStart := before.IsZero() || before.Token().Kind() == token.Newline

	lexemes := parser.Lex(text[first.Start():last.End()+edit.Delta()], atLineStart)
	want := len(window)
	if last.Token().Kind() != token.EndOfFile {
		// The window is followed by an empty end of file.
		want++
		if len(lexemes) != want || lexemes[want-1].Width() != 0 {
			return syntax.Red{}, syntax.Token{}, false
		}
	} else if len(lexemes) != want {
		return syntax.Red{}, syntax.Token{}, false
	}

	var relexed syntax.Token
	for i, r := range window {
		lx, old := lexemes[i], r.Token()
		switch {
		case r != mid && !lx.Matches(old):
			return syntax.Red{}, syntax.Token{}, false
		case r == mid && lx.Kind != old.Kind():
			return syntax.Red{}, syntax.Token{}, false
		case r == mid:
			relexed = lx.NewToken(root.Navigator().Store())
		}
	}
	return mid, relexed, true
}

// reparseBlock reparses the smallest header, definition or statement around
// the edit that can be parsed on its own.
func reparseBlock(root syntax.Red, edit Edit, text string, oldLen int) (syntax.Red, syntax.Node, bool) {
	store := root.Navigator().Store()
	for cand := root.Enclosing(edit.Start, edit.End); !cand.IsZero(); cand = cand.Parent() {
		kind := cand.Kind()
		if !reparsable(kind) || !startsLine(cand) || !joinsCleanly(cand, edit, text) {
			continue
		}

		region := text[cand.Start() : cand.End()+edit.Delta()]
		var f parser.Fragment
		switch {
		case kind == syntax.KindScriptHeader:
			f = parser.ParseHeader(store, region)
		case kind.IsDefinition():
			f = parser.ParseDefinition(store, region, parser.OuterTerminators(cand))
		default:
			f = parser.ParseStatement(store, region, parser.OuterTerminators(cand))
		}

		// Whatever follows must be lexed and parsed as it was before, which
		// holds after a newline, or when nothing follows. Lines skipped
		// after cand may have been skipped in its context, so they must be
		// parsed again from an ancestor.
		if f.Complete && (endsLine(f.Node) || cand.End() == oldLen) && !skippedAfter(cand) {
			return cand, f.Node, true
		}
	}
	return syntax.Red{}, syntax.Node{}, false
}

// replace rebuilds the ancestors of target with target replaced by with, and
// returns the tree of the new root.
func replace(target syntax.Red, with syntax.Element) syntax.Tree {
	store := with.Store()
	for parent := target.Parent(); !parent.IsZero(); parent = parent.Parent() {
		children := slices.Collect(parent.Node().Children())
		children[target.Index()] = with
		with = store.NewNode(parent.Kind(), children...).Element()
		target = parent
	}
	return syntax.NewTree(with.AsNode().AsScript())
}

func reparsable(kind syntax.Kind) bool {
	return kind == syntax.KindScriptHeader || kind.IsDefinition() || kind.IsStatement()
}

// startsLine returns whether r starts where a line of code may start, so
// that lexing from it gives the same tokens as lexing the whole file.
func startsLine(r syntax.Red) bool {
	prev := r.PrevToken()
	if r.Kind() == syntax.KindScriptHeader {
		return prev.IsZero()
	}
	return !prev.IsZero() && isNewline(prev.Token())
}

// joinsCleanly returns whether the new text of r lexes on its own as it does
// in place: a carriage return on one side of either boundary must not pair
// up with a line feed on the other side into one newline.
func joinsCleanly(r syntax.Red, edit Edit, text string) bool {
	start, end := r.Start(), r.End()+edit.Delta()
	crlf := func(at int) bool {
		return at > 0 && at < len(text) && text[at-1] == '\r' && text[at] == '\n'
	}
	return !crlf(start) && !crlf(end)
}

// skippedAfter returns whether the first real token after r carries skipped
// lines.
func skippedAfter(r syntax.Red) bool {
	next := realToken(r.NextToken(), syntax.Red.NextToken)
	return !next.IsZero() && hasSkipped(next.Token())
}

// endsLine returns whether the last token of n is a real newline.
func endsLine(n syntax.Node) bool {
	var last syntax.Token
	for tok := range n.Tokens() {
		last = tok
	}
	return !last.IsZero() && isNewline(last)
}

func isNewline(tok syntax.Token) bool {
	return tok.Kind() == token.Newline && !tok.IsMissing()
}

// realToken steps from r until it finds a token that is not missing.
func realToken(r syntax.Red, step func(syntax.Red) syntax.Red) syntax.Red {
	for !r.IsZero() && r.Token().IsMissing() {
		r = step(r)
	}
	return r
}

func hasSkipped(tok syntax.Token) bool {
	return slices.ContainsFunc(tok.Leading(), func(t syntax.Trivia) bool {
		return t.Kind == token.Skipped
	})
}
