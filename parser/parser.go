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

package parser

import (
	"fmt"
	"slices"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// parser is a Papyrus parser.
type parser struct {
	store *syntax.Store
	nodes syntax.Nodes

	lexemes []Lexeme
	pos     int

	// Lexemes skipped since the last token was taken. They become trivia of
	// the next token taken.
	pending []Lexeme

	// The terminators of every list being parsed, innermost last.
	frames [][]token.Kind
	// Set when a list stopped at a terminator of an enclosing list.
	stoppedAtOuter bool
}

func newParser(store *syntax.Store, text string) *parser {
	return &parser{
		store:   store,
		nodes:   store.Nodes(),
		lexemes: Lex(text, true),
	}
}

// peek returns the kind of the next lexeme.
func (p *parser) peek() token.Kind {
	return p.lexemes[p.pos].Kind
}

// peekN returns the kind of the nth lexeme after the next one.
func (p *parser) peekN(n int) token.Kind {
	return p.lexemes[min(p.pos+n, len(p.lexemes)-1)].Kind
}

// done returns whether the parser is at the end of its input with nothing
// left over: no skipped lexemes, and no trivia before the end.
func (p *parser) done() bool {
	return p.peek() == token.EndOfFile &&
		len(p.pending) == 0 &&
		p.lexemes[p.pos].Width() == 0
}

// take allocates the next lexeme as a token and advances past it.
//
// Pending skipped lexemes become leading trivia of the token, along with an
// unexpected-token diagnostic covering them.
func (p *parser) take() syntax.Token {
	lx := p.lexemes[p.pos]
	if lx.Kind != token.EndOfFile {
		p.pos++
	}
	if len(p.pending) == 0 {
		return lx.NewToken(p.store)
	}

	var (
		leading     []syntax.Trivia
		diagnostics []syntax.Diagnostic
		width       int
		first, last = -1, 0
		unexpected  token.Kind
	)
	for _, s := range p.pending {
		for _, d := range s.Diagnostics {
			d.Start += width
			d.End += width
			diagnostics = append(diagnostics, d)
		}

		leading = append(leading, s.Leading...)
		width += triviaWidth(s.Leading)
		if s.Kind != token.Unknown {
			if first == -1 {
				first = width
				unexpected = s.Kind
			}
			last = width + len(s.Text)
		}
		leading = append(leading, syntax.Trivia{Kind: token.Skipped, Text: s.Text})
		leading = append(leading, s.Trailing...)
		width += len(s.Text) + triviaWidth(s.Trailing)
	}
	p.pending = nil

	if first != -1 {
		diagnostics = slices.Insert(diagnostics, 0, syntax.Diagnostic{
			Tag:     syntax.TagUnexpected,
			Message: fmt.Sprintf("unexpected %s", unexpected.Describe()),
			Start:   first,
			End:     last,
		})
	}
	for _, d := range lx.Diagnostics {
		d.Start += width
		d.End += width
		diagnostics = append(diagnostics, d)
	}
	leading = append(leading, lx.Leading...)

	return p.store.NewToken(lx.Kind, leading, lx.Text, lx.Trailing, diagnostics...)
}

// skip moves the next lexeme into the pending skipped lexemes.
func (p *parser) skip() {
	p.pending = append(p.pending, p.lexemes[p.pos])
	p.pos++
}

// skipLine skips lexemes through the next newline.
func (p *parser) skipLine() {
	for {
		switch p.peek() {
		case token.EndOfFile:
			return
		case token.Newline:
			p.skip()
			return
		}
		p.skip()
	}
}

// missing returns a missing token with a diagnostic saying what was expected
// instead of the next lexeme.
func (p *parser) missing(kind token.Kind, what string) syntax.Token {
	return p.store.NewMissingToken(kind, syntax.Diagnostic{
		Tag:     syntax.TagMissing,
		Message: fmt.Sprintf("expected %s, found %s", what, p.peek().Describe()),
	})
}

// elided returns a missing token without a diagnostic.
func (p *parser) elided(kind token.Kind) syntax.Token {
	return p.store.NewMissingToken(kind)
}

// expect takes the next lexeme if it has the given kind, and otherwise
// returns a missing token.
func (p *parser) expect(kind token.Kind) syntax.Token {
	if p.peek() == kind {
		return p.take()
	}
	return p.missing(kind, kind.Describe())
}

// expectNewline takes the newline that ends the current line, skipping
// anything before it. At the end of the input, the newline is elided.
func (p *parser) expectNewline() syntax.Token {
	for {
		switch p.peek() {
		case token.Newline:
			return p.take()
		case token.EndOfFile:
			return p.elided(token.Newline)
		}
		p.skip()
	}
}

// endNewline is like expectNewline for the newline after a block terminator,
// which is elided if the terminator is missing.
func (p *parser) endNewline(end syntax.Token) syntax.Token {
	if end.IsMissing() {
		return p.elided(token.Newline)
	}
	return p.expectNewline()
}

// push enters a list that ends at the given terminators.
func (p *parser) push(terminators []token.Kind) {
	p.frames = append(p.frames, terminators)
}

// pop leaves the innermost list.
func (p *parser) pop() {
	p.frames = p.frames[:len(p.frames)-1]
}

// stops returns whether kind ends the innermost list, because it terminates
// it or any list enclosing it.
func (p *parser) stops(kind token.Kind) bool {
	for i := len(p.frames) - 1; i >= 0; i-- {
		if slices.Contains(p.frames[i], kind) {
			if i != len(p.frames)-1 {
				p.stoppedAtOuter = true
			}
			return true
		}
	}
	return false
}

// more returns whether the innermost list has another item, skipping lines
// that cannot start one.
func (p *parser) more(starts func(*parser) bool) bool {
	for {
		kind := p.peek()
		if kind == token.EndOfFile || p.stops(kind) {
			return false
		}
		if starts(p) {
			return true
		}
		p.skipLine()
	}
}

// name parses an identifier naming something, or returns one holding a
// missing token.
func (p *parser) name(what string) syntax.Identifier {
	var name syntax.Token
	if p.peek() == token.Identifier {
		name = p.take()
	} else {
		name = p.missing(token.Identifier, what)
	}
	return p.nodes.NewIdentifier(syntax.IdentifierArgs{Name: name})
}

// flags parses a possibly empty run of flag keywords.
func (p *parser) flags() syntax.FlagList {
	var flags []syntax.Token
	for p.peek().IsFlag() {
		flags = append(flags, p.take())
	}
	return p.nodes.NewFlagList(flags...)
}

// typ parses a type name with an optional array suffix.
func (p *parser) typ() syntax.TypeIdentifier {
	var name syntax.Token
	if p.peek().IsTypeName() {
		name = p.take()
	} else {
		name = p.missing(token.Identifier, "type")
	}

	var array syntax.ArrayTypeSuffix
	if p.peek() == token.LBracket && p.peekN(1) == token.RBracket {
		array = p.nodes.NewArrayTypeSuffix(syntax.ArrayTypeSuffixArgs{
			Open:  p.take(),
			Close: p.take(),
		})
	}
	return p.nodes.NewTypeIdentifier(syntax.TypeIdentifierArgs{Name: name, Array: array})
}

// initializer parses an optional = followed by a value.
func (p *parser) initializer() syntax.Initializer {
	if p.peek() != token.Assign {
		return syntax.Initializer{}
	}
	return p.nodes.NewInitializer(syntax.InitializerArgs{
		Equals: p.take(),
		Value:  p.expr(),
	})
}
