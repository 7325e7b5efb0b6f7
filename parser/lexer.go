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
	"strings"
	"unicode/utf8"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// Lex splits text into lexemes. The last lexeme is always a
// [token.EndOfFile], whose leading trivia holds whatever follows the last
// token.
//
// atLineStart says whether text starts where a line of code may start: at
// the start of a file, or right after a [token.Newline]. There, line breaks
// are trivia rather than Newline tokens.
func Lex(text string, atLineStart bool) []Lexeme {
	l := &lexer{text: text, atLineStart: atLineStart}
	for {
		lx := l.next()
		l.lexemes = append(l.lexemes, lx)
		if lx.Kind == token.EndOfFile {
			return l.lexemes
		}
	}
}

// lexer is a Papyrus lexer.
type lexer struct {
	text   string
	cursor int

	// Whether the last token was a Newline, or there was none.
	atLineStart bool

	// Offset of the full text of the lexeme being built.
	start   int
	lexemes []Lexeme
}

// Done returns whether all of the text has been consumed.
func (l *lexer) Done() bool {
	return l.cursor >= len(l.text)
}

// Rest returns unlexed text.
func (l *lexer) Rest() string {
	return l.text[l.cursor:]
}

// Peek returns the next byte, or zero if l.Done().
func (l *lexer) Peek() byte {
	if l.Done() {
		return 0
	}
	return l.text[l.cursor]
}

// TakeWhile consumes bytes while they match f, and returns them.
func (l *lexer) TakeWhile(f func(byte) bool) string {
	start := l.cursor
	for !l.Done() && f(l.text[l.cursor]) {
		l.cursor++
	}
	return l.text[start:l.cursor]
}

// newline returns the length of the line break at the cursor, or zero.
func (l *lexer) newline() int {
	switch {
	case strings.HasPrefix(l.Rest(), "\r\n"):
		return 2
	case l.Peek() == '\n', l.Peek() == '\r':
		return 1
	default:
		return 0
	}
}

// continuation returns the length of the line continuation at the cursor,
// or zero.
func (l *lexer) continuation() int {
	if l.Peek() != '\\' {
		return 0
	}
	l.cursor++
	n := l.newline()
	l.cursor--
	if n == 0 {
		return 0
	}
	return n + 1
}

func (l *lexer) next() Lexeme {
	l.start = l.cursor
	lx := Lexeme{}
	lx.Leading = l.trivia(&lx, false)

	if l.Done() {
		lx.Kind = token.EndOfFile
		return lx
	}

	if n := l.newline(); n > 0 {
		// l.trivia only stops at a line break after a line of code.
		lx.Kind = token.Newline
		lx.Text = l.text[l.cursor : l.cursor+n]
		l.cursor += n
		l.atLineStart = true
		return lx
	}

	start := l.cursor
	lx.Kind = l.token(&lx)
	lx.Text = l.text[start:l.cursor]
	l.atLineStart = false
	lx.Trailing = l.trivia(&lx, true)
	return lx
}

// trivia consumes a run of trivia.
//
// Leading trivia takes line breaks at the start of a line. Trailing trivia
// stops at any line break, and after a line continuation.
func (l *lexer) trivia(lx *Lexeme, trailing bool) []syntax.Trivia {
	var trivia []syntax.Trivia
	push := func(kind token.TriviaKind, start int) {
		trivia = append(trivia, syntax.Trivia{Kind: kind, Text: l.text[start:l.cursor]})
	}

	for !l.Done() {
		start := l.cursor
		switch c := l.Peek(); {
		case c == ' ' || c == '\t' || c == '\f' || c == '\v':
			l.TakeWhile(func(c byte) bool { return c == ' ' || c == '\t' || c == '\f' || c == '\v' })
			push(token.Whitespace, start)

		case c == '\r' || c == '\n':
			if trailing || !l.atLineStart {
				return trivia
			}
			l.cursor += l.newline()
			push(token.EndOfLine, start)

		case strings.HasPrefix(l.Rest(), ";/"):
			l.comment(lx, ";/", "/;", "block comment")
			push(token.BlockComment, start)

		case c == ';':
			l.TakeWhile(func(c byte) bool { return c != '\r' && c != '\n' })
			push(token.LineComment, start)

		case c == '{':
			l.comment(lx, "{", "}", "documentation comment")
			push(token.DocComment, start)

		case l.continuation() > 0:
			l.cursor += l.continuation()
			push(token.LineContinuation, start)
			if trailing {
				return trivia
			}

		default:
			return trivia
		}
	}
	return trivia
}

// comment consumes a delimited comment through its closing delimiter.
func (l *lexer) comment(lx *Lexeme, open, end, what string) {
	start := l.cursor
	idx := strings.Index(l.text[start+len(open):], end)
	if idx == -1 {
		l.cursor = len(l.text)
		l.errorf(lx, syntax.TagUnterminatedComment, start, l.cursor, "unterminated %s", what)
		return
	}
	l.cursor = start + len(open) + idx + len(end)
}

// token consumes the code text of a token and returns its kind.
func (l *lexer) token(lx *Lexeme) token.Kind {
	start := l.cursor
	switch c := l.Peek(); {
	case isIdentStart(c):
		return token.Lookup(l.TakeWhile(isIdentPart))

	case isDigit(c):
		return l.number()

	case c == '"':
		l.string(lx)
		return token.StringLiteral
	}

	if kind, n := token.Punct(l.Rest()); n > 0 {
		l.cursor += n
		return kind
	}

	for !l.Done() && (l.cursor == start || !l.startsValid()) {
		_, n := utf8.DecodeRuneInString(l.Rest())
		l.cursor += n
	}
	l.errorf(lx, syntax.TagInvalidCharacter, start, l.cursor, "invalid characters %q", l.text[start:l.cursor])
	return token.Unknown
}

// number consumes an integer or float literal.
func (l *lexer) number() token.Kind {
	rest := l.Rest()
	if len(rest) > 2 && rest[0] == '0' && (rest[1] == 'x' || rest[1] == 'X') && isHexDigit(rest[2]) {
		l.cursor += 2
		l.TakeWhile(isHexDigit)
		return token.IntLiteral
	}

	l.TakeWhile(isDigit)
	rest = l.Rest()
	if len(rest) > 1 && rest[0] == '.' && isDigit(rest[1]) {
		l.cursor++
		l.TakeWhile(isDigit)
		return token.FloatLiteral
	}
	return token.IntLiteral
}

// string consumes a string literal, which may not span lines.
func (l *lexer) string(lx *Lexeme) {
	start := l.cursor
	l.cursor++ // Opening quote.
	for {
		switch c := l.Peek(); {
		case l.Done() || c == '\r' || c == '\n':
			l.errorf(lx, syntax.TagUnterminatedString, start, l.cursor, "unterminated string literal")
			return

		case c == '"':
			l.cursor++
			return

		case c == '\\':
			esc := l.cursor
			l.cursor++
			if l.Done() || l.newline() > 0 {
				continue
			}
			_, n := utf8.DecodeRuneInString(l.Rest())
			l.cursor += n
			if !strings.Contains(`nt\"`, l.text[esc+1:l.cursor]) || n != 1 {
				l.errorf(lx, syntax.TagBadEscape, esc, l.cursor, "invalid escape sequence %q", l.text[esc:l.cursor])
			}

		default:
			_, n := utf8.DecodeRuneInString(l.Rest())
			l.cursor += n
		}
	}
}

// startsValid returns whether the text at the cursor starts a valid token or
// piece of trivia.
func (l *lexer) startsValid() bool {
	c := l.Peek()
	switch {
	case isIdentStart(c), isDigit(c), c == '"', c == ';', c == '{',
		c == ' ', c == '\t', c == '\f', c == '\v', c == '\r', c == '\n':
		return true
	case c == '\\':
		return l.continuation() > 0
	}
	_, n := token.Punct(l.Rest())
	return n > 0
}

// errorf records a diagnostic over the absolute range [start, end).
func (l *lexer) errorf(lx *Lexeme, tag report.Tag, start, end int, format string, args ...any) {
	lx.Diagnostics = append(lx.Diagnostics, syntax.Diagnostic{
		Tag:     tag,
		Message: fmt.Sprintf(format, args...),
		Start:   start - l.start,
		End:     end - l.start,
	})
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
