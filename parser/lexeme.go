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
	"slices"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// Lexeme is a token produced by the lexer, not yet allocated in a store.
type Lexeme struct {
	Kind        token.Kind
	Leading     []syntax.Trivia
	Text        string
	Trailing    []syntax.Trivia
	Diagnostics []syntax.Diagnostic
}

// Width returns the length of the lexeme's full text, in bytes.
func (l Lexeme) Width() int {
	return triviaWidth(l.Leading) + len(l.Text) + triviaWidth(l.Trailing)
}

// NewToken allocates this lexeme as a token in s.
func (l Lexeme) NewToken(s *syntax.Store) syntax.Token {
	return s.NewToken(l.Kind, l.Leading, l.Text, l.Trailing, l.Diagnostics...)
}

// Matches returns whether tok is a real token with the same kind, text,
// trivia and diagnostics as l.
func (l Lexeme) Matches(tok syntax.Token) bool {
	return !tok.IsZero() && !tok.IsMissing() &&
		tok.Kind() == l.Kind &&
		tok.Text() == l.Text &&
		slices.Equal(tok.Leading(), l.Leading) &&
		slices.Equal(tok.Trailing(), l.Trailing) &&
		slices.Equal(tok.Diagnostics(), l.Diagnostics)
}

func triviaWidth(trivia []syntax.Trivia) int {
	var n int
	for _, t := range trivia {
		n += len(t.Text)
	}
	return n
}
