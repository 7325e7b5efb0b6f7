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

package token

import (
	"fmt"
	"strings"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/trie"
)

type property uint16

const (
	valid property = 1 << iota

	punct
	keyword
	literal
	builtinType
	flag
	assignment
	terminator
	trivial
)

func (k Kind) properties() property {
	if int(k) < len(properties) {
		return properties[k]
	}
	return 0
}

// properties is a table of token kind properties, stored as bitsets.
var properties = [...]property{
	Unknown:       valid | trivial,
	EndOfFile:     valid | terminator,
	Newline:       valid,
	Identifier:    valid,
	IntLiteral:    valid | literal,
	FloatLiteral:  valid | literal,
	StringLiteral: valid | literal,

	LParen:        valid | punct,
	RParen:        valid | punct,
	LBracket:      valid | punct,
	RBracket:      valid | punct,
	Comma:         valid | punct,
	Dot:           valid | punct,
	Assign:        valid | punct | assignment,
	PlusAssign:    valid | punct | assignment,
	MinusAssign:   valid | punct | assignment,
	StarAssign:    valid | punct | assignment,
	SlashAssign:   valid | punct | assignment,
	PercentAssign: valid | punct | assignment,
	Plus:          valid | punct,
	Minus:         valid | punct,
	Star:          valid | punct,
	Slash:         valid | punct,
	Percent:       valid | punct,
	Equal:         valid | punct,
	NotEqual:      valid | punct,
	Less:          valid | punct,
	LessEqual:     valid | punct,
	Greater:       valid | punct,
	GreaterEqual:  valid | punct,
	AndAnd:        valid | punct,
	OrOr:          valid | punct,
	Not:           valid | punct,

	As:           valid | keyword,
	Auto:         valid | keyword | flag,
	AutoReadOnly: valid | keyword | flag,
	Bool:         valid | keyword | builtinType,
	Conditional:  valid | keyword | flag,
	Else:         valid | keyword | terminator,
	ElseIf:       valid | keyword | terminator,
	EndEvent:     valid | keyword | terminator,
	EndFunction:  valid | keyword | terminator,
	EndIf:        valid | keyword | terminator,
	EndProperty:  valid | keyword | terminator,
	EndState:     valid | keyword | terminator,
	EndWhile:     valid | keyword | terminator,
	Event:        valid | keyword,
	Extends:      valid | keyword,
	False:        valid | keyword | literal,
	Float:        valid | keyword | builtinType,
	Function:     valid | keyword,
	Global:       valid | keyword | flag,
	Hidden:       valid | keyword | flag,
	If:           valid | keyword,
	Import:       valid | keyword,
	Int:          valid | keyword | builtinType,
	Native:       valid | keyword | flag,
	New:          valid | keyword,
	None:         valid | keyword | literal,
	Parent:       valid | keyword,
	Property:     valid | keyword,
	Return:       valid | keyword,
	ScriptName:   valid | keyword,
	Self:         valid | keyword,
	State:        valid | keyword,
	String:       valid | keyword | builtinType,
	True:         valid | keyword | literal,
	While:        valid | keyword,
}

// keywords maps the lowercased spelling of every keyword to its kind.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := range Kind(KindCount) {
		if k.IsKeyword() {
			m[strings.ToLower(k.String())] = k
		}
	}
	return m
}()

// Lookup returns the keyword kind spelled by text, ignoring case.
//
// Returns [Identifier] if text is not a keyword.
func Lookup(text string) Kind {
	if k, ok := keywords[strings.ToLower(text)]; ok {
		return k
	}
	return Identifier
}

// punctuation maps the spelling of every punctuation kind to its kind.
var punctuation = func() *trie.Trie[Kind] {
	t := new(trie.Trie[Kind])
	for k := range Kind(KindCount) {
		if k.IsPunct() {
			t.Insert(k.String(), k)
		}
	}
	return t
}()

// Punct returns the longest punctuation kind spelled by a prefix of text, and
// the length of that prefix.
//
// Returns [Unknown] and zero if text does not start with punctuation.
func Punct(text string) (Kind, int) {
	prefix, k := punctuation.Get(text)
	if prefix == "" {
		return Unknown, 0
	}
	return k, len(prefix)
}

// IsValid returns whether this is a valid kind.
func (k Kind) IsValid() bool {
	return k.properties()&valid != 0
}

// IsPunct returns whether this is punctuation or an operator.
func (k Kind) IsPunct() bool {
	return k.properties()&punct != 0
}

// IsKeyword returns whether this is a reserved word.
func (k Kind) IsKeyword() bool {
	return k.properties()&keyword != 0
}

// IsLiteral returns whether this kind can appear as the token of a literal
// expression.
func (k Kind) IsLiteral() bool {
	return k.properties()&literal != 0
}

// IsBuiltinType returns whether this is one of the builtin type keywords.
func (k Kind) IsBuiltinType() bool {
	return k.properties()&builtinType != 0
}

// IsTypeName returns whether a token of this kind can name a type.
func (k Kind) IsTypeName() bool {
	return k == Identifier || k.IsBuiltinType()
}

// IsFlag returns whether this keyword may appear in a flag list.
func (k Kind) IsFlag() bool {
	return k.properties()&flag != 0
}

// IsAssignment returns whether this is = or a compound assignment operator.
func (k Kind) IsAssignment() bool {
	return k.properties()&assignment != 0
}

// IsTerminator returns whether this kind ends a block of statements or
// definitions.
func (k Kind) IsTerminator() bool {
	return k.properties()&terminator != 0
}

// IsError returns whether tokens of this kind represent invalid input.
func (k Kind) IsError() bool {
	return k.properties()&trivial != 0
}

// Describe returns a description of this kind suitable for "expected ..."
// diagnostics.
func (k Kind) Describe() string {
	switch {
	case k.IsPunct():
		return fmt.Sprintf("`%s`", k)
	case k.IsKeyword():
		return fmt.Sprintf("`%s`", k)
	default:
		return k.String()
	}
}

// Precedence returns the binding power of this kind as a binary operator.
// Higher binds tighter. Returns 0 if this is not a binary operator.
func (k Kind) Precedence() int {
	switch k {
	case OrOr:
		return 1
	case AndAnd:
		return 2
	case Equal, NotEqual, Less, LessEqual, Greater, GreaterEqual:
		return 3
	case Plus, Minus:
		return 4
	case Star, Slash, Percent:
		return 5
	default:
		return 0
	}
}
