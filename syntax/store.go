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

package syntax

import (
	"fmt"
	"sync"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/arena"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// ID is a stable reference to a green element within a [Store].
//
// Positive IDs refer to nodes, negative IDs refer to tokens, and zero is nil.
type ID int32

// Nil returns whether this is the nil ID.
func (id ID) Nil() bool { return id == 0 }

// IsNode returns whether this ID refers to a node.
func (id ID) IsNode() bool { return id > 0 }

// IsToken returns whether this ID refers to a token.
func (id ID) IsToken() bool { return id < 0 }

// String implements [fmt.Stringer].
func (id ID) String() string {
	switch {
	case id.IsNode():
		return fmt.Sprintf("n%d", int32(id))
	case id.IsToken():
		return fmt.Sprintf("t%d", -int32(id))
	default:
		return "<nil>"
	}
}

// Store is an append-only arena of green elements.
//
// Elements are never moved or freed while the store is reachable, so an [ID]
// stays valid for the lifetime of the store. Any number of goroutines may
// read elements concurrently with one another and with calls that append new
// elements; appends are serialized internally.
//
// A document usually owns one store, shared by every version of its tree.
type Store struct {
	mu     sync.Mutex
	nodes  arena.Arena[rawNode]
	tokens arena.Arena[rawToken]
}

type flags uint8

const (
	// The element is, or contains, a missing token.
	hasMissing flags = 1 << iota
	// The element is, or contains, a token with diagnostics.
	hasDiagnostics
)

type rawNode struct {
	kind     Kind
	flags    flags
	width    int
	children []ID
}

type rawToken struct {
	kind  token.Kind
	flags flags
	width int

	text              string
	leading, trailing []Trivia
	diagnostics       []Diagnostic
}

// NewStore returns a new, empty store.
func NewStore() *Store {
	return new(Store)
}

// NumNodes returns the number of nodes ever allocated in this store.
func (s *Store) NumNodes() int {
	return s.nodes.Len()
}

// NumTokens returns the number of tokens ever allocated in this store.
func (s *Store) NumTokens() int {
	return s.tokens.Len()
}

// NewToken allocates a new token.
//
// The diagnostics' ranges are relative to the start of the token's leading
// trivia and must lie within the token.
func (s *Store) NewToken(kind token.Kind, leading []Trivia, text string, trailing []Trivia, diagnostics ...Diagnostic) Token {
	raw := rawToken{
		kind:        kind,
		text:        text,
		leading:     leading,
		trailing:    trailing,
		diagnostics: diagnostics,
	}
	raw.width = triviaWidth(leading) + len(text) + triviaWidth(trailing)
	for _, d := range diagnostics {
		if d.Start < 0 || d.Start > d.End || d.End > raw.width {
			panic(fmt.Sprintf("papyrus/syntax: diagnostic range [%d, %d) outside of %v token of width %d", d.Start, d.End, kind, raw.width))
		}
	}
	if len(diagnostics) > 0 {
		raw.flags |= hasDiagnostics
	}

	return s.newToken(raw)
}

// NewMissingToken allocates a zero-width token standing in for one the parser
// expected but did not find.
//
// A missing token normally carries a diagnostic with an empty range at zero.
// One without diagnostics is elided: its absence is not an error, such as the
// newline at the end of a file.
func (s *Store) NewMissingToken(kind token.Kind, diagnostics ...Diagnostic) Token {
	for _, d := range diagnostics {
		if d.Start != 0 || d.End != 0 {
			panic(fmt.Sprintf("papyrus/syntax: diagnostic range [%d, %d) on missing %v token", d.Start, d.End, kind))
		}
	}

	raw := rawToken{kind: kind, flags: hasMissing, diagnostics: diagnostics}
	if len(diagnostics) > 0 {
		raw.flags |= hasDiagnostics
	}
	return s.newToken(raw)
}

// NewNode allocates a new node with the given children, in lexical order.
//
// Construction is total for well-formed calls. It panics on programming
// errors: a kind that is not a production, a fixed-shape kind given the wrong
// number of children, a zero child, or a child from another store.
func (s *Store) NewNode(kind Kind, children ...Element) Node {
	if !kind.IsNode() {
		panic(fmt.Sprintf("papyrus/syntax: %v is not a node kind", kind))
	}
	if slots := kind.NumSlots(); slots >= 0 && slots != len(children) {
		panic(fmt.Sprintf("papyrus/syntax: %v takes %d children, got %d", kind, slots, len(children)))
	}

	raw := rawNode{kind: kind, children: make([]ID, len(children))}
	for i, child := range children {
		switch {
		case child.IsZero():
			panic(fmt.Sprintf("papyrus/syntax: child %d of %v is zero", i, kind))
		case child.store != s:
			panic(fmt.Sprintf("papyrus/syntax: child %d of %v belongs to another store", i, kind))
		}

		raw.children[i] = child.id
		raw.width += child.Width()
		raw.flags |= child.flags()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return Node{store: s, id: ID(s.nodes.New(raw))}
}

// NewEmpty allocates a node of kind [KindEmpty], which fills an absent
// optional slot.
func (s *Store) NewEmpty() Node {
	return s.NewNode(KindEmpty)
}

// Element returns the element with the given ID.
//
// Panics if id was not allocated by this store.
func (s *Store) Element(id ID) Element {
	e := Element{store: s, id: id}
	switch {
	case id.IsNode():
		_ = e.AsNode().raw()
	case id.IsToken():
		_ = e.AsToken().raw()
	}
	return e
}

func (s *Store) newToken(raw rawToken) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Token{store: s, id: -ID(s.tokens.New(raw))}
}

func triviaWidth(trivia []Trivia) int {
	var n int
	for _, t := range trivia {
		n += len(t.Text)
	}
	return n
}
