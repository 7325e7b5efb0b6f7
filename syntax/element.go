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
	"io"
	"iter"
	"strings"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/arena"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// Trivia is a piece of source text that belongs to a token without being
// part of its code text.
type Trivia struct {
	Kind token.TriviaKind
	Text string
}

// Diagnostic is a problem recorded on a token while lexing or parsing.
//
// [Diagnose] converts these into [report.Diagnostic]s with absolute spans.
type Diagnostic struct {
	Tag     report.Tag
	Message string

	// The byte range of the problem, relative to the start of the token's
	// leading trivia.
	Start, End int
}

// Element is a green element: either a [Token] or a [Node].
//
// The zero Element is nil and reports [KindInvalid].
type Element struct {
	store *Store
	id    ID
}

// IsZero returns whether this is the nil element.
func (e Element) IsZero() bool { return e.id == 0 }

// ID returns this element's ID within its store.
func (e Element) ID() ID { return e.id }

// Store returns the store this element lives in.
func (e Element) Store() *Store { return e.store }

// IsToken returns whether this element is a token.
func (e Element) IsToken() bool { return e.id.IsToken() }

// IsNode returns whether this element is a node.
func (e Element) IsNode() bool { return e.id.IsNode() }

// AsToken returns this element as a token, or the zero token if it is a node.
func (e Element) AsToken() Token {
	if !e.IsToken() {
		return Token{}
	}
	return Token(e)
}

// AsNode returns this element as a node, or the zero node if it is a token.
func (e Element) AsNode() Node {
	if !e.IsNode() {
		return Node{}
	}
	return Node(e)
}

// Kind returns this element's kind.
func (e Element) Kind() Kind {
	switch {
	case e.IsNode():
		return e.AsNode().Kind()
	case e.IsToken():
		return KindToken
	default:
		return KindInvalid
	}
}

// Width returns the length of this element's full text, in bytes.
func (e Element) Width() int {
	switch {
	case e.IsNode():
		return e.AsNode().Width()
	case e.IsToken():
		return e.AsToken().Width()
	default:
		return 0
	}
}

// HasDiagnostics returns whether this element is or contains a token with
// diagnostics.
func (e Element) HasDiagnostics() bool {
	return e.flags()&hasDiagnostics != 0
}

// HasMissing returns whether this element is or contains a missing token.
func (e Element) HasMissing() bool {
	return e.flags()&hasMissing != 0
}

// Tokens returns the tokens of this element in lexical order.
func (e Element) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		e.tokens(yield)
	}
}

// Text returns the full text of this element, trivia included.
func (e Element) Text() string {
	if tok := e.AsToken(); !tok.IsZero() {
		return tok.FullText()
	}

	var buf strings.Builder
	buf.Grow(e.Width())
	_, _ = e.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes the full text of this element to w.
//
// Implements [io.WriterTo].
func (e Element) WriteTo(w io.Writer) (int64, error) {
	sw, ok := w.(io.StringWriter)
	if !ok {
		sw = stringWriter{w}
	}

	var n int64
	var err error
	write := func(s string) bool {
		if s == "" {
			return true
		}
		var m int
		m, err = sw.WriteString(s)
		n += int64(m)
		return err == nil
	}

	for tok := range e.Tokens() {
		raw := tok.raw()
		for _, t := range raw.leading {
			if !write(t.Text) {
				return n, err
			}
		}
		if !write(raw.text) {
			return n, err
		}
		for _, t := range raw.trailing {
			if !write(t.Text) {
				return n, err
			}
		}
	}
	return n, err
}

// Accept dispatches this element to the method of v for its kind.
//
// Panics if e is zero.
func (e Element) Accept(v Visitor) {
	accept(e, v)
}

// String implements [fmt.Stringer].
func (e Element) String() string {
	switch {
	case e.IsNode():
		return e.AsNode().String()
	case e.IsToken():
		return e.AsToken().String()
	default:
		return "<nil>"
	}
}

func (e Element) flags() flags {
	switch {
	case e.IsNode():
		return e.AsNode().raw().flags
	case e.IsToken():
		return e.AsToken().raw().flags
	default:
		return 0
	}
}

func (e Element) tokens(yield func(Token) bool) bool {
	if tok := e.AsToken(); !tok.IsZero() {
		return yield(tok)
	}
	if e.IsZero() {
		return true
	}
	for _, child := range e.AsNode().raw().children {
		if !(Element{e.store, child}).tokens(yield) {
			return false
		}
	}
	return true
}

// Token is a terminal element.
//
// A token's full text is its leading trivia, then its code text, then its
// trailing trivia. The zero Token is nil.
type Token struct {
	store *Store
	id    ID
}

// IsZero returns whether this is the nil token.
func (t Token) IsZero() bool { return t.id == 0 }

// ID returns this token's ID within its store.
func (t Token) ID() ID { return t.id }

// Element returns this token as an [Element].
func (t Token) Element() Element { return Element(t) }

// Kind returns the token's kind.
func (t Token) Kind() token.Kind { return t.raw().kind }

// Text returns the code text of this token, without trivia.
func (t Token) Text() string { return t.raw().text }

// Leading returns the trivia before this token's code text.
func (t Token) Leading() []Trivia { return t.raw().leading }

// Trailing returns the trivia after this token's code text.
func (t Token) Trailing() []Trivia { return t.raw().trailing }

// LeadingWidth returns the length of the leading trivia, in bytes.
func (t Token) LeadingWidth() int { return triviaWidth(t.raw().leading) }

// TrailingWidth returns the length of the trailing trivia, in bytes.
func (t Token) TrailingWidth() int { return triviaWidth(t.raw().trailing) }

// Width returns the length of this token's full text, in bytes.
func (t Token) Width() int {
	if t.IsZero() {
		return 0
	}
	return t.raw().width
}

// FullText returns the leading trivia, code text and trailing trivia of this
// token.
func (t Token) FullText() string {
	raw := t.raw()
	if len(raw.leading) == 0 && len(raw.trailing) == 0 {
		return raw.text
	}

	var buf strings.Builder
	buf.Grow(raw.width)
	for _, tr := range raw.leading {
		buf.WriteString(tr.Text)
	}
	buf.WriteString(raw.text)
	for _, tr := range raw.trailing {
		buf.WriteString(tr.Text)
	}
	return buf.String()
}

// IsMissing returns whether this token was synthesized by the parser in
// place of one it expected.
func (t Token) IsMissing() bool { return t.raw().flags&hasMissing != 0 }

// Diagnostics returns the problems recorded on this token.
func (t Token) Diagnostics() []Diagnostic { return t.raw().diagnostics }

// HasDiagnostics returns whether this token has any diagnostics.
func (t Token) HasDiagnostics() bool { return len(t.raw().diagnostics) > 0 }

// Accept calls v.VisitToken(t).
func (t Token) Accept(v Visitor) { v.VisitToken(t) }

// String implements [fmt.Stringer].
func (t Token) String() string {
	if t.IsZero() {
		return "<nil>"
	}
	if t.IsMissing() {
		return fmt.Sprintf("%v<missing>@%v", t.Kind().GoString(), t.id)
	}
	return fmt.Sprintf("%v%q@%v", t.Kind().GoString(), t.Text(), t.id)
}

func (t Token) raw() *rawToken {
	if t.IsZero() {
		panic("papyrus/syntax: dereferenced zero token")
	}
	return t.store.tokens.At(arena.Untyped(-t.id))
}

// Node is a generic view of a composite green element.
//
// Each production also has a typed view embedding Node, such as
// [FunctionHeader]. The zero Node is nil.
type Node struct {
	store *Store
	id    ID
}

// IsZero returns whether this is the nil node.
func (n Node) IsZero() bool { return n.id == 0 }

// ID returns this node's ID within its store.
func (n Node) ID() ID { return n.id }

// Store returns the store this node lives in.
func (n Node) Store() *Store { return n.store }

// Element returns this node as an [Element].
func (n Node) Element() Element { return Element(n) }

// Kind returns the node's kind, or [KindInvalid] for the zero node.
func (n Node) Kind() Kind {
	if n.IsZero() {
		return KindInvalid
	}
	return n.raw().kind
}

// Width returns the length of this node's full text, in bytes.
func (n Node) Width() int {
	if n.IsZero() {
		return 0
	}
	return n.raw().width
}

// IsEmpty returns whether this node is zero or of kind [KindEmpty].
func (n Node) IsEmpty() bool {
	return n.IsZero() || n.Kind() == KindEmpty
}

// NumChildren returns the number of children of this node.
func (n Node) NumChildren() int {
	if n.IsZero() {
		return 0
	}
	return len(n.raw().children)
}

// Child returns the ith child of this node.
//
// Panics if i is out of range.
func (n Node) Child(i int) Element {
	return Element{n.store, n.raw().children[i]}
}

// Children returns the children of this node in lexical order.
//
// Children are produced lazily; breaking out of the loop visits nothing
// further.
func (n Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		if n.IsZero() {
			return
		}
		for _, id := range n.raw().children {
			if !yield(Element{n.store, id}) {
				return
			}
		}
	}
}

// Tokens returns the tokens under this node in lexical order.
func (n Node) Tokens() iter.Seq[Token] { return n.Element().Tokens() }

// Text returns the full text of this node, trivia included.
func (n Node) Text() string { return n.Element().Text() }

// WriteTo writes the full text of this node to w.
func (n Node) WriteTo(w io.Writer) (int64, error) { return n.Element().WriteTo(w) }

// HasDiagnostics returns whether any token under this node has diagnostics.
func (n Node) HasDiagnostics() bool { return n.Element().HasDiagnostics() }

// HasMissing returns whether any token under this node is missing.
func (n Node) HasMissing() bool { return n.Element().HasMissing() }

// Accept dispatches this node to the method of v for its kind.
func (n Node) Accept(v Visitor) { accept(n.Element(), v) }

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%v@%v", n.Kind(), n.id)
}

// AsDefinition returns this node as a [Definition], or the zero value if it
// is not a definition.
func (n Node) AsDefinition() Definition {
	if !n.Kind().IsDefinition() {
		return Definition{}
	}
	return Definition{n}
}

// AsStatement returns this node as a [Statement], or the zero value if it is
// not a statement.
func (n Node) AsStatement() Statement {
	if !n.Kind().IsStatement() {
		return Statement{}
	}
	return Statement{n}
}

// AsExpr returns this node as an [Expr], or the zero value if it is not an
// expression.
func (n Node) AsExpr() Expr {
	if !n.Kind().IsExpr() {
		return Expr{}
	}
	return Expr{n}
}

func (n Node) raw() *rawNode {
	if n.IsZero() {
		panic("papyrus/syntax: dereferenced zero node")
	}
	return n.store.nodes.At(arena.Untyped(n.id))
}

// token returns the token in slot i.
func (n Node) token(i int) Token {
	return n.Child(i).AsToken()
}

// node returns the node in slot i.
func (n Node) node(i int) Node {
	return n.Child(i).AsNode()
}

// optional returns the node in slot i, or the zero node if the slot is
// [KindEmpty].
func (n Node) optional(i int) Node {
	child := n.node(i)
	if child.Kind() == KindEmpty {
		return Node{}
	}
	return child
}

type stringWriter struct{ io.Writer }

func (w stringWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}
