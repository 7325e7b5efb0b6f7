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
	"iter"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/arena"
)

// Navigator materializes red elements for one traversal of a tree.
//
// Red elements record their absolute position and their parent, which green
// elements cannot since they are shared between positions and tree versions.
// They are created on demand while walking down from the root, and each one is
// created at most once per navigator.
//
// A Navigator is not safe for concurrent use. Create one per traversal with
// [Tree.Navigate] and drop it afterwards.
type Navigator struct {
	store *Store
	root  ID
	reds  arena.Arena[redNode]
	cache map[redKey]redPtr
}

type redPtr = arena.Pointer[redNode]

type redNode struct {
	green  ID
	pos    int
	parent redPtr
	index  int32
}

type redKey struct {
	parent redPtr
	index  int32
	green  ID
	pos    int
}

// NewNavigator returns a navigator rooted at the given element.
func NewNavigator(root Element) *Navigator {
	return &Navigator{
		store: root.store,
		root:  root.id,
		cache: make(map[redKey]redPtr),
	}
}

// Store returns the store the navigated tree lives in.
func (nav *Navigator) Store() *Store { return nav.store }

// Root returns the red root, at position zero.
func (nav *Navigator) Root() Red {
	if nav.root.Nil() {
		return Red{}
	}
	return nav.project(Red{}, -1, Element{nav.store, nav.root}, 0)
}

// Len returns the number of red elements materialized so far.
func (nav *Navigator) Len() int { return nav.reds.Len() }

// CreateRed projects green, a child of parent that starts at pos, into nav.
//
// A zero parent makes green a root at pos. Projection is total over kinds: it
// never fails for well-formed input. Panics if parent belongs to another
// navigator, or green is not a child of parent starting at pos.
func CreateRed(nav *Navigator, green Element, parent Red, pos int) Red {
	if green.IsZero() {
		return Red{}
	}
	if parent.IsZero() {
		return nav.project(Red{}, -1, green, pos)
	}
	if parent.nav != nav {
		panic("papyrus/syntax: parent red belongs to another navigator")
	}

	p := parent.Green().AsNode()
	found := false
	offset := parent.Start()
	for i, id := range p.raw().children {
		if id == green.id {
			if offset == pos {
				return nav.project(parent, i, green, pos)
			}
			found = true
		}
		offset += Element{p.store, id}.Width()
	}
	if found {
		panic(fmt.Sprintf("papyrus/syntax: %v does not start at %d in %v", green, pos, parent))
	}
	panic(fmt.Sprintf("papyrus/syntax: %v is not a child of %v", green, p))
}

func (nav *Navigator) project(parent Red, index int, green Element, pos int) Red {
	key := redKey{parent.ptr, int32(index), green.id, pos}
	if ptr, ok := nav.cache[key]; ok {
		return Red{nav, ptr}
	}

	red := Transform(green, projector{
		nav:    nav,
		parent: parent.ptr,
		pos:    pos,
		index:  index,
	})
	nav.cache[key] = red.ptr
	return red
}

func (p projector) project(id ID) Red {
	ptr := p.nav.reds.New(redNode{
		green:  id,
		pos:    p.pos,
		parent: p.parent,
		index:  int32(p.index),
	})
	return Red{p.nav, ptr}
}

// Red is a green element at a position in a tree.
//
// The zero Red is nil; its accessors return zero values.
type Red struct {
	nav *Navigator
	ptr redPtr
}

// IsZero returns whether this is the nil red element.
func (r Red) IsZero() bool { return r.ptr.Nil() }

// Navigator returns the navigator that created r.
func (r Red) Navigator() *Navigator { return r.nav }

// Green returns the green element r projects.
func (r Red) Green() Element {
	if r.IsZero() {
		return Element{}
	}
	return Element{r.nav.store, r.raw().green}
}

// Kind returns the kind of the green element.
func (r Red) Kind() Kind { return r.Green().Kind() }

// IsToken returns whether r projects a token.
func (r Red) IsToken() bool { return r.Green().IsToken() }

// Token returns the green token r projects, or a zero token.
func (r Red) Token() Token { return r.Green().AsToken() }

// Node returns the green node r projects, or a zero node.
func (r Red) Node() Node { return r.Green().AsNode() }

// Span returns the absolute start of r's full text, and its width.
func (r Red) Span() (start, width int) { return r.Start(), r.Width() }

// Start returns the absolute offset at which r's full text starts.
func (r Red) Start() int {
	if r.IsZero() {
		return 0
	}
	return r.raw().pos
}

// Width returns the width of r's full text.
func (r Red) Width() int { return r.Green().Width() }

// End returns the absolute offset at which r's full text ends.
func (r Red) End() int { return r.Start() + r.Width() }

// Text returns the full text of r, trivia included.
func (r Red) Text() string { return r.Green().Text() }

// Parent returns the parent of r, or a zero Red for the root.
func (r Red) Parent() Red {
	if r.IsZero() {
		return Red{}
	}
	return Red{r.nav, r.raw().parent}
}

// Index returns the index of r among its parent's children, or -1 for the
// root.
func (r Red) Index() int {
	if r.IsZero() {
		return -1
	}
	return int(r.raw().index)
}

// NumChildren returns the number of children of r.
func (r Red) NumChildren() int { return r.Node().NumChildren() }

// Child returns the ith child of r.
//
// Panics if i is out of range.
func (r Red) Child(i int) Red {
	n := r.Node()
	pos := r.Start()
	for j := range i {
		pos += n.Child(j).Width()
	}
	return r.nav.project(r, i, n.Child(i), pos)
}

// Slot is an alias for [Red.Child], for use with slot constants such as
// [FunctionHeaderSlotName].
func (r Red) Slot(i int) Red { return r.Child(i) }

// Children returns the children of r in lexical order.
//
// Each child is materialized only when the loop reaches it.
func (r Red) Children() iter.Seq[Red] {
	return func(yield func(Red) bool) {
		n := r.Node()
		if n.IsZero() {
			return
		}
		pos := r.Start()
		for i, id := range n.raw().children {
			child := Element{n.store, id}
			if !yield(r.nav.project(r, i, child, pos)) {
				return
			}
			pos += child.Width()
		}
	}
}

// NextSibling returns the child of r's parent after r, or a zero Red.
func (r Red) NextSibling() Red {
	parent := r.Parent()
	i := r.Index() + 1
	if parent.IsZero() || i >= parent.NumChildren() {
		return Red{}
	}
	return r.nav.project(parent, i, parent.Node().Child(i), r.End())
}

// PrevSibling returns the child of r's parent before r, or a zero Red.
func (r Red) PrevSibling() Red {
	parent := r.Parent()
	i := r.Index() - 1
	if parent.IsZero() || i < 0 {
		return Red{}
	}
	prev := parent.Node().Child(i)
	return r.nav.project(parent, i, prev, r.Start()-prev.Width())
}

// Ancestors returns the parent of r, its parent, and so on up to the root.
func (r Red) Ancestors() iter.Seq[Red] {
	return func(yield func(Red) bool) {
		for p := r.Parent(); !p.IsZero(); p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// Tokens returns the tokens under r in lexical order, r itself if it is a
// token.
func (r Red) Tokens() iter.Seq[Red] {
	return func(yield func(Red) bool) {
		r.tokens(yield)
	}
}

func (r Red) tokens(yield func(Red) bool) bool {
	if r.IsZero() {
		return true
	}
	if r.IsToken() {
		return yield(r)
	}
	for child := range r.Children() {
		if !child.tokens(yield) {
			return false
		}
	}
	return true
}

// FirstToken returns the first token under r, or a zero Red if r has none.
func (r Red) FirstToken() Red {
	if r.IsToken() {
		return r
	}
	for child := range r.Children() {
		if tok := child.FirstToken(); !tok.IsZero() {
			return tok
		}
	}
	return Red{}
}

// LastToken returns the last token under r, or a zero Red if r has none.
func (r Red) LastToken() Red {
	if r.IsToken() {
		return r
	}
	for i := r.NumChildren() - 1; i >= 0; i-- {
		if tok := r.Child(i).LastToken(); !tok.IsZero() {
			return tok
		}
	}
	return Red{}
}

// NextToken returns the first token after r in the tree, or a zero Red.
func (r Red) NextToken() Red {
	for cur := r; !cur.IsZero(); cur = cur.Parent() {
		for sib := cur.NextSibling(); !sib.IsZero(); sib = sib.NextSibling() {
			if tok := sib.FirstToken(); !tok.IsZero() {
				return tok
			}
		}
	}
	return Red{}
}

// PrevToken returns the last token before r in the tree, or a zero Red.
func (r Red) PrevToken() Red {
	for cur := r; !cur.IsZero(); cur = cur.Parent() {
		for sib := cur.PrevSibling(); !sib.IsZero(); sib = sib.PrevSibling() {
			if tok := sib.LastToken(); !tok.IsZero() {
				return tok
			}
		}
	}
	return Red{}
}

// TokenAt returns the token under r whose full text contains offset, or a
// zero Red if there is none.
//
// Each step of the descent picks the one child whose range contains offset.
// Zero-width elements never contain an offset.
func (r Red) TokenAt(offset int) Red {
	if !r.contains(offset, offset) {
		return Red{}
	}
	for !r.IsToken() {
		next := Red{}
		for child := range r.Children() {
			if child.contains(offset, offset) {
				next = child
				break
			}
			if child.Start() > offset {
				break
			}
		}
		if next.IsZero() {
			return Red{}
		}
		r = next
	}
	return r
}

// Enclosing returns the deepest element under r whose full text contains all
// of [start, end), or a zero Red if r itself does not.
//
// An empty range is contained by the element containing start.
func (r Red) Enclosing(start, end int) Red {
	if !r.contains(start, end) {
		return Red{}
	}
outer:
	for !r.IsToken() {
		for child := range r.Children() {
			if child.contains(start, end) {
				r = child
				continue outer
			}
			if child.Start() > start {
				break
			}
		}
		break
	}
	return r
}

// contains returns whether [start, end) lies within r, where an empty range
// needs start to be inside r.
func (r Red) contains(start, end int) bool {
	rs, re := r.Start(), r.End()
	return !r.IsZero() && rs < re &&
		rs <= start && start < re && end <= re
}

// String implements [fmt.Stringer].
func (r Red) String() string {
	if r.IsZero() {
		return "<nil>"
	}
	return fmt.Sprintf("%v[%d:%d]", r.Green(), r.Start(), r.End())
}

func (r Red) raw() *redNode {
	return r.ptr.In(&r.nav.reds)
}
