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

// Tree is one immutable version of a parsed document.
//
// Trees are cheap to copy. Successive versions of a document normally share
// one [Store], along with every subtree an edit did not touch.
type Tree struct {
	root Script
}

// NewTree returns a tree rooted at the given script.
func NewTree(root Script) Tree {
	return Tree{root}
}

// IsZero returns whether this is the zero tree.
func (t Tree) IsZero() bool { return t.root.IsZero() }

// Store returns the store this tree's elements live in.
func (t Tree) Store() *Store { return t.root.store }

// Root returns the root node of this tree.
func (t Tree) Root() Node { return t.root.Node }

// Script returns the root node of this tree as a [Script].
func (t Tree) Script() Script { return t.root }

// Text returns the full text of this tree. It is identical to the text the
// tree was parsed from.
func (t Tree) Text() string {
	if t.IsZero() {
		return ""
	}
	return t.root.Text()
}

// Width returns the length of this tree's text, in bytes.
func (t Tree) Width() int { return t.root.Width() }

// Navigate returns a new navigator over this tree.
func (t Tree) Navigate() *Navigator {
	return NewNavigator(t.root.Element())
}
