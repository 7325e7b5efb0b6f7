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

// Package trie provides a string-keyed map that answers longest-prefix
// queries.
package trie

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Trie implements a map from strings to V, except lookups return the key
// which is the longest prefix of a given query.
//
// The zero value is empty and ready to use.
type Trie[V any] struct {
	root node[V]
	len  int
}

type node[V any] struct {
	// Parallel slices, sorted by edge byte.
	edges []byte
	next  []*node[V]

	value V
	ok    bool
}

// Len returns the number of keys in this trie.
func (t *Trie[V]) Len() int {
	return t.len
}

// Get returns the value corresponding to the longest prefix of key present
// in the trie. The match is exact when len(key) == len(prefix).
//
// If no key in the trie is a prefix of key, returns "" and the zero value of V.
func (t *Trie[V]) Get(key string) (prefix string, value V) {
	for p, v := range t.Prefixes(key) {
		prefix, value = p, v
	}
	return prefix, value
}

// Prefixes returns an iterator over the keys in the trie that are prefixes of
// key, and their values, shortest first.
func (t *Trie[V]) Prefixes(key string) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		n := &t.root
		for i := 0; ; i++ {
			if n.ok && !yield(key[:i], n.value) {
				return
			}
			if i == len(key) {
				return
			}
			if n = n.child(key[i]); n == nil {
				return
			}
		}
	}
}

// Insert adds a new value to this trie, replacing the value of key if it is
// already present.
func (t *Trie[V]) Insert(key string, value V) {
	n := &t.root
	for i := range len(key) {
		b := key[i]
		j, found := slices.BinarySearch(n.edges, b)
		if !found {
			n.edges = slices.Insert(n.edges, j, b)
			n.next = slices.Insert(n.next, j, new(node[V]))
		}
		n = n.next[j]
	}
	if !n.ok {
		t.len++
	}
	n.value, n.ok = value, true
}

// Dump returns a human-readable rendering of this trie, for debugging.
func (t *Trie[V]) Dump() string {
	var buf strings.Builder
	t.root.dump(&buf, 0)
	return buf.String()
}

func (n *node[V]) child(b byte) *node[V] {
	j, found := slices.BinarySearch(n.edges, b)
	if !found {
		return nil
	}
	return n.next[j]
}

func (n *node[V]) dump(buf *strings.Builder, depth int) {
	for j, b := range n.edges {
		next := n.next[j]
		fmt.Fprintf(buf, "%s%q", strings.Repeat("  ", depth), b)
		if next.ok {
			fmt.Fprintf(buf, ": %v", next.value)
		}
		buf.WriteByte('\n')
		next.dump(buf, depth+1)
	}
}
