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

// Package interval provides an interval intersection map keyed by integer
// endpoints. The diagnostic index in package report uses it to answer "which
// diagnostics cover this offset" queries.
package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Intersect is a collection of closed intervals with associated values.
// Given a point, it returns the values of every interval containing it.
//
// Internally the intervals are cut into disjoint pieces, each carrying the
// values of all intervals that overlap it, and indexed by their end point.
//
// A zero value is ready to use.
type Intersect[K Endpoint, V any] struct {
	tree    btree.Map[K, *Entry[K, []V]]
	pending []*Entry[K, []V]
}

// Entry is a disjoint piece of an [Intersect].
type Entry[K Endpoint, V any] struct {
	Start, End K // Inclusive.
	Value      V
}

// Contains returns whether point lies within this entry.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

// Len returns the number of disjoint pieces in this map.
func (m *Intersect[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the piece containing point.
//
// If no interval contains point, the returned entry's Value is nil.
func (m *Intersect[K, V]) Get(point K) Entry[K, []V] {
	it := m.tree.Iter()
	if !it.Seek(point) || point < it.Value().Start {
		return Entry[K, []V]{}
	}
	return *it.Value()
}

// Entries returns the disjoint pieces of this map in ascending order.
func (m *Intersect[K, V]) Entries() iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		it := m.tree.Iter()
		for ok := it.First(); ok; ok = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Insert adds the closed interval [start, end] with the given value.
//
// Returns true if the interval did not overlap any existing interval.
func (m *Intersect[K, V]) Insert(start, end K, value V) (disjoint bool) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}

	var prev *Entry[K, []V]
	for entry := range m.overlapping(start, end) {
		if prev == nil && start < entry.Start {
			m.queue(start, entry.Start-1, []V{value})
		}
		if prev != nil && prev.End+1 < entry.Start {
			m.queue(prev.End+1, entry.Start-1, []V{value})
		}

		// Values slices may be shared between a piece and the pieces split
		// off of it, so never append to them in place.
		values := entry.Value

		if end < entry.End {
			// Split off the part of entry after end. It keeps entry's key.
			head := m.queue(entry.Start, end, append(slices.Clip(values), value))
			entry.Start = end + 1
			entry = head
		}

		if entry.Start < start {
			// The part of entry before start does not overlap.
			m.queue(entry.Start, start-1, values)
			entry.Start = start
		}

		entry.Value = append(slices.Clip(values), value)
		prev = entry
	}

	switch {
	case prev == nil:
		m.queue(start, end, []V{value})
	case prev.End < end:
		m.queue(prev.End+1, end, []V{value})
	}

	for _, entry := range m.pending {
		m.tree.Set(entry.End, entry)
	}
	clear(m.pending)
	m.pending = m.pending[:0]

	return prev == nil
}

// Format implements [fmt.Formatter].
func (m *Intersect[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	for i, entry := range m.tree.Values() {
		if i > 0 {
			fmt.Fprint(s, ", ")
		}
		if entry.Start == entry.End {
			fmt.Fprintf(s, "%#v: ", entry.Start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", entry.Start, entry.End)
		}
		fmt.Fprintf(s, fmt.FormatString(s, v), entry.Value)
	}
	fmt.Fprint(s, "}")
}

// queue schedules a new piece to be added to the tree once iteration is done.
func (m *Intersect[K, V]) queue(start, end K, values []V) *Entry[K, []V] {
	entry := &Entry[K, []V]{Start: start, End: end, Value: values}
	m.pending = append(m.pending, entry)
	return entry
}

// overlapping yields the pieces that intersect [start, end], in order.
func (m *Intersect[K, V]) overlapping(start, end K) iter.Seq[*Entry[K, []V]] {
	return func(yield func(*Entry[K, []V]) bool) {
		// Seek finds the first piece whose end is at least start; from there
		// every piece that begins at or before end overlaps.
		it := m.tree.Iter()
		for ok := it.Seek(start); ok; ok = it.Next() {
			if end < it.Value().Start || !yield(it.Value()) {
				return
			}
		}
	}
}
