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

// Package arena defines an [Arena] type with compressed pointers.
//
// The benefits of using compressed pointers are as follows:
//
//  1. Pointers are only four bytes wide and four-byte aligned, saving on space
//     in pointer-heavy graph data structures such as syntax trees.
//
//  2. The GC has to do substantially less work on such graph data structures,
//     because from its perspective, structures that only contain compressed
//     pointers are not deeply-nested and require less traversal.
//
//  3. Values never move once allocated, so a pointer handed out to one
//     goroutine stays valid while another goroutine keeps allocating.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
	"sync/atomic"
)

// pointersMinLenShift is the log2 of the size of the smallest slab in an
// Arena.
const (
	pointersMinLenShift = 4
	pointersMinLen      = 1 << pointersMinLenShift

	// maxSlabs is the number of slabs needed to address every 32-bit pointer.
	maxSlabs = 32 - pointersMinLenShift
)

// An untyped arena pointer.
//
// The pointer value of a particular pointer in an arena is equal to one
// plus the number of elements allocated before it.
type Untyped uint32

// Nil returns a nil arena pointer.
func Nil() Untyped {
	return 0
}

// Nil returns whether this pointer is nil.
func (p Untyped) Nil() bool {
	return p == 0
}

// A compressed arena pointer.
//
// Cannot be dereferenced directly; see [Pointer.In].
//
// The zero value is nil.
type Pointer[T any] Untyped

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return Untyped(p).Nil()
}

// In looks up this pointer in the given arena.
//
// arena must be the arena that allocated this pointer, otherwise this will
// either return an arbitrary pointer or panic. If p is nil, this panics.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.At(Untyped(p))
}

// String implements [fmt.Stringer].
func (p Pointer[T]) String() string {
	if p.Nil() {
		return "<nil>"
	}
	return fmt.Sprintf("0x%x", uint32(p))
}

// Arena is an arena that offers compressed pointers. Internally, it is a table
// of slabs of T that guarantees the Ts will never be moved.
//
// Slab n has length pointersMinLen<<n and is allocated at full length the
// first time it is needed; slabs are never resized. This trades off the linear
// 8-byte overhead of []*T for a fixed table of slab headers. Lookup time
// remains O(1), at the cost of two pointer loads instead of one.
//
// An Arena may be read from any number of goroutines while a single goroutine
// calls [Arena.New], provided that each pointer is handed to readers through
// some synchronizing operation after New returns it. Concurrent calls to New
// must be serialized by the caller.
//
// A zero Arena[T] is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. len(table[n]) == pointersMinLen<<n, or table[n] == nil.
	// 2. table[n] != nil implies table[m] != nil for all m < n.
	// 3. count is the number of initialized values across all slabs.
	table [maxSlabs][]T
	count atomic.Uint32
}

// New allocates a new value on the arena.
func (a *Arena[T]) New(value T) Pointer[T] {
	idx := int(a.count.Load())
	slab, off := coordinates(idx)
	if slab >= maxSlabs {
		panic("arena: out of address space")
	}
	if a.table[slab] == nil {
		a.table[slab] = make([]T, lenOfNthSlab(slab))
	}

	a.table[slab][off] = value
	a.count.Store(uint32(idx + 1))
	return Pointer[T](Untyped(idx + 1))
}

// At dereferences an untyped arena pointer, as if by [Pointer.In].
func (a *Arena[T]) At(ptr Untyped) *T {
	if ptr.Nil() {
		a = nil // Trigger an ordinary nil dereference on purpose.
	}

	idx := int(ptr) - 1
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}
	slab, off := coordinates(idx)
	return &a.table[slab][off]
}

// Len returns the number of values allocated in this arena.
func (a *Arena[T]) Len() int {
	return int(a.count.Load())
}

// All returns an iterator over every value allocated so far, in allocation
// order.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		n := a.Len()
		for i := range n {
			slab, off := coordinates(i)
			if !yield(Pointer[T](i+1), &a.table[slab][off]) {
				return
			}
		}
	}
}

// String implements [strings.Stringer].
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Don't use All, we want to subtly show off the boundaries of the
	// slabs.
	n := a.Len()
	for i := range n {
		slab, off := coordinates(i)
		switch {
		case i == 0:
		case off == 0:
			b.WriteRune('|')
		default:
			b.WriteRune(' ')
		}
		fmt.Fprint(&b, a.table[slab][off])
	}
	b.WriteRune(']')
	return b.String()
}

// lenOfNthSlab returns the length of the nth slab, even if it isn't
// allocated yet.
func lenOfNthSlab(n int) int {
	return pointersMinLen << n
}

// lenOfFirstNSlabs returns the length of the first n slabs.
func lenOfFirstNSlabs(n int) int {
	// Note the following identity:
	//
	// 2^m + 2^(m+1) + ... + 2^n = 2^(n+1) - 2^m
	//
	// This tells us that the sum of lenOfNthSlab(m) from 0 to n-1 (the first
	// n slabs) is
	return max(0, lenOfNthSlab(n)-lenOfNthSlab(0))
}

// coordinates calculates the coordinates of the given index in table.
func coordinates(idx int) (int, int) {
	// Given pointersMinLenShift == n, the cumulative starting index of each slab is
	//
	// 0b0 << n, 0b1 << n, 0b11 << n, 0b111 << n
	//
	// Thus, to find which slab an index corresponds to, we add 0b1 << n (pointersMinLen).
	// Because << distributes over addition, we get
	//
	// 0b1 << n, 0b10 << n, 0b100 << n, 0b1000 << n
	//
	// Taking the one-indexed high order bit, which maps this sequence to
	//
	// 1+n, 2+n, 3+n, 4+n
	//
	// We can subtract off n+1 to obtain the actual slab index:
	//
	// 0, 1, 2, 3
	slab := bits.UintSize - bits.LeadingZeros(uint(idx)+pointersMinLen)
	slab -= pointersMinLenShift + 1

	// Then, the offset within table[slab] is given by subtracting off the
	// length of all prior slabs from idx.
	idx -= lenOfFirstNSlabs(slab)

	return slab, idx
}
