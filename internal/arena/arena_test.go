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

package arena_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/arena"
)

func TestPointers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[int]

	p1 := a.New(5)
	p2 := p1.In(&a)
	assert.Equal(5, *p1.In(&a))

	for i := range 16 {
		a.New(i + 5)
	}
	assert.Equal(19, *a.At(16))
	assert.Equal(20, *a.At(17))
	assert.Same(p1.In(&a), p2)

	for i := range 32 {
		a.New(i + 21)
	}
	assert.Equal(51, *a.At(48))
	assert.Equal(52, *a.At(49))
	assert.Same(p1.In(&a), p2)
	assert.Equal(49, a.Len())

	assert.Equal("[5 5 6 7 8 9 10 11 12 13 14 15 16 17 18 19|20 21 22 23 24 25 26 27 28 29 30 31 32 33 34 35 36 37 38 39 40 41 42 43 44 45 46 47 48 49 50 51|52]", a.String())
}

func TestAll(t *testing.T) {
	t.Parallel()

	var a arena.Arena[string]
	for _, s := range []string{"a", "b", "c"} {
		a.New(s)
	}

	var got []string
	for p, v := range a.All() {
		assert.Equal(t, *v, *p.In(&a))
		got = append(got, *v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestOutOfRange(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	a.New(1)
	assert.Panics(t, func() { a.At(2) })
	assert.Panics(t, func() { a.At(arena.Nil()) })
	assert.True(t, arena.Pointer[int](0).Nil())
}

func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	var a arena.Arena[int]
	first := a.New(0)
	for i := 1; i < 64; i++ {
		a.New(i)
	}

	// Readers look at values that were published before they started while
	// the writer keeps allocating new slabs.
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				assert.Equal(t, 0, *first.In(&a))
				assert.Equal(t, 63, *a.At(64))
			}
		}()
	}
	for i := 64; i < 4096; i++ {
		a.New(i)
	}
	wg.Wait()
	assert.Equal(t, 4096, a.Len())
}
