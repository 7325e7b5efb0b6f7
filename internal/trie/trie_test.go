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

package trie_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/trie"
)

func TestTrie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data []string
		keys []string
		want [][]int
	}{
		{
			data: []string{"fo", "foo", "ba", "bar", "baz"},
			keys: []string{"fo", "foo", "ba", "bar", "baz"},
			want: [][]int{{0}, {0, 1}, {2}, {2, 3}, {2, 4}},
		},
		{
			data: []string{"fo", "foo", "ba", "bar", "baz"},
			keys: []string{"f", "fooo", "barr", "bazr", "baar", ""},
			want: [][]int{nil, {0, 1}, {2, 3}, {2, 4}, {2}, nil},
		},
		{
			data: []string{"=", "==", "<", "<=", "!", "!="},
			keys: []string{"==1", "= =", "<=>", "!x", "?"},
			want: [][]int{{0, 1}, {0}, {2, 3}, {4}, nil},
		},
	}

	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			t.Parallel()

			trie := new(trie.Trie[int])
			for i, s := range test.data {
				trie.Insert(s, i)
			}
			t.Log(trie.Dump())
			assert.Equal(t, len(test.data), trie.Len())

			for i, key := range test.keys {
				var got []int
				for prefix, v := range trie.Prefixes(key) {
					assert.True(t, strings.HasPrefix(key, prefix))
					got = append(got, v)
				}
				assert.Equal(t, test.want[i], got, "#%d", i)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	trie := new(trie.Trie[string])
	prefix, v := trie.Get("anything")
	assert.Empty(t, prefix)
	assert.Empty(t, v)

	trie.Insert("+", "plus")
	trie.Insert("+=", "plus-assign")
	trie.Insert("+", "add")
	assert.Equal(t, 2, trie.Len())

	prefix, v = trie.Get("+= 1")
	assert.Equal(t, "+=", prefix)
	assert.Equal(t, "plus-assign", v)

	prefix, v = trie.Get("+ 1")
	assert.Equal(t, "+", prefix)
	assert.Equal(t, "add", v)

	// The empty key is a prefix of everything.
	trie.Insert("", "empty")
	prefix, v = trie.Get("x")
	assert.Empty(t, prefix)
	assert.Equal(t, "empty", v)
}

func TestHammerTrie(t *testing.T) {
	t.Parallel()

	trie := new(trie.Trie[int])

	for i := range 1000 {
		trie.Insert(strings.Repeat("a", i), i+1)
	}

	for i := range 1000 {
		k := strings.Repeat("a", i)
		_, v := trie.Get(k)
		assert.Equal(t, i+1, v, len(k))
	}
}
