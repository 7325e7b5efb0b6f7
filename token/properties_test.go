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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

func TestPunct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		kind token.Kind
		n    int
	}{
		{"+= 1", token.PlusAssign, 2},
		{"+1", token.Plus, 1},
		{"==", token.Equal, 2},
		{"= =", token.Assign, 1},
		{"!x", token.Not, 1},
		{"&&&", token.AndAnd, 2},
		{"&", token.Unknown, 0},
		{"abc", token.Unknown, 0},
		{"", token.Unknown, 0},
	}
	for _, test := range tests {
		kind, n := token.Punct(test.text)
		assert.Equal(t, test.kind, kind, "%q", test.text)
		assert.Equal(t, test.n, n, "%q", test.text)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, token.EndFunction, token.Lookup("endfunction"))
	assert.Equal(t, token.EndFunction, token.Lookup("ENDFUNCTION"))
	assert.Equal(t, token.Identifier, token.Lookup("EndFunctions"))
	assert.Equal(t, "EndFunction", token.EndFunction.String())
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "`)`", token.RParen.Describe())
	assert.Equal(t, "`EndIf`", token.EndIf.Describe())
	assert.Equal(t, "newline", token.Newline.Describe())
	assert.Equal(t, "end of file", token.EndOfFile.Describe())
	assert.Equal(t, "token.EndOfFile", token.EndOfFile.GoString())
}

func TestKindsAreClassified(t *testing.T) {
	t.Parallel()

	for k := range token.Kind(token.KindCount) {
		assert.True(t, k == token.Unknown || k.IsValid(), "%#v", k)
		assert.False(t, k.IsPunct() && k.IsKeyword(), "%#v", k)
	}
}
