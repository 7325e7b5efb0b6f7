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
	"errors"
	"fmt"
)

// ErrWidthMismatch is returned by [Node.Verify] when a node's cached width is
// not the sum of its children's widths.
var ErrWidthMismatch = errors.New("width mismatch")

// Verify re-derives the widths of n and its descendants from their tokens,
// and returns an error wrapping [ErrWidthMismatch] for the first node whose
// cached width disagrees.
func (n Node) Verify() error {
	_, err := verify(n.Element(), 0)
	return err
}

func verify(e Element, offset int) (int, error) {
	if tok := e.AsToken(); !tok.IsZero() {
		raw := tok.raw()
		width := triviaWidth(raw.leading) + len(raw.text) + triviaWidth(raw.trailing)
		if width != raw.width {
			return 0, fmt.Errorf("%w: %v at offset %d has width %d, want %d", ErrWidthMismatch, tok, offset, raw.width, width)
		}
		return width, nil
	}

	n := e.AsNode()
	var width int
	for child := range n.Children() {
		w, err := verify(child, offset+width)
		if err != nil {
			return 0, err
		}
		width += w
	}
	if width != n.Width() {
		return 0, fmt.Errorf("%w: %v at offset %d has width %d, want %d", ErrWidthMismatch, n, offset, n.Width(), width)
	}
	return width, nil
}
