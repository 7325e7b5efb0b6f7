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

package reparse

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by [Edit.Check] for an edit that does not fit the
// text it is applied to.
var ErrOutOfRange = errors.New("edit out of range")

// Edit replaces the bytes in [Start, End) with Text.
type Edit struct {
	Start, End int
	Text       string
}

// Delta returns how much the edit changes the length of the text.
func (e Edit) Delta() int {
	return len(e.Text) - (e.End - e.Start)
}

// IsEmpty returns whether the edit neither removes nor inserts anything.
func (e Edit) IsEmpty() bool {
	return e.Start == e.End && e.Text == ""
}

// Check returns an error wrapping [ErrOutOfRange] if the edit does not fit in
// a text of the given length.
func (e Edit) Check(length int) error {
	if e.Start < 0 || e.Start > e.End || e.End > length {
		return fmt.Errorf("%w: [%d, %d) in text of length %d", ErrOutOfRange, e.Start, e.End, length)
	}
	return nil
}

// Apply returns text with the edit applied.
//
// Panics if the edit is out of range.
func (e Edit) Apply(text string) string {
	if err := e.Check(len(text)); err != nil {
		panic(fmt.Sprintf("papyrus/reparse: %v", err))
	}
	return text[:e.Start] + e.Text + text[e.End:]
}

// String implements [fmt.Stringer].
func (e Edit) String() string {
	return fmt.Sprintf("[%d:%d]%q", e.Start, e.End, e.Text)
}
