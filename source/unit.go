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

package source

import "fmt"

// Unit is a unit of measurement for columns in a [Location].
type Unit int

const (
	// Bytes counts UTF-8 bytes.
	Bytes Unit = iota
	// Runes counts Unicode code points.
	Runes
	// UTF16 counts UTF-16 code units, as the Language Server Protocol does.
	UTF16
	// TermWidth counts terminal columns, expanding tabs to the next tabstop.
	TermWidth
)

// TabstopWidth is the width of a tabstop when measuring in [TermWidth].
const TabstopWidth = 4

// ParseUnit parses the name of a unit, as produced by [Unit.String].
func ParseUnit(name string) (Unit, error) {
	for u := Bytes; u <= TermWidth; u++ {
		if u.String() == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("papyrus/source: unknown column unit %q", name)
}

// String implements [fmt.Stringer].
func (u Unit) String() string {
	switch u {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	case UTF16:
		return "utf16"
	case TermWidth:
		return "width"
	default:
		return fmt.Sprintf("source.Unit(%d)", int(u))
	}
}
