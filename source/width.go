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

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Measure returns the length of text in the given units.
//
// column is the zero-based terminal column text starts at; it only matters
// for [TermWidth], where tabs advance to the next tabstop.
func Measure(text string, column int, units Unit) int {
	switch units {
	case Bytes:
		return len(text)
	case Runes:
		return utf8.RuneCountInString(text)
	case UTF16:
		var n int
		for _, r := range text {
			n += utf16.RuneLen(r)
		}
		return n
	case TermWidth:
		return termWidth(text, column) - column
	default:
		panic("papyrus/source: invalid unit " + units.String())
	}
}

// termWidth returns the column reached after writing text at column.
func termWidth(text string, column int) int {
	for {
		tab := strings.IndexByte(text, '\t')
		if tab < 0 {
			return column + uniseg.StringWidth(text)
		}
		column += uniseg.StringWidth(text[:tab])
		column += TabstopWidth - column%TabstopWidth
		text = text[tab+1:]
	}
}
