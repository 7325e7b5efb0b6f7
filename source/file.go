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
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// File is a source code file.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path "".
type File struct {
	path, text string

	once sync.Once
	// The offset of the first byte of each line. lines[0] is always zero.
	lines []int
}

// Location is a user-displayable position within a [File].
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column, 1-indexed. The units of Column depend on the
	// [Unit] passed to [File.Location].
	Line, Column int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Len returns the length of this file in bytes.
func (f *File) Len() int {
	return len(f.Text())
}

// Lines returns the number of lines in this file. A file always has at least
// one line, even if it is empty.
func (f *File) Lines() int {
	return len(f.lineIndex())
}

// LineByOffset returns the zero-based line containing offset.
//
// This operation is O(log n).
func (f *File) LineByOffset(offset int) int {
	line, exact := slices.BinarySearch(f.lineIndex(), offset)
	if !exact {
		line--
	}
	return line
}

// LineOffsets returns the byte range of the given 1-indexed line, including
// its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lineIndex()
	if line == len(lines) {
		return lines[line-1], f.Len()
	}
	return lines[line-1], lines[line]
}

// Line returns the given 1-indexed line, including its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return f.Text()[start:end]
}

// Location converts a byte offset into a line and column.
//
// This operation is O(log n) in the number of lines.
func (f *File) Location(offset int, units Unit) Location {
	if f == nil || offset <= 0 {
		return Location{Line: 1, Column: 1}
	}
	offset = min(offset, f.Len())

	line := f.LineByOffset(offset)
	start := f.lineIndex()[line]
	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: Measure(f.text[start:offset], 0, units) + 1,
	}
}

// InverseLocation converts a 1-indexed line and column back into a
// [Location] with its byte offset filled in.
//
// Columns past the end of the line are clamped to the line's end. Panics if
// units is [TermWidth], which is not invertible.
func (f *File) InverseLocation(line, column int, units Unit) Location {
	if f == nil || line < 1 {
		return Location{Line: 1, Column: 1}
	}
	line = min(line, f.Lines())

	start, end := f.LineOffsets(line)
	chunk := strings.TrimSuffix(f.text[start:end], "\n")
	chunk = strings.TrimSuffix(chunk, "\r")

	offset := len(chunk)
	remaining := column - 1
	switch units {
	case Bytes:
		offset = min(max(remaining, 0), len(chunk))
	case Runes, UTF16:
		for i, r := range chunk {
			if remaining <= 0 {
				offset = i
				break
			}
			if units == UTF16 {
				remaining -= utf16.RuneLen(r)
			} else {
				remaining--
			}
		}
	case TermWidth:
		panic("papyrus/source: passed TermWidth to File.InverseLocation")
	}

	return Location{Offset: start + offset, Line: line, Column: column}
}

// Span is a shorthand for creating a new [Span].
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{File: f, Start: start, End: end}
}

// EOF returns the empty span at the end of this file.
func (f *File) EOF() Span {
	return f.Span(f.Len(), f.Len())
}

func (f *File) lineIndex() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		for i := range len(f.text) {
			if f.text[i] == '\n' {
				f.lines = append(f.lines, i+1)
			}
		}
	})
	return f.lines
}
