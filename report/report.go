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

package report

import (
	"cmp"
	"fmt"
	"slices"
)

// Report is a collection of diagnostics.
//
// A zero Report is ready to use.
type Report struct {
	Diagnostics []*Diagnostic
}

// Errorf pushes a new error diagnostic with the given message.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(Error, fmt.Sprintf(format, args...))
}

// Warnf pushes a new warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(Warning, fmt.Sprintf(format, args...))
}

// Remarkf pushes a new remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(Remark, fmt.Sprintf(format, args...))
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	return len(r.Diagnostics)
}

// Count returns the number of diagnostics at the given level.
func (r *Report) Count(level Level) int {
	var n int
	for _, d := range r.Diagnostics {
		if d.level == level {
			n++
		}
	}
	return n
}

// HasErrors returns whether this report contains any errors.
func (r *Report) HasErrors() bool {
	return r.Count(Error) > 0
}

// Tags returns the tag of every diagnostic, in order. Useful in tests.
func (r *Report) Tags() []Tag {
	tags := make([]Tag, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		tags[i] = d.tag
	}
	return tags
}

// Sort sorts the diagnostics by path, then by primary span, then by level.
//
// The sort is stable, so diagnostics at the same place keep the order they
// were reported in.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b *Diagnostic) int {
		if n := cmp.Compare(a.Path(), b.Path()); n != 0 {
			return n
		}
		sa, sb := a.Primary(), b.Primary()
		if n := cmp.Compare(sa.Start, sb.Start); n != 0 {
			return n
		}
		if n := cmp.Compare(sa.End, sb.End); n != 0 {
			return n
		}
		return cmp.Compare(a.level, b.level)
	})
}

// Index builds an [Index] over the current contents of this report.
func (r *Report) Index() *Index {
	idx := new(Index)
	for _, d := range r.Diagnostics {
		idx.add(d)
	}
	return idx
}

func (r *Report) push(level Level, msg string) *Diagnostic {
	d := &Diagnostic{level: level, message: msg}
	r.Diagnostics = append(r.Diagnostics, d)
	return d
}
