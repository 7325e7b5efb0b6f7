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
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/interval"
)

// Index answers which diagnostics cover a byte offset.
//
// Diagnostics without a primary span are not indexed. A diagnostic with an
// empty span covers the offset it points at.
type Index struct {
	spans interval.Intersect[int, *Diagnostic]
	count int
}

// At returns the diagnostics whose primary span covers offset, in the order
// they were reported.
func (i *Index) At(offset int) []*Diagnostic {
	return i.spans.Get(offset).Value
}

// Len returns the number of diagnostics in this index.
func (i *Index) Len() int {
	return i.count
}

func (i *Index) add(d *Diagnostic) {
	span := d.Primary()
	if span.IsZero() {
		return
	}
	// Intervals are closed.
	i.spans.Insert(span.Start, max(span.Start, span.End-1), d)
	i.count++
}
