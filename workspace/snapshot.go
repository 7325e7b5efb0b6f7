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

package workspace

import (
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/outline"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/reparse"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
)

// Snapshot is one version of an open document.
//
// Snapshots are immutable.
type Snapshot struct {
	Path string

	// Starts at 1 when a document is opened and increases with every update.
	Version int

	Tree syntax.Tree

	// The document's text. This is tracked independently of Tree, by applying
	// each edit to the previous text.
	File *source.File

	// The syntax diagnostics of Tree, sorted by position.
	Report *report.Report

	// How Tree was derived from the previous snapshot. If an update applied
	// several edits, this is the most expensive mode used.
	Mode reparse.Mode

	index *report.Index
}

func newSnapshot(path, text string, version int, tree syntax.Tree, mode reparse.Mode) *Snapshot {
	file := source.NewFile(path, text)
	r := new(report.Report)
	syntax.Diagnose(tree, file, r)
	r.Sort()

	return &Snapshot{
		Path:    path,
		Version: version,
		Tree:    tree,
		File:    file,
		Report:  r,
		Mode:    mode,
		index:   r.Index(),
	}
}

// DiagnosticsAt returns the diagnostics whose spans cover offset.
func (s *Snapshot) DiagnosticsAt(offset int) []*report.Diagnostic {
	return s.index.At(offset)
}

// Symbols returns the outline of this snapshot.
func (s *Snapshot) Symbols() outline.Symbol {
	return outline.Symbols(s.Tree)
}
