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
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
)

// Tags for the diagnostics the lexer and parser record on tokens.
const (
	TagMissing             report.Tag = "syntax-missing"
	TagUnexpected          report.Tag = "syntax-unexpected"
	TagInvalidCharacter    report.Tag = "syntax-invalid-character"
	TagUnterminatedString  report.Tag = "syntax-unterminated-string"
	TagUnterminatedComment report.Tag = "syntax-unterminated-comment"
	TagBadEscape           report.Tag = "syntax-bad-escape"
)

// Diagnose appends an error to r for every diagnostic recorded on a token of
// tree, with spans in file.
//
// file should hold the text of tree. Subtrees without diagnostics are not
// visited.
func Diagnose(tree Tree, file *source.File, r *report.Report) {
	var walk func(Red)
	walk = func(red Red) {
		if !red.Green().HasDiagnostics() {
			return
		}
		if tok := red.Token(); !tok.IsZero() {
			start := red.Start()
			for _, d := range tok.Diagnostics() {
				diagnostic := r.Errorf("%s", d.Message).With(d.Tag)
				span := file.Span(start+d.Start, start+d.End)
				if span.IsZero() {
					diagnostic.With(report.InFile(file.Path()))
					continue
				}
				diagnostic.With(report.Snippet(span))
			}
			return
		}
		for child := range red.Children() {
			walk(child)
		}
	}
	walk(tree.Navigate().Root())
}
