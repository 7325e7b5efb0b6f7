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

// Package dump renders syntax trees as YAML or JSON for inspection and golden
// tests.
//
// A dump derives only from element kinds, children and token accessors, so it
// shows exactly what a consumer of the tree sees.
package dump

import (
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
)

// Options configures a dump.
type Options struct {
	// Include the trivia pieces of each token.
	Trivia bool

	// Include the absolute [start, end) range of each element.
	Spans bool

	// Leave out placeholders for absent optional slots.
	SkipEmpty bool
}

// YAML dumps tree as a YAML document.
//
// Tokens are written in flow style, one per line.
func YAML(tree syntax.Tree, opts Options) (string, error) {
	d := dumper{Options: opts}
	root := d.element(tree.Navigate().Root())

	var out strings.Builder
	enc := yaml.NewEncoder(&out)
	enc.SetIndent(2)
	if err := enc.Encode(root.yaml()); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return out.String(), nil
}

// JSON dumps tree as a JSON document.
//
// The output is not byte-for-byte stable across versions of the encoder;
// compare dumps after decoding them.
func JSON(tree syntax.Tree, opts Options) ([]byte, error) {
	d := dumper{Options: opts}
	root := d.element(tree.Navigate().Root())
	return protojson.MarshalOptions{Multiline: true}.Marshal(root.proto())
}

// dumper builds a [doc] for each red element.
type dumper struct {
	Options
}

func (d dumper) element(r syntax.Red) *doc {
	out := new(doc)
	if tok := r.Token(); !tok.IsZero() {
		out.flow = true
		out.push("token", strings.TrimPrefix(tok.Kind().GoString(), "token."))
		if tok.IsMissing() {
			out.push("missing", true)
		} else {
			out.push("text", tok.Text())
		}
		if d.Trivia {
			if leading := trivia(tok.Leading()); leading != nil {
				out.push("leading", leading)
			}
			if trailing := trivia(tok.Trailing()); trailing != nil {
				out.push("trailing", trailing)
			}
		}
		if d.Spans {
			out.push("span", span(r))
		}
		if diags := tok.Diagnostics(); len(diags) > 0 {
			errors := &doc{array: true, flow: true}
			for _, diag := range diags {
				errors.push("", diag.Message)
			}
			out.push("errors", errors)
		}
		return out
	}

	out.push("kind", r.Kind().String())
	if d.Spans {
		out.push("span", span(r))
	}
	if r.NumChildren() == 0 {
		return out
	}

	children := &doc{array: true}
	for child := range r.Children() {
		if d.SkipEmpty && child.Kind() == syntax.KindEmpty {
			continue
		}
		children.push("", d.element(child))
	}
	out.push("children", children)
	return out
}

func trivia(pieces []syntax.Trivia) *doc {
	if len(pieces) == 0 {
		return nil
	}
	out := &doc{array: true, flow: true}
	for _, t := range pieces {
		piece := &doc{flow: true}
		piece.push(t.Kind.String(), t.Text)
		out.push("", piece)
	}
	return out
}

func span(r syntax.Red) *doc {
	out := &doc{array: true, flow: true}
	out.push("", r.Start())
	out.push("", r.End())
	return out
}
