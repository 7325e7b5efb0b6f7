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

// Package syntax is the lossless syntax tree for Papyrus scripts.
//
// # Green elements
//
// A green element is either a [Token] or a [Node]. Green elements are
// immutable, know their width but not their position, and live in a [Store]
// that addresses them by a stable [ID]. Because nothing is ever mutated, the
// same green subtree may be shared by several versions of a document: an edit
// builds new nodes along the path from the edited token to the root and
// reuses everything else by ID.
//
// Every source byte belongs to exactly one token. Whitespace and comments
// are [Trivia] attached to the neighbouring token, so concatenating the full
// text of every token in order reproduces the source exactly.
//
// Grammar productions that were expected but not found are represented by
// missing tokens, which are zero-width and usually carry a [Diagnostic].
// Optional slots that are absent hold a node of kind [KindEmpty], so that the
// child sequence of a node is always positional.
//
// # Views
//
// [Node] is a generic view. Each production also has a typed view, such as
// [FunctionHeader], which names its slots. Views are values and cost nothing
// to create.
//
// # Red elements
//
// A [Red] element is a green element at an absolute position with a parent.
// Red elements are created lazily by a [Navigator], which is owned by a single
// traversal and thrown away with it.
//
// # Dispatch
//
// [Visitor] and [Transformer] have one method per [Kind]. A new kind
// therefore breaks every implementation until it handles the kind, rather
// than being silently skipped.
package syntax

//go:generate go run github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/enum kind.yaml
