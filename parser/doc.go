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

// Package parser produces lossless Papyrus syntax trees.
//
// The lexer splits text into [Lexeme]s: a token's code text together with the
// trivia attached to it. Trivia up to and including the end of a token's line
// trails it; everything else leads the next token. A line break is a
// [token.Newline] only where it ends a line of code; blank lines and comment
// lines are trivia.
//
// The parser is a recursive-descent parser that never fails. Where it expects
// a token it does not find, it inserts a missing token carrying a diagnostic;
// tokens it cannot use are kept as [token.Skipped] trivia on the next token
// it does use. Every byte of the input ends up in exactly one token of the
// resulting tree.
//
// Besides whole scripts, the parser can parse one script header, definition
// or statement on its own, as incremental reparsing needs.
package parser
