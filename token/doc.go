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

// Package token defines the lexical vocabulary of Papyrus: token kinds,
// trivia kinds, and the classification tables the parser consults.
//
// # Keywords
//
// Papyrus keywords are case-insensitive: "endfunction", "EndFunction" and
// "ENDFUNCTION" all lex as [EndFunction]. Use [Lookup] to map identifier
// text to a keyword kind.
//
// # Trivia
//
// Whitespace, comments and line continuations are not tokens. They are
// attached to the neighbouring token as leading or trailing trivia, so that
// concatenating every token's full text reproduces the source exactly.
package token

//go:generate go run github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/enum kind.yaml trivia.yaml
