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

// Package reparse applies text edits to syntax trees incrementally.
//
// [Reparse] tries the cheapest strategy that gives the same tree a full parse
// of the edited text would. It relexes a single token when the edit stays
// inside one, reparses the smallest enclosing header, definition or statement
// when that can be done standalone, and otherwise parses the whole text
// again. Everything outside the rebuilt region is shared with the old tree.
package reparse

//go:generate go run github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/enum mode.yaml
