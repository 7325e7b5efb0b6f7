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

// Package source provides source files and spans within them.
//
// A [File] is an immutable piece of Papyrus source text together with the
// book-keeping needed to turn byte offsets into editor coordinates. A [Span]
// is a byte range of some [File]; diagnostics and outlines are reported in
// terms of spans.
package source
