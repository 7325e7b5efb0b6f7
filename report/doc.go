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

// Package report provides a diagnostics framework for Papyrus tooling.
//
// Problems found in user input are never Go errors: they are collected as
// [Diagnostic] values in a [Report], which a [Renderer] turns into
// human-readable text. An [Index] answers which diagnostics cover a given
// byte offset, which editors use for hover and code actions.
package report
