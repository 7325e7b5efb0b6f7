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

package parser

import (
	"slices"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// Parse parses a whole script into a new store.
func Parse(text string) syntax.Tree {
	return ParseInto(syntax.NewStore(), text)
}

// ParseInto parses a whole script into the given store.
func ParseInto(store *syntax.Store, text string) syntax.Tree {
	p := newParser(store, text)
	return syntax.NewTree(p.script())
}

// Fragment is the result of parsing a single production on its own.
type Fragment struct {
	// The production, or zero if none started in the text.
	Node syntax.Node

	// Whether the text held exactly the production: nothing was left over or
	// skipped after it, and no list inside it stopped at an outer
	// terminator.
	Complete bool
}

// ParseHeader parses text as a script header.
func ParseHeader(store *syntax.Store, text string) Fragment {
	p := newParser(store, text)
	header := p.header()
	return Fragment{Node: header.Node, Complete: p.done()}
}

// ParseDefinition parses text as a definition, nested in lists that end at
// the outer terminators.
//
// The text must start where a line may start.
func ParseDefinition(store *syntax.Store, text string, outer []token.Kind) Fragment {
	return parseItem(store, text, outer, startsDefinition, func(p *parser) syntax.Node {
		return p.definition().Node
	})
}

// ParseStatement parses text as a statement, nested in lists that end at the
// outer terminators.
//
// The text must start where a line may start.
func ParseStatement(store *syntax.Store, text string, outer []token.Kind) Fragment {
	return parseItem(store, text, outer, startsStatement, func(p *parser) syntax.Node {
		return p.statement().Node
	})
}

// parseItem parses text as a list, and reports whether it held exactly one
// item.
func parseItem(
	store *syntax.Store,
	text string,
	outer []token.Kind,
	starts func(*parser) bool,
	item func(*parser) syntax.Node,
) Fragment {
	p := newParser(store, text)
	p.push(outer)
	p.push(nil)

	var items []syntax.Node
	for p.more(starts) {
		items = append(items, item(p))
	}

	var f Fragment
	if len(items) > 0 {
		f.Node = items[0]
	}
	f.Complete = len(items) == 1 && !p.stoppedAtOuter && p.done()
	return f
}

// The terminators of each kind of block.
var (
	functionEnd = []token.Kind{token.EndFunction}
	eventEnd    = []token.Kind{token.EndEvent}
	propertyEnd = []token.Kind{token.EndProperty}
	stateEnd    = []token.Kind{token.EndState}
	ifEnd       = []token.Kind{token.ElseIf, token.Else, token.EndIf}
	elseEnd     = []token.Kind{token.EndIf}
	whileEnd    = []token.Kind{token.EndWhile}
)

// Terminators returns the keywords that end list, a statement or definition
// list, or nil if only the end of the file does.
func Terminators(list syntax.Red) []token.Kind {
	owner := list.Parent()
	switch owner.Kind() {
	case syntax.KindFunctionBody:
		if owner.Parent().Kind() == syntax.KindEventDefinition {
			return eventEnd
		}
		return functionEnd
	case syntax.KindPropertyBody:
		return propertyEnd
	case syntax.KindStateDefinition:
		return stateEnd
	case syntax.KindIfStatement, syntax.KindElseIfClause:
		return ifEnd
	case syntax.KindElseClause:
		return elseEnd
	case syntax.KindWhileStatement:
		return whileEnd
	default:
		return nil
	}
}

// OuterTerminators returns the keywords that end any list enclosing r.
//
// Parsing r's text with [ParseDefinition] or [ParseStatement] and these
// terminators behaves as parsing it in place would.
func OuterTerminators(r syntax.Red) []token.Kind {
	var outer []token.Kind
	for ancestor := range r.Ancestors() {
		switch ancestor.Kind() {
		case syntax.KindStatementList, syntax.KindDefinitionList:
			for _, kind := range Terminators(ancestor) {
				if !slices.Contains(outer, kind) {
					outer = append(outer, kind)
				}
			}
		}
	}
	return outer
}
