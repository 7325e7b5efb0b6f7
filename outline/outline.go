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

// Package outline lists the symbols a script defines, for editor outlines and
// breadcrumbs.
package outline

import (
	"strings"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

//go:generate go run github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/enum kind.yaml

// Symbol is a named definition.
type Symbol struct {
	Name string
	Kind Kind

	// The definition's first line, with whitespace runs collapsed and
	// comments removed.
	Detail string

	// The byte range of the definition and of its name, without the
	// surrounding trivia.
	Start, End         int
	NameStart, NameEnd int

	// Definitions nested in this one: those of a state, or the accessors of
	// a full property.
	Children []Symbol
}

// Symbols returns the outline of tree: a [Script] symbol whose children are
// the top-level definitions.
//
// Definitions with a missing name are listed with an empty name.
func Symbols(tree syntax.Tree) Symbol {
	root := tree.Navigate().Root()
	header := root.Slot(syntax.ScriptSlotHeader)

	script := symbol(Script, header, header.Slot(syntax.ScriptHeaderSlotName), header)
	script.Start, script.End = codeRange(root)
	script.Children = definitions(root.Slot(syntax.ScriptSlotDefinitions))
	return script
}

// Enclosing returns the path of symbols from s down to the innermost one
// whose range contains offset, or nil if s does not contain it.
func (s Symbol) Enclosing(offset int) []Symbol {
	if offset < s.Start || offset >= s.End {
		return nil
	}
	path := []Symbol{s}
	for _, child := range s.Children {
		if inner := child.Enclosing(offset); inner != nil {
			return append(path, inner...)
		}
	}
	return path
}

// definitions lists the symbols of a definition list.
func definitions(list syntax.Red) []Symbol {
	var symbols []Symbol
	for def := range list.Children() {
		if sym := syntax.Transform[*Symbol](def.Green(), builder{red: def}); sym != nil {
			symbols = append(symbols, *sym)
		}
	}
	return symbols
}

// builder makes the symbol for a definition at red.
type builder struct {
	syntax.BaseTransformer[*Symbol]
	red syntax.Red
}

func (b builder) TransformImportStatement(syntax.ImportStatement) *Symbol {
	sym := symbol(Import, b.red, b.red.Slot(syntax.ImportStatementSlotName), b.red)
	return &sym
}

func (b builder) TransformVariableDefinition(syntax.VariableDefinition) *Symbol {
	sym := symbol(Variable, b.red, b.red.Slot(syntax.VariableDefinitionSlotName), b.red)
	return &sym
}

func (b builder) TransformPropertyDefinition(n syntax.PropertyDefinition) *Symbol {
	sym := symbol(Property, b.red, b.red.Slot(syntax.PropertyDefinitionSlotName), b.red)
	if !n.Body().IsZero() {
		body := b.red.Slot(syntax.PropertyDefinitionSlotBody)
		sym.Children = definitions(body.Slot(syntax.PropertyBodySlotDefinitions))
	}
	return &sym
}

func (b builder) TransformStateDefinition(syntax.StateDefinition) *Symbol {
	sym := symbol(State, b.red, b.red.Slot(syntax.StateDefinitionSlotName), b.red)
	sym.Children = definitions(b.red.Slot(syntax.StateDefinitionSlotDefinitions))
	return &sym
}

func (b builder) TransformFunctionDefinition(syntax.FunctionDefinition) *Symbol {
	header := b.red.Slot(syntax.FunctionDefinitionSlotHeader)
	sym := symbol(Function, b.red, header.Slot(syntax.FunctionHeaderSlotName), header)
	return &sym
}

func (b builder) TransformEventDefinition(syntax.EventDefinition) *Symbol {
	header := b.red.Slot(syntax.EventDefinitionSlotHeader)
	sym := symbol(Event, b.red, header.Slot(syntax.EventHeaderSlotName), header)
	return &sym
}

// symbol makes a symbol for def, named by the identifier at name and
// detailed by the first line of header.
func symbol(kind Kind, def, name, header syntax.Red) Symbol {
	sym := Symbol{
		Name:   name.Green().AsNode().AsIdentifier().Name().Text(),
		Kind:   kind,
		Detail: firstLine(header),
	}
	sym.Start, sym.End = codeRange(def)
	sym.NameStart, sym.NameEnd = codeRange(name)
	return sym
}

// codeRange returns the range of r without its leading and trailing trivia.
func codeRange(r syntax.Red) (start, end int) {
	first, last := r.FirstToken(), r.LastToken()
	if first.IsZero() {
		return r.Start(), r.Start()
	}
	start = first.Start() + first.Token().LeadingWidth()
	end = last.End() - last.Token().TrailingWidth()
	return start, max(start, end)
}

// firstLine returns the code of r up to its first newline token.
func firstLine(r syntax.Red) string {
	var b strings.Builder
	space := func(trivia []syntax.Trivia) {
		for _, t := range trivia {
			if t.Kind == token.Whitespace || t.Kind == token.LineContinuation {
				b.WriteByte(' ')
				return
			}
		}
	}

	first := true
	for tok := range r.Tokens() {
		t := tok.Token()
		if t.Kind() == token.Newline {
			break
		}
		if !first {
			space(t.Leading())
		}
		first = false
		b.WriteString(t.Text())
		space(t.Trailing())
	}
	return strings.TrimSpace(b.String())
}
