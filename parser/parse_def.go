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
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// script parses a whole file.
func (p *parser) script() syntax.Script {
	header := p.header()
	definitions := p.definitions(nil)
	return p.nodes.NewScript(syntax.ScriptArgs{
		Header:      header,
		Definitions: definitions,
		EndOfFile:   p.take(),
	})
}

// header parses the ScriptName line.
//
// A file without one gets a header made of missing tokens, with a single
// diagnostic.
func (p *parser) header() syntax.ScriptHeader {
	if p.peek() != token.ScriptName {
		return p.nodes.NewScriptHeader(syntax.ScriptHeaderArgs{
			Keyword: p.missing(token.ScriptName, token.ScriptName.Describe()),
			Name:    p.nodes.NewIdentifier(syntax.IdentifierArgs{Name: p.elided(token.Identifier)}),
			Flags:   p.nodes.NewFlagList(),
			Newline: p.elided(token.Newline),
		})
	}

	keyword := p.take()
	name := p.name("script name")
	var extends syntax.ExtendsClause
	if p.peek() == token.Extends {
		extends = p.nodes.NewExtendsClause(syntax.ExtendsClauseArgs{
			Keyword: p.take(),
			Name:    p.name("parent script name"),
		})
	}
	return p.nodes.NewScriptHeader(syntax.ScriptHeaderArgs{
		Keyword: keyword,
		Name:    name,
		Extends: extends,
		Flags:   p.flags(),
		Newline: p.expectNewline(),
	})
}

// definitions parses definitions up to one of terminators.
func (p *parser) definitions(terminators []token.Kind) syntax.DefinitionList {
	p.push(terminators)
	defer p.pop()

	var defs []syntax.Definition
	for p.more(startsDefinition) {
		defs = append(defs, p.definition())
	}
	return p.nodes.NewDefinitionList(defs...)
}

func startsDefinition(p *parser) bool {
	switch kind := p.peek(); {
	case kind == token.Import, kind == token.Function, kind == token.Event, kind == token.State:
		return true
	case kind == token.Auto:
		return p.peekN(1) == token.State
	default:
		return kind.IsTypeName()
	}
}

func (p *parser) definition() syntax.Definition {
	switch p.peek() {
	case token.Import:
		return p.nodes.NewImportStatement(syntax.ImportStatementArgs{
			Keyword: p.take(),
			Name:    p.name("script name"),
			Newline: p.expectNewline(),
		}).AsDefinition()
	case token.Function:
		return p.function(syntax.TypeIdentifier{})
	case token.Event:
		return p.event()
	case token.State, token.Auto:
		return p.state()
	}

	typ := p.typ()
	switch p.peek() {
	case token.Function:
		return p.function(typ)
	case token.Property:
		return p.property(typ)
	default:
		return p.variable(typ)
	}
}

func (p *parser) state() syntax.Definition {
	var flags []syntax.Token
	if p.peek() == token.Auto {
		flags = append(flags, p.take())
	}

	args := syntax.StateDefinitionArgs{
		Flags:   p.nodes.NewFlagList(flags...),
		Keyword: p.take(),
		Name:    p.name("state name"),
		Newline: p.expectNewline(),
	}
	args.Definitions = p.definitions(stateEnd)
	args.EndKeyword = p.expect(token.EndState)
	args.EndNewline = p.endNewline(args.EndKeyword)
	return p.nodes.NewStateDefinition(args).AsDefinition()
}

// function parses a function, whose return type has already been parsed.
//
// Native functions have no body.
func (p *parser) function(returnType syntax.TypeIdentifier) syntax.Definition {
	header := p.nodes.NewFunctionHeader(syntax.FunctionHeaderArgs{
		ReturnType: returnType,
		Keyword:    p.take(),
		Name:       p.name("function name"),
		Open:       p.expect(token.LParen),
		Parameters: p.parameters(),
		Close:      p.expect(token.RParen),
		Flags:      p.flags(),
		Newline:    p.expectNewline(),
	})

	var body syntax.FunctionBody
	if !header.Flags().Has(token.Native) {
		body = p.functionBody(functionEnd)
	}
	return p.nodes.NewFunctionDefinition(syntax.FunctionDefinitionArgs{
		Header: header,
		Body:   body,
	}).AsDefinition()
}

func (p *parser) event() syntax.Definition {
	header := p.nodes.NewEventHeader(syntax.EventHeaderArgs{
		Keyword:    p.take(),
		Name:       p.name("event name"),
		Open:       p.expect(token.LParen),
		Parameters: p.parameters(),
		Close:      p.expect(token.RParen),
		Flags:      p.flags(),
		Newline:    p.expectNewline(),
	})

	var body syntax.FunctionBody
	if !header.Flags().Has(token.Native) {
		body = p.functionBody(eventEnd)
	}
	return p.nodes.NewEventDefinition(syntax.EventDefinitionArgs{
		Header: header,
		Body:   body,
	}).AsDefinition()
}

// functionBody parses the statements of a function or event through its end
// keyword, the only one of terminators.
func (p *parser) functionBody(terminators []token.Kind) syntax.FunctionBody {
	statements := p.statements(terminators)
	keyword := p.expect(terminators[0])
	return p.nodes.NewFunctionBody(syntax.FunctionBodyArgs{
		Statements: statements,
		EndKeyword: keyword,
		Newline:    p.endNewline(keyword),
	})
}

func (p *parser) parameters() syntax.ParameterList {
	if !p.peek().IsTypeName() {
		return p.nodes.NewParameterList(nil, nil)
	}

	var (
		params []syntax.Parameter
		commas []syntax.Token
	)
	for {
		params = append(params, p.nodes.NewParameter(syntax.ParameterArgs{
			Type:    p.typ(),
			Name:    p.name("parameter name"),
			Default: p.initializer(),
		}))
		if p.peek() != token.Comma {
			break
		}
		commas = append(commas, p.take())
	}
	return p.nodes.NewParameterList(params, commas)
}

// property parses a property, whose type has already been parsed.
//
// Auto properties have no body; full properties hold Get and Set functions.
func (p *parser) property(typ syntax.TypeIdentifier) syntax.Definition {
	args := syntax.PropertyDefinitionArgs{
		Type:        typ,
		Keyword:     p.take(),
		Name:        p.name("property name"),
		Initializer: p.initializer(),
		Flags:       p.flags(),
		Newline:     p.expectNewline(),
	}
	if !args.Flags.Has(token.Auto) && !args.Flags.Has(token.AutoReadOnly) {
		definitions := p.definitions(propertyEnd)
		keyword := p.expect(token.EndProperty)
		args.Body = p.nodes.NewPropertyBody(syntax.PropertyBodyArgs{
			Definitions: definitions,
			EndKeyword:  keyword,
			Newline:     p.endNewline(keyword),
		})
	}
	return p.nodes.NewPropertyDefinition(args).AsDefinition()
}

// variable parses a script variable, whose type has already been parsed.
func (p *parser) variable(typ syntax.TypeIdentifier) syntax.Definition {
	return p.nodes.NewVariableDefinition(syntax.VariableDefinitionArgs{
		Type:        typ,
		Name:        p.name("variable name"),
		Initializer: p.initializer(),
		Flags:       p.flags(),
		Newline:     p.expectNewline(),
	}).AsDefinition()
}
