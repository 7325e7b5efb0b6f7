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

// statements parses statements up to one of terminators.
func (p *parser) statements(terminators []token.Kind) syntax.StatementList {
	p.push(terminators)
	defer p.pop()

	var stmts []syntax.Statement
	for p.more(startsStatement) {
		stmts = append(stmts, p.statement())
	}
	return p.nodes.NewStatementList(stmts...)
}

func startsStatement(p *parser) bool {
	switch kind := p.peek(); kind {
	case token.Return, token.If, token.While:
		return true
	default:
		return kind.IsBuiltinType() || startsExpr(kind)
	}
}

func (p *parser) statement() syntax.Statement {
	switch p.peek() {
	case token.Return:
		keyword := p.take()
		var value syntax.Expr
		if startsExpr(p.peek()) {
			value = p.expr()
		}
		return p.nodes.NewReturnStatement(syntax.ReturnStatementArgs{
			Keyword: keyword,
			Value:   value,
			Newline: p.expectNewline(),
		}).AsStatement()
	case token.If:
		return p.ifStatement()
	case token.While:
		return p.whileStatement()
	}

	if p.startsLocal() {
		return p.nodes.NewLocalVariableStatement(syntax.LocalVariableStatementArgs{
			Type:        p.typ(),
			Name:        p.name("variable name"),
			Initializer: p.initializer(),
			Newline:     p.expectNewline(),
		}).AsStatement()
	}

	target := p.expr()
	if p.peek().IsAssignment() {
		return p.nodes.NewAssignmentStatement(syntax.AssignmentStatementArgs{
			Target:   target,
			Operator: p.take(),
			Value:    p.expr(),
			Newline:  p.expectNewline(),
		}).AsStatement()
	}
	return p.nodes.NewExpressionStatement(syntax.ExpressionStatementArgs{
		Expression: target,
		Newline:    p.expectNewline(),
	}).AsStatement()
}

// startsLocal returns whether a local variable declaration follows: a
// builtin type, or a script type followed by a name.
func (p *parser) startsLocal() bool {
	switch {
	case p.peek().IsBuiltinType():
		return true
	case p.peek() != token.Identifier:
		return false
	case p.peekN(1) == token.Identifier:
		return true
	default:
		return p.peekN(1) == token.LBracket &&
			p.peekN(2) == token.RBracket &&
			p.peekN(3) == token.Identifier
	}
}

func (p *parser) ifStatement() syntax.Statement {
	args := syntax.IfStatementArgs{
		Keyword:   p.take(),
		Condition: p.expr(),
		Newline:   p.expectNewline(),
	}
	args.Statements = p.statements(ifEnd)

	var clauses []syntax.ElseIfClause
	for p.peek() == token.ElseIf {
		clause := syntax.ElseIfClauseArgs{
			Keyword:   p.take(),
			Condition: p.expr(),
			Newline:   p.expectNewline(),
		}
		clause.Statements = p.statements(ifEnd)
		clauses = append(clauses, p.nodes.NewElseIfClause(clause))
	}
	args.ElseIfs = p.nodes.NewElseIfList(clauses...)

	if p.peek() == token.Else {
		clause := syntax.ElseClauseArgs{
			Keyword: p.take(),
			Newline: p.expectNewline(),
		}
		clause.Statements = p.statements(elseEnd)
		args.Else = p.nodes.NewElseClause(clause)
	}

	args.EndKeyword = p.expect(token.EndIf)
	args.EndNewline = p.endNewline(args.EndKeyword)
	return p.nodes.NewIfStatement(args).AsStatement()
}

func (p *parser) whileStatement() syntax.Statement {
	args := syntax.WhileStatementArgs{
		Keyword:   p.take(),
		Condition: p.expr(),
		Newline:   p.expectNewline(),
	}
	args.Statements = p.statements(whileEnd)
	args.EndKeyword = p.expect(token.EndWhile)
	args.EndNewline = p.endNewline(args.EndKeyword)
	return p.nodes.NewWhileStatement(args).AsStatement()
}
