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

func startsExpr(kind token.Kind) bool {
	switch kind {
	case token.Identifier, token.Self, token.Parent,
		token.LParen, token.Minus, token.Not, token.New:
		return true
	default:
		return kind.IsLiteral()
	}
}

// expr parses an expression.
//
// Operator precedence, from loosest to tightest: binary operators by
// [token.Kind.Precedence], then prefix operators, then As casts, then member
// access, indexing and calls.
func (p *parser) expr() syntax.Expr {
	return p.binary(1)
}

func (p *parser) binary(minPrec int) syntax.Expr {
	left := p.unary()
	for {
		prec := p.peek().Precedence()
		if prec == 0 || prec < minPrec {
			return left
		}
		left = p.nodes.NewBinaryExpression(syntax.BinaryExpressionArgs{
			Left:     left,
			Operator: p.take(),
			Right:    p.binary(prec + 1),
		}).AsExpr()
	}
}

func (p *parser) unary() syntax.Expr {
	switch p.peek() {
	case token.Minus, token.Not:
		return p.nodes.NewUnaryExpression(syntax.UnaryExpressionArgs{
			Operator: p.take(),
			Operand:  p.unary(),
		}).AsExpr()
	default:
		return p.cast()
	}
}

func (p *parser) cast() syntax.Expr {
	expr := p.postfix()
	for p.peek() == token.As {
		expr = p.nodes.NewCastExpression(syntax.CastExpressionArgs{
			Operand: expr,
			Keyword: p.take(),
			Type:    p.typ(),
		}).AsExpr()
	}
	return expr
}

func (p *parser) postfix() syntax.Expr {
	expr := p.primary()
	for {
		switch p.peek() {
		case token.Dot:
			expr = p.nodes.NewMemberAccessExpression(syntax.MemberAccessExpressionArgs{
				Receiver: expr,
				Dot:      p.take(),
				Member:   p.name("member name"),
			}).AsExpr()

		case token.LBracket:
			expr = p.nodes.NewArrayIndexExpression(syntax.ArrayIndexExpressionArgs{
				Array: expr,
				Open:  p.take(),
				Index: p.expr(),
				Close: p.expect(token.RBracket),
			}).AsExpr()

		case token.LParen:
			expr = p.nodes.NewCallExpression(syntax.CallExpressionArgs{
				Callee:    expr,
				Open:      p.take(),
				Arguments: p.arguments(),
				Close:     p.expect(token.RParen),
			}).AsExpr()

		default:
			return expr
		}
	}
}

func (p *parser) arguments() syntax.ArgumentList {
	if !startsExpr(p.peek()) {
		return p.nodes.NewArgumentList(nil, nil)
	}

	var (
		args   []syntax.Argument
		commas []syntax.Token
	)
	for {
		var name syntax.ArgumentName
		if p.peek() == token.Identifier && p.peekN(1) == token.Assign {
			name = p.nodes.NewArgumentName(syntax.ArgumentNameArgs{
				Name:   p.name("argument name"),
				Equals: p.take(),
			})
		}
		args = append(args, p.nodes.NewArgument(syntax.ArgumentArgs{
			Name:  name,
			Value: p.expr(),
		}))
		if p.peek() != token.Comma {
			break
		}
		commas = append(commas, p.take())
	}
	return p.nodes.NewArgumentList(args, commas)
}

// primary parses an operand.
//
// Where no operand starts, the result is an identifier holding a missing
// token, or holding an error token if the input is invalid there.
func (p *parser) primary() syntax.Expr {
	switch kind := p.peek(); {
	case kind.IsLiteral():
		return p.nodes.NewLiteralExpression(syntax.LiteralExpressionArgs{Value: p.take()}).AsExpr()

	case kind == token.Identifier, kind == token.Self, kind == token.Parent, kind == token.Unknown:
		return p.nodes.NewIdentifier(syntax.IdentifierArgs{Name: p.take()}).AsExpr()

	case kind == token.LParen:
		return p.nodes.NewParenthesizedExpression(syntax.ParenthesizedExpressionArgs{
			Open:       p.take(),
			Expression: p.expr(),
			Close:      p.expect(token.RParen),
		}).AsExpr()

	case kind == token.New:
		keyword := p.take()
		var elem syntax.Token
		if p.peek().IsTypeName() {
			elem = p.take()
		} else {
			elem = p.missing(token.Identifier, "element type")
		}
		return p.nodes.NewNewArrayExpression(syntax.NewArrayExpressionArgs{
			Keyword:     keyword,
			ElementType: elem,
			Open:        p.expect(token.LBracket),
			Size:        p.expr(),
			Close:       p.expect(token.RBracket),
		}).AsExpr()

	default:
		return p.nodes.NewIdentifier(syntax.IdentifierArgs{
			Name: p.missing(token.Identifier, "expression"),
		}).AsExpr()
	}
}
