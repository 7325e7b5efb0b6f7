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

package syntax

import (
	"fmt"
	"iter"
)

// BinaryExpression is an infix operator applied to two operands.
type BinaryExpression struct{ Node }

// Slots of [BinaryExpression], for use with [Node.Child] and [Red.Child].
const (
	BinaryExpressionSlotLeft = iota
	BinaryExpressionSlotOperator
	BinaryExpressionSlotRight
)

func (n BinaryExpression) Left() Expr { return Expr{n.node(BinaryExpressionSlotLeft)} }
func (n BinaryExpression) Operator() Token { return n.token(BinaryExpressionSlotOperator) }
func (n BinaryExpression) Right() Expr { return Expr{n.node(BinaryExpressionSlotRight)} }

// BinaryExpressionArgs holds the children of a new [BinaryExpression].
type BinaryExpressionArgs struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// NewBinaryExpression allocates a new [BinaryExpression].
func (n Nodes) NewBinaryExpression(args BinaryExpressionArgs) BinaryExpression {
	return BinaryExpression{n.store.NewNode(KindBinaryExpression,
		args.Left.Element(),
		args.Operator.Element(),
		args.Right.Element(),
	)}
}

// UnaryExpression is - or ! applied to an operand.
type UnaryExpression struct{ Node }

// Slots of [UnaryExpression], for use with [Node.Child] and [Red.Child].
const (
	UnaryExpressionSlotOperator = iota
	UnaryExpressionSlotOperand
)

func (n UnaryExpression) Operator() Token { return n.token(UnaryExpressionSlotOperator) }
func (n UnaryExpression) Operand() Expr { return Expr{n.node(UnaryExpressionSlotOperand)} }

// UnaryExpressionArgs holds the children of a new [UnaryExpression].
type UnaryExpressionArgs struct {
	Operator Token
	Operand  Expr
}

// NewUnaryExpression allocates a new [UnaryExpression].
func (n Nodes) NewUnaryExpression(args UnaryExpressionArgs) UnaryExpression {
	return UnaryExpression{n.store.NewNode(KindUnaryExpression,
		args.Operator.Element(),
		args.Operand.Element(),
	)}
}

// CastExpression converts a value with As.
type CastExpression struct{ Node }

// Slots of [CastExpression], for use with [Node.Child] and [Red.Child].
const (
	CastExpressionSlotOperand = iota
	CastExpressionSlotKeyword
	CastExpressionSlotType
)

func (n CastExpression) Operand() Expr { return Expr{n.node(CastExpressionSlotOperand)} }
func (n CastExpression) Keyword() Token { return n.token(CastExpressionSlotKeyword) }
func (n CastExpression) Type() TypeIdentifier { return TypeIdentifier{n.node(CastExpressionSlotType)} }

// CastExpressionArgs holds the children of a new [CastExpression].
type CastExpressionArgs struct {
	Operand Expr
	Keyword Token
	Type    TypeIdentifier
}

// NewCastExpression allocates a new [CastExpression].
func (n Nodes) NewCastExpression(args CastExpressionArgs) CastExpression {
	return CastExpression{n.store.NewNode(KindCastExpression,
		args.Operand.Element(),
		args.Keyword.Element(),
		args.Type.Element(),
	)}
}

// MemberAccessExpression accesses a property or function of a value.
type MemberAccessExpression struct{ Node }

// Slots of [MemberAccessExpression], for use with [Node.Child] and [Red.Child].
const (
	MemberAccessExpressionSlotReceiver = iota
	MemberAccessExpressionSlotDot
	MemberAccessExpressionSlotMember
)

func (n MemberAccessExpression) Receiver() Expr { return Expr{n.node(MemberAccessExpressionSlotReceiver)} }
func (n MemberAccessExpression) Dot() Token { return n.token(MemberAccessExpressionSlotDot) }
func (n MemberAccessExpression) Member() Identifier { return Identifier{n.node(MemberAccessExpressionSlotMember)} }

// MemberAccessExpressionArgs holds the children of a new [MemberAccessExpression].
type MemberAccessExpressionArgs struct {
	Receiver Expr
	Dot      Token
	Member   Identifier
}

// NewMemberAccessExpression allocates a new [MemberAccessExpression].
func (n Nodes) NewMemberAccessExpression(args MemberAccessExpressionArgs) MemberAccessExpression {
	return MemberAccessExpression{n.store.NewNode(KindMemberAccessExpression,
		args.Receiver.Element(),
		args.Dot.Element(),
		args.Member.Element(),
	)}
}

// ArrayIndexExpression reads an array element.
type ArrayIndexExpression struct{ Node }

// Slots of [ArrayIndexExpression], for use with [Node.Child] and [Red.Child].
const (
	ArrayIndexExpressionSlotArray = iota
	ArrayIndexExpressionSlotOpen
	ArrayIndexExpressionSlotIndex
	ArrayIndexExpressionSlotClose
)

func (n ArrayIndexExpression) Array() Expr { return Expr{n.node(ArrayIndexExpressionSlotArray)} }
func (n ArrayIndexExpression) Open() Token { return n.token(ArrayIndexExpressionSlotOpen) }
func (n ArrayIndexExpression) Index() Expr { return Expr{n.node(ArrayIndexExpressionSlotIndex)} }
func (n ArrayIndexExpression) Close() Token { return n.token(ArrayIndexExpressionSlotClose) }

// ArrayIndexExpressionArgs holds the children of a new [ArrayIndexExpression].
type ArrayIndexExpressionArgs struct {
	Array Expr
	Open  Token
	Index Expr
	Close Token
}

// NewArrayIndexExpression allocates a new [ArrayIndexExpression].
func (n Nodes) NewArrayIndexExpression(args ArrayIndexExpressionArgs) ArrayIndexExpression {
	return ArrayIndexExpression{n.store.NewNode(KindArrayIndexExpression,
		args.Array.Element(),
		args.Open.Element(),
		args.Index.Element(),
		args.Close.Element(),
	)}
}

// CallExpression calls a function.
type CallExpression struct{ Node }

// Slots of [CallExpression], for use with [Node.Child] and [Red.Child].
const (
	CallExpressionSlotCallee = iota
	CallExpressionSlotOpen
	CallExpressionSlotArguments
	CallExpressionSlotClose
)

func (n CallExpression) Callee() Expr { return Expr{n.node(CallExpressionSlotCallee)} }
func (n CallExpression) Open() Token { return n.token(CallExpressionSlotOpen) }
func (n CallExpression) Arguments() ArgumentList { return ArgumentList{n.node(CallExpressionSlotArguments)} }
func (n CallExpression) Close() Token { return n.token(CallExpressionSlotClose) }

// CallExpressionArgs holds the children of a new [CallExpression].
type CallExpressionArgs struct {
	Callee    Expr
	Open      Token
	Arguments ArgumentList
	Close     Token
}

// NewCallExpression allocates a new [CallExpression].
func (n Nodes) NewCallExpression(args CallExpressionArgs) CallExpression {
	return CallExpression{n.store.NewNode(KindCallExpression,
		args.Callee.Element(),
		args.Open.Element(),
		args.Arguments.Element(),
		args.Close.Element(),
	)}
}

// ArgumentList is the comma-separated arguments of a call.
type ArgumentList struct{ Node }

// Len returns the number of arguments in this list.
func (n ArgumentList) Len() int { return (n.NumChildren() + 1) / 2 }

// At returns the ith element of this list.
func (n ArgumentList) At(i int) Argument { return Argument{n.node(2 * i)} }

// Comma returns the comma after the ith element.
//
// Panics if i is the last element.
func (n ArgumentList) Comma(i int) Token { return n.token(2*i + 1) }

// All returns the elements of this list in order.
func (n ArgumentList) All() iter.Seq[Argument] {
	return func(yield func(Argument) bool) {
		for i := range n.Len() {
			if !yield(n.At(i)) {
				return
			}
		}
	}
}

// NewArgumentList allocates a new [ArgumentList]. There must be one fewer comma than
// elements, or none if there are no elements.
func (n Nodes) NewArgumentList(elems []Argument, commas []Token) ArgumentList {
	if len(commas) != max(len(elems)-1, 0) {
		panic(fmt.Sprintf("papyrus/syntax: %d commas for %d elements of ArgumentList", len(commas), len(elems)))
	}
	children := make([]Element, 0, len(elems)+len(commas))
	for i, elem := range elems {
		if i > 0 {
			children = append(children, commas[i-1].Element())
		}
		children = append(children, elem.Element())
	}
	return ArgumentList{n.store.NewNode(KindArgumentList, children...)}
}

// Argument is a call argument, optionally named.
type Argument struct{ Node }

// Slots of [Argument], for use with [Node.Child] and [Red.Child].
const (
	ArgumentSlotName = iota
	ArgumentSlotValue
)

// Name returns the name = prefix, or a zero [ArgumentName] for a
// positional argument.
func (n Argument) Name() ArgumentName { return ArgumentName{n.optional(ArgumentSlotName)} }

func (n Argument) Value() Expr { return Expr{n.node(ArgumentSlotValue)} }

// ArgumentArgs holds the children of a new [Argument].
// Zero optional children are filled with [KindEmpty] nodes.
type ArgumentArgs struct {
	Name  ArgumentName // Optional.
	Value Expr
}

// NewArgument allocates a new [Argument].
func (n Nodes) NewArgument(args ArgumentArgs) Argument {
	return Argument{n.store.NewNode(KindArgument,
		n.opt(args.Name.Node),
		args.Value.Element(),
	)}
}

// ArgumentName is the name = prefix of a named argument.
type ArgumentName struct{ Node }

// Slots of [ArgumentName], for use with [Node.Child] and [Red.Child].
const (
	ArgumentNameSlotName = iota
	ArgumentNameSlotEquals
)

func (n ArgumentName) Name() Identifier { return Identifier{n.node(ArgumentNameSlotName)} }
func (n ArgumentName) Equals() Token { return n.token(ArgumentNameSlotEquals) }

// ArgumentNameArgs holds the children of a new [ArgumentName].
type ArgumentNameArgs struct {
	Name   Identifier
	Equals Token
}

// NewArgumentName allocates a new [ArgumentName].
func (n Nodes) NewArgumentName(args ArgumentNameArgs) ArgumentName {
	return ArgumentName{n.store.NewNode(KindArgumentName,
		args.Name.Element(),
		args.Equals.Element(),
	)}
}

// NewArrayExpression allocates an array.
//
//	New Int[10]
type NewArrayExpression struct{ Node }

// Slots of [NewArrayExpression], for use with [Node.Child] and [Red.Child].
const (
	NewArrayExpressionSlotKeyword = iota
	NewArrayExpressionSlotElementType
	NewArrayExpressionSlotOpen
	NewArrayExpressionSlotSize
	NewArrayExpressionSlotClose
)

func (n NewArrayExpression) Keyword() Token { return n.token(NewArrayExpressionSlotKeyword) }
func (n NewArrayExpression) ElementType() Token { return n.token(NewArrayExpressionSlotElementType) }
func (n NewArrayExpression) Open() Token { return n.token(NewArrayExpressionSlotOpen) }
func (n NewArrayExpression) Size() Expr { return Expr{n.node(NewArrayExpressionSlotSize)} }
func (n NewArrayExpression) Close() Token { return n.token(NewArrayExpressionSlotClose) }

// NewArrayExpressionArgs holds the children of a new [NewArrayExpression].
type NewArrayExpressionArgs struct {
	Keyword     Token
	ElementType Token
	Open        Token
	Size        Expr
	Close       Token
}

// NewNewArrayExpression allocates a new [NewArrayExpression].
func (n Nodes) NewNewArrayExpression(args NewArrayExpressionArgs) NewArrayExpression {
	return NewArrayExpression{n.store.NewNode(KindNewArrayExpression,
		args.Keyword.Element(),
		args.ElementType.Element(),
		args.Open.Element(),
		args.Size.Element(),
		args.Close.Element(),
	)}
}

// ParenthesizedExpression is an expression in parentheses.
type ParenthesizedExpression struct{ Node }

// Slots of [ParenthesizedExpression], for use with [Node.Child] and [Red.Child].
const (
	ParenthesizedExpressionSlotOpen = iota
	ParenthesizedExpressionSlotExpression
	ParenthesizedExpressionSlotClose
)

func (n ParenthesizedExpression) Open() Token { return n.token(ParenthesizedExpressionSlotOpen) }
func (n ParenthesizedExpression) Expression() Expr { return Expr{n.node(ParenthesizedExpressionSlotExpression)} }
func (n ParenthesizedExpression) Close() Token { return n.token(ParenthesizedExpressionSlotClose) }

// ParenthesizedExpressionArgs holds the children of a new [ParenthesizedExpression].
type ParenthesizedExpressionArgs struct {
	Open       Token
	Expression Expr
	Close      Token
}

// NewParenthesizedExpression allocates a new [ParenthesizedExpression].
func (n Nodes) NewParenthesizedExpression(args ParenthesizedExpressionArgs) ParenthesizedExpression {
	return ParenthesizedExpression{n.store.NewNode(KindParenthesizedExpression,
		args.Open.Element(),
		args.Expression.Element(),
		args.Close.Element(),
	)}
}

// LiteralExpression is an integer, float, string or boolean literal, or
// None.
type LiteralExpression struct{ Node }

// Slots of [LiteralExpression], for use with [Node.Child] and [Red.Child].
const (
	LiteralExpressionSlotValue = iota
)

func (n LiteralExpression) Value() Token { return n.token(LiteralExpressionSlotValue) }

// LiteralExpressionArgs holds the children of a new [LiteralExpression].
type LiteralExpressionArgs struct {
	Value Token
}

// NewLiteralExpression allocates a new [LiteralExpression].
func (n Nodes) NewLiteralExpression(args LiteralExpressionArgs) LiteralExpression {
	return LiteralExpression{n.store.NewNode(KindLiteralExpression,
		args.Value.Element(),
	)}
}

// Identifier is a name. Self and Parent are also identifiers.
//
// A name the parser expected but did not find is an Identifier whose token is
// missing.
type Identifier struct{ Node }

// Slots of [Identifier], for use with [Node.Child] and [Red.Child].
const (
	IdentifierSlotName = iota
)

func (n Identifier) Name() Token { return n.token(IdentifierSlotName) }

// IdentifierArgs holds the children of a new [Identifier].
type IdentifierArgs struct {
	Name Token
}

// NewIdentifier allocates a new [Identifier].
func (n Nodes) NewIdentifier(args IdentifierArgs) Identifier {
	return Identifier{n.store.NewNode(KindIdentifier,
		args.Name.Element(),
	)}
}
