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

import "fmt"

// Visitor is a traversal over green elements with one method per [Kind].
//
// [Element.Accept] calls the method for the element's kind. Visitors that only
// care about a few kinds can embed [BaseVisitor].
type Visitor interface {
	VisitToken(Token)
	VisitScript(Script)
	VisitScriptHeader(ScriptHeader)
	VisitExtendsClause(ExtendsClause)
	VisitDefinitionList(DefinitionList)
	VisitImportStatement(ImportStatement)
	VisitVariableDefinition(VariableDefinition)
	VisitPropertyDefinition(PropertyDefinition)
	VisitPropertyBody(PropertyBody)
	VisitStateDefinition(StateDefinition)
	VisitFunctionDefinition(FunctionDefinition)
	VisitEventDefinition(EventDefinition)
	VisitFunctionHeader(FunctionHeader)
	VisitEventHeader(EventHeader)
	VisitFunctionBody(FunctionBody)
	VisitParameterList(ParameterList)
	VisitParameter(Parameter)
	VisitTypeIdentifier(TypeIdentifier)
	VisitArrayTypeSuffix(ArrayTypeSuffix)
	VisitFlagList(FlagList)
	VisitInitializer(Initializer)
	VisitStatementList(StatementList)
	VisitLocalVariableStatement(LocalVariableStatement)
	VisitAssignmentStatement(AssignmentStatement)
	VisitExpressionStatement(ExpressionStatement)
	VisitReturnStatement(ReturnStatement)
	VisitIfStatement(IfStatement)
	VisitElseIfList(ElseIfList)
	VisitElseIfClause(ElseIfClause)
	VisitElseClause(ElseClause)
	VisitWhileStatement(WhileStatement)
	VisitBinaryExpression(BinaryExpression)
	VisitUnaryExpression(UnaryExpression)
	VisitCastExpression(CastExpression)
	VisitMemberAccessExpression(MemberAccessExpression)
	VisitArrayIndexExpression(ArrayIndexExpression)
	VisitCallExpression(CallExpression)
	VisitArgumentList(ArgumentList)
	VisitArgument(Argument)
	VisitArgumentName(ArgumentName)
	VisitNewArrayExpression(NewArrayExpression)
	VisitParenthesizedExpression(ParenthesizedExpression)
	VisitLiteralExpression(LiteralExpression)
	VisitIdentifier(Identifier)
	VisitEmpty(Empty)
}

// Transformer computes a value from a green element, with one method per
// [Kind]. Use [Transform] to dispatch.
type Transformer[T any] interface {
	TransformToken(Token) T
	TransformScript(Script) T
	TransformScriptHeader(ScriptHeader) T
	TransformExtendsClause(ExtendsClause) T
	TransformDefinitionList(DefinitionList) T
	TransformImportStatement(ImportStatement) T
	TransformVariableDefinition(VariableDefinition) T
	TransformPropertyDefinition(PropertyDefinition) T
	TransformPropertyBody(PropertyBody) T
	TransformStateDefinition(StateDefinition) T
	TransformFunctionDefinition(FunctionDefinition) T
	TransformEventDefinition(EventDefinition) T
	TransformFunctionHeader(FunctionHeader) T
	TransformEventHeader(EventHeader) T
	TransformFunctionBody(FunctionBody) T
	TransformParameterList(ParameterList) T
	TransformParameter(Parameter) T
	TransformTypeIdentifier(TypeIdentifier) T
	TransformArrayTypeSuffix(ArrayTypeSuffix) T
	TransformFlagList(FlagList) T
	TransformInitializer(Initializer) T
	TransformStatementList(StatementList) T
	TransformLocalVariableStatement(LocalVariableStatement) T
	TransformAssignmentStatement(AssignmentStatement) T
	TransformExpressionStatement(ExpressionStatement) T
	TransformReturnStatement(ReturnStatement) T
	TransformIfStatement(IfStatement) T
	TransformElseIfList(ElseIfList) T
	TransformElseIfClause(ElseIfClause) T
	TransformElseClause(ElseClause) T
	TransformWhileStatement(WhileStatement) T
	TransformBinaryExpression(BinaryExpression) T
	TransformUnaryExpression(UnaryExpression) T
	TransformCastExpression(CastExpression) T
	TransformMemberAccessExpression(MemberAccessExpression) T
	TransformArrayIndexExpression(ArrayIndexExpression) T
	TransformCallExpression(CallExpression) T
	TransformArgumentList(ArgumentList) T
	TransformArgument(Argument) T
	TransformArgumentName(ArgumentName) T
	TransformNewArrayExpression(NewArrayExpression) T
	TransformParenthesizedExpression(ParenthesizedExpression) T
	TransformLiteralExpression(LiteralExpression) T
	TransformIdentifier(Identifier) T
	TransformEmpty(Empty) T
}

// Transform calls the method of t for the kind of e and returns its result.
//
// Panics if e is zero.
func Transform[T any](e Element, t Transformer[T]) T {
	n := e.AsNode()
	switch e.Kind() {
	case KindToken:
		return t.TransformToken(e.AsToken())
	case KindScript:
		return t.TransformScript(Script{n})
	case KindScriptHeader:
		return t.TransformScriptHeader(ScriptHeader{n})
	case KindExtendsClause:
		return t.TransformExtendsClause(ExtendsClause{n})
	case KindDefinitionList:
		return t.TransformDefinitionList(DefinitionList{n})
	case KindImportStatement:
		return t.TransformImportStatement(ImportStatement{n})
	case KindVariableDefinition:
		return t.TransformVariableDefinition(VariableDefinition{n})
	case KindPropertyDefinition:
		return t.TransformPropertyDefinition(PropertyDefinition{n})
	case KindPropertyBody:
		return t.TransformPropertyBody(PropertyBody{n})
	case KindStateDefinition:
		return t.TransformStateDefinition(StateDefinition{n})
	case KindFunctionDefinition:
		return t.TransformFunctionDefinition(FunctionDefinition{n})
	case KindEventDefinition:
		return t.TransformEventDefinition(EventDefinition{n})
	case KindFunctionHeader:
		return t.TransformFunctionHeader(FunctionHeader{n})
	case KindEventHeader:
		return t.TransformEventHeader(EventHeader{n})
	case KindFunctionBody:
		return t.TransformFunctionBody(FunctionBody{n})
	case KindParameterList:
		return t.TransformParameterList(ParameterList{n})
	case KindParameter:
		return t.TransformParameter(Parameter{n})
	case KindTypeIdentifier:
		return t.TransformTypeIdentifier(TypeIdentifier{n})
	case KindArrayTypeSuffix:
		return t.TransformArrayTypeSuffix(ArrayTypeSuffix{n})
	case KindFlagList:
		return t.TransformFlagList(FlagList{n})
	case KindInitializer:
		return t.TransformInitializer(Initializer{n})
	case KindStatementList:
		return t.TransformStatementList(StatementList{n})
	case KindLocalVariableStatement:
		return t.TransformLocalVariableStatement(LocalVariableStatement{n})
	case KindAssignmentStatement:
		return t.TransformAssignmentStatement(AssignmentStatement{n})
	case KindExpressionStatement:
		return t.TransformExpressionStatement(ExpressionStatement{n})
	case KindReturnStatement:
		return t.TransformReturnStatement(ReturnStatement{n})
	case KindIfStatement:
		return t.TransformIfStatement(IfStatement{n})
	case KindElseIfList:
		return t.TransformElseIfList(ElseIfList{n})
	case KindElseIfClause:
		return t.TransformElseIfClause(ElseIfClause{n})
	case KindElseClause:
		return t.TransformElseClause(ElseClause{n})
	case KindWhileStatement:
		return t.TransformWhileStatement(WhileStatement{n})
	case KindBinaryExpression:
		return t.TransformBinaryExpression(BinaryExpression{n})
	case KindUnaryExpression:
		return t.TransformUnaryExpression(UnaryExpression{n})
	case KindCastExpression:
		return t.TransformCastExpression(CastExpression{n})
	case KindMemberAccessExpression:
		return t.TransformMemberAccessExpression(MemberAccessExpression{n})
	case KindArrayIndexExpression:
		return t.TransformArrayIndexExpression(ArrayIndexExpression{n})
	case KindCallExpression:
		return t.TransformCallExpression(CallExpression{n})
	case KindArgumentList:
		return t.TransformArgumentList(ArgumentList{n})
	case KindArgument:
		return t.TransformArgument(Argument{n})
	case KindArgumentName:
		return t.TransformArgumentName(ArgumentName{n})
	case KindNewArrayExpression:
		return t.TransformNewArrayExpression(NewArrayExpression{n})
	case KindParenthesizedExpression:
		return t.TransformParenthesizedExpression(ParenthesizedExpression{n})
	case KindLiteralExpression:
		return t.TransformLiteralExpression(LiteralExpression{n})
	case KindIdentifier:
		return t.TransformIdentifier(Identifier{n})
	case KindEmpty:
		return t.TransformEmpty(Empty{n})
	default:
		panic(fmt.Sprintf("papyrus/syntax: cannot dispatch %v", e.Kind()))
	}
}

func accept(e Element, v Visitor) {
	n := e.AsNode()
	switch e.Kind() {
	case KindToken:
		v.VisitToken(e.AsToken())
	case KindScript:
		v.VisitScript(Script{n})
	case KindScriptHeader:
		v.VisitScriptHeader(ScriptHeader{n})
	case KindExtendsClause:
		v.VisitExtendsClause(ExtendsClause{n})
	case KindDefinitionList:
		v.VisitDefinitionList(DefinitionList{n})
	case KindImportStatement:
		v.VisitImportStatement(ImportStatement{n})
	case KindVariableDefinition:
		v.VisitVariableDefinition(VariableDefinition{n})
	case KindPropertyDefinition:
		v.VisitPropertyDefinition(PropertyDefinition{n})
	case KindPropertyBody:
		v.VisitPropertyBody(PropertyBody{n})
	case KindStateDefinition:
		v.VisitStateDefinition(StateDefinition{n})
	case KindFunctionDefinition:
		v.VisitFunctionDefinition(FunctionDefinition{n})
	case KindEventDefinition:
		v.VisitEventDefinition(EventDefinition{n})
	case KindFunctionHeader:
		v.VisitFunctionHeader(FunctionHeader{n})
	case KindEventHeader:
		v.VisitEventHeader(EventHeader{n})
	case KindFunctionBody:
		v.VisitFunctionBody(FunctionBody{n})
	case KindParameterList:
		v.VisitParameterList(ParameterList{n})
	case KindParameter:
		v.VisitParameter(Parameter{n})
	case KindTypeIdentifier:
		v.VisitTypeIdentifier(TypeIdentifier{n})
	case KindArrayTypeSuffix:
		v.VisitArrayTypeSuffix(ArrayTypeSuffix{n})
	case KindFlagList:
		v.VisitFlagList(FlagList{n})
	case KindInitializer:
		v.VisitInitializer(Initializer{n})
	case KindStatementList:
		v.VisitStatementList(StatementList{n})
	case KindLocalVariableStatement:
		v.VisitLocalVariableStatement(LocalVariableStatement{n})
	case KindAssignmentStatement:
		v.VisitAssignmentStatement(AssignmentStatement{n})
	case KindExpressionStatement:
		v.VisitExpressionStatement(ExpressionStatement{n})
	case KindReturnStatement:
		v.VisitReturnStatement(ReturnStatement{n})
	case KindIfStatement:
		v.VisitIfStatement(IfStatement{n})
	case KindElseIfList:
		v.VisitElseIfList(ElseIfList{n})
	case KindElseIfClause:
		v.VisitElseIfClause(ElseIfClause{n})
	case KindElseClause:
		v.VisitElseClause(ElseClause{n})
	case KindWhileStatement:
		v.VisitWhileStatement(WhileStatement{n})
	case KindBinaryExpression:
		v.VisitBinaryExpression(BinaryExpression{n})
	case KindUnaryExpression:
		v.VisitUnaryExpression(UnaryExpression{n})
	case KindCastExpression:
		v.VisitCastExpression(CastExpression{n})
	case KindMemberAccessExpression:
		v.VisitMemberAccessExpression(MemberAccessExpression{n})
	case KindArrayIndexExpression:
		v.VisitArrayIndexExpression(ArrayIndexExpression{n})
	case KindCallExpression:
		v.VisitCallExpression(CallExpression{n})
	case KindArgumentList:
		v.VisitArgumentList(ArgumentList{n})
	case KindArgument:
		v.VisitArgument(Argument{n})
	case KindArgumentName:
		v.VisitArgumentName(ArgumentName{n})
	case KindNewArrayExpression:
		v.VisitNewArrayExpression(NewArrayExpression{n})
	case KindParenthesizedExpression:
		v.VisitParenthesizedExpression(ParenthesizedExpression{n})
	case KindLiteralExpression:
		v.VisitLiteralExpression(LiteralExpression{n})
	case KindIdentifier:
		v.VisitIdentifier(Identifier{n})
	case KindEmpty:
		v.VisitEmpty(Empty{n})
	default:
		panic(fmt.Sprintf("papyrus/syntax: cannot dispatch %v", e.Kind()))
	}
}

func _() {
	// Transform and accept have one case per kind. Adding a kind fails to
	// compile until the cases above and this count are updated.
	var x [1]struct{}
	_ = x[KindCount-46]
}

// BaseVisitor implements [Visitor] by visiting the children of every node
// with Self, and ignoring tokens.
//
// Embed it in a visitor that handles only some kinds, and set Self to the
// embedding visitor so that recursion reaches its methods:
//
//	type counter struct {
//		syntax.BaseVisitor
//		calls int
//	}
//
//	func (c *counter) VisitCallExpression(n syntax.CallExpression) {
//		c.calls++
//		c.VisitChildren(n.Node)
//	}
//
//	c := new(counter)
//	c.Self = c
//	root.Accept(c)
type BaseVisitor struct {
	Self Visitor
}

var _ Visitor = BaseVisitor{}

// VisitChildren dispatches every child of n to Self.
func (b BaseVisitor) VisitChildren(n Node) {
	var self Visitor = b
	if b.Self != nil {
		self = b.Self
	}
	for child := range n.Children() {
		accept(child, self)
	}
}

func (b BaseVisitor) VisitToken(Token) {}
func (b BaseVisitor) VisitScript(n Script) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitScriptHeader(n ScriptHeader) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitExtendsClause(n ExtendsClause) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitDefinitionList(n DefinitionList) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitImportStatement(n ImportStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitVariableDefinition(n VariableDefinition) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitPropertyDefinition(n PropertyDefinition) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitPropertyBody(n PropertyBody) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitStateDefinition(n StateDefinition) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitFunctionDefinition(n FunctionDefinition) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitEventDefinition(n EventDefinition) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitFunctionHeader(n FunctionHeader) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitEventHeader(n EventHeader) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitFunctionBody(n FunctionBody) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitParameterList(n ParameterList) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitParameter(n Parameter) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitTypeIdentifier(n TypeIdentifier) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitArrayTypeSuffix(n ArrayTypeSuffix) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitFlagList(n FlagList) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitInitializer(n Initializer) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitStatementList(n StatementList) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitLocalVariableStatement(n LocalVariableStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitAssignmentStatement(n AssignmentStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitExpressionStatement(n ExpressionStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitReturnStatement(n ReturnStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitIfStatement(n IfStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitElseIfList(n ElseIfList) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitElseIfClause(n ElseIfClause) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitElseClause(n ElseClause) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitWhileStatement(n WhileStatement) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitBinaryExpression(n BinaryExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitUnaryExpression(n UnaryExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitCastExpression(n CastExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitMemberAccessExpression(n MemberAccessExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitArrayIndexExpression(n ArrayIndexExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitCallExpression(n CallExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitArgumentList(n ArgumentList) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitArgument(n Argument) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitArgumentName(n ArgumentName) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitNewArrayExpression(n NewArrayExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitParenthesizedExpression(n ParenthesizedExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitLiteralExpression(n LiteralExpression) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitIdentifier(n Identifier) { b.VisitChildren(n.Node) }
func (b BaseVisitor) VisitEmpty(n Empty) { b.VisitChildren(n.Node) }

// BaseTransformer implements [Transformer] by returning the zero value for
// every kind. Embed it in a transformer that handles only some kinds.
type BaseTransformer[T any] struct{}

var _ Transformer[int] = BaseTransformer[int]{}

func (BaseTransformer[T]) TransformToken(Token) (zero T) { return zero }
func (BaseTransformer[T]) TransformScript(Script) (zero T) { return zero }
func (BaseTransformer[T]) TransformScriptHeader(ScriptHeader) (zero T) { return zero }
func (BaseTransformer[T]) TransformExtendsClause(ExtendsClause) (zero T) { return zero }
func (BaseTransformer[T]) TransformDefinitionList(DefinitionList) (zero T) { return zero }
func (BaseTransformer[T]) TransformImportStatement(ImportStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformVariableDefinition(VariableDefinition) (zero T) { return zero }
func (BaseTransformer[T]) TransformPropertyDefinition(PropertyDefinition) (zero T) { return zero }
func (BaseTransformer[T]) TransformPropertyBody(PropertyBody) (zero T) { return zero }
func (BaseTransformer[T]) TransformStateDefinition(StateDefinition) (zero T) { return zero }
func (BaseTransformer[T]) TransformFunctionDefinition(FunctionDefinition) (zero T) { return zero }
func (BaseTransformer[T]) TransformEventDefinition(EventDefinition) (zero T) { return zero }
func (BaseTransformer[T]) TransformFunctionHeader(FunctionHeader) (zero T) { return zero }
func (BaseTransformer[T]) TransformEventHeader(EventHeader) (zero T) { return zero }
func (BaseTransformer[T]) TransformFunctionBody(FunctionBody) (zero T) { return zero }
func (BaseTransformer[T]) TransformParameterList(ParameterList) (zero T) { return zero }
func (BaseTransformer[T]) TransformParameter(Parameter) (zero T) { return zero }
func (BaseTransformer[T]) TransformTypeIdentifier(TypeIdentifier) (zero T) { return zero }
func (BaseTransformer[T]) TransformArrayTypeSuffix(ArrayTypeSuffix) (zero T) { return zero }
func (BaseTransformer[T]) TransformFlagList(FlagList) (zero T) { return zero }
func (BaseTransformer[T]) TransformInitializer(Initializer) (zero T) { return zero }
func (BaseTransformer[T]) TransformStatementList(StatementList) (zero T) { return zero }
func (BaseTransformer[T]) TransformLocalVariableStatement(LocalVariableStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformAssignmentStatement(AssignmentStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformExpressionStatement(ExpressionStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformReturnStatement(ReturnStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformIfStatement(IfStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformElseIfList(ElseIfList) (zero T) { return zero }
func (BaseTransformer[T]) TransformElseIfClause(ElseIfClause) (zero T) { return zero }
func (BaseTransformer[T]) TransformElseClause(ElseClause) (zero T) { return zero }
func (BaseTransformer[T]) TransformWhileStatement(WhileStatement) (zero T) { return zero }
func (BaseTransformer[T]) TransformBinaryExpression(BinaryExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformUnaryExpression(UnaryExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformCastExpression(CastExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformMemberAccessExpression(MemberAccessExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformArrayIndexExpression(ArrayIndexExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformCallExpression(CallExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformArgumentList(ArgumentList) (zero T) { return zero }
func (BaseTransformer[T]) TransformArgument(Argument) (zero T) { return zero }
func (BaseTransformer[T]) TransformArgumentName(ArgumentName) (zero T) { return zero }
func (BaseTransformer[T]) TransformNewArrayExpression(NewArrayExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformParenthesizedExpression(ParenthesizedExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformLiteralExpression(LiteralExpression) (zero T) { return zero }
func (BaseTransformer[T]) TransformIdentifier(Identifier) (zero T) { return zero }
func (BaseTransformer[T]) TransformEmpty(Empty) (zero T) { return zero }

// Walk calls f for e and each of its descendants, in pre-order. If f returns
// false, the children of that element are skipped.
func Walk(e Element, f func(Element) bool) {
	if e.IsZero() || !f(e) {
		return
	}
	for child := range e.AsNode().Children() {
		Walk(child, f)
	}
}
