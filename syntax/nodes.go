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

// Nodes allocates typed nodes in a [Store].
type Nodes struct {
	store *Store
}

// Nodes returns a [Nodes] that allocates in this store.
func (s *Store) Nodes() Nodes {
	return Nodes{s}
}

// opt returns n as an element, or a new [KindEmpty] node if n is zero.
func (n Nodes) opt(node Node) Element {
	if node.IsZero() {
		return n.store.NewEmpty().Element()
	}
	return node.Element()
}

// Definition is any node that may appear in a [DefinitionList].
//
// Use the As methods of [Node], such as [Node.AsFunctionDefinition], to
// get at the concrete definition.
type Definition struct{ Node }

// Statement is any node that may appear in a [StatementList].
type Statement struct{ Node }

// Expr is any expression node.
//
// Where the parser expected an expression and found none, it produces an
// [Identifier] whose name token is missing.
type Expr struct{ Node }

// AsScript returns this node as a [Script], or the zero value if it is of
// another kind.
func (n Node) AsScript() Script {
	if n.Kind() != KindScript {
		return Script{}
	}
	return Script{n}
}

// AsScriptHeader returns this node as a [ScriptHeader], or the zero value if it is of
// another kind.
func (n Node) AsScriptHeader() ScriptHeader {
	if n.Kind() != KindScriptHeader {
		return ScriptHeader{}
	}
	return ScriptHeader{n}
}

// AsExtendsClause returns this node as an [ExtendsClause], or the zero value if it is of
// another kind.
func (n Node) AsExtendsClause() ExtendsClause {
	if n.Kind() != KindExtendsClause {
		return ExtendsClause{}
	}
	return ExtendsClause{n}
}

// AsDefinitionList returns this node as a [DefinitionList], or the zero value if it is of
// another kind.
func (n Node) AsDefinitionList() DefinitionList {
	if n.Kind() != KindDefinitionList {
		return DefinitionList{}
	}
	return DefinitionList{n}
}

// AsImportStatement returns this node as an [ImportStatement], or the zero value if it is of
// another kind.
func (n Node) AsImportStatement() ImportStatement {
	if n.Kind() != KindImportStatement {
		return ImportStatement{}
	}
	return ImportStatement{n}
}

// AsVariableDefinition returns this node as a [VariableDefinition], or the zero value if it is of
// another kind.
func (n Node) AsVariableDefinition() VariableDefinition {
	if n.Kind() != KindVariableDefinition {
		return VariableDefinition{}
	}
	return VariableDefinition{n}
}

// AsPropertyDefinition returns this node as a [PropertyDefinition], or the zero value if it is of
// another kind.
func (n Node) AsPropertyDefinition() PropertyDefinition {
	if n.Kind() != KindPropertyDefinition {
		return PropertyDefinition{}
	}
	return PropertyDefinition{n}
}

// AsPropertyBody returns this node as a [PropertyBody], or the zero value if it is of
// another kind.
func (n Node) AsPropertyBody() PropertyBody {
	if n.Kind() != KindPropertyBody {
		return PropertyBody{}
	}
	return PropertyBody{n}
}

// AsStateDefinition returns this node as a [StateDefinition], or the zero value if it is of
// another kind.
func (n Node) AsStateDefinition() StateDefinition {
	if n.Kind() != KindStateDefinition {
		return StateDefinition{}
	}
	return StateDefinition{n}
}

// AsFunctionDefinition returns this node as a [FunctionDefinition], or the zero value if it is of
// another kind.
func (n Node) AsFunctionDefinition() FunctionDefinition {
	if n.Kind() != KindFunctionDefinition {
		return FunctionDefinition{}
	}
	return FunctionDefinition{n}
}

// AsEventDefinition returns this node as an [EventDefinition], or the zero value if it is of
// another kind.
func (n Node) AsEventDefinition() EventDefinition {
	if n.Kind() != KindEventDefinition {
		return EventDefinition{}
	}
	return EventDefinition{n}
}

// AsFunctionHeader returns this node as a [FunctionHeader], or the zero value if it is of
// another kind.
func (n Node) AsFunctionHeader() FunctionHeader {
	if n.Kind() != KindFunctionHeader {
		return FunctionHeader{}
	}
	return FunctionHeader{n}
}

// AsEventHeader returns this node as an [EventHeader], or the zero value if it is of
// another kind.
func (n Node) AsEventHeader() EventHeader {
	if n.Kind() != KindEventHeader {
		return EventHeader{}
	}
	return EventHeader{n}
}

// AsFunctionBody returns this node as a [FunctionBody], or the zero value if it is of
// another kind.
func (n Node) AsFunctionBody() FunctionBody {
	if n.Kind() != KindFunctionBody {
		return FunctionBody{}
	}
	return FunctionBody{n}
}

// AsParameterList returns this node as a [ParameterList], or the zero value if it is of
// another kind.
func (n Node) AsParameterList() ParameterList {
	if n.Kind() != KindParameterList {
		return ParameterList{}
	}
	return ParameterList{n}
}

// AsParameter returns this node as a [Parameter], or the zero value if it is of
// another kind.
func (n Node) AsParameter() Parameter {
	if n.Kind() != KindParameter {
		return Parameter{}
	}
	return Parameter{n}
}

// AsTypeIdentifier returns this node as a [TypeIdentifier], or the zero value if it is of
// another kind.
func (n Node) AsTypeIdentifier() TypeIdentifier {
	if n.Kind() != KindTypeIdentifier {
		return TypeIdentifier{}
	}
	return TypeIdentifier{n}
}

// AsArrayTypeSuffix returns this node as an [ArrayTypeSuffix], or the zero value if it is of
// another kind.
func (n Node) AsArrayTypeSuffix() ArrayTypeSuffix {
	if n.Kind() != KindArrayTypeSuffix {
		return ArrayTypeSuffix{}
	}
	return ArrayTypeSuffix{n}
}

// AsFlagList returns this node as a [FlagList], or the zero value if it is of
// another kind.
func (n Node) AsFlagList() FlagList {
	if n.Kind() != KindFlagList {
		return FlagList{}
	}
	return FlagList{n}
}

// AsInitializer returns this node as an [Initializer], or the zero value if it is of
// another kind.
func (n Node) AsInitializer() Initializer {
	if n.Kind() != KindInitializer {
		return Initializer{}
	}
	return Initializer{n}
}

// AsStatementList returns this node as a [StatementList], or the zero value if it is of
// another kind.
func (n Node) AsStatementList() StatementList {
	if n.Kind() != KindStatementList {
		return StatementList{}
	}
	return StatementList{n}
}

// AsLocalVariableStatement returns this node as a [LocalVariableStatement], or the zero value if it is of
// another kind.
func (n Node) AsLocalVariableStatement() LocalVariableStatement {
	if n.Kind() != KindLocalVariableStatement {
		return LocalVariableStatement{}
	}
	return LocalVariableStatement{n}
}

// AsAssignmentStatement returns this node as an [AssignmentStatement], or the zero value if it is of
// another kind.
func (n Node) AsAssignmentStatement() AssignmentStatement {
	if n.Kind() != KindAssignmentStatement {
		return AssignmentStatement{}
	}
	return AssignmentStatement{n}
}

// AsExpressionStatement returns this node as an [ExpressionStatement], or the zero value if it is of
// another kind.
func (n Node) AsExpressionStatement() ExpressionStatement {
	if n.Kind() != KindExpressionStatement {
		return ExpressionStatement{}
	}
	return ExpressionStatement{n}
}

// AsReturnStatement returns this node as a [ReturnStatement], or the zero value if it is of
// another kind.
func (n Node) AsReturnStatement() ReturnStatement {
	if n.Kind() != KindReturnStatement {
		return ReturnStatement{}
	}
	return ReturnStatement{n}
}

// AsIfStatement returns this node as an [IfStatement], or the zero value if it is of
// another kind.
func (n Node) AsIfStatement() IfStatement {
	if n.Kind() != KindIfStatement {
		return IfStatement{}
	}
	return IfStatement{n}
}

// AsElseIfList returns this node as an [ElseIfList], or the zero value if it is of
// another kind.
func (n Node) AsElseIfList() ElseIfList {
	if n.Kind() != KindElseIfList {
		return ElseIfList{}
	}
	return ElseIfList{n}
}

// AsElseIfClause returns this node as an [ElseIfClause], or the zero value if it is of
// another kind.
func (n Node) AsElseIfClause() ElseIfClause {
	if n.Kind() != KindElseIfClause {
		return ElseIfClause{}
	}
	return ElseIfClause{n}
}

// AsElseClause returns this node as an [ElseClause], or the zero value if it is of
// another kind.
func (n Node) AsElseClause() ElseClause {
	if n.Kind() != KindElseClause {
		return ElseClause{}
	}
	return ElseClause{n}
}

// AsWhileStatement returns this node as a [WhileStatement], or the zero value if it is of
// another kind.
func (n Node) AsWhileStatement() WhileStatement {
	if n.Kind() != KindWhileStatement {
		return WhileStatement{}
	}
	return WhileStatement{n}
}

// AsBinaryExpression returns this node as a [BinaryExpression], or the zero value if it is of
// another kind.
func (n Node) AsBinaryExpression() BinaryExpression {
	if n.Kind() != KindBinaryExpression {
		return BinaryExpression{}
	}
	return BinaryExpression{n}
}

// AsUnaryExpression returns this node as an [UnaryExpression], or the zero value if it is of
// another kind.
func (n Node) AsUnaryExpression() UnaryExpression {
	if n.Kind() != KindUnaryExpression {
		return UnaryExpression{}
	}
	return UnaryExpression{n}
}

// AsCastExpression returns this node as a [CastExpression], or the zero value if it is of
// another kind.
func (n Node) AsCastExpression() CastExpression {
	if n.Kind() != KindCastExpression {
		return CastExpression{}
	}
	return CastExpression{n}
}

// AsMemberAccessExpression returns this node as a [MemberAccessExpression], or the zero value if it is of
// another kind.
func (n Node) AsMemberAccessExpression() MemberAccessExpression {
	if n.Kind() != KindMemberAccessExpression {
		return MemberAccessExpression{}
	}
	return MemberAccessExpression{n}
}

// AsArrayIndexExpression returns this node as an [ArrayIndexExpression], or the zero value if it is of
// another kind.
func (n Node) AsArrayIndexExpression() ArrayIndexExpression {
	if n.Kind() != KindArrayIndexExpression {
		return ArrayIndexExpression{}
	}
	return ArrayIndexExpression{n}
}

// AsCallExpression returns this node as a [CallExpression], or the zero value if it is of
// another kind.
func (n Node) AsCallExpression() CallExpression {
	if n.Kind() != KindCallExpression {
		return CallExpression{}
	}
	return CallExpression{n}
}

// AsArgumentList returns this node as an [ArgumentList], or the zero value if it is of
// another kind.
func (n Node) AsArgumentList() ArgumentList {
	if n.Kind() != KindArgumentList {
		return ArgumentList{}
	}
	return ArgumentList{n}
}

// AsArgument returns this node as an [Argument], or the zero value if it is of
// another kind.
func (n Node) AsArgument() Argument {
	if n.Kind() != KindArgument {
		return Argument{}
	}
	return Argument{n}
}

// AsArgumentName returns this node as an [ArgumentName], or the zero value if it is of
// another kind.
func (n Node) AsArgumentName() ArgumentName {
	if n.Kind() != KindArgumentName {
		return ArgumentName{}
	}
	return ArgumentName{n}
}

// AsNewArrayExpression returns this node as a [NewArrayExpression], or the zero value if it is of
// another kind.
func (n Node) AsNewArrayExpression() NewArrayExpression {
	if n.Kind() != KindNewArrayExpression {
		return NewArrayExpression{}
	}
	return NewArrayExpression{n}
}

// AsParenthesizedExpression returns this node as a [ParenthesizedExpression], or the zero value if it is of
// another kind.
func (n Node) AsParenthesizedExpression() ParenthesizedExpression {
	if n.Kind() != KindParenthesizedExpression {
		return ParenthesizedExpression{}
	}
	return ParenthesizedExpression{n}
}

// AsLiteralExpression returns this node as a [LiteralExpression], or the zero value if it is of
// another kind.
func (n Node) AsLiteralExpression() LiteralExpression {
	if n.Kind() != KindLiteralExpression {
		return LiteralExpression{}
	}
	return LiteralExpression{n}
}

// AsIdentifier returns this node as an [Identifier], or the zero value if it is of
// another kind.
func (n Node) AsIdentifier() Identifier {
	if n.Kind() != KindIdentifier {
		return Identifier{}
	}
	return Identifier{n}
}

// AsEmpty returns this node as an [Empty], or the zero value if it is of
// another kind.
func (n Node) AsEmpty() Empty {
	if n.Kind() != KindEmpty {
		return Empty{}
	}
	return Empty{n}
}
