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

// projector materializes red elements in a [Navigator].
//
// It is a [Transformer] so that a kind without a projection fails to
// compile, rather than failing when a traversal first lands on it.
type projector struct {
	nav    *Navigator
	parent redPtr
	pos    int
	index  int
}

var _ Transformer[Red] = projector{}

func (p projector) TransformToken(t Token) Red { return p.project(t.id) }
func (p projector) TransformScript(n Script) Red { return p.project(n.id) }
func (p projector) TransformScriptHeader(n ScriptHeader) Red { return p.project(n.id) }
func (p projector) TransformExtendsClause(n ExtendsClause) Red { return p.project(n.id) }
func (p projector) TransformDefinitionList(n DefinitionList) Red { return p.project(n.id) }
func (p projector) TransformImportStatement(n ImportStatement) Red { return p.project(n.id) }
func (p projector) TransformVariableDefinition(n VariableDefinition) Red { return p.project(n.id) }
func (p projector) TransformPropertyDefinition(n PropertyDefinition) Red { return p.project(n.id) }
func (p projector) TransformPropertyBody(n PropertyBody) Red { return p.project(n.id) }
func (p projector) TransformStateDefinition(n StateDefinition) Red { return p.project(n.id) }
func (p projector) TransformFunctionDefinition(n FunctionDefinition) Red { return p.project(n.id) }
func (p projector) TransformEventDefinition(n EventDefinition) Red { return p.project(n.id) }
func (p projector) TransformFunctionHeader(n FunctionHeader) Red { return p.project(n.id) }
func (p projector) TransformEventHeader(n EventHeader) Red { return p.project(n.id) }
func (p projector) TransformFunctionBody(n FunctionBody) Red { return p.project(n.id) }
func (p projector) TransformParameterList(n ParameterList) Red { return p.project(n.id) }
func (p projector) TransformParameter(n Parameter) Red { return p.project(n.id) }
func (p projector) TransformTypeIdentifier(n TypeIdentifier) Red { return p.project(n.id) }
func (p projector) TransformArrayTypeSuffix(n ArrayTypeSuffix) Red { return p.project(n.id) }
func (p projector) TransformFlagList(n FlagList) Red { return p.project(n.id) }
func (p projector) TransformInitializer(n Initializer) Red { return p.project(n.id) }
func (p projector) TransformStatementList(n StatementList) Red { return p.project(n.id) }
func (p projector) TransformLocalVariableStatement(n LocalVariableStatement) Red { return p.project(n.id) }
func (p projector) TransformAssignmentStatement(n AssignmentStatement) Red { return p.project(n.id) }
func (p projector) TransformExpressionStatement(n ExpressionStatement) Red { return p.project(n.id) }
func (p projector) TransformReturnStatement(n ReturnStatement) Red { return p.project(n.id) }
func (p projector) TransformIfStatement(n IfStatement) Red { return p.project(n.id) }
func (p projector) TransformElseIfList(n ElseIfList) Red { return p.project(n.id) }
func (p projector) TransformElseIfClause(n ElseIfClause) Red { return p.project(n.id) }
func (p projector) TransformElseClause(n ElseClause) Red { return p.project(n.id) }
func (p projector) TransformWhileStatement(n WhileStatement) Red { return p.project(n.id) }
func (p projector) TransformBinaryExpression(n BinaryExpression) Red { return p.project(n.id) }
func (p projector) TransformUnaryExpression(n UnaryExpression) Red { return p.project(n.id) }
func (p projector) TransformCastExpression(n CastExpression) Red { return p.project(n.id) }
func (p projector) TransformMemberAccessExpression(n MemberAccessExpression) Red { return p.project(n.id) }
func (p projector) TransformArrayIndexExpression(n ArrayIndexExpression) Red { return p.project(n.id) }
func (p projector) TransformCallExpression(n CallExpression) Red { return p.project(n.id) }
func (p projector) TransformArgumentList(n ArgumentList) Red { return p.project(n.id) }
func (p projector) TransformArgument(n Argument) Red { return p.project(n.id) }
func (p projector) TransformArgumentName(n ArgumentName) Red { return p.project(n.id) }
func (p projector) TransformNewArrayExpression(n NewArrayExpression) Red { return p.project(n.id) }
func (p projector) TransformParenthesizedExpression(n ParenthesizedExpression) Red { return p.project(n.id) }
func (p projector) TransformLiteralExpression(n LiteralExpression) Red { return p.project(n.id) }
func (p projector) TransformIdentifier(n Identifier) Red { return p.project(n.id) }
func (p projector) TransformEmpty(n Empty) Red { return p.project(n.id) }
