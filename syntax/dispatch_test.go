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

package syntax_test

import "github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"

// kindNamer reports the kind each dispatch method was called for.
type kindNamer struct {
	visited *[]syntax.Kind
}

var (
	_ syntax.Visitor                  = kindNamer{}
	_ syntax.Transformer[syntax.Kind] = kindNamer{}
)

func (k kindNamer) VisitToken(syntax.Token) { *k.visited = append(*k.visited, syntax.KindToken) }
func (k kindNamer) VisitScript(syntax.Script) { *k.visited = append(*k.visited, syntax.KindScript) }
func (k kindNamer) VisitScriptHeader(syntax.ScriptHeader) { *k.visited = append(*k.visited, syntax.KindScriptHeader) }
func (k kindNamer) VisitExtendsClause(syntax.ExtendsClause) { *k.visited = append(*k.visited, syntax.KindExtendsClause) }
func (k kindNamer) VisitDefinitionList(syntax.DefinitionList) { *k.visited = append(*k.visited, syntax.KindDefinitionList) }
func (k kindNamer) VisitImportStatement(syntax.ImportStatement) { *k.visited = append(*k.visited, syntax.KindImportStatement) }
func (k kindNamer) VisitVariableDefinition(syntax.VariableDefinition) { *k.visited = append(*k.visited, syntax.KindVariableDefinition) }
func (k kindNamer) VisitPropertyDefinition(syntax.PropertyDefinition) { *k.visited = append(*k.visited, syntax.KindPropertyDefinition) }
func (k kindNamer) VisitPropertyBody(syntax.PropertyBody) { *k.visited = append(*k.visited, syntax.KindPropertyBody) }
func (k kindNamer) VisitStateDefinition(syntax.StateDefinition) { *k.visited = append(*k.visited, syntax.KindStateDefinition) }
func (k kindNamer) VisitFunctionDefinition(syntax.FunctionDefinition) { *k.visited = append(*k.visited, syntax.KindFunctionDefinition) }
func (k kindNamer) VisitEventDefinition(syntax.EventDefinition) { *k.visited = append(*k.visited, syntax.KindEventDefinition) }
func (k kindNamer) VisitFunctionHeader(syntax.FunctionHeader) { *k.visited = append(*k.visited, syntax.KindFunctionHeader) }
func (k kindNamer) VisitEventHeader(syntax.EventHeader) { *k.visited = append(*k.visited, syntax.KindEventHeader) }
func (k kindNamer) VisitFunctionBody(syntax.FunctionBody) { *k.visited = append(*k.visited, syntax.KindFunctionBody) }
func (k kindNamer) VisitParameterList(syntax.ParameterList) { *k.visited = append(*k.visited, syntax.KindParameterList) }
func (k kindNamer) VisitParameter(syntax.Parameter) { *k.visited = append(*k.visited, syntax.KindParameter) }
func (k kindNamer) VisitTypeIdentifier(syntax.TypeIdentifier) { *k.visited = append(*k.visited, syntax.KindTypeIdentifier) }
func (k kindNamer) VisitArrayTypeSuffix(syntax.ArrayTypeSuffix) { *k.visited = append(*k.visited, syntax.KindArrayTypeSuffix) }
func (k kindNamer) VisitFlagList(syntax.FlagList) { *k.visited = append(*k.visited, syntax.KindFlagList) }
func (k kindNamer) VisitInitializer(syntax.Initializer) { *k.visited = append(*k.visited, syntax.KindInitializer) }
func (k kindNamer) VisitStatementList(syntax.StatementList) { *k.visited = append(*k.visited, syntax.KindStatementList) }
func (k kindNamer) VisitLocalVariableStatement(syntax.LocalVariableStatement) { *k.visited = append(*k.visited, syntax.KindLocalVariableStatement) }
func (k kindNamer) VisitAssignmentStatement(syntax.AssignmentStatement) { *k.visited = append(*k.visited, syntax.KindAssignmentStatement) }
func (k kindNamer) VisitExpressionStatement(syntax.ExpressionStatement) { *k.visited = append(*k.visited, syntax.KindExpressionStatement) }
func (k kindNamer) VisitReturnStatement(syntax.ReturnStatement) { *k.visited = append(*k.visited, syntax.KindReturnStatement) }
func (k kindNamer) VisitIfStatement(syntax.IfStatement) { *k.visited = append(*k.visited, syntax.KindIfStatement) }
func (k kindNamer) VisitElseIfList(syntax.ElseIfList) { *k.visited = append(*k.visited, syntax.KindElseIfList) }
func (k kindNamer) VisitElseIfClause(syntax.ElseIfClause) { *k.visited = append(*k.visited, syntax.KindElseIfClause) }
func (k kindNamer) VisitElseClause(syntax.ElseClause) { *k.visited = append(*k.visited, syntax.KindElseClause) }
func (k kindNamer) VisitWhileStatement(syntax.WhileStatement) { *k.visited = append(*k.visited, syntax.KindWhileStatement) }
func (k kindNamer) VisitBinaryExpression(syntax.BinaryExpression) { *k.visited = append(*k.visited, syntax.KindBinaryExpression) }
func (k kindNamer) VisitUnaryExpression(syntax.UnaryExpression) { *k.visited = append(*k.visited, syntax.KindUnaryExpression) }
func (k kindNamer) VisitCastExpression(syntax.CastExpression) { *k.visited = append(*k.visited, syntax.KindCastExpression) }
func (k kindNamer) VisitMemberAccessExpression(syntax.MemberAccessExpression) { *k.visited = append(*k.visited, syntax.KindMemberAccessExpression) }
func (k kindNamer) VisitArrayIndexExpression(syntax.ArrayIndexExpression) { *k.visited = append(*k.visited, syntax.KindArrayIndexExpression) }
func (k kindNamer) VisitCallExpression(syntax.CallExpression) { *k.visited = append(*k.visited, syntax.KindCallExpression) }
func (k kindNamer) VisitArgumentList(syntax.ArgumentList) { *k.visited = append(*k.visited, syntax.KindArgumentList) }
func (k kindNamer) VisitArgument(syntax.Argument) { *k.visited = append(*k.visited, syntax.KindArgument) }
func (k kindNamer) VisitArgumentName(syntax.ArgumentName) { *k.visited = append(*k.visited, syntax.KindArgumentName) }
func (k kindNamer) VisitNewArrayExpression(syntax.NewArrayExpression) { *k.visited = append(*k.visited, syntax.KindNewArrayExpression) }
func (k kindNamer) VisitParenthesizedExpression(syntax.ParenthesizedExpression) { *k.visited = append(*k.visited, syntax.KindParenthesizedExpression) }
func (k kindNamer) VisitLiteralExpression(syntax.LiteralExpression) { *k.visited = append(*k.visited, syntax.KindLiteralExpression) }
func (k kindNamer) VisitIdentifier(syntax.Identifier) { *k.visited = append(*k.visited, syntax.KindIdentifier) }
func (k kindNamer) VisitEmpty(syntax.Empty) { *k.visited = append(*k.visited, syntax.KindEmpty) }

func (kindNamer) TransformToken(syntax.Token) syntax.Kind { return syntax.KindToken }
func (kindNamer) TransformScript(syntax.Script) syntax.Kind { return syntax.KindScript }
func (kindNamer) TransformScriptHeader(syntax.ScriptHeader) syntax.Kind { return syntax.KindScriptHeader }
func (kindNamer) TransformExtendsClause(syntax.ExtendsClause) syntax.Kind { return syntax.KindExtendsClause }
func (kindNamer) TransformDefinitionList(syntax.DefinitionList) syntax.Kind { return syntax.KindDefinitionList }
func (kindNamer) TransformImportStatement(syntax.ImportStatement) syntax.Kind { return syntax.KindImportStatement }
func (kindNamer) TransformVariableDefinition(syntax.VariableDefinition) syntax.Kind { return syntax.KindVariableDefinition }
func (kindNamer) TransformPropertyDefinition(syntax.PropertyDefinition) syntax.Kind { return syntax.KindPropertyDefinition }
func (kindNamer) TransformPropertyBody(syntax.PropertyBody) syntax.Kind { return syntax.KindPropertyBody }
func (kindNamer) TransformStateDefinition(syntax.StateDefinition) syntax.Kind { return syntax.KindStateDefinition }
func (kindNamer) TransformFunctionDefinition(syntax.FunctionDefinition) syntax.Kind { return syntax.KindFunctionDefinition }
func (kindNamer) TransformEventDefinition(syntax.EventDefinition) syntax.Kind { return syntax.KindEventDefinition }
func (kindNamer) TransformFunctionHeader(syntax.FunctionHeader) syntax.Kind { return syntax.KindFunctionHeader }
func (kindNamer) TransformEventHeader(syntax.EventHeader) syntax.Kind { return syntax.KindEventHeader }
func (kindNamer) TransformFunctionBody(syntax.FunctionBody) syntax.Kind { return syntax.KindFunctionBody }
func (kindNamer) TransformParameterList(syntax.ParameterList) syntax.Kind { return syntax.KindParameterList }
func (kindNamer) TransformParameter(syntax.Parameter) syntax.Kind { return syntax.KindParameter }
func (kindNamer) TransformTypeIdentifier(syntax.TypeIdentifier) syntax.Kind { return syntax.KindTypeIdentifier }
func (kindNamer) TransformArrayTypeSuffix(syntax.ArrayTypeSuffix) syntax.Kind { return syntax.KindArrayTypeSuffix }
func (kindNamer) TransformFlagList(syntax.FlagList) syntax.Kind { return syntax.KindFlagList }
func (kindNamer) TransformInitializer(syntax.Initializer) syntax.Kind { return syntax.KindInitializer }
func (kindNamer) TransformStatementList(syntax.StatementList) syntax.Kind { return syntax.KindStatementList }
func (kindNamer) TransformLocalVariableStatement(syntax.LocalVariableStatement) syntax.Kind { return syntax.KindLocalVariableStatement }
func (kindNamer) TransformAssignmentStatement(syntax.AssignmentStatement) syntax.Kind { return syntax.KindAssignmentStatement }
func (kindNamer) TransformExpressionStatement(syntax.ExpressionStatement) syntax.Kind { return syntax.KindExpressionStatement }
func (kindNamer) TransformReturnStatement(syntax.ReturnStatement) syntax.Kind { return syntax.KindReturnStatement }
func (kindNamer) TransformIfStatement(syntax.IfStatement) syntax.Kind { return syntax.KindIfStatement }
func (kindNamer) TransformElseIfList(syntax.ElseIfList) syntax.Kind { return syntax.KindElseIfList }
func (kindNamer) TransformElseIfClause(syntax.ElseIfClause) syntax.Kind { return syntax.KindElseIfClause }
func (kindNamer) TransformElseClause(syntax.ElseClause) syntax.Kind { return syntax.KindElseClause }
func (kindNamer) TransformWhileStatement(syntax.WhileStatement) syntax.Kind { return syntax.KindWhileStatement }
func (kindNamer) TransformBinaryExpression(syntax.BinaryExpression) syntax.Kind { return syntax.KindBinaryExpression }
func (kindNamer) TransformUnaryExpression(syntax.UnaryExpression) syntax.Kind { return syntax.KindUnaryExpression }
func (kindNamer) TransformCastExpression(syntax.CastExpression) syntax.Kind { return syntax.KindCastExpression }
func (kindNamer) TransformMemberAccessExpression(syntax.MemberAccessExpression) syntax.Kind { return syntax.KindMemberAccessExpression }
func (kindNamer) TransformArrayIndexExpression(syntax.ArrayIndexExpression) syntax.Kind { return syntax.KindArrayIndexExpression }
func (kindNamer) TransformCallExpression(syntax.CallExpression) syntax.Kind { return syntax.KindCallExpression }
func (kindNamer) TransformArgumentList(syntax.ArgumentList) syntax.Kind { return syntax.KindArgumentList }
func (kindNamer) TransformArgument(syntax.Argument) syntax.Kind { return syntax.KindArgument }
func (kindNamer) TransformArgumentName(syntax.ArgumentName) syntax.Kind { return syntax.KindArgumentName }
func (kindNamer) TransformNewArrayExpression(syntax.NewArrayExpression) syntax.Kind { return syntax.KindNewArrayExpression }
func (kindNamer) TransformParenthesizedExpression(syntax.ParenthesizedExpression) syntax.Kind { return syntax.KindParenthesizedExpression }
func (kindNamer) TransformLiteralExpression(syntax.LiteralExpression) syntax.Kind { return syntax.KindLiteralExpression }
func (kindNamer) TransformIdentifier(syntax.Identifier) syntax.Kind { return syntax.KindIdentifier }
func (kindNamer) TransformEmpty(syntax.Empty) syntax.Kind { return syntax.KindEmpty }
