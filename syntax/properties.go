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

type category uint8

const (
	part category = iota
	definition
	statement
	expr
	list
)

// shape describes the children a kind of node has.
type shape struct {
	category
	// The number of children, or -1 for lists.
	slots int8
}

var shapes = [...]shape{
	KindScript:             {part, 3},
	KindScriptHeader:       {part, 5},
	KindExtendsClause:      {part, 2},
	KindDefinitionList:     {list, -1},
	KindImportStatement:    {definition, 3},
	KindVariableDefinition: {definition, 5},
	KindPropertyDefinition: {definition, 7},
	KindPropertyBody:       {part, 3},
	KindStateDefinition:    {definition, 7},
	KindFunctionDefinition: {definition, 2},
	KindEventDefinition:    {definition, 2},
	KindFunctionHeader:     {part, 8},
	KindEventHeader:        {part, 7},
	KindFunctionBody:       {part, 3},
	KindParameterList:      {list, -1},
	KindParameter:          {part, 3},
	KindTypeIdentifier:     {part, 2},
	KindArrayTypeSuffix:    {part, 2},
	KindFlagList:           {list, -1},
	KindInitializer:        {part, 2},

	KindStatementList:          {list, -1},
	KindLocalVariableStatement: {statement, 4},
	KindAssignmentStatement:    {statement, 4},
	KindExpressionStatement:    {statement, 2},
	KindReturnStatement:        {statement, 3},
	KindIfStatement:            {statement, 8},
	KindElseIfList:             {list, -1},
	KindElseIfClause:           {part, 4},
	KindElseClause:             {part, 3},
	KindWhileStatement:         {statement, 6},

	KindBinaryExpression:        {expr, 3},
	KindUnaryExpression:         {expr, 2},
	KindCastExpression:          {expr, 3},
	KindMemberAccessExpression:  {expr, 3},
	KindArrayIndexExpression:    {expr, 4},
	KindCallExpression:          {expr, 4},
	KindArgumentList:            {list, -1},
	KindArgument:                {part, 2},
	KindArgumentName:            {part, 2},
	KindNewArrayExpression:      {expr, 5},
	KindParenthesizedExpression: {expr, 3},
	KindLiteralExpression:       {expr, 1},
	KindIdentifier:              {expr, 1},
	KindEmpty:                   {part, 0},
}

// IsNode returns whether this is the kind of a node, as opposed to
// [KindToken] or [KindInvalid].
func (k Kind) IsNode() bool {
	return k > KindToken && k < KindCount
}

// IsDefinition returns whether nodes of this kind may appear in a
// [DefinitionList].
func (k Kind) IsDefinition() bool { return k.shape().category == definition && k.IsNode() }

// IsStatement returns whether nodes of this kind may appear in a
// [StatementList].
func (k Kind) IsStatement() bool { return k.shape().category == statement && k.IsNode() }

// IsExpr returns whether this is an expression kind.
func (k Kind) IsExpr() bool { return k.shape().category == expr && k.IsNode() }

// IsList returns whether nodes of this kind have a variable number of
// children.
func (k Kind) IsList() bool { return k.shape().category == list && k.IsNode() }

// NumSlots returns the number of children every node of this kind has, or -1
// if this is a list kind.
//
// Returns 0 for kinds that are not nodes.
func (k Kind) NumSlots() int {
	if !k.IsNode() {
		return 0
	}
	return int(k.shape().slots)
}

func (k Kind) shape() shape {
	if int(k) < len(shapes) {
		return shapes[k]
	}
	return shape{}
}

func _() {
	// Every node kind has a shape.
	var x [1]struct{}
	_ = x[len(shapes)-KindCount]
}
