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

import "iter"

// StatementList is the sequence of statements in a block.
type StatementList struct{ Node }

// Len returns the number of statements in this list.
func (n StatementList) Len() int { return n.NumChildren() }

// At returns the ith element of this list.
func (n StatementList) At(i int) Statement { return Statement{n.node(i)} }

// All returns the elements of this list in order.
func (n StatementList) All() iter.Seq[Statement] {
	return func(yield func(Statement) bool) {
		for i := range n.Len() {
			if !yield(n.At(i)) {
				return
			}
		}
	}
}

// NewStatementList allocates a new [StatementList].
func (n Nodes) NewStatementList(elems ...Statement) StatementList {
	children := make([]Element, len(elems))
	for i, elem := range elems {
		children[i] = elem.Element()
	}
	return StatementList{n.store.NewNode(KindStatementList, children...)}
}

// LocalVariableStatement declares a local variable.
type LocalVariableStatement struct{ Node }

// Slots of [LocalVariableStatement], for use with [Node.Child] and [Red.Child].
const (
	LocalVariableStatementSlotType = iota
	LocalVariableStatementSlotName
	LocalVariableStatementSlotInitializer
	LocalVariableStatementSlotNewline
)

func (n LocalVariableStatement) Type() TypeIdentifier { return TypeIdentifier{n.node(LocalVariableStatementSlotType)} }
func (n LocalVariableStatement) Name() Identifier { return Identifier{n.node(LocalVariableStatementSlotName)} }
func (n LocalVariableStatement) Initializer() Initializer { return Initializer{n.optional(LocalVariableStatementSlotInitializer)} }
func (n LocalVariableStatement) Newline() Token { return n.token(LocalVariableStatementSlotNewline) }

// LocalVariableStatementArgs holds the children of a new [LocalVariableStatement].
// Zero optional children are filled with [KindEmpty] nodes.
type LocalVariableStatementArgs struct {
	Type        TypeIdentifier
	Name        Identifier
	Initializer Initializer // Optional.
	Newline     Token
}

// NewLocalVariableStatement allocates a new [LocalVariableStatement].
func (n Nodes) NewLocalVariableStatement(args LocalVariableStatementArgs) LocalVariableStatement {
	return LocalVariableStatement{n.store.NewNode(KindLocalVariableStatement,
		args.Type.Element(),
		args.Name.Element(),
		n.opt(args.Initializer.Node),
		args.Newline.Element(),
	)}
}

// AssignmentStatement assigns to a variable, property or array element.
// The operator is = or a compound assignment such as +=.
type AssignmentStatement struct{ Node }

// Slots of [AssignmentStatement], for use with [Node.Child] and [Red.Child].
const (
	AssignmentStatementSlotTarget = iota
	AssignmentStatementSlotOperator
	AssignmentStatementSlotValue
	AssignmentStatementSlotNewline
)

func (n AssignmentStatement) Target() Expr { return Expr{n.node(AssignmentStatementSlotTarget)} }
func (n AssignmentStatement) Operator() Token { return n.token(AssignmentStatementSlotOperator) }
func (n AssignmentStatement) Value() Expr { return Expr{n.node(AssignmentStatementSlotValue)} }
func (n AssignmentStatement) Newline() Token { return n.token(AssignmentStatementSlotNewline) }

// AssignmentStatementArgs holds the children of a new [AssignmentStatement].
type AssignmentStatementArgs struct {
	Target   Expr
	Operator Token
	Value    Expr
	Newline  Token
}

// NewAssignmentStatement allocates a new [AssignmentStatement].
func (n Nodes) NewAssignmentStatement(args AssignmentStatementArgs) AssignmentStatement {
	return AssignmentStatement{n.store.NewNode(KindAssignmentStatement,
		args.Target.Element(),
		args.Operator.Element(),
		args.Value.Element(),
		args.Newline.Element(),
	)}
}

// ExpressionStatement evaluates an expression, usually a call.
type ExpressionStatement struct{ Node }

// Slots of [ExpressionStatement], for use with [Node.Child] and [Red.Child].
const (
	ExpressionStatementSlotExpression = iota
	ExpressionStatementSlotNewline
)

func (n ExpressionStatement) Expression() Expr { return Expr{n.node(ExpressionStatementSlotExpression)} }
func (n ExpressionStatement) Newline() Token { return n.token(ExpressionStatementSlotNewline) }

// ExpressionStatementArgs holds the children of a new [ExpressionStatement].
type ExpressionStatementArgs struct {
	Expression Expr
	Newline    Token
}

// NewExpressionStatement allocates a new [ExpressionStatement].
func (n Nodes) NewExpressionStatement(args ExpressionStatementArgs) ExpressionStatement {
	return ExpressionStatement{n.store.NewNode(KindExpressionStatement,
		args.Expression.Element(),
		args.Newline.Element(),
	)}
}

// ReturnStatement returns from a function.
type ReturnStatement struct{ Node }

// Slots of [ReturnStatement], for use with [Node.Child] and [Red.Child].
const (
	ReturnStatementSlotKeyword = iota
	ReturnStatementSlotValue
	ReturnStatementSlotNewline
)

func (n ReturnStatement) Keyword() Token { return n.token(ReturnStatementSlotKeyword) }

// Value returns the returned expression, or a zero [Expr].
func (n ReturnStatement) Value() Expr { return Expr{n.optional(ReturnStatementSlotValue)} }

func (n ReturnStatement) Newline() Token { return n.token(ReturnStatementSlotNewline) }

// ReturnStatementArgs holds the children of a new [ReturnStatement].
// Zero optional children are filled with [KindEmpty] nodes.
type ReturnStatementArgs struct {
	Keyword Token
	Value   Expr // Optional.
	Newline Token
}

// NewReturnStatement allocates a new [ReturnStatement].
func (n Nodes) NewReturnStatement(args ReturnStatementArgs) ReturnStatement {
	return ReturnStatement{n.store.NewNode(KindReturnStatement,
		args.Keyword.Element(),
		n.opt(args.Value.Node),
		args.Newline.Element(),
	)}
}

// IfStatement is an If block with any number of ElseIf clauses and an
// optional Else clause.
type IfStatement struct{ Node }

// Slots of [IfStatement], for use with [Node.Child] and [Red.Child].
const (
	IfStatementSlotKeyword = iota
	IfStatementSlotCondition
	IfStatementSlotNewline
	IfStatementSlotStatements
	IfStatementSlotElseIfs
	IfStatementSlotElse
	IfStatementSlotEndKeyword
	IfStatementSlotEndNewline
)

func (n IfStatement) Keyword() Token { return n.token(IfStatementSlotKeyword) }
func (n IfStatement) Condition() Expr { return Expr{n.node(IfStatementSlotCondition)} }
func (n IfStatement) Newline() Token { return n.token(IfStatementSlotNewline) }
func (n IfStatement) Statements() StatementList { return StatementList{n.node(IfStatementSlotStatements)} }
func (n IfStatement) ElseIfs() ElseIfList { return ElseIfList{n.node(IfStatementSlotElseIfs)} }
func (n IfStatement) Else() ElseClause { return ElseClause{n.optional(IfStatementSlotElse)} }
func (n IfStatement) EndKeyword() Token { return n.token(IfStatementSlotEndKeyword) }
func (n IfStatement) EndNewline() Token { return n.token(IfStatementSlotEndNewline) }

// IfStatementArgs holds the children of a new [IfStatement].
// Zero optional children are filled with [KindEmpty] nodes.
type IfStatementArgs struct {
	Keyword    Token
	Condition  Expr
	Newline    Token
	Statements StatementList
	ElseIfs    ElseIfList
	Else       ElseClause // Optional.
	EndKeyword Token
	EndNewline Token
}

// NewIfStatement allocates a new [IfStatement].
func (n Nodes) NewIfStatement(args IfStatementArgs) IfStatement {
	return IfStatement{n.store.NewNode(KindIfStatement,
		args.Keyword.Element(),
		args.Condition.Element(),
		args.Newline.Element(),
		args.Statements.Element(),
		args.ElseIfs.Element(),
		n.opt(args.Else.Node),
		args.EndKeyword.Element(),
		args.EndNewline.Element(),
	)}
}

// ElseIfList is the ElseIf clauses of an [IfStatement].
type ElseIfList struct{ Node }

// Len returns the number of clauses in this list.
func (n ElseIfList) Len() int { return n.NumChildren() }

// At returns the ith element of this list.
func (n ElseIfList) At(i int) ElseIfClause { return ElseIfClause{n.node(i)} }

// All returns the elements of this list in order.
func (n ElseIfList) All() iter.Seq[ElseIfClause] {
	return func(yield func(ElseIfClause) bool) {
		for i := range n.Len() {
			if !yield(n.At(i)) {
				return
			}
		}
	}
}

// NewElseIfList allocates a new [ElseIfList].
func (n Nodes) NewElseIfList(elems ...ElseIfClause) ElseIfList {
	children := make([]Element, len(elems))
	for i, elem := range elems {
		children[i] = elem.Element()
	}
	return ElseIfList{n.store.NewNode(KindElseIfList, children...)}
}

// ElseIfClause is one ElseIf condition and its block.
type ElseIfClause struct{ Node }

// Slots of [ElseIfClause], for use with [Node.Child] and [Red.Child].
const (
	ElseIfClauseSlotKeyword = iota
	ElseIfClauseSlotCondition
	ElseIfClauseSlotNewline
	ElseIfClauseSlotStatements
)

func (n ElseIfClause) Keyword() Token { return n.token(ElseIfClauseSlotKeyword) }
func (n ElseIfClause) Condition() Expr { return Expr{n.node(ElseIfClauseSlotCondition)} }
func (n ElseIfClause) Newline() Token { return n.token(ElseIfClauseSlotNewline) }
func (n ElseIfClause) Statements() StatementList { return StatementList{n.node(ElseIfClauseSlotStatements)} }

// ElseIfClauseArgs holds the children of a new [ElseIfClause].
type ElseIfClauseArgs struct {
	Keyword    Token
	Condition  Expr
	Newline    Token
	Statements StatementList
}

// NewElseIfClause allocates a new [ElseIfClause].
func (n Nodes) NewElseIfClause(args ElseIfClauseArgs) ElseIfClause {
	return ElseIfClause{n.store.NewNode(KindElseIfClause,
		args.Keyword.Element(),
		args.Condition.Element(),
		args.Newline.Element(),
		args.Statements.Element(),
	)}
}

// ElseClause is the Else block of an [IfStatement].
type ElseClause struct{ Node }

// Slots of [ElseClause], for use with [Node.Child] and [Red.Child].
const (
	ElseClauseSlotKeyword = iota
	ElseClauseSlotNewline
	ElseClauseSlotStatements
)

func (n ElseClause) Keyword() Token { return n.token(ElseClauseSlotKeyword) }
func (n ElseClause) Newline() Token { return n.token(ElseClauseSlotNewline) }
func (n ElseClause) Statements() StatementList { return StatementList{n.node(ElseClauseSlotStatements)} }

// ElseClauseArgs holds the children of a new [ElseClause].
type ElseClauseArgs struct {
	Keyword    Token
	Newline    Token
	Statements StatementList
}

// NewElseClause allocates a new [ElseClause].
func (n Nodes) NewElseClause(args ElseClauseArgs) ElseClause {
	return ElseClause{n.store.NewNode(KindElseClause,
		args.Keyword.Element(),
		args.Newline.Element(),
		args.Statements.Element(),
	)}
}

// WhileStatement is a While loop.
type WhileStatement struct{ Node }

// Slots of [WhileStatement], for use with [Node.Child] and [Red.Child].
const (
	WhileStatementSlotKeyword = iota
	WhileStatementSlotCondition
	WhileStatementSlotNewline
	WhileStatementSlotStatements
	WhileStatementSlotEndKeyword
	WhileStatementSlotEndNewline
)

func (n WhileStatement) Keyword() Token { return n.token(WhileStatementSlotKeyword) }
func (n WhileStatement) Condition() Expr { return Expr{n.node(WhileStatementSlotCondition)} }
func (n WhileStatement) Newline() Token { return n.token(WhileStatementSlotNewline) }
func (n WhileStatement) Statements() StatementList { return StatementList{n.node(WhileStatementSlotStatements)} }
func (n WhileStatement) EndKeyword() Token { return n.token(WhileStatementSlotEndKeyword) }
func (n WhileStatement) EndNewline() Token { return n.token(WhileStatementSlotEndNewline) }

// WhileStatementArgs holds the children of a new [WhileStatement].
type WhileStatementArgs struct {
	Keyword    Token
	Condition  Expr
	Newline    Token
	Statements StatementList
	EndKeyword Token
	EndNewline Token
}

// NewWhileStatement allocates a new [WhileStatement].
func (n Nodes) NewWhileStatement(args WhileStatementArgs) WhileStatement {
	return WhileStatement{n.store.NewNode(KindWhileStatement,
		args.Keyword.Element(),
		args.Condition.Element(),
		args.Newline.Element(),
		args.Statements.Element(),
		args.EndKeyword.Element(),
		args.EndNewline.Element(),
	)}
}
