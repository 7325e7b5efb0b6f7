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

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/token"
)

// Script is the root of a parsed file.
type Script struct{ Node }

// Slots of [Script], for use with [Node.Child] and [Red.Child].
const (
	ScriptSlotHeader = iota
	ScriptSlotDefinitions
	ScriptSlotEndOfFile
)

func (n Script) Header() ScriptHeader { return ScriptHeader{n.node(ScriptSlotHeader)} }
func (n Script) Definitions() DefinitionList { return DefinitionList{n.node(ScriptSlotDefinitions)} }

// EndOfFile returns the end-of-file token, whose leading trivia holds
// any comments and blank lines after the last definition.
func (n Script) EndOfFile() Token { return n.token(ScriptSlotEndOfFile) }

// ScriptArgs holds the children of a new [Script].
type ScriptArgs struct {
	Header      ScriptHeader
	Definitions DefinitionList
	EndOfFile   Token
}

// NewScript allocates a new [Script].
func (n Nodes) NewScript(args ScriptArgs) Script {
	return Script{n.store.NewNode(KindScript,
		args.Header.Element(),
		args.Definitions.Element(),
		args.EndOfFile.Element(),
	)}
}

// ScriptHeader is the ScriptName line that opens every script.
//
//	ScriptName MyQuest Extends Quest Conditional
type ScriptHeader struct{ Node }

// Slots of [ScriptHeader], for use with [Node.Child] and [Red.Child].
const (
	ScriptHeaderSlotKeyword = iota
	ScriptHeaderSlotName
	ScriptHeaderSlotExtends
	ScriptHeaderSlotFlags
	ScriptHeaderSlotNewline
)

func (n ScriptHeader) Keyword() Token { return n.token(ScriptHeaderSlotKeyword) }
func (n ScriptHeader) Name() Identifier { return Identifier{n.node(ScriptHeaderSlotName)} }

// Extends returns the parent script clause, or a zero [ExtendsClause].
func (n ScriptHeader) Extends() ExtendsClause { return ExtendsClause{n.optional(ScriptHeaderSlotExtends)} }

func (n ScriptHeader) Flags() FlagList { return FlagList{n.node(ScriptHeaderSlotFlags)} }
func (n ScriptHeader) Newline() Token { return n.token(ScriptHeaderSlotNewline) }

// ScriptHeaderArgs holds the children of a new [ScriptHeader].
// Zero optional children are filled with [KindEmpty] nodes.
type ScriptHeaderArgs struct {
	Keyword Token
	Name    Identifier
	Extends ExtendsClause // Optional.
	Flags   FlagList
	Newline Token
}

// NewScriptHeader allocates a new [ScriptHeader].
func (n Nodes) NewScriptHeader(args ScriptHeaderArgs) ScriptHeader {
	return ScriptHeader{n.store.NewNode(KindScriptHeader,
		args.Keyword.Element(),
		args.Name.Element(),
		n.opt(args.Extends.Node),
		args.Flags.Element(),
		args.Newline.Element(),
	)}
}

// ExtendsClause names the parent of a script.
type ExtendsClause struct{ Node }

// Slots of [ExtendsClause], for use with [Node.Child] and [Red.Child].
const (
	ExtendsClauseSlotKeyword = iota
	ExtendsClauseSlotName
)

func (n ExtendsClause) Keyword() Token { return n.token(ExtendsClauseSlotKeyword) }
func (n ExtendsClause) Name() Identifier { return Identifier{n.node(ExtendsClauseSlotName)} }

// ExtendsClauseArgs holds the children of a new [ExtendsClause].
type ExtendsClauseArgs struct {
	Keyword Token
	Name    Identifier
}

// NewExtendsClause allocates a new [ExtendsClause].
func (n Nodes) NewExtendsClause(args ExtendsClauseArgs) ExtendsClause {
	return ExtendsClause{n.store.NewNode(KindExtendsClause,
		args.Keyword.Element(),
		args.Name.Element(),
	)}
}

// DefinitionList is the sequence of definitions in a script, state or full
// property.
type DefinitionList struct{ Node }

// Len returns the number of definitions in this list.
func (n DefinitionList) Len() int { return n.NumChildren() }

// At returns the ith element of this list.
func (n DefinitionList) At(i int) Definition { return Definition{n.node(i)} }

// All returns the elements of this list in order.
func (n DefinitionList) All() iter.Seq[Definition] {
	return func(yield func(Definition) bool) {
		for i := range n.Len() {
			if !yield(n.At(i)) {
				return
			}
		}
	}
}

// NewDefinitionList allocates a new [DefinitionList].
func (n Nodes) NewDefinitionList(elems ...Definition) DefinitionList {
	children := make([]Element, len(elems))
	for i, elem := range elems {
		children[i] = elem.Element()
	}
	return DefinitionList{n.store.NewNode(KindDefinitionList, children...)}
}

// ImportStatement imports the global functions of another script.
type ImportStatement struct{ Node }

// Slots of [ImportStatement], for use with [Node.Child] and [Red.Child].
const (
	ImportStatementSlotKeyword = iota
	ImportStatementSlotName
	ImportStatementSlotNewline
)

func (n ImportStatement) Keyword() Token { return n.token(ImportStatementSlotKeyword) }
func (n ImportStatement) Name() Identifier { return Identifier{n.node(ImportStatementSlotName)} }
func (n ImportStatement) Newline() Token { return n.token(ImportStatementSlotNewline) }

// ImportStatementArgs holds the children of a new [ImportStatement].
type ImportStatementArgs struct {
	Keyword Token
	Name    Identifier
	Newline Token
}

// NewImportStatement allocates a new [ImportStatement].
func (n Nodes) NewImportStatement(args ImportStatementArgs) ImportStatement {
	return ImportStatement{n.store.NewNode(KindImportStatement,
		args.Keyword.Element(),
		args.Name.Element(),
		args.Newline.Element(),
	)}
}

// VariableDefinition is a script-level variable.
//
//	Int count = 0 Conditional
type VariableDefinition struct{ Node }

// Slots of [VariableDefinition], for use with [Node.Child] and [Red.Child].
const (
	VariableDefinitionSlotType = iota
	VariableDefinitionSlotName
	VariableDefinitionSlotInitializer
	VariableDefinitionSlotFlags
	VariableDefinitionSlotNewline
)

func (n VariableDefinition) Type() TypeIdentifier { return TypeIdentifier{n.node(VariableDefinitionSlotType)} }
func (n VariableDefinition) Name() Identifier { return Identifier{n.node(VariableDefinitionSlotName)} }
func (n VariableDefinition) Initializer() Initializer { return Initializer{n.optional(VariableDefinitionSlotInitializer)} }
func (n VariableDefinition) Flags() FlagList { return FlagList{n.node(VariableDefinitionSlotFlags)} }
func (n VariableDefinition) Newline() Token { return n.token(VariableDefinitionSlotNewline) }

// VariableDefinitionArgs holds the children of a new [VariableDefinition].
// Zero optional children are filled with [KindEmpty] nodes.
type VariableDefinitionArgs struct {
	Type        TypeIdentifier
	Name        Identifier
	Initializer Initializer // Optional.
	Flags       FlagList
	Newline     Token
}

// NewVariableDefinition allocates a new [VariableDefinition].
func (n Nodes) NewVariableDefinition(args VariableDefinitionArgs) VariableDefinition {
	return VariableDefinition{n.store.NewNode(KindVariableDefinition,
		args.Type.Element(),
		args.Name.Element(),
		n.opt(args.Initializer.Node),
		args.Flags.Element(),
		args.Newline.Element(),
	)}
}

// PropertyDefinition is a property, either auto or full.
//
// An auto property has an Auto or AutoReadOnly flag and no body. A full
// property has a body holding its Get and Set functions.
type PropertyDefinition struct{ Node }

// Slots of [PropertyDefinition], for use with [Node.Child] and [Red.Child].
const (
	PropertyDefinitionSlotType = iota
	PropertyDefinitionSlotKeyword
	PropertyDefinitionSlotName
	PropertyDefinitionSlotInitializer
	PropertyDefinitionSlotFlags
	PropertyDefinitionSlotNewline
	PropertyDefinitionSlotBody
)

func (n PropertyDefinition) Type() TypeIdentifier { return TypeIdentifier{n.node(PropertyDefinitionSlotType)} }
func (n PropertyDefinition) Keyword() Token { return n.token(PropertyDefinitionSlotKeyword) }
func (n PropertyDefinition) Name() Identifier { return Identifier{n.node(PropertyDefinitionSlotName)} }
func (n PropertyDefinition) Initializer() Initializer { return Initializer{n.optional(PropertyDefinitionSlotInitializer)} }
func (n PropertyDefinition) Flags() FlagList { return FlagList{n.node(PropertyDefinitionSlotFlags)} }
func (n PropertyDefinition) Newline() Token { return n.token(PropertyDefinitionSlotNewline) }

// Body returns the body of a full property, or a zero [PropertyBody] for
// an auto property.
func (n PropertyDefinition) Body() PropertyBody { return PropertyBody{n.optional(PropertyDefinitionSlotBody)} }

// PropertyDefinitionArgs holds the children of a new [PropertyDefinition].
// Zero optional children are filled with [KindEmpty] nodes.
type PropertyDefinitionArgs struct {
	Type        TypeIdentifier
	Keyword     Token
	Name        Identifier
	Initializer Initializer // Optional.
	Flags       FlagList
	Newline     Token
	Body        PropertyBody // Optional.
}

// NewPropertyDefinition allocates a new [PropertyDefinition].
func (n Nodes) NewPropertyDefinition(args PropertyDefinitionArgs) PropertyDefinition {
	return PropertyDefinition{n.store.NewNode(KindPropertyDefinition,
		args.Type.Element(),
		args.Keyword.Element(),
		args.Name.Element(),
		n.opt(args.Initializer.Node),
		args.Flags.Element(),
		args.Newline.Element(),
		n.opt(args.Body.Node),
	)}
}

// PropertyBody holds the functions of a full property up to EndProperty.
type PropertyBody struct{ Node }

// Slots of [PropertyBody], for use with [Node.Child] and [Red.Child].
const (
	PropertyBodySlotDefinitions = iota
	PropertyBodySlotEndKeyword
	PropertyBodySlotNewline
)

func (n PropertyBody) Definitions() DefinitionList { return DefinitionList{n.node(PropertyBodySlotDefinitions)} }
func (n PropertyBody) EndKeyword() Token { return n.token(PropertyBodySlotEndKeyword) }
func (n PropertyBody) Newline() Token { return n.token(PropertyBodySlotNewline) }

// PropertyBodyArgs holds the children of a new [PropertyBody].
type PropertyBodyArgs struct {
	Definitions DefinitionList
	EndKeyword  Token
	Newline     Token
}

// NewPropertyBody allocates a new [PropertyBody].
func (n Nodes) NewPropertyBody(args PropertyBodyArgs) PropertyBody {
	return PropertyBody{n.store.NewNode(KindPropertyBody,
		args.Definitions.Element(),
		args.EndKeyword.Element(),
		args.Newline.Element(),
	)}
}

// StateDefinition is a State block.
//
//	Auto State Waiting
//	  Event OnActivate(ObjectReference akActionRef)
//	  EndEvent
//	EndState
type StateDefinition struct{ Node }

// Slots of [StateDefinition], for use with [Node.Child] and [Red.Child].
const (
	StateDefinitionSlotFlags = iota
	StateDefinitionSlotKeyword
	StateDefinitionSlotName
	StateDefinitionSlotNewline
	StateDefinitionSlotDefinitions
	StateDefinitionSlotEndKeyword
	StateDefinitionSlotEndNewline
)

// Flags returns the state's flags; Auto marks the initial state.
func (n StateDefinition) Flags() FlagList { return FlagList{n.node(StateDefinitionSlotFlags)} }

func (n StateDefinition) Keyword() Token { return n.token(StateDefinitionSlotKeyword) }
func (n StateDefinition) Name() Identifier { return Identifier{n.node(StateDefinitionSlotName)} }
func (n StateDefinition) Newline() Token { return n.token(StateDefinitionSlotNewline) }
func (n StateDefinition) Definitions() DefinitionList { return DefinitionList{n.node(StateDefinitionSlotDefinitions)} }
func (n StateDefinition) EndKeyword() Token { return n.token(StateDefinitionSlotEndKeyword) }
func (n StateDefinition) EndNewline() Token { return n.token(StateDefinitionSlotEndNewline) }

// StateDefinitionArgs holds the children of a new [StateDefinition].
type StateDefinitionArgs struct {
	Flags       FlagList
	Keyword     Token
	Name        Identifier
	Newline     Token
	Definitions DefinitionList
	EndKeyword  Token
	EndNewline  Token
}

// NewStateDefinition allocates a new [StateDefinition].
func (n Nodes) NewStateDefinition(args StateDefinitionArgs) StateDefinition {
	return StateDefinition{n.store.NewNode(KindStateDefinition,
		args.Flags.Element(),
		args.Keyword.Element(),
		args.Name.Element(),
		args.Newline.Element(),
		args.Definitions.Element(),
		args.EndKeyword.Element(),
		args.EndNewline.Element(),
	)}
}

// FunctionDefinition is a function: its header line and, unless it is
// Native, its body.
type FunctionDefinition struct{ Node }

// Slots of [FunctionDefinition], for use with [Node.Child] and [Red.Child].
const (
	FunctionDefinitionSlotHeader = iota
	FunctionDefinitionSlotBody
)

func (n FunctionDefinition) Header() FunctionHeader { return FunctionHeader{n.node(FunctionDefinitionSlotHeader)} }

// Body returns the body, or a zero [FunctionBody] for a native function.
func (n FunctionDefinition) Body() FunctionBody { return FunctionBody{n.optional(FunctionDefinitionSlotBody)} }

// FunctionDefinitionArgs holds the children of a new [FunctionDefinition].
// Zero optional children are filled with [KindEmpty] nodes.
type FunctionDefinitionArgs struct {
	Header FunctionHeader
	Body   FunctionBody // Optional.
}

// NewFunctionDefinition allocates a new [FunctionDefinition].
func (n Nodes) NewFunctionDefinition(args FunctionDefinitionArgs) FunctionDefinition {
	return FunctionDefinition{n.store.NewNode(KindFunctionDefinition,
		args.Header.Element(),
		n.opt(args.Body.Node),
	)}
}

// EventDefinition is an event handler.
type EventDefinition struct{ Node }

// Slots of [EventDefinition], for use with [Node.Child] and [Red.Child].
const (
	EventDefinitionSlotHeader = iota
	EventDefinitionSlotBody
)

func (n EventDefinition) Header() EventHeader { return EventHeader{n.node(EventDefinitionSlotHeader)} }
func (n EventDefinition) Body() FunctionBody { return FunctionBody{n.optional(EventDefinitionSlotBody)} }

// EventDefinitionArgs holds the children of a new [EventDefinition].
// Zero optional children are filled with [KindEmpty] nodes.
type EventDefinitionArgs struct {
	Header EventHeader
	Body   FunctionBody // Optional.
}

// NewEventDefinition allocates a new [EventDefinition].
func (n Nodes) NewEventDefinition(args EventDefinitionArgs) EventDefinition {
	return EventDefinition{n.store.NewNode(KindEventDefinition,
		args.Header.Element(),
		n.opt(args.Body.Node),
	)}
}

// FunctionHeader is the line that opens a function.
//
//	Int Function Add(Int a, Int b = 1) Global Native
type FunctionHeader struct{ Node }

// Slots of [FunctionHeader], for use with [Node.Child] and [Red.Child].
const (
	FunctionHeaderSlotReturnType = iota
	FunctionHeaderSlotKeyword
	FunctionHeaderSlotName
	FunctionHeaderSlotOpen
	FunctionHeaderSlotParameters
	FunctionHeaderSlotClose
	FunctionHeaderSlotFlags
	FunctionHeaderSlotNewline
)

// ReturnType returns the declared return type, or a zero
// [TypeIdentifier] if the function does not return a value.
func (n FunctionHeader) ReturnType() TypeIdentifier { return TypeIdentifier{n.optional(FunctionHeaderSlotReturnType)} }

func (n FunctionHeader) Keyword() Token { return n.token(FunctionHeaderSlotKeyword) }
func (n FunctionHeader) Name() Identifier { return Identifier{n.node(FunctionHeaderSlotName)} }
func (n FunctionHeader) Open() Token { return n.token(FunctionHeaderSlotOpen) }
func (n FunctionHeader) Parameters() ParameterList { return ParameterList{n.node(FunctionHeaderSlotParameters)} }
func (n FunctionHeader) Close() Token { return n.token(FunctionHeaderSlotClose) }
func (n FunctionHeader) Flags() FlagList { return FlagList{n.node(FunctionHeaderSlotFlags)} }
func (n FunctionHeader) Newline() Token { return n.token(FunctionHeaderSlotNewline) }

// FunctionHeaderArgs holds the children of a new [FunctionHeader].
// Zero optional children are filled with [KindEmpty] nodes.
type FunctionHeaderArgs struct {
	ReturnType TypeIdentifier // Optional.
	Keyword    Token
	Name       Identifier
	Open       Token
	Parameters ParameterList
	Close      Token
	Flags      FlagList
	Newline    Token
}

// NewFunctionHeader allocates a new [FunctionHeader].
func (n Nodes) NewFunctionHeader(args FunctionHeaderArgs) FunctionHeader {
	return FunctionHeader{n.store.NewNode(KindFunctionHeader,
		n.opt(args.ReturnType.Node),
		args.Keyword.Element(),
		args.Name.Element(),
		args.Open.Element(),
		args.Parameters.Element(),
		args.Close.Element(),
		args.Flags.Element(),
		args.Newline.Element(),
	)}
}

// EventHeader is the line that opens an event.
type EventHeader struct{ Node }

// Slots of [EventHeader], for use with [Node.Child] and [Red.Child].
const (
	EventHeaderSlotKeyword = iota
	EventHeaderSlotName
	EventHeaderSlotOpen
	EventHeaderSlotParameters
	EventHeaderSlotClose
	EventHeaderSlotFlags
	EventHeaderSlotNewline
)

func (n EventHeader) Keyword() Token { return n.token(EventHeaderSlotKeyword) }
func (n EventHeader) Name() Identifier { return Identifier{n.node(EventHeaderSlotName)} }
func (n EventHeader) Open() Token { return n.token(EventHeaderSlotOpen) }
func (n EventHeader) Parameters() ParameterList { return ParameterList{n.node(EventHeaderSlotParameters)} }
func (n EventHeader) Close() Token { return n.token(EventHeaderSlotClose) }
func (n EventHeader) Flags() FlagList { return FlagList{n.node(EventHeaderSlotFlags)} }
func (n EventHeader) Newline() Token { return n.token(EventHeaderSlotNewline) }

// EventHeaderArgs holds the children of a new [EventHeader].
type EventHeaderArgs struct {
	Keyword    Token
	Name       Identifier
	Open       Token
	Parameters ParameterList
	Close      Token
	Flags      FlagList
	Newline    Token
}

// NewEventHeader allocates a new [EventHeader].
func (n Nodes) NewEventHeader(args EventHeaderArgs) EventHeader {
	return EventHeader{n.store.NewNode(KindEventHeader,
		args.Keyword.Element(),
		args.Name.Element(),
		args.Open.Element(),
		args.Parameters.Element(),
		args.Close.Element(),
		args.Flags.Element(),
		args.Newline.Element(),
	)}
}

// FunctionBody is the statements of a function or event, followed by the
// EndFunction or EndEvent line.
type FunctionBody struct{ Node }

// Slots of [FunctionBody], for use with [Node.Child] and [Red.Child].
const (
	FunctionBodySlotStatements = iota
	FunctionBodySlotEndKeyword
	FunctionBodySlotNewline
)

func (n FunctionBody) Statements() StatementList { return StatementList{n.node(FunctionBodySlotStatements)} }
func (n FunctionBody) EndKeyword() Token { return n.token(FunctionBodySlotEndKeyword) }
func (n FunctionBody) Newline() Token { return n.token(FunctionBodySlotNewline) }

// FunctionBodyArgs holds the children of a new [FunctionBody].
type FunctionBodyArgs struct {
	Statements StatementList
	EndKeyword Token
	Newline    Token
}

// NewFunctionBody allocates a new [FunctionBody].
func (n Nodes) NewFunctionBody(args FunctionBodyArgs) FunctionBody {
	return FunctionBody{n.store.NewNode(KindFunctionBody,
		args.Statements.Element(),
		args.EndKeyword.Element(),
		args.Newline.Element(),
	)}
}

// ParameterList is the comma-separated parameters of a header.
type ParameterList struct{ Node }

// Len returns the number of parameters in this list.
func (n ParameterList) Len() int { return (n.NumChildren() + 1) / 2 }

// At returns the ith element of this list.
func (n ParameterList) At(i int) Parameter { return Parameter{n.node(2 * i)} }

// Comma returns the comma after the ith element.
//
// Panics if i is the last element.
func (n ParameterList) Comma(i int) Token { return n.token(2*i + 1) }

// All returns the elements of this list in order.
func (n ParameterList) All() iter.Seq[Parameter] {
	return func(yield func(Parameter) bool) {
		for i := range n.Len() {
			if !yield(n.At(i)) {
				return
			}
		}
	}
}

// NewParameterList allocates a new [ParameterList]. There must be one fewer comma than
// elements, or none if there are no elements.
func (n Nodes) NewParameterList(elems []Parameter, commas []Token) ParameterList {
	if len(commas) != max(len(elems)-1, 0) {
		panic(fmt.Sprintf("papyrus/syntax: %d commas for %d elements of ParameterList", len(commas), len(elems)))
	}
	children := make([]Element, 0, len(elems)+len(commas))
	for i, elem := range elems {
		if i > 0 {
			children = append(children, commas[i-1].Element())
		}
		children = append(children, elem.Element())
	}
	return ParameterList{n.store.NewNode(KindParameterList, children...)}
}

// Parameter is a typed parameter with an optional default value.
type Parameter struct{ Node }

// Slots of [Parameter], for use with [Node.Child] and [Red.Child].
const (
	ParameterSlotType = iota
	ParameterSlotName
	ParameterSlotDefault
)

func (n Parameter) Type() TypeIdentifier { return TypeIdentifier{n.node(ParameterSlotType)} }
func (n Parameter) Name() Identifier { return Identifier{n.node(ParameterSlotName)} }

// Default returns the default value clause, or a zero [Initializer].
func (n Parameter) Default() Initializer { return Initializer{n.optional(ParameterSlotDefault)} }

// ParameterArgs holds the children of a new [Parameter].
// Zero optional children are filled with [KindEmpty] nodes.
type ParameterArgs struct {
	Type    TypeIdentifier
	Name    Identifier
	Default Initializer // Optional.
}

// NewParameter allocates a new [Parameter].
func (n Nodes) NewParameter(args ParameterArgs) Parameter {
	return Parameter{n.store.NewNode(KindParameter,
		args.Type.Element(),
		args.Name.Element(),
		n.opt(args.Default.Node),
	)}
}

// TypeIdentifier names a type: a builtin type keyword or a script name,
// optionally followed by [] for arrays.
type TypeIdentifier struct{ Node }

// Slots of [TypeIdentifier], for use with [Node.Child] and [Red.Child].
const (
	TypeIdentifierSlotName = iota
	TypeIdentifierSlotArray
)

func (n TypeIdentifier) Name() Token { return n.token(TypeIdentifierSlotName) }
func (n TypeIdentifier) Array() ArrayTypeSuffix { return ArrayTypeSuffix{n.optional(TypeIdentifierSlotArray)} }

// TypeIdentifierArgs holds the children of a new [TypeIdentifier].
// Zero optional children are filled with [KindEmpty] nodes.
type TypeIdentifierArgs struct {
	Name  Token
	Array ArrayTypeSuffix // Optional.
}

// NewTypeIdentifier allocates a new [TypeIdentifier].
func (n Nodes) NewTypeIdentifier(args TypeIdentifierArgs) TypeIdentifier {
	return TypeIdentifier{n.store.NewNode(KindTypeIdentifier,
		args.Name.Element(),
		n.opt(args.Array.Node),
	)}
}

// ArrayTypeSuffix is the [] after an array type.
type ArrayTypeSuffix struct{ Node }

// Slots of [ArrayTypeSuffix], for use with [Node.Child] and [Red.Child].
const (
	ArrayTypeSuffixSlotOpen = iota
	ArrayTypeSuffixSlotClose
)

func (n ArrayTypeSuffix) Open() Token { return n.token(ArrayTypeSuffixSlotOpen) }
func (n ArrayTypeSuffix) Close() Token { return n.token(ArrayTypeSuffixSlotClose) }

// ArrayTypeSuffixArgs holds the children of a new [ArrayTypeSuffix].
type ArrayTypeSuffixArgs struct {
	Open  Token
	Close Token
}

// NewArrayTypeSuffix allocates a new [ArrayTypeSuffix].
func (n Nodes) NewArrayTypeSuffix(args ArrayTypeSuffixArgs) ArrayTypeSuffix {
	return ArrayTypeSuffix{n.store.NewNode(KindArrayTypeSuffix,
		args.Open.Element(),
		args.Close.Element(),
	)}
}

// FlagList is a sequence of flag keywords, such as Native or Hidden.
type FlagList struct{ Node }

// Len returns the number of flags in this list.
func (n FlagList) Len() int { return n.NumChildren() }

// At returns the ith element of this list.
func (n FlagList) At(i int) Token { return n.token(i) }

// All returns the elements of this list in order.
func (n FlagList) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := range n.Len() {
			if !yield(n.At(i)) {
				return
			}
		}
	}
}

// Has returns whether this list contains a flag of the given kind.
func (n FlagList) Has(kind token.Kind) bool {
	for flag := range n.All() {
		if flag.Kind() == kind {
			return true
		}
	}
	return false
}

// NewFlagList allocates a new [FlagList].
func (n Nodes) NewFlagList(elems ...Token) FlagList {
	children := make([]Element, len(elems))
	for i, elem := range elems {
		children[i] = elem.Element()
	}
	return FlagList{n.store.NewNode(KindFlagList, children...)}
}

// Initializer is = followed by a value.
type Initializer struct{ Node }

// Slots of [Initializer], for use with [Node.Child] and [Red.Child].
const (
	InitializerSlotEquals = iota
	InitializerSlotValue
)

func (n Initializer) Equals() Token { return n.token(InitializerSlotEquals) }
func (n Initializer) Value() Expr { return Expr{n.node(InitializerSlotValue)} }

// InitializerArgs holds the children of a new [Initializer].
type InitializerArgs struct {
	Equals Token
	Value  Expr
}

// NewInitializer allocates a new [Initializer].
func (n Nodes) NewInitializer(args InitializerArgs) Initializer {
	return Initializer{n.store.NewNode(KindInitializer,
		args.Equals.Element(),
		args.Value.Element(),
	)}
}

// Empty fills an optional slot that is absent from the source.
type Empty struct{ Node }

// NewEmpty allocates a new [Empty].
func (n Nodes) NewEmpty() Empty { return Empty{n.store.NewEmpty()} }
