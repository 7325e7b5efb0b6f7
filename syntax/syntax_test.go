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

// everyKind is a script whose tree has an element of every kind.
const everyKind = `ScriptName Everything Extends Quest Conditional
Import Utility

Int Property Count = 0 Auto
Float fValue = 1.5

{ Adds things up. }
Int Function Sum(Int a, Int b = 2) Global
	Int total = (a + b) * 2
	If total > 10 && !bDone
		total -= 1
	ElseIf total == 0
		Return -1
	Else
		Debug.Notification("x" + total as String)
	EndIf
	While total < 5
		total += 1
	EndWhile
	Return total
EndFunction

Auto State Waiting
	Event OnInit()
		Actor[] actors = new Actor[5]
		actors[0] = Game.GetPlayer()
		RegisterForSingleUpdate(afInterval = 1.0)
	EndEvent
EndState

ObjectReference Property Target Hidden
	ObjectReference Function Get()
		Return None
	EndFunction
EndProperty
`
