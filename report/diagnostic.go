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

package report

import (
	"fmt"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Red. Indicates input that does not conform to the grammar.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark

	noteLevel // Used internally within the diagnostic renderer.
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	case noteLevel:
		return "note"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Tag is a machine-readable identification for a diagnostic.
//
// Tags should be lowercase identifiers separated by dashes, e.g. my-error-tag.
// A package that generates diagnostics with tags should expose those tags as
// constants.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("papyrus/report: set diagnostic tag more than once")
	}
	d.tag = t
}

// Diagnostic is a problem found in some input, rendered by a [Renderer].
//
// To construct one, call a function like [Report.Errorf] and then apply
// options with [Diagnostic.With]. Every diagnostic should have at least one
// [Snippet] or an [InFile].
type Diagnostic struct {
	tag     Tag
	message string
	level   Level

	inFile      string
	annotations []Annotation
	notes, help []string
}

// Annotation is an annotated span within a [Diagnostic], rendered as an
// underline below the source code.
type Annotation struct {
	source.Span

	// A message to show under the span. May be empty.
	Message string

	// Whether this is the primary annotation, which is the first one added.
	Primary bool
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Tag returns this diagnostic's tag, if it has one.
func (d *Diagnostic) Tag() Tag { return d.tag }

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool { return d.tag == tag }

// Message returns this diagnostic's main message.
func (d *Diagnostic) Message() string { return d.message }

// Level returns this diagnostic's level.
func (d *Diagnostic) Level() Level { return d.level }

// Annotations returns this diagnostic's annotated spans.
func (d *Diagnostic) Annotations() []Annotation { return d.annotations }

// Notes returns the notes attached with [Note].
func (d *Diagnostic) Notes() []string { return d.notes }

// Help returns the suggestions attached with [Help].
func (d *Diagnostic) Help() []string { return d.help }

// Primary returns this diagnostic's primary span, or the zero span if it has
// none.
func (d *Diagnostic) Primary() source.Span {
	for _, a := range d.annotations {
		if a.Primary {
			return a.Span
		}
	}
	return source.Span{}
}

// Path returns the path of the file this diagnostic is about.
func (d *Diagnostic) Path() string {
	if span := d.Primary(); !span.IsZero() {
		return span.Path()
	}
	return d.inFile
}

// With applies the given options to this diagnostic.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// String implements [fmt.Stringer], using the compact rendering.
func (d *Diagnostic) String() string {
	return Renderer{Compact: true}.Diagnostic(d)
}

// Message returns an option that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return message(fmt.Sprintf(format, args...))
}

// InFile is an option that makes a diagnostic without a span mention a file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	if d.inFile != "" {
		panic("papyrus/report: set diagnostic path more than once")
	}
	d.inFile = string(f)
}

// Snippet returns an option that annotates a span of source code.
//
// Any additional arguments are passed to [fmt.Sprintf] to produce a message
// to go with the span. The first snippet added is the primary one.
//
// Returns nil if at is nil or has a zero span.
func Snippet(at source.Spanner, args ...any) DiagnosticOption {
	if at == nil {
		return nil
	}
	span := at.Span()
	if span.IsZero() {
		return nil
	}

	a := Annotation{Span: span}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("papyrus/report: expected string as first Snippet argument")
		}
		a.Message = fmt.Sprintf(format, args[1:]...)
	}
	return annotation(a)
}

// Note returns an option that provides context after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns an option that suggests how to resolve the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

type (
	annotation Annotation
	message    string
	note       string
	help       string
)

func (a annotation) Apply(d *Diagnostic) {
	a.Primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, Annotation(a))
}

func (m message) Apply(d *Diagnostic) {
	if d.message != "" {
		panic("papyrus/report: set diagnostic message more than once")
	}
	d.message = string(m)
}

func (n note) Apply(d *Diagnostic) { d.notes = append(d.notes, string(n)) }
func (h help) Apply(d *Diagnostic) { d.help = append(d.help, string(h)) }
