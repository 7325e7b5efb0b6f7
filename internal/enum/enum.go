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

// Command enum generates Go enums from yaml descriptions.
//
// To generate an enum next to its description, use
//
//	//go:generate go run github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/enum kind.yaml
//
// Each yaml file holds a list of [Enum]s; the output is written next to it,
// with .yaml replaced by .go. Several files may be passed at once.
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// binaryPath is the import path printed in the generated file header.
const binaryPath = "github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/enum"

//go:embed enum.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("enum.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
	"contains": slices.Contains[[]string],
}).Parse(tmplText))

// Enum describes one enum type.
type Enum struct {
	Name    string   `yaml:"name"`  // The name of the new type.
	Type    string   `yaml:"type"`  // The underlying integer type.
	Docs    string   `yaml:"docs"`  // Documentation for the type.
	Total   string   `yaml:"total"` // If set, a constant with the number of values.
	Methods []Method `yaml:"methods"`
	Values  []Value  `yaml:"values"`
}

// Value is one value of an [Enum], numbered from zero in order.
type Value struct {
	Name     string `yaml:"name"`
	Spelling string `yaml:"string"` // Returned by the String method; defaults to Name.
	Docs     string `yaml:"docs"`
}

// String returns this value's string form.
func (v Value) String() string {
	if v.Spelling == "" {
		return v.Name
	}
	return v.Spelling
}

// HasSuffixDocs returns whether this value's docs fit on the same line as
// the value itself.
func (v Value) HasSuffixDocs() bool {
	return v.Docs != "" && !strings.Contains(strings.TrimSpace(v.Docs), "\n")
}

// Method is a method generated for an [Enum].
type Method struct {
	Kind MethodKind `yaml:"kind"`
	Func string     `yaml:"name"` // Overrides the default name; required for from-string.
	Doc  string     `yaml:"docs"` // Overrides the default docs.
	Skip []string   `yaml:"skip"` // Values left out of a from-string table.
}

// MethodKind selects what a [Method] does.
type MethodKind string

const (
	MethodString     MethodKind = "string"      // Value to its string form.
	MethodGoString   MethodKind = "go-string"   // Value to its qualified Go name.
	MethodFromString MethodKind = "from-string" // String form back to a value.
)

// Name returns the name of the generated function.
func (m Method) Name() string {
	switch {
	case m.Func != "":
		return m.Func
	case m.Kind == MethodGoString:
		return "GoString"
	default:
		return "String"
	}
}

// Docs returns the doc comment of the generated function.
func (m Method) Docs() string {
	switch {
	case m.Doc != "":
		return m.Doc
	case m.Kind == MethodGoString && m.Func == "":
		return "GoString implements [fmt.GoStringer]."
	case m.Kind == MethodString && m.Func == "":
		return "String implements [fmt.Stringer]."
	default:
		return ""
	}
}

// validate reports the first problem that would make the generated code
// fail to compile or behave unexpectedly.
func (e *Enum) validate() error {
	if e.Name == "" || e.Type == "" {
		return errors.New("enum needs a name and a type")
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("%s: no values", e.Name)
	}

	names := make(map[string]bool)
	for _, v := range e.Values {
		if v.Name == "" {
			return fmt.Errorf("%s: value without a name", e.Name)
		}
		if names[v.Name] {
			return fmt.Errorf("%s: duplicate value %s", e.Name, v.Name)
		}
		names[v.Name] = true
	}

	for _, m := range e.Methods {
		switch m.Kind {
		case MethodString, MethodGoString:
		case MethodFromString:
			if m.Func == "" {
				return fmt.Errorf("%s: %s method needs a name", e.Name, m.Kind)
			}
			spellings := make(map[string]string)
			for _, v := range e.Values {
				if slices.Contains(m.Skip, v.Name) {
					continue
				}
				if prev, ok := spellings[v.String()]; ok {
					return fmt.Errorf("%s: %s and %s are both spelled %q", e.Name, prev, v.Name, v)
				}
				spellings[v.String()] = v.Name
			}
		default:
			return fmt.Errorf("%s: unknown method kind %q", e.Name, m.Kind)
		}
	}
	return nil
}

// makeDocs turns text into doc comment lines with the given indent.
func makeDocs(text, indent string) string {
	if text == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// generate renders the enums described in the yaml file at config into Go
// source for package pkg.
func generate(config, pkg string) ([]byte, error) {
	text, err := os.ReadFile(config)
	if err != nil {
		return nil, err
	}

	var enums []Enum
	if err := yaml.Unmarshal(text, &enums); err != nil {
		return nil, err
	}
	for i := range enums {
		if err := enums[i].validate(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Binary, Package, Config string
		YAML                    []Enum
	}{binaryPath, pkg, filepath.Base(config), enums})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}

func main() {
	pkg := os.Getenv("GOPACKAGE")
	var failed bool
	for _, config := range os.Args[1:] {
		if filepath.Ext(config) != ".yaml" {
			fmt.Fprintf(os.Stderr, "%s: not a .yaml file\n", config)
			failed = true
			continue
		}

		out, err := generate(config, pkg)
		if err == nil {
			err = os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", out, 0o644)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
