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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/outline"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
)

func (c *rootCommand) outlineCommand() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "outline <file>",
		Short: "List the declarations of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := c.open(c.workspace(), args[0])
			if err != nil {
				return err
			}
			p := outlinePrinter{
				out:     cmd.OutOrStdout(),
				file:    snap.File,
				units:   c.renderer(false).Units,
				details: details,
			}
			return p.print(snap.Symbols(), 0)
		},
	}
	cmd.Flags().BoolVarP(&details, "details", "d", false, "print the declaration line of each symbol")
	return cmd
}

type outlinePrinter struct {
	out     io.Writer
	file    *source.File
	units   source.Unit
	details bool
}

func (p outlinePrinter) print(sym outline.Symbol, depth int) error {
	loc := p.file.Location(sym.NameStart, p.units)
	line := fmt.Sprintf("%s%s %s %d:%d", strings.Repeat("  ", depth), sym.Kind, sym.Name, loc.Line, loc.Column)
	if p.details {
		line += "  " + sym.Detail
	}
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return err
	}
	for _, child := range sym.Children {
		if err := p.print(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
