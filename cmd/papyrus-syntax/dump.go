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

	"github.com/spf13/cobra"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/dump"
)

func (c *rootCommand) dumpCommand() *cobra.Command {
	var (
		format string
		opts   dump.Options
	)
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the syntax tree of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := c.open(c.workspace(), args[0])
			if err != nil {
				return err
			}

			var out string
			switch format {
			case "yaml":
				out, err = dump.YAML(snap.Tree, opts)
			case "json":
				var data []byte
				data, err = dump.JSON(snap.Tree, opts)
				out = string(data) + "\n"
			default:
				return fmt.Errorf("unknown format %q, expected yaml or json", format)
			}
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", "yaml", "output format: yaml or json")
	flags.BoolVar(&opts.Trivia, "trivia", false, "include the trivia of each token")
	flags.BoolVar(&opts.Spans, "spans", false, "include the byte range of each element")
	flags.BoolVar(&opts.SkipEmpty, "skip-empty", false, "leave out absent optional parts")
	return cmd
}
