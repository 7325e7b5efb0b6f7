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
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/internal/dump"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/reparse"
)

// errDiverged is returned when an incremental reparse disagrees with a full
// parse of the same text.
var errDiverged = errors.New("incremental reparse differs from a full parse")

func (c *rootCommand) editCommand() *cobra.Command {
	var (
		edit        reparse.Edit
		write, show bool
	)
	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Apply an edit to a script and reparse it incrementally",
		Long: `Apply an edit to a script and reparse it incrementally.

Prints how the new tree was produced, then checks that it matches a full
parse of the edited text.`,
		Example: `
  # Replace bytes 120 to 125 with "total".
  papyrus-syntax edit --start 120 --end 125 --text total MyQuest.psc

  # Insert a line and save the result.
  papyrus-syntax edit --start 40 --text $'Import Game\n' --write MyQuest.psc`[1:],
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !cmd.Flags().Changed("end") {
				edit.End = edit.Start
			}

			ws := c.workspace()
			if _, err := c.open(ws, path); err != nil {
				return err
			}
			snap, err := ws.Update(path, edit)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", edit, snap.Mode); err != nil {
				return err
			}
			if err := checkSnapshot(snap); err != nil {
				return err
			}

			opts := dump.Options{Trivia: true}
			got, err := dump.YAML(snap.Tree, opts)
			if err != nil {
				return err
			}
			want, err := dump.YAML(parser.Parse(snap.File.Text()), opts)
			if err != nil {
				return err
			}
			if got != want {
				return fmt.Errorf("%s: %w", path, errDiverged)
			}

			if show {
				if _, err := fmt.Fprint(cmd.OutOrStdout(), snap.File.Text()); err != nil {
					return err
				}
			}
			if write {
				info, err := c.fs.Stat(path)
				if err != nil {
					return err
				}
				if err := afero.WriteFile(c.fs, path, []byte(snap.File.Text()), info.Mode()); err != nil {
					return err
				}
				c.logger.WithField("path", path).Info("wrote edited script")
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&edit.Start, "start", 0, "byte offset where the replaced range starts")
	flags.IntVar(&edit.End, "end", 0, "byte offset where the replaced range ends (defaults to --start)")
	flags.StringVar(&edit.Text, "text", "", "replacement text")
	flags.BoolVar(&show, "print", false, "print the edited text")
	flags.BoolVarP(&write, "write", "w", false, "write the edited text back to the file")
	return cmd
}
