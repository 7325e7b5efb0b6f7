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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/workspace"
)

func (c *rootCommand) parseCommand() *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "parse <file-or-directory>...",
		Short: "Parse scripts and report syntax errors",
		Long: `Parse scripts and report syntax errors.

Directories are searched recursively for .psc files. Every tree is also
checked to reproduce its input exactly.`,
		Example: `
  # Check every script under a directory.
  papyrus-syntax parse Scripts/Source

  # One line per diagnostic, columns in UTF-16 units.
  papyrus-syntax parse --compact --column-units utf16 MyQuest.psc`[1:],
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := c.workspace()
			for _, arg := range args {
				info, err := c.fs.Stat(arg)
				if err != nil {
					return err
				}
				if info.IsDir() {
					if _, err := ws.LoadDir(cmd.Context(), c.fs, arg); err != nil {
						return err
					}
					continue
				}
				if _, err := c.open(ws, arg); err != nil {
					return err
				}
			}

			renderer := c.renderer(compact)
			var errs, files int
			for _, path := range ws.Paths() {
				snap, _ := ws.Snapshot(path)
				if err := checkSnapshot(snap); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}

				n, _, err := renderer.Render(snap.Report, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if n > 0 {
					errs += n
					files++
				}
			}

			c.logger.WithFields(logrus.Fields{
				"files":  len(ws.Paths()),
				"errors": errs,
			}).Debug("parsed")
			if errs > 0 {
				return fmt.Errorf("%w: %d in %d of %d files", errSyntax, errs, files, len(ws.Paths()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&compact, "compact", false, "print one line per diagnostic")
	return cmd
}

// checkSnapshot checks that a snapshot's tree is consistent and reproduces
// the document's text.
func checkSnapshot(snap *workspace.Snapshot) error {
	if err := snap.Tree.Root().Verify(); err != nil {
		return err
	}
	if snap.Tree.Text() != snap.File.Text() {
		return errors.New("tree does not reproduce the input text")
	}
	return nil
}
