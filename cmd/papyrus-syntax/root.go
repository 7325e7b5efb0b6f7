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
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/source"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/workspace"
)

// errSyntax is returned by commands whose input had syntax errors.
var errSyntax = errors.New("syntax errors")

// rootCommand keeps everything the subcommands share.
type rootCommand struct {
	cmd    *cobra.Command
	logger *logrus.Logger
	fs     afero.Fs

	verbose     bool
	logLevel    string
	units       string
	color       bool
	parallelism int
}

func newRootCommand(logger *logrus.Logger, fs afero.Fs, conf config) *rootCommand {
	c := &rootCommand{
		logger: logger,
		fs:     fs,
	}

	c.cmd = &cobra.Command{
		Use:               "papyrus-syntax",
		Short:             "Lossless syntax trees for Papyrus scripts",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.PersistentFlags().AddFlagSet(c.persistentFlagSet(conf))
	c.cmd.AddCommand(
		c.parseCommand(),
		c.dumpCommand(),
		c.outlineCommand(),
		c.editCommand(),
	)
	return c
}

func (c *rootCommand) persistentFlagSet(conf config) *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&c.logLevel, "log-level", conf.LogLevel, "log level")
	flags.StringVar(&c.units, "column-units", conf.ColumnUnits, "units of reported columns: bytes, runes, utf16 or width")
	flags.BoolVar(&c.color, "color", conf.Color, "colorize diagnostics")
	flags.IntVarP(&c.parallelism, "parallelism", "j", conf.Parallelism, "documents parsed at once, 0 for one per CPU")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		return err
	}
	if c.verbose {
		level = logrus.DebugLevel
	}
	c.logger.SetLevel(level)

	if _, err := source.ParseUnit(c.units); err != nil {
		return err
	}
	c.logger.WithField("command", cmd.Name()).Debug("starting")
	return nil
}

func (c *rootCommand) renderer(compact bool) report.Renderer {
	// Validated in persistentPreRunE.
	units, _ := source.ParseUnit(c.units)
	return report.Renderer{
		Compact:  compact,
		Colorize: c.color,
		Units:    units,
	}
}

func (c *rootCommand) workspace() *workspace.Workspace {
	return workspace.New(workspace.Options{
		Logger:      c.logger,
		Parallelism: c.parallelism,
	})
}

// open reads the file at path into ws.
func (c *rootCommand) open(ws *workspace.Workspace, path string) (*workspace.Snapshot, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return ws.Open(path, string(data)), nil
}
