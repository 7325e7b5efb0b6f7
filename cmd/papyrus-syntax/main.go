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

// Command papyrus-syntax parses, inspects and edits Papyrus scripts.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger := &logrus.Logger{
		Out:       os.Stderr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	conf, err := loadConfig()
	if err != nil {
		logger.WithError(err).Error("invalid environment")
		os.Exit(2)
	}

	root := newRootCommand(logger, afero.NewOsFs(), conf)
	if err := root.cmd.ExecuteContext(ctx); err != nil {
		// Syntax errors have already been rendered.
		if !errors.Is(err, errSyntax) {
			logger.Error(err)
		}
		os.Exit(1)
	}
}
