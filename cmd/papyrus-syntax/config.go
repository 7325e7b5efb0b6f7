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

	"github.com/kelseyhightower/envconfig"
)

// config holds the defaults read from the environment. Flags override them.
type config struct {
	// PAPYRUS_PARALLELISM: documents parsed at once; zero means GOMAXPROCS.
	Parallelism int `envconfig:"parallelism"`
	// PAPYRUS_LOG_LEVEL: a logrus level name.
	LogLevel string `envconfig:"log_level" default:"info"`
	// PAPYRUS_COLUMN_UNITS: bytes, runes, utf16 or width.
	ColumnUnits string `envconfig:"column_units" default:"width"`
	// PAPYRUS_COLOR: colorize rendered diagnostics.
	Color bool `envconfig:"color"`
}

func loadConfig() (config, error) {
	var conf config
	if err := envconfig.Process("papyrus", &conf); err != nil {
		return config{}, fmt.Errorf("reading environment: %w", err)
	}
	return conf, nil
}
