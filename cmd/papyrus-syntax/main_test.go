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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/reparse"
)

const (
	counter = "ScriptName Counter\n\nInt Function Next(Int n)\n\tReturn n + 1\nEndFunction\n"
	broken  = "ScriptName Foo\nFunction Bar(\n"
)

var defaults = config{LogLevel: "info", ColumnUnits: "width"}

func newFS(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/scripts/Counter.psc", []byte(counter), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/scripts/broken/Foo.psc", []byte(broken), 0o644))
	return fs
}

func run(t *testing.T, fs afero.Fs, conf config, args ...string) (string, error) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	root := newRootCommand(logger, fs, conf)
	var out bytes.Buffer
	root.cmd.SetOut(&out)
	root.cmd.SetErr(&out)
	root.cmd.SetArgs(args)
	err := root.cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParse(t *testing.T) {
	t.Parallel()

	out, err := run(t, newFS(t), defaults, "parse", "/scripts/Counter.psc")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	out, err := run(t, newFS(t), defaults, "parse", "--compact", "/scripts/broken/Foo.psc")
	require.ErrorIs(t, err, errSyntax)
	assert.Equal(t,
		"/scripts/broken/Foo.psc:2:14: error: expected `)`, found newline [syntax-missing]\n"+
			"/scripts/broken/Foo.psc:3:1: error: expected `EndFunction`, found end of file [syntax-missing]\n",
		out,
	)

	// The full format ends with a summary.
	out, err = run(t, newFS(t), defaults, "parse", "/scripts/broken/Foo.psc")
	require.ErrorIs(t, err, errSyntax)
	assert.Contains(t, out, "encountered 2 errors")
}

func TestParseDir(t *testing.T) {
	t.Parallel()

	out, err := run(t, newFS(t), config{LogLevel: "debug", ColumnUnits: "utf16", Parallelism: 1}, "parse", "--compact", "/scripts")
	require.ErrorIs(t, err, errSyntax)
	assert.Contains(t, err.Error(), "2 in 1 of 2 files")
	assert.Equal(t, 2, strings.Count(out, "\n"))

	_, err = run(t, newFS(t), defaults, "parse", "/nowhere")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errSyntax)
}

func TestDump(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/A.psc", []byte("ScriptName A\n"), 0o644))

	out, err := run(t, fs, defaults, "dump", "--skip-empty", "/A.psc")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, "Script", fromYAML["kind"])

	out, err = run(t, fs, defaults, "dump", "--skip-empty", "--format", "json", "/A.psc")
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, "Script", fromJSON["kind"])

	_, err = run(t, fs, defaults, "dump", "--format", "xml", "/A.psc")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestOutline(t *testing.T) {
	t.Parallel()

	out, err := run(t, newFS(t), defaults, "outline", "/scripts/Counter.psc")
	require.NoError(t, err)
	assert.Equal(t, "script Counter 1:12\n  function Next 3:14\n", out)

	out, err = run(t, newFS(t), defaults, "outline", "--details", "/scripts/Counter.psc")
	require.NoError(t, err)
	assert.Contains(t, out, "function Next 3:14  Int Function Next(Int n)\n")
}

func TestEdit(t *testing.T) {
	t.Parallel()

	fs := newFS(t)
	one := strings.Index(counter, "+ 1") + 2
	out, err := run(t, fs, defaults, "edit",
		"--start", fmt.Sprint(one), "--end", fmt.Sprint(one+1), "--text", "2",
		"--write", "/scripts/Counter.psc",
	)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("[%d:%d]\"2\": token\n", one, one+1), out)

	data, err := afero.ReadFile(fs, "/scripts/Counter.psc")
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(counter, "+ 1", "+ 2", 1), string(data))

	// Without --end the edit is an insertion.
	out, err = run(t, fs, defaults, "edit", "--start", "0", "--text", "; note\n", "--print", "/scripts/Counter.psc")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "; note\n"+string(data)), out)
}

func TestEditOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := run(t, newFS(t), defaults, "edit", "--start", "1000", "/scripts/Counter.psc")
	require.ErrorIs(t, err, reparse.ErrOutOfRange)
}

func TestInvalidFlags(t *testing.T) {
	t.Parallel()

	_, err := run(t, newFS(t), config{LogLevel: "info", ColumnUnits: "furlongs"}, "parse", "/scripts/Counter.psc")
	require.ErrorContains(t, err, "unknown column unit")

	_, err = run(t, newFS(t), defaults, "--log-level", "chatty", "parse", "/scripts/Counter.psc")
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PAPYRUS_PARALLELISM", "4")
	t.Setenv("PAPYRUS_COLUMN_UNITS", "utf16")
	t.Setenv("PAPYRUS_COLOR", "true")

	conf, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config{Parallelism: 4, LogLevel: "info", ColumnUnits: "utf16", Color: true}, conf)

	t.Setenv("PAPYRUS_PARALLELISM", "many")
	_, err = loadConfig()
	require.Error(t, err)
}
