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

package workspace_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/outline"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/reparse"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/syntax"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/workspace"
)

const counter = "ScriptName Counter\n\nInt Function Next(Int n)\n\tReturn n + 1\nEndFunction\n"

const broken = "ScriptName Foo\nFunction Bar(\n"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	snap := ws.Open("Counter.psc", counter)
	assert.Equal(t, "Counter.psc", snap.Path)
	assert.Equal(t, 1, snap.Version)
	assert.Equal(t, reparse.Full, snap.Mode)
	assert.Equal(t, counter, snap.Tree.Text())
	assert.Equal(t, counter, snap.File.Text())
	assert.Zero(t, snap.Report.Len())

	got, ok := ws.Snapshot("Counter.psc")
	require.True(t, ok)
	assert.Same(t, snap, got)
	assert.Equal(t, []string{"Counter.psc"}, ws.Paths())

	symbols := snap.Symbols()
	require.Len(t, symbols.Children, 1)
	assert.Equal(t, "Next", symbols.Children[0].Name)
	assert.Equal(t, outline.Function, symbols.Children[0].Kind)
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	ws.Open("Counter.psc", counter)

	one := strings.Index(counter, "+ 1") + 2
	snap, err := ws.Update("Counter.psc", reparse.Edit{Start: one, End: one + 1, Text: "2"})
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Version)
	assert.Equal(t, reparse.Token, snap.Mode)
	assert.Equal(t, strings.Replace(counter, "+ 1", "+ 2", 1), snap.Tree.Text())
	require.NoError(t, snap.Tree.Root().Verify())

	// Each edit sees the text left by the previous one.
	snap, err = ws.Update("Counter.psc",
		reparse.Edit{Start: one, End: one + 1, Text: "30"},
		reparse.Edit{Start: one, End: one + 2, Text: "4"},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Version)
	assert.Equal(t, reparse.Token, snap.Mode)
	assert.Equal(t, strings.Replace(counter, "+ 1", "+ 4", 1), snap.Tree.Text())
	assert.Equal(t, snap.File.Text(), snap.Tree.Text())

	// No edits, no new version.
	same, err := ws.Update("Counter.psc")
	require.NoError(t, err)
	assert.Same(t, snap, same)

	snap, err = ws.Update("Counter.psc", reparse.Edit{Start: one, End: one + 1, Text: "4"})
	require.NoError(t, err)
	assert.Equal(t, reparse.Unchanged, snap.Mode)
	assert.Equal(t, 4, snap.Version)
}

func TestUpdateDiagnostics(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	snap := ws.Open("Foo.psc", broken)
	require.Equal(t, 2, snap.Report.Len())
	assert.Equal(t, syntax.TagMissing, snap.Report.Diagnostics[0].Tag())
	assert.Equal(t, "Foo.psc", snap.Report.Diagnostics[0].Path())

	at, err := ws.DiagnosticsAt("Foo.psc", 28)
	require.NoError(t, err)
	require.Len(t, at, 1)
	assert.Contains(t, at[0].Message(), "expected `)`")

	at, err = ws.DiagnosticsAt("Foo.psc", 0)
	require.NoError(t, err)
	assert.Empty(t, at)

	snap, err = ws.Update("Foo.psc", reparse.Edit{Start: 28, End: 28, Text: ")"})
	require.NoError(t, err)
	require.Equal(t, 1, snap.Report.Len())
	assert.Contains(t, snap.Report.Diagnostics[0].Message(), "expected `EndFunction`")
	assert.Empty(t, snap.DiagnosticsAt(28))

	// Matches what a fresh parse reports.
	fresh := workspace.New(workspace.Options{}).Open("Foo.psc", snap.Tree.Text())
	assert.Equal(t, messages(fresh), messages(snap))
}

func TestUpdateOutOfRange(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	before := ws.Open("Counter.psc", counter)

	_, err := ws.Update("Counter.psc",
		reparse.Edit{Start: 0, End: 0, Text: "; hello\n"},
		reparse.Edit{Start: len(counter) + 100, End: len(counter) + 100},
	)
	require.ErrorIs(t, err, reparse.ErrOutOfRange)
	assert.Contains(t, err.Error(), "edit 1")

	after, ok := ws.Snapshot("Counter.psc")
	require.True(t, ok)
	assert.Same(t, before, after)
}

func TestNotOpen(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	_, err := ws.Update("Nope.psc", reparse.Edit{})
	require.ErrorIs(t, err, workspace.ErrNotOpen)
	require.ErrorIs(t, ws.Close("Nope.psc"), workspace.ErrNotOpen)
	_, err = ws.DiagnosticsAt("Nope.psc", 0)
	require.ErrorIs(t, err, workspace.ErrNotOpen)

	_, ok := ws.Snapshot("Nope.psc")
	assert.False(t, ok)
	assert.Empty(t, ws.Paths())
}

func TestReopen(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	ws.Open("Counter.psc", counter)
	snap := ws.Open("Counter.psc", broken)
	assert.Equal(t, 2, snap.Version)
	assert.Equal(t, reparse.Full, snap.Mode)

	old, _ := ws.Snapshot("Counter.psc")
	require.NoError(t, ws.Close("Counter.psc"))
	_, ok := ws.Snapshot("Counter.psc")
	assert.False(t, ok)
	_, err := ws.Update("Counter.psc", reparse.Edit{})
	require.ErrorIs(t, err, workspace.ErrNotOpen)

	// Closed snapshots stay usable.
	assert.Equal(t, broken, old.Tree.Text())

	snap = ws.Open("Counter.psc", counter)
	assert.Equal(t, 1, snap.Version)
}

func TestConcurrentUpdates(t *testing.T) {
	t.Parallel()

	ws := workspace.New(workspace.Options{})
	ws.Open("Counter.psc", counter)
	one := strings.Index(counter, "+ 1") + 2

	const writers = 16
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := ws.Update("Counter.psc", reparse.Edit{Start: one, End: one + 1, Text: fmt.Sprint(i % 10)})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			snap, ok := ws.Snapshot("Counter.psc")
			if assert.True(t, ok) {
				assert.NoError(t, snap.Tree.Root().Verify())
				assert.Len(t, snap.Tree.Text(), len(counter))
			}
		}()
	}
	wg.Wait()

	snap, ok := ws.Snapshot("Counter.psc")
	require.True(t, ok)
	assert.Equal(t, writers+1, snap.Version)
	assert.Zero(t, snap.Report.Len())
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/scripts/Counter.psc", []byte(counter), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/scripts/sub/Foo.PSC", []byte(broken), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/scripts/readme.txt", []byte("not a script"), 0o644))

	ws := workspace.New(workspace.Options{Parallelism: 1})
	n, err := ws.LoadDir(context.Background(), fs, "/scripts")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"/scripts/Counter.psc", "/scripts/sub/Foo.PSC"}, ws.Paths())

	snap, ok := ws.Snapshot("/scripts/sub/Foo.PSC")
	require.True(t, ok)
	assert.Equal(t, 2, snap.Report.Len())
	assert.Equal(t, "/scripts/sub/Foo.PSC", snap.Report.Diagnostics[0].Path())
}

func TestLoadDirMany(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	for i := range 50 {
		text := strings.Replace(counter, "Counter", fmt.Sprintf("Counter%d", i), 1)
		require.NoError(t, afero.WriteFile(fs, fmt.Sprintf("/data/Counter%d.psc", i), []byte(text), 0o644))
	}

	ws := workspace.New(workspace.Options{Parallelism: 3, Pattern: "Counter1*.psc"})
	n, err := ws.LoadDir(context.Background(), fs, "/data")
	require.NoError(t, err)
	// Counter1 and Counter10 through Counter19.
	assert.Equal(t, 11, n)

	for _, path := range ws.Paths() {
		snap, _ := ws.Snapshot(path)
		assert.Equal(t, outline.Script, snap.Symbols().Kind)
		assert.True(t, strings.HasPrefix(snap.Symbols().Name, "Counter1"))
	}
}

func TestLoadDirErrors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/scripts/Counter.psc", []byte(counter), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := workspace.New(workspace.Options{}).LoadDir(ctx, fs, "/scripts")
	require.ErrorIs(t, err, context.Canceled)

	_, err = workspace.New(workspace.Options{}).LoadDir(context.Background(), fs, "/missing")
	require.Error(t, err)

	_, err = workspace.New(workspace.Options{Pattern: "[*.psc"}).LoadDir(context.Background(), fs, "/scripts")
	require.ErrorContains(t, err, "invalid pattern")
}

func messages(snap *workspace.Snapshot) []string {
	var out []string
	for _, d := range snap.Report.Diagnostics {
		out = append(out, d.Message())
	}
	return out
}
