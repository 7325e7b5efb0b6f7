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

package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/parser"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/reparse"
	"github.com/XxX-Daniil-underscore-Zaikin-XxX/papyrus-lang/report"
)

// DefaultPattern matches Papyrus source files regardless of the case of their
// extension.
const DefaultPattern = "**/*.[pP][sS][cC]"

// ErrNotOpen is returned when operating on a document that is not open.
var ErrNotOpen = errors.New("document not open")

// Options configures a [Workspace].
type Options struct {
	// Receives debug logs about loaded and edited documents. If nil, logs are
	// discarded.
	Logger logrus.FieldLogger

	// The maximum number of documents parsed at once by [Workspace.LoadDir].
	// Zero or negative defaults to GOMAXPROCS.
	Parallelism int

	// A doublestar pattern, relative to the loaded directory, selecting the
	// files [Workspace.LoadDir] opens. Defaults to [DefaultPattern].
	Pattern string
}

// Workspace is a collection of open documents.
//
// A Workspace is safe for concurrent use.
type Workspace struct {
	docs sync.Map // [string, *document]

	log     logrus.FieldLogger
	pattern string
	sema    *semaphore.Weighted
}

type document struct {
	mu     sync.RWMutex
	snap   *Snapshot
	closed bool
}

// New constructs an empty workspace.
func New(opts Options) *Workspace {
	if opts.Logger == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		opts.Logger = logger
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	if opts.Pattern == "" {
		opts.Pattern = DefaultPattern
	}

	return &Workspace{
		log:     opts.Logger,
		pattern: opts.Pattern,
		sema:    semaphore.NewWeighted(int64(opts.Parallelism)),
	}
}

// Open parses text and opens it as the document at path.
//
// Opening a path that is already open replaces its text; the version keeps
// counting up from the previous snapshot.
func (w *Workspace) Open(path, text string) *Snapshot {
	tree := parser.Parse(text)

	var doc *document
	for {
		d, _ := w.docs.LoadOrStore(path, new(document))
		doc = d.(*document) //nolint:errcheck // All values in this map are documents.
		doc.mu.Lock()
		if !doc.closed {
			break
		}
		// Lost a race with Close; the next LoadOrStore stores a fresh document.
		doc.mu.Unlock()
	}
	defer doc.mu.Unlock()

	version := 1
	if doc.snap != nil {
		version = doc.snap.Version + 1
	}
	doc.snap = newSnapshot(path, text, version, tree, reparse.Full)

	w.log.WithFields(logrus.Fields{
		"path":        path,
		"version":     version,
		"diagnostics": doc.snap.Report.Len(),
	}).Debug("opened document")
	return doc.snap
}

// Update applies edits in order to the document at path and returns the new
// snapshot.
//
// The offsets of each edit refer to the text produced by the edits before
// it. If any edit is out of range, the document is left unchanged and the
// returned error wraps [reparse.ErrOutOfRange].
func (w *Workspace) Update(path string, edits ...reparse.Edit) (*Snapshot, error) {
	doc := w.lookup(path)
	if doc == nil {
		return nil, fmt.Errorf("update %q: %w", path, ErrNotOpen)
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()
	if doc.snap == nil {
		return nil, fmt.Errorf("update %q: %w", path, ErrNotOpen)
	}
	if len(edits) == 0 {
		return doc.snap, nil
	}

	tree, text := doc.snap.Tree, doc.snap.File.Text()
	mode := reparse.Unchanged
	for i, edit := range edits {
		if err := edit.Check(len(text)); err != nil {
			return nil, fmt.Errorf("update %q: edit %d: %w", path, i, err)
		}

		var m reparse.Mode
		tree, m = reparse.Reparse(tree, edit)
		text = edit.Apply(text)
		mode = max(mode, m)

		w.log.WithFields(logrus.Fields{
			"path": path,
			"edit": edit,
			"mode": m,
		}).Debug("reparsed document")
	}

	doc.snap = newSnapshot(path, text, doc.snap.Version+1, tree, mode)
	return doc.snap, nil
}

// Close closes the document at path.
func (w *Workspace) Close(path string) error {
	d, ok := w.docs.LoadAndDelete(path)
	if !ok {
		return fmt.Errorf("close %q: %w", path, ErrNotOpen)
	}
	doc := d.(*document) //nolint:errcheck // All values in this map are documents.

	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.snap = nil
	doc.closed = true

	w.log.WithField("path", path).Debug("closed document")
	return nil
}

// Snapshot returns the current snapshot of the document at path.
func (w *Workspace) Snapshot(path string) (*Snapshot, bool) {
	doc := w.lookup(path)
	if doc == nil {
		return nil, false
	}

	doc.mu.RLock()
	defer doc.mu.RUnlock()
	return doc.snap, doc.snap != nil
}

// Paths returns the paths of all open documents.
//
// The returned slice is sorted.
func (w *Workspace) Paths() (paths []string) {
	w.docs.Range(func(path, _ any) bool {
		paths = append(paths, path.(string))
		return true
	})

	slices.Sort(paths)
	return
}

// DiagnosticsAt returns the diagnostics of the document at path whose spans
// cover offset.
func (w *Workspace) DiagnosticsAt(path string, offset int) ([]*report.Diagnostic, error) {
	snap, ok := w.Snapshot(path)
	if !ok {
		return nil, fmt.Errorf("diagnostics %q: %w", path, ErrNotOpen)
	}
	return snap.DiagnosticsAt(offset), nil
}

// LoadDir opens every file under root in fsys that matches the workspace's
// pattern, parsing them in parallel. Documents are keyed by their path in
// fsys.
//
// Returns the number of documents opened. If ctx is cancelled, or a file
// cannot be read, loading stops and the error is returned; documents opened
// before that stay open.
func (w *Workspace) LoadDir(ctx context.Context, fsys afero.Fs, root string) (int, error) {
	if !doublestar.ValidatePattern(w.pattern) {
		return 0, fmt.Errorf("load %q: invalid pattern %q", root, w.pattern)
	}

	var paths []string
	err := afero.Walk(fsys, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return ctx.Err()
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if ok, _ := doublestar.Match(w.pattern, filepath.ToSlash(rel)); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("load %q: %w", root, err)
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		group.Go(func() error {
			if err := w.sema.Acquire(ctx, 1); err != nil {
				return err
			}
			defer w.sema.Release(1)

			data, err := afero.ReadFile(fsys, path)
			if err != nil {
				return fmt.Errorf("load %q: %w", path, err)
			}
			w.Open(path, string(data))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return 0, err
	}

	w.log.WithFields(logrus.Fields{
		"root":      root,
		"documents": len(paths),
	}).Info("loaded directory")
	return len(paths), nil
}

func (w *Workspace) lookup(path string) *document {
	d, ok := w.docs.Load(path)
	if !ok {
		return nil
	}
	return d.(*document) //nolint:errcheck // All values in this map are documents.
}
