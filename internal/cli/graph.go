// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordchain/cache"
	"github.com/katalvlaran/wordchain/wordgraph"
	"github.com/katalvlaran/wordchain/words"
)

// inputPath is the cache to read from.
func (e *env) inputPath(rf *rootFlags) string {
	if rf.graphInput != "" {
		return rf.graphInput
	}
	return e.cfg.Cache.Path
}

// outputPath is the cache to write to; "" means do not save.
func (e *env) outputPath(rf *rootFlags) string {
	p := rf.graphOutput
	if p == "" {
		if e.cfg.Cache.Disabled {
			return ""
		}
		p = e.cfg.Cache.Path
	}
	if p == "/dev/null" || p == "-" {
		return ""
	}
	return p
}

// resolveGraph returns the word graph for this invocation.
//
// Explicit word lists are always honored: a cached graph is reused only if
// it was built from exactly that vocabulary, otherwise the graph is rebuilt
// and saved. Without word lists the cached graph is loaded; if there is none
// the system dictionary is used.
func (e *env) resolveGraph(ctx context.Context, rf *rootFlags) (*wordgraph.Graph, error) {
	if len(e.cfg.WordLists) > 0 {
		return e.graphFromWordLists(ctx, rf, e.cfg.WordLists)
	}

	g, err := e.loadCached(ctx, e.inputPath(rf), "")
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, cache.ErrEmpty) {
		return nil, err
	}
	e.logger.Info("no cached word graph, falling back to the system dictionary",
		"cache", e.inputPath(rf))

	return e.graphFromWordLists(ctx, rf, e.cfg.WordListsOrDefault())
}

func (e *env) graphFromWordLists(ctx context.Context, rf *rootFlags, paths []string) (*wordgraph.Graph, error) {
	set := make(words.Set)
	for _, p := range paths {
		e.logger.Info("adding words", "file", p)
		s, err := words.LoadFile(p)
		if err != nil {
			return nil, err
		}
		set.Merge(s)
	}
	fp := words.Fingerprint(set)

	if out := e.outputPath(rf); out != "" {
		g, err := e.loadCached(ctx, out, fp)
		switch {
		case err == nil:
			e.logger.Info("cached word graph matches word lists", "cache", out)
			return g, nil
		case errors.Is(err, cache.ErrEmpty), errors.Is(err, cache.ErrStale):
			// rebuilt below
		default:
			e.logger.Warn("ignoring unreadable word graph cache", "cache", out, "error", err)
		}
	}

	return e.buildAndSave(ctx, rf, set, fp)
}

// buildAndSave builds the graph of set and stores it unless saving is disabled.
func (e *env) buildAndSave(ctx context.Context, rf *rootFlags, set words.Set, fp string) (*wordgraph.Graph, error) {
	e.logger.Info("building word graph", "words", set.Len())
	opts := append(e.cfg.BuildOptions(), wordgraph.WithLogger(e.logger))
	g, err := wordgraph.Build(ctx, set, opts...)
	if err != nil {
		return nil, err
	}

	out := e.outputPath(rf)
	if out == "" {
		return g, nil
	}
	e.logger.Info("saving word graph", "cache", out)
	store, err := cache.Open(cache.Config{Path: out, SyncWrites: true, Logger: e.logger})
	if err != nil {
		return nil, err
	}
	defer store.Close()
	if err := store.Save(ctx, g, fp); err != nil {
		return nil, fmt.Errorf("save word graph: %w", err)
	}

	return g, nil
}

// loadCached opens the store at path and loads its graph. A non-empty
// fingerprint must match the stored one. A missing store reads as
// cache.ErrEmpty and is not created.
func (e *env) loadCached(ctx context.Context, path, fingerprint string) (*wordgraph.Graph, error) {
	e.logger.Info("loading word graph", "cache", path)
	store, err := cache.Open(cache.Config{Path: path, MustExist: true, Logger: e.logger})
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if fingerprint != "" {
		return store.LoadMatching(ctx, fingerprint)
	}
	g, _, err := store.Load(ctx)

	return g, err
}
