// SPDX-License-Identifier: MIT

package wordgraph

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordchain/words"
)

var tracer = otel.Tracer("wordchain.wordgraph")

// chunk is a half-open range [lo,hi) into the sorted word list.
type chunk struct {
	lo, hi int
}

// Build computes the word graph of set.
//
// Work items are chunks of the sorted vocabulary. Each worker reads only set
// and the alphabet and writes only results[i] for its own chunk i, so no
// locking is needed; the driver merges the slots after Wait.
//
// Returns ctx.Err() if ctx is cancelled before every chunk completes; no
// partial graph is ever returned.
func Build(ctx context.Context, set words.Set, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := tracer.Start(ctx, "wordgraph.Build",
		trace.WithAttributes(
			attribute.Int("words", set.Len()),
			attribute.Int("workers", o.Workers),
			attribute.Int("chunk_size", o.ChunkSize),
		),
	)
	defer span.End()
	start := time.Now()

	list := validWords(set, o.Logger)
	alphabet := o.Alphabet
	if alphabet == nil {
		alphabet = words.Alphabet(set)
	}
	chunks := partition(len(list), o.ChunkSize)
	results := make([][][]string, len(chunks))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i, c := range chunks {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			out := make([][]string, c.hi-c.lo)
			for j, w := range list[c.lo:c.hi] {
				out[j] = closeWords(w, set, alphabet)
			}
			results[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("wordgraph: build aborted: %w", err)
	}

	adj := make(map[string][]string, len(list))
	degreeSum := 0
	for i, c := range chunks {
		for j, nbrs := range results[i] {
			adj[list[c.lo+j]] = nbrs
			degreeSum += len(nbrs)
		}
	}
	g := &Graph{adj: adj, edges: degreeSum / 2}

	elapsed := time.Since(start)
	buildDuration.Observe(elapsed.Seconds())
	graphWords.Set(float64(len(adj)))

	span.SetAttributes(
		attribute.Int("edges", g.edges),
		attribute.Int("alphabet", len(alphabet)),
		attribute.Int("chunks", len(chunks)),
	)
	span.SetStatus(codes.Ok, "")

	o.Logger.Debug("word graph built",
		"words", len(adj),
		"edges", g.edges,
		"alphabet", len(alphabet),
		"chunks", len(chunks),
		"workers", o.Workers,
		"elapsed", elapsed,
	)

	return g, nil
}

// BuildNaive is the sequential all-pairs construction: every word is
// compared with every other word. It is quadratic and exists as a reference
// for checking Build.
func BuildNaive(set words.Set) *Graph {
	list := validWords(set, nil)
	adj := make(map[string][]string, len(list))
	degreeSum := 0
	for _, a := range list {
		var nbrs []string
		for _, b := range list {
			if words.OneApart(a, b) {
				nbrs = append(nbrs, b)
			}
		}
		adj[a] = nbrs
		degreeSum += len(nbrs)
	}

	return &Graph{adj: adj, edges: degreeSum / 2}
}

// validWords returns the sorted words of set that are valid UTF-8. Invalid
// words cannot be substituted rune by rune without changing their bytes, so
// they are left out of the graph; logger, if set, hears about them.
func validWords(set words.Set, logger *slog.Logger) []string {
	invalid := set.Invalid()
	if len(invalid) == 0 {
		return set.Sorted()
	}
	if logger != nil {
		logger.Warn("skipping words that are not valid UTF-8",
			"count", len(invalid),
			"first", fmt.Sprintf("%q", invalid[0]),
		)
	}
	out := make([]string, 0, set.Len()-len(invalid))
	for _, w := range set.Sorted() {
		if words.Valid(w) {
			out = append(out, w)
		}
	}

	return out
}

// closeWords returns the sorted words of set that differ from w in exactly
// one position, substituting only runes from alphabet.
func closeWords(w string, set words.Set, alphabet []rune) []string {
	var out []string
	runes := []rune(w)
	for p, orig := range runes {
		for _, c := range alphabet {
			if c == orig {
				continue
			}
			runes[p] = c
			if cand := string(runes); cand != w && set.Has(cand) {
				out = append(out, cand)
			}
		}
		runes[p] = orig
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// partition splits n items into consecutive chunks of at most size items.
func partition(n, size int) []chunk {
	if n == 0 {
		return nil
	}
	out := make([]chunk, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		out = append(out, chunk{lo: lo, hi: min(lo+size, n)})
	}

	return out
}
