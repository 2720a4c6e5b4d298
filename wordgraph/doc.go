// SPDX-License-Identifier: MIT

// Package wordgraph builds and holds the word graph: every word of a
// vocabulary mapped to the words of equal length that differ from it in
// exactly one character position.
//
// What
//
//   - Build derives the graph from a words.Set. For each word W, each
//     position p and each rune c of the vocabulary's alphabet it forms W with
//     W[p] replaced by c and keeps the candidate when it is a different word
//     present in the set. Per-word work is len(W) × |alphabet| set lookups,
//     not a comparison against every other word.
//   - The vocabulary is sorted and cut into chunks; chunks run on an
//     errgroup-limited worker pool, each writing only its own result slot.
//     Slots are merged into the final map after all workers finish, so the
//     result does not depend on completion order.
//   - FromAdjacency rebuilds a Graph from a plain adjacency map (the cache
//     format) and rejects maps that break the graph invariants.
//
// Invariants
//
//   - Symmetric:  B ∈ Neighbors(A) ⇔ A ∈ Neighbors(B).
//   - No loops:   W ∉ Neighbors(W).
//   - Total:      every valid UTF-8 vocabulary word is a key, isolated words
//     included. Words that are not valid UTF-8 are skipped with a warning.
//   - Immutable:  a Graph is never modified after construction and is safe
//     for any number of concurrent readers.
//
// Complexity (N = |words|, L = max word length, A = |alphabet|)
//
//   - Build: O(N·L·A) lookups, spread across workers; O(N + E) memory.
//   - Neighbors: O(deg) (returns a copy).
//
// Usage
//
//	g, err := wordgraph.Build(ctx, words.NewSet("cat", "cot", "cog", "dog"),
//	    wordgraph.WithWorkers(4),
//	)
//	g.Neighbors("cot") // [cat cog]
//
// Errors
//
//   - Build fails only when ctx is cancelled before all chunks finish.
//   - FromAdjacency returns ErrInvalidWord, ErrSelfLoop, ErrDanglingNeighbor,
//     ErrNotAdjacent or ErrAsymmetric, wrapped with the offending words.
package wordgraph
