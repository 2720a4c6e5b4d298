// SPDX-License-Identifier: MIT

// Package chain finds the shortest word chain between two words: a sequence
// from initial to goal where each consecutive pair differs in exactly one
// character and every word is a vertex of a word graph.
//
// What
//
//   - Breadth-first search from the initial word over a read-only graph.
//     Words are discovered at most once, the first time any edge reaches
//     them, and remember their predecessor. BFS layer order guarantees the
//     predecessor chain from the goal is a shortest path by edge count.
//   - The search stops as soon as the goal is discovered (not when it is
//     dequeued), walks the predecessors back to the initial word and reverses.
//   - Hooks and limits are supplied as functional options.
//
// No path is not an error
//
//	Every unsuccessful outcome is a normal result with Found == false:
//	  - initial and goal of different lengths (checked before any search),
//	  - a word absent from the graph (it simply has no neighbors),
//	  - an exhausted frontier, a depth limit, or a cancelled context.
//	FindPath returns (nil, false) in all of these cases; Search additionally
//	reports the Reason.
//
// Identical words
//
//	FindPath(w, w, g) returns Path{w} without searching, even when w is not
//	in the graph: a zero-step chain needs no edges.
//
// Concurrency
//
//	All search state (queue, predecessor map) belongs to one call. Any number
//	of searches may run at once against one shared graph, as long as the
//	graph itself is not mutated (a *wordgraph.Graph never is).
//
// Complexity (V = reachable words, E = their edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	path, ok := chain.FindPath("frog", "goat", g)
//	// [frog grog grot grat goat] true
//
//	res := chain.Search("cat", "dog", g,
//	    chain.WithContext(ctx),
//	    chain.WithMaxDepth(6),
//	)
package chain
