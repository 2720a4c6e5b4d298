// SPDX-License-Identifier: MIT

package wordgraph

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/wordchain/words"
)

// Graph maps each word to its sorted neighbor list.
// It has no mutators; all methods are safe for concurrent use.
// A nil *Graph behaves as an empty graph.
type Graph struct {
	adj   map[string][]string
	edges int
}

// Neighbors returns a sorted copy of w's neighbors.
// Words absent from the graph have no neighbors (nil), never an error.
func (g *Graph) Neighbors(w string) []string {
	if g == nil {
		return nil
	}
	nbrs := g.adj[w]
	if len(nbrs) == 0 {
		return nil
	}

	return slices.Clone(nbrs)
}

// Has reports whether w is a word of the graph.
func (g *Graph) Has(w string) bool {
	if g == nil {
		return false
	}
	_, ok := g.adj[w]
	return ok
}

// Len returns the number of words.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.adj)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return g.edges
}

// Words returns every word in lexical order.
func (g *Graph) Words() []string {
	if g == nil {
		return nil
	}
	out := make([]string, 0, len(g.adj))
	for w := range g.adj {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Vocabulary returns the graph's words as a Set.
func (g *Graph) Vocabulary() words.Set {
	s := make(words.Set, g.Len())
	if g != nil {
		for w := range g.adj {
			s.Add(w)
		}
	}
	return s
}

// Adjacency returns a deep copy of the word → neighbors mapping.
// Isolated words map to an empty, non-nil slice.
func (g *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, g.Len())
	if g == nil {
		return out
	}
	for w, nbrs := range g.adj {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		out[w] = cp
	}

	return out
}

// Equal reports whether g and other hold the same words with the same
// neighbor sets.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	if g.Len() == 0 {
		return true
	}
	for w, nbrs := range g.adj {
		o, ok := other.adj[w]
		if !ok || !slices.Equal(nbrs, o) {
			return false
		}
	}

	return true
}

// Stats returns word, edge and degree counts.
func (g *Graph) Stats() Stats {
	st := Stats{ByLength: make(map[int]int)}
	if g == nil {
		return st
	}
	st.Words = len(g.adj)
	st.Edges = g.edges
	for w, nbrs := range g.adj {
		st.ByLength[words.Len(w)]++
		if len(nbrs) == 0 {
			st.Isolated++
		}
		st.MaxDegree = max(st.MaxDegree, len(nbrs))
	}

	return st
}

// FromAdjacency builds a Graph from a word → neighbors mapping, typically one
// read back from a cache. Neighbor lists are copied, sorted and deduplicated.
// The mapping must satisfy the graph invariants; the first violation found
// (in lexical word order) is returned.
func FromAdjacency(adj map[string][]string) (*Graph, error) {
	norm := make(map[string][]string, len(adj))
	for w, nbrs := range adj {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		slices.Sort(cp)
		norm[w] = slices.Compact(cp)
	}

	keys := make([]string, 0, len(norm))
	for w := range norm {
		keys = append(keys, w)
	}
	sort.Strings(keys)

	degreeSum := 0
	for _, w := range keys {
		if !words.Valid(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
		for _, nb := range norm[w] {
			if nb == w {
				return nil, fmt.Errorf("%w: %q", ErrSelfLoop, w)
			}
			back, ok := norm[nb]
			if !ok {
				return nil, fmt.Errorf("%w: %q lists %q", ErrDanglingNeighbor, w, nb)
			}
			if !words.OneApart(w, nb) {
				return nil, fmt.Errorf("%w: %q and %q", ErrNotAdjacent, w, nb)
			}
			if _, found := slices.BinarySearch(back, w); !found {
				return nil, fmt.Errorf("%w: %q lists %q but not the reverse", ErrAsymmetric, w, nb)
			}
		}
		degreeSum += len(norm[w])
	}

	return &Graph{adj: norm, edges: degreeSum / 2}, nil
}
