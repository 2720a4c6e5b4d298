// SPDX-License-Identifier: MIT

package wordgraph

import (
	"errors"
	"log/slog"
	"runtime"
)

// Sentinel errors for graph validation.
var (
	// ErrSelfLoop indicates a word listed as its own neighbor.
	ErrSelfLoop = errors.New("wordgraph: word is its own neighbor")

	// ErrDanglingNeighbor indicates a neighbor that is not itself a key.
	ErrDanglingNeighbor = errors.New("wordgraph: neighbor is not in the graph")

	// ErrNotAdjacent indicates neighbors that are not one character apart.
	ErrNotAdjacent = errors.New("wordgraph: neighbors do not differ by exactly one character")

	// ErrInvalidWord indicates a word that is not valid UTF-8.
	ErrInvalidWord = errors.New("wordgraph: word is not valid UTF-8")

	// ErrAsymmetric indicates B ∈ N(A) without A ∈ N(B).
	ErrAsymmetric = errors.New("wordgraph: neighbor relation is not symmetric")
)

// DefaultChunkSize is the number of words handed to a worker at a time.
const DefaultChunkSize = 256

// Option configures Build.
// Option constructors panic on meaningless values; Build itself never panics.
type Option func(*BuildOptions)

// BuildOptions holds the resolved Build parameters.
type BuildOptions struct {
	// Workers bounds the number of chunks processed concurrently.
	Workers int

	// ChunkSize is the number of words per work item.
	ChunkSize int

	// Alphabet, when non-nil, replaces the alphabet derived from the set.
	Alphabet []rune

	// Logger receives a debug record per build.
	Logger *slog.Logger
}

// DefaultOptions returns GOMAXPROCS workers, DefaultChunkSize, the derived
// alphabet and slog.Default().
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
		Logger:    slog.Default(),
	}
}

// WithWorkers bounds build parallelism. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("wordgraph: WithWorkers(n<1)")
	}
	return func(o *BuildOptions) { o.Workers = n }
}

// WithChunkSize sets how many words each work item covers. Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("wordgraph: WithChunkSize(n<1)")
	}
	return func(o *BuildOptions) { o.ChunkSize = n }
}

// WithAlphabet restricts substitution candidates to the given runes.
// An empty, non-nil alphabet yields a graph with no edges.
func WithAlphabet(alphabet []rune) Option {
	cp := make([]rune, len(alphabet))
	copy(cp, alphabet)
	return func(o *BuildOptions) { o.Alphabet = cp }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("wordgraph: WithLogger(nil)")
	}
	return func(o *BuildOptions) { o.Logger = l }
}

// Stats summarizes a Graph.
type Stats struct {
	Words     int         `json:"words"`
	Edges     int         `json:"edges"`
	Isolated  int         `json:"isolated"`
	MaxDegree int         `json:"max_degree"`
	ByLength  map[int]int `json:"by_length"`
}
