package wordgraph_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordchain/wordgraph"
	"github.com/katalvlaran/wordchain/words"
)

// randomVocabulary returns n random words of length 1..maxLen over a small
// alphabet, so that many one-letter neighbors exist.
func randomVocabulary(seed int64, n, maxLen int) words.Set {
	rnd := rand.New(rand.NewSource(seed))
	const letters = "abcde"
	s := words.NewSet()
	for i := 0; i < n; i++ {
		l := 1 + rnd.Intn(maxLen)
		b := make([]byte, l)
		for j := range b {
			b[j] = letters[rnd.Intn(len(letters))]
		}
		s.Add(string(b))
	}
	return s
}

func mustBuild(t *testing.T, set words.Set, opts ...wordgraph.Option) *wordgraph.Graph {
	t.Helper()
	g, err := wordgraph.Build(context.Background(), set, opts...)
	require.NoError(t, err)
	return g
}

// TestBuild_SmallVocabulary checks exact neighbor sets on a hand-made vocabulary.
func TestBuild_SmallVocabulary(t *testing.T) {
	g := mustBuild(t, words.NewSet("cat", "cot", "cog", "dog", "cats"))

	require.Equal(t, 5, g.Len())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []string{"cot"}, g.Neighbors("cat"))
	require.Equal(t, []string{"cat", "cog"}, g.Neighbors("cot"))
	require.Equal(t, []string{"cog"}, g.Neighbors("dog"))
	require.Nil(t, g.Neighbors("cats"), "length-4 word has no equal-length peers")
	require.True(t, g.Has("cats"))
	require.Nil(t, g.Neighbors("missing"))
	require.False(t, g.Has("missing"))
}

// TestBuild_Empty covers the empty vocabulary and the empty alphabet.
func TestBuild_Empty(t *testing.T) {
	g := mustBuild(t, words.NewSet())
	require.Equal(t, 0, g.Len())
	require.Empty(t, g.Words())

	g = mustBuild(t, words.NewSet("cat", "cot"), wordgraph.WithAlphabet([]rune{}))
	require.Equal(t, 2, g.Len())
	require.Equal(t, 0, g.EdgeCount())
	require.Nil(t, g.Neighbors("cat"))
}

// TestBuild_ShortWords covers length-0 and length-1 words.
func TestBuild_ShortWords(t *testing.T) {
	g := mustBuild(t, words.NewSet("", "a", "b", "c"))
	require.Nil(t, g.Neighbors(""))
	require.Equal(t, []string{"b", "c"}, g.Neighbors("a"))
	require.NotContains(t, g.Neighbors("a"), "a")
}

// TestBuild_Unicode verifies substitution works on runes, not bytes.
func TestBuild_Unicode(t *testing.T) {
	g := mustBuild(t, words.NewSet("café", "cafe", "safe"))
	require.Equal(t, []string{"cafe"}, g.Neighbors("café"))
	require.Equal(t, []string{"café", "safe"}, g.Neighbors("cafe"))
}

// TestBuild_InvalidUTF8 verifies words that are not valid UTF-8 are left out
// instead of producing one-way edges to their U+FFFD look-alikes.
func TestBuild_InvalidUTF8(t *testing.T) {
	set := words.NewSet("a\xff", "b\uFFFD", "c\xff", "a\uFFFD", "ab", "bb")
	g := mustBuild(t, set, wordgraph.WithChunkSize(1))

	require.Equal(t, []string{"ab", "a\uFFFD", "bb", "b\uFFFD"}, g.Words())
	require.False(t, g.Has("a\xff"))
	require.Nil(t, g.Neighbors("a\xff"))
	require.Equal(t, []string{"ab", "b\uFFFD"}, g.Neighbors("a\uFFFD"))
	require.Equal(t, []string{"a\uFFFD", "bb"}, g.Neighbors("b\uFFFD"))
	for _, w := range g.Words() {
		for _, nb := range g.Neighbors(w) {
			require.Contains(t, g.Neighbors(nb), w, "asymmetric %q-%q", w, nb)
		}
	}
	require.True(t, g.Equal(wordgraph.BuildNaive(set)), "parallel and naive builders disagree")

	back, err := wordgraph.FromAdjacency(g.Adjacency())
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

// TestBuild_Invariants checks symmetry, absence of loops and one-apart edges
// on a random vocabulary, and agreement with the all-pairs reference.
func TestBuild_Invariants(t *testing.T) {
	set := randomVocabulary(42, 400, 4)
	g := mustBuild(t, set, wordgraph.WithWorkers(4), wordgraph.WithChunkSize(7))

	require.Equal(t, set.Len(), g.Len())
	for _, w := range g.Words() {
		for _, nb := range g.Neighbors(w) {
			require.NotEqual(t, w, nb, "self-loop on %q", w)
			require.True(t, words.OneApart(w, nb), "%q-%q not one apart", w, nb)
			require.Contains(t, g.Neighbors(nb), w, "asymmetric %q-%q", w, nb)
		}
	}
	require.True(t, g.Equal(wordgraph.BuildNaive(set)), "parallel and naive builders disagree")
}

// TestBuild_Idempotent ensures repeated builds with different worker layouts match.
func TestBuild_Idempotent(t *testing.T) {
	set := randomVocabulary(7, 300, 3)
	ref := mustBuild(t, set)
	for _, tc := range []struct{ workers, chunk int }{{1, 1}, {1, 1000}, {3, 5}, {16, 2}} {
		t.Run(fmt.Sprintf("w%d_c%d", tc.workers, tc.chunk), func(t *testing.T) {
			g := mustBuild(t, set, wordgraph.WithWorkers(tc.workers), wordgraph.WithChunkSize(tc.chunk))
			require.True(t, ref.Equal(g))
			require.Equal(t, ref.Adjacency(), g.Adjacency())
		})
	}
}

// TestBuild_Cancelled verifies a cancelled context aborts without a graph.
func TestBuild_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := wordgraph.Build(ctx, randomVocabulary(1, 50, 3))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, g)
}

// TestOptions_Panic checks that option constructors reject meaningless values.
func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { wordgraph.WithWorkers(0) })
	require.Panics(t, func() { wordgraph.WithChunkSize(-1) })
	require.Panics(t, func() { wordgraph.WithLogger(nil) })
}
