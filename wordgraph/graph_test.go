package wordgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wordchain/wordgraph"
	"github.com/katalvlaran/wordchain/words"
)

type GraphSuite struct {
	suite.Suite
	g *wordgraph.Graph
}

func (s *GraphSuite) SetupTest() {
	g, err := wordgraph.Build(s.T().Context(), words.NewSet("frog", "grog", "grot", "grat", "goat", "a"))
	s.Require().NoError(err)
	s.g = g
}

func (s *GraphSuite) TestNeighborsReturnsCopy() {
	nbrs := s.g.Neighbors("grog")
	s.Require().Equal([]string{"frog", "grot"}, nbrs)
	nbrs[0] = "mutated"
	s.Require().Equal([]string{"frog", "grot"}, s.g.Neighbors("grog"))
}

func (s *GraphSuite) TestAdjacencyRoundTrip() {
	adj := s.g.Adjacency()
	s.Require().NotNil(adj["a"], "isolated word maps to an empty slice")
	s.Require().Empty(adj["a"])

	back, err := wordgraph.FromAdjacency(adj)
	s.Require().NoError(err)
	s.Require().True(s.g.Equal(back))
	s.Require().Equal(s.g.Words(), back.Words())
}

func (s *GraphSuite) TestStats() {
	st := s.g.Stats()
	s.Require().Equal(6, st.Words)
	s.Require().Equal(4, st.Edges)
	s.Require().Equal(1, st.Isolated)
	s.Require().Equal(2, st.MaxDegree)
	s.Require().Equal(map[int]int{1: 1, 4: 5}, st.ByLength)
}

func (s *GraphSuite) TestVocabulary() {
	s.Require().Equal(6, s.g.Vocabulary().Len())
	s.Require().True(s.g.Vocabulary().Has("goat"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestNilGraph verifies a nil graph reads as empty.
func TestNilGraph(t *testing.T) {
	var g *wordgraph.Graph
	require.Equal(t, 0, g.Len())
	require.Nil(t, g.Neighbors("x"))
	require.False(t, g.Has("x"))
	require.Empty(t, g.Adjacency())
	require.True(t, g.Equal(wordgraph.BuildNaive(words.NewSet())))
}

// TestFromAdjacency_Violations checks each invariant is enforced.
func TestFromAdjacency_Violations(t *testing.T) {
	tests := []struct {
		name string
		adj  map[string][]string
		want error
	}{
		{"self loop", map[string][]string{"cat": {"cat"}}, wordgraph.ErrSelfLoop},
		{"invalid utf-8", map[string][]string{"a\xff": {}}, wordgraph.ErrInvalidWord},
		{"dangling", map[string][]string{"cat": {"cot"}}, wordgraph.ErrDanglingNeighbor},
		{"not adjacent", map[string][]string{"cat": {"dog"}, "dog": {"cat"}}, wordgraph.ErrNotAdjacent},
		{"length mismatch", map[string][]string{"cat": {"cats"}, "cats": {"cat"}}, wordgraph.ErrNotAdjacent},
		{"asymmetric", map[string][]string{"cat": {"cot"}, "cot": {}}, wordgraph.ErrAsymmetric},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := wordgraph.FromAdjacency(tc.adj)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, g)
		})
	}
}

// TestFromAdjacency_Normalizes checks duplicate and unsorted neighbor lists.
func TestFromAdjacency_Normalizes(t *testing.T) {
	g, err := wordgraph.FromAdjacency(map[string][]string{
		"cot": {"cog", "cat", "cat"},
		"cat": {"cot"},
		"cog": {"cot"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"cat", "cog"}, g.Neighbors("cot"))
	require.Equal(t, 2, g.EdgeCount())
}
