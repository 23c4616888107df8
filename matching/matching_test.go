// SPDX-License-Identifier: MIT

package matching_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/simmatch/bitmask"
	"github.com/katalvlaran/simmatch/bucket"
	"github.com/katalvlaran/simmatch/matching"
	"github.com/katalvlaran/simmatch/simgraph"
)

// MatchingSuite runs every scenario against both algorithms.
type MatchingSuite struct {
	suite.Suite
}

var methods = []string{matching.MethodHopcroftKarp, matching.MethodKuhn}

func (s *MatchingSuite) compute(g matching.Graph, method string) *matching.Matching {
	m, err := matching.Compute(g, matching.Options{Method: method})
	require.NoError(s.T(), err)
	require.NoError(s.T(), matching.Verify(m, g), method)

	return m
}

// TestEmptyGraph yields an empty matching.
func (s *MatchingSuite) TestEmptyGraph() {
	for _, method := range methods {
		m := s.compute(newAdjGraph(nil), method)
		require.Equal(s.T(), 0, m.Size())
		require.Empty(s.T(), m.Pairs())
	}
}

// TestIsolatedLeftVertices are never matched.
func (s *MatchingSuite) TestIsolatedLeftVertices() {
	for _, method := range methods {
		m := s.compute(newAdjGraph([]int{0, 1, 2}), method)
		require.Equal(s.T(), 0, m.Size())
		require.False(s.T(), m.Contains(1))
	}
}

// TestAugmentationNeeded: greedy 0–a blocks 1; the matcher must reroute 0 to b.
func (s *MatchingSuite) TestAugmentationNeeded() {
	g := newAdjGraph([]int{0, 1},
		[2]int{0, rightBase + 0}, [2]int{0, rightBase + 1},
		[2]int{1, rightBase + 0},
	)
	for _, method := range methods {
		m := s.compute(g, method)
		require.Equal(s.T(), 2, m.Size(), method)
		p, ok := m.Partner(1)
		require.True(s.T(), ok)
		require.Equal(s.T(), rightBase+0, p)
		p, _ = m.Partner(rightBase + 1)
		require.Equal(s.T(), 0, p)
	}
}

// TestLongAugmentingPath forces a path through several matched edges.
func (s *MatchingSuite) TestLongAugmentingPath() {
	// ladder: u_i – r_i and u_{i+1} – r_i; u_0 is the only vertex that can take r_0
	const n = 6
	left := make([]int, n)
	var edges [][2]int
	for i := 0; i < n; i++ {
		left[i] = i
		edges = append(edges, [2]int{i, rightBase + i})
		if i > 0 {
			edges = append(edges, [2]int{i, rightBase + i - 1})
		}
	}
	g := newAdjGraph(left, edges...)
	for _, method := range methods {
		require.Equal(s.T(), n, s.compute(g, method).Size(), method)
	}
}

// TestCompleteBipartite matches min(n1, n2) vertices.
func (s *MatchingSuite) TestCompleteBipartite() {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {4, 7}, {8, 2}} {
		g := randomBipartite(rand.New(rand.NewSource(1)), dims[0], dims[1], 1.0)
		for _, method := range methods {
			require.Equal(s.T(), min(dims[0], dims[1]), s.compute(g, method).Size(), "%v %s", dims, method)
		}
	}
}

// TestMaximumAgainstBruteForce compares both algorithms to exhaustive search, V ≤ 20.
func (s *MatchingSuite) TestMaximumAgainstBruteForce() {
	r := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 300; trial++ {
		l, rr := 1+r.Intn(10), 1+r.Intn(10)
		g := randomBipartite(r, l, rr, 0.05+0.5*r.Float64())
		want := bruteForceSize(g)
		for _, method := range methods {
			require.Equal(s.T(), want, s.compute(g, method).Size(), "trial %d %s", trial, method)
		}
	}
}

// TestIdempotent: re-running yields the same cardinality and, being deterministic, the same pairs.
func (s *MatchingSuite) TestIdempotent() {
	g := randomBipartite(rand.New(rand.NewSource(9)), 40, 40, 0.1)
	first := s.compute(g, matching.MethodHopcroftKarp)
	for i := 0; i < 5; i++ {
		again := s.compute(g, matching.MethodHopcroftKarp)
		require.Equal(s.T(), first.Size(), again.Size())
		require.Equal(s.T(), first.Pairs(), again.Pairs())
	}
	require.Equal(s.T(), first.Size(), s.compute(g, matching.MethodKuhn).Size())
}

// TestSymmetricMap checks a ↦ b implies b ↦ a and Pairs lists each pair once.
func (s *MatchingSuite) TestSymmetricMap() {
	g := randomBipartite(rand.New(rand.NewSource(5)), 12, 9, 0.3)
	m := s.compute(g, matching.MethodHopcroftKarp)

	mp := m.Map()
	require.Len(s.T(), mp, 2*m.Size())
	for a, b := range mp {
		require.Equal(s.T(), a, mp[b])
	}
	pairs := m.Pairs()
	require.Len(s.T(), pairs, m.Size())
	for i, p := range pairs {
		require.Less(s.T(), p.A, p.B)
		if i > 0 {
			require.Less(s.T(), pairs[i-1].A, p.A)
		}
	}

	// Map is a copy
	for k := range mp {
		delete(mp, k)
	}
	require.Len(s.T(), m.Map(), 2*m.Size())
}

// TestTriangleScenario: {1}, {1,2}, {2} has maximum matching 1 through critic 1.
func (s *MatchingSuite) TestTriangleScenario() {
	g := buildCriticGraph(s.T(), [][]int{{1}, {1, 2}, {2}}, 2)
	for _, method := range methods {
		m := s.compute(g, method)
		require.Equal(s.T(), 1, m.Size())
		require.True(s.T(), m.Contains(1))
		p := m.Pairs()[0]
		require.Contains(s.T(), []matching.Pair{{A: 0, B: 1}, {A: 1, B: 2}}, p)
	}
}

// TestChainScenario: a path of k critics matches floor(k/2) pairs.
func (s *MatchingSuite) TestChainScenario() {
	for k := 1; k <= 20; k++ {
		prefs := make([][]int, k)
		for i := 0; i < k; i++ {
			for j := 1; j <= i+1; j++ {
				prefs[i] = append(prefs[i], j)
			}
		}
		g := buildCriticGraph(s.T(), prefs, 20)
		for _, method := range methods {
			require.Equal(s.T(), k/2, s.compute(g, method).Size(), "k=%d %s", k, method)
		}
	}
}

// TestCriticGraphsAgainstBruteForce runs random small critic populations end to end.
func (s *MatchingSuite) TestCriticGraphsAgainstBruteForce() {
	r := rand.New(rand.NewSource(77))
	const bound = 4
	for trial := 0; trial < 100; trial++ {
		prefs := make([][]int, 2+r.Intn(14))
		for i := range prefs {
			for _, v := range r.Perm(bound)[:1+r.Intn(bound)] {
				prefs[i] = append(prefs[i], v+1)
			}
		}
		g := buildCriticGraph(s.T(), prefs, bound)

		// re-express as left/right fixture for the exhaustive reference
		ref := newAdjGraph(g.Left())
		right := g.Right()
		pos := make(map[int]int, len(right))
		for i, c := range right {
			pos[c] = rightBase + i
		}
		for _, e := range g.Edges() {
			a, b := e.Lower, e.Upper
			if side, _ := g.Side(a); side != simgraph.SideEven {
				a, b = b, a
			}
			ref.adj[a] = append(ref.adj[a], pos[b])
		}

		want := bruteForceSize(ref)
		for _, method := range methods {
			require.Equal(s.T(), want, s.compute(g, method).Size(), "trial %d %s", trial, method)
		}
	}
}

// TestUnknownMethod is rejected; an empty method defaults to Hopcroft–Karp.
func (s *MatchingSuite) TestUnknownMethod() {
	g := newAdjGraph([]int{0}, [2]int{0, rightBase})
	_, err := matching.Compute(g, matching.Options{Method: "blossom"})
	require.ErrorIs(s.T(), err, matching.ErrUnknownMethod)

	m, err := matching.Compute(g, matching.Options{})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, m.Size())
	require.Equal(s.T(), matching.MethodHopcroftKarp, matching.DefaultOptions().Method)
}

// TestVerifyRejects covers every invalid-matching class.
func (s *MatchingSuite) TestVerifyRejects() {
	g := newAdjGraph([]int{0, 1},
		[2]int{0, rightBase}, [2]int{1, rightBase}, [2]int{1, rightBase + 1},
	)

	require.NoError(s.T(), matching.Verify(matching.FromPairs([]matching.Pair{{A: 0, B: rightBase}, {A: 1, B: rightBase + 1}}), g))

	// shared vertex: the second pair overwrites 100's partner
	err := matching.Verify(matching.FromPairs([]matching.Pair{{A: 0, B: rightBase}, {A: 1, B: rightBase}}), g)
	require.ErrorIs(s.T(), err, matching.ErrInvalidMatching)

	// not an edge
	err = matching.Verify(matching.FromPairs([]matching.Pair{{A: 0, B: rightBase + 1}}), g)
	require.ErrorIs(s.T(), err, matching.ErrInvalidMatching)
	require.Contains(s.T(), err.Error(), "not an edge")

	// self pair
	err = matching.Verify(matching.FromPairs([]matching.Pair{{A: 1, B: 1}}), g)
	require.ErrorIs(s.T(), err, matching.ErrInvalidMatching)
}

// TestLoggerReportsPhases checks debug output of both algorithms.
func (s *MatchingSuite) TestLoggerReportsPhases() {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g := randomBipartite(rand.New(rand.NewSource(4)), 5, 5, 1.0)

	_, err := matching.Compute(g, matching.Options{Method: matching.MethodHopcroftKarp, Logger: l})
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "hopcroft-karp phase")

	_, err = matching.Compute(g, matching.Options{Method: matching.MethodKuhn, Logger: l})
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "kuhn done")
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}

func buildCriticGraph(t *testing.T, prefs [][]int, maxNovels int) *simgraph.Graph {
	t.Helper()
	masks, err := bitmask.EncodeAll(prefs, maxNovels)
	require.NoError(t, err)
	g, err := simgraph.Build(masks, bucket.Build(masks), maxNovels, simgraph.WithVerify())
	require.NoError(t, err)

	return g
}
