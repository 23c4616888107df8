// SPDX-License-Identifier: MIT
// Package: simmatch/matching
//
// types.go — input interfaces, options, sentinel errors and the Matching result.

package matching

import (
	"errors"
	"maps"
	"slices"

	"github.com/charmbracelet/log"
)

// Bipartite is the view the matchers need: the left side and adjacency.
// Every neighbour of a left vertex is treated as a right vertex.
type Bipartite interface {
	Left() []int
	Neighbors(v int) []int
}

// Graph is a Bipartite that can answer edge membership; Verify needs it.
type Graph interface {
	Bipartite
	HasEdge(a, b int) bool
}

// MethodHopcroftKarp selects the layered augmenting-path algorithm.
const MethodHopcroftKarp = "hopcroft-karp"

// MethodKuhn selects the single-path DFS algorithm.
const MethodKuhn = "kuhn"

var (
	// ErrUnknownMethod indicates Options.Method is not one of the Method* constants.
	ErrUnknownMethod = errors.New("matching: unknown method")

	// ErrInvalidMatching indicates a matching that is not a set of disjoint graph edges.
	ErrInvalidMatching = errors.New("matching: invalid matching")
)

// Options configures the matchers.
//   - Method: MethodHopcroftKarp or MethodKuhn (Compute only).
//   - Logger: if non-nil, each phase is logged at debug level.
type Options struct {
	Method string
	Logger *log.Logger
}

// DefaultOptions returns Hopcroft–Karp without logging.
func DefaultOptions() Options {
	return Options{Method: MethodHopcroftKarp}
}

// Pair is one matched couple, stored with A < B.
type Pair struct {
	A, B int
}

// Matching is a set of disjoint edges kept as a symmetric partner map.
// It is read-only once returned by a matcher.
type Matching struct {
	mate map[int]int
}

// FromPairs builds a Matching from explicit pairs without validating them;
// use Verify to check the result against a graph.
func FromPairs(pairs []Pair) *Matching {
	m := &Matching{mate: make(map[int]int, 2*len(pairs))}
	for _, p := range pairs {
		m.mate[p.A] = p.B
		m.mate[p.B] = p.A
	}

	return m
}

// Size returns the number of matched pairs.
func (m *Matching) Size() int { return len(m.mate) / 2 }

// Partner returns the vertex matched with v.
func (m *Matching) Partner(v int) (int, bool) {
	p, ok := m.mate[v]

	return p, ok
}

// Contains reports whether v is matched.
func (m *Matching) Contains(v int) bool {
	_, ok := m.mate[v]

	return ok
}

// Map returns a copy of the symmetric partner mapping.
func (m *Matching) Map() map[int]int { return maps.Clone(m.mate) }

// Pairs returns every matched pair once, A < B, ordered by A.
func (m *Matching) Pairs() []Pair {
	out := make([]Pair, 0, m.Size())
	for a, b := range m.mate {
		if a < b {
			out = append(out, Pair{A: a, B: b})
		}
	}
	slices.SortFunc(out, func(x, y Pair) int { return x.A - y.A })

	return out
}
