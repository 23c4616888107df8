// SPDX-License-Identifier: MIT

package matching_test

import (
	"math/rand"
	"slices"
)

// rightBase offsets right-side ids so they never collide with left ids.
const rightBase = 100

// adjGraph is a minimal undirected bipartite fixture.
type adjGraph struct {
	left []int
	adj  map[int][]int
}

func newAdjGraph(left []int, edges ...[2]int) *adjGraph {
	g := &adjGraph{left: left, adj: make(map[int][]int)}
	for _, e := range edges {
		g.adj[e[0]] = append(g.adj[e[0]], e[1])
		g.adj[e[1]] = append(g.adj[e[1]], e[0])
	}

	return g
}

func (g *adjGraph) Left() []int           { return g.left }
func (g *adjGraph) Neighbors(v int) []int { return g.adj[v] }
func (g *adjGraph) HasEdge(a, b int) bool { return slices.Contains(g.adj[a], b) }

// randomBipartite draws each of the l·r cross edges with probability p.
func randomBipartite(r *rand.Rand, l, rr int, p float64) *adjGraph {
	left := make([]int, l)
	for i := range left {
		left[i] = i
	}
	var edges [][2]int
	for u := 0; u < l; u++ {
		for v := 0; v < rr; v++ {
			if r.Float64() < p {
				edges = append(edges, [2]int{u, rightBase + v})
			}
		}
	}

	return newAdjGraph(left, edges...)
}

// bruteForceSize returns the maximum matching size by exhaustive search
// over the left vertices; right usage is tracked in a bitmask.
func bruteForceSize(g *adjGraph) int {
	var best func(i int, used uint64) int
	best = func(i int, used uint64) int {
		if i == len(g.left) {
			return 0
		}
		top := best(i+1, used)
		for _, w := range g.adj[g.left[i]] {
			bit := uint64(1) << uint(w-rightBase)
			if used&bit != 0 {
				continue
			}
			if got := 1 + best(i+1, used|bit); got > top {
				top = got
			}
		}

		return top
	}

	return best(0, 0)
}
