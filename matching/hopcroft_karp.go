// SPDX-License-Identifier: MIT
// Package: simmatch/matching
//
// hopcroft_karp.go — layered augmenting paths (BFS layers + DFS blocking augmentations).

package matching

import "math"

// unreached is the layer of a left vertex the BFS did not reach.
const unreached = math.MaxInt

// HopcroftKarp computes a maximum cardinality matching of g.
//
// Steps:
//  1. Re-index g densely (O(V + E)).
//  2. Repeat until no augmenting path exists:
//     a. BFS from every free left vertex, assigning layer numbers to left
//     vertices reached through matched edges; stop expanding beyond the
//     first layer that touches a free right vertex (O(V + E)).
//     b. If no free right vertex was reached, stop.
//     c. For every free left vertex, DFS along strictly increasing layers
//     with a per-vertex edge iterator, flipping the path on success.
//     Dead ends are dropped from the layering (O(E) per phase).
//  3. Map the dense result back to vertex ids.
//
// Complexity:
//
//	Time:   O(E·√V): each phase is O(E) and at most O(√V) phases run.
//	Memory: O(V + E).
func HopcroftKarp(g Bipartite, opts Options) *Matching {
	d := compact(g)
	s := &hkState{
		dense: d,
		layer: make([]int, len(d.leftIDs)),
		iter:  make([]int, len(d.leftIDs)),
		queue: make([]int, 0, len(d.leftIDs)),
	}

	size := 0
	for phase := 1; s.bfs(); phase++ {
		for u := range s.iter {
			s.iter[u] = 0
		}
		augmented := 0
		for u := range s.adj {
			if s.matchL[u] == free && s.dfs(u) {
				augmented++
			}
		}
		size += augmented
		if opts.Logger != nil {
			opts.Logger.Debug("hopcroft-karp phase",
				"phase", phase, "path_length", 2*s.limit-1,
				"augmented", augmented, "size", size)
		}
	}

	return d.result()
}

type hkState struct {
	*dense
	layer []int // BFS layer of each left vertex
	iter  []int // next edge to try in dfs, per left vertex
	queue []int
	limit int // layer count of the shortest augmenting paths; unreached if none
}

// bfs layers the left vertices and reports whether a free right vertex is reachable.
func (s *hkState) bfs() bool {
	queue := s.queue[:0]
	for u, v := range s.matchL {
		if v == free {
			s.layer[u] = 0
			queue = append(queue, u)
		} else {
			s.layer[u] = unreached
		}
	}

	s.limit = unreached
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		if s.layer[u]+1 >= s.limit {
			continue
		}
		for _, v := range s.adj[u] {
			w := s.matchR[v]
			if w == free {
				s.limit = s.layer[u] + 1
			} else if s.layer[w] == unreached {
				s.layer[w] = s.layer[u] + 1
				queue = append(queue, w)
			}
		}
	}
	s.queue = queue

	return s.limit != unreached
}

// dfs looks for an augmenting path from left vertex u that follows the
// layering and ends at a free right vertex on the last layer.
func (s *hkState) dfs(u int) bool {
	next := s.layer[u] + 1
	for ; s.iter[u] < len(s.adj[u]); s.iter[u]++ {
		v := s.adj[u][s.iter[u]]
		w := s.matchR[v]
		if w == free {
			if next == s.limit {
				s.link(u, v)
				return true
			}
			continue
		}
		if s.layer[w] == next && s.dfs(w) {
			s.link(u, v)
			return true
		}
	}
	// no path through u in this phase
	s.layer[u] = unreached

	return false
}
