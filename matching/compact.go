// SPDX-License-Identifier: MIT
// Package: simmatch/matching
//
// compact.go — dense re-indexing shared by both matchers.

package matching

// free marks an unmatched slot in the dense match arrays.
const free = -1

// dense is the input graph re-indexed to 0..L-1 on the left and 0..R-1 on
// the right, so the matchers can work on slices instead of maps.
type dense struct {
	leftIDs  []int   // dense left index → vertex id
	rightIDs []int   // dense right index → vertex id
	adj      [][]int // adj[u] = dense right neighbours of left u, input order
	matchL   []int   // matchL[u] = dense right partner or free
	matchR   []int   // matchR[v] = dense left partner or free
}

// compact copies g into dense form. Right indices are assigned in order of
// first appearance while scanning Left() and each Neighbors list.
//
// Complexity: O(V + E) time and space.
func compact(g Bipartite) *dense {
	left := g.Left()
	d := &dense{
		leftIDs: left,
		adj:     make([][]int, len(left)),
		matchL:  make([]int, len(left)),
	}
	rightPos := make(map[int]int)
	for u, id := range left {
		d.matchL[u] = free
		nbrs := g.Neighbors(id)
		if len(nbrs) == 0 {
			continue
		}
		row := make([]int, len(nbrs))
		for i, w := range nbrs {
			v, ok := rightPos[w]
			if !ok {
				v = len(d.rightIDs)
				rightPos[w] = v
				d.rightIDs = append(d.rightIDs, w)
			}
			row[i] = v
		}
		d.adj[u] = row
	}
	d.matchR = make([]int, len(d.rightIDs))
	for v := range d.matchR {
		d.matchR[v] = free
	}

	return d
}

// link records u–v as matched.
func (d *dense) link(u, v int) {
	d.matchL[u] = v
	d.matchR[v] = u
}

// result converts the dense match arrays back to vertex ids.
func (d *dense) result() *Matching {
	m := &Matching{mate: make(map[int]int)}
	for u, v := range d.matchL {
		if v == free {
			continue
		}
		a, b := d.leftIDs[u], d.rightIDs[v]
		m.mate[a] = b
		m.mate[b] = a
	}

	return m
}
