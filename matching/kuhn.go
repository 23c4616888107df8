// SPDX-License-Identifier: MIT
// Package: simmatch/matching
//
// kuhn.go — one augmenting DFS per left vertex.

package matching

import "github.com/bits-and-blooms/bitset"

// Kuhn computes a maximum cardinality matching of g by trying one augmenting
// DFS from every left vertex in Left() order.
//
// The visited set is only cleared after a successful augmentation: a failed
// search leaves the matching unchanged, so the right vertices it explored
// still cannot lead to a free vertex.
//
// Complexity:
//
//	Time:   O(V·E).
//	Memory: O(V + E), plus one bit per right vertex.
func Kuhn(g Bipartite, opts Options) *Matching {
	d := compact(g)
	k := &kuhnState{dense: d, visited: bitset.New(uint(len(d.rightIDs)))}

	size := 0
	for u := range d.adj {
		if k.try(u) {
			size++
			k.visited.ClearAll()
		}
	}
	if opts.Logger != nil {
		opts.Logger.Debug("kuhn done", "left", len(d.leftIDs), "right", len(d.rightIDs), "size", size)
	}

	return d.result()
}

type kuhnState struct {
	*dense
	visited *bitset.BitSet
}

func (k *kuhnState) try(u int) bool {
	for _, v := range k.adj[u] {
		if k.visited.Test(uint(v)) {
			continue
		}
		k.visited.Set(uint(v))
		if w := k.matchR[v]; w == free || k.try(w) {
			k.link(u, v)
			return true
		}
	}

	return false
}
