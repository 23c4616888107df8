// SPDX-License-Identifier: MIT
// Package: simmatch/simgraph
//
// verify.go — structural invariant check.

package simgraph

import (
	"fmt"

	"github.com/katalvlaran/simmatch/bitmask"
)

// Verify checks that every edge joins two materialized critics on opposite
// sides, in adjacent buckets, with masks differing in exactly one bit.
// A failure is returned as *StructureError and indicates a defect in the
// encoder, the bucket index or the builder.
//
// Complexity: O(V + E).
func (g *Graph) Verify() error {
	for c, nbrs := range g.adj {
		for _, d := range nbrs {
			if err := g.checkEdge(c, d); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *Graph) checkEdge(a, b int) error {
	switch {
	case a == b:
		return &StructureError{A: a, B: b, Reason: "self-loop"}
	case !g.Contains(a) || !g.Contains(b):
		return &StructureError{A: a, B: b, Reason: "endpoint not materialized"}
	case g.side[a] == g.side[b]:
		return &StructureError{A: a, B: b, Reason: fmt.Sprintf("both endpoints on %s side", Side(g.side[a]))}
	}

	ka, kb := g.idx.Cardinality(a), g.idx.Cardinality(b)
	if d := ka - kb; d != 1 && d != -1 {
		return &StructureError{A: a, B: b, Reason: fmt.Sprintf("cardinalities %d and %d are not adjacent", ka, kb)}
	}
	if !bitmask.IsSimilar(g.masks[a], g.masks[b]) {
		return &StructureError{A: a, B: b, Reason: fmt.Sprintf("masks %v and %v differ in more than one bit", g.masks[a], g.masks[b])}
	}

	return nil
}
