// SPDX-License-Identifier: MIT
// Package: simmatch/matching
//
// compute.go — method dispatch and result verification.

package matching

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Compute runs the algorithm selected by opts.Method.
// An empty Method means MethodHopcroftKarp.
func Compute(g Bipartite, opts Options) (*Matching, error) {
	switch opts.Method {
	case MethodHopcroftKarp, "":
		return HopcroftKarp(g, opts), nil
	case MethodKuhn:
		return Kuhn(g, opts), nil
	default:
		return nil, fmt.Errorf("matching: %q: %w", opts.Method, ErrUnknownMethod)
	}
}

// Verify checks that m is a valid matching of g: the partner map is
// symmetric (so no vertex is used twice), no vertex is matched with itself,
// and every pair is an edge of g. Vertex ids must be non-negative.
//
// Complexity: O(M log M + M·d) for M matched vertices and maximum degree d.
func Verify(m *Matching, g Graph) error {
	keys := maps.Keys(m.mate)
	slices.Sort(keys)
	for _, a := range keys {
		b := m.mate[a]
		switch {
		case a < 0 || b < 0:
			return fmt.Errorf("matching: pair %d-%d has a negative vertex: %w", a, b, ErrInvalidMatching)
		case a == b:
			return fmt.Errorf("matching: vertex %d matched with itself: %w", a, ErrInvalidMatching)
		case m.mate[b] != a:
			return fmt.Errorf("matching: vertex %d matched with %d, but %d is matched with %d: %w",
				a, b, b, m.mate[b], ErrInvalidMatching)
		}
		if a < b && !g.HasEdge(a, b) {
			return fmt.Errorf("matching: pair %d-%d is not an edge: %w", a, b, ErrInvalidMatching)
		}
	}

	return nil
}
