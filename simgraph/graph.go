// SPDX-License-Identifier: MIT
// Package: simmatch/simgraph
//
// graph.go — adjacent-bucket construction of the compatibility graph.

package simgraph

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/simmatch/bitmask"
	"github.com/katalvlaran/simmatch/bucket"
)

// unplaced marks a critic that is not a vertex of the graph.
const unplaced = -1

// Graph is the bipartite compatibility graph over critic indices.
// It is immutable once Build returns.
type Graph struct {
	masks []bitmask.Mask
	idx   *bucket.Index

	side  []int8  // side[c] = bucket parity, unplaced if c is not a vertex
	adj   [][]int // adj[c] = neighbours of c, lower bucket first, input order within a bucket
	left  []int   // even-side vertices, ascending
	right []int   // odd-side vertices, ascending
	size  int     // number of edges
}

// Build constructs the compatibility graph from per-critic masks and their
// bucket index.
//
// Steps:
//  1. Validate the bound and that idx was built from masks.
//  2. For k = 0..maxNovels, materialize bucket k if bucket k-1 or k+1 is populated.
//  3. For every c1 in bucket k and c2 in bucket k+1, add c1–c2 if IsSimilar.
//  4. Optionally Verify the parity colouring (WithVerify).
//
// Complexity: O(V + Σ|bucket_k|·|bucket_{k+1}|) time, O(V + E) space.
func Build(masks []bitmask.Mask, idx *bucket.Index, maxNovels int, opts ...Option) (*Graph, error) {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if idx == nil {
		return nil, ErrNilIndex
	}
	if idx.Total() != len(masks) {
		return nil, fmt.Errorf("simgraph: index holds %d critics, masks %d: %w", idx.Total(), len(masks), ErrIndexMismatch)
	}
	if maxNovels < 1 || maxNovels > bitmask.MaxNovels {
		return nil, fmt.Errorf("simgraph: maxNovels=%d (want 1..%d): %w", maxNovels, bitmask.MaxNovels, ErrInvalidBound)
	}
	if ks := idx.Cardinalities(); len(ks) > 0 && ks[len(ks)-1] > maxNovels {
		top := ks[len(ks)-1]
		return nil, fmt.Errorf("simgraph: critic %d likes %d novels, bound %d: %w",
			idx.Critics(top)[0], top, maxNovels, ErrMaskExceedsBound)
	}

	g := &Graph{
		masks: masks,
		idx:   idx,
		side:  make([]int8, len(masks)),
		adj:   make([][]int, len(masks)),
	}
	for c := range g.side {
		g.side[c] = unplaced
	}

	for k := 0; k <= maxNovels; k++ {
		lower := idx.Critics(k)
		if len(lower) == 0 {
			continue
		}
		if idx.Has(k-1) || idx.Has(k+1) {
			g.place(lower, k)
		}

		upper := idx.Critics(k + 1)
		if len(upper) == 0 {
			continue
		}
		before := g.size
		for _, c1 := range lower {
			m1 := masks[c1]
			for _, c2 := range upper {
				if bitmask.IsSimilar(m1, masks[c2]) {
					g.adj[c1] = append(g.adj[c1], c2)
					g.adj[c2] = append(g.adj[c2], c1)
					g.size++
				}
			}
		}
		if cfg.logger != nil {
			cfg.logger.Debug("compared buckets",
				"lower", k, "upper", k+1,
				"comparisons", len(lower)*len(upper),
				"edges", g.size-before)
		}
	}

	slices.Sort(g.left)
	slices.Sort(g.right)

	if cfg.logger != nil {
		cfg.logger.Debug("similarity graph built", "vertices", g.Order(), "edges", g.size,
			"even", len(g.left), "odd", len(g.right))
	}

	if cfg.verify {
		if err := g.Verify(); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// place puts every critic of bucket k on side k mod 2.
func (g *Graph) place(critics []int, k int) {
	s := int8(k % 2)
	for _, c := range critics {
		g.side[c] = s
	}
	if Side(s) == SideEven {
		g.left = append(g.left, critics...)
	} else {
		g.right = append(g.right, critics...)
	}
}

// Order returns the number of materialized vertices.
func (g *Graph) Order() int { return len(g.left) + len(g.right) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.size }

// Critics returns the number of critics the graph was built from,
// including those that were never materialized.
func (g *Graph) Critics() int { return len(g.masks) }

// Left returns the even-side vertices in ascending order.
func (g *Graph) Left() []int { return slices.Clone(g.left) }

// Right returns the odd-side vertices in ascending order.
func (g *Graph) Right() []int { return slices.Clone(g.right) }

// Vertices returns all materialized vertices in ascending order.
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.Order())
	out = append(out, g.left...)
	out = append(out, g.right...)
	slices.Sort(out)

	return out
}

// Contains reports whether critic c is a vertex of the graph.
func (g *Graph) Contains(c int) bool {
	return c >= 0 && c < len(g.side) && g.side[c] != unplaced
}

// Side returns the bipartite side of c; ok is false if c is not a vertex.
func (g *Graph) Side(c int) (s Side, ok bool) {
	if !g.Contains(c) {
		return 0, false
	}

	return Side(g.side[c]), true
}

// Neighbors returns the critics adjacent to c. The returned slice is shared
// with the graph and must not be modified. Unknown critics have no neighbours.
func (g *Graph) Neighbors(c int) []int {
	if c < 0 || c >= len(g.adj) {
		return nil
	}

	return g.adj[c]
}

// Degree returns the number of neighbours of c.
func (g *Graph) Degree(c int) int {
	return len(g.Neighbors(c))
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	// scan the shorter list
	if g.Degree(b) < g.Degree(a) {
		a, b = b, a
	}

	return slices.Contains(g.Neighbors(a), b)
}

// Edges returns every edge once, lower-cardinality end first, ordered by
// (Lower, Upper) ascending.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	for c, nbrs := range g.adj {
		k := g.idx.Cardinality(c)
		for _, d := range nbrs {
			if g.idx.Cardinality(d) > k {
				out = append(out, Edge{Lower: c, Upper: d})
			}
		}
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.Lower != b.Lower {
			return a.Lower - b.Lower
		}
		return a.Upper - b.Upper
	})

	return out
}

// Mask returns the preference mask of critic c.
func (g *Graph) Mask(c int) bitmask.Mask { return g.masks[c] }

// Cardinality returns the bucket of critic c.
func (g *Graph) Cardinality(c int) int { return g.idx.Cardinality(c) }
