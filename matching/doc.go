// Package matching computes maximum cardinality matchings on bipartite graphs.
//
// The input is any graph exposing its left side and adjacency (Bipartite);
// *simgraph.Graph satisfies it with the even-cardinality critics on the left.
// The output is a symmetric partner mapping: if a ↦ b then b ↦ a, and
// unmatched vertices are absent.
//
// Two augmenting-path algorithms share one option set:
//
//   - Hopcroft–Karp (default)
//
//   - Method: BFS layering from every free left vertex, then a DFS that
//     augments along vertex-disjoint shortest paths respecting the layers.
//
//   - Time:   O(E·√V).
//
//   - Memory: O(V + E) for the compact adjacency, layers and iterators.
//
//   - Kuhn
//
//   - Method: one DFS per left vertex looking for any augmenting path.
//
//   - Time:   O(V·E).
//
//   - Use as an independent reference; the cardinality always matches
//     Hopcroft–Karp, the chosen pairs may differ.
//
// Both are deterministic for a deterministic Left() and Neighbors() order.
//
// # API
//
//	opts := matching.DefaultOptions()     // Method = MethodHopcroftKarp
//	m, err := matching.Compute(g, opts)
//	for _, p := range m.Pairs() { ... }   // each unordered pair once, A < B
//
// # Errors
//
//	ErrUnknownMethod   - Options.Method names no algorithm.
//	ErrInvalidMatching - Verify found a shared vertex or a pair that is not an edge.
//
// The algorithms assume the input is genuinely bipartite: left vertices are
// only adjacent to right vertices. A non-bipartite edge set still terminates
// but the result is no longer guaranteed maximum.
package matching
