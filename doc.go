// SPDX-License-Identifier: MIT
// Package: simmatch
//
// doc.go — package documentation.

// Package simmatch pairs critics with near-identical taste in novels so that
// as many critics as possible can attend paired shows.
//
// Two critics are similar when their liked-novel sets differ by exactly one
// novel. simmatch finds a maximum set of disjoint similar pairs:
//
//	preferences ─▶ bitmask ─▶ bucket ─▶ simgraph ─▶ matching ─▶ pairs
//	 [][]int       Mask       |S|→ids    bipartite    Hopcroft–Karp
//
// Subpackages:
//
//	bitmask/  — preference set ⇄ uint32 mask, one-bit similarity test
//	bucket/   — critics grouped by preference-set size (roaring bitmaps)
//	simgraph/ — compatibility graph over adjacent buckets, parity sides
//	matching/ — Hopcroft–Karp and Kuhn maximum matching, verification
//	problem/  — plain-text input/output format
//	generate/ — seeded random problems
//	config/   — TOML configuration for the CLI
//
// Why bipartite? Similar critics differ by one novel, so their set sizes
// differ by one. Colouring critics by the parity of their set size puts every
// edge between an even and an odd critic:
//
//	|S|:   1 ── 2 ── 3 ── 4
//	side:  odd  even odd  even
//
// Quick start:
//
//	res, err := simmatch.Match([][]int{{1}, {1, 2}, {2}}, 2)
//	for _, p := range res.Pairs() { fmt.Println(p.A, p.B) }
//
// The command-line front end lives in cmd/simmatch.
package simmatch
