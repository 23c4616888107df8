// Package bucket groups critics by the cardinality of their preference set.
//
// The grouping is what makes the compatibility graph cheap to build and
// provably bipartite: two similar critics always differ by exactly one novel,
// so their cardinalities differ by exactly one. Only adjacent buckets ever
// need to be compared.
//
//	cardinality → critics (input order)
//	  1 → [0, 3]
//	  2 → [1, 4, 5]
//	  4 → [2]
//
// Each bucket is stored as a roaring bitmap of critic indices. Because critic
// indices are assigned in input order, ascending bitmap iteration reproduces
// input order without extra bookkeeping.
//
// Lookups by a cardinality with no critics (including negative values and
// values above MaxNovels) return an empty slice, never an error: neighbouring
// bucket lookups during graph construction are expected to miss at the
// boundaries.
package bucket
