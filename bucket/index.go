// SPDX-License-Identifier: MIT
// Package: simmatch/bucket
//
// index.go — cardinality index over critic bitmasks.

package bucket

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/simmatch/bitmask"
)

// Index maps a preference-set cardinality to the critics holding it.
// It is built once by Build and is read-only afterwards.
type Index struct {
	// buckets[k] holds the critic indices whose mask has popcount k; nil when empty.
	buckets [bitmask.MaxNovels + 1]*roaring.Bitmap
	// counts[c] caches the popcount of critic c.
	counts []uint8
}

// Build groups critic indices 0..len(masks)-1 by the popcount of their mask.
//
// Complexity: O(V) time, O(V) space.
func Build(masks []bitmask.Mask) *Index {
	idx := &Index{counts: make([]uint8, len(masks))}
	for c, m := range masks {
		k := m.Count()
		idx.counts[c] = uint8(k)
		if idx.buckets[k] == nil {
			idx.buckets[k] = roaring.New()
		}
		idx.buckets[k].Add(uint32(c))
	}
	for _, b := range idx.buckets {
		if b != nil {
			b.RunOptimize()
		}
	}

	return idx
}

// Critics returns the critics with cardinality k in input order.
// A miss yields an empty, non-nil slice.
func (idx *Index) Critics(k int) []int {
	b := idx.bucket(k)
	if b == nil {
		return []int{}
	}
	out := make([]int, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Len returns the number of critics with cardinality k (0 on miss).
func (idx *Index) Len(k int) int {
	b := idx.bucket(k)
	if b == nil {
		return 0
	}

	return int(b.GetCardinality())
}

// Has reports whether at least one critic has cardinality k.
func (idx *Index) Has(k int) bool {
	return idx.Len(k) > 0
}

// Cardinalities returns the populated cardinalities in ascending order.
func (idx *Index) Cardinalities() []int {
	var out []int
	for k, b := range idx.buckets {
		if b != nil && !b.IsEmpty() {
			out = append(out, k)
		}
	}

	return out
}

// Total returns the number of indexed critics.
func (idx *Index) Total() int {
	return len(idx.counts)
}

// Cardinality returns the popcount of critic c, or -1 if c is not indexed.
func (idx *Index) Cardinality(c int) int {
	if c < 0 || c >= len(idx.counts) {
		return -1
	}

	return int(idx.counts[c])
}

// Bitmap returns a copy of bucket k for set algebra by callers (empty on miss).
func (idx *Index) Bitmap(k int) *roaring.Bitmap {
	b := idx.bucket(k)
	if b == nil {
		return roaring.New()
	}

	return b.Clone()
}

func (idx *Index) bucket(k int) *roaring.Bitmap {
	if k < 0 || k >= len(idx.buckets) {
		return nil
	}

	return idx.buckets[k]
}
