// SPDX-License-Identifier: MIT
// Package: simmatch/bitmask
//
// bitmask.go — encoding, popcount and the one-bit similarity predicate.

package bitmask

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// Encode turns a collection of novel identifiers into a Mask.
// Bit (id-1) is set for every id; repeated ids are idempotent.
//
// Errors:
//   - ErrInvalidBound if maxNovels is outside [1, MaxNovels].
//   - *RangeError (errors.Is ErrNovelOutOfRange) for an id outside [1, maxNovels].
//
// Complexity: O(len(ids)) time, O(1) space.
func Encode(ids []int, maxNovels int) (Mask, error) {
	if err := checkBound(maxNovels); err != nil {
		return 0, err
	}

	return encode(ids, maxNovels)
}

// EncodeAll encodes the preference set of every critic, preserving input order.
// The first invalid id aborts the run; the returned *RangeError names the critic.
//
// Complexity: O(Σ len(prefs[i])) time, O(len(prefs)) space.
func EncodeAll(prefs [][]int, maxNovels int) ([]Mask, error) {
	if err := checkBound(maxNovels); err != nil {
		return nil, err
	}

	masks := make([]Mask, len(prefs))
	for c, ids := range prefs {
		m, err := encode(ids, maxNovels)
		if err != nil {
			var re *RangeError
			if errors.As(err, &re) {
				re.Critic = c
			}
			return nil, err
		}
		masks[c] = m
	}

	return masks, nil
}

// IsSimilar reports whether a and b differ in exactly one bit, i.e. one
// preference set is the other plus a single novel.
// Equal masks are never similar.
func IsSimilar(a, b Mask) bool {
	if a == b {
		return false
	}
	x := a ^ b

	return x != 0 && x&(x-1) == 0
}

// Count returns the number of liked novels (popcount).
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m))
}

// Has reports whether novel id is in the set. Ids outside [1, MaxNovels] are never present.
func (m Mask) Has(novel int) bool {
	if novel < 1 || novel > MaxNovels {
		return false
	}

	return m&(1<<uint(novel-1)) != 0
}

// Novels returns the liked novel ids in ascending order.
func (m Mask) Novels() []int {
	out := make([]int, 0, m.Count())
	for rest := uint32(m); rest != 0; rest &= rest - 1 {
		out = append(out, bits.TrailingZeros32(rest)+1)
	}

	return out
}

// String renders the mask in binary, most significant liked novel first.
func (m Mask) String() string {
	return "0b" + strconv.FormatUint(uint64(m), 2)
}

func encode(ids []int, maxNovels int) (Mask, error) {
	var m Mask
	for _, id := range ids {
		if id < 1 || id > maxNovels {
			return 0, &RangeError{Critic: NoCritic, Novel: id, MaxNovels: maxNovels}
		}
		m |= 1 << uint(id-1)
	}

	return m, nil
}

func checkBound(maxNovels int) error {
	if maxNovels < 1 || maxNovels > MaxNovels {
		return fmt.Errorf("bitmask: maxNovels=%d (want 1..%d): %w", maxNovels, MaxNovels, ErrInvalidBound)
	}

	return nil
}
