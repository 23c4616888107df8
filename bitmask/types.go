// SPDX-License-Identifier: MIT
// Package: simmatch/bitmask
//
// types.go — Mask type, bounds and error values.

package bitmask

import (
	"errors"
	"fmt"
)

// MaxNovels is the largest novel bound a Mask can represent (bit width of Mask).
const MaxNovels = 32

// NoCritic marks a RangeError that was produced outside of EncodeAll,
// where no critic index is known.
const NoCritic = -1

// Mask is a compact preference set: bit (id-1) is set iff novel id is liked.
type Mask uint32

// Sentinel errors for the bitmask package.
var (
	// ErrInvalidBound indicates maxNovels is outside [1, MaxNovels].
	ErrInvalidBound = errors.New("bitmask: novel bound out of range")

	// ErrNovelOutOfRange indicates a novel id outside [1, maxNovels].
	ErrNovelOutOfRange = errors.New("bitmask: novel id out of range")
)

// RangeError reports a novel identifier outside [1, MaxNovels] together with
// the critic that carried it. It unwraps to ErrNovelOutOfRange.
type RangeError struct {
	Critic    int // zero-based critic index, NoCritic if unknown
	Novel     int // offending novel id
	MaxNovels int // declared bound
}

func (e *RangeError) Error() string {
	if e.Critic == NoCritic {
		return fmt.Sprintf("bitmask: novel %d outside [1, %d]", e.Novel, e.MaxNovels)
	}

	return fmt.Sprintf("bitmask: critic %d: novel %d outside [1, %d]", e.Critic, e.Novel, e.MaxNovels)
}

// Unwrap lets errors.Is(err, ErrNovelOutOfRange) match.
func (e *RangeError) Unwrap() error { return ErrNovelOutOfRange }
