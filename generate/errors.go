// SPDX-License-Identifier: MIT
// Package: simmatch/generate
//
// errors.go — sentinel errors. Callers branch with errors.Is; Generate wraps
// them with the offending values via %w.

package generate

import "errors"

// ErrNeedRandSource indicates Generate was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generate: rng is required")

// ErrTooFewCritics indicates a negative or empty critic range.
var ErrTooFewCritics = errors.New("generate: invalid critic range")

// ErrBadNovelRange indicates an empty novel range or one outside [1, bitmask.MaxNovels].
var ErrBadNovelRange = errors.New("generate: invalid novel range")
