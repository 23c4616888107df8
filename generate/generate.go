// SPDX-License-Identifier: MIT
// Package: simmatch/generate
//
// generate.go — random problem construction.

package generate

import (
	"fmt"

	"github.com/katalvlaran/simmatch/bitmask"
	"github.com/katalvlaran/simmatch/problem"
)

// Generate draws a random problem.
//
// Validation order: critic range, novel range, then RNG presence.
// Complexity: O(C·N) time for C critics and N novels, O(C·N) space.
func Generate(opts ...Option) (*problem.Problem, error) {
	cfg := newConfig(opts...)

	if cfg.minCritics < 0 || cfg.minCritics > cfg.maxCritics {
		return nil, fmt.Errorf("Generate: critics=[%d,%d]: %w", cfg.minCritics, cfg.maxCritics, ErrTooFewCritics)
	}
	if cfg.minNovels < 1 || cfg.maxNovels > bitmask.MaxNovels || cfg.minNovels > cfg.maxNovels {
		return nil, fmt.Errorf("Generate: novels=[%d,%d] (bound 1..%d): %w",
			cfg.minNovels, cfg.maxNovels, bitmask.MaxNovels, ErrBadNovelRange)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}

	r := cfg.rng
	critics := cfg.minCritics + r.Intn(cfg.maxCritics-cfg.minCritics+1)
	novels := cfg.minNovels + r.Intn(cfg.maxNovels-cfg.minNovels+1)

	p := &problem.Problem{Novels: novels, Preferences: make([][]int, critics)}
	for c := range p.Preferences {
		k := 1 + r.Intn(novels)
		ids := r.Perm(novels)[:k]
		for i := range ids {
			ids[i]++
		}
		p.Preferences[c] = ids
	}

	return p, nil
}
