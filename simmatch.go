// SPDX-License-Identifier: MIT
// Package: simmatch
//
// simmatch.go — end-to-end pipeline over the core packages.

package simmatch

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/simmatch/bitmask"
	"github.com/katalvlaran/simmatch/bucket"
	"github.com/katalvlaran/simmatch/matching"
	"github.com/katalvlaran/simmatch/simgraph"
)

// Option customizes Match.
type Option func(*config)

type config struct {
	method string
	verify bool
	logger *log.Logger
}

// WithMethod selects the matching algorithm (matching.MethodHopcroftKarp by default).
func WithMethod(method string) Option {
	return func(c *config) { c.method = method }
}

// WithVerify checks the graph's parity colouring and the final matching.
func WithVerify() Option {
	return func(c *config) { c.verify = true }
}

// WithLogger threads l through every stage. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("simmatch: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// Result holds every intermediate product of a run. All fields are read-only.
type Result struct {
	Masks    []bitmask.Mask
	Index    *bucket.Index
	Graph    *simgraph.Graph
	Matching *matching.Matching
}

// Pairs returns the matched critic pairs, each once, smaller index first.
func (r *Result) Pairs() []matching.Pair {
	return r.Matching.Pairs()
}

// Match computes a maximum set of disjoint similar pairs among the critics.
// prefs[i] lists the novel ids critic i likes, each in [1, maxNovels].
//
// There is no partial result: any error aborts the run.
//   - *bitmask.RangeError for an id outside [1, maxNovels] (names the critic).
//   - bitmask.ErrInvalidBound for maxNovels outside [1, bitmask.MaxNovels].
//   - *simgraph.StructureError or matching.ErrInvalidMatching with WithVerify (defects).
//   - matching.ErrUnknownMethod for a bad WithMethod value.
func Match(prefs [][]int, maxNovels int, opts ...Option) (*Result, error) {
	cfg := config{method: matching.MethodHopcroftKarp}
	for _, opt := range opts {
		opt(&cfg)
	}

	masks, err := bitmask.EncodeAll(prefs, maxNovels)
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}
	idx := bucket.Build(masks)
	if cfg.logger != nil {
		cfg.logger.Debug("critics bucketed", "critics", idx.Total(), "buckets", len(idx.Cardinalities()))
	}

	var gopts []simgraph.Option
	if cfg.verify {
		gopts = append(gopts, simgraph.WithVerify())
	}
	if cfg.logger != nil {
		gopts = append(gopts, simgraph.WithLogger(cfg.logger))
	}
	g, err := simgraph.Build(masks, idx, maxNovels, gopts...)
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}

	m, err := matching.Compute(g, matching.Options{Method: cfg.method, Logger: cfg.logger})
	if err != nil {
		return nil, fmt.Errorf("Match: %w", err)
	}
	if cfg.verify {
		if err := matching.Verify(m, g); err != nil {
			return nil, fmt.Errorf("Match: %w", err)
		}
	}
	if cfg.logger != nil {
		cfg.logger.Debug("matching done", "method", cfg.method, "pairs", m.Size(),
			"matched", 2*m.Size(), "critics", len(masks))
	}

	return &Result{Masks: masks, Index: idx, Graph: g, Matching: m}, nil
}
