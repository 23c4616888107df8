// SPDX-License-Identifier: MIT
// Package: simmatch/generate
//
// options.go — functional options and deterministic defaults.
//
// Contract:
//   • Options are functional (type Option func(*config)); later options win.
//   • WithRand panics on nil (programmer error); range options never panic,
//     Generate validates them and returns sentinel errors instead, since
//     they usually come from user flags.

package generate

import "math/rand"

// Defaults taken from the reference generator.
const (
	DefaultMinCritics = 100000
	DefaultMaxCritics = 500000
	DefaultMinNovels  = 4
	DefaultMaxNovels  = 20
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng *rand.Rand

	minCritics, maxCritics int
	minNovels, maxNovels   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		minCritics: DefaultMinCritics,
		maxCritics: DefaultMaxCritics,
		minNovels:  DefaultMinNovels,
		maxNovels:  DefaultMaxNovels,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generate: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithCritics sets the inclusive range the critic count is drawn from.
func WithCritics(minN, maxN int) Option {
	return func(c *config) { c.minCritics, c.maxCritics = minN, maxN }
}

// WithNovels sets the inclusive range the novel count is drawn from.
func WithNovels(minN, maxN int) Option {
	return func(c *config) { c.minNovels, c.maxNovels = minN, maxN }
}
