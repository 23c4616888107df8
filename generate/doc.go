// Package generate produces random critic/novel problems for load testing
// and benchmarks.
//
// The shape mirrors the classic test-data generator for this problem:
//
//   - critics ~ U[minCritics, maxCritics]   (default 100000..500000)
//   - novels  ~ U[minNovels,  maxNovels]    (default 4..20)
//   - each critic likes k ~ U[1, novels] distinct novels
//
// Randomness is explicit: a *rand.Rand must be supplied via WithSeed or
// WithRand, so the same seed always yields the same problem.
//
//	p, err := generate.Generate(generate.WithSeed(42), generate.WithCritics(10, 10))
//
// Errors:
//
//	ErrNeedRandSource - no WithSeed/WithRand option.
//	ErrTooFewCritics  - critic range empty or negative.
//	ErrBadNovelRange  - novel range empty or outside [1, bitmask.MaxNovels].
package generate
