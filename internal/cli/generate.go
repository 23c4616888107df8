// SPDX-License-Identifier: MIT
// Package: simmatch/internal/cli
//
// generate.go — generate command.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simmatch/generate"
	"github.com/katalvlaran/simmatch/problem"
)

type generateOpts struct {
	seed                   int64
	minCritics, maxCritics int
	minNovels, maxNovels   int
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Print a random problem",
		Example: `  simmatch generate --seed 7 --min-critics 10 --max-critics 10 > small.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyGenerateConfig(cmd, &opts)
			return c.runGenerate(cmd, opts)
		},
	}

	d := c.cfg.Generate
	cmd.Flags().Int64Var(&opts.seed, "seed", d.Seed, "random seed")
	cmd.Flags().IntVar(&opts.minCritics, "min-critics", d.MinCritics, "minimum number of critics")
	cmd.Flags().IntVar(&opts.maxCritics, "max-critics", d.MaxCritics, "maximum number of critics")
	cmd.Flags().IntVar(&opts.minNovels, "min-novels", d.MinNovels, "minimum number of novels")
	cmd.Flags().IntVar(&opts.maxNovels, "max-novels", d.MaxNovels, "maximum number of novels")

	return cmd
}

// applyGenerateConfig fills every flag the user did not set from the loaded config.
func (c *CLI) applyGenerateConfig(cmd *cobra.Command, opts *generateOpts) {
	g := c.cfg.Generate
	fl := cmd.Flags()
	if !fl.Changed("seed") {
		opts.seed = g.Seed
	}
	if !fl.Changed("min-critics") {
		opts.minCritics = g.MinCritics
	}
	if !fl.Changed("max-critics") {
		opts.maxCritics = g.MaxCritics
	}
	if !fl.Changed("min-novels") {
		opts.minNovels = g.MinNovels
	}
	if !fl.Changed("max-novels") {
		opts.maxNovels = g.MaxNovels
	}
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	prog := newProgress(logger)
	p, err := generate.Generate(
		generate.WithSeed(opts.seed),
		generate.WithCritics(opts.minCritics, opts.maxCritics),
		generate.WithNovels(opts.minNovels, opts.maxNovels),
	)
	if err != nil {
		return err
	}
	prog.done("Generated problem", "seed", opts.seed, "critics", p.Critics(), "novels", p.Novels)

	return problem.Write(c.out, p)
}
