// SPDX-License-Identifier: MIT
// Package: simmatch/internal/cli
//
// match.go — match command.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/simmatch"
	"github.com/katalvlaran/simmatch/matching"
	"github.com/katalvlaran/simmatch/problem"
)

type matchOpts struct {
	method string
	verify bool
}

// matchCommand creates the match command.
func (c *CLI) matchCommand() *cobra.Command {
	var opts matchOpts

	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Pair similar critics from a problem file (stdin if omitted)",
		Long: `Match reads "<critics> <novels>" followed by one line of liked novel ids
per critic, and prints one "a b" line per matched pair (1-based, a < b).`,
		Example: `  simmatch match input.txt
  simmatch generate --seed 7 | simmatch match -v --verify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("method") {
				opts.method = c.cfg.Match.Method
			}
			if !cmd.Flags().Changed("verify") {
				opts.verify = c.cfg.Match.Verify
			}
			return c.runMatch(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.method, "method", matching.MethodHopcroftKarp,
		fmt.Sprintf("matching algorithm: %s or %s", matching.MethodHopcroftKarp, matching.MethodKuhn))
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check graph bipartiteness and matching validity")

	return cmd
}

func (c *CLI) runMatch(cmd *cobra.Command, args []string, opts matchOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, name, closeIn, err := c.openInput(args)
	if err != nil {
		return err
	}
	defer closeIn()

	prog := newProgress(logger)
	p, err := problem.Read(in)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	prog.done("Read problem", "source", name, "critics", p.Critics(), "novels", p.Novels)
	// The engine is synchronous; an interrupt is honoured between stages.
	if err := ctx.Err(); err != nil {
		return err
	}

	mopts := []simmatch.Option{simmatch.WithMethod(opts.method), simmatch.WithLogger(logger)}
	if opts.verify {
		mopts = append(mopts, simmatch.WithVerify())
	}

	prog = newProgress(logger)
	res, err := simmatch.Match(p.Preferences, p.Novels, mopts...)
	if err != nil {
		return err
	}
	pairs := res.Pairs()
	prog.done(fmt.Sprintf("Matched %d pairs", len(pairs)),
		"critics", p.Critics(), "edges", res.Graph.Size(), "method", opts.method)
	if err := ctx.Err(); err != nil {
		return err
	}

	return problem.WritePairs(c.out, pairs)
}

// openInput returns the named file, or stdin when no argument (or "-") is given.
func (c *CLI) openInput(args []string) (io.Reader, string, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return c.in, "stdin", func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("open input: %w", err)
	}

	return f, args[0], func() { _ = f.Close() }, nil
}
