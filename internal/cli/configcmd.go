// SPDX-License-Identifier: MIT
// Package: simmatch/internal/cli
//
// configcmd.go — config command.

package cli

import "github.com/spf13/cobra"

// configCommand prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.cfg.Write(c.out)
		},
	}
}
