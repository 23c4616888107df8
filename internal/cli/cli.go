// SPDX-License-Identifier: MIT
// Package: simmatch/internal/cli
//
// cli.go — root command and shared CLI state.

// Package cli implements the simmatch command-line interface.
//
// # Commands
//
//   - match:    read a problem (file or stdin) and print the matched pairs
//   - generate: print a random problem
//   - config:   print the effective configuration as TOML
//
// # Logging
//
// Logs go to stderr through charmbracelet/log; --verbose (-v) switches to
// debug level, which also reports per-bucket and per-phase statistics from
// the matching engine. Results always go to stdout.
//
// # Configuration
//
// --config points at a TOML file (see package config); flags given on the
// command line take precedence over the file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/simmatch/config"
)

const appName = "simmatch"

// Version is reported by --version; set via -ldflags at build time.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer
	cfg *config.Config

	verbose    bool
	configPath string
}

// New creates a CLI reading from in, writing results to out and logs to errw.
func New(in io.Reader, out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		in:     in,
		out:    out,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Simmatch pairs critics whose favourite novels differ by one",
		Long:         `Simmatch finds a maximum set of disjoint critic pairs whose liked-novel sets differ by exactly one novel.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(c.matchCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.configCommand())

	return root
}

// setup loads the configuration and settles the log level:
// --verbose wins over the file, the file wins over the default.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	return nil
}
