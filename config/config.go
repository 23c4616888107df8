// SPDX-License-Identifier: MIT
// Package: simmatch/config
//
// config.go — TOML configuration over built-in defaults.

// Package config loads the simmatch CLI configuration from TOML.
//
// Every field has a default (Default), a file only needs to override what
// it changes, and command-line flags override the file:
//
//	[match]
//	method = "hopcroft-karp"   # or "kuhn"
//	verify = false
//
//	[generate]
//	seed = 1
//	min_critics = 100000
//	max_critics = 500000
//	min_novels = 4
//	max_novels = 20
//
//	[log]
//	level = "info"             # debug, info, warn, error
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/simmatch/generate"
	"github.com/katalvlaran/simmatch/matching"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full CLI configuration.
type Config struct {
	Match    MatchConfig    `toml:"match"`
	Generate GenerateConfig `toml:"generate"`
	Log      LogConfig      `toml:"log"`
}

// MatchConfig configures the match command.
type MatchConfig struct {
	Method string `toml:"method"`
	Verify bool   `toml:"verify"`
}

// GenerateConfig configures the generate command.
type GenerateConfig struct {
	Seed       int64 `toml:"seed"`
	MinCritics int   `toml:"min_critics"`
	MaxCritics int   `toml:"max_critics"`
	MinNovels  int   `toml:"min_novels"`
	MaxNovels  int   `toml:"max_novels"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Match: MatchConfig{Method: matching.MethodHopcroftKarp},
		Generate: GenerateConfig{
			Seed:       1,
			MinCritics: generate.DefaultMinCritics,
			MaxCritics: generate.DefaultMaxCritics,
			MinNovels:  generate.DefaultMinNovels,
			MaxNovels:  generate.DefaultMaxNovels,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return decode(string(data), path, cfg)
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (*Config, error) {
	return decode(text, "<input>", Default())
}

func decode(text, name string, cfg *Config) (*Config, error) {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: %s: unknown keys %s: %w", name, strings.Join(keys, ", "), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail deep inside a command.
// Generator ranges are validated by the generate package itself.
func (c *Config) Validate() error {
	switch c.Match.Method {
	case matching.MethodHopcroftKarp, matching.MethodKuhn:
	default:
		return fmt.Errorf("config: match.method %q: %w", c.Match.Method, ErrInvalid)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("config: log.level %q: %w", c.Log.Level, ErrInvalid)
	}

	return lvl, nil
}

// Write encodes c as TOML.
func (c *Config) Write(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return nil
}
