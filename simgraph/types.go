// SPDX-License-Identifier: MIT
// Package: simmatch/simgraph
//
// types.go — graph types, options and sentinel errors.

package simgraph

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Side is the bipartite side of a critic: the parity of its bucket.
type Side uint8

const (
	// SideEven holds critics with an even number of liked novels (the matcher's left side).
	SideEven Side = 0
	// SideOdd holds critics with an odd number of liked novels.
	SideOdd Side = 1
)

func (s Side) String() string {
	if s == SideEven {
		return "even"
	}

	return "odd"
}

// Edge is an unordered compatibility pair stored with its lower-cardinality end first.
type Edge struct {
	Lower int // critic in bucket k
	Upper int // critic in bucket k+1
}

// Sentinel errors for the simgraph package.
var (
	ErrNilIndex         = errors.New("simgraph: nil bucket index")
	ErrIndexMismatch    = errors.New("simgraph: bucket index does not match masks")
	ErrInvalidBound     = errors.New("simgraph: novel bound out of range")
	ErrMaskExceedsBound = errors.New("simgraph: preference set larger than novel bound")
	ErrNotBipartite     = errors.New("simgraph: bucket parity is not a valid 2-colouring")
)

// StructureError describes the edge that broke a structural invariant.
// It unwraps to ErrNotBipartite.
type StructureError struct {
	A, B   int
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("simgraph: edge %d-%d: %s", e.A, e.B, e.Reason)
}

// Unwrap lets errors.Is(err, ErrNotBipartite) match.
func (e *StructureError) Unwrap() error { return ErrNotBipartite }

// Option customizes Build.
type Option func(*config)

type config struct {
	verify bool
	logger *log.Logger
}

// WithVerify runs Verify right after construction and fails Build on a violation.
func WithVerify() Option {
	return func(c *config) { c.verify = true }
}

// WithLogger reports per-bucket statistics at debug level.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("simgraph: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
