// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// api.go - BuildGraph orchestrator and the block sink shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/peelmis/csr"
)

// Constructor appends one block of vertices and its edges to s.
// Constructors validate parameters before touching s and never panic.
type Constructor func(s *Sink, cfg builderConfig) error

// Sink accumulates the disjoint union built by a sequence of constructors.
type Sink struct {
	n     int
	edges []csr.Edge
}

// Grow appends k fresh vertices and returns the id of the first one.
func (s *Sink) Grow(k int) (uint32, error) {
	if int64(s.n)+int64(k) > csr.MaxVertices {
		return 0, fmt.Errorf("Grow: %d+%d vertices: %w", s.n, k, csr.ErrTooManyVertices)
	}
	base := uint32(s.n)
	s.n += k
	return base, nil
}

// Link records the undirected edge {u,v}. Both directions are materialised
// by BuildGraph.
func (s *Sink) Link(u, v uint32) {
	s.edges = append(s.edges, csr.Edge{U: u, V: v})
}

// N is the number of vertices added so far.
func (s *Sink) N() int { return s.n }

// BuildGraph applies cons in order and returns the symmetrized, duplicate
// free CSR graph of their disjoint union.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*csr.Graph, error) {
	cfg := newBuilderConfig(opts...)
	s := &Sink{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := csr.FromEdges(s.n, s.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	return csr.Symmetrize(g), nil
}

// block validates k against min and reserves k vertices.
func block(s *Sink, method string, k, min int) (uint32, error) {
	if k < min {
		return 0, fmt.Errorf("%s: n=%d < min=%d: %w", method, k, min, ErrTooFewVertices)
	}
	base, err := s.Grow(k)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	return base, nil
}
