// SPDX-License-Identifier: MIT
// Package: peelmis/mis
//
// types.go - results, per-round statistics and sentinel errors.

package mis

import (
	"errors"
	"time"

	"github.com/katalvlaran/peelmis/counter"
)

var (
	// ErrStalled reports an empty frontier while vertices are undecided.
	ErrStalled = errors.New("mis: frontier empty with undecided vertices")

	// ErrSizeMismatch reports inputs that disagree on the vertex count.
	ErrSizeMismatch = errors.New("mis: size mismatch")

	// ErrNotIndependent reports two adjacent members.
	ErrNotIndependent = errors.New("mis: set is not independent")

	// ErrNotMaximal reports a non-member with no member neighbour.
	ErrNotMaximal = errors.New("mis: set is not maximal")
)

// Vertex decision states.
const (
	undecided uint32 = iota
	included
	excluded
)

// RoundStat describes one peeling round.
type RoundStat struct {
	Round    int
	Frontier int // vertices included
	Removed  int // vertices excluded
	Elapsed  time.Duration
}

// Result is the outcome of Run.
type Result struct {
	// InSet[v] reports membership of v.
	InSet []bool
	// Size is the number of members.
	Size int
	// Rounds counts loop iterations, recovery rounds included.
	Rounds int
	// Recoveries counts stall sweeps (inexact strategies only).
	Recoveries int
	// Stats holds one entry per round.
	Stats []RoundStat

	Counter     counter.Kind
	Workers     int
	InitElapsed time.Duration
	Elapsed     time.Duration // whole run, initialisation included
}

// Members returns the ids of the members in increasing order.
func (r *Result) Members() []uint32 { return Members(r.InSet) }

// Members returns the indices set in inSet in increasing order.
func Members(inSet []bool) []uint32 {
	var out []uint32
	for v, in := range inSet {
		if in {
			out = append(out, uint32(v))
		}
	}
	return out
}
