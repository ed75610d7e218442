// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// constants.go - method tags and size minimums.

package builder

// Method tags prefix constructor errors.
const (
	MethodEmpty             = "Empty"
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomEdges       = "RandomEdges"
	MethodRandomRegular     = "RandomRegular"
)

// Minimum sizes.
const (
	MinPathNodes  = 1
	MinCycleNodes = 3 // fewer needs loops or parallel edges
	MinStarNodes  = 2 // hub plus one leaf
	MinWheelNodes = 4 // hub plus a triangle rim
	MinGridDim    = 1
	MinPartition  = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 100
