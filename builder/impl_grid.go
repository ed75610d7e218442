// SPDX-License-Identifier: MIT
// Package: peelmis/builder
//
// impl_grid.go - Grid(rows, cols).

package builder

import "fmt"

// Grid adds a rows×cols 4-neighbourhood lattice, vertex r*cols+c in
// row-major order (rows, cols ≥ 1).
func Grid(rows, cols int) Constructor {
	return func(s *Sink, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: dimensions must be ≥ %d, got %dx%d: %w",
				MethodGrid, MinGridDim, rows, cols, ErrTooFewVertices)
		}
		base, err := block(s, MethodGrid, rows*cols, 1)
		if err != nil {
			return err
		}
		at := func(r, c int) uint32 { return base + uint32(r*cols+c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					s.Link(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					s.Link(at(r, c), at(r+1, c))
				}
			}
		}
		return nil
	}
}
