package csr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peelmis/csr"
)

// TestFromEdges_SortsAdjacency checks counting-sort placement and per-vertex ordering.
func TestFromEdges_SortsAdjacency(t *testing.T) {
	g, err := csr.FromEdges(4, []csr.Edge{{2, 1}, {0, 3}, {0, 1}, {2, 0}})
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 4, g.NumEdges())
	assert.Equal(t, []uint64{0, 2, 2, 4, 4}, g.Offsets)
	assert.Equal(t, []uint32{1, 3}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(1))
	assert.Equal(t, []uint32{0, 1}, g.Neighbors(2))
	assert.Equal(t, 0, g.Degree(3))
}

// TestFromEdges_OutOfRange rejects edges naming unknown vertices.
func TestFromEdges_OutOfRange(t *testing.T) {
	_, err := csr.FromEdges(2, []csr.Edge{{0, 2}})
	require.True(t, errors.Is(err, csr.ErrEdgeOutOfRange), "got %v", err)
}

// TestSymmetrize drops loops and duplicates and adds reverse entries.
func TestSymmetrize(t *testing.T) {
	g, err := csr.FromEdges(3, []csr.Edge{{0, 1}, {0, 1}, {1, 1}, {2, 0}})
	require.NoError(t, err)
	require.False(t, csr.IsSymmetric(g))

	sym := csr.Symmetrize(g)
	require.NoError(t, csr.Validate(sym))
	require.True(t, csr.IsSymmetric(sym))
	assert.Equal(t, []uint32{1, 2}, sym.Neighbors(0))
	assert.Equal(t, []uint32{0}, sym.Neighbors(1))
	assert.Equal(t, []uint32{0}, sym.Neighbors(2))
	assert.Equal(t, 4, sym.M)

	// The input graph is untouched.
	assert.Equal(t, 4, g.M)
}

// TestValidate_Errors covers every malformed-offsets branch.
func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		g       *csr.Graph
		wantErr error
	}{
		{"short offsets", &csr.Graph{N: 2, M: 0, Offsets: []uint64{0, 0}}, csr.ErrBadOffsets},
		{"nonzero start", &csr.Graph{N: 1, M: 1, Offsets: []uint64{1, 1}, Edges: []uint32{0}}, csr.ErrBadOffsets},
		{"m mismatch", &csr.Graph{N: 1, M: 2, Offsets: []uint64{0, 1}, Edges: []uint32{0}}, csr.ErrBadOffsets},
		{"decreasing", &csr.Graph{N: 2, M: 1, Offsets: []uint64{0, 2, 1}, Edges: []uint32{0}}, csr.ErrBadOffsets},
		{"target", &csr.Graph{N: 1, M: 1, Offsets: []uint64{0, 1}, Edges: []uint32{7}}, csr.ErrEdgeOutOfRange},
		{"ok", &csr.Graph{N: 2, M: 2, Offsets: []uint64{0, 1, 2}, Edges: []uint32{1, 0}}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := csr.Validate(tc.g)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestNew_AdoptsSlices verifies New keeps the caller's arrays.
func TestNew_AdoptsSlices(t *testing.T) {
	offsets := []uint64{0, 1, 2}
	edges := []uint32{1, 0}
	g, err := csr.New(2, offsets, edges)
	require.NoError(t, err)
	assert.Same(t, &edges[0], &g.Edges[0])

	_, err = csr.New(2, []uint64{0, 1}, edges)
	require.ErrorIs(t, err, csr.ErrBadOffsets)
}

// TestCheckSymmetric names the missing edge.
func TestCheckSymmetric(t *testing.T) {
	g, err := csr.New(2, []uint64{0, 1, 1}, []uint32{1})
	require.NoError(t, err)
	err = csr.CheckSymmetric(g)
	require.ErrorIs(t, err, csr.ErrNotSymmetric)
	assert.Contains(t, err.Error(), "1→0")
}

// TestStats reports degree extremes.
func TestStats(t *testing.T) {
	g, err := csr.FromEdges(4, []csr.Edge{{0, 1}, {0, 2}, {1, 0}, {2, 0}})
	require.NoError(t, err)
	s := g.Stats()
	assert.Equal(t, 2, s.MaxDegree)
	assert.Equal(t, 0, s.MaxVertex)
	assert.Equal(t, 1, s.Isolated)
	assert.InDelta(t, 1.0, s.AvgDegree, 1e-9)
}

// TestHasEdge_Unsorted falls back to a scan for loader-order adjacency.
func TestHasEdge_Unsorted(t *testing.T) {
	g, err := csr.New(4, []uint64{0, 3, 3, 3, 3}, []uint32{3, 1, 2})
	require.NoError(t, err)
	for _, v := range []uint32{1, 2, 3} {
		assert.True(t, g.HasEdge(0, v), "edge 0→%d", v)
	}
	assert.False(t, g.HasEdge(0, 0))
}
