package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peelmis/builder"
	"github.com/katalvlaran/peelmis/csr"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *csr.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, cons...)
	require.NoError(t, err)
	require.NoError(t, csr.Validate(g))
	require.True(t, csr.IsSymmetric(g))
	return g
}

func TestBuilders_Functional(t *testing.T) {
	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantN int
		wantM int // directed entries = 2 × undirected edges
		check func(t *testing.T, g *csr.Graph)
	}{
		{
			name: "Empty(5)", ctor: builder.Empty(5), wantN: 5, wantM: 0,
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantN: 4, wantM: 6,
			check: func(t *testing.T, g *csr.Graph) {
				assert.Equal(t, []uint32{1}, g.Neighbors(0))
				assert.Equal(t, []uint32{0, 2}, g.Neighbors(1))
				assert.Equal(t, []uint32{2}, g.Neighbors(3))
			},
		},
		{
			name: "Path(1)", ctor: builder.Path(1), wantN: 1, wantM: 0,
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantN: 5, wantM: 10,
			check: func(t *testing.T, g *csr.Graph) {
				assert.True(t, g.HasEdge(4, 0))
				for u := uint32(0); u < 5; u++ {
					assert.Equal(t, 2, g.Degree(u))
				}
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantN: 6, wantM: 10,
			check: func(t *testing.T, g *csr.Graph) {
				assert.Equal(t, 5, g.Degree(0))
				for u := uint32(1); u < 6; u++ {
					assert.Equal(t, []uint32{0}, g.Neighbors(u))
				}
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantN: 5, wantM: 16,
			check: func(t *testing.T, g *csr.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				for u := uint32(1); u < 5; u++ {
					assert.Equal(t, 3, g.Degree(u))
				}
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantN: 5, wantM: 20,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantN: 5, wantM: 12,
			check: func(t *testing.T, g *csr.Graph) {
				assert.Equal(t, []uint32{2, 3, 4}, g.Neighbors(0))
				assert.Equal(t, []uint32{0, 1}, g.Neighbors(4))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantN: 12, wantM: 2 * (3*3 + 2*4),
			check: func(t *testing.T, g *csr.Graph) {
				assert.Equal(t, []uint32{1, 4}, g.Neighbors(0))
				assert.Equal(t, []uint32{1, 4, 6, 9}, g.Neighbors(5))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, nil, tc.ctor)
			assert.Equal(t, tc.wantN, g.N)
			assert.Equal(t, tc.wantM, g.M)
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g := build(t, nil, builder.Star(3), builder.Empty(2), builder.Path(2))
	assert.Equal(t, 7, g.N)
	assert.Equal(t, []uint32{1, 2}, g.Neighbors(0))
	assert.Empty(t, g.Neighbors(3))
	assert.Empty(t, g.Neighbors(4))
	assert.Equal(t, []uint32{6}, g.Neighbors(5))
}

func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"nil", nil, nil, builder.ErrConstructFailed},
		{"Path(0)", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"Empty(-1)", nil, builder.Empty(-1), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,3)", nil, builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"Grid(0,3)", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse p<0", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse p>1", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", nil, builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"RandomEdges no rng", nil, builder.RandomEdges(5, 3), builder.ErrNeedRandSource},
		{"RandomEdges(1,0)", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomEdges(1, 0), builder.ErrTooFewVertices},
		{"RandomRegular odd", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular d>=n", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular no rng", nil, builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), "BuildGraph: ")
		})
	}
}

func TestRandomSparse_DeterministicAndPlausible(t *testing.T) {
	const n, p = 2000, 0.005
	a := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(n, p))
	b := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomSparse(n, p))
	assert.Equal(t, a.Offsets, b.Offsets)
	assert.Equal(t, a.Edges, b.Edges)

	// Expected undirected edges: p·n(n-1)/2 ≈ 9995, sd ≈ 100.
	assert.InDelta(t, p*n*(n-1)/2, float64(a.M/2), 600)

	full := build(t, nil, builder.RandomSparse(6, 1))
	assert.Equal(t, 30, full.M)
	none := build(t, nil, builder.RandomSparse(6, 0))
	assert.Equal(t, 0, none.M)
}

func TestRandomEdges(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(9)))}, builder.RandomEdges(1000, 3000))
	assert.Equal(t, 1000, g.N)
	assert.LessOrEqual(t, g.M, 6000)
	assert.Greater(t, g.M, 5800) // few collisions among 3000 of ~500k pairs
	for u := uint32(0); u < uint32(g.N); u++ {
		assert.False(t, g.HasEdge(u, u))
	}
}

func TestRandomRegular(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(50, 3))
	for u := uint32(0); u < 50; u++ {
		require.Equal(t, 3, g.Degree(u), "vertex %d", u)
	}
	iso := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomRegular(4, 0))
	assert.Equal(t, 4, iso.N)
	assert.Zero(t, iso.M)
}

func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
}
