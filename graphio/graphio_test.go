package graphio_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peelmis/builder"
	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/graphio"
)

const path3 = "AdjacencyGraph\n3\n4\n0\n1\n3\n1\n0\n2\n1\n"

func samplePath(t *testing.T) *csr.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	return g
}

func sampleRandom(t *testing.T) *csr.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(60, 0.1))
	require.NoError(t, err)
	return g
}

func TestWriteAdjacency_Path(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteAdjacency(&buf, samplePath(t)))
	assert.Equal(t, path3, buf.String())
}

func TestReadAdjacency(t *testing.T) {
	g, err := graphio.ReadAdjacency(strings.NewReader(path3))
	require.NoError(t, err)
	assert.Equal(t, samplePath(t), g)

	// Leading comments and arbitrary whitespace are accepted.
	g, err = graphio.ReadAdjacency(strings.NewReader("# generated\n\nAdjacencyGraph\n3 4  0 1 3\t1 0 2 1"))
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 0, 2, 1}, g.Edges)
}

func TestReadAdjacency_Weighted(t *testing.T) {
	in := "WeightedAdjacencyGraph\n2\n2\n0\n1\n1\n0\n5\n5\n"
	g, err := graphio.ReadAdjacency(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, g.N)
	assert.Equal(t, []uint64{0, 1, 2}, g.Offsets)
	assert.Equal(t, []uint32{1, 0}, g.Edges)

	_, err = graphio.ReadAdjacency(strings.NewReader("WeightedAdjacencyGraph\n2\n2\n0\n1\n1\n0\n5\n"))
	assert.ErrorIs(t, err, graphio.ErrTruncated)
}

func TestReadAdjacency_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphio.ErrTruncated},
		{"only comments", "# a\n# b\n", graphio.ErrTruncated},
		{"bad header", "EdgeList\n1\n0\n0\n", graphio.ErrBadHeader},
		{"missing edges", "AdjacencyGraph\n3\n4\n0\n1\n3\n1\n0\n", graphio.ErrTruncated},
		{"decreasing offsets", "AdjacencyGraph\n2\n2\n1\n0\n0\n1\n", csr.ErrBadOffsets},
		{"edge out of range", "AdjacencyGraph\n2\n2\n0\n1\n1\n7\n", csr.ErrEdgeOutOfRange},
		{"forged edge count", "AdjacencyGraph\n1\n4611686018427387904\n0\n", graphio.ErrTruncated},
		{"forged vertex count", "AdjacencyGraph\n4294967295\n0\n0\n", graphio.ErrTruncated},
		{"vertex count above id range", "AdjacencyGraph\n4294967296\n0\n", csr.ErrTooManyVertices},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.ReadAdjacency(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := graphio.ReadAdjacency(strings.NewReader("AdjacencyGraph\nthree\n"))
	assert.Error(t, err)
}

func TestBinary_RoundTrip(t *testing.T) {
	g := sampleRandom(t)
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteBinary(&buf, g))
	assert.Equal(t, (g.N+1)*8+g.M*4+24, buf.Len())

	back, err := graphio.ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestBinary_Layout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteBinary(&buf, samplePath(t)))
	raw := buf.Bytes()
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(raw[0:]))
	assert.Equal(t, uint64(4), binary.LittleEndian.Uint64(raw[8:]))
	assert.Equal(t, uint64(4*8+4*4+24), binary.LittleEndian.Uint64(raw[16:]))
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(raw[24+2*8:]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(raw[24+4*8+2*4:]))
}

func TestReadBinary_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteBinary(&buf, samplePath(t)))
	good := buf.Bytes()

	_, err := graphio.ReadBinary(bytes.NewReader(good[:10]))
	assert.ErrorIs(t, err, graphio.ErrTruncated)

	_, err = graphio.ReadBinary(bytes.NewReader(good[:len(good)-1]))
	assert.ErrorIs(t, err, graphio.ErrTruncated)

	bad := bytes.Clone(good)
	binary.LittleEndian.PutUint64(bad[16:], 1)
	_, err = graphio.ReadBinary(bytes.NewReader(bad))
	assert.ErrorIs(t, err, graphio.ErrSizeMismatch)

	bad = bytes.Clone(good)
	binary.LittleEndian.PutUint32(bad[len(bad)-4:], 9)
	_, err = graphio.ReadBinary(bytes.NewReader(bad))
	assert.ErrorIs(t, err, csr.ErrEdgeOutOfRange)
}

func binaryHeader(n, m, sizes uint64) []byte {
	raw := make([]byte, 0, 24)
	raw = binary.LittleEndian.AppendUint64(raw, n)
	raw = binary.LittleEndian.AppendUint64(raw, m)
	return binary.LittleEndian.AppendUint64(raw, sizes)
}

func TestReadBinary_ForgedHeaders(t *testing.T) {
	cases := []struct {
		name string
		raw  []byte
		want error
	}{
		{
			// (n+1)*8 + m*4 + 24 wraps around to a small value.
			name: "size overflow",
			raw:  append(binaryHeader(0, 1<<62, 8+24), make([]byte, 8)...),
			want: graphio.ErrSizeMismatch,
		},
		{
			name: "huge edge count",
			raw:  append(binaryHeader(0, 1<<40, 8+(1<<40)*4+24), make([]byte, 8)...),
			want: graphio.ErrTruncated,
		},
		{
			name: "huge vertex count",
			raw:  binaryHeader(1<<31, 0, (1<<31+1)*8+24),
			want: graphio.ErrTruncated,
		},
		{
			name: "vertex count above id range",
			raw:  binaryHeader(1<<32, 0, 0),
			want: csr.ErrTooManyVertices,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				err error
				g   *csr.Graph
			)
			require.NotPanics(t, func() { g, err = graphio.ReadBinary(bytes.NewReader(tc.raw)) })
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadBinary_LargerThanOneChunk(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(40_000))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, graphio.WriteBinary(&buf, g))
	back, err := graphio.ReadBinary(&buf)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestDetect(t *testing.T) {
	cases := []struct {
		path   string
		format graphio.Format
		comp   graphio.Compression
	}{
		{"g.adj", graphio.FormatAdjacency, graphio.CompressNone},
		{"dir/G.BIN", graphio.FormatBinary, graphio.CompressNone},
		{"g.bin.zst", graphio.FormatBinary, graphio.CompressZstd},
		{"g.adj.gz", graphio.FormatAdjacency, graphio.CompressGzip},
	}
	for _, tc := range cases {
		f, c, err := graphio.Detect(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.format, f, tc.path)
		assert.Equal(t, tc.comp, c, tc.path)
	}

	for _, p := range []string{"g.txt", "g.zst", "g"} {
		_, _, err := graphio.Detect(p)
		assert.ErrorIs(t, err, graphio.ErrUnknownFormat, p)
	}
}

func TestSaveLoad(t *testing.T) {
	g := sampleRandom(t)
	dir := t.TempDir()
	for _, name := range []string{"g.adj", "g.bin", "g.adj.zst", "g.bin.zst", "g.adj.gz", "g.bin.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, graphio.Save(path, g))
			back, err := graphio.Load(path)
			require.NoError(t, err)
			assert.Equal(t, g, back)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := graphio.Load(filepath.Join(dir, "missing.adj"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = graphio.Load(filepath.Join(dir, "g.csv"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)

	// Plain text behind a .zst extension is not a zstd frame.
	path := filepath.Join(dir, "plain.adj.zst")
	require.NoError(t, os.WriteFile(path, []byte(path3), 0o644))
	_, err = graphio.Load(path)
	assert.Error(t, err)
}

func TestExporters(t *testing.T) {
	inSet := []bool{false, true, false, true, true}

	var csv bytes.Buffer
	require.NoError(t, graphio.WriteCSV(&csv, inSet))
	assert.Equal(t, "3,1,3,4", csv.String())

	var list bytes.Buffer
	require.NoError(t, graphio.WriteList(&list, inSet))
	assert.Equal(t, "# MIS size: 3\n1\n3\n4\n", list.String())

	var empty bytes.Buffer
	require.NoError(t, graphio.Export(&empty, graphio.ExportCSV, nil))
	assert.Equal(t, "0", empty.String())

	assert.ErrorIs(t, graphio.Export(&empty, "xml", inSet), graphio.ErrUnknownFormat)
}
