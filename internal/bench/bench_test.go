package bench_test

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peelmis/builder"
	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/internal/bench"
)

func grid(t *testing.T) *csr.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Grid(12, 12))
	require.NoError(t, err)
	return g
}

func TestRun_Report(t *testing.T) {
	g := grid(t)
	rep, err := bench.Run(context.Background(), g, bench.Spec{
		Graph:   "grid_12x12",
		Counter: counter.KindFunnel,
		Workers: 4,
		Seed:    3,
		Repeats: 3,
		Warmup:  true,
		Verify:  true,
	})
	require.NoError(t, err)

	_, err = ksuid.Parse(rep.RunID)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Workers)
	assert.Equal(t, g.N, rep.N)
	assert.Len(t, rep.Times, 3)
	assert.Len(t, rep.RoundTimes, rep.Rounds)
	assert.True(t, rep.Verified)
	assert.NoError(t, rep.VerifyErr)
	assert.Zero(t, rep.Conflicts)
	assert.Equal(t, rep.Result.Size, rep.Size)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "### Application: MIS\n")
	assert.Contains(t, out, "### Graph: grid_12x12\n")
	assert.Contains(t, out, "### Threads: 4\n")
	assert.Contains(t, out, "### n: 144\n")
	assert.Contains(t, out, "### Counter: funnel\n")
	assert.Contains(t, out, "### Verify: ok\n")

	// The lines the timing scripts parse.
	assert.Regexp(t, regexp.MustCompile(`(?m)^### Running Time: [0-9.]+$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^## Counter initialization time = [0-9.]+$`), out)
	rounds := regexp.MustCompile(`(?m)^## round = \d+ time = [0-9.]+$`).FindAllString(out, -1)
	assert.Len(t, rounds, rep.Rounds)
	assert.True(t, strings.HasPrefix(rounds[0], "## round = 1 "))
}

func TestRun_SameOrderEveryRepeat(t *testing.T) {
	g := grid(t)
	spec := bench.Spec{Counter: counter.KindAtomic, Workers: 2, Seed: 9, Repeats: 1}
	a, err := bench.Run(context.Background(), g, spec)
	require.NoError(t, err)
	b, err := bench.Run(context.Background(), g, spec)
	require.NoError(t, err)
	assert.Equal(t, a.Result.InSet, b.Result.InSet)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRun_BadSpec(t *testing.T) {
	g := grid(t)
	_, err := bench.Run(context.Background(), g, bench.Spec{Counter: counter.KindAtomic})
	assert.ErrorIs(t, err, bench.ErrBadSpec)

	_, err = bench.Run(context.Background(), g, bench.Spec{Counter: counter.KindAtomic, Repeats: 1, Workers: -1})
	assert.ErrorIs(t, err, bench.ErrBadSpec)

	_, err = bench.Run(context.Background(), g, bench.Spec{Counter: counter.Kind(99), Repeats: 1})
	assert.ErrorIs(t, err, counter.ErrUnknownKind)
}

func TestWriteText_NoVerify(t *testing.T) {
	rep := &bench.Report{Graph: "g", Counter: counter.KindApproximate, Recoveries: 2}
	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "### Params: -verify = 0\n")
	assert.Contains(t, out, "### Recoveries: 2\n")
	assert.NotContains(t, out, "### Verify:")
	assert.NotContains(t, out, "## round =")
}
