// SPDX-License-Identifier: MIT
// Package: peelmis/internal/cli
//
// run.go - `misbench run <graph>`.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/csr"
	"github.com/katalvlaran/peelmis/graphio"
	"github.com/katalvlaran/peelmis/internal/bench"
	"github.com/katalvlaran/peelmis/internal/experiment"
)

// ErrVerifyFailed is returned when an exact counter produced an invalid set.
var ErrVerifyFailed = errors.New("cli: verification failed")

const (
	flagCounter      = "counter"
	flagWorkers      = "workers"
	flagSeed         = "seed"
	flagRepeats      = "repeats"
	flagWarmup       = "warmup"
	flagVerify       = "verify"
	flagExport       = "export"
	flagExportFormat = "export-format"
	flagSymmetrize   = "symmetrize"

	flagApproxThreshold  = "approx-threshold"
	flagApproxSkipBits   = "approx-skip-bits"
	flagShardThreshold   = "shard-threshold"
	flagFunnelBatch      = "funnel-batch"
	flagDynamicInner     = "dynamic-inner"
	flagDynamicHubDegree = "dynamic-hub-degree"
)

func addRunFlags(fs *pflag.FlagSet) {
	fs.String(flagCounter, counter.KindAtomic.String(),
		"Counter strategy: "+strings.Join(kindNames(), ", "))
	fs.Int(flagWorkers, 0, "Worker count (0 = GOMAXPROCS)")
	fs.Int64(flagSeed, 1, "Seed for the vertex ranks and worker generators")
	fs.Int(flagRepeats, 3, "Timed repeats")
	fs.Bool(flagWarmup, true, "Run once untimed before the timed repeats")
	fs.Bool(flagVerify, false, "Check independence and maximality of the last result")
	fs.String(flagExport, "", "Write the last result's members to this path")
	fs.String(flagExportFormat, string(graphio.ExportCSV), "Export format: csv or list")
	fs.Bool(flagSymmetrize, false, "Symmetrize the input even if it already is")

	// Counter knobs; unset flags keep the counter package defaults.
	fs.Int64(flagApproxThreshold, counter.DefaultApproxThreshold, "Value at or below which the approximate counter is exact")
	fs.Int(flagApproxSkipBits, int(counter.DefaultApproxSkipBits), "Approximate counter skip exponent: decrements land with p=2^-bits (0-16)")
	fs.Int64(flagShardThreshold, counter.DefaultShardThreshold, "Largest initial value the sharded counter keeps in one shard")
	fs.Int64(flagFunnelBatch, counter.DefaultFunnelBatch, "Funnel counter per-worker batch size")
	fs.String(flagDynamicInner, counter.KindAtomic.String(), "Strategy wrapped by the dynamic counter")
	fs.Int64(flagDynamicHubDegree, 0, "Dynamic counters above this initial value use the funnel (0 = off)")
}

// tuningFromConfig collects the counter knobs set by flag or environment.
func tuningFromConfig(v *viper.Viper) experiment.Tuning {
	return experiment.Tuning{
		ApproxThreshold:  setOnly(v, flagApproxThreshold, v.GetInt64),
		ApproxSkipBits:   setOnly(v, flagApproxSkipBits, v.GetInt),
		ShardThreshold:   setOnly(v, flagShardThreshold, v.GetInt64),
		FunnelBatch:      setOnly(v, flagFunnelBatch, v.GetInt64),
		DynamicInner:     setOnly(v, flagDynamicInner, v.GetString),
		DynamicHubDegree: setOnly(v, flagDynamicHubDegree, v.GetInt64),
	}
}

// setOnly returns a pointer to key's value, or nil when neither a flag nor
// the environment set it.
func setOnly[T any](v *viper.Viper, key string, get func(string) T) *T {
	if !v.IsSet(key) {
		return nil
	}
	x := get(key)
	return &x
}

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <graph>",
		Short: "Time one counter strategy on a graph file (.adj, .bin, optionally .zst/.gz)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			kind, err := counter.ParseKind(v.GetString(flagCounter))
			if err != nil {
				return err
			}
			tuning, err := tuningFromConfig(v).Options()
			if err != nil {
				return err
			}
			format := graphio.ExportFormat(v.GetString(flagExportFormat))
			if format != graphio.ExportCSV && format != graphio.ExportList {
				return fmt.Errorf("--%s=%q: %w", flagExportFormat, format, graphio.ErrUnknownFormat)
			}

			ctx := cmd.Context()
			g, err := loadGraph(ctx, args[0], v.GetBool(flagSymmetrize))
			if err != nil {
				return err
			}
			spec := bench.Spec{
				Graph:   graphName(args[0]),
				Counter: kind,
				Workers: v.GetInt(flagWorkers),
				Seed:    v.GetInt64(flagSeed),
				Repeats: v.GetInt(flagRepeats),
				Warmup:  v.GetBool(flagWarmup),
				Verify:  v.GetBool(flagVerify),

				CounterOptions: tuning,
			}
			return runOne(ctx, cmd.OutOrStdout(), g, spec, v.GetString(flagExport), format)
		},
	}
	addRunFlags(cmd.Flags())
	return cmd
}

// runOne benchmarks spec, prints the report and exports the last result.
func runOne(ctx context.Context, out io.Writer, g *csr.Graph, spec bench.Spec, export string, format graphio.ExportFormat) error {
	rep, err := bench.Run(ctx, g, spec)
	if err != nil {
		return err
	}
	if err := rep.WriteText(out); err != nil {
		return err
	}
	if export != "" {
		if err := exportTo(export, format, rep.Result.InSet); err != nil {
			return err
		}
		ctxzap.Extract(ctx).Info("exported result", zap.String("path", export), zap.Int("size", rep.Size))
	}
	if rep.VerifyErr != nil && counter.NewEnv(rep.Workers, spec.CounterOptions...).Exact(spec.Counter) {
		return fmt.Errorf("%s: %w: %w", spec.Counter, ErrVerifyFailed, rep.VerifyErr)
	}
	return nil
}

// loadGraph reads path and symmetrizes it when forced or when the input
// lacks reverse edges.
func loadGraph(ctx context.Context, path string, force bool) (*csr.Graph, error) {
	log := ctxzap.Extract(ctx)
	g, err := graphio.Load(path)
	if err != nil {
		return nil, err
	}
	if force {
		g = csr.Symmetrize(g)
	} else if err := csr.CheckSymmetric(g); err != nil {
		log.Warn("input is not symmetric, symmetrizing", zap.String("path", path), zap.Error(err))
		g = csr.Symmetrize(g)
	}
	st := g.Stats()
	log.Info("graph loaded",
		zap.String("path", path),
		zap.Int("n", st.N),
		zap.Int("m", st.M),
		zap.Int("max_degree", st.MaxDegree),
		zap.Float64("avg_degree", st.AvgDegree),
	)
	return g, nil
}

func exportTo(path string, format graphio.ExportFormat, inSet []bool) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return graphio.Export(f, format, inSet)
}

// graphName strips directories and every extension: "d/web.bin.zst" → "web".
func graphName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i > 0 {
		name = name[:i]
	}
	return name
}

func kindNames() []string {
	kinds := counter.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
