// SPDX-License-Identifier: MIT
// Package: peelmis/internal/experiment
//
// Package experiment loads HCL experiment files: one graph, shared run
// settings and a list of labelled counter configurations.
//
//	graph      = "graphs/web.bin.zst"
//	workers    = gomaxprocs
//	repeats    = 3
//	warmup     = true
//
//	run "funnel-hub" {
//	  counter      = "funnel"
//	  funnel_batch = 32
//	}
//
// The evaluation context exposes num_cpu and gomaxprocs, plus the min and
// max functions.

package experiment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"go.uber.org/zap"

	"github.com/katalvlaran/peelmis/counter"
	"github.com/katalvlaran/peelmis/graphio"
	"github.com/katalvlaran/peelmis/internal/bench"
)

// ErrInvalid reports an experiment file that parses but cannot be run.
var ErrInvalid = errors.New("experiment: invalid experiment")

const defaultRepeats = 1

// Experiment is a decoded, validated experiment file.
type Experiment struct {
	// Graph is the input path, resolved against the file's directory.
	Graph      string
	Symmetrize bool
	Runs       []Run
}

// Run is one labelled configuration.
type Run struct {
	Spec         bench.Spec
	Export       string
	ExportFormat graphio.ExportFormat
}

// EvalContext returns the variables and functions visible to expressions.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"num_cpu":    cty.NumberIntVal(int64(runtime.NumCPU())),
			"gomaxprocs": cty.NumberIntVal(int64(runtime.GOMAXPROCS(0))),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

// Load reads and decodes the experiment file at path. Relative graph and
// export paths are resolved against the file's directory.
func Load(ctx context.Context, path string) (*Experiment, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	exp, err := Parse(ctx, src, path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	exp.Graph = resolve(dir, exp.Graph)
	for i := range exp.Runs {
		exp.Runs[i].Export = resolve(dir, exp.Runs[i].Export)
	}
	return exp, nil
}

// Parse decodes src; filename is used in diagnostics only.
func Parse(ctx context.Context, src []byte, filename string) (*Experiment, error) {
	log := ctxzap.Extract(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, EvalContext(), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if attrs, _ := root.Remain.JustAttributes(); len(attrs) > 0 {
		for name := range attrs {
			log.Warn("ignoring unknown attribute", zap.String("file", filename), zap.String("name", name))
		}
	}

	exp, err := translate(&root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debug("experiment loaded", zap.String("file", filename), zap.Int("runs", len(exp.Runs)))
	return exp, nil
}

func translate(root *fileRoot) (*Experiment, error) {
	if root.Graph == "" {
		return nil, fmt.Errorf("graph is empty: %w", ErrInvalid)
	}
	if len(root.Runs) == 0 {
		return nil, fmt.Errorf("no run blocks: %w", ErrInvalid)
	}

	base := bench.Spec{
		Graph:   filepath.Base(root.Graph),
		Repeats: defaultRepeats,
		Warmup:  deref(root.Warmup, false),
		Verify:  deref(root.Verify, false),
		Seed:    deref(root.Seed, 1),
		Workers: deref(root.Workers, 0),
	}
	if root.Repeats != nil {
		base.Repeats = *root.Repeats
	}
	if base.Repeats < 1 {
		return nil, fmt.Errorf("repeats=%d: %w", base.Repeats, ErrInvalid)
	}
	if base.Workers < 0 {
		return nil, fmt.Errorf("workers=%d: %w", base.Workers, ErrInvalid)
	}

	exp := &Experiment{Graph: root.Graph, Symmetrize: deref(root.Symmetrize, false)}
	seen := make(map[string]struct{}, len(root.Runs))
	for _, rb := range root.Runs {
		if _, dup := seen[rb.Label]; dup {
			return nil, fmt.Errorf("run %q declared twice: %w", rb.Label, ErrInvalid)
		}
		seen[rb.Label] = struct{}{}

		run, err := translateRun(base, rb)
		if err != nil {
			return nil, fmt.Errorf("run %q: %w", rb.Label, err)
		}
		exp.Runs = append(exp.Runs, run)
	}
	return exp, nil
}

// translateRun merges a run block over the file-level settings.
func translateRun(base bench.Spec, rb *runBlock) (Run, error) {
	spec := base
	spec.Label = rb.Label

	kind, err := counter.ParseKind(rb.Counter)
	if err != nil {
		return Run{}, err
	}
	spec.Counter = kind

	if rb.Workers != nil {
		if *rb.Workers < 0 {
			return Run{}, fmt.Errorf("workers=%d: %w", *rb.Workers, ErrInvalid)
		}
		spec.Workers = *rb.Workers
	}

	opts, err := Tuning{
		ApproxThreshold:  rb.ApproxThreshold,
		ApproxSkipBits:   rb.ApproxSkipBits,
		ShardThreshold:   rb.ShardThreshold,
		FunnelBatch:      rb.FunnelBatch,
		DynamicInner:     rb.DynamicInner,
		DynamicHubDegree: rb.DynamicHubDegree,
	}.Options()
	if err != nil {
		return Run{}, err
	}
	spec.CounterOptions = opts

	run := Run{Spec: spec, Export: deref(rb.Export, ""), ExportFormat: graphio.ExportCSV}
	if rb.ExportFormat != nil {
		switch f := graphio.ExportFormat(*rb.ExportFormat); f {
		case graphio.ExportCSV, graphio.ExportList:
			run.ExportFormat = f
		default:
			return Run{}, fmt.Errorf("export_format=%q: %w", f, ErrInvalid)
		}
	}
	return run, nil
}

func deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// resolve anchors a relative path at dir; empty paths stay empty.
func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
