// SPDX-License-Identifier: MIT
// Package: peelmis/internal/experiment
//
// schema.go - gohcl decoding targets.

package experiment

import "github.com/hashicorp/hcl/v2"

// fileRoot mirrors the top level of an experiment file.
type fileRoot struct {
	Graph      string      `hcl:"graph"`
	Workers    *int        `hcl:"workers,optional"`
	Seed       *int64      `hcl:"seed,optional"`
	Repeats    *int        `hcl:"repeats,optional"`
	Warmup     *bool       `hcl:"warmup,optional"`
	Verify     *bool       `hcl:"verify,optional"`
	Symmetrize *bool       `hcl:"symmetrize,optional"`
	Runs       []*runBlock `hcl:"run,block"`
	Remain     hcl.Body    `hcl:",remain"`
}

// runBlock is one `run "<label>" { ... }` block. Unset attributes inherit
// the counter package defaults.
type runBlock struct {
	Label            string  `hcl:"label,label"`
	Counter          string  `hcl:"counter"`
	Workers          *int    `hcl:"workers,optional"`
	ApproxThreshold  *int64  `hcl:"approx_threshold,optional"`
	ApproxSkipBits   *int    `hcl:"approx_skip_bits,optional"`
	ShardThreshold   *int64  `hcl:"shard_threshold,optional"`
	FunnelBatch      *int64  `hcl:"funnel_batch,optional"`
	DynamicInner     *string `hcl:"dynamic_inner,optional"`
	DynamicHubDegree *int64  `hcl:"dynamic_hub_degree,optional"`
	Export           *string `hcl:"export,optional"`
	ExportFormat     *string `hcl:"export_format,optional"`
}
