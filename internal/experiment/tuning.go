// SPDX-License-Identifier: MIT
// Package: peelmis/internal/experiment
//
// tuning.go - validated counter knobs shared by experiment files and CLI flags.

package experiment

import (
	"fmt"

	"github.com/katalvlaran/peelmis/counter"
)

const maxSkipBits = 16

// Tuning holds optional counter knobs; nil fields keep the counter defaults.
type Tuning struct {
	ApproxThreshold  *int64
	ApproxSkipBits   *int
	ShardThreshold   *int64
	FunnelBatch      *int64
	DynamicInner     *string
	DynamicHubDegree *int64
}

// Options validates every set knob and converts it to a counter option.
// Values are checked here because the counter option constructors panic
// on out-of-range input.
//
// Errors: ErrInvalid for out-of-range values, counter.ErrUnknownKind for an
// unknown dynamic_inner.
func (t Tuning) Options() ([]counter.Option, error) {
	var opts []counter.Option
	nonNegative := func(name string, v *int64, mk func(int64) counter.Option) error {
		if v == nil {
			return nil
		}
		if *v < 0 {
			return fmt.Errorf("%s=%d: %w", name, *v, ErrInvalid)
		}
		opts = append(opts, mk(*v))
		return nil
	}
	if err := nonNegative("approx_threshold", t.ApproxThreshold, counter.WithApproxThreshold); err != nil {
		return nil, err
	}
	if err := nonNegative("shard_threshold", t.ShardThreshold, counter.WithShardThreshold); err != nil {
		return nil, err
	}
	if err := nonNegative("dynamic_hub_degree", t.DynamicHubDegree, counter.WithDynamicHubDegree); err != nil {
		return nil, err
	}
	if b := t.ApproxSkipBits; b != nil {
		if *b < 0 || *b > maxSkipBits {
			return nil, fmt.Errorf("approx_skip_bits=%d: %w", *b, ErrInvalid)
		}
		opts = append(opts, counter.WithApproxSkipBits(uint(*b)))
	}
	if b := t.FunnelBatch; b != nil {
		if *b < 1 {
			return nil, fmt.Errorf("funnel_batch=%d: %w", *b, ErrInvalid)
		}
		opts = append(opts, counter.WithFunnelBatch(*b))
	}
	if t.DynamicInner != nil {
		inner, err := counter.ParseKind(*t.DynamicInner)
		if err != nil {
			return nil, err
		}
		if inner == counter.KindDynamic {
			return nil, fmt.Errorf("dynamic_inner=%s: %w", inner, ErrInvalid)
		}
		opts = append(opts, counter.WithDynamicInner(inner))
	}
	return opts, nil
}
