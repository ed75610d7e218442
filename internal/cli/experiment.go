// SPDX-License-Identifier: MIT
// Package: peelmis/internal/cli
//
// experiment.go - `misbench experiment <file.hcl>`.

package cli

import (
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/peelmis/internal/experiment"
)

func newExperimentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "experiment <file.hcl>",
		Short: "Run every configuration of an HCL experiment file, one report each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			exp, err := experiment.Load(ctx, args[0])
			if err != nil {
				return err
			}
			g, err := loadGraph(ctx, exp.Graph, exp.Symmetrize)
			if err != nil {
				return err
			}

			log := ctxzap.Extract(ctx)
			for i, run := range exp.Runs {
				log.Info("experiment run", zap.Int("index", i), zap.String("label", run.Spec.Label))
				if err := runOne(ctx, cmd.OutOrStdout(), g, run.Spec, run.Export, run.ExportFormat); err != nil {
					return fmt.Errorf("run %q: %w", run.Spec.Label, err)
				}
			}
			return nil
		},
	}
}
