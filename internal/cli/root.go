// SPDX-License-Identifier: MIT
// Package: peelmis/internal/cli
//
// Package cli assembles the misbench command tree. Flags can also be set
// through MISBENCH_<FLAG> environment variables, dashes becoming underscores.

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/peelmis/logging"
)

const envPrefix = "misbench"

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// NewRootCommand returns the misbench root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "misbench",
		Short:         "Benchmark parallel maximal independent set with concurrent counters",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctx, err := logging.Init(cmd.Context(),
				logging.WithLogLevel(v.GetString(flagLogLevel)),
				logging.WithLogFormat(v.GetString(flagLogFormat)),
			)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagLogLevel, "info", "Log level: debug, info, warn, error ($MISBENCH_LOG_LEVEL)")
	pf.String(flagLogFormat, logging.LogFormatConsole, "Log format: json or console ($MISBENCH_LOG_FORMAT)")

	root.AddCommand(newRunCommand(), newExperimentCommand(), newGenCommand())
	return root
}

// loadConfig binds the command's flags and the MISBENCH_ environment to a
// fresh viper instance.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, fs := range []*pflag.FlagSet{cmd.InheritedFlags(), cmd.Flags()} {
		if err := v.BindPFlags(fs); err != nil {
			return nil, err
		}
	}
	return v, nil
}
