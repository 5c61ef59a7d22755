// Copyright 2024 The Solaris Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/solarisdb/lazyseq/golibs/cast"
	sctx "github.com/solarisdb/lazyseq/golibs/context"
	"github.com/solarisdb/lazyseq/golibs/logging"
	"github.com/solarisdb/lazyseq/pkg/app"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile  string
	logLevel string
}

func main() {
	ctx, cancel := sctx.NewSignalsContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "lazyseq",
		Short:         "Closures and lazy sequences demonstrations",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "configuration file (.yaml or .json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: error, warn, info, debug or trace")
	root.AddCommand(newRunCmd(opts), newListCmd(), newNextCmd(opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [pattern...]",
		Short: "Run the demos which names match the glob patterns (all by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.Demos = args
			}
			return app.Run(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.List(cmd.OutOrStdout())
		},
	}
}

func newNextCmd(opts *options) *cobra.Command {
	var (
		first, second string
		calls         int
	)
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Build a two-element sequence and print the results of consecutive Next() calls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.buildConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("first") {
				cfg.Producer.First = first
			}
			if cmd.Flags().Changed("second") {
				cfg.Producer.Second = second
			}
			if cmd.Flags().Changed("calls") {
				cfg.Producer.Calls = cast.Ptr(calls)
			}
			return app.Produce(cfg.Producer, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&first, "first", "", "the first value of the sequence")
	cmd.Flags().StringVar(&second, "second", "", "the second value of the sequence")
	cmd.Flags().IntVarP(&calls, "calls", "n", 0, "the number of Next() calls")
	return cmd
}

func (o *options) buildConfig() (*app.Config, error) {
	cfg, err := app.BuildConfig(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		if _, err := logging.ParseLevel(o.logLevel); err != nil {
			return nil, fmt.Errorf("bad --log-level: %w", err)
		}
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}
