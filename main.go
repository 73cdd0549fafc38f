// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"

	"github.com/bep/repochecker/internal/lib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		cfg         lib.Config
		all, invert bool
	)

	cmd := &cobra.Command{
		Use:   "repochecker <directory>",
		Short: "Check git repository information and get a summary",
		Long: `repochecker checks every immediate subdirectory of <directory> for
uncommitted changes, unpushed commits and stashed changes.

By default only repositories without issues are listed. Use --invert to list
the repositories that need attention, or --all to list every directory.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := lib.ModeFromFlags(all, invert)
			if err != nil {
				return err
			}
			cfg.Mode = mode
			cfg.Root = args[0]

			if _, err := exec.LookPath("git"); err != nil {
				return fmt.Errorf("git is required: %w", err)
			}

			return lib.Check(cmd.Context(), cfg, cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg))
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&invert, "invert", "i", false, "show only directories with issues")
	flags.BoolVarP(&all, "all", "a", false, "show every directory")
	flags.StringVar(&cfg.Format, "format", lib.FormatText, "output format: text or yaml")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", 1, "number of directories to check in parallel")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "suppress warnings")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log every git command")
	cmd.MarkFlagsMutuallyExclusive("invert", "all")
	cmd.MarkFlagsMutuallyExclusive("quiet", "verbose")

	return cmd
}

func newLogger(w io.Writer, cfg lib.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case cfg.Quiet:
		logger.SetLevel(logrus.ErrorLevel)
	case cfg.Verbose:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}
