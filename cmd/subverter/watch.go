package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/subverter/subverter/internal/watcher"
)

func newWatchCmd(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and translate new files as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, proc, err := setup(*configFlag)
			if err != nil {
				return err
			}
			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Info(ctx, "Watching %s for new subtitle sources", cfg.Paths.Input)
			log.Info(ctx, "Output directory: %s", cfg.Paths.Output)
			log.Info(ctx, "Max concurrent jobs: %d", cfg.Performance.MaxConcurrent)

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			log.Info(context.Background(), "Shutting down")
			return nil
		},
	}
}
