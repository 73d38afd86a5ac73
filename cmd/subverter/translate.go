package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newTranslateCmd(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "translate <file>...",
		Short: "Translate one or more .srt or .mkv files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, proc, err := setup(*configFlag)
			if err != nil {
				return err
			}
			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			failed := 0
			for _, path := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := proc.Process(ctx, path); err != nil {
					log.Error(ctx, "Failed to process %s: %v", path, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}
}
