package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/subverter/subverter/internal/config"
	"github.com/subverter/subverter/internal/generate"
	"github.com/subverter/subverter/internal/logger"
	"github.com/subverter/subverter/internal/processor"
	"github.com/subverter/subverter/pkg/executor"
)

func newRootCmd() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:          "subverter",
		Short:        "Subtitle translation pipeline",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.yaml", "Configuration file path")

	rootCmd.AddCommand(newTranslateCmd(&configFlag))
	rootCmd.AddCommand(newWatchCmd(&configFlag))

	return rootCmd
}

// setup loads configuration and builds the shared processing stack.
func setup(configPath string) (*config.Config, logger.Logger, processor.Processor, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	exec := executor.New()
	gen, err := generate.New(cfg, exec, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create generator: %w", err)
	}

	return cfg, log, processor.New(cfg, gen, exec, log), nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
		cfg.Paths.Diagnostics,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
