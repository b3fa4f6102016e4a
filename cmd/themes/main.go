package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"book_themes/internal/config"
	"book_themes/internal/logging"
	"book_themes/internal/report"
	"book_themes/internal/workspace"
)

var (
	// Global flags
	configPath string
	verbose    bool
	workers    int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "themes",
	Short: "Classify book chapters as war-related or peace-related",
	Long: `themes splits a book into chapters and scores every chapter against a
war vocabulary and a peace vocabulary. A chapter is war-related when its
war density is strictly greater than its peace density.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = defaultConfigPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = workers
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		logger, err = logging.New(cfg.Log.Level, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default: workspace configs/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "parallel chapter workers (0 = one per CPU)")

	rootCmd.AddCommand(classifyCmd, initCmd, showCmd)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return workspace.SettingsPath(filepath.Join(home, workspace.BaseDirName))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		report.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func mustLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}
