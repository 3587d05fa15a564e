package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/strengthmap/internal/config"
	"github.com/abhisek/strengthmap/internal/logging"
	"github.com/abhisek/strengthmap/internal/store"
)

var (
	cfg    = config.DefaultConfig()
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "strengthmap",
	Short: "Discover your strengths with a 15-question self-assessment",
	Long: "strengthmap asks 15 questions on a 5-point scale, turns the answers into\n" +
		"ranked strengths and personal values, and keeps every result so you can\n" +
		"compare how you change over time.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTake(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STRENGTHMAP_DB env var)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads .env and the environment into cfg and builds logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	c, err := config.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	l, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	slog.SetDefault(l)
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STRENGTHMAP_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
