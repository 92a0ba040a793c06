package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/subwatch/subwatch/internal/config"
	"github.com/subwatch/subwatch/internal/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <path>",
	Short: "Copy a file or directory tree to the rclone remote",
	Long: `Copies the given file or directory tree to the configured rclone
remote. Sync-client placeholder files are materialized first and
unsynced again afterwards.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, path string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, logCloser, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logCloser.Close()

	m := migrate.New(migrate.Config{
		SyncBin:     cfg.Migrate.SyncBin,
		RcloneBin:   cfg.Migrate.RcloneBin,
		CloudPrefix: cfg.Migrate.CloudPrefix,
		Remote:      cfg.Migrate.Remote,
		Workers:     cfg.Migrate.Workers,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := m.Run(ctx, path); err != nil {
		if errors.Is(err, migrate.ErrInvalidPath) {
			return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
		}
		return err
	}
	return nil
}
