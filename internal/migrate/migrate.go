// Package migrate moves files from a sync-backed cloud drive to an rclone remote.
package migrate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// placeholderSuffix marks files the sync client has not materialized locally.
const placeholderSuffix = ".cloud"

// ErrInvalidPath indicates the input path is neither a file nor a directory.
var ErrInvalidPath = errors.New("input path is neither a file nor a directory")

// Runner executes an external command. Tests substitute a recorder.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Config for the migrator.
type Config struct {
	SyncBin     string // sync client binary, empty disables placeholder syncing
	RcloneBin   string
	CloudPrefix string // local prefix stripped to form the remote path
	Remote      string // rclone remote name, e.g. "gdrive"
	Workers     int    // concurrent file migrations for directory trees
}

// Migrator copies a file or directory tree to the rclone remote, syncing
// placeholder files first and unsyncing them afterwards to save local storage.
type Migrator struct {
	cfg    Config
	runner Runner
	log    *slog.Logger
}

// New creates a migrator using os/exec for external commands.
func New(cfg Config, log *slog.Logger) *Migrator {
	return NewWithRunner(cfg, execRunner{}, log)
}

// NewWithRunner creates a migrator with a custom command runner.
func NewWithRunner(cfg Config, runner Runner, log *slog.Logger) *Migrator {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Migrator{
		cfg:    cfg,
		runner: runner,
		log:    log.With("component", "migrate"),
	}
}

// Run migrates the given path. Files are handled directly, directories are
// walked recursively. Returns ErrInvalidPath for anything else so the CLI can
// print usage and do nothing.
func (m *Migrator) Run(ctx context.Context, inputPath string) error {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPath, inputPath)
	}
	if info.IsDir() {
		return m.handleDir(ctx, abs)
	}
	if info.Mode().IsRegular() {
		return m.HandleFile(ctx, abs)
	}
	return fmt.Errorf("%w: %s", ErrInvalidPath, inputPath)
}

// HandleFile migrates a single file. Placeholder files are synced first and
// unsynced afterwards.
func (m *Migrator) HandleFile(ctx context.Context, path string) error {
	m.log.Info("handling file", "path", path)

	synced := false
	if strings.HasSuffix(path, placeholderSuffix) && m.cfg.SyncBin != "" {
		m.log.Debug("syncing file", "path", path)
		if err := m.runner.Run(ctx, m.cfg.SyncBin, "sync", path); err != nil {
			return fmt.Errorf("sync %s: %w", path, err)
		}
		path = strings.TrimSuffix(path, placeholderSuffix)
		synced = true
	}

	m.log.Debug("copying file", "path", path)
	remotePath, err := m.remotePath(path)
	if err != nil {
		return err
	}
	if err := m.runner.Run(ctx, m.cfg.RcloneBin, "copyto", path, remotePath); err != nil {
		return fmt.Errorf("copy %s: %w", path, err)
	}

	// Don't forget to unsync to save storage.
	if synced {
		m.log.Debug("unsyncing file", "path", path)
		if err := m.runner.Run(ctx, m.cfg.SyncBin, "unsync", path); err != nil {
			return fmt.Errorf("unsync %s: %w", path, err)
		}
	}
	return nil
}

// handleDir migrates every file under root with bounded concurrency.
func (m *Migrator) handleDir(ctx context.Context, root string) error {
	m.log.Info("handling dir", "path", root)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.cfg.Workers)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		g.Go(func() error {
			return m.HandleFile(ctx, path)
		})
		return nil
	})
	if err != nil {
		_ = g.Wait()
		return fmt.Errorf("walk %s: %w", root, err)
	}
	return g.Wait()
}

// remotePath maps a local path to its rclone target, stripping the configured
// cloud prefix.
func (m *Migrator) remotePath(path string) (string, error) {
	rel := path
	if m.cfg.CloudPrefix != "" {
		var ok bool
		rel, ok = strings.CutPrefix(path, m.cfg.CloudPrefix)
		if !ok {
			return "", fmt.Errorf("path %s is not under cloud prefix %s", path, m.cfg.CloudPrefix)
		}
	}
	rel = strings.TrimPrefix(rel, "/")
	return m.cfg.Remote + ":" + rel, nil
}
