package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/subwatch/subwatch/internal/acquire"
	"github.com/subwatch/subwatch/internal/cache"
	"github.com/subwatch/subwatch/internal/config"
	"github.com/subwatch/subwatch/internal/library"
	"github.com/subwatch/subwatch/internal/monitor"
	"github.com/subwatch/subwatch/internal/provider"
	"github.com/subwatch/subwatch/internal/subtitles"
	"github.com/subwatch/subwatch/internal/uploader"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scan the names log and download missing subtitles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMonitor()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runMonitor() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: configPath, Errors: errs}
	}

	log, logCloser, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logCloser.Close()

	languages := make([]subtitles.Language, 0, len(cfg.Subtitles.Languages))
	for _, code := range cfg.Subtitles.Languages {
		lang, err := subtitles.FromCode(code)
		if err != nil {
			return err
		}
		languages = append(languages, lang)
	}

	shows := library.NewShowNamer(cfg.Library.ShowAliases)
	recon := library.NewReconstructor(library.Config{
		Root:         cfg.Library.Root,
		MovieSubtree: cfg.Library.MovieSubtree,
		TVSubtree:    cfg.Library.TVSubtree,
	}, shows)
	gaps := subtitles.NewDetector(languages, log)

	searcher := provider.NewHTTPSearcher(
		cfg.Provider.URL,
		cfg.Provider.APIKey,
		time.Duration(cfg.Provider.TimeoutSeconds)*time.Second,
		log,
	)

	var uploads uploader.Uploader
	if cfg.Upload.Remote != "" {
		uploads = uploader.NewRcloneUploader(cfg.Upload.RcloneBin, cfg.Upload.Remote, log)
	}

	var searches *cache.Store
	if cfg.Cache.Path != "" {
		ttl := time.Duration(cfg.Cache.TTLDays) * 24 * time.Hour
		searches, err = cache.Open(cfg.Cache.Path, ttl, log)
		if err != nil {
			if errors.Is(err, cache.ErrLocked) {
				return fmt.Errorf("another run is in progress: %w", err)
			}
			return err
		}
		defer searches.Close()
		if _, err := searches.Prune(); err != nil {
			log.Warn("cache prune failed", "error", err)
		}
	}

	// Provider restrictions are keyed by the normalized language code, so
	// ".he" style config keys line up with the languages above.
	providers := make(map[string][]string, len(cfg.Subtitles.Providers))
	for code, names := range cfg.Subtitles.Providers {
		lang, err := subtitles.FromCode(code)
		if err != nil {
			return err
		}
		providers[lang.Code] = names
	}

	acq := acquire.New(searcher, uploads, searches, acquire.Config{
		ScratchDir: cfg.Monitor.ScratchDir,
		Providers:  providers,
	}, log)

	m := monitor.New(recon, gaps, acq, monitor.Config{
		NamesLog:     cfg.Monitor.NamesLog,
		ResultsLimit: cfg.Monitor.ResultsLimit,
		LibraryRoot:  cfg.Library.Root,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("subtitles monitor started")
	summary, err := m.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Println(renderSummary(summary))
	return nil
}
