// Package monitor runs the subtitle gap detection and acquisition loop over
// the historical names log.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/subwatch/subwatch/internal/acquire"
	"github.com/subwatch/subwatch/internal/library"
	"github.com/subwatch/subwatch/internal/subtitles"
)

// Config for the monitor.
type Config struct {
	NamesLog     string
	ResultsLimit int // 0 means no limit
	LibraryRoot  string
}

// Monitor walks the most recent names log entries, reconstructs where each
// file lives in the library, and fills missing subtitle languages.
type Monitor struct {
	recon *library.Reconstructor
	gaps  *subtitles.Detector
	acq   *acquire.Acquirer
	cfg   Config
	log   *slog.Logger
}

// New creates a monitor.
func New(recon *library.Reconstructor, gaps *subtitles.Detector, acq *acquire.Acquirer, cfg Config, log *slog.Logger) *Monitor {
	if log == nil {
		log = slog.Default()
	}
	return &Monitor{
		recon: recon,
		gaps:  gaps,
		acq:   acq,
		cfg:   cfg,
		log:   log.With("component", "monitor"),
	}
}

// Run processes the window of most recent log entries sequentially and
// returns the per-language acquisition counts. Startup verification failures
// (missing names log or library root) and unexpected errors abort the run
// with no summary; every per-entry and per-language failure is absorbed.
func (m *Monitor) Run(ctx context.Context) ([]LangCount, error) {
	if _, err := os.Stat(m.cfg.NamesLog); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrLogNotFound, m.cfg.NamesLog)
	}
	if info, err := os.Stat(m.cfg.LibraryRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, m.cfg.LibraryRoot)
	}

	entries, err := ReadWindow(m.cfg.NamesLog, m.cfg.ResultsLimit)
	if err != nil {
		return nil, err
	}
	m.log.Info("searching subtitles for the newest videos", "entries", len(entries))

	tally := NewTally()
	for _, originalPath := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := m.processEntry(ctx, originalPath, tally); err != nil {
			m.log.Error("unexpected error, stopping", "entry", originalPath, "error", err)
			return nil, err
		}
	}

	summary := tally.Summary()
	m.log.Info("all done", "results", summaryString(summary))
	return summary, nil
}

// processEntry handles one log entry. Anticipated per-entry conditions are
// logged and absorbed; only unexpected errors are returned.
func (m *Monitor) processEntry(ctx context.Context, originalPath string, tally *Tally) error {
	videoPath, err := m.recon.Reconstruct(originalPath)
	if err != nil {
		if errors.Is(err, library.ErrNoTitle) {
			m.log.Warn("skipping entry, no usable title", "entry", originalPath)
			return nil
		}
		return err
	}

	if _, err := os.Stat(videoPath); err != nil {
		m.log.Info("couldn't find video", "path", videoPath)
		return nil
	}

	m.log.Info("checking subtitles", "path", videoPath)
	for _, lang := range m.gaps.FindGaps(videoPath) {
		outcome, err := m.acq.Acquire(ctx, originalPath, videoPath, lang)
		if err != nil {
			return err
		}
		if outcome.Kind == acquire.OutcomeSaved {
			tally.Record(lang.Name())
		}
	}
	return nil
}

func summaryString(summary []LangCount) string {
	s := ""
	for i, lc := range summary {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s - %d", lc.Language, lc.Count)
	}
	return s
}
