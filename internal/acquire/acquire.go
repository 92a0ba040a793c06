// Package acquire drives a single subtitle acquisition: provider search,
// save to scratch, and hand-off to the upload collaborator.
package acquire

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/subwatch/subwatch/internal/cache"
	"github.com/subwatch/subwatch/internal/provider"
	"github.com/subwatch/subwatch/internal/subtitles"
	"github.com/subwatch/subwatch/internal/uploader"
	"github.com/subwatch/subwatch/pkg/guess"
)

// OutcomeKind tags the result of one acquisition attempt.
type OutcomeKind int

const (
	// OutcomeSaved means a subtitle was found and written to scratch.
	// Upload failures do not change this: acquisition and upload are
	// independent concerns.
	OutcomeSaved OutcomeKind = iota
	// OutcomeNoMatch means no provider had a subtitle. Expected, not an error.
	OutcomeNoMatch
	// OutcomeEmptyContent means a provider returned a placeholder match
	// without a payload. Skipped and not counted.
	OutcomeEmptyContent
	// OutcomeNotVideo means the provider rejected the item as not a video.
	OutcomeNotVideo
	// OutcomeSaveFailed means writing the subtitle to scratch failed.
	OutcomeSaveFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSaved:
		return "saved"
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeEmptyContent:
		return "empty-content"
	case OutcomeNotVideo:
		return "not-video"
	case OutcomeSaveFailed:
		return "save-failed"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of one acquisition attempt.
type Outcome struct {
	Kind      OutcomeKind
	SavedPath string // set when Kind == OutcomeSaved
	Provider  string // provider that served the match, when any
}

// Config for the acquirer.
type Config struct {
	ScratchDir string
	// Providers restricts which providers are queried per language code.
	// A missing key means all providers.
	Providers map[string][]string
}

// Acquirer finds and saves one subtitle per call.
type Acquirer struct {
	searcher   provider.Searcher
	uploads    uploader.Uploader
	searches   *cache.Store // nil disables caching
	scratchDir string
	providers  map[string][]string
	log        *slog.Logger
}

// New creates an acquirer. uploads and searches may be nil to disable the
// upload hand-off and the search cache respectively.
func New(searcher provider.Searcher, uploads uploader.Uploader, searches *cache.Store, cfg Config, log *slog.Logger) *Acquirer {
	if log == nil {
		log = slog.Default()
	}
	return &Acquirer{
		searcher:   searcher,
		uploads:    uploads,
		searches:   searches,
		scratchDir: cfg.ScratchDir,
		providers:  cfg.Providers,
		log:        log.With("component", "acquire"),
	}
}

// Acquire searches for a subtitle in lang for the video at videoPath,
// saves any returned content to scratch, and hands it to the uploader.
// Only unexpected failures are returned as an error; every anticipated
// condition is expressed in the Outcome so one item never aborts a run.
func (a *Acquirer) Acquire(ctx context.Context, originalPath, videoPath string, lang subtitles.Language) (Outcome, error) {
	base := videoBase(videoPath)
	a.log.Info("searching subtitles", "language", lang.Name(), "video", originalPath)

	// A fresh negative cache entry means this exact search came up empty
	// recently; don't ask the providers again.
	if a.searches != nil {
		if found, ok, err := a.searches.Seen(base, lang.Code); err != nil {
			a.log.Warn("cache lookup failed", "error", err)
		} else if ok && !found {
			a.log.Debug("skipping search, cached miss", "video", base, "language", lang.Code)
			return Outcome{Kind: OutcomeNoMatch}, nil
		}
	}

	result, err := a.searcher.Search(ctx, provider.Request{
		Video: provider.Video{
			OriginalName: originalPath,
			Name:         videoPath,
			Descriptor:   guess.Parse(originalPath),
		},
		Language:  lang,
		Providers: a.providers[lang.Code],
	})
	switch {
	case errors.Is(err, provider.ErrNoResults):
		a.log.Info("no subtitles were found, moving on", "video", originalPath, "language", lang.Code)
		a.recordSearch(base, lang.Code, false)
		return Outcome{Kind: OutcomeNoMatch}, nil
	case errors.Is(err, provider.ErrNotVideo):
		a.log.Info("not a video file, moving on", "video", originalPath)
		return Outcome{Kind: OutcomeNotVideo}, nil
	case err != nil:
		return Outcome{}, err
	}

	// Guard against providers returning placeholder matches.
	if len(result.Content) == 0 {
		a.log.Debug("skipping subtitle, no content", "provider", result.Provider, "video", originalPath)
		return Outcome{Kind: OutcomeEmptyContent, Provider: result.Provider}, nil
	}

	savedPath := filepath.Join(a.scratchDir, subtitles.SidecarName(videoPath, result.Language))
	a.log.Info("subtitles found, saving", "provider", result.Provider, "path", savedPath)
	if err := os.WriteFile(savedPath, result.Content, 0o644); err != nil {
		a.log.Error("failed to save subtitles", "path", savedPath, "error", err)
		return Outcome{Kind: OutcomeSaveFailed, Provider: result.Provider}, nil
	}

	a.recordSearch(base, lang.Code, true)

	if a.uploads != nil {
		a.log.Info("uploading", "path", savedPath)
		if err := a.uploads.Upload(ctx, savedPath); err != nil {
			// The file is still acquired; upload is a separate concern.
			a.log.Error("failed to upload file", "path", savedPath, "error", err)
		}
	}

	return Outcome{Kind: OutcomeSaved, SavedPath: savedPath, Provider: result.Provider}, nil
}

func (a *Acquirer) recordSearch(base, lang string, found bool) {
	if a.searches == nil {
		return
	}
	if err := a.searches.Record(base, lang, found); err != nil {
		a.log.Warn("cache record failed", "error", err)
	}
}

func videoBase(videoPath string) string {
	baseName := filepath.Base(videoPath)
	return strings.TrimSuffix(baseName, filepath.Ext(baseName))
}
