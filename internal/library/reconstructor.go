// Package library rebuilds canonical on-disk paths for organized media files.
package library

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/subwatch/subwatch/pkg/guess"
)

// Default naming templates. {ext} includes the leading dot.
const (
	DefaultMovieTemplate  = "{title} ({year})/{title} ({year}){ext}"
	DefaultSeriesTemplate = "{title}/Season {season:02}/{title} - S{season:02}E{episode:02}{ext}"
)

// Config for the reconstructor.
type Config struct {
	Root           string
	MovieSubtree   string
	TVSubtree      string
	MovieTemplate  string
	SeriesTemplate string
}

// Reconstructor maps a raw historical path to the canonical library path the
// file occupies after organization. Reconstruction is a pure function of the
// parsed descriptor and the configured roots; it never touches the filesystem.
type Reconstructor struct {
	movieRoot      string
	tvRoot         string
	movieTemplate  string
	seriesTemplate string
	shows          *ShowNamer
	titleCaser     cases.Caser
}

// NewReconstructor creates a Reconstructor. Empty templates use defaults.
func NewReconstructor(cfg Config, shows *ShowNamer) *Reconstructor {
	if cfg.MovieTemplate == "" {
		cfg.MovieTemplate = DefaultMovieTemplate
	}
	if cfg.SeriesTemplate == "" {
		cfg.SeriesTemplate = DefaultSeriesTemplate
	}
	if shows == nil {
		shows = NewShowNamer(nil)
	}
	return &Reconstructor{
		movieRoot:      filepath.Join(cfg.Root, cfg.MovieSubtree),
		tvRoot:         filepath.Join(cfg.Root, cfg.TVSubtree),
		movieTemplate:  cfg.MovieTemplate,
		seriesTemplate: cfg.SeriesTemplate,
		shows:          shows,
		titleCaser:     cases.Title(language.English),
	}
}

// Reconstruct parses rawPath and returns the canonical library path for it.
// Returns ErrNoTitle when the name yields no usable title; callers log a
// warning and skip the entry.
func (r *Reconstructor) Reconstruct(rawPath string) (string, error) {
	d := guess.Parse(rawPath)
	if d.Title == "" {
		return "", fmt.Errorf("%w: %q", ErrNoTitle, rawPath)
	}

	if d.Kind == guess.KindEpisode {
		return r.EpisodePath(d.Title, d.Season, d.Episode, d.Ext), nil
	}
	return r.MoviePath(d.Title, d.Year, d.Ext), nil
}

// MoviePath generates the canonical path for a movie file.
// The title is rendered in title case.
func (r *Reconstructor) MoviePath(title string, year int, ext string) string {
	title = SanitizeFilename(r.titleCaser.String(title))
	rel := applyTemplate(r.movieTemplate, map[string]any{
		"title": title,
		"year":  year,
		"ext":   ext,
	})
	return filepath.Join(r.movieRoot, rel)
}

// EpisodePath generates the canonical path for an episode file.
// The title is passed through the show-name normalizer first, so localized
// or alternate show names land in the canonical show directory.
func (r *Reconstructor) EpisodePath(title string, season, episode int, ext string) string {
	title = SanitizeFilename(r.shows.Normalize(title))
	rel := applyTemplate(r.seriesTemplate, map[string]any{
		"title":   title,
		"season":  season,
		"episode": episode,
		"ext":     ext,
	})
	return filepath.Join(r.tvRoot, rel)
}

// formatPattern matches {name} or {name:02} style placeholders.
var formatPattern = regexp.MustCompile(`\{(\w+)(?::(\d+))?\}`)

// applyTemplate substitutes variables into a template string.
// Supports {name} for simple substitution and {name:02} for zero-padded integers.
func applyTemplate(template string, vars map[string]any) string {
	return formatPattern.ReplaceAllStringFunc(template, func(match string) string {
		parts := formatPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		val, ok := vars[name]
		if !ok {
			return match
		}

		if len(parts) >= 3 && parts[2] != "" {
			width, err := strconv.Atoi(parts[2])
			if err == nil {
				if v, ok := val.(int); ok {
					return fmt.Sprintf("%0*d", width, v)
				}
			}
		}

		return fmt.Sprintf("%v", val)
	})
}
