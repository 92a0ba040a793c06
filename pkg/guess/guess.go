// Package guess extracts structured media information from raw file names.
package guess

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Kind distinguishes movies from TV episodes.
type Kind int

const (
	KindMovie Kind = iota
	KindEpisode
)

func (k Kind) String() string {
	if k == KindEpisode {
		return "episode"
	}
	return "movie"
}

// Descriptor contains parsed information from a raw media path.
type Descriptor struct {
	Title   string
	Year    int
	Season  int
	Episode int
	Ext     string // includes the leading dot, e.g. ".mkv"
	Kind    Kind
}

var (
	// seasonEpisodeRegex matches S02E03 style tags.
	seasonEpisodeRegex = regexp.MustCompile(`(?i)\bS(\d{1,2})[ ._-]?E(\d{1,3})\b`)

	// altEpisodeRegex matches 2x03 style tags.
	altEpisodeRegex = regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{1,3})\b`)

	// yearRegex matches a plausible release year.
	yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// releaseNoise matches common release tags that end the title portion.
	releaseNoise = regexp.MustCompile(`(?i)\b(2160p|1080p|720p|480p|bluray|blu-ray|bdrip|brrip|web-?dl|web-?rip|hdtv|dvdrip|dvd|x264|x265|h264|h265|hevc|xvid|aac|ac3|dts|proper|repack|extended|remux|internal|limited)\b`)
)

// Parse extracts a Descriptor from a raw path. The path may be a bare release
// name or a full historical path; only the base name is inspected.
// The returned title may be empty when nothing usable precedes the first
// marker, which callers must treat as an unusable guess.
func Parse(rawPath string) *Descriptor {
	base := filepath.Base(rawPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	// Normalize separators the way release names use them.
	name = strings.ReplaceAll(name, ".", " ")
	name = strings.ReplaceAll(name, "_", " ")

	d := &Descriptor{Ext: strings.ToLower(ext)}

	// The title is everything before the earliest marker: an episode tag,
	// a year, or a release noise word.
	titleEnd := len(name)

	if loc := seasonEpisodeRegex.FindStringSubmatchIndex(name); loc != nil {
		d.Season = mustAtoi(name[loc[2]:loc[3]])
		d.Episode = mustAtoi(name[loc[4]:loc[5]])
		d.Kind = KindEpisode
		if loc[0] < titleEnd {
			titleEnd = loc[0]
		}
	} else if loc := altEpisodeRegex.FindStringSubmatchIndex(name); loc != nil {
		d.Season = mustAtoi(name[loc[2]:loc[3]])
		d.Episode = mustAtoi(name[loc[4]:loc[5]])
		d.Kind = KindEpisode
		if loc[0] < titleEnd {
			titleEnd = loc[0]
		}
	}

	if loc := yearRegex.FindStringIndex(name); loc != nil {
		// A year at the very start is only a marker when nothing follows it;
		// otherwise it is part of the title (e.g. "2001 A Space Odyssey").
		if loc[0] > 0 || strings.TrimSpace(name[loc[1]:]) == "" {
			d.Year = mustAtoi(name[loc[0]:loc[1]])
			if loc[0] < titleEnd {
				titleEnd = loc[0]
			}
		}
	}

	if loc := releaseNoise.FindStringIndex(name); loc != nil && loc[0] < titleEnd {
		titleEnd = loc[0]
	}

	title := strings.TrimSpace(name[:titleEnd])
	title = strings.Trim(title, "-[]() ")
	d.Title = strings.Join(strings.Fields(title), " ")

	return d
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
