// Package subtitles handles sidecar naming conventions and missing-language detection.
package subtitles

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Extension is the subtitle file extension used by the sidecar convention.
const Extension = ".srt"

// Language identifies a subtitle language by its two-letter code.
type Language struct {
	Code string // ISO 639-1, e.g. "he"
	Tag  language.Tag
}

// FromCode resolves a two-letter language code to a Language.
// A leading dot is tolerated so configured extensions like ".he" work as-is.
func FromCode(code string) (Language, error) {
	code = strings.TrimPrefix(strings.ToLower(code), ".")
	if len(code) != 2 {
		return Language{}, fmt.Errorf("invalid language code %q: want two letters", code)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return Language{Code: code, Tag: tag}, nil
}

// Name returns the English display name, e.g. "Hebrew".
func (l Language) Name() string {
	if name := display.English.Languages().Name(l.Tag); name != "" {
		return name
	}
	return l.Code
}

func (l Language) String() string {
	return l.Code
}

// SidecarName returns the conventional sidecar file name for a video file:
// the video base name with the language code embedded before the subtitle
// extension (e.g. "Movie (2019).he.srt").
func SidecarName(videoPath string, lang Language) string {
	base := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	return base + "." + lang.Code + Extension
}

// SidecarPath returns the full path of the sidecar file next to the video.
func SidecarPath(videoPath string, lang Language) string {
	return filepath.Join(filepath.Dir(videoPath), SidecarName(videoPath, lang))
}
