package subtitles

import (
	"log/slog"
	"os"
)

// Detector finds configured languages that lack a sidecar file next to a video.
type Detector struct {
	languages []Language
	log       *slog.Logger
}

// NewDetector creates a detector for the given languages.
func NewDetector(languages []Language, log *slog.Logger) *Detector {
	if log == nil {
		log = slog.Default()
	}
	return &Detector{
		languages: languages,
		log:       log.With("component", "gaps"),
	}
}

// FindGaps returns the languages whose sidecar file does not exist next to
// videoPath. Purely a filesystem check, no provider is queried.
func (d *Detector) FindGaps(videoPath string) []Language {
	var missing []Language
	for _, lang := range d.languages {
		sidecar := SidecarPath(videoPath, lang)
		if _, err := os.Stat(sidecar); os.IsNotExist(err) {
			d.log.Debug("sidecar missing", "path", sidecar, "language", lang.Code)
			missing = append(missing, lang)
		}
	}
	return missing
}
