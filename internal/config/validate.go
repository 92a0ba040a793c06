package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
// Existence of the names log and library root is checked at run start, not
// here, so `subwatch parse` and `subwatch migrate` work without them.
func (c *Config) Validate() []string {
	var errs []string

	if c.Library.Root == "" {
		errs = append(errs, "library.root: required")
	}
	if c.Monitor.NamesLog == "" {
		errs = append(errs, "monitor.names_log: required")
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Monitor.ResultsLimit < 0 {
		errs = append(errs, fmt.Sprintf("monitor.results_limit: must be >= 0, got %d", c.Monitor.ResultsLimit))
	}

	for _, code := range c.Subtitles.Languages {
		if len(code) != 2 && !(len(code) == 3 && code[0] == '.') {
			errs = append(errs, fmt.Sprintf("subtitles.languages: %q is not a two-letter code", code))
		}
	}
	for code := range c.Subtitles.Providers {
		found := false
		for _, lang := range c.Subtitles.Languages {
			if lang == code {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Sprintf("subtitles.providers.%s: language not in subtitles.languages", code))
		}
	}

	if c.Provider.URL == "" {
		errs = append(errs, "provider.url: required")
	}
	if c.Cache.TTLDays < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl_days: must be >= 0, got %d", c.Cache.TTLDays))
	}
	if c.Migrate.Workers < 1 {
		errs = append(errs, fmt.Sprintf("migrate.workers: must be >= 1, got %d", c.Migrate.Workers))
	}

	return errs
}
