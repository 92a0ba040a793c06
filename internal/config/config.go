// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log       LogConfig       `toml:"log"`
	Library   LibraryConfig   `toml:"library"`
	Monitor   MonitorConfig   `toml:"monitor"`
	Subtitles SubtitlesConfig `toml:"subtitles"`
	Provider  ProviderConfig  `toml:"provider"`
	Cache     CacheConfig     `toml:"cache"`
	Upload    UploadConfig    `toml:"upload"`
	Migrate   MigrateConfig   `toml:"migrate"`
}

type LogConfig struct {
	Path  string `toml:"path"`  // debug log file, empty disables file logging
	Level string `toml:"level"` // stdout level: debug, info, warn, error
}

type LibraryConfig struct {
	Root         string `toml:"root"`
	MovieSubtree string `toml:"movie_subtree"`
	TVSubtree    string `toml:"tv_subtree"`
	// ShowAliases maps alternate or localized show names to canonical ones.
	ShowAliases map[string]string `toml:"show_aliases"`
}

type MonitorConfig struct {
	NamesLog     string `toml:"names_log"`     // append-only log of original paths
	ResultsLimit int    `toml:"results_limit"` // 0 means no limit
	ScratchDir   string `toml:"scratch_dir"`
}

type SubtitlesConfig struct {
	Languages []string `toml:"languages"` // two-letter codes, e.g. ["he", "en"]
	// Providers restricts which providers are queried per language.
	// A missing key means all providers.
	Providers map[string][]string `toml:"providers"`
}

type ProviderConfig struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type CacheConfig struct {
	Path    string `toml:"path"` // empty disables the search cache
	TTLDays int    `toml:"ttl_days"`
}

type UploadConfig struct {
	RcloneBin string `toml:"rclone_bin"`
	Remote    string `toml:"remote"` // e.g. "gdrive:subtitles"
}

type MigrateConfig struct {
	SyncBin     string `toml:"sync_bin"`
	RcloneBin   string `toml:"rclone_bin"`
	CloudPrefix string `toml:"cloud_prefix"` // local prefix stripped to form the remote path
	Remote      string `toml:"remote"`       // rclone remote name, e.g. "gdrive"
	Workers     int    `toml:"workers"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Library.MovieSubtree == "" {
		cfg.Library.MovieSubtree = "Movies"
	}
	if cfg.Library.TVSubtree == "" {
		cfg.Library.TVSubtree = "TV"
	}
	if cfg.Monitor.ResultsLimit == 0 {
		cfg.Monitor.ResultsLimit = 300
	}
	if cfg.Monitor.ScratchDir == "" {
		cfg.Monitor.ScratchDir = os.TempDir()
	}
	if len(cfg.Subtitles.Languages) == 0 {
		cfg.Subtitles.Languages = []string{"he", "en"}
		// The restriction only makes sense alongside the default languages.
		if cfg.Subtitles.Providers == nil {
			cfg.Subtitles.Providers = map[string][]string{"he": {"wizdom", "ktuvit"}}
		}
	}
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = 30
	}
	if cfg.Cache.TTLDays == 0 {
		cfg.Cache.TTLDays = 30
	}
	if cfg.Upload.RcloneBin == "" {
		cfg.Upload.RcloneBin = "rclone"
	}
	if cfg.Migrate.RcloneBin == "" {
		cfg.Migrate.RcloneBin = "rclone"
	}
	if cfg.Migrate.Workers == 0 {
		cfg.Migrate.Workers = 4
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
