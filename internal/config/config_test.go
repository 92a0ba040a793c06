package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[library]
root = "/media"

[monitor]
names_log = "/var/log/original_names.log"

[provider]
url = "http://localhost:9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Movies", cfg.Library.MovieSubtree)
	assert.Equal(t, "TV", cfg.Library.TVSubtree)
	assert.Equal(t, 300, cfg.Monitor.ResultsLimit)
	assert.Equal(t, os.TempDir(), cfg.Monitor.ScratchDir)
	assert.Equal(t, []string{"he", "en"}, cfg.Subtitles.Languages)
	assert.Equal(t, []string{"wizdom", "ktuvit"}, cfg.Subtitles.Providers["he"])
	assert.Equal(t, 30, cfg.Cache.TTLDays)
	assert.Equal(t, "rclone", cfg.Upload.RcloneBin)
	assert.Equal(t, 4, cfg.Migrate.Workers)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("SUBWATCH_TEST_ROOT", "/mnt/media")

	path := writeConfig(t, `
[library]
root = "${SUBWATCH_TEST_ROOT}"

[monitor]
names_log = "/var/log/names.log"

[provider]
url = "http://localhost:9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/media", cfg.Library.Root)
}

func TestLoad_ProvidersMap(t *testing.T) {
	path := writeConfig(t, `
[library]
root = "/media"

[monitor]
names_log = "/var/log/names.log"

[subtitles]
languages = ["he", "en"]

[subtitles.providers]
he = ["wizdom", "ktuvit"]

[provider]
url = "http://localhost:9000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"wizdom", "ktuvit"}, cfg.Subtitles.Providers["he"])
	_, restricted := cfg.Subtitles.Providers["en"]
	assert.False(t, restricted, "absent key means all providers")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "missing root",
			mutate:  func(c *Config) { c.Library.Root = "" },
			wantErr: "library.root",
		},
		{
			name:    "missing names log",
			mutate:  func(c *Config) { c.Monitor.NamesLog = "" },
			wantErr: "monitor.names_log",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level",
		},
		{
			name:    "bad language code",
			mutate:  func(c *Config) { c.Subtitles.Languages = []string{"heb"} },
			wantErr: "subtitles.languages",
		},
		{
			name:    "provider restriction for unknown language",
			mutate:  func(c *Config) { c.Subtitles.Providers = map[string][]string{"fr": {"x"}} },
			wantErr: "subtitles.providers.fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Log:       LogConfig{Level: "info"},
				Library:   LibraryConfig{Root: "/media"},
				Monitor:   MonitorConfig{NamesLog: "/var/log/names.log", ResultsLimit: 300},
				Subtitles: SubtitlesConfig{Languages: []string{"he", "en"}},
				Provider:  ProviderConfig{URL: "http://localhost:9000"},
				Migrate:   MigrateConfig{Workers: 4},
			}
			tt.mutate(cfg)

			errs := cfg.Validate()
			if tt.wantErr == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			found := false
			for _, e := range errs {
				if len(e) >= len(tt.wantErr) && e[:len(tt.wantErr)] == tt.wantErr {
					found = true
				}
			}
			assert.True(t, found, "no error starting with %q in %v", tt.wantErr, errs)
		})
	}
}
