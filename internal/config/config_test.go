package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config root at a fresh temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "langtally")
}

func TestLoadMergedWithoutProfile(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMergedFlagsOverrideProfile(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(`
start_url: https://old.reddit.com/r/golang/
pages: 0
delay: 1.5
parser: xpath
languages: [go, rust]
format: plain
`), 0644))

	cfg, used, err := LoadMerged(Options{Format: "json", PrintTitles: true})
	require.NoError(t, err)
	assert.Equal(t, path, used)

	assert.Equal(t, "https://old.reddit.com/r/golang/", cfg.StartURL)
	assert.Equal(t, 0, cfg.Pages, "explicit zero survives")
	assert.Equal(t, 1.5, cfg.Delay)
	assert.Equal(t, 30, cfg.Timeout, "missing keys keep defaults")
	assert.Equal(t, "xpath", cfg.Parser)
	assert.Equal(t, []string{"go", "rust"}, cfg.Languages)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.PrintTitles)
	assert.Equal(t, "vocab", cfg.Sort)
}

func TestLoadMergedIgnoreConfig(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("pages: 3\n"), 0644))

	cfg, _, err := LoadMerged(Options{IgnoreConfig: true, StartURL: "https://example.com/"})
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Pages)
	assert.Equal(t, "https://example.com/", cfg.StartURL)
}

func TestLoadMergedBrokenProfile(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("pages: [not, a, number]\n"), 0644))

	_, _, err = LoadMerged(Options{})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero pages", func(c *Config) { c.Pages = 0 }, false},
		{"negative pages", func(c *Config) { c.Pages = -1 }, false},
		{"zero delay", func(c *Config) { c.Delay = 0 }, false},
		{"negative delay", func(c *Config) { c.Delay = -0.5 }, true},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, true},
		{"relative url", func(c *Config) { c.StartURL = "/r/programming" }, true},
		{"ftp url", func(c *Config) { c.StartURL = "ftp://example.com/" }, true},
		{"xpath parser", func(c *Config) { c.Parser = "xpath" }, false},
		{"unknown parser", func(c *Config) { c.Parser = "regex" }, true},
		{"unknown format", func(c *Config) { c.Format = "xml" }, true},
		{"count sort", func(c *Config) { c.Sort = "count" }, false},
		{"unknown sort", func(c *Config) { c.Sort = "alpha" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	in := DefaultConfig()
	in.Languages = []string{"go"}
	in.CloudflareBypass = true

	require.NoError(t, SaveYAML(in, path))
	out, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
