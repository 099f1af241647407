package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/brogergvhs/langtally/internal/listing"
	"github.com/brogergvhs/langtally/internal/report"

	"gopkg.in/yaml.v3"
)

const DefaultStartURL = "https://old.reddit.com/r/programming/"

type Config struct {
	StartURL    string  `yaml:"start_url"`
	Pages       int     `yaml:"pages"`
	Delay       float64 `yaml:"delay"`
	Timeout     int     `yaml:"timeout"`
	UserAgent   string  `yaml:"user_agent"`
	UseProxy    bool    `yaml:"use_proxy"`
	PrintTitles bool    `yaml:"print_titles"`
	Debug       bool    `yaml:"debug"`

	Parser        string `yaml:"parser"`
	TitleSelector string `yaml:"title_selector"`
	NextSelector  string `yaml:"next_selector"`

	Languages []string `yaml:"languages"`

	Format     string `yaml:"format"`
	Sort       string `yaml:"sort"`
	NoProgress bool   `yaml:"no_progress"`

	CloudflareBypass bool `yaml:"cloudflare_bypass"`
}

// Options carries CLI values. Zero values leave the config untouched;
// numeric flags are applied by the caller when explicitly set.
type Options struct {
	IgnoreConfig     bool
	Debug            bool
	StartURL         string
	UserAgent        string
	UseProxy         bool
	PrintTitles      bool
	Parser           string
	TitleSelector    string
	NextSelector     string
	Languages        []string
	Format           string
	Sort             string
	NoProgress       bool
	CloudflareBypass bool
}

func DefaultConfig() *Config {
	return &Config{
		StartURL:         DefaultStartURL,
		Pages:            20,
		Delay:            3.0,
		Timeout:          30,
		UserAgent:        "",
		UseProxy:         false,
		PrintTitles:      false,
		Debug:            false,
		Parser:           listing.KindCSS,
		TitleSelector:    "",
		NextSelector:     "",
		Languages:        nil,
		Format:           report.FormatTable,
		Sort:             report.SortVocab,
		NoProgress:       false,
		CloudflareBypass: false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// loadYAML decodes path over the defaults, so keys missing from the file
// keep their default values.
func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.StartURL != "" {
		c.StartURL = o.StartURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.UseProxy {
		c.UseProxy = true
	}
	if o.PrintTitles {
		c.PrintTitles = true
	}
	if o.Parser != "" {
		c.Parser = o.Parser
	}
	if o.TitleSelector != "" {
		c.TitleSelector = o.TitleSelector
	}
	if o.NextSelector != "" {
		c.NextSelector = o.NextSelector
	}
	if len(o.Languages) > 0 {
		c.Languages = o.Languages
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.Sort != "" {
		c.Sort = o.Sort
	}
	if o.NoProgress {
		c.NoProgress = true
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
}

func normalizeDefaults(c *Config) {
	if c.StartURL == "" {
		c.StartURL = DefaultStartURL
	}
	if c.Parser == "" {
		c.Parser = listing.KindCSS
	}
	c.Parser = strings.ToLower(c.Parser)
	if c.Format == "" {
		c.Format = report.FormatTable
	}
	if c.Sort == "" {
		c.Sort = report.SortVocab
	}
}

// Validate rejects values that would fail only after network activity
// started. Pages may be zero or negative: such a run fetches nothing.
func (c *Config) Validate() error {
	u, err := url.Parse(c.StartURL)
	if err != nil {
		return fmt.Errorf("invalid start url %q: %w", c.StartURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid start url %q: want an absolute http(s) URL", c.StartURL)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %g", c.Delay)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.Timeout)
	}
	if c.Parser != listing.KindCSS && c.Parser != listing.KindXPath {
		return fmt.Errorf("unknown parser %q (want %s or %s)", c.Parser, listing.KindCSS, listing.KindXPath)
	}
	if !report.ValidFormat(c.Format) {
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", c.Format, report.FormatTable, report.FormatPlain, report.FormatJSON)
	}
	if !report.ValidSort(c.Sort) {
		return fmt.Errorf("unknown sort %q (want %s or %s)", c.Sort, report.SortVocab, report.SortCount)
	}

	return nil
}

func (c *Config) Print() {
	fmt.Printf(" -start_url: %s\n", c.StartURL)
	fmt.Printf(" -pages: %d\n", c.Pages)
	fmt.Printf(" -delay: %gs\n", c.Delay)
	fmt.Printf(" -timeout: %ds\n", c.Timeout)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.UseProxy {
		fmt.Printf(" -use_proxy: %t\n", c.UseProxy)
	}
	if c.PrintTitles {
		fmt.Printf(" -print_titles: %t\n", c.PrintTitles)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	fmt.Printf(" -parser: %s\n", c.Parser)
	if c.TitleSelector != "" {
		fmt.Printf(" -title_selector: %s\n", c.TitleSelector)
	}
	if c.NextSelector != "" {
		fmt.Printf(" -next_selector: %s\n", c.NextSelector)
	}
	if len(c.Languages) > 0 {
		fmt.Printf(" -languages: %s\n", strings.Join(c.Languages, ", "))
	}
	fmt.Printf(" -format: %s\n", c.Format)
	fmt.Printf(" -sort: %s\n", c.Sort)
	if c.NoProgress {
		fmt.Printf(" -no_progress: %t\n", c.NoProgress)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
}
