package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// target page
	DefaultURL string `yaml:"default_url"`

	// headers/auth
	UserAgent  string `yaml:"user_agent"`
	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`

	// fetch behavior
	TimeoutSeconds   int  `yaml:"timeout_seconds"`
	CloudflareBypass bool `yaml:"cloudflare_bypass"`

	// report/export
	Top          int    `yaml:"top"`
	ExportPath   string `yaml:"export_path"`
	ExportFormat string `yaml:"export_format"`

	Debug bool `yaml:"debug"`
}

type Options struct {
	IgnoreConfig   bool
	Debug          bool
	DefaultURL     string
	UserAgent      string
	Cookie         string
	CookieFile     string
	TimeoutSeconds int
	Top            int
	ExportPath     string
	ExportFormat   string
}

func DefaultConfig() *Config {
	return &Config{
		DefaultURL:       "",
		UserAgent:        "",
		Cookie:           "",
		CookieFile:       "",
		TimeoutSeconds:   30,
		CloudflareBypass: true,
		Top:              0,
		ExportPath:       "",
		ExportFormat:     "csv",
		Debug:            false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged resolves the active profile and overlays CLI options on top of
// it. The returned string names the file the base config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveProfilePath()
	if err == ErrNoProfile || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `supacha config init` to create an actual config\n", nil
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
	if o.DefaultURL != "" {
		c.DefaultURL = o.DefaultURL
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.Top != 0 {
		c.Top = o.Top
	}
	if o.ExportPath != "" {
		c.ExportPath = o.ExportPath
	}
	if o.ExportFormat != "" {
		c.ExportFormat = o.ExportFormat
	}
}

func normalizeDefaults(c *Config) {
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	if c.ExportFormat == "" {
		c.ExportFormat = "csv"
	}
}

func (c *Config) Print() {
	if c.DefaultURL != "" {
		fmt.Printf(" -url: %s\n", c.DefaultURL)
	}
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.Cookie != "" {
		fmt.Printf(" -cookie: (set)\n")
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.Top != 0 {
		fmt.Printf(" -top: %d\n", c.Top)
	}
	if c.ExportPath != "" {
		fmt.Printf(" -export_path: %s\n", c.ExportPath)
	}
	fmt.Printf(" -export_format: %s\n", c.ExportFormat)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}
