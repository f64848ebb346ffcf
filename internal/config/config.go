// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Location pairs a search location with the country label records
// carry in the output.
type Location struct {
	Name    string `yaml:"name"`
	Country string `yaml:"country"`
}

type Config struct {
	Output string `yaml:"output"`

	HTTP struct {
		UserAgent      string `yaml:"user_agent"`
		AcceptLanguage string `yaml:"accept_language"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"http"`

	Delays struct {
		SearchMS  int `yaml:"search_ms"`
		ListingMS int `yaml:"listing_ms"`
	} `yaml:"delays"`

	Searches  []string   `yaml:"searches"`
	Locations []Location `yaml:"locations"`
}

// Default returns the built-in configuration. Running with no config
// file uses exactly these values.
func Default() Config {
	var cfg Config
	cfg.Output = "data/jobs.json"
	cfg.HTTP.UserAgent = "Mozilla/5.0 (compatible; JobAgentBot/1.0; +https://example.com/bot)"
	cfg.HTTP.AcceptLanguage = "en-GB,en;q=0.9"
	cfg.HTTP.TimeoutSeconds = 20
	cfg.Delays.SearchMS = 1000
	cfg.Delays.ListingMS = 1200
	cfg.Searches = []string{
		"digital marketing visa sponsorship",
		"content creator visa sponsorship",
		"social media visa sponsorship",
		"video editor visa sponsorship",
		"videographer visa sponsorship",
		"wordpress content manager visa sponsorship",
		"marketing relocation assistance",
		"content creator relocation package",
		"social media relocation support",
		"video producer relocation assistance",
	}
	cfg.Locations = []Location{
		{Name: "United Kingdom", Country: "UK"},
		{Name: "Netherlands", Country: "Netherlands"},
		{Name: "Belgium", Country: "Belgium"},
		{Name: "Ireland", Country: "Ireland"},
		{Name: "Italy", Country: "Italy"},
	}
	return cfg
}

// Load overlays a YAML file onto the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

func (c Config) SearchDelay() time.Duration {
	return time.Duration(c.Delays.SearchMS) * time.Millisecond
}

func (c Config) ListingDelay() time.Duration {
	return time.Duration(c.Delays.ListingMS) * time.Millisecond
}

// LockPath is the flock target guarding the snapshot.
func (c Config) LockPath() string { return c.Output + ".lock" }
