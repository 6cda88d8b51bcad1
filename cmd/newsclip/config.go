package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings that would otherwise need a flag on every command.
// All fields are optional; zero values fall back to built-in defaults.
type Config struct {
	DBPath        string   `yaml:"db_path"`
	FetchTimeout  duration `yaml:"fetch_timeout"`
	UserAgent     string   `yaml:"user_agent"`
	Concurrency   int      `yaml:"concurrency"`
	CacheTTL      duration `yaml:"cache_ttl"`
	LearnContent  bool     `yaml:"learn_content"`
	RatePerDomain float64  `yaml:"rate_per_domain"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:        defaultDBPath(),
		RatePerDomain: 1.0,
	}
}

// LoadConfig reads the YAML config at path, layered over the defaults. An
// empty path means the default location; a missing file at the default
// location is not an error, an explicitly named missing file is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	return cfg, nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".newsclip.yml"
	}
	return filepath.Join(home, ".newsclip.yml")
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsclip.db"
	}
	dir := filepath.Join(home, ".newsclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsclip.db")
}

// duration is a time.Duration that unmarshals from YAML strings like "10s".
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = duration(parsed)
	return nil
}

func (d duration) Duration() time.Duration {
	return time.Duration(d)
}
