package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// API flavors. The cloud flavor routes PDF exports through the
// long-running-task poller; server returns the file directly.
const (
	FlavorCloud  = "cloud"
	FlavorServer = "server"
)

type Config struct {
	Confluence ConfluenceConfig `yaml:"confluence"`
	Export     ExportConfig     `yaml:"export,omitempty"`
}

type ConfluenceConfig struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	APIToken string `yaml:"api_token"`
	SpaceKey string `yaml:"space_key,omitempty"`
	Flavor   string `yaml:"flavor,omitempty"`
}

// ExportConfig tunes the PDF export poller. Zero values mean defaults.
type ExportConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds,omitempty"`
	MaxPolls            int `yaml:"max_polls,omitempty"`
}

func Load(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(true); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadRelaxed loads config without requiring a space key, for commands
// that take the space from a flag or do not need one at all.
func LoadRelaxed(path string) (*Config, error) {
	cfg, err := read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(false); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate(requireSpace bool) error {
	if c.Confluence.BaseURL == "" {
		return fmt.Errorf("confluence.base_url is required")
	}
	if c.Confluence.Username == "" {
		return fmt.Errorf("confluence.username is required")
	}
	if c.Confluence.APIToken == "" {
		return fmt.Errorf("confluence.api_token is required")
	}
	if requireSpace && c.Confluence.SpaceKey == "" {
		return fmt.Errorf("confluence.space_key is required")
	}
	switch c.Confluence.Flavor {
	case "", FlavorCloud, FlavorServer:
	default:
		return fmt.Errorf("confluence.flavor must be %q or %q", FlavorCloud, FlavorServer)
	}
	return nil
}

// Save writes the config back to path, creating parent directories.
// The file is written 0600 since it holds an API token.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ResolveConfigPath returns path as-is when it exists or is non-default;
// otherwise it falls back to the per-user config location.
func ResolveConfigPath(path string) string {
	if path != "config.yaml" {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".config", "conflow", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}
