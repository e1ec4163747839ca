package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the complete docai CLI configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`
	Test    TestConfig    `toml:"test"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// OutputConfig holds JSON and console output settings
type OutputConfig struct {
	Pretty bool `toml:"pretty"`
	Color  bool `toml:"color"`
}

// TestConfig holds settings for the batch test command
type TestConfig struct {
	Dir     string `toml:"dir"`
	Pattern string `toml:"pattern"`
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// LoadDefault loads configuration from the DOCAI_CONFIG environment variable
// or one of the default locations. When no config file exists the built-in
// defaults are returned.
func LoadDefault() (*Config, error) {
	path := os.Getenv("DOCAI_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./docai.toml",
			filepath.Join(os.Getenv("HOME"), ".config/docai/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Default returns the built-in configuration defaults. Load decodes on top
// of these, so absent keys keep their default and explicit keys override it.
func Default() *Config {
	cfg := &Config{
		Output: OutputConfig{
			Pretty: true,
			Color:  true,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults sets default values for missing string configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "error"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Test.Dir == "" {
		c.Test.Dir = "./testdata/samples"
	}
	if c.Test.Pattern == "" {
		c.Test.Pattern = "*.txt"
	}
}
