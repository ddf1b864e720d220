/*
Package config manages the TOML (or YAML) config for triedict.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config holds the entire config structure
type Config struct {
	Dict    DictConfig    `toml:"dict" yaml:"dict"`
	Suggest SuggestConfig `toml:"suggest" yaml:"suggest"`
	CLI     CliConfig     `toml:"cli" yaml:"cli"`
}

// DictConfig controls how the dictionary is populated at startup.
type DictConfig struct {
	WordList     string `toml:"word_list" yaml:"word_list"`
	Normalize    bool   `toml:"normalize" yaml:"normalize"`
	SkipComments bool   `toml:"skip_comments" yaml:"skip_comments"`
}

// SuggestConfig holds suggestion options.
type SuggestConfig struct {
	MaxDistance int `toml:"max_distance" yaml:"max_distance"`
	Limit       int `toml:"limit" yaml:"limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	MinPrefix int `toml:"min_prefix" yaml:"min_prefix"`
	MaxPrefix int `toml:"max_prefix" yaml:"max_prefix"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			SkipComments: true,
		},
		Suggest: SuggestConfig{
			MaxDistance: 2,
			Limit:       0,
		},
		CLI: CliConfig{
			MinPrefix: 0,
			MaxPrefix: 64,
		},
	}
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.Suggest.MaxDistance < 0:
		return fmt.Errorf("suggest.max_distance must not be negative, got %d", c.Suggest.MaxDistance)
	case c.Suggest.Limit < 0:
		return fmt.Errorf("suggest.limit must not be negative, got %d", c.Suggest.Limit)
	case c.CLI.MinPrefix < 0:
		return fmt.Errorf("cli.min_prefix must not be negative, got %d", c.CLI.MinPrefix)
	case c.CLI.MaxPrefix < c.CLI.MinPrefix:
		return fmt.Errorf("cli.max_prefix (%d) is below cli.min_prefix (%d)", c.CLI.MaxPrefix, c.CLI.MinPrefix)
	}
	return nil
}

// LoadConfig decodes configPath over the defaults. Files ending in .yaml or
// .yml are read as YAML, everything else as TOML.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if isYAML(configPath) {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse yaml config %s: %w", configPath, err)
		}
	} else {
		md, err := toml.DecodeFile(configPath, config)
		if err != nil {
			return nil, fmt.Errorf("parse toml config %s: %w", configPath, err)
		}
		for _, key := range md.Undecoded() {
			log.Warnf("Unknown config key %q in %s", key.String(), configPath)
		}
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return config, nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath == "" {
		return DefaultConfig(), ""
	}
	if _, err := os.Stat(customConfigPath); err != nil {
		log.Warnf("Config file not found at %s: %v. Using built-in defaults...", customConfigPath, err)
		return DefaultConfig(), ""
	}
	config, err := LoadConfig(customConfigPath)
	if err != nil {
		log.Warnf("Failed to load config: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from: %s", customConfigPath)
	return config, customConfigPath
}

// SaveConfig writes config to configPath in the format its extension selects.
func SaveConfig(config *Config, configPath string) (err error) {
	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()
	if isYAML(configPath) {
		enc := yaml.NewEncoder(file)
		enc.SetIndent(2)
		if err := enc.Encode(config); err != nil {
			return err
		}
		return enc.Close()
	}
	return toml.NewEncoder(file).Encode(config)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
