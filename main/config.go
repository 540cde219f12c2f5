package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

type Config struct {
	LogLevel  string `yaml:"log_level"`
	Separator string `yaml:"separator"`
	Output    string `yaml:"output"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Separator: ",",
		Output:    outputText,
	}
}

type fileConfig struct {
	LogLevel  string `toml:"log_level"`
	Separator string `toml:"separator"`
	Output    string `toml:"output"`
}

// loadConfig overlays the file at path on DefaultConfig. An empty path
// returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var raw fileConfig
		meta, err := toml.DecodeFile(path, &raw)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if meta.IsDefined("log_level") {
			cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
		}
		if meta.IsDefined("separator") {
			cfg.Separator = raw.Separator
		}
		if meta.IsDefined("output") {
			cfg.Output = strings.TrimSpace(raw.Output)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("load config: unsupported extension %q", filepath.Ext(path))
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse log_level: %w", err)
	}
	if c.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	switch c.Output {
	case outputText, outputYAML:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", outputText, outputYAML, c.Output)
	}
	return nil
}

func (c Config) level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
