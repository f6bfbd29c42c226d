// Package config loads the TOML configuration of the hebrew command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/FocuswithJustin/JuniperHebrew/core/errors"
	"github.com/FocuswithJustin/JuniperHebrew/internal/logging"
)

// Config holds every setting the command reads from file.
type Config struct {
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	Workers    int    `toml:"workers"`
	CacheSize  int    `toml:"cache_size"`
	Database   string `toml:"database"`
	Wildcard   string `toml:"wildcard"`
	Corpus     string `toml:"corpus"`
	FixEnglish bool   `toml:"fix_english"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:   "warn",
		LogFormat:  "text",
		Workers:    runtime.GOMAXPROCS(0),
		CacheSize:  20000,
		Database:   "hebrew.db",
		Wildcard:   "*",
		FixEnglish: true,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.NewNotFound("config", path)
		}
		return cfg, errors.NewIO("read", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg to path as TOML, creating the parent directory.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.NewIO("mkdir", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if c.Workers < 1 {
		return &errors.ValidationError{Field: "workers", Value: fmt.Sprint(c.Workers), Message: "must be at least 1"}
	}
	if c.CacheSize < 0 {
		return &errors.ValidationError{Field: "cache_size", Value: fmt.Sprint(c.CacheSize), Message: "must not be negative"}
	}
	if utf8.RuneCountInString(c.Wildcard) != 1 {
		return &errors.ValidationError{Field: "wildcard", Value: c.Wildcard, Message: "must be a single character"}
	}
	return nil
}

// WildcardRune returns the wildcard as a rune.
func (c Config) WildcardRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Wildcard)
	return r
}

// Logging returns the parsed log level and format.
func (c Config) Logging() (logging.Level, logging.Format) {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	return level, format
}
