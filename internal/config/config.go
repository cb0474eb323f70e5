// Package config reads the application's TOML configuration file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the application settings. A missing file yields defaults;
// a present file overrides only the keys it sets.
type Config struct {
	DataDir      string `toml:"data_dir"`      // photos, exports, library database
	LibraryFile  string `toml:"library_file"`  // database filename inside DataDir
	LogLevel     string `toml:"log_level"`     // debug, info, warn, error
	DefaultColor string `toml:"default_color"` // palette name the editor starts with
	DefaultWidth int    `toml:"default_width"` // starting brush width
}

// Default returns the configuration used when no file exists. The data
// directory lives under the user's config dir.
func Default() *Config {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return &Config{
		DataDir:      filepath.Join(base, "photo-markup"),
		LibraryFile:  "library.db",
		LogLevel:     "info",
		DefaultColor: "red",
		DefaultWidth: 3,
	}
}

// Read decodes a Config from r, filling unset keys with defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// ReadFromFile loads the config at path. A missing file is not an error;
// defaults are returned.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg to w.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// LibraryPath is the full path of the markup library database.
func (c *Config) LibraryPath() string {
	return filepath.Join(c.DataDir, c.LibraryFile)
}

// applyDefaults backfills keys an explicit file left empty or invalid.
func (c *Config) applyDefaults() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.LibraryFile == "" {
		c.LibraryFile = def.LibraryFile
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.DefaultColor == "" {
		c.DefaultColor = def.DefaultColor
	}
	if c.DefaultWidth <= 0 {
		c.DefaultWidth = def.DefaultWidth
	}
}
