// Package config loads formatter settings from a ruff.toml file.
//
// Discovery walks upward from the start directory until a ruff.toml is
// found or the filesystem root is reached. Missing files are not an
// error: every option has a default matching the formatter's built-in
// behavior.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the formatter options read from ruff.toml.
type Config struct {
	LineLength  int      `toml:"line-length"`
	IndentWidth int      `toml:"indent-width"`
	QuoteStyle  string   `toml:"quote-style"`
	Preview     bool     `toml:"preview"`
	Exclude     []string `toml:"exclude"`
}

// Default returns the settings used when no ruff.toml exists.
func Default() Config {
	return Config{
		LineLength:  88,
		IndentWidth: 4,
		QuoteStyle:  "double",
	}
}

// Find walks from startDir toward the filesystem root looking for a
// ruff.toml. It returns the path and true when found.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "ruff.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads and validates the ruff.toml at path. Options absent from
// the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(meta.Undecoded()) > 0 {
		return Config{}, fmt.Errorf("%s: unknown option %q", path, meta.Undecoded()[0].String())
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover finds and loads the nearest ruff.toml above startDir. When
// none exists it returns the defaults.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c Config) validate() error {
	if c.LineLength <= 0 {
		return fmt.Errorf("line-length must be positive, got %d", c.LineLength)
	}
	if c.IndentWidth <= 0 {
		return fmt.Errorf("indent-width must be positive, got %d", c.IndentWidth)
	}
	switch c.QuoteStyle {
	case "double", "single":
	default:
		return fmt.Errorf("quote-style must be \"double\" or \"single\", got %q", c.QuoteStyle)
	}
	return nil
}

// Excluded reports whether path matches any exclude pattern. Patterns
// are matched against the path's base name and against the path
// relative to root.
func (c Config) Excluded(root, path string) bool {
	rel := path
	if root != "" {
		if r, err := filepath.Rel(root, path); err == nil {
			rel = r
		}
	}
	for _, pat := range c.Exclude {
		if ok, _ := filepath.Match(pat, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
