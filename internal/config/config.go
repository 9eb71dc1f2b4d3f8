// Package config loads the optional tmtree configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user settings. Zero fields fall back to Default values.
type Config struct {
	Workers   int    `toml:"workers"`    // scanner goroutines
	Width     int    `toml:"width"`      // layout width for non-interactive output
	Height    int    `toml:"height"`     // layout height for non-interactive output
	Seed      int64  `toml:"seed"`       // colour seed, 0 for random
	CacheDir  string `toml:"cache_dir"`  // snapshot directory
	ExpandAll bool   `toml:"expand_all"` // start with every folder expanded
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Workers:  8,
		Width:    120,
		Height:   40,
		CacheDir: defaultCacheDir(),
	}
}

// DefaultPath returns ~/.tmtree/config.toml
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tmtree.toml"
	}
	return filepath.Join(home, ".tmtree", "config.toml")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tmtree"
	}
	return filepath.Join(home, ".tmtree", "cache")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if _, err := toml.Decode(string(data), &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.merge(file)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// merge copies the non-zero fields of o into c
func (c *Config) merge(o Config) {
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.Width != 0 {
		c.Width = o.Width
	}
	if o.Height != 0 {
		c.Height = o.Height
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.CacheDir != "" {
		c.CacheDir = o.CacheDir
	}
	if o.ExpandAll {
		c.ExpandAll = true
	}
}

// Validate rejects settings the layout and scanner cannot use
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must be non-negative, got %dx%d", c.Width, c.Height)
	}
	return nil
}
