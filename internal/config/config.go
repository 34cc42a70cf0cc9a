// Package config loads the updater's configuration from config.yaml and
// GAMESYNC_-prefixed environment variables. Every value has a default equal
// to the constants the original updater hardcoded, so a bare invocation
// behaves identically while tests and forks can point the pipeline at mock
// endpoints.
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultCatalogURL  = "https://discord.com/api/v9/applications/detectable"
	defaultDenylistURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"
	defaultOutputPath  = "games.v2.json"
)

type Config struct {
	Catalog  CatalogConfig  `koanf:"catalog"`
	Denylist DenylistConfig `koanf:"denylist"`
	Output   OutputConfig   `koanf:"output"`
	History  HistoryConfig  `koanf:"history"`
}

type CatalogConfig struct {
	URL string `koanf:"url"`
}

type DenylistConfig struct {
	Enabled bool   `koanf:"enabled"`
	URL     string `koanf:"url"`
}

type OutputConfig struct {
	Path string `koanf:"path"`
}

// HistoryConfig controls the optional sqlite run-history store. An empty
// path disables it.
type HistoryConfig struct {
	Path string `koanf:"path"`
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try to load from config.yaml file first
	if err := k.Load(file.Provider("config.yaml"), yaml.Parser()); err != nil {
		// File not found is OK, we'll use defaults and env vars
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Load environment variables (can override file config)
	if err := k.Load(env.Provider("GAMESYNC_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "GAMESYNC_")), "__", ".", -1)
	}), nil); err != nil {
		return nil, err
	}

	// Default values
	if !k.Exists("catalog.url") {
		k.Set("catalog.url", defaultCatalogURL)
	}
	if !k.Exists("denylist.enabled") {
		k.Set("denylist.enabled", true)
	}
	if !k.Exists("denylist.url") {
		k.Set("denylist.url", defaultDenylistURL)
	}
	if !k.Exists("output.path") {
		k.Set("output.path", defaultOutputPath)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
