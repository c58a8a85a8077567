// Package config loads the fictions configuration from TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Source struct {
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (s Source) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type Library struct {
	Path    string `toml:"path"`
	History string `toml:"history"`
}

type Display struct {
	Reversed bool `toml:"reversed"` // chapter list most recent first
	MarginX  int  `toml:"margin_x"`
	MarginY  int  `toml:"margin_y"`
}

type Export struct {
	Dir         string `toml:"dir"`
	Concurrency int    `toml:"concurrency"`
}

type Config struct {
	Source  Source  `toml:"source"`
	Library Library `toml:"library"`
	Display Display `toml:"display"`
	Export  Export  `toml:"export"`
}

// Default returns the default configuration.
func Default() *Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	home, _ := os.UserHomeDir()

	return &Config{
		Source: Source{
			BaseURL:        "https://www.royalroad.com",
			UserAgent:      "fictions/1.0 (Terminal Reader)",
			TimeoutSeconds: 30,
		},
		Library: Library{
			Path:    filepath.Join(cacheDir, "fictions", "fictions.txt"),
			History: filepath.Join(cacheDir, "fictions", "history.db"),
		},
		Display: Display{
			Reversed: true,
			MarginX:  1,
			MarginY:  1,
		},
		Export: Export{
			Dir:         filepath.Join(home, "Downloads"),
			Concurrency: 3,
		},
	}
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fictions", "config.toml"), nil
}

// Load layers the config file at path on top of the defaults. An empty path
// means ConfigPath. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var user Config
	md, err := toml.DecodeFile(path, &user)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	return merge(cfg, &user, md), nil
}

// merge layers user config on top of defaults. Only non-zero values
// override, except booleans, which override whenever the key is present.
func merge(defaults, user *Config, md toml.MetaData) *Config {
	result := *defaults

	if user.Source.BaseURL != "" {
		result.Source.BaseURL = user.Source.BaseURL
	}
	if user.Source.UserAgent != "" {
		result.Source.UserAgent = user.Source.UserAgent
	}
	if user.Source.TimeoutSeconds > 0 {
		result.Source.TimeoutSeconds = user.Source.TimeoutSeconds
	}

	if user.Library.Path != "" {
		result.Library.Path = expandHome(user.Library.Path)
	}
	if user.Library.History != "" {
		result.Library.History = expandHome(user.Library.History)
	}

	if md.IsDefined("display", "reversed") {
		result.Display.Reversed = user.Display.Reversed
	}
	if md.IsDefined("display", "margin_x") && user.Display.MarginX >= 0 {
		result.Display.MarginX = user.Display.MarginX
	}
	if md.IsDefined("display", "margin_y") && user.Display.MarginY >= 0 {
		result.Display.MarginY = user.Display.MarginY
	}

	if user.Export.Dir != "" {
		result.Export.Dir = expandHome(user.Export.Dir)
	}
	if user.Export.Concurrency > 0 {
		result.Export.Concurrency = user.Export.Concurrency
	}

	return &result
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
