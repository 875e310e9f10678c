package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// as a CLI application with a very short lived lifecycle, it is ok to use
// global flags.
var configFile = flag.String("config", "", "path to the TOML config file (default <user config dir>/fo/config.toml)")

// Config is the effective CLI configuration after defaults, file, and
// environment are resolved.
type Config struct {
	BaseURL      string
	Mock         bool
	SettleMillis int
}

// SettleDelay returns the configured pause between automatic connection
// attempts.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleMillis) * time.Millisecond
}

// fileConfig is the config.toml key mapping.
type fileConfig struct {
	BaseURL  string `toml:"base_url"`
	Mock     bool   `toml:"mock"`
	SettleMS int    `toml:"settle_ms"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fo", "config.toml")
}

// loadConfigFile overlays the TOML file at path on the defaults. Only keys
// actually present in the file override anything.
func loadConfigFile(path string) (Config, error) {
	cfg := Config{SettleMillis: 500}
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cfg, fmt.Errorf("load config %q: %w", path, err)
	}
	if meta.IsDefined("base_url") {
		cfg.BaseURL = strings.TrimSpace(raw.BaseURL)
	}
	if meta.IsDefined("mock") {
		cfg.Mock = raw.Mock
	}
	if meta.IsDefined("settle_ms") {
		cfg.SettleMillis = raw.SettleMS
	}
	return cfg, nil
}

// loadConfig resolves the effective configuration: defaults, then the config
// file when present, then the environment. No backend URL means mock mode.
func loadConfig() (Config, error) {
	path := *configFile
	if path == "" {
		path = defaultConfigPath()
		// The default file is optional.
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if os.Getenv("FOLIO_MOCK") != "" {
		cfg.Mock = true
	}
	if cfg.BaseURL == "" {
		cfg.Mock = true
	}
	return cfg, nil
}
