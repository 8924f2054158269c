package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FURL_"

// defaults are loaded before the config file and the environment.
var defaults = []byte(`
tab_width: 4
line_numbers: true
fold_gutter: true
placeholder: "…"
log:
  level: info
`)

// Config is the demo configuration.
//
// Precedence, highest first: FURL_* environment variables, the YAML config
// file, defaults.
type Config struct {
	TabWidth    int       `koanf:"tab_width"`
	LineNumbers bool      `koanf:"line_numbers"`
	FoldGutter  bool      `koanf:"fold_gutter"`
	Placeholder string    `koanf:"placeholder"`
	Log         LogConfig `koanf:"log"`
}

type LogConfig struct {
	// File receives JSON log lines. Logging is off when empty.
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// LoadConfig reads path when it exists, then applies FURL_* overrides.
// An empty path skips the file. Files ending in .toml are read as TOML,
// anything else as YAML.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := k.Load(rawbytes.Provider(content), parserFor(path)); err != nil {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	// FURL_TAB_WIDTH -> tab_width, FURL_LOG_LEVEL -> log.level
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be in [1,16], got %d", c.TabWidth)
	}
	return nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlParser{}
	}
	return yaml.Parser()
}

// tomlParser implements koanf.Parser with BurntSushi/toml.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]any, error) {
	out := map[string]any{}
	if _, err := toml.Decode(string(b), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(o map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
