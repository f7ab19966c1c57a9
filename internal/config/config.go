// Package config loads sofakit settings from a YAML file and command-line
// overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config path is given and it exists in the
// working directory.
const DefaultFile = "sofakit.yaml"

// Store backends.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Store   StoreConfig   `mapstructure:"store"`
	Server  ServerConfig  `mapstructure:"server"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig lists the catalogs loaded on top of core.
type CatalogConfig struct {
	Extensions []string `mapstructure:"extensions"` // Embedded extension names
	Files      []string `mapstructure:"files"`      // Catalog files on disk
}

// StoreConfig selects where plans are saved.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Path    string      `mapstructure:"path"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the redis backend settings.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ServerConfig holds listener addresses.
type ServerConfig struct {
	Addr    string `mapstructure:"addr"`
	MCPAddr string `mapstructure:"mcp_addr"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() map[string]any {
	return map[string]any{
		"log": map[string]any{
			"level":  "info",
			"format": "text",
		},
		"catalog": map[string]any{
			"extensions": []any{},
			"files":      []any{},
		},
		"store": map[string]any{
			"backend": BackendMemory,
			"path":    ".sofakit/plans",
			"redis": map[string]any{
				"addr":   "localhost:6379",
				"db":     0,
				"prefix": "sofakit:plan:",
				"ttl":    "0s",
			},
		},
		"server": map[string]any{
			"addr":     ":8080",
			"mcp_addr": ":8081",
		},
	}
}

// Load builds a Config from the defaults, the YAML file at path and the
// given overrides, in that order. Override keys are dotted paths such as
// "log.level". An empty path falls back to DefaultFile when it exists.
func Load(path string, overrides map[string]any) (*Config, error) {
	raw := Defaults()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		fileValues, err := Read(f)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		merge(raw, fileValues)
	}

	for key, value := range overrides {
		set(raw, strings.Split(key, "."), value)
	}

	cfg, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read parses a YAML document into a generic map. An empty document yields
// an empty map.
func Read(r io.Reader) (map[string]any, error) {
	var values map[string]any
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}

// Decode turns a generic map into a validated Config. Unknown keys are
// rejected so that typos do not pass silently.
func Decode(raw map[string]any) (*Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values mapstructure cannot.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendRedis:
	default:
		return fmt.Errorf("config: unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == BackendFile && c.Store.Path == "" {
		return errors.New("config: store.path is required for the file backend")
	}
	if c.Store.Redis.TTL < 0 {
		return errors.New("config: store.redis.ttl must not be negative")
	}
	return nil
}

// merge copies src into dst, descending into nested maps.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sm, ok := v.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				merge(dm, sm)
				continue
			}
		}
		dst[k] = v
	}
}

// set stores value at the dotted path keys, creating maps on the way.
func set(m map[string]any, keys []string, value any) {
	for _, k := range keys[:len(keys)-1] {
		next, ok := m[k].(map[string]any)
		if !ok {
			next = map[string]any{}
			m[k] = next
		}
		m = next
	}
	m[keys[len(keys)-1]] = value
}
