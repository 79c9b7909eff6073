// Package config loads the global resolution settings.
//
// Settings are layered: built-in defaults, then an optional YAML or TOML
// file, then STRUCTMAPPER_* environment variables. The first "_" after
// the prefix separates the section, so STRUCTMAPPER_MAPPING_MAP_NULL sets
// mapping.map_null.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"structmapper/classmap"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "STRUCTMAPPER_"

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// DefaultFileNames are looked up, in order, by Discover.
var DefaultFileNames = []string{
	".structmapper.yaml",
	"structmapper.yaml",
	".structmapper.yml",
	"structmapper.yml",
	".structmapper.toml",
	"structmapper.toml",
}

// Config is the decoded configuration.
type Config struct {
	Mapping MappingConfig `koanf:"mapping"`
	Log     LogConfig     `koanf:"log"`
}

// MappingConfig holds the global defaults every class map falls back to.
type MappingConfig struct {
	Wildcard       bool     `koanf:"wildcard"`
	StopOnErrors   bool     `koanf:"stop_on_errors"`
	MapNull        bool     `koanf:"map_null"`
	MapEmptyString bool     `koanf:"map_empty_string"`
	DateFormat     string   `koanf:"date_format"`
	BeanFactory    string   `koanf:"bean_factory"`
	Exclude        []string `koanf:"exclude"`
	NameMatching   string   `koanf:"name_matching"`
}

type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

func defaults() map[string]any {
	def := classmap.DefaultConfiguration()

	return map[string]any{
		"mapping.wildcard":         def.Wildcard,
		"mapping.stop_on_errors":   def.StopOnErrors,
		"mapping.map_null":         def.MapNull,
		"mapping.map_empty_string": def.MapEmptyString,
		"mapping.date_format":      def.DateFormat,
		"mapping.bean_factory":     def.BeanFactory,
		"mapping.exclude":          []string{},
		"mapping.name_matching":    string(def.NameMatching),
		"log.verbosity":            0,
	}
}

// Load reads the configuration. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}

		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Discover returns the first default config file present in dir, or "".
func Discover(dir string) string {
	for _, name := range DefaultFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Configuration converts the mapping section into the engine configuration.
func (c *Config) Configuration() classmap.Configuration {
	m := c.Mapping

	return classmap.Configuration{
		Wildcard:       m.Wildcard,
		StopOnErrors:   m.StopOnErrors,
		MapNull:        m.MapNull,
		MapEmptyString: m.MapEmptyString,
		DateFormat:     m.DateFormat,
		BeanFactory:    m.BeanFactory,
		Exclude:        append([]string(nil), m.Exclude...),
		NameMatching:   classmap.NameMatching(m.NameMatching),
	}
}

func (c *Config) validate() error {
	switch classmap.NameMatching(c.Mapping.NameMatching) {
	case classmap.MatchExact, classmap.MatchNormalized:
		return nil
	default:
		return fmt.Errorf("invalid mapping.name_matching %q: want %q or %q",
			c.Mapping.NameMatching, classmap.MatchExact, classmap.MatchNormalized)
	}
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// envKey maps STRUCTMAPPER_MAPPING_MAP_NULL to mapping.map_null.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}

	return section + "." + rest
}
