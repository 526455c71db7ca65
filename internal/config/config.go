// SPDX-License-Identifier: MIT

// Package config loads CLI settings.
//
// Precedence, highest first: explicitly set flags, COACHTREE_ environment
// variables, the YAML config file, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/coachtree/filter"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "COACHTREE_"

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "coachtree.yaml"

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// DefaultCacheSize is the default ancestry cache capacity.
const DefaultCacheSize = 256

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every CLI setting.
type Config struct {
	Input         string `koanf:"input"`
	SeniorityFile string `koanf:"seniority_file"`
	Policy        string `koanf:"policy"`
	AsOf          int    `koanf:"as_of"`
	Subject       string `koanf:"subject"`
	SubjectYear   int    `koanf:"subject_year"`
	MaxFanOut     int    `koanf:"max_fan_out"`
	MaxDepth      int    `koanf:"max_depth"`
	CacheSize     int    `koanf:"cache_size"`
	Output        string `koanf:"output"`
	Verbose       bool   `koanf:"verbose"`
	MetricsFile   string `koanf:"metrics_file"`

	// File is the config file actually read, empty when none was.
	File string `koanf:"-"`
}

// FilterPolicy returns the parsed Policy.
func (c *Config) FilterPolicy() filter.Policy {
	p, _ := filter.ParsePolicy(c.Policy)
	return p
}

func defaults(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"policy":      "strict",
		"as_of":       now.Year(),
		"max_fan_out": 0,
		"max_depth":   0,
		"cache_size":  DefaultCacheSize,
		"output":      OutputTable,
		"verbose":     false,
	}
}

// Load reads configuration. cfgFile may be empty, in which case DefaultFile
// is used when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(time.Now()), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	// COACHTREE_MAX_FAN_OUT -> max_fan_out
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.File = path
	if cfg.SubjectYear == 0 {
		cfg.SubjectYear = cfg.AsOf
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := filter.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %s or %s, got %q", ErrInvalidConfig, OutputTable, OutputJSON, c.Output)
	}
	for name, v := range map[string]int{"max_fan_out": c.MaxFanOut, "max_depth": c.MaxDepth, "cache_size": c.CacheSize} {
		if v < 0 {
			return fmt.Errorf("%w: %s cannot be negative (%d)", ErrInvalidConfig, name, v)
		}
	}

	return nil
}
