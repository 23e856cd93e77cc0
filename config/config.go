package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/kitchen/core/dispatch"
	"github.com/kilianp07/kitchen/core/pickup"
	"github.com/kilianp07/kitchen/core/storage"
	"github.com/kilianp07/kitchen/infra/export"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Storage  storage.Config  `json:"storage"`
	Dispatch dispatch.Config `json:"dispatch"`
	Pickup   pickup.Config   `json:"pickup"`
	Run      RunConfig       `json:"run"`
	Logging  LoggingConfig   `json:"logging"`
	Output   export.Config   `json:"output"`
}

// RunConfig holds per-run settings.
type RunConfig struct {
	// Seed drives the pickup dwell randomness. Zero picks a time-based seed.
	Seed int64 `json:"seed"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults applies the defaults of every section.
func (c *Config) SetDefaults() {
	c.Storage.SetDefaults()
	c.Dispatch.SetDefaults()
	c.Pickup.SetDefaults()
	c.Logging.SetDefaults()
	c.Output.SetDefaults()
}

// Validate checks every section.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"storage", c.Storage.Validate},
		{"dispatch", c.Dispatch.Validate},
		{"pickup", c.Pickup.Validate},
		{"logging", c.Logging.Validate},
		{"output", c.Output.Validate},
	}
	for _, chk := range checks {
		if err := chk.fn(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, chk.name, err)
		}
	}
	return nil
}

// Load reads the configuration file at path, if any, then applies K_
// environment overrides, defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
