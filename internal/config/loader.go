package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/matchday/teamdraft/internal/domain/strategy"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TEAMDRAFT_CONFIG is set
//  3. env (prefix TEAMDRAFT_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("TEAMDRAFT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: TEAMDRAFT_ADDR, TEAMDRAFT_QUEUE_SIZE, ...
	// Map keys like TEAMDRAFT_QUEUE_SIZE -> queue_size (flat keys);
	// underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("TEAMDRAFT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "teamdraft_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxIterations < 1:
		return fmt.Errorf("%w: max_iterations must be positive", ErrInvalidConfig)
	case c.ImprovementThreshold <= 0:
		return fmt.Errorf("%w: improvement_threshold must be positive", ErrInvalidConfig)
	case c.MaxRosterSize < 1:
		return fmt.Errorf("%w: max_roster_size must be positive", ErrInvalidConfig)
	}
	if _, err := strategy.Get(c.DefaultStrategy); err != nil {
		return fmt.Errorf("%w: default_strategy: %v", ErrInvalidConfig, err)
	}
	return nil
}
