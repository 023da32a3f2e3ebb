// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) to build a Config with defaults.
// - Layer optional file and env overrides in Load.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"runtime"

	"github.com/matchday/teamdraft/internal/domain/strategy"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// JobQueueSize bounds the in-memory balance-job queue.
	JobQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of balancing workers.
	WorkerCount int `koanf:"worker_count"`

	// ShardCount configures the number of shards in the result store.
	ShardCount int `koanf:"shard_count"`

	// DefaultStrategy is used when a request names no strategy.
	DefaultStrategy string `koanf:"default_strategy"`

	// MaxIterations caps the swap-refinement scan loop.
	MaxIterations int `koanf:"max_iterations"`

	// ImprovementThreshold is the minimum score gain an accepted swap
	// must deliver.
	ImprovementThreshold float64 `koanf:"improvement_threshold"`

	// MaxRosterSize caps the number of players accepted per request.
	MaxRosterSize int `koanf:"max_roster_size"`

	// TeamLabelPrefix prefixes generated team names ("Team A", ...).
	TeamLabelPrefix string `koanf:"team_label_prefix"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8090",
		JobQueueSize:         10_000,
		WorkerCount:          runtime.NumCPU(),
		ShardCount:           8,
		DefaultStrategy:      strategy.NameGreedy,
		MaxIterations:        1000,
		ImprovementThreshold: 0.0001,
		MaxRosterSize:        10_000,
		TeamLabelPrefix:      "Team",
	}
}
