package strategy

import (
	"math/rand"
	"time"
)

// Default refinement configuration constants. The iteration cap bounds
// the swap search; the threshold rejects swaps whose improvement is
// within floating-point noise.
const (
	defaultMaxIterations        = 1000
	defaultImprovementThreshold = 0.0001
	defaultLabelPrefix          = "Team"
)

// settings holds configuration shared by both strategies. Each strategy
// instance owns its own rand.Rand, so concurrent balancing calls never
// race on a shared generator.
type settings struct {
	seed                 int64
	seeded               bool
	maxIterations        int
	improvementThreshold float64
	labelPrefix          string
}

// Option applies a configuration option to a strategy.
type Option func(*settings)

// WithSeed fixes the randomness seed so shuffled runs are reproducible.
func WithSeed(seed int64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithMaxIterations overrides the swap refinement iteration cap.
func WithMaxIterations(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxIterations = n
		}
	}
}

// WithImprovementThreshold overrides the minimum score improvement a
// swap must deliver to be accepted.
func WithImprovementThreshold(t float64) Option {
	return func(s *settings) {
		if t > 0 {
			s.improvementThreshold = t
		}
	}
}

// WithLabelPrefix sets the team label prefix, "Team" by default.
func WithLabelPrefix(prefix string) Option {
	return func(s *settings) {
		if prefix != "" {
			s.labelPrefix = prefix
		}
	}
}

func newSettings(opts ...Option) settings {
	s := settings{
		maxIterations:        defaultMaxIterations,
		improvementThreshold: defaultImprovementThreshold,
		labelPrefix:          defaultLabelPrefix,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func (s settings) newRand() *rand.Rand {
	seed := s.seed
	if !s.seeded {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // variety, not cryptography
}
