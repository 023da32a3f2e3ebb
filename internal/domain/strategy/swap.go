package strategy

import (
	"context"

	"github.com/google/uuid"

	"github.com/matchday/teamdraft/internal/domain/balance"
	"github.com/matchday/teamdraft/internal/domain/model"
)

// SwapRefinement distributes players round-robin and then improves the
// partition with a first-improvement pairwise hill-climb: scan team
// pairs (i, j) with i < j, tentatively swap one member of each, and
// accept the first swap that beats the current score by more than the
// improvement threshold, restarting the scan after every acceptance.
// A scan with no accepted swap is a local optimum and ends the search.
//
// This is deliberately first-improvement, not best-improvement; the two
// produce different partitions, so changing the policy changes
// observable output. There is no escape from local optima — result
// quality depends on the initial ordering, which is what the shuffle
// flag is for.
type SwapRefinement struct {
	cfg settings

	// passes counts scans executed by the most recent Partition call.
	// Strategy instances are built per job, so this is not shared state.
	passes int
}

var _ Strategy = (*SwapRefinement)(nil)

// NewSwapRefinement creates a swap-refinement strategy.
func NewSwapRefinement(opts ...Option) *SwapRefinement {
	return &SwapRefinement{cfg: newSettings(opts...)}
}

// MaxIterations reports the configured scan cap; exposed for
// observability wiring.
func (s *SwapRefinement) MaxIterations() int {
	return s.cfg.maxIterations
}

// Passes reports how many scans the last Partition call executed.
func (s *SwapRefinement) Passes() int {
	return s.passes
}

// Partition splits roster into teamCount teams and refines the split.
// The context is checked once per scan; cancellation aborts the search
// with ctx.Err() and no partial result.
func (s *SwapRefinement) Partition(ctx context.Context, roster []*model.Player, teamCount int, shuffle bool) ([]*model.Team, error) {
	if err := validate(roster, teamCount); err != nil {
		return nil, err
	}

	ordered := make([]*model.Player, len(roster))
	copy(ordered, roster)
	if shuffle {
		rng := s.cfg.newRand()
		rng.Shuffle(len(ordered), func(i, j int) {
			ordered[i], ordered[j] = ordered[j], ordered[i]
		})
	} else {
		sortByRating(ordered)
	}

	teams := make([]*model.Team, teamCount)
	for i := range teams {
		teams[i] = &model.Team{
			ID:   uuid.NewString(),
			Name: teamLabel(s.cfg.labelPrefix, i),
		}
	}

	// Membership lives in an index array for O(1) swap and revert; the
	// team slices are rebuilt from it whenever a score is needed.
	teamOf := make([]int, len(ordered))
	for i := range ordered {
		teamOf[i] = i % teamCount
	}

	rebuild := func() {
		for _, t := range teams {
			t.Players = t.Players[:0]
		}
		for i, p := range ordered {
			t := teams[teamOf[i]]
			t.Players = append(t.Players, p)
		}
	}

	rebuild()
	current := balance.Score(teams)

	s.passes = 0
	for pass := 0; pass < s.cfg.maxIterations; pass++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		s.passes++
		if !s.scan(teams, teamOf, teamCount, rebuild, &current) {
			break
		}
	}

	rebuild()
	return teams, nil
}

// scan walks every team pair and member pair once, in order, and
// accepts the first swap that improves the score beyond the threshold.
// It reports whether a swap was accepted; acceptance means the caller
// restarts the scan from the first team pair.
func (s *SwapRefinement) scan(teams []*model.Team, teamOf []int, teamCount int, rebuild func(), current *float64) bool {
	for i := 0; i < teamCount; i++ {
		for j := i + 1; j < teamCount; j++ {
			for a := range teamOf {
				if teamOf[a] != i {
					continue
				}
				for b := range teamOf {
					if teamOf[b] != j {
						continue
					}

					teamOf[a], teamOf[b] = teamOf[b], teamOf[a]
					rebuild()
					next := balance.Score(teams)
					if next < *current-s.cfg.improvementThreshold {
						*current = next
						return true
					}
					teamOf[a], teamOf[b] = teamOf[b], teamOf[a]
				}
			}
		}
	}
	return false
}
