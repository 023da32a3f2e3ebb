package strategy

import (
	"context"

	"github.com/google/uuid"

	"github.com/matchday/teamdraft/internal/domain/model"
)

// GreedyDraft distributes players in a single pass: sort descending by
// overall rating, then deal in snake order (0,1,...,n-1,n-1,...,1,0,...)
// so early picks do not stack the leading teams. With shuffle disabled
// the output is a pure function of the input; with shuffle enabled the
// tier shuffler randomizes order within skill tiers first.
type GreedyDraft struct {
	cfg settings
}

var _ Strategy = (*GreedyDraft)(nil)

// NewGreedyDraft creates a greedy snake-draft strategy.
func NewGreedyDraft(opts ...Option) *GreedyDraft {
	return &GreedyDraft{cfg: newSettings(opts...)}
}

// Partition splits roster into teamCount teams.
func (g *GreedyDraft) Partition(_ context.Context, roster []*model.Player, teamCount int, shuffle bool) ([]*model.Team, error) {
	if err := validate(roster, teamCount); err != nil {
		return nil, err
	}

	teams := make([]*model.Team, teamCount)
	for i := range teams {
		teams[i] = &model.Team{
			ID:   uuid.NewString(),
			Name: teamLabel(g.cfg.labelPrefix, i),
		}
	}

	ordered := make([]*model.Player, len(roster))
	copy(ordered, roster)
	sortByRating(ordered)
	if shuffle {
		ordered = TierShuffle(g.cfg.newRand(), ordered)
	}

	// Snake order: walk team indices forward then backward, reversing
	// direction at each end.
	idx, dir := 0, 1
	for _, p := range ordered {
		teams[idx].Players = append(teams[idx].Players, p)
		next := idx + dir
		if next < 0 || next >= teamCount {
			dir = -dir
			next = idx
		}
		idx = next
	}

	return teams, nil
}
