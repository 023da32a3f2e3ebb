// Package strategy implements roster partitioning strategies.
//
// A Strategy splits a validated roster into a fixed number of teams of
// approximately equal aggregate skill and size. Two variants exist: a
// deterministic greedy snake draft and an iterative pairwise-swap
// refinement. Both construct fresh teams per call and never mutate the
// input players.
package strategy

import (
	"context"
	"fmt"
	"sort"

	"github.com/matchday/teamdraft/internal/domain/model"
)

// Strategy names accepted by Get.
const (
	NameGreedy = "greedy"
	NameSwap   = "swap"
)

const minTeamCount = 2

// Strategy partitions a roster into teamCount teams. Implementations
// return ErrInvalidInput for an empty roster or teamCount < 2, before
// any computation and with no partial output. With shuffle enabled the
// result is randomized; see the concrete strategies for how.
type Strategy interface {
	Partition(ctx context.Context, roster []*model.Player, teamCount int, shuffle bool) ([]*model.Team, error)
}

// Get returns a Strategy by name. An unknown or empty name is an
// invalid input, same as a bad roster.
func Get(name string, opts ...Option) (Strategy, error) {
	switch name {
	case NameGreedy:
		return NewGreedyDraft(opts...), nil
	case NameSwap:
		return NewSwapRefinement(opts...), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidInput, name)
	}
}

// validate applies the shared precondition checks for both strategies.
func validate(roster []*model.Player, teamCount int) error {
	if len(roster) == 0 {
		return fmt.Errorf("%w: empty roster", ErrInvalidInput)
	}
	if teamCount < minTeamCount {
		return fmt.Errorf("%w: team count %d is below the minimum of %d", ErrInvalidInput, teamCount, minTeamCount)
	}
	return nil
}

// teamLabel produces sequential labels: "Team A" .. "Team Z", then
// "Team 27" onward.
func teamLabel(prefix string, i int) string {
	if i < 26 {
		return fmt.Sprintf("%s %c", prefix, rune('A'+i))
	}
	return fmt.Sprintf("%s %d", prefix, i+1)
}

// sortByRating orders players descending by overall, breaking ties on
// descending speed, technical, then stamina. Players equal on all four
// keys keep their input-relative order, so the sort is a total order
// for reproducibility.
func sortByRating(players []*model.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if a.Overall() != b.Overall() {
			return a.Overall() > b.Overall()
		}
		if a.Speed != b.Speed {
			return a.Speed > b.Speed
		}
		if a.Technical != b.Technical {
			return a.Technical > b.Technical
		}
		return a.Stamina > b.Stamina
	})
}
