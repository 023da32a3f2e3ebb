package strategy

import (
	"math/rand"

	"github.com/matchday/teamdraft/internal/domain/model"
)

// tierDivisor splits a sorted roster into roughly six tiers.
const tierDivisor = 6

// TierShuffle returns a permutation of sorted that randomizes order
// within contiguous skill tiers while preserving tier boundaries and
// tier order. Tiers are windows of max(2, len/6) players, so grossly
// similar players stay adjacent and the damage to balance is bounded.
func TierShuffle(rng *rand.Rand, sorted []*model.Player) []*model.Player {
	out := make([]*model.Player, len(sorted))
	copy(out, sorted)

	tierSize := len(sorted) / tierDivisor
	if tierSize < 2 {
		tierSize = 2
	}

	for start := 0; start < len(out); start += tierSize {
		end := start + tierSize
		if end > len(out) {
			end = len(out)
		}
		tier := out[start:end]
		rng.Shuffle(len(tier), func(i, j int) {
			tier[i], tier[j] = tier[j], tier[i]
		})
	}

	return out
}
