package strategy_test

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchday/teamdraft/internal/domain/model"
	"github.com/matchday/teamdraft/internal/domain/strategy"
)

func idsOf(players []*model.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.ID
	}
	return out
}

func idSet(players []*model.Player) map[string]bool {
	out := make(map[string]bool, len(players))
	for _, p := range players {
		out[p.ID] = true
	}
	return out
}

func TestTierShuffle(t *testing.T) {
	Convey("Given a skill-sorted roster", t, func() {
		sorted := make([]*model.Player, 0, 12)
		for i := 0; i < 12; i++ {
			rating := 3 - i/4 // 3,3,3,3,2,2,2,2,1,1,1,1
			sorted = append(sorted, uniformPlayer(string(rune('a'+i)), rating))
		}

		Convey("When shuffling with a fixed seed", func() {
			out := strategy.TierShuffle(rand.New(rand.NewSource(1)), sorted)

			Convey("Then the result is a permutation of the input", func() {
				So(out, ShouldHaveLength, len(sorted))
				So(idSet(out), ShouldResemble, idSet(sorted))
			})

			Convey("Then tier boundaries are preserved", func() {
				// 12 players / 6 = tier size 2: each window of two keeps
				// its own members, possibly reordered.
				for start := 0; start < len(sorted); start += 2 {
					So(idSet(out[start:start+2]), ShouldResemble, idSet(sorted[start:start+2]))
				}
			})

			Convey("Then the input slice is untouched", func() {
				So(idsOf(sorted)[0], ShouldEqual, "a")
				So(idsOf(sorted)[11], ShouldEqual, "l")
			})

			Convey("And the same seed reproduces the same order", func() {
				again := strategy.TierShuffle(rand.New(rand.NewSource(1)), sorted)
				So(idsOf(again), ShouldResemble, idsOf(out))
			})
		})

		Convey("When the roster is smaller than one tier", func() {
			pair := sorted[:2]
			out := strategy.TierShuffle(rand.New(rand.NewSource(3)), pair)

			Convey("Then the pair stays within its single tier", func() {
				So(out, ShouldHaveLength, 2)
				So(idSet(out), ShouldResemble, idSet(pair))
			})
		})

		Convey("When the roster does not divide evenly into tiers", func() {
			odd := sorted[:9] // tier size max(2, 9/6) = 2, last tier of one
			out := strategy.TierShuffle(rand.New(rand.NewSource(5)), odd)

			Convey("Then the trailing short tier is preserved", func() {
				So(out, ShouldHaveLength, 9)
				So(out[8].ID, ShouldEqual, odd[8].ID)
			})
		})

		Convey("When a single player is shuffled", func() {
			out := strategy.TierShuffle(rand.New(rand.NewSource(9)), sorted[:1])
			So(idsOf(out), ShouldResemble, []string{"a"})
		})
	})
}
