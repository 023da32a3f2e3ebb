package balance_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchday/teamdraft/internal/domain/balance"
	"github.com/matchday/teamdraft/internal/domain/model"
)

func uniformPlayer(id string, rating int) *model.Player {
	return &model.Player{ID: id, Name: "Player " + id, Speed: rating, Technical: rating, Stamina: rating}
}

func team(name string, players ...*model.Player) *model.Team {
	return &model.Team{ID: name, Name: name, Players: players}
}

func TestScore(t *testing.T) {
	Convey("Given the balance scorer", t, func() {
		Convey("When the team set is empty", func() {
			So(balance.Score(nil), ShouldEqual, 0)
			So(balance.Score([]*model.Team{}), ShouldEqual, 0)
		})

		Convey("When two teams are perfectly balanced", func() {
			// Overall values 3,3,2,2,1,1 split so each team holds one of
			// each: both means are 2.0 and sizes match.
			a := team("Team A", uniformPlayer("p0", 3), uniformPlayer("p3", 2), uniformPlayer("p4", 1))
			b := team("Team B", uniformPlayer("p1", 3), uniformPlayer("p2", 2), uniformPlayer("p5", 1))

			Convey("Then the score is exactly zero", func() {
				So(balance.Score([]*model.Team{a, b}), ShouldAlmostEqual, 0)
			})
		})

		Convey("When only the team sizes differ", func() {
			// Five identical players split 3/2: every attribute mean is
			// equal, so the score is the size-variance floor:
			// var(size) = ((3-2.5)^2+(2-2.5)^2)/2 = 0.25, weighted 1.5.
			a := team("Team A", uniformPlayer("p0", 2), uniformPlayer("p1", 2), uniformPlayer("p2", 2))
			b := team("Team B", uniformPlayer("p3", 2), uniformPlayer("p4", 2))

			Convey("Then the score is the weighted size variance", func() {
				So(balance.Score([]*model.Team{a, b}), ShouldAlmostEqual, 0.375)
			})
		})

		Convey("When skill means differ", func() {
			// One team of a top-rated player, one of a bottom-rated
			// player: every variance is 1, sizes are equal.
			// score = 2*1 + 1 + 1 + 1 + 1.5*0 = 5.
			a := team("Team A", uniformPlayer("p0", 3))
			b := team("Team B", uniformPlayer("p1", 1))

			Convey("Then the weighted sum is exact", func() {
				So(balance.Score([]*model.Team{a, b}), ShouldAlmostEqual, 5.0)
			})
		})

		Convey("When scoring arbitrary partitions", func() {
			teams := []*model.Team{
				team("Team A", uniformPlayer("p0", 3), uniformPlayer("p1", 1)),
				team("Team B", uniformPlayer("p2", 2)),
				team("Team C", uniformPlayer("p3", 2), uniformPlayer("p4", 3), uniformPlayer("p5", 1)),
			}

			Convey("Then the score is non-negative and deterministic", func() {
				first := balance.Score(teams)
				So(first, ShouldBeGreaterThanOrEqualTo, 0)
				So(balance.Score(teams), ShouldAlmostEqual, first)
			})
		})
	})
}
