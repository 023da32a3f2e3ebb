package model_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchday/teamdraft/internal/domain/model"
)

func TestPlayerOverall(t *testing.T) {
	Convey("Given rated players", t, func() {
		Convey("Then overall is the mean of the three attributes", func() {
			p := &model.Player{ID: "p1", Name: "Alpha", Speed: 3, Technical: 2, Stamina: 1}
			So(p.Overall(), ShouldAlmostEqual, 2.0)
		})

		Convey("Then uniform attributes yield that value exactly", func() {
			p := &model.Player{ID: "p2", Name: "Beta", Speed: 3, Technical: 3, Stamina: 3}
			So(p.Overall(), ShouldAlmostEqual, 3.0)
		})

		Convey("Then a mixed rating is not truncated to an integer", func() {
			p := &model.Player{ID: "p3", Name: "Gamma", Speed: 2, Technical: 2, Stamina: 1}
			So(p.Overall(), ShouldAlmostEqual, 5.0/3.0)
		})
	})
}

func TestTeamStatistics(t *testing.T) {
	Convey("Given a team", t, func() {
		team := &model.Team{ID: "t1", Name: "Team A"}

		Convey("When it has no members", func() {
			Convey("Then every mean is zero and size is zero", func() {
				So(team.Size(), ShouldEqual, 0)
				So(team.MeanSpeed(), ShouldEqual, 0)
				So(team.MeanTechnical(), ShouldEqual, 0)
				So(team.MeanStamina(), ShouldEqual, 0)
				So(team.MeanOverall(), ShouldEqual, 0)
			})
		})

		Convey("When members are added", func() {
			team.Players = append(team.Players,
				&model.Player{ID: "p1", Name: "Alpha", Speed: 3, Technical: 3, Stamina: 3},
				&model.Player{ID: "p2", Name: "Beta", Speed: 1, Technical: 1, Stamina: 1},
			)

			Convey("Then statistics are recomputed from the current members", func() {
				So(team.Size(), ShouldEqual, 2)
				So(team.MeanSpeed(), ShouldAlmostEqual, 2.0)
				So(team.MeanTechnical(), ShouldAlmostEqual, 2.0)
				So(team.MeanStamina(), ShouldAlmostEqual, 2.0)
				So(team.MeanOverall(), ShouldAlmostEqual, 2.0)
			})

			Convey("And removing a member is reflected immediately", func() {
				team.Players = team.Players[:1]
				So(team.Size(), ShouldEqual, 1)
				So(team.MeanOverall(), ShouldAlmostEqual, 3.0)
			})
		})
	})
}
