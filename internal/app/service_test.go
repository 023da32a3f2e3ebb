package app

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchday/teamdraft/internal/adapters/repository"
	"github.com/matchday/teamdraft/internal/domain/model"
	"github.com/matchday/teamdraft/internal/domain/strategy"
	"github.com/matchday/teamdraft/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	m.Run()
}

func evenRoster(n int) []*model.Player {
	out := make([]*model.Player, n)
	for i := range out {
		out[i] = &model.Player{
			ID:        "p" + string(rune('a'+i)),
			Name:      "Player " + string(rune('A'+i)),
			Speed:     2,
			Technical: 2,
			Stamina:   2,
		}
	}
	return out
}

func awaitResult(ctx context.Context, s *Service, jobID string) (repository.Result, error) {
	deadline := time.Now().Add(2 * time.Second)
	for {
		res, err := s.Result(ctx, jobID)
		if err == nil {
			return res, nil
		}
		if time.Now().After(deadline) {
			return repository.Result{}, err
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestService(t *testing.T) {
	Convey("Given a started balancing service", t, func() {
		ctx := context.Background()
		s := New(
			WithWorkerCount(2),
			WithQueueSize(16),
			WithShardCount(4),
		)
		So(s.Start(ctx), ShouldBeNil)
		Reset(s.Stop)

		Convey("When balancing synchronously", func() {
			res, err := s.Balance(ctx, model.Job{
				Roster:    evenRoster(4),
				TeamCount: 2,
				Strategy:  strategy.NameGreedy,
			})
			So(err, ShouldBeNil)

			Convey("Then the result carries two balanced teams", func() {
				So(res.JobID, ShouldNotBeEmpty)
				So(res.Strategy, ShouldEqual, strategy.NameGreedy)
				So(res.Teams, ShouldHaveLength, 2)
				So(res.Score, ShouldAlmostEqual, 0, 1e-9)
			})

			Convey("Then the result is retrievable by job id", func() {
				stored, err := s.Result(ctx, res.JobID)
				So(err, ShouldBeNil)
				So(stored.JobID, ShouldEqual, res.JobID)
			})
		})

		Convey("When no strategy is named", func() {
			res, err := s.Balance(ctx, model.Job{Roster: evenRoster(4), TeamCount: 2})
			So(err, ShouldBeNil)
			So(res.Strategy, ShouldEqual, strategy.NameGreedy)
		})

		Convey("When the strategy is unknown", func() {
			_, err := s.Balance(ctx, model.Job{
				Roster:    evenRoster(4),
				TeamCount: 2,
				Strategy:  "genetic",
			})
			So(err, ShouldWrap, strategy.ErrInvalidInput)
		})

		Convey("When the roster is empty", func() {
			_, err := s.Balance(ctx, model.Job{TeamCount: 2})
			So(err, ShouldWrap, strategy.ErrInvalidInput)
		})

		Convey("When submitting a job asynchronously", func() {
			jobID, ok := s.Submit(ctx, model.Job{
				Roster:    evenRoster(6),
				TeamCount: 3,
				Strategy:  strategy.NameSwap,
			})
			So(ok, ShouldBeTrue)
			So(jobID, ShouldNotBeEmpty)

			Convey("Then the result eventually appears", func() {
				res, err := awaitResult(ctx, s, jobID)
				So(err, ShouldBeNil)
				So(res.JobID, ShouldEqual, jobID)
				So(res.Teams, ShouldHaveLength, 3)
			})
		})

		Convey("When a seed is supplied", func() {
			seed := int64(42)
			job := model.Job{
				Roster:    evenRoster(8),
				TeamCount: 2,
				Strategy:  strategy.NameSwap,
				Shuffle:   true,
				Seed:      &seed,
			}
			first, err := s.Balance(ctx, job)
			So(err, ShouldBeNil)
			second, err := s.Balance(ctx, job)
			So(err, ShouldBeNil)

			Convey("Then repeated runs agree", func() {
				So(second.Score, ShouldAlmostEqual, first.Score, 1e-12)
				for i := range first.Teams {
					So(len(second.Teams[i].Players), ShouldEqual, len(first.Teams[i].Players))
				}
			})
		})

		Convey("When reading stats", func() {
			stats := s.GetStats()
			So(stats["started"], ShouldBeTrue)
			So(stats["worker_count"], ShouldEqual, 2)
			So(stats["queue_capacity"], ShouldEqual, 16)
			So(stats, ShouldContainKey, "uptime_seconds")
			So(stats, ShouldContainKey, "results_stored")
		})

		Convey("When starting twice", func() {
			So(s.Start(ctx), ShouldBeNil)
		})
	})

	Convey("Given a service that was never started", t, func() {
		s := New()

		Convey("Then stats report it as stopped", func() {
			stats := s.GetStats()
			So(stats["started"], ShouldBeFalse)
			So(stats, ShouldNotContainKey, "uptime_seconds")
		})

		Convey("Then stopping is a no-op", func() {
			So(s.Stop, ShouldNotPanic)
		})
	})
}
