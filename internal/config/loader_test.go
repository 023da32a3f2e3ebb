package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

var configEnvVars = []string{
	"TEAMDRAFT_CONFIG",
	"TEAMDRAFT_LOG_LEVEL",
	"TEAMDRAFT_ADDR",
	"TEAMDRAFT_QUEUE_SIZE",
	"TEAMDRAFT_WORKER_COUNT",
	"TEAMDRAFT_SHARD_COUNT",
	"TEAMDRAFT_DEFAULT_STRATEGY",
	"TEAMDRAFT_MAX_ITERATIONS",
	"TEAMDRAFT_IMPROVEMENT_THRESHOLD",
	"TEAMDRAFT_MAX_ROSTER_SIZE",
	"TEAMDRAFT_TEAM_LABEL_PREFIX",
}

func clearConfigEnvVars(t *testing.T) {
	t.Helper()
	for _, v := range configEnvVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnvVars(t)

	convey.Convey("Given no overrides", t, func() {
		cfg, err := Load(context.Background())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then defaults apply", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8090")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.JobQueueSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.ShardCount, convey.ShouldEqual, 8)
			convey.So(cfg.DefaultStrategy, convey.ShouldEqual, "greedy")
			convey.So(cfg.MaxIterations, convey.ShouldEqual, 1000)
			convey.So(cfg.ImprovementThreshold, convey.ShouldEqual, 0.0001)
			convey.So(cfg.MaxRosterSize, convey.ShouldEqual, 10_000)
			convey.So(cfg.TeamLabelPrefix, convey.ShouldEqual, "Team")
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	clearConfigEnvVars(t)
	t.Setenv("TEAMDRAFT_ADDR", ":9100")
	t.Setenv("TEAMDRAFT_QUEUE_SIZE", "32")
	t.Setenv("TEAMDRAFT_DEFAULT_STRATEGY", "swap")
	t.Setenv("TEAMDRAFT_LOG_LEVEL", "debug")

	convey.Convey("Given env overrides", t, func() {
		cfg, err := Load(context.Background())
		convey.So(err, convey.ShouldBeNil)

		convey.So(cfg.Addr, convey.ShouldEqual, ":9100")
		convey.So(cfg.JobQueueSize, convey.ShouldEqual, 32)
		convey.So(cfg.DefaultStrategy, convey.ShouldEqual, "swap")
		convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")

		convey.Convey("And untouched keys keep their defaults", func() {
			convey.So(cfg.MaxIterations, convey.ShouldEqual, 1000)
		})
	})
}

func TestLoadFile(t *testing.T) {
	clearConfigEnvVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "teamdraft.yaml")
	yaml := "addr: \":7000\"\nworker_count: 3\nteam_label_prefix: \"Squad\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("TEAMDRAFT_CONFIG", path)

	convey.Convey("Given a YAML config file", t, func() {
		cfg, err := Load(context.Background())
		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":7000")
		convey.So(cfg.WorkerCount, convey.ShouldEqual, 3)
		convey.So(cfg.TeamLabelPrefix, convey.ShouldEqual, "Squad")
	})

	convey.Convey("Given env on top of the file", t, func() {
		t.Setenv("TEAMDRAFT_ADDR", ":7100")
		cfg, err := Load(context.Background())
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("Then env wins", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":7100")
			convey.So(cfg.WorkerCount, convey.ShouldEqual, 3)
		})
	})
}

func TestLoadErrors(t *testing.T) {
	clearConfigEnvVars(t)

	convey.Convey("Given a missing config file", t, func() {
		t.Setenv("TEAMDRAFT_CONFIG", "/no/such/file.yaml")
		_, err := Load(context.Background())
		convey.So(err, convey.ShouldWrap, ErrLoadConfig)
	})

	convey.Convey("Given an unknown default strategy", t, func() {
		clearConfigEnvVars(t)
		t.Setenv("TEAMDRAFT_DEFAULT_STRATEGY", "genetic")
		_, err := Load(context.Background())
		convey.So(err, convey.ShouldWrap, ErrInvalidConfig)
	})

	convey.Convey("Given a non-positive iteration cap", t, func() {
		clearConfigEnvVars(t)
		t.Setenv("TEAMDRAFT_MAX_ITERATIONS", "0")
		_, err := Load(context.Background())
		convey.So(err, convey.ShouldWrap, ErrInvalidConfig)
	})

	convey.Convey("Given a non-positive improvement threshold", t, func() {
		clearConfigEnvVars(t)
		t.Setenv("TEAMDRAFT_IMPROVEMENT_THRESHOLD", "-1")
		_, err := Load(context.Background())
		convey.So(err, convey.ShouldWrap, ErrInvalidConfig)
	})
}
