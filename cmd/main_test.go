package main

import (
	"context"
	"os"
	"testing"

	app "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/config"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/synth"
	"github.com/okian/scout/pkg/logger"
	"github.com/okian/scout/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

type noopFetcher struct{}

func (noopFetcher) FetchRole(_ context.Context, _ model.RoleType, _ int) ([]model.Candidate, error) {
	return nil, nil
}

type noopExporter struct{}

func (noopExporter) Write(_ model.Profile) error { return nil }

func TestMainComponents(t *testing.T) {
	_ = logger.Init()

	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("SCOUT_TARGET_PER_ROLE", "5")
			_ = os.Setenv("SCOUT_OUTPUT_PATH", "out.csv")
			defer func() {
				_ = os.Unsetenv("SCOUT_TARGET_PER_ROLE")
				_ = os.Unsetenv("SCOUT_OUTPUT_PATH")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.TargetPerRole, convey.ShouldEqual, 5)
				convey.So(cfg.OutputPath, convey.ShouldEqual, "out.csv")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc, err := app.New(noopFetcher{}, noopExporter{})
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with synth fallback wired", func() {
				gen := synth.New(synth.WithSeed(1))
				svc, err := app.New(noopFetcher{}, noopExporter{},
					app.WithTargetPerRole(5),
					app.WithSynthFallback(gen, 10),
				)
				convey.So(err, convey.ShouldBeNil)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("SCOUT_OUTPUT_PATH", "")
			defer func() { _ = os.Unsetenv("SCOUT_OUTPUT_PATH") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
