package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/pulss/internal/adapters/upstream"
	"github.com/okian/pulss/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.APIBaseURL, convey.ShouldEqual, "http://3.107.236.7:8000")
			convey.So(cfg.APIBaseURL, convey.ShouldEqual, upstream.New("").BaseURL())
			convey.So(cfg.RequestTimeout(), convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.FallbackEnabled, convey.ShouldBeTrue)
			convey.So(cfg.NewsDefaultLimit, convey.ShouldEqual, 30)
			convey.So(cfg.ShutdownTimeout(), convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one bad field each", t, func() {
		mutations := []struct {
			name   string
			mutate func(*config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = " " }},
			{"relative base url", func(c *config.Config) { c.APIBaseURL = "/api" }},
			{"ftp base url", func(c *config.Config) { c.APIBaseURL = "ftp://host" }},
			{"negative timeout", func(c *config.Config) { c.RequestTimeoutMS = -1 }},
			{"zero news limit", func(c *config.Config) { c.NewsDefaultLimit = 0 }},
			{"zero shutdown", func(c *config.Config) { c.ShutdownTimeoutMS = 0 }},
		}

		for _, m := range mutations {
			convey.Convey("Then "+m.name+" is rejected", func() {
				cfg := config.New()
				m.mutate(cfg)
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
