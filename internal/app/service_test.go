package service_test

import (
	"context"
	"testing"
	"time"

	service "github.com/okian/pulss/internal/app"
	"github.com/okian/pulss/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDashboard_New(t *testing.T) {
	Convey("Given a new dashboard with default options", t, func() {
		d := service.New()

		Convey("Then every sub-service is ready", func() {
			So(d.Clients(), ShouldNotBeNil)
			So(d.Tasks(), ShouldNotBeNil)
			So(d.Schedules(), ShouldNotBeNil)
			So(d.News(), ShouldNotBeNil)
			So(d.Suggestions(), ShouldNotBeNil)
			So(d.Chat(), ShouldNotBeNil)
			So(d.Board(), ShouldNotBeNil)
		})

		Convey("Then stats report defaults before start", func() {
			stats := d.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["fallbackEnabled"], ShouldEqual, true)
			So(stats["newsLimit"], ShouldEqual, service.DefaultNewsLimit)
		})
	})
}

func TestDashboard_StartStop(t *testing.T) {
	Convey("Given a dashboard whose API is down", t, func() {
		d, _ := offline(service.WithLogger(logger.Get()), service.WithNewsDefaultLimit(10))
		ctx := context.Background()

		Convey("When starting the dashboard", func() {
			err := d.Start(ctx)

			Convey("Then it starts anyway and reports its state", func() {
				So(err, ShouldBeNil)
				So(d.Ping(ctx), ShouldNotBeNil)
				stats := d.GetStats()
				So(stats["started"], ShouldEqual, true)
				So(stats["newsLimit"], ShouldEqual, 10)
				So(stats["openChats"], ShouldEqual, 0)
				So(stats["fallbackStore"], ShouldNotBeNil)
			})

			Convey("And starting twice is a no-op", func() {
				So(d.Start(ctx), ShouldBeNil)
			})
		})

		Convey("When stopping", func() {
			So(d.Start(ctx), ShouldBeNil)
			d.Stop()
			d.Stop()

			Convey("Then it is no longer started", func() {
				So(d.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestDashboard_Ping(t *testing.T) {
	Convey("Given a healthy API", t, func() {
		d, api := online(map[string]any{"GET /api/health": map[string]string{"status": "ok"}})

		So(d.Ping(context.Background()), ShouldBeNil)
		So(api.lastCall(), ShouldEqual, "GET /api/health")
	})
}

// hangingAPI stands in for a blackholed host: every call waits for its
// context to end.
type hangingAPI struct {
	deadline time.Time
	bounded  bool
}

func (h *hangingAPI) Do(ctx context.Context, _, _, _ string, _, _ any) error {
	h.deadline, h.bounded = ctx.Deadline()
	<-ctx.Done()
	return ctx.Err()
}

func TestDashboard_StartBoundsPing(t *testing.T) {
	Convey("Given an API host that never answers", t, func() {
		api := &hangingAPI{}
		d := service.New(service.WithAPI(api))

		Convey("When starting with an unbounded context", func() {
			began := time.Now()
			err := d.Start(context.Background())

			Convey("Then the ping gives up after the startup timeout", func() {
				So(err, ShouldBeNil)
				So(api.bounded, ShouldBeTrue)
				So(api.deadline, ShouldHappenOnOrBefore, began.Add(service.StartupPingTimeout+time.Second))
				So(time.Since(began), ShouldBeLessThan, service.StartupPingTimeout+time.Second)
				So(d.GetStats()["started"], ShouldEqual, true)
			})
		})
	})
}
