package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	service "github.com/okian/pulss/internal/app"
	model "github.com/okian/pulss/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func meeting() model.ScheduleInput {
	return model.ScheduleInput{
		Title: "定例",
		Start: model.At(testNow),
		End:   model.At(testNow.Add(time.Hour)),
		Type:  model.EventMeeting,
		Team:  model.TeamSales,
	}
}

func TestScheduleService_TransportFailure(t *testing.T) {
	ctx := context.Background()

	Convey("Given the API is unreachable", t, func() {
		d, _ := offline()
		schedules := d.Schedules()

		Convey("When listing events", func() {
			events, err := schedules.List(ctx, model.ScheduleQuery{Date: "2025-06-01", Team: "sales"})

			Convey("Then an empty list comes back without error", func() {
				So(err, ShouldBeNil)
				So(events, ShouldNotBeNil)
				So(events, ShouldBeEmpty)
			})
		})

		Convey("When writing events", func() {
			_, createErr := schedules.Create(ctx, meeting())
			_, updateErr := schedules.Update(ctx, "e1", meeting())
			deleteErr := schedules.Delete(ctx, "e1")

			Convey("Then every write reports the failure", func() {
				So(errors.Is(createErr, errRefused), ShouldBeTrue)
				So(errors.Is(updateErr, errRefused), ShouldBeTrue)
				So(errors.Is(deleteErr, errRefused), ShouldBeTrue)
			})
		})
	})
}

func TestScheduleService_Online(t *testing.T) {
	ctx := context.Background()

	Convey("Given a live API", t, func() {
		event := map[string]any{"id": "e1", "title": "定例", "start": "2025-06-01T09:00:00", "end": "2025-06-01T10:00:00", "type": "meeting", "team": "sales"}
		d, api := online(map[string]any{
			"GET /api/schedules?date=2025-06-01&team=sales": []map[string]any{event},
			"GET /api/schedules":                            []map[string]any{event, event},
			"POST /api/schedules":                           event,
			"PUT /api/schedules/e1":                         event,
			"DELETE /api/schedules/e1":                      map[string]any{},
		})

		Convey("Then query parameters are forwarded", func() {
			events, err := d.Schedules().List(ctx, model.ScheduleQuery{Date: "2025-06-01", Team: "sales"})
			So(err, ShouldBeNil)
			So(events, ShouldHaveLength, 1)
			So(events[0].Start.Equal(testNow), ShouldBeTrue)

			all, err := d.Schedules().List(ctx, model.ScheduleQuery{})
			So(err, ShouldBeNil)
			So(all, ShouldHaveLength, 2)
		})

		Convey("Then CRUD round-trips", func() {
			created, err := d.Schedules().Create(ctx, meeting())
			So(err, ShouldBeNil)
			So(created.ID, ShouldEqual, "e1")

			_, err = d.Schedules().Update(ctx, "e1", meeting())
			So(err, ShouldBeNil)

			So(d.Schedules().Delete(ctx, "e1"), ShouldBeNil)
			So(api.lastCall(), ShouldEqual, "DELETE /api/schedules/e1")
		})

		Convey("Then a missing event is not found", func() {
			So(service.IsNotFound(d.Schedules().Delete(ctx, "nope")), ShouldBeTrue)
		})

		Convey("Then an end before start is still accepted", func() {
			in := meeting()
			in.End = model.At(testNow.Add(-time.Hour))
			_, err := d.Schedules().Create(ctx, in)
			So(err, ShouldBeNil)
		})

		Convey("Then incomplete payloads are rejected locally", func() {
			in := meeting()
			in.Team = "marketing"
			_, err := d.Schedules().Create(ctx, in)
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
			_, err = d.Schedules().Update(ctx, "e1", model.ScheduleInput{})
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
		})
	})
}
