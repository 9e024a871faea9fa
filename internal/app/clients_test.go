package service_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	service "github.com/okian/pulss/internal/app"
	model "github.com/okian/pulss/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientService_Offline(t *testing.T) {
	ctx := context.Background()

	Convey("Given the API is unreachable", t, func() {
		d, _ := offline()
		clients := d.Clients()

		Convey("When listing clients", func() {
			list, err := clients.List(ctx)

			Convey("Then the two seed clients are served", func() {
				So(err, ShouldBeNil)
				So(list, ShouldHaveLength, 2)
				So(list[0].Name, ShouldEqual, "焼肉ドブン東京")
				So(list[1].Name, ShouldEqual, "Luminous Beauty Salon")
			})
		})

		Convey("When getting a client", func() {
			c, err := clients.Get(ctx, "2")
			So(err, ShouldBeNil)
			So(c, ShouldNotBeNil)
			So(c.Status, ShouldEqual, model.StatusPreContract)

			Convey("Then an unknown id is absent rather than an error", func() {
				missing, err := clients.Get(ctx, "999")
				So(err, ShouldBeNil)
				So(missing, ShouldBeNil)
			})
		})

		Convey("When creating a client without a phase", func() {
			c, err := clients.Create(ctx, model.CreateClient{Name: " Hotel Aoi ", Industry: "ホテル", Status: model.StatusPreContract})

			Convey("Then it is synthesized and listed", func() {
				So(err, ShouldBeNil)
				So(c.Name, ShouldEqual, "Hotel Aoi")
				So(c.Phase, ShouldEqual, model.PhaseHearing)
				So(*c.OnboardingProgress, ShouldEqual, 0.0)
				So(c.HasAlert, ShouldBeFalse)
				list, _ := clients.List(ctx)
				So(list, ShouldHaveLength, 3)
			})
		})

		Convey("When creating 1000 clients in one session", func() {
			seen := make(map[string]struct{}, 1000)
			for range 1000 {
				c, err := clients.Create(ctx, model.CreateClient{Name: "n", Industry: "i", Status: model.StatusContracted})
				So(err, ShouldBeNil)
				seen[c.ID] = struct{}{}
			}

			Convey("Then every id is unique", func() {
				So(seen, ShouldHaveLength, 1000)
			})
		})

		Convey("When the status is toggled twice", func() {
			before, _ := clients.Get(ctx, "1")
			once, err := clients.ToggleStatus(ctx, "1")
			So(err, ShouldBeNil)
			twice, err := clients.ToggleStatus(ctx, "1")
			So(err, ShouldBeNil)

			Convey("Then it returns to the original status", func() {
				So(once.Status, ShouldNotEqual, before.Status)
				So(twice.Status, ShouldEqual, before.Status)
			})
		})

		Convey("When the phase jumps backwards", func() {
			c, err := clients.UpdatePhase(ctx, "1", model.PhaseHearing)
			So(err, ShouldBeNil)
			So(c.Phase, ShouldEqual, model.PhaseHearing)
			So(c.Status, ShouldEqual, model.StatusContracted)
			So(c.UpdatedAt.Equal(testNow), ShouldBeTrue)
		})

		Convey("When updating a client absent from fallback data", func() {
			_, err := clients.UpdateStatus(ctx, "999", model.StatusContracted)
			So(err, ShouldNotBeNil)
			So(service.IsNotFound(err), ShouldBeTrue)

			_, err = clients.ToggleStatus(ctx, "999")
			So(service.IsNotFound(err), ShouldBeTrue)
		})

		Convey("When generating an intake link and submitting answers", func() {
			link, err := clients.GeneratePulseURL(ctx, "2")
			So(err, ShouldBeNil)
			So(strings.HasPrefix(link, "https://pulse.example.com/form?token="), ShouldBeTrue)
			So(link, ShouldEndWith, "&cid=2")

			u, err := url.Parse(link)
			So(err, ShouldBeNil)
			resp, err := clients.SubmitPulseResponse(ctx, model.PulseAnswers{
				Token:             u.Query().Get("token"),
				Problem:           "新規顧客の獲得",
				ReferenceAccounts: []string{"https://instagram.com/luminous"},
			})

			Convey("Then the client carries the new response", func() {
				So(err, ShouldBeNil)
				So(resp.ClientID, ShouldEqual, "2")
				c, _ := clients.Get(ctx, "2")
				So(c.LatestPulseResponse.Problem, ShouldEqual, "新規顧客の獲得")
			})

			Convey("Then an unknown token is not found", func() {
				_, err := clients.SubmitPulseResponse(ctx, model.PulseAnswers{Token: "nope"})
				So(service.IsNotFound(err), ShouldBeTrue)
			})
		})
	})
}

func TestClientService_Validation(t *testing.T) {
	ctx := context.Background()

	Convey("Given invalid client payloads", t, func() {
		d, _ := offline()
		clients := d.Clients()

		cases := []model.CreateClient{
			{Industry: "飲食", Status: model.StatusContracted},
			{Name: "x", Status: model.StatusContracted},
			{Name: "x", Industry: "飲食", Status: "signed"},
			{Name: "x", Industry: "飲食", Status: model.StatusContracted, Phase: "closing"},
		}

		Convey("Then each is rejected before any call", func() {
			for _, in := range cases {
				_, err := clients.Create(ctx, in)
				So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
			}
			_, err := clients.UpdateStatus(ctx, "1", "signed")
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
			_, err = clients.Get(ctx, " ")
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
			_, err = clients.SubmitPulseResponse(ctx, model.PulseAnswers{})
			So(errors.Is(err, service.ErrInvalidInput), ShouldBeTrue)
		})
	})
}

func TestClientService_FallbackDisabled(t *testing.T) {
	Convey("Given fallback is disabled", t, func() {
		d, _ := offline(service.WithFallbackEnabled(false))

		Convey("Then reads surface the transport error", func() {
			_, err := d.Clients().List(context.Background())
			So(errors.Is(err, errRefused), ShouldBeTrue)
		})
	})
}

func TestClientService_Online(t *testing.T) {
	ctx := context.Background()

	Convey("Given a live API", t, func() {
		d, api := online(map[string]any{
			"GET /api/clients":                 []map[string]any{{"id": "c-9", "name": "Live", "status": "contracted", "phase": "kickoff"}},
			"GET /api/clients/c-9":             map[string]any{"id": "c-9", "name": "Live", "status": "contracted", "phase": "kickoff"},
			"PUT /api/clients/c-9":             map[string]any{"id": "c-9", "name": "Live", "status": "pre_contract", "phase": "kickoff"},
			"POST /api/clients/c-9/pulse-link": map[string]any{"url": "https://pulss.app/p/abc", "token": "abc"},
			"POST /api/clients":                map[string]any{"id": "c-10", "name": "New", "status": "contracted", "phase": "hearing"},
		})

		Convey("Then reads return API data", func() {
			list, err := d.Clients().List(ctx)
			So(err, ShouldBeNil)
			So(list, ShouldHaveLength, 1)
			So(list[0].ID, ShouldEqual, "c-9")
		})

		Convey("Then toggle reads then writes the flipped status", func() {
			c, err := d.Clients().ToggleStatus(ctx, "c-9")
			So(err, ShouldBeNil)
			So(c.Status, ShouldEqual, model.StatusPreContract)
			So(api.lastCall(), ShouldEqual, "PUT /api/clients/c-9")
			patch, ok := api.lastBody().(model.ClientPatch)
			So(ok, ShouldBeTrue)
			So(*patch.Status, ShouldEqual, model.StatusPreContract)
		})

		Convey("Then the intake link comes from the API", func() {
			link, err := d.Clients().GeneratePulseURL(ctx, "c-9")
			So(err, ShouldBeNil)
			So(link, ShouldEqual, "https://pulss.app/p/abc")
		})

		Convey("Then create sends the defaulted phase", func() {
			_, err := d.Clients().Create(ctx, model.CreateClient{Name: "New", Industry: "美容", Status: model.StatusContracted})
			So(err, ShouldBeNil)
			sent, ok := api.lastBody().(model.CreateClient)
			So(ok, ShouldBeTrue)
			So(sent.Phase, ShouldEqual, model.PhaseHearing)
		})
	})
}
