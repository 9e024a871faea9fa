package api_test

import (
	"net/http"
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLeadRoutes(t *testing.T) {
	Convey("Given the BFF in front of a Pulss API", t, func() {
		h := newHarness(t)

		Convey("When the API is up", func() {
			rec := h.do(http.MethodGet, "/api/leads", "")

			Convey("Then the live pipeline is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				list := decode[[]map[string]any](rec)
				So(len(list), ShouldEqual, 1)
				So(list[0]["company_name"], ShouldEqual, "Server Lead")
			})
		})

		Convey("When the API is down", func() {
			h.up.Store(false)

			Convey("Then the seeded leads are served", func() {
				rec := h.do(http.MethodGet, "/api/leads", "")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(len(decode[[]map[string]any](rec)), ShouldEqual, 2)
			})

			Convey("Then create requires a company name and defaults the status", func() {
				So(h.do(http.MethodPost, "/api/leads", `{"industry":"飲食"}`).Code, ShouldEqual, http.StatusBadRequest)

				rec := h.do(http.MethodPost, "/api/leads", `{"company_name":"Cafe Sora","expected_mrr":120000}`)
				So(rec.Code, ShouldEqual, http.StatusCreated)
				l := decode[map[string]any](rec)
				So(l["status"], ShouldEqual, "new")
				So(l["expected_mrr"], ShouldEqual, 120000.0)
			})

			Convey("Then a status change is applied and an unknown lead is 404", func() {
				rec := h.do(http.MethodPut, "/api/leads/l1", `{"status":"meeting_done"}`)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](rec)["status"], ShouldEqual, "meeting_done")

				So(h.do(http.MethodPut, "/api/leads/l1", `{"status":"meeting"}`).Code, ShouldEqual, http.StatusBadRequest)
				So(h.do(http.MethodPut, "/api/leads/nope", `{"memo":"x"}`).Code, ShouldEqual, http.StatusNotFound)
			})

			Convey("Then contacts are logged and listed", func() {
				rec := h.do(http.MethodPost, "/api/leads/l1/contacts", `{"content":"初回MTG日程確定"}`)
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(decode[map[string]any](rec)["channel"], ShouldEqual, "call")

				list := decode[[]map[string]any](h.do(http.MethodGet, "/api/leads/l1/contacts", ""))
				So(len(list), ShouldEqual, 1)

				So(h.do(http.MethodPost, "/api/leads/nope/contacts", `{"content":"x"}`).Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestDealRoutes(t *testing.T) {
	Convey("Given the BFF with the API down", t, func() {
		h := newHarness(t)
		h.up.Store(false)

		Convey("When listing a client's proposals and contracts", func() {
			proposals := decode[[]map[string]any](h.do(http.MethodGet, "/api/clients/1/proposals", ""))
			contracts := decode[[]map[string]any](h.do(http.MethodGet, "/api/clients/1/contracts", ""))

			Convey("Then the seeded deal is served", func() {
				So(len(proposals), ShouldEqual, 1)
				So(proposals[0]["status"], ShouldEqual, "following")
				So(len(contracts), ShouldEqual, 1)
				So(contracts[0]["plan_name"], ShouldEqual, "Plan A")
			})
		})

		Convey("When a client has no deals", func() {
			rec := h.do(http.MethodGet, "/api/clients/2/contracts", "")

			Convey("Then an empty array is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldStartWith, "[]")
			})
		})

		Convey("When a proposal is drafted and sent", func() {
			rec := h.do(http.MethodPost, "/api/proposals", `{"client_id":"2","title":"ROIプラン","amount":250000}`)
			So(rec.Code, ShouldEqual, http.StatusCreated)
			p := decode[map[string]any](rec)
			So(p["status"], ShouldEqual, "draft")

			upd := h.do(http.MethodPut, "/api/proposals/"+p["id"].(string), `{"status":"sent","sent_at":"2025-06-01"}`)
			So(upd.Code, ShouldEqual, http.StatusOK)
			So(decode[map[string]any](upd)["status"], ShouldEqual, "sent")
		})

		Convey("When deal input is invalid", func() {
			So(h.do(http.MethodPost, "/api/proposals", `{"client_id":"2"}`).Code, ShouldEqual, http.StatusBadRequest)
			So(h.do(http.MethodPut, "/api/proposals/nope", `{"memo":"x"}`).Code, ShouldEqual, http.StatusNotFound)
			So(h.do(http.MethodPost, "/api/contracts", `{"plan_name":"Plan A"}`).Code, ShouldEqual, http.StatusBadRequest)
			So(h.do(http.MethodPost, "/api/contracts",
				`{"client_id":"1","start_date":"2025-06-01","end_date":"2025-05-01"}`).Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When a contract is recorded with plain dates", func() {
			rec := h.do(http.MethodPost, "/api/contracts", `{"client_id":"2","plan_name":"Plan B","monthly_fee":200000,"start_date":"2025-07-01"}`)

			Convey("Then it is listed for the client", func() {
				So(rec.Code, ShouldEqual, http.StatusCreated)
				list := decode[[]map[string]any](h.do(http.MethodGet, "/api/clients/2/contracts", ""))
				So(len(list), ShouldEqual, 1)
				So(list[0]["start_date"], ShouldStartWith, "2025-07-01")
			})
		})
	})
}

func TestNotificationRoutes(t *testing.T) {
	Convey("Given the BFF in front of a Pulss API", t, func() {
		h := newHarness(t)
		user := url.QueryEscape("田中 健")

		Convey("When the API is up", func() {
			rec := h.do(http.MethodGet, "/api/notifications?user="+user, "")

			Convey("Then the user is forwarded", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				list := decode[[]map[string]any](rec)
				So(list[0]["user"], ShouldEqual, "田中 健")
			})
		})

		Convey("When the API is down", func() {
			h.up.Store(false)

			Convey("Then the user's seeded reminder is served", func() {
				list := decode[[]map[string]any](h.do(http.MethodGet, "/api/notifications?user="+user, ""))
				So(len(list), ShouldEqual, 1)
				So(list[0]["id"], ShouldEqual, "n1")
				So(list[0], ShouldNotContainKey, "read_at")
			})

			Convey("Then a user is required", func() {
				So(h.do(http.MethodGet, "/api/notifications", "").Code, ShouldEqual, http.StatusBadRequest)
				So(h.do(http.MethodPost, "/api/notifications", `{"title":"t","body":"b"}`).Code, ShouldEqual, http.StatusBadRequest)
			})

			Convey("Then a created notification can be marked read", func() {
				rec := h.do(http.MethodPost, "/api/notifications?user="+user, `{"title":"撮影確定","body":"明日10時"}`)
				So(rec.Code, ShouldEqual, http.StatusCreated)
				id := decode[map[string]any](rec)["id"].(string)

				read := h.do(http.MethodPost, "/api/notifications/"+id+"/read", "")
				So(read.Code, ShouldEqual, http.StatusOK)
				So(decode[map[string]any](read), ShouldContainKey, "read_at")
			})

			Convey("Then marking an unknown notification is 404", func() {
				So(h.do(http.MethodPost, "/api/notifications/nope/read", "").Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
