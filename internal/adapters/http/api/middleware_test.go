package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given response statuses", t, func() {
		cases := []struct {
			status   int
			errType  string
			severity string
			failed   bool
		}{
			{http.StatusOK, "", "", false},
			{http.StatusNoContent, "", "", false},
			{http.StatusBadRequest, "client_error", "medium", true},
			{http.StatusNotFound, "not_found", "low", true},
			{http.StatusConflict, "conflict", "medium", true},
			{http.StatusInternalServerError, "server_error", "high", true},
			{http.StatusBadGateway, "upstream_error", "high", true},
		}

		Convey("Then each maps to its error labels", func() {
			for _, c := range cases {
				errType, severity, failed := classify(c.status)
				So(errType, ShouldEqual, c.errType)
				So(severity, ShouldEqual, c.severity)
				So(failed, ShouldEqual, c.failed)
			}
		})
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a handler wrapped by the metrics middleware", t, func() {
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			w.WriteHeader(http.StatusOK)
		}, "POST /x")

		Convey("When it writes the header twice", func() {
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodPost, "/x", http.NoBody))

			Convey("Then the first status reaches the client", func() {
				So(rec.Code, ShouldEqual, http.StatusConflict)
			})
		})
	})
}
