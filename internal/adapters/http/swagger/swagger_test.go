package swagger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func serve(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
	return w
}

func TestDocsRoutes(t *testing.T) {
	convey.Convey("Given the docs routes on a mux", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		convey.Convey("When the OpenAPI document is fetched", func() {
			w := serve(mux, http.MethodGet, "/openapi.yaml")

			convey.Convey("Then it is served as YAML and matches the embedded copy", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.Bytes(), convey.ShouldResemble, OpenAPI)
			})

			convey.Convey("Then every dashboard route is documented", func() {
				body := w.Body.String()
				for _, p := range []string{
					"/api/clients:",
					"/api/clients/{id}:",
					"/api/clients/{id}/toggle-status:",
					"/api/clients/{id}/pulse-link:",
					"/api/pulse-responses:",
					"/api/clients/{id}/tasks:",
					"/api/tasks/{id}:",
					"/api/clients/{id}/ai-suggestions:",
					"/api/schedules:",
					"/api/schedules/{id}:",
					"/api/sns-news:",
					"/api/clients/{id}/sns-news:",
					"/api/director-board/clients:",
					"/api/pulss-chat/start-from-link/{clientId}/{token}:",
					"/api/pulss-chat/sessions/{sessionId}/messages:",
					"/api/leads:",
					"/api/leads/{id}:",
					"/api/leads/{id}/contacts:",
					"/api/clients/{id}/proposals:",
					"/api/proposals:",
					"/api/proposals/{id}:",
					"/api/clients/{id}/contracts:",
					"/api/contracts:",
					"/api/notifications:",
					"/api/notifications/{id}/read:",
					"/readyz:",
				} {
					convey.So(strings.Contains(body, p), convey.ShouldBeTrue)
				}
			})
		})

		convey.Convey("When the docs page is fetched", func() {
			w := serve(mux, http.MethodGet, "/api-docs")

			convey.Convey("Then ReDoc is pointed at the embedded document", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "<title>Pulss Dashboard API Docs</title>")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, redocScript)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "Redoc.init('/openapi.yaml'")
			})
		})

		convey.Convey("When something other than GET hits the docs", func() {
			convey.Convey("Then the mux answers 405", func() {
				convey.So(serve(mux, http.MethodPost, "/openapi.yaml").Code, convey.ShouldEqual, http.StatusMethodNotAllowed)
				convey.So(serve(mux, http.MethodDelete, "/api-docs").Code, convey.ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})

	convey.Convey("Given a nil mux", t, func() {
		convey.Convey("Then registering panics", func() {
			convey.So(func() { Register(context.Background(), nil) }, convey.ShouldPanic)
		})
	})
}
