package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created with the default namespace", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "pulss")
				So(manager.subsystem, ShouldEqual, "dashboard")
			})
		})

		Convey("When creating with custom histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithHistogramBuckets([]float64{1, 10, 100}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then latency histograms use them", func() {
				manager.upstreamRequestDuration.WithLabelValues("clients.list", "ok").Observe(7)
				So(bucketBounds(registry, "pulss_dashboard_upstream_request_duration_milliseconds"),
					ShouldResemble, []float64{1, 10, 100})
			})
		})

		Convey("When using the global manager", func() {
			RecordHTTPRequestDuration("GET /api/clients", "GET", "200", 3)

			Convey("Then its buckets are laid out in milliseconds", func() {
				So(bucketBounds(customRegistry, "pulss_dashboard_http_request_duration_milliseconds"),
					ShouldResemble, LatencyBucketsMs)
			})
		})
	})
}

// bucketBounds returns the upper bounds of the first series of a histogram family.
func bucketBounds(g prometheus.Gatherer, name string) []float64 {
	families, err := g.Gather()
	if err != nil {
		return nil
	}
	for _, mf := range families {
		if mf.GetName() != name || len(mf.GetMetric()) == 0 {
			continue
		}
		var out []float64
		for _, b := range mf.GetMetric()[0].GetHistogram().GetBucket() {
			out = append(out, b.GetUpperBound())
		}
		return out
	}
	return nil
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When recording fallback engagements", func() {
			before := testutil.ToFloat64(globalManager.fallbackEngaged.WithLabelValues("news.list"))
			RecordFallbackEngaged("news.list")
			RecordFallbackEngaged("news.list")

			Convey("Then the counter grows by the number of calls", func() {
				after := testutil.ToFloat64(globalManager.fallbackEngaged.WithLabelValues("news.list"))
				So(after-before, ShouldEqual, 2)
			})
		})

		Convey("When setting the fallback store size", func() {
			UpdateFallbackStoreSize("clients", 3)

			Convey("Then the gauge reports the last value", func() {
				So(testutil.ToFloat64(globalManager.fallbackStoreSize.WithLabelValues("clients")), ShouldEqual, 3)
			})
		})

		Convey("When recording the remaining series", func() {
			Convey("Then nothing panics", func() {
				So(func() {
					RecordHTTPRequest("clients", "GET", "200")
					RecordHTTPRequestDuration("clients", "GET", "200", 12)
					RecordUpstreamRequest("clients.list", "ok", 4)
					RecordUpstreamRequest("clients.list", "transport", 1)
					RecordFallbackPropagated("schedules.create")
					RecordChatSessionStarted()
					RecordChatSessionCompleted()
					RecordErrorByType("server_error", "high")
					RecordErrorByEndpoint("clients", "GET", "server_error")
					UpdateOpenChatSessions(2)
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(12)
					RecordSystemGCPauseTime(0.4)
				}, ShouldNotPanic)
			})
		})

		Convey("Then the registry is exposed", func() {
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
