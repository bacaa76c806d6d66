package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(
			WithNamespace("test"),
			WithHistogramBuckets([]float64{1, 10, 100}),
			WithPrometheusRegistry(registry),
		)

		Convey("When rankings are recorded", func() {
			m.RecordRanking(12.5, 40)
			m.RecordRanking(3, 2)

			Convey("Then the counter reflects them", func() {
				So(testutil.ToFloat64(m.rankingsTotal), ShouldEqual, 2)
				So(testutil.CollectAndCount(m.rankingLatency), ShouldEqual, 1)
			})
		})

		Convey("When cache lookups are recorded", func() {
			m.RecordCacheLookup(true)
			m.RecordCacheLookup(false)
			m.RecordCacheLookup(false)

			Convey("Then hits and misses are split by label", func() {
				So(testutil.ToFloat64(m.rankingCacheLookup.WithLabelValues("hit")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.rankingCacheLookup.WithLabelValues("miss")), ShouldEqual, 2)
			})
		})

		Convey("When errors, requests and clients are recorded", func() {
			m.RecordRankingError("upstream")
			m.RecordHTTPRequest("/api/v1/hr/stats", "GET", "200", 4)
			m.SetWSClients(3)
			m.RecordApplicationSubmitted()
			m.RecordReviewRecorded()

			Convey("Then each collector holds the value", func() {
				So(testutil.ToFloat64(m.rankingErrors.WithLabelValues("upstream")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/v1/hr/stats", "GET", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.wsClients), ShouldEqual, 3)
				So(testutil.ToFloat64(m.applicationsSubmitted), ShouldEqual, 1)
				So(testutil.ToFloat64(m.reviewsRecorded), ShouldEqual, 1)
			})
		})
	})

	Convey("Given the default manager", t, func() {
		Convey("Then it is bound to the served registry", func() {
			So(Default(), ShouldNotBeNil)
			So(GetRegistry(), ShouldNotBeNil)
		})
	})
}
