package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindnest",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mindnest",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	recommendationsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindnest",
			Subsystem: "recommendations",
			Name:      "generated_total",
			Help:      "Total number of recommendation rows generated.",
		},
		[]string{"type"},
	)

	recommendationsPurged = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mindnest",
			Subsystem: "recommendations",
			Name:      "purged_total",
			Help:      "Total number of expired recommendation rows purged.",
		},
	)

	aiCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindnest",
			Subsystem: "ai",
			Name:      "calls_total",
			Help:      "Total number of generative-AI calls.",
		},
		[]string{"kind", "outcome"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, recommendationsGenerated, recommendationsPurged, aiCalls)
}

// ObserveRecommendation counts one generated recommendation row
func ObserveRecommendation(kind string) {
	recommendationsGenerated.WithLabelValues(kind).Inc()
}

// ObservePurged counts purged expired rows
func ObservePurged(n int64) {
	recommendationsPurged.Add(float64(n))
}

// ObserveAICall counts one AI call with outcome "ok" or "fallback"
func ObserveAICall(kind, outcome string) {
	aiCalls.WithLabelValues(kind, outcome).Inc()
}

// Middleware records request counts and latencies per route
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			httpRequests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			httpDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the custom registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
