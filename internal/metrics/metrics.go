// Package metrics holds the Prometheus collectors of the tracker.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "carbon_tracker",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carbon_tracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "carbon_tracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	activitiesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carbon_tracker",
			Subsystem: "activity",
			Name:      "logged_total",
			Help:      "Number of activity logs recorded, by category.",
		},
		[]string{"category"},
	)

	co2eLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carbon_tracker",
			Subsystem: "activity",
			Name:      "co2e_kg_total",
			Help:      "Sum of CO2e recorded, by category.",
		},
		[]string{"category"},
	)

	registrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carbon_tracker",
			Subsystem: "auth",
			Name:      "registrations_total",
			Help:      "Number of accounts created.",
		},
	)

	loginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carbon_tracker",
			Subsystem: "auth",
			Name:      "login_failures_total",
			Help:      "Number of rejected login attempts.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		activitiesLogged,
		co2eLogged,
		registrations,
		loginFailures,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Instrument records request count, latency and in-flight gauge per route.
func Instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := strings.ToUpper(c.Request.Method)
		httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordActivityLogged counts one persisted log and its emissions.
func RecordActivityLogged(category string, co2e float64) {
	if co2e < 0 {
		return
	}
	activitiesLogged.WithLabelValues(category).Inc()
	co2eLogged.WithLabelValues(category).Add(co2e)
}

func RecordRegistration() {
	registrations.Inc()
}

func RecordLoginFailure() {
	loginFailures.Inc()
}
