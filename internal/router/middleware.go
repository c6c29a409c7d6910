package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneywise/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware stores the base URL of the API in the context. Handlers
// use it to build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	base := url.String()

	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), base)
		c.Next()
	}
}

const (
	metricsNamespace = "moneywise"
	metricsSubsystem = "http"

	// Route label for requests that did not match any route
	unmatchedRoute = "unmatched"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "HTTP requests processed, partitioned by status code, method and route.",
		},
		[]string{"code", "method", "route"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"code", "method", "route"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being processed.",
		},
	)

	collectors = []prometheus.Collector{requestCount, requestDuration, requestsInFlight}
)

// registerMetrics registers all collectors with the default registry.
// Collectors registered before an error are unregistered again.
func registerMetrics() error {
	for i, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				prometheus.Unregister(registered)
			}
			return fmt.Errorf("could not register metrics: %w", err)
		}
	}

	return nil
}

func unregisterMetrics() error {
	var errs []error
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			errs = append(errs, fmt.Errorf("collector %v was not registered", c))
		}
	}

	return errors.Join(errs...)
}

// MetricsMiddleware records request metrics. Requests are labeled with
// the route template, e.g. /v1/budgets/:id, to keep the cardinality low.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestsInFlight.Inc()
		start := time.Now()

		c.Next()

		requestsInFlight.Dec()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		code := strconv.Itoa(c.Writer.Status())
		requestDuration.WithLabelValues(code, c.Request.Method, route).Observe(time.Since(start).Seconds())
		requestCount.WithLabelValues(code, c.Request.Method, route).Inc()
	}
}
