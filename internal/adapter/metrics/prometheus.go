// Package metrics exposes relay and upstream metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leetcode-relay/internal/domain/ports"
)

// Namespace prefixes every metric name.
const Namespace = "leetcode_relay"

const unmatchedRoute = "unmatched"

// Collector holds the relay's Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LookupsTotal        *prometheus.CounterVec
	LookupDuration      *prometheus.HistogramVec
	UpstreamUp          prometheus.Gauge
}

var _ ports.Metrics = (*Collector)(nil)

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New creates and registers all relay metrics on reg.
func New(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "lookup",
				Name:      "total",
				Help:      "Problem lookups by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		LookupDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Subsystem: "lookup",
				Name:      "duration_seconds",
				Help:      "Problem lookup latency including the upstream call",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		UpstreamUp: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Subsystem: "upstream",
				Name:      "up",
				Help:      "1 if the last upstream probe succeeded, 0 otherwise",
			},
		),
	}
}

// ObserveLookup records the outcome and latency of one problem lookup.
func (c *Collector) ObserveLookup(operation, outcome string, elapsed time.Duration) {
	c.LookupsTotal.WithLabelValues(operation, outcome).Inc()
	c.LookupDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// SetUpstreamUp records the result of the latest upstream probe.
func (c *Collector) SetUpstreamUp(up bool) {
	if up {
		c.UpstreamUp.Set(1)
		return
	}
	c.UpstreamUp.Set(0)
}

// Middleware counts requests per matched route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := ctx.Request.Method
		c.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
