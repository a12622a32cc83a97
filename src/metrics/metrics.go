package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and records the service's Prometheus metrics.
type Collector struct {
	registry          *prometheus.Registry
	httpRequests      *prometheus.CounterVec
	generationTotal   *prometheus.CounterVec
	generationLatency prometheus.Histogram
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokeforge_http_requests_total",
			Help: "HTTP requests by method, path and status code",
		}, []string{"method", "path", "status"}),
		generationTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokeforge_generation_total",
			Help: "Image generation attempts by outcome",
		}, []string{"outcome"}),
		generationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pokeforge_generation_latency_seconds",
			Help:    "Latency of upstream image generation calls in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
	}

	c.registry.MustRegister(
		c.httpRequests,
		c.generationTotal,
		c.generationLatency,
	)

	return c
}

// RecordGeneration records one generation attempt and its upstream latency.
// Outcome is "success", "failure" or "cache_hit".
func (c *Collector) RecordGeneration(outcome string, latency time.Duration) {
	c.generationTotal.WithLabelValues(outcome).Inc()
	c.generationLatency.Observe(latency.Seconds())
}

// Middleware counts every request by route and status.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.httpRequests.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
	}
}

// Handler exposes the registry for GET /metrics.
func (c *Collector) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
	return func(ctx *gin.Context) {
		h.ServeHTTP(ctx.Writer, ctx.Request)
	}
}
