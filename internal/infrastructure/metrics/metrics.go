package metrics

import (
	"net/http"
	"strconv"
	"time"

	"consultoria_xpto/internal/domain/entities"
	"consultoria_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "consultoria"

// Recorder holds the Prometheus instruments of the service.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	completions   *prometheus.CounterVec
	commission    *prometheus.CounterVec
	cancellations *prometheus.CounterVec
}

var _ interfaces.IEngagementMetrics = (*Recorder)(nil)

// NewRecorder registers every instrument on a fresh registry, plus the Go
// and process collectors.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engagements_completed_total",
			Help:      "Completed engagements by tier and deadline outcome.",
		}, []string{"tier", "deadline_met"}),
		commission: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commission_value_total",
			Help:      "Commission value granted at completion, by percent.",
		}, []string{"percent"}),
		cancellations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "engagements_cancelled_total",
			Help:      "Cancelled engagements by tier.",
		}, []string{"tier"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.httpRequests,
		r.httpDuration,
		r.completions,
		r.commission,
		r.cancellations,
	)
	return r
}

func (r *Recorder) ObserveCompletion(e entities.Engagement) {
	if r == nil {
		return
	}
	r.completions.WithLabelValues(e.Tier, strconv.FormatBool(e.DeadlineMet)).Inc()
	value, _ := e.CommissionValue.Float64()
	r.commission.WithLabelValues(strconv.Itoa(e.CommissionPercent)).Add(value)
}

func (r *Recorder) ObserveCancellation(e entities.Engagement) {
	if r == nil {
		return
	}
	r.cancellations.WithLabelValues(e.Tier).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// GinMiddleware counts requests and observes their latency per route.
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		r.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
