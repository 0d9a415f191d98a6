package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the engine and repository use to report metrics.
type Recorder interface {
	RecordOfferOutcome(operation, result string)
	RecordStateError(operation string)
	RecordStateLatency(operation string, duration time.Duration)
	RecordHTTPStatus(statusCode int)
}

// Collector collects Prometheus metrics for the auction API.
type Collector struct {
	registry      *prometheus.Registry
	offerOutcomes *prometheus.CounterVec
	stateErrors   *prometheus.CounterVec
	stateLatency  *prometheus.HistogramVec
	httpStatus    *prometheus.CounterVec
}

// NewCollector creates a Collector backed by its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		offerOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auctionapi_offer_outcomes_total",
			Help: "Offer engine outcomes by operation and result",
		}, []string{"operation", "result"}),
		stateErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auctionapi_state_errors_total",
			Help: "State store call failures by operation",
		}, []string{"operation"}),
		stateLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "auctionapi_state_latency_seconds",
			Help:    "State store round-trip latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auctionapi_http_status_total",
			Help: "HTTP responses by status code",
		}, []string{"status_code"}),
	}

	c.registry.MustRegister(
		c.offerOutcomes,
		c.stateErrors,
		c.stateLatency,
		c.httpStatus,
	)

	return c
}

// RecordOfferOutcome counts one engine decision.
func (c *Collector) RecordOfferOutcome(operation, result string) {
	c.offerOutcomes.WithLabelValues(operation, result).Inc()
}

// RecordStateError counts one failed state store call.
func (c *Collector) RecordStateError(operation string) {
	c.stateErrors.WithLabelValues(operation).Inc()
}

// RecordStateLatency observes one state store round trip.
func (c *Collector) RecordStateLatency(operation string, duration time.Duration) {
	c.stateLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordHTTPStatus counts one HTTP response.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler returns the HTTP handler exposing the collected metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
