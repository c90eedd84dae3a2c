// ABOUTME: Prometheus implementation of the feed metrics recorder
// ABOUTME: Counts fetches by status, cache hits, errors by kind and parsed articles

package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "feedreader"

// Collector implements interfaces.Metrics with Prometheus collectors
type Collector struct {
	fetches   *prometheus.CounterVec
	latency   prometheus.Histogram
	cacheHits prometheus.Counter
	errors    *prometheus.CounterVec
	articles  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Feed requests by HTTP status code.",
		}, []string{"status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Feed request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Not-modified responses answered from the cache.",
		}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Accumulated reader errors by kind.",
		}, []string{"kind"}),
		articles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_total",
			Help:      "Parsed articles by feed type.",
		}, []string{"type"}),
	}

	reg.MustRegister(c.fetches, c.latency, c.cacheHits, c.errors, c.articles)

	return c
}

// RecordFetch records one HTTP round trip
func (c *Collector) RecordFetch(statusCode int, duration time.Duration) {
	c.fetches.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.latency.Observe(duration.Seconds())
}

// RecordCacheHit records a 304 served from the cache
func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

// RecordError records an error by kind
func (c *Collector) RecordError(kind string) {
	c.errors.WithLabelValues(kind).Inc()
}

// RecordArticles records parsed articles for a feed type
func (c *Collector) RecordArticles(feedType string, count int) {
	c.articles.WithLabelValues(feedType).Add(float64(count))
}

// Handler returns the scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
