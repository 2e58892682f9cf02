// Package metrics exposes the Prometheus collectors shared by the HTTP
// services and the Kafka workers.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "carhire"

type Metrics struct {
	registry   *prometheus.Registry
	registerer prometheus.Registerer

	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	KafkaMessages *prometheus.CounterVec
	CacheLookups  *prometheus.CounterVec
	UploadedBytes prometheus.Counter
	Quotes        *prometheus.CounterVec
}

// New registers every collector on a private registry labelled with service.
func New(service string) *Metrics {
	registry := prometheus.NewRegistry()
	factory := prometheus.WrapRegistererWith(prometheus.Labels{"service": service}, registry)

	m := &Metrics{
		registry:   registry,
		registerer: factory,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		KafkaMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kafka_messages_total",
			Help:      "Kafka messages by topic, direction (publish|consume) and result.",
		}, []string{"topic", "direction", "result"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Read-through cache lookups by cache name and result (hit|miss|error).",
		}, []string{"cache", "result"}),
		UploadedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploaded_bytes_total",
			Help:      "Bytes written to object storage by the upload relay.",
		}),
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotes_total",
			Help:      "Price quotes served by estimator mode.",
		}, []string{"mode"}),
	}

	factory.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.KafkaMessages,
		m.CacheLookups,
		m.UploadedBytes,
		m.Quotes,
	)
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterConsumerLag exports lag as a gauge sampled on every scrape.
func (m *Metrics) RegisterConsumerLag(topic, groupID string, lag func() int64) prometheus.GaugeFunc {
	gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "kafka_consumer_lag",
		Help:        "Messages between the consumer group offset and the partition head.",
		ConstLabels: prometheus.Labels{"topic": topic, "group_id": groupID},
	}, func() float64 {
		return float64(lag())
	})
	m.registerer.MustRegister(gauge)
	return gauge
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	route := RouteLabel(path)
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveCache(cache string, hit bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(cache, result).Inc()
}

func (m *Metrics) ObserveKafka(topic, direction string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.KafkaMessages.WithLabelValues(topic, direction, result).Inc()
}

// RouteLabel collapses ids and slugs in a request path so the route label
// stays low-cardinality: /api/cars/<uuid>/related becomes /api/cars/:id/related.
func RouteLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, seg := range segments {
		switch {
		case i > 0 && segments[i-1] == "by-slug":
			segments[i] = ":slug"
		case isIdentifier(seg):
			segments[i] = ":id"
		}
	}
	return "/" + strings.Join(segments, "/")
}

func isIdentifier(seg string) bool {
	if seg == "" {
		return false
	}
	if _, err := uuid.Parse(seg); err == nil {
		return true
	}
	_, err := strconv.ParseUint(seg, 10, 64)
	return err == nil
}
