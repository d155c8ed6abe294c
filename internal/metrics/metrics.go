// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package metrics exposes Prometheus metrics for content resolution: query
// outcomes and latency, fallback substitutions, and response cache lookups.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Metrics holds the content resolution collectors.
type Metrics struct {
	registry *prometheus.Registry

	queriesTotal   *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	fallbacksTotal *prometheus.CounterVec
	cacheLookups   *prometheus.CounterVec
}

// New creates the collectors and registers them, along with the Go runtime
// and process collectors, on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_queries_total",
			Help: "Total number of content store queries by content type and outcome",
		},
		[]string{"type", "outcome"}, // outcome: success, empty, error
	)

	m.queryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "content_query_duration_seconds",
			Help: "Time taken by content store queries",
			// 10ms to ~10s
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 11),
		},
		[]string{"type"},
	)

	m.fallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fallbacks_total",
			Help: "Total number of times static fallback content was served",
		},
		[]string{"type"},
	)

	m.cacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_cache_lookups_total",
			Help: "Total number of response cache lookups",
		},
		[]string{"result"}, // result: hit, miss
	)

	if err := m.registry.Register(m); err != nil {
		return nil, err
	}
	if err := m.registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := m.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	return m, nil
}

// Describe implements the Collector interface
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.queriesTotal.Describe(ch)
	m.queryDuration.Describe(ch)
	m.fallbacksTotal.Describe(ch)
	m.cacheLookups.Describe(ch)
}

// Collect implements the Collector interface
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.queriesTotal.Collect(ch)
	m.queryDuration.Collect(ch)
	m.fallbacksTotal.Collect(ch)
	m.cacheLookups.Collect(ch)
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveQuery records one query for contentType.
func (m *Metrics) ObserveQuery(contentType, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(contentType, outcome).Inc()
	m.queryDuration.WithLabelValues(contentType).Observe(elapsed.Seconds())
}

// RecordFallback records that fallback content was served for contentType.
func (m *Metrics) RecordFallback(contentType string) {
	if m == nil {
		return
	}
	m.fallbacksTotal.WithLabelValues(contentType).Inc()
}

// RecordCacheLookup records a response cache hit or miss.
func (m *Metrics) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
