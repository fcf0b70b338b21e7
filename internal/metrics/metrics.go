// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instrumentation for the API: request
// counters and latencies per route pattern plus donation counters. All
// collectors live in a private registry served by [Metrics.Handler].
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/donate-hub/internal/service"
	"github.com/MKhiriev/donate-hub/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "donate_hub"

	// unmatchedRoute labels requests no route matched, so unknown paths
	// cannot blow up label cardinality.
	unmatchedRoute = "unmatched"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	donationsTotal      prometheus.Counter
	donatedAmountTotal  prometheus.Counter
}

// New registers every collector in a fresh registry. version is exported
// through the build_info gauge.
func New(version string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "build_info",
		Help:        "Build information of the running server",
		ConstLabels: prometheus.Labels{"version": version},
	}).Set(1)

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		donationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "total",
			Help:      "Total donations recorded",
		}),
		donatedAmountTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "donations",
			Name:      "amount_total",
			Help:      "Sum of recorded donation amounts",
		}),
	}
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records a counter and a latency observation for every request,
// labelled with the chi route pattern that served it.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ObserveDonation counts a recorded donation.
func (m *Metrics) ObserveDonation(d models.Donation) {
	m.donationsTotal.Inc()
	m.donatedAmountTotal.Add(d.Amount.InexactFloat64())
}

// Wrap implements [service.DonationServiceWrapper].
func (m *Metrics) Wrap(next service.DonationService) service.DonationService {
	return &donationServiceMetrics{DonationService: next, metrics: m}
}

type donationServiceMetrics struct {
	service.DonationService
	metrics *Metrics
}

func (s *donationServiceMetrics) Donate(ctx context.Context, req models.DonationCreate) (models.Donation, error) {
	donation, err := s.DonationService.Donate(ctx, req)
	if err == nil {
		s.metrics.ObserveDonation(donation)
	}
	return donation, err
}
