/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package typebridge

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/suparena/typebridge/errors"
)

// Metrics counts conversions and their latency per operation.
type Metrics struct {
	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the conversion collectors and registers them with reg.
// A nil reg leaves the collectors unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typebridge_conversions_total",
				Help: "Total number of conversions by operation and result",
			},
			[]string{"op", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "typebridge_conversion_duration_seconds",
				Help:    "Duration of conversions in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.conversions, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithMetrics records every Encode and Decode call in m.
func WithMetrics(m *Metrics) Option {
	return func(e *Exporter) {
		e.metrics = m
	}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	if m == nil {
		return
	}
	m.conversions.WithLabelValues(op, resultLabel(err)).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.IsNoConverter(err):
		return "no_converter"
	case errors.IsEncodeFailed(err):
		return "encode_failed"
	case errors.IsMissingTypeTag(err):
		return "missing_type_tag"
	case errors.IsUnknownTypeName(err):
		return "unknown_type_name"
	case errors.IsMalformedDocument(err):
		return "malformed"
	default:
		return "error"
	}
}
