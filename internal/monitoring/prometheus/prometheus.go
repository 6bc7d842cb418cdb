// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/canonical/renovation-service/internal/logging"
	"github.com/canonical/renovation-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, duration float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		m.logger.Errorf("failed to fetch response time metric: %v", err)
		return err
	}

	metric.Observe(duration)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, available float64) error {
	metric, err := m.dependencyAvailability.GetMetricWith(tags)
	if err != nil {
		m.logger.Errorf("failed to fetch dependency availability metric: %v", err)
		return err
	}

	metric.Set(available)
	return nil
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "Duration of HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailability = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "Availability of upstream dependencies, 1 available, 0 unavailable.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
		[]string{"component"},
	)

	return m
}
