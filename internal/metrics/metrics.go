package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	RunResultProcessed = "processed"
	RunResultNoop      = "noop"
	RunResultFailed    = "failed"
)

type Collection struct {
	NodeEpoch         prometheus.Gauge
	LastReportedEpoch prometheus.Gauge
	ReportTimestamp   prometheus.Gauge
	RunsTotal         *prometheus.CounterVec
	ReportsTotal      prometheus.Counter
}

func NewCollection() *Collection {
	return &Collection{
		NodeEpoch: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cardano_schedule_reporter",
				Name:      "node_epoch",
				Help:      "Epoch reported by the node tip",
			},
		),
		LastReportedEpoch: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cardano_schedule_reporter",
				Name:      "last_reported_epoch",
				Help:      "Highest epoch for which a report has completed",
			},
		),
		ReportTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "cardano_schedule_reporter",
				Name:      "report_timestamp",
				Help:      "Unix time of the last successful report",
			},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "cardano_schedule_reporter",
				Name:      "runs_total",
				Help:      "Runs by result",
			},
			[]string{"result"},
		),
		ReportsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "cardano_schedule_reporter",
				Name:      "reports_total",
				Help:      "Reports accepted by the endpoint",
			},
		),
	}
}

func (m *Collection) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		collectors.NewGoCollector(),
		m.NodeEpoch,
		m.LastReportedEpoch,
		m.ReportTimestamp,
		m.RunsTotal,
		m.ReportsTotal,
	)
}
