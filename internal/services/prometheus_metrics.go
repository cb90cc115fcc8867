package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsIngested *prometheus.CounterVec
	statementsImported   prometheus.Counter
	statementImportSize  prometheus.Histogram
	anomalyScansTotal    prometheus.Counter
	anomaliesFlagged     *prometheus.CounterVec
	anomalyScanDuration  prometheus.Histogram
	receiptsFlagged      prometheus.Counter
	ledgerSize           prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_ingested_total",
				Help: "Total number of transactions added to the ledger",
			},
			[]string{"source"},
		),
		statementsImported: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_statements_imported_total",
				Help: "Total number of statement imports",
			},
		),
		statementImportSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_statement_import_size",
				Help:    "Number of transactions per statement import",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		anomalyScansTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "anomaly_scans_total",
				Help: "Total number of anomaly detection scans",
			},
		),
		anomaliesFlagged: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anomalies_flagged_total",
				Help: "Total number of anomalies flagged by severity",
			},
			[]string{"severity"},
		),
		anomalyScanDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "anomaly_scan_duration_milliseconds",
				Help:    "Anomaly scan duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		receiptsFlagged: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "receipts_flagged_total",
				Help: "Total number of receipt candidates with plausibility warnings",
			},
		),
		ledgerSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions_total",
				Help: "Current number of transactions in the ledger",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.ingested":
		source := tags["source"]
		if source == "" {
			source = "unknown"
		}
		m.transactionsIngested.WithLabelValues(source).Inc()
	case "statement.imported":
		m.statementsImported.Inc()
	case "anomaly.scan":
		m.anomalyScansTotal.Inc()
	case "anomaly.flagged":
		if severity := tags["severity"]; severity != "" {
			m.anomaliesFlagged.WithLabelValues(severity).Inc()
		}
	case "receipt.flagged":
		m.receiptsFlagged.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if name == "anomaly.scan" {
		m.anomalyScanDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "statement.import.size":
		m.statementImportSize.Observe(value)
	case "ledger.size":
		m.ledgerSize.Set(value)
	}
}
