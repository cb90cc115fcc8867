package services

import (
	"time"

	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// noopMetrics discards all recordings; the Prometheus recorder registers on
// the default registry and cannot be constructed repeatedly in tests.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)        {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)        {}
func (noopMetrics) RecordGauge(string, float64, map[string]string)    {}

func mustDate(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func testTransaction(date, merchant string, amount float64, category string) models.Transaction {
	return models.Transaction{
		Date:     mustDate(date),
		Merchant: merchant,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Source:   models.SourceManual,
	}
}
