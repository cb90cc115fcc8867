package analytics

import (
	"fmt"
	"math"
	"sort"

	"finance-ledger/internal/models"
)

// Default detection thresholds. Callers override them through the
// Detector fields or the config package.
const (
	DefaultZScoreCutoff         = 3.0
	DefaultDuplicateCountCutoff = 3
)

// Rule reason strings surfaced to the presentation layer
const (
	ReasonGlobalOutlier = "Unusually large vs your overall spend pattern"
	ReasonDuplicate     = "Repeated same amount at same merchant (possible duplicate/recurring)"
	ReasonNovelMerchant = "New/rare merchant in recent period"
)

// Detector flags anomalous transactions within a batch. Every invocation
// is a pure function of its input: baselines and frequency indices are
// rebuilt from scratch and discarded, so concurrent use on independent
// batches is safe.
type Detector struct {
	// ZScoreCutoff is the inclusive z-score at which rules A and B fire
	ZScoreCutoff float64
	// DuplicateCountCutoff is the minimum occurrence count of a
	// (merchant, amount) pair for rule C to fire
	DuplicateCountCutoff int
}

// NewDetector creates a detector with the default thresholds
func NewDetector() *Detector {
	return &Detector{
		ZScoreCutoff:         DefaultZScoreCutoff,
		DuplicateCountCutoff: DefaultDuplicateCountCutoff,
	}
}

// chargeKey indexes repeated identical charges: a normalized merchant
// plus the amount rounded to 2 decimal places.
type chargeKey struct {
	merchant string
	amount   float64
}

// Detect evaluates the batch against the classification rules and
// returns flagged anomalies in severity-then-magnitude order.
//
// Per transaction the primary rules run in fixed priority, first match
// wins: global z-score outlier (high), category z-score outlier (high),
// repeated identical charge (medium). A separate secondary pass flags
// merchants appearing exactly once in the batch (low); the two passes
// are not deduplicated against each other, so one transaction can yield
// both a primary and a novelty entry.
func (d *Detector) Detect(transactions []models.Transaction) []models.Anomaly {
	if len(transactions) == 0 {
		return []models.Anomaly{}
	}

	amounts := make([]float64, len(transactions))
	for i := range transactions {
		amounts[i] = transactions[i].AbsAmount()
	}
	overall := NewBaselineStats(amounts)

	amountsByCategory := make(map[string][]float64)
	chargeCounts := make(map[chargeKey]int)
	merchantCounts := make(map[string]int)

	for i := range transactions {
		t := &transactions[i]
		amt := t.AbsAmount()
		merchant := t.NormalizedMerchant()

		amountsByCategory[t.Category] = append(amountsByCategory[t.Category], amt)
		chargeCounts[chargeKey{merchant, roundToCents(amt)}]++
		merchantCounts[merchant]++
	}

	categoryStats := make(map[string]BaselineStats, len(amountsByCategory))
	for category, values := range amountsByCategory {
		categoryStats[category] = NewBaselineStats(values)
	}

	anomalies := []models.Anomaly{}

	for i := range transactions {
		t := &transactions[i]
		amt := t.AbsAmount()

		// Rule A: extreme outlier vs the overall baseline
		if overall.StdDev > 0 && (amt-overall.Mean)/overall.StdDev >= d.ZScoreCutoff {
			anomalies = append(anomalies, newAnomaly(t, ReasonGlobalOutlier, models.SeverityHigh))
			continue
		}

		// Rule B: outlier vs the transaction's own category baseline
		if stats, ok := categoryStats[t.Category]; ok {
			if stats.StdDev > 0 && (amt-stats.Mean)/stats.StdDev >= d.ZScoreCutoff {
				reason := fmt.Sprintf("Unusually large for category '%s'", t.Category)
				anomalies = append(anomalies, newAnomaly(t, reason, models.SeverityHigh))
				continue
			}
		}

		// Rule C: repeated identical charge, likely duplicate or recurring
		if chargeCounts[chargeKey{t.NormalizedMerchant(), roundToCents(amt)}] >= d.DuplicateCountCutoff {
			anomalies = append(anomalies, newAnomaly(t, ReasonDuplicate, models.SeverityMedium))
			continue
		}
	}

	// Secondary pass: merchants seen exactly once in this window.
	// Runs over the whole batch regardless of primary-pass outcomes.
	for i := range transactions {
		t := &transactions[i]
		if merchantCounts[t.NormalizedMerchant()] == 1 {
			anomalies = append(anomalies, newAnomaly(t, ReasonNovelMerchant, models.SeverityLow))
		}
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		ri, rj := models.SeverityRank(anomalies[i].Severity), models.SeverityRank(anomalies[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return math.Abs(anomalies[i].Amount) > math.Abs(anomalies[j].Amount)
	})

	return anomalies
}

// DetectAnomalies runs detection with the default thresholds
func DetectAnomalies(transactions []models.Transaction) []models.Anomaly {
	return NewDetector().Detect(transactions)
}

func newAnomaly(t *models.Transaction, reason, severity string) models.Anomaly {
	amount, _ := t.Amount.Float64()
	return models.Anomaly{
		Date:     t.DateString(),
		Merchant: t.Merchant,
		Amount:   amount,
		Category: t.Category,
		Reason:   reason,
		Severity: severity,
	}
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
