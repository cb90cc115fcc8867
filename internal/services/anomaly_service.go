package services

import (
	"log/slog"
	"time"

	"finance-ledger/internal/analytics"
	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"
)

type anomalyService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	detector        *analytics.Detector
	receiptCheck    *analytics.ReceiptCheck
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAnomalyService creates a new anomaly service
func NewAnomalyService(
	transactionRepo repositories.TransactionRepositoryInterface,
	detector *analytics.Detector,
	receiptCheck *analytics.ReceiptCheck,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AnomalyServiceInterface {
	return &anomalyService{
		transactionRepo: transactionRepo,
		detector:        detector,
		receiptCheck:    receiptCheck,
		metrics:         metrics,
		logger:          logger,
	}
}

// DetectRecent scans the trailing window of ledger transactions
func (s *anomalyService) DetectRecent(days int) ([]models.Anomaly, error) {
	start := time.Now()

	end := time.Now().UTC()
	windowStart := end.AddDate(0, 0, -days)

	transactions, err := s.transactionRepo.GetByDateRange(windowStart, end)
	if err != nil {
		s.logger.Error("failed to load transactions for anomaly scan",
			"days", days,
			"error", err)
		return nil, err
	}

	anomalies := s.detector.Detect(transactions)

	s.metrics.IncrementCounter("anomaly.scan", map[string]string{})
	for _, a := range anomalies {
		s.metrics.IncrementCounter("anomaly.flagged", map[string]string{
			"severity": a.Severity,
		})
	}
	s.metrics.RecordProcessingTime("anomaly.scan", time.Since(start))

	s.logger.Info("anomaly scan completed",
		"days", days,
		"transactions", len(transactions),
		"flagged", len(anomalies))

	return anomalies, nil
}

// CheckCandidate runs the plausibility heuristics for a single candidate
// transaction against the full ledger history.
func (s *anomalyService) CheckCandidate(merchant string, amount float64) ([]string, error) {
	warnings, err := s.receiptCheck.Check(s.transactionRepo, merchant, amount)
	if err != nil {
		s.logger.Error("plausibility check failed",
			"merchant", merchant,
			"error", err)
		return nil, err
	}

	if len(warnings) > 0 {
		s.metrics.IncrementCounter("receipt.flagged", map[string]string{})
		s.logger.Info("candidate transaction flagged",
			"merchant", merchant,
			"amount", amount,
			"warnings", len(warnings))
	}

	return warnings, nil
}
