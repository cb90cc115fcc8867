package services

import (
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

type summaryService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewSummaryService creates a new spending summary service
func NewSummaryService(
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) SummaryServiceInterface {
	return &summaryService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// TotalSpend returns total spend over a date range, excluding income
func (s *summaryService) TotalSpend(startDate, endDate time.Time) (decimal.Decimal, error) {
	return s.transactionRepo.TotalSpend(startDate, endDate)
}

// SpendByCategory returns per-category spend totals over a date range
func (s *summaryService) SpendByCategory(startDate, endDate time.Time) ([]models.CategorySpend, error) {
	return s.transactionRepo.SpendByCategory(startDate, endDate)
}

// MonthlyBreakdown returns per-month, per-category spend totals
func (s *summaryService) MonthlyBreakdown(startDate, endDate time.Time) ([]models.MonthlyCategorySpend, error) {
	return s.transactionRepo.SpendByMonthAndCategory(startDate, endDate)
}

// TopMerchants returns the highest-spend merchants over a date range
func (s *summaryService) TopMerchants(startDate, endDate time.Time, limit int) ([]models.MerchantSpend, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.transactionRepo.TopMerchants(startDate, endDate, limit)
}

// SpendTrend compares the trailing 30 days of spend with the 30 days before
func (s *summaryService) SpendTrend(now time.Time) (*SpendTrend, error) {
	currentStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	current, err := s.transactionRepo.TotalSpend(currentStart, now)
	if err != nil {
		return nil, err
	}

	previous, err := s.transactionRepo.TotalSpend(previousStart, currentStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	trend := &SpendTrend{
		Current:  current,
		Previous: previous,
		Change:   current.Sub(previous),
	}

	s.logger.Debug("spend trend computed",
		"current", trend.Current.String(),
		"previous", trend.Previous.String())

	return trend, nil
}
