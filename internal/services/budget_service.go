package services

import (
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo      repositories.BudgetRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// SetBudget creates or replaces the monthly limit for a category
func (s *budgetService) SetBudget(category string, monthlyLimit decimal.Decimal) (*models.Budget, error) {
	if !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	budget := &models.Budget{
		Category:     category,
		MonthlyLimit: monthlyLimit,
	}
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		return nil, err
	}

	s.logger.Info("budget set",
		"category", category,
		"monthly_limit", monthlyLimit.String())

	return budget, nil
}

// BudgetStatuses reports spend against every configured budget for the
// calendar month containing the given time.
func (s *budgetService) BudgetStatuses(month time.Time) ([]models.BudgetStatus, error) {
	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	statuses := make([]models.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.transactionRepo.SpendBetween(monthStart, monthEnd, budget.Category)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, models.BudgetStatus{
			Category:     budget.Category,
			MonthlyLimit: budget.MonthlyLimit,
			Spent:        spent,
			Remaining:    budget.MonthlyLimit.Sub(spent),
			OverBudget:   spent.GreaterThan(budget.MonthlyLimit),
		})
	}

	return statuses, nil
}
