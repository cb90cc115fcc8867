package repositories

import (
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetRecent(limit int) ([]models.Transaction, error)
	GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Count() (int64, error)

	// Baseline queries used by the plausibility check on a single receipt
	MerchantExists(merchant string) (bool, error)
	AverageAmount() (float64, error)

	// Aggregates for spending summaries
	TotalSpend(startDate, endDate time.Time) (decimal.Decimal, error)
	SpendByCategory(startDate, endDate time.Time) ([]models.CategorySpend, error)
	SpendByMonthAndCategory(startDate, endDate time.Time) ([]models.MonthlyCategorySpend, error)
	TopMerchants(startDate, endDate time.Time, limit int) ([]models.MerchantSpend, error)
	SpendBetween(startDate, endDate time.Time, category string) (decimal.Decimal, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetAll() ([]models.Budget, error)
	GetByCategory(category string) (*models.Budget, error)
}
