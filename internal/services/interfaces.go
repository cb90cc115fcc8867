package services

import (
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface defines transaction ingestion and listing operations
type LedgerServiceInterface interface {
	AddTransaction(transaction *models.Transaction) error
	ImportStatement(transactions []models.Transaction) (int, error)
	GetTransaction(id uuid.UUID) (*models.Transaction, error)
	RecentTransactions(limit int) ([]models.Transaction, error)
	ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	TransactionsInWindow(days int) ([]models.Transaction, error)
}

// AnomalyServiceInterface defines anomaly detection over the ledger
type AnomalyServiceInterface interface {
	// DetectRecent scans the transactions of the trailing window and returns
	// flagged anomalies ordered by severity, then magnitude.
	DetectRecent(days int) ([]models.Anomaly, error)

	// CheckCandidate runs the single-transaction plausibility check against
	// spend history and returns human-readable warnings.
	CheckCandidate(merchant string, amount float64) ([]string, error)
}

// CategoryServiceInterface defines the interface for transaction categorization operations
type CategoryServiceInterface interface {
	// CategorizeByMerchant categorizes a transaction based on merchant name
	CategorizeByMerchant(merchant string) (category string, confidence float64)

	// FuzzyMatchMerchant performs fuzzy matching on merchant names
	FuzzyMatchMerchant(input string) (merchant string, score float64)

	// CategorizeTransaction performs complete categorization using all available data
	CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult

	// BatchCategorize categorizes multiple transactions
	BatchCategorize(transactions []*models.Transaction) []*models.CategorizationResult

	// OverrideCategory manually overrides the category
	OverrideCategory(transaction *models.Transaction, newCategory string) error
}

// SummaryServiceInterface provides spending aggregates over the ledger
type SummaryServiceInterface interface {
	TotalSpend(startDate, endDate time.Time) (decimal.Decimal, error)
	SpendByCategory(startDate, endDate time.Time) ([]models.CategorySpend, error)
	MonthlyBreakdown(startDate, endDate time.Time) ([]models.MonthlyCategorySpend, error)
	TopMerchants(startDate, endDate time.Time, limit int) ([]models.MerchantSpend, error)
	SpendTrend(now time.Time) (*SpendTrend, error)
}

// SpendTrend compares the most recent 30 days of spend with the 30 days before
type SpendTrend struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Change   decimal.Decimal `json:"change"`
}

// BudgetServiceInterface defines monthly budget management
type BudgetServiceInterface interface {
	SetBudget(category string, monthlyLimit decimal.Decimal) (*models.Budget, error)
	BudgetStatuses(month time.Time) ([]models.BudgetStatus, error)
}

// ReceiptServiceInterface defines the two-step receipt ingestion flow
type ReceiptServiceInterface interface {
	// ConfirmReceipt validates parsed receipt fields and returns a proposal
	// carrying any plausibility warnings. Nothing is persisted.
	ConfirmReceipt(date, merchant string, amount float64, category string) (*ReceiptProposal, error)

	// ParseAndConfirm extracts fields from raw receipt text and then behaves
	// like ConfirmReceipt.
	ParseAndConfirm(text string) (*ReceiptProposal, error)

	// AcceptReceipt persists a previously confirmed receipt as a transaction.
	AcceptReceipt(proposal *ReceiptProposal) (*models.Transaction, error)
}

// ReceiptProposal is a receipt pending user confirmation
type ReceiptProposal struct {
	Date     string   `json:"date"`
	Merchant string   `json:"merchant"`
	Amount   float64  `json:"amount"`
	Category string   `json:"category"`
	Warnings []string `json:"warnings"`
}

// ReceiptParserInterface extracts transaction fields from raw receipt text
type ReceiptParserInterface interface {
	Parse(text string) (date, merchant string, amount float64, err error)
}

// TransactionGeneratorInterface generates realistic ledger data for seeding and testing
type TransactionGeneratorInterface interface {
	MerchantPool() []models.MerchantInfo
	GenerateLedger(startDate, endDate time.Time) []models.Transaction
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
