package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-ledger/internal/models"
	"finance-ledger/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrEmptyImport = errors.New("statement import contains no transactions")
)

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryService CategoryServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryService CategoryServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		categoryService: categoryService,
		metrics:         metrics,
		logger:          logger,
	}
}

// AddTransaction validates, categorizes and persists a single transaction
func (s *ledgerService) AddTransaction(transaction *models.Transaction) error {
	if transaction.Source == "" {
		transaction.Source = models.SourceManual
	}
	if err := transaction.Validate(); err != nil {
		return err
	}

	s.autoCategorize(transaction)

	if err := s.transactionRepo.Create(transaction); err != nil {
		s.logger.Error("failed to persist transaction",
			"merchant", transaction.Merchant,
			"error", err)
		return err
	}

	s.metrics.IncrementCounter("transaction.ingested", map[string]string{
		"source": transaction.Source,
	})

	s.logger.Info("transaction added",
		"id", transaction.ID,
		"merchant", transaction.Merchant,
		"amount", transaction.Amount.String(),
		"category", transaction.Category)

	return nil
}

// ImportStatement persists a batch of statement transactions atomically and
// returns the number imported.
func (s *ledgerService) ImportStatement(transactions []models.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, ErrEmptyImport
	}

	for i := range transactions {
		if transactions[i].Source == "" {
			transactions[i].Source = models.SourceImport
		}
		if err := transactions[i].Validate(); err != nil {
			return 0, fmt.Errorf("transaction %d: %w", i, err)
		}
		s.autoCategorize(&transactions[i])
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		s.logger.Error("statement import failed", "count", len(transactions), "error", err)
		return 0, err
	}

	s.metrics.IncrementCounter("statement.imported", map[string]string{})
	s.metrics.RecordGauge("statement.import.size", float64(len(transactions)), map[string]string{})

	s.logger.Info("statement imported", "count", len(transactions))

	return len(transactions), nil
}

// GetTransaction retrieves a single transaction by ID
func (s *ledgerService) GetTransaction(id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// RecentTransactions retrieves the most recent transactions
func (s *ledgerService) RecentTransactions(limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.transactionRepo.GetRecent(limit)
}

// ListTransactions retrieves transactions matching the given filters
func (s *ledgerService) ListTransactions(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	return s.transactionRepo.GetWithFilters(filters)
}

// TransactionsInWindow retrieves transactions dated within the trailing window
func (s *ledgerService) TransactionsInWindow(days int) ([]models.Transaction, error) {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)
	return s.transactionRepo.GetByDateRange(start, end)
}

// autoCategorize fills in a category when the caller did not supply one
func (s *ledgerService) autoCategorize(transaction *models.Transaction) {
	if transaction.Category != "" && transaction.Category != models.CategoryUncategorised {
		return
	}

	result := s.categoryService.CategorizeTransaction(transaction)
	transaction.Category = result.Category
}
