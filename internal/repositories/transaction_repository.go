package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetRecent retrieves the most recent transactions by ledger date
func (r *transactionRepository) GetRecent(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}

// GetByDateRange retrieves transactions whose date falls within [startDate, endDate]
func (r *transactionRepository) GetByDateRange(startDate, endDate time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("date BETWEEN ? AND ?", startDate, endDate).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions by date range: %w", err)
	}
	return transactions, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Merchant != "" {
		query = query.Where("LOWER(merchant) LIKE ?", "%"+models.NormalizeMerchant(filters.Merchant)+"%")
	}
	if filters.Source != "" {
		query = query.Where("source = ?", filters.Source)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if filters.Limit > 0 {
		query = query.Offset(filters.Offset).Limit(filters.Limit)
	}

	if err := query.Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// Count returns the total number of transactions in the ledger
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// MerchantExists reports whether any transaction exists for the merchant,
// compared case-insensitively after trimming whitespace.
func (r *transactionRepository) MerchantExists(merchant string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("LOWER(TRIM(merchant)) = ?", models.NormalizeMerchant(merchant)).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check merchant existence: %w", err)
	}
	return count > 0, nil
}

// AverageAmount returns the mean absolute transaction amount across the whole
// ledger, or 0 when the ledger is empty.
func (r *transactionRepository) AverageAmount() (float64, error) {
	var result struct {
		Average float64
	}
	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(AVG(ABS(amount)), 0) as average").
		Scan(&result).Error; err != nil {
		return 0, fmt.Errorf("failed to compute average amount: %w", err)
	}
	return result.Average, nil
}

// TotalSpend sums transaction amounts in the date range, excluding income
func (r *transactionRepository) TotalSpend(startDate, endDate time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("date BETWEEN ? AND ? AND category <> ?", startDate, endDate, models.CategoryIncome).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute total spend: %w", err)
	}
	return result.Total, nil
}

// SpendByCategory retrieves spend totals grouped by category over a date range
func (r *transactionRepository) SpendByCategory(startDate, endDate time.Time) ([]models.CategorySpend, error) {
	var summaries []models.CategorySpend

	query := `
		SELECT
			category,
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as count
		FROM transactions
		WHERE date BETWEEN ? AND ?
		GROUP BY category
		ORDER BY total DESC
	`

	if err := r.db.Raw(query, startDate, endDate).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get spend by category: %w", err)
	}

	return summaries, nil
}

// SpendByMonthAndCategory retrieves spend totals grouped by calendar month and
// category over a date range. Month grouping is done in Go so the query stays
// portable between postgres and sqlite.
func (r *transactionRepository) SpendByMonthAndCategory(startDate, endDate time.Time) ([]models.MonthlyCategorySpend, error) {
	transactions, err := r.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, txn := range transactions {
		key := txn.Date.Format("2006-01") + "|" + txn.Category
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(txn.Amount)
	}

	summaries := make([]models.MonthlyCategorySpend, 0, len(order))
	for _, key := range order {
		month, category, _ := cutKey(key)
		summaries = append(summaries, models.MonthlyCategorySpend{
			Month:    month,
			Category: category,
			Total:    totals[key],
		})
	}

	return summaries, nil
}

func cutKey(key string) (month, category string, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == '|' {
			return key[:i], key[i+1:], true
		}
	}
	return key, "", false
}

// TopMerchants retrieves the highest-spend merchants over a date range
func (r *transactionRepository) TopMerchants(startDate, endDate time.Time, limit int) ([]models.MerchantSpend, error) {
	var summaries []models.MerchantSpend

	query := `
		SELECT
			merchant,
			COALESCE(SUM(amount), 0) as total,
			COUNT(*) as count
		FROM transactions
		WHERE date BETWEEN ? AND ? AND category <> ?
		GROUP BY merchant
		ORDER BY total DESC
		LIMIT ?
	`

	if err := r.db.Raw(query, startDate, endDate, models.CategoryIncome, limit).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get top merchants: %w", err)
	}

	return summaries, nil
}

// SpendBetween sums spend for a single category (or all categories when empty)
// over a date range, excluding income.
func (r *transactionRepository) SpendBetween(startDate, endDate time.Time, category string) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}

	query := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("date BETWEEN ? AND ? AND category <> ?", startDate, endDate, models.CategoryIncome)

	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute spend: %w", err)
	}

	return result.Total, nil
}
