package repositories

import (
	"errors"
	"fmt"

	"finance-ledger/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates a budget for a category or replaces its monthly limit
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_limit", "updated_at"}),
	}).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetAll retrieves all budgets ordered by category
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("category ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByCategory retrieves the budget for a single category
func (r *budgetRepository) GetByCategory(category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("category = ?", category).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}
