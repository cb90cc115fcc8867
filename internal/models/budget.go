package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidBudgetLimit = errors.New("budget monthly limit must be positive")

// Budget is a monthly spending limit for a single category
type Budget struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Category     string          `gorm:"type:varchar(50);not null;uniqueIndex" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_limit"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Category == "" {
		return errors.New("budget category is required")
	}
	if b.MonthlyLimit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBudgetLimit
	}
	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetStatus reports current-month spend against a category budget
type BudgetStatus struct {
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	OverBudget   bool            `json:"over_budget"`
}
