package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SourceManual    = "manual"
	SourceReceipt   = "receipt"
	SourceStatement = "statement"
	SourceImport    = "import"
)

var (
	ErrInvalidSource   = errors.New("invalid transaction source")
	ErrInvalidAmount   = errors.New("transaction amount must be non-zero")
	ErrMerchantMissing = errors.New("transaction merchant is required")
)

// Transaction represents a single ledger entry
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date      time.Time       `gorm:"type:date;not null;index" json:"date"`
	Merchant  string          `gorm:"type:varchar(255);not null;index" json:"merchant"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category  string          `gorm:"type:varchar(50);not null;default:'Uncategorised';index" json:"category"`
	Source    string          `gorm:"type:varchar(20);not null;default:'manual'" json:"source"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Category == "" {
		t.Category = CategoryUncategorised
	}

	if t.Source == "" {
		t.Source = SourceManual
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Merchant) == "" {
		return ErrMerchantMissing
	}

	if t.Amount.IsZero() {
		return ErrInvalidAmount
	}

	if !IsValidSource(t.Source) {
		return ErrInvalidSource
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	return nil
}

// NormalizedMerchant returns the merchant label lower-cased and trimmed.
// All merchant grouping and comparison keys use this form.
func (t *Transaction) NormalizedMerchant() string {
	return NormalizeMerchant(t.Merchant)
}

// AbsAmount returns the spend magnitude of the transaction. The ledger
// stores signed amounts but anomaly baselines only care about magnitude.
func (t *Transaction) AbsAmount() float64 {
	f, _ := t.Amount.Abs().Float64()
	return f
}

// DateString returns the transaction date in ISO-8601 form
func (t *Transaction) DateString() string {
	return t.Date.Format("2006-01-02")
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// NormalizeMerchant lower-cases and trims a merchant label
func NormalizeMerchant(merchant string) string {
	return strings.ToLower(strings.TrimSpace(merchant))
}

// IsValidSource checks if the provenance tag is valid
func IsValidSource(source string) bool {
	switch source {
	case SourceManual, SourceReceipt, SourceStatement, SourceImport:
		return true
	default:
		return false
	}
}
