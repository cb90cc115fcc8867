package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validTransaction() *Transaction {
	return &Transaction{
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Merchant: "Tesco",
		Amount:   decimal.NewFromFloat(25.50),
		Category: CategoryFood,
		Source:   SourceManual,
	}
}

func TestTransactionValidate(t *testing.T) {
	testCases := []struct {
		name        string
		modify      func(*Transaction)
		expectedErr error
	}{
		{
			name:        "valid transaction",
			modify:      func(t *Transaction) {},
			expectedErr: nil,
		},
		{
			name:        "missing merchant",
			modify:      func(t *Transaction) { t.Merchant = "" },
			expectedErr: ErrMerchantMissing,
		},
		{
			name:        "whitespace merchant",
			modify:      func(t *Transaction) { t.Merchant = "   " },
			expectedErr: ErrMerchantMissing,
		},
		{
			name:        "zero amount",
			modify:      func(t *Transaction) { t.Amount = decimal.Zero },
			expectedErr: ErrInvalidAmount,
		},
		{
			name:        "invalid source",
			modify:      func(t *Transaction) { t.Source = "telepathy" },
			expectedErr: ErrInvalidSource,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			txn := validTransaction()
			tc.modify(txn)
			err := txn.Validate()
			if tc.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expectedErr)
			}
		})
	}
}

func TestTransactionValidate_NegativeAmountAllowed(t *testing.T) {
	txn := validTransaction()
	txn.Amount = decimal.NewFromFloat(-42.00)
	assert.NoError(t, txn.Validate(), "refunds carry negative amounts")
}

func TestNormalizedMerchant(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Tesco", "tesco"},
		{"  TESCO  ", "tesco"},
		{"Pret A Manger", "pret a manger"},
		{"\tNetflix \n", "netflix"},
	}

	for _, tc := range testCases {
		txn := validTransaction()
		txn.Merchant = tc.input
		assert.Equal(t, tc.expected, txn.NormalizedMerchant())
	}
}

func TestAbsAmount(t *testing.T) {
	txn := validTransaction()
	txn.Amount = decimal.NewFromFloat(-19.99)
	assert.InDelta(t, 19.99, txn.AbsAmount(), 1e-9)
}

func TestDateString(t *testing.T) {
	txn := validTransaction()
	assert.Equal(t, "2024-03-01", txn.DateString())
}

func TestIsValidSource(t *testing.T) {
	for _, source := range []string{SourceManual, SourceReceipt, SourceStatement, SourceImport} {
		assert.True(t, IsValidSource(source))
	}
	assert.False(t, IsValidSource(""))
	assert.False(t, IsValidSource("email"))
}

func TestSeverityRank(t *testing.T) {
	assert.Equal(t, 0, SeverityRank(SeverityHigh))
	assert.Equal(t, 1, SeverityRank(SeverityMedium))
	assert.Equal(t, 2, SeverityRank(SeverityLow))
	assert.Equal(t, 9, SeverityRank("unknown"))
}

func TestBudgetValidate(t *testing.T) {
	budget := &Budget{Category: CategoryFood, MonthlyLimit: decimal.NewFromInt(300)}
	assert.NoError(t, budget.Validate())

	budget.MonthlyLimit = decimal.Zero
	assert.ErrorIs(t, budget.Validate(), ErrInvalidBudgetLimit)

	budget.MonthlyLimit = decimal.NewFromInt(-10)
	assert.ErrorIs(t, budget.Validate(), ErrInvalidBudgetLimit)

	budget = &Budget{MonthlyLimit: decimal.NewFromInt(100)}
	assert.Error(t, budget.Validate())
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryFood))
	assert.True(t, IsValidCategory(CategoryUncategorised))
	assert.False(t, IsValidCategory("Yachts"))
	assert.False(t, IsValidCategory(""))
}
