package services

import (
	"testing"

	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionGenerator(t *testing.T) {
	suite.Run(t, new(TransactionGeneratorSuite))
}

type TransactionGeneratorSuite struct {
	suite.Suite
	generator TransactionGeneratorInterface
}

func (s *TransactionGeneratorSuite) SetupTest() {
	s.generator = NewTransactionGenerator(42)
}

func (s *TransactionGeneratorSuite) TestMerchantPool() {
	pool := s.generator.MerchantPool()
	s.NotEmpty(pool)
	for _, merchant := range pool {
		s.NotEmpty(merchant.Name)
		s.True(models.IsValidCategory(merchant.Category))
	}
}

func (s *TransactionGeneratorSuite) TestGenerateLedger_AllValid() {
	start := mustDate("2024-01-01")
	end := mustDate("2024-03-31")

	transactions := s.generator.GenerateLedger(start, end)
	s.NotEmpty(transactions)

	for _, transaction := range transactions {
		s.NoError(transaction.Validate())
		s.Equal(models.SourceImport, transaction.Source)
		s.False(transaction.Date.Before(start))
		s.False(transaction.Date.After(end))
	}
}

func (s *TransactionGeneratorSuite) TestGenerateLedger_MonthlyFixtures() {
	start := mustDate("2024-01-01")
	end := mustDate("2024-03-31")

	transactions := s.generator.GenerateLedger(start, end)

	salaries := 0
	rents := 0
	subscriptionAmountsByName := make(map[string]map[string]bool)
	for _, transaction := range transactions {
		switch transaction.Category {
		case models.CategoryIncome:
			salaries++
		case models.CategoryRent:
			rents++
			s.Equal("Harbour Lettings", transaction.Merchant)
		case models.CategorySubscriptions:
			if subscriptionAmountsByName[transaction.Merchant] == nil {
				subscriptionAmountsByName[transaction.Merchant] = make(map[string]bool)
			}
			subscriptionAmountsByName[transaction.Merchant][transaction.Amount.String()] = true
		}
	}

	s.Equal(3, salaries)
	s.Equal(3, rents)

	// a subscription charges the same amount every month
	for merchant, amounts := range subscriptionAmountsByName {
		s.Len(amounts, 1, "subscription %s should have a fixed amount", merchant)
	}
}

func (s *TransactionGeneratorSuite) TestGenerateLedger_Deterministic() {
	start := mustDate("2024-01-01")
	end := mustDate("2024-01-31")

	first := NewTransactionGenerator(7).GenerateLedger(start, end)
	second := NewTransactionGenerator(7).GenerateLedger(start, end)

	s.Require().Equal(len(first), len(second))
	for i := range first {
		s.Equal(first[i].Merchant, second[i].Merchant)
		s.True(first[i].Amount.Equal(second[i].Amount))
		s.True(first[i].Date.Equal(second[i].Date))
	}
}

func (s *TransactionGeneratorSuite) TestGenerateLedger_DifferentSeeds() {
	start := mustDate("2024-01-01")
	end := mustDate("2024-01-31")

	first := NewTransactionGenerator(1).GenerateLedger(start, end)
	second := NewTransactionGenerator(2).GenerateLedger(start, end)

	identical := len(first) == len(second)
	if identical {
		for i := range first {
			if first[i].Merchant != second[i].Merchant || !first[i].Amount.Equal(second[i].Amount) {
				identical = false
				break
			}
		}
	}
	s.False(identical)
}

func (s *TransactionGeneratorSuite) TestGenerateLedger_AmountsRounded() {
	start := mustDate("2024-02-01")
	end := mustDate("2024-02-07")

	for _, transaction := range s.generator.GenerateLedger(start, end) {
		s.True(transaction.Amount.Equal(transaction.Amount.Round(2)),
			"amount %s should have at most two decimal places", transaction.Amount)
		s.True(transaction.Amount.GreaterThan(decimal.Zero))
	}
}
