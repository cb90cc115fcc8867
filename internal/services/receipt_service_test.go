package services

import (
	"errors"
	"log/slog"
	"testing"

	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type stubLedgerService struct {
	LedgerServiceInterface
	addTransactionFn func(transaction *models.Transaction) error
}

func (s *stubLedgerService) AddTransaction(transaction *models.Transaction) error {
	return s.addTransactionFn(transaction)
}

type stubAnomalyService struct {
	AnomalyServiceInterface
	checkCandidateFn func(merchant string, amount float64) ([]string, error)
}

func (s *stubAnomalyService) CheckCandidate(merchant string, amount float64) ([]string, error) {
	return s.checkCandidateFn(merchant, amount)
}

type stubReceiptParser struct {
	parseFn func(text string) (string, string, float64, error)
}

func (s *stubReceiptParser) Parse(text string) (string, string, float64, error) {
	return s.parseFn(text)
}

func TestReceiptService(t *testing.T) {
	suite.Run(t, new(ReceiptServiceSuite))
}

type ReceiptServiceSuite struct {
	suite.Suite
	ledger  *stubLedgerService
	anomaly *stubAnomalyService
	parser  *stubReceiptParser
	service ReceiptServiceInterface
}

func (s *ReceiptServiceSuite) SetupTest() {
	s.ledger = &stubLedgerService{addTransactionFn: func(*models.Transaction) error { return nil }}
	s.anomaly = &stubAnomalyService{checkCandidateFn: func(string, float64) ([]string, error) { return nil, nil }}
	s.parser = &stubReceiptParser{}
	s.service = NewReceiptService(s.ledger, s.anomaly, NewCategoryService(), s.parser, slog.Default())
}

func (s *ReceiptServiceSuite) TestConfirmReceipt() {
	proposal, err := s.service.ConfirmReceipt("2024-03-10", "Tesco", 23.50, "")
	s.NoError(err)
	s.Require().NotNil(proposal)
	s.Equal("2024-03-10", proposal.Date)
	s.Equal("Tesco", proposal.Merchant)
	s.Equal(models.CategoryFood, proposal.Category)
	s.Empty(proposal.Warnings)
}

func (s *ReceiptServiceSuite) TestConfirmReceipt_KeepsExplicitCategory() {
	proposal, err := s.service.ConfirmReceipt("2024-03-10", "Tesco", 23.50, models.CategoryShopping)
	s.NoError(err)
	s.Equal(models.CategoryShopping, proposal.Category)
}

func (s *ReceiptServiceSuite) TestConfirmReceipt_CarriesWarnings() {
	s.anomaly.checkCandidateFn = func(merchant string, amount float64) ([]string, error) {
		s.Equal("Currys", merchant)
		s.Equal(450.00, amount)
		return []string{"High amount (>= £100)."}, nil
	}

	proposal, err := s.service.ConfirmReceipt("2024-03-10", "Currys", 450.00, "")
	s.NoError(err)
	s.Equal([]string{"High amount (>= £100)."}, proposal.Warnings)
}

func (s *ReceiptServiceSuite) TestConfirmReceipt_MissingFields() {
	_, err := s.service.ConfirmReceipt("", "Tesco", 10.00, "")
	s.ErrorIs(err, ErrReceiptIncomplete)

	_, err = s.service.ConfirmReceipt("2024-03-10", "", 10.00, "")
	s.ErrorIs(err, ErrReceiptIncomplete)
}

func (s *ReceiptServiceSuite) TestConfirmReceipt_InvalidDate() {
	_, err := s.service.ConfirmReceipt("10/03/2024", "Tesco", 10.00, "")
	s.ErrorIs(err, ErrReceiptInvalidDate)
}

func (s *ReceiptServiceSuite) TestConfirmReceipt_InvalidAmount() {
	_, err := s.service.ConfirmReceipt("2024-03-10", "Tesco", 0, "")
	s.ErrorIs(err, ErrReceiptInvalidAmount)

	_, err = s.service.ConfirmReceipt("2024-03-10", "Tesco", -5.00, "")
	s.ErrorIs(err, ErrReceiptInvalidAmount)
}

func (s *ReceiptServiceSuite) TestConfirmReceipt_HistoryError() {
	s.anomaly.checkCandidateFn = func(string, float64) ([]string, error) {
		return nil, errors.New("database unavailable")
	}

	proposal, err := s.service.ConfirmReceipt("2024-03-10", "Tesco", 10.00, "")
	s.Error(err)
	s.Nil(proposal)
}

func (s *ReceiptServiceSuite) TestParseAndConfirm() {
	s.parser.parseFn = func(text string) (string, string, float64, error) {
		s.Contains(text, "TESCO")
		return "2024-03-10", "Tesco", 23.50, nil
	}

	proposal, err := s.service.ParseAndConfirm("TESCO EXPRESS\n2024-03-10\nTOTAL £23.50")
	s.NoError(err)
	s.Equal("Tesco", proposal.Merchant)
	s.Equal(23.50, proposal.Amount)
}

func (s *ReceiptServiceSuite) TestParseAndConfirm_ParserError() {
	s.parser.parseFn = func(string) (string, string, float64, error) {
		return "", "", 0, ErrReceiptUnparseable
	}

	_, err := s.service.ParseAndConfirm("not a receipt")
	s.ErrorIs(err, ErrReceiptUnparseable)
}

func (s *ReceiptServiceSuite) TestAcceptReceipt() {
	var persisted *models.Transaction
	s.ledger.addTransactionFn = func(transaction *models.Transaction) error {
		persisted = transaction
		return nil
	}

	proposal := &ReceiptProposal{
		Date:     "2024-03-10",
		Merchant: "Tesco",
		Amount:   23.50,
		Category: models.CategoryFood,
	}

	transaction, err := s.service.AcceptReceipt(proposal)
	s.NoError(err)
	s.Require().NotNil(transaction)
	s.Equal(persisted, transaction)
	s.Equal(models.SourceReceipt, transaction.Source)
	s.True(transaction.Amount.Equal(decimal.NewFromFloat(23.50)))
	s.Equal(mustDate("2024-03-10"), transaction.Date)
}

func (s *ReceiptServiceSuite) TestAcceptReceipt_NilProposal() {
	_, err := s.service.AcceptReceipt(nil)
	s.ErrorIs(err, ErrReceiptIncomplete)
}

func (s *ReceiptServiceSuite) TestAcceptReceipt_LedgerError() {
	s.ledger.addTransactionFn = func(*models.Transaction) error {
		return models.ErrMerchantMissing
	}

	proposal := &ReceiptProposal{Date: "2024-03-10", Merchant: "Tesco", Amount: 10.00, Category: models.CategoryFood}
	_, err := s.service.AcceptReceipt(proposal)
	s.ErrorIs(err, models.ErrMerchantMissing)
}
