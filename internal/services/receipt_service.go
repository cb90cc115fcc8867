package services

import (
	"errors"
	"log/slog"
	"time"

	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrReceiptIncomplete    = errors.New("receipt is missing a required field")
	ErrReceiptInvalidAmount = errors.New("receipt amount must be positive")
	ErrReceiptInvalidDate   = errors.New("receipt date must be YYYY-MM-DD")
)

type receiptService struct {
	ledgerService   LedgerServiceInterface
	anomalyService  AnomalyServiceInterface
	categoryService CategoryServiceInterface
	parser          ReceiptParserInterface
	logger          *slog.Logger
}

// NewReceiptService creates a new receipt ingestion service
func NewReceiptService(
	ledgerService LedgerServiceInterface,
	anomalyService AnomalyServiceInterface,
	categoryService CategoryServiceInterface,
	parser ReceiptParserInterface,
	logger *slog.Logger,
) ReceiptServiceInterface {
	return &receiptService{
		ledgerService:   ledgerService,
		anomalyService:  anomalyService,
		categoryService: categoryService,
		parser:          parser,
		logger:          logger,
	}
}

// ConfirmReceipt validates receipt fields, fills in a category when missing,
// and attaches plausibility warnings. The receipt is not persisted until the
// user accepts the proposal.
func (s *receiptService) ConfirmReceipt(date, merchant string, amount float64, category string) (*ReceiptProposal, error) {
	if date == "" || merchant == "" {
		return nil, ErrReceiptIncomplete
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrReceiptInvalidDate
	}

	if amount <= 0 {
		return nil, ErrReceiptInvalidAmount
	}

	if category == "" {
		proxy := &models.Transaction{Merchant: merchant}
		category = s.categoryService.CategorizeTransaction(proxy).Category
	}

	warnings, err := s.anomalyService.CheckCandidate(merchant, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Info("receipt confirmed",
		"merchant", merchant,
		"amount", amount,
		"warnings", len(warnings))

	return &ReceiptProposal{
		Date:     date,
		Merchant: merchant,
		Amount:   amount,
		Category: category,
		Warnings: warnings,
	}, nil
}

// ParseAndConfirm extracts fields from raw receipt text and confirms them
func (s *receiptService) ParseAndConfirm(text string) (*ReceiptProposal, error) {
	date, merchant, amount, err := s.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return s.ConfirmReceipt(date, merchant, amount, "")
}

// AcceptReceipt persists a confirmed receipt into the ledger
func (s *receiptService) AcceptReceipt(proposal *ReceiptProposal) (*models.Transaction, error) {
	if proposal == nil {
		return nil, ErrReceiptIncomplete
	}

	date, err := time.Parse("2006-01-02", proposal.Date)
	if err != nil {
		return nil, ErrReceiptInvalidDate
	}

	transaction := &models.Transaction{
		Date:     date,
		Merchant: proposal.Merchant,
		Amount:   decimal.NewFromFloat(proposal.Amount),
		Category: proposal.Category,
		Source:   models.SourceReceipt,
	}

	if err := s.ledgerService.AddTransaction(transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}
