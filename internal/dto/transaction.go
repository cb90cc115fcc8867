package dto

import (
	"finance-ledger/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Merchant string `json:"merchant" validate:"required,min=1,max=255"`
	Amount   string `json:"amount" validate:"required"`
	Category string `json:"category" validate:"omitempty,category"`
	Source   string `json:"source" validate:"omitempty,transaction_source"`
}

// ImportStatementRequest represents a bank statement import payload
type ImportStatementRequest struct {
	Transactions []CreateTransactionRequest `json:"transactions" validate:"required,min=1,dive"`
}

// OverrideCategoryRequest represents a manual category correction
type OverrideCategoryRequest struct {
	Category string `json:"category" validate:"required,category"`
}

// ListTransactionsQuery contains filtering options for transaction queries
type ListTransactionsQuery struct {
	StartDate *string `query:"startDate"`
	EndDate   *string `query:"endDate"`
	Category  string  `query:"category"`
	Merchant  string  `query:"merchant"`
	Source    string  `query:"source"`
	Offset    int     `query:"offset"`
	Limit     int     `query:"limit"`
}

// Transaction Response DTOs

// CreateTransactionResponse represents the response after recording a transaction
type CreateTransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message"`
}

// ImportStatementResponse represents the response after a statement import
type ImportStatementResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// TransactionListResponse represents a paginated list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
