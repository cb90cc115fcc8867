package dto

import (
	"finance-ledger/internal/models"
)

// Receipt Request DTOs

// ConfirmReceiptRequest represents already-extracted receipt fields awaiting confirmation
type ConfirmReceiptRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Merchant string  `json:"merchant" validate:"required,min=1,max=255"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category" validate:"omitempty,category"`
}

// ParseReceiptRequest represents raw receipt text to extract fields from
type ParseReceiptRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// AcceptReceiptRequest represents a confirmed proposal the user wants persisted
type AcceptReceiptRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Merchant string  `json:"merchant" validate:"required,min=1,max=255"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Category string  `json:"category" validate:"required,category"`
}

// Receipt Response DTOs

// ReceiptProposalResponse carries a pending receipt and its plausibility warnings
type ReceiptProposalResponse struct {
	Date     string   `json:"date"`
	Merchant string   `json:"merchant"`
	Amount   float64  `json:"amount"`
	Category string   `json:"category"`
	Warnings []string `json:"warnings"`
}

// AcceptReceiptResponse represents the response after persisting a receipt
type AcceptReceiptResponse struct {
	Transaction *models.Transaction `json:"transaction"`
	Message     string              `json:"message"`
}
