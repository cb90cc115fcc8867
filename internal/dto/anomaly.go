package dto

import (
	"finance-ledger/internal/models"
)

// AnomalyListQuery selects the trailing window to scan
type AnomalyListQuery struct {
	Days int `query:"days"`
}

// AnomalyListResponse represents the flagged anomalies of a detection scan
type AnomalyListResponse struct {
	Anomalies  []models.Anomaly `json:"anomalies"`
	Count      int              `json:"count"`
	WindowDays int              `json:"windowDays"`
}

// CheckCandidateRequest represents a prospective transaction to sanity-check
type CheckCandidateRequest struct {
	Merchant string  `json:"merchant" validate:"required,min=1,max=255"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

// CheckCandidateResponse carries the plausibility warnings for a candidate
type CheckCandidateResponse struct {
	Merchant string   `json:"merchant"`
	Amount   float64  `json:"amount"`
	Warnings []string `json:"warnings"`
}
