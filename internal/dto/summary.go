package dto

import (
	"finance-ledger/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryQuery contains the date range for spending summaries
type SummaryQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Limit     int    `query:"limit"`
}

// SummaryResponse represents aggregated spending for a date range
type SummaryResponse struct {
	StartDate  string                 `json:"startDate"`
	EndDate    string                 `json:"endDate"`
	TotalSpend decimal.Decimal        `json:"totalSpend"`
	Categories []models.CategorySpend `json:"categories"`
}

// MonthlyBreakdownResponse represents per-month, per-category spending
type MonthlyBreakdownResponse struct {
	Breakdown []models.MonthlyCategorySpend `json:"breakdown"`
}

// TopMerchantsResponse represents the highest-spend merchants for a date range
type TopMerchantsResponse struct {
	Merchants []models.MerchantSpend `json:"merchants"`
}

// SpendTrendResponse compares the trailing 30 days of spend with the 30 before
type SpendTrendResponse struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Change   decimal.Decimal `json:"change"`
}
