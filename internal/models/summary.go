package models

import "github.com/shopspring/decimal"

// CategorySpend is a per-category aggregate over a date range.
type CategorySpend struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// MerchantSpend is a per-merchant aggregate, used for top-merchant rankings.
type MerchantSpend struct {
	Merchant string          `json:"merchant"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// MonthlyCategorySpend is a per-month, per-category aggregate.
// Month is formatted as "2006-01".
type MonthlyCategorySpend struct {
	Month    string          `json:"month"`
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TransactionFilters narrows transaction listings.
type TransactionFilters struct {
	StartDate *string
	EndDate   *string
	Category  string
	Merchant  string
	Source    string
	Offset    int
	Limit     int
}
