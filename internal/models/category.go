package models

// Ledger spending categories
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategorySubscriptions = "Subscriptions"
	CategoryBills         = "Bills"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryRent          = "Rent"
	CategoryIncome        = "Income"
	CategoryOther         = "Other"
	CategoryUncategorised = "Uncategorised"
)

// Categorization method types
const (
	CategorizationMethodMerchant = "MERCHANT"
	CategorizationMethodFuzzy    = "FUZZY"
	CategorizationMethodManual   = "MANUAL"
	CategorizationMethodFallback = "FALLBACK"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategorySubscriptions,
		CategoryBills,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealth,
		CategoryRent,
		CategoryIncome,
		CategoryOther,
		CategoryUncategorised,
	}
}

// IsValidCategory checks if a category string is one of the known constants.
// Free-text categories are still accepted by the ledger; this only backs
// validation of API inputs that claim to use a standard category.
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty"`
}
