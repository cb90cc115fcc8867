package models

// MerchantInfo pairs a merchant name with its usual spending category.
// Used by the seed-data generator.
type MerchantInfo struct {
	Name     string
	Category string
}
