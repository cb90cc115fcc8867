package services

import (
	"errors"
	"strings"
	"time"

	"finance-ledger/internal/models"
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrTransactionNil     = errors.New("transaction cannot be nil")
	ErrCategoryNotChanged = errors.New("category was not changed")
)

type categoryService struct {
	merchantPatterns map[string]merchantPattern
}

type merchantPattern struct {
	category   string
	confidence float64
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService() CategoryServiceInterface {
	return &categoryService{
		merchantPatterns: initMerchantPatterns(),
	}
}

// CategorizeByMerchant categorizes based on merchant name
func (s *categoryService) CategorizeByMerchant(merchant string) (string, float64) {
	if merchant == "" {
		return models.CategoryUncategorised, 0.0
	}

	normalized := normalizeForMatching(merchant)

	for pattern, mapping := range s.merchantPatterns {
		if strings.Contains(normalized, normalizeForMatching(pattern)) {
			return mapping.category, mapping.confidence
		}
	}

	return models.CategoryUncategorised, 0.0
}

// FuzzyMatchMerchant performs fuzzy string matching on merchant names
func (s *categoryService) FuzzyMatchMerchant(input string) (string, float64) {
	if input == "" {
		return "", 0.0
	}

	input = strings.ToLower(strings.TrimSpace(input))
	var bestMatch string
	var bestScore float64

	for merchant := range s.merchantPatterns {
		score := calculateSimilarity(input, strings.ToLower(merchant))

		if score > bestScore && score > 0.7 {
			bestScore = score
			bestMatch = merchant
		}
	}

	return bestMatch, bestScore
}

// CategorizeTransaction performs complete categorization using all available methods
func (s *categoryService) CategorizeTransaction(transaction *models.Transaction) *models.CategorizationResult {
	if transaction == nil || transaction.Merchant == "" {
		return &models.CategorizationResult{
			Category:   models.CategoryUncategorised,
			Method:     models.CategorizationMethodFallback,
			Confidence: 0.0,
		}
	}

	category, confidence := s.CategorizeByMerchant(transaction.Merchant)
	if category != models.CategoryUncategorised {
		return &models.CategorizationResult{
			Category:       category,
			Method:         models.CategorizationMethodMerchant,
			Confidence:     confidence,
			MatchedPattern: "Merchant:" + transaction.Merchant,
		}
	}

	fuzzyMerchant, score := s.FuzzyMatchMerchant(transaction.Merchant)
	if fuzzyMerchant != "" {
		if mapping, exists := s.merchantPatterns[fuzzyMerchant]; exists {
			return &models.CategorizationResult{
				Category:       mapping.category,
				Method:         models.CategorizationMethodFuzzy,
				Confidence:     score * mapping.confidence,
				MatchedPattern: "Fuzzy:" + fuzzyMerchant,
			}
		}
	}

	return &models.CategorizationResult{
		Category:   models.CategoryUncategorised,
		Method:     models.CategorizationMethodFallback,
		Confidence: 0.0,
	}
}

// BatchCategorize categorizes multiple transactions
func (s *categoryService) BatchCategorize(transactions []*models.Transaction) []*models.CategorizationResult {
	results := make([]*models.CategorizationResult, 0, len(transactions))

	for _, txn := range transactions {
		results = append(results, s.CategorizeTransaction(txn))
	}

	return results
}

// OverrideCategory manually overrides a transaction category
func (s *categoryService) OverrideCategory(transaction *models.Transaction, newCategory string) error {
	if transaction == nil {
		return ErrTransactionNil
	}

	if !models.IsValidCategory(newCategory) {
		return ErrInvalidCategory
	}

	if transaction.Category == newCategory {
		return ErrCategoryNotChanged
	}

	transaction.Category = newCategory
	transaction.UpdatedAt = time.Now()

	return nil
}

// initMerchantPatterns initializes common merchant patterns
func initMerchantPatterns() map[string]merchantPattern {
	return map[string]merchantPattern{
		// Food
		"Tesco":       {category: models.CategoryFood, confidence: 0.95},
		"Sainsbury":   {category: models.CategoryFood, confidence: 0.95},
		"Asda":        {category: models.CategoryFood, confidence: 0.95},
		"Aldi":        {category: models.CategoryFood, confidence: 0.95},
		"Lidl":        {category: models.CategoryFood, confidence: 0.95},
		"Waitrose":    {category: models.CategoryFood, confidence: 0.95},
		"Co-op":       {category: models.CategoryFood, confidence: 0.90},
		"Greggs":      {category: models.CategoryFood, confidence: 0.95},
		"Pret":        {category: models.CategoryFood, confidence: 0.90},
		"Costa":       {category: models.CategoryFood, confidence: 0.90},
		"Starbucks":   {category: models.CategoryFood, confidence: 0.95},
		"Deliveroo":   {category: models.CategoryFood, confidence: 0.95},
		"Just Eat":    {category: models.CategoryFood, confidence: 0.95},
		"Uber Eats":   {category: models.CategoryFood, confidence: 0.95},
		"McDonald":    {category: models.CategoryFood, confidence: 0.95},
		"Nando":       {category: models.CategoryFood, confidence: 0.95},

		// Transport
		"Uber":     {category: models.CategoryTransport, confidence: 0.90},
		"Trainline": {category: models.CategoryTransport, confidence: 0.95},
		"TfL Travel": {category: models.CategoryTransport, confidence: 0.95},
		"Shell":    {category: models.CategoryTransport, confidence: 0.95},
		"BP":       {category: models.CategoryTransport, confidence: 0.95},
		"Esso":     {category: models.CategoryTransport, confidence: 0.95},
		"National Rail": {category: models.CategoryTransport, confidence: 0.95},

		// Subscriptions
		"Netflix":  {category: models.CategorySubscriptions, confidence: 0.95},
		"Spotify":  {category: models.CategorySubscriptions, confidence: 0.95},
		"Disney":   {category: models.CategorySubscriptions, confidence: 0.90},
		"Audible":  {category: models.CategorySubscriptions, confidence: 0.95},
		"Prime":    {category: models.CategorySubscriptions, confidence: 0.80},
		"YouTube":  {category: models.CategorySubscriptions, confidence: 0.90},
		"iCloud":   {category: models.CategorySubscriptions, confidence: 0.95},

		// Bills
		"British Gas":  {category: models.CategoryBills, confidence: 0.95},
		"EDF":          {category: models.CategoryBills, confidence: 0.95},
		"Octopus":      {category: models.CategoryBills, confidence: 0.90},
		"Thames Water": {category: models.CategoryBills, confidence: 0.95},
		"Vodafone":     {category: models.CategoryBills, confidence: 0.95},
		"Virgin Media": {category: models.CategoryBills, confidence: 0.95},
		"BT":           {category: models.CategoryBills, confidence: 0.90},
		"Council Tax":  {category: models.CategoryBills, confidence: 0.95},

		// Shopping
		"Amazon":   {category: models.CategoryShopping, confidence: 0.90},
		"Argos":    {category: models.CategoryShopping, confidence: 0.95},
		"John Lewis": {category: models.CategoryShopping, confidence: 0.95},
		"IKEA":     {category: models.CategoryShopping, confidence: 0.95},
		"Currys":   {category: models.CategoryShopping, confidence: 0.95},
		"Primark":  {category: models.CategoryShopping, confidence: 0.95},
		"Next":     {category: models.CategoryShopping, confidence: 0.85},
		"Zara":     {category: models.CategoryShopping, confidence: 0.95},

		// Entertainment
		"Odeon":      {category: models.CategoryEntertainment, confidence: 0.95},
		"Cineworld":  {category: models.CategoryEntertainment, confidence: 0.95},
		"Vue":        {category: models.CategoryEntertainment, confidence: 0.85},
		"Ticketmaster": {category: models.CategoryEntertainment, confidence: 0.95},
		"Steam":      {category: models.CategoryEntertainment, confidence: 0.90},
		"PlayStation": {category: models.CategoryEntertainment, confidence: 0.90},

		// Health
		"Boots":     {category: models.CategoryHealth, confidence: 0.95},
		"Superdrug": {category: models.CategoryHealth, confidence: 0.95},
		"Pharmacy":  {category: models.CategoryHealth, confidence: 0.90},
		"PureGym":   {category: models.CategoryHealth, confidence: 0.95},
		"Gym":       {category: models.CategoryHealth, confidence: 0.80},
	}
}

// calculateSimilarity calculates the similarity score between two strings using Levenshtein distance
func calculateSimilarity(s1, s2 string) float64 {
	if s1 == s2 {
		return 1.0
	}

	if len(s1) == 0 || len(s2) == 0 {
		return 0.0
	}

	distance := levenshteinDistance(s1, s2)
	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}

	return 1.0 - float64(distance)/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if s1 == s2 {
		return 0
	}

	if len(s1) == 0 {
		return len(s2)
	}

	if len(s2) == 0 {
		return len(s1)
	}

	matrix := createMatrix(s1, s2)
	initializeFirstRowAndColumn(s1, s2, matrix)
	fillMatrix(s1, s2, matrix)

	return matrix[len(s1)][len(s2)]
}

func createMatrix(s1 string, s2 string) [][]int {
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
	}
	return matrix
}

func initializeFirstRowAndColumn(s1 string, s2 string, matrix [][]int) {
	for i := 0; i <= len(s1); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}
}

func fillMatrix(s1 string, s2 string, matrix [][]int) {
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}

			matrix[i][j] = calculateMinValue(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}
}

func calculateMinValue(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// normalizeForMatching normalizes strings for consistent matching
func normalizeForMatching(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
