package services

import (
	"math/rand"
	"time"

	"finance-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

type transactionGenerator struct {
	merchantPool []models.MerchantInfo
	rng          *rand.Rand
	faker        *gofakeit.Faker
}

const (
	salaryDayOfMonth = 25
	rentDayOfMonth   = 1
)

// NewTransactionGenerator creates a new seed-data generator
func NewTransactionGenerator(seed int64) TransactionGeneratorInterface {
	return &transactionGenerator{
		merchantPool: initializeMerchantPool(),
		rng:          rand.New(rand.NewSource(seed)),
		faker:        gofakeit.New(uint64(seed)),
	}
}

// initializeMerchantPool creates a pool of realistic UK merchants
func initializeMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Food
		{Name: "Tesco", Category: models.CategoryFood},
		{Name: "Sainsbury's", Category: models.CategoryFood},
		{Name: "Aldi", Category: models.CategoryFood},
		{Name: "Lidl", Category: models.CategoryFood},
		{Name: "Waitrose", Category: models.CategoryFood},
		{Name: "Greggs", Category: models.CategoryFood},
		{Name: "Pret A Manger", Category: models.CategoryFood},
		{Name: "Costa Coffee", Category: models.CategoryFood},
		{Name: "Deliveroo", Category: models.CategoryFood},
		{Name: "Nando's", Category: models.CategoryFood},

		// Transport
		{Name: "TfL Travel", Category: models.CategoryTransport},
		{Name: "Trainline", Category: models.CategoryTransport},
		{Name: "Uber", Category: models.CategoryTransport},
		{Name: "Shell", Category: models.CategoryTransport},
		{Name: "Esso", Category: models.CategoryTransport},

		// Shopping
		{Name: "Amazon", Category: models.CategoryShopping},
		{Name: "Argos", Category: models.CategoryShopping},
		{Name: "John Lewis", Category: models.CategoryShopping},
		{Name: "Primark", Category: models.CategoryShopping},
		{Name: "IKEA", Category: models.CategoryShopping},

		// Entertainment
		{Name: "Odeon", Category: models.CategoryEntertainment},
		{Name: "Cineworld", Category: models.CategoryEntertainment},
		{Name: "Ticketmaster", Category: models.CategoryEntertainment},
		{Name: "Steam", Category: models.CategoryEntertainment},

		// Health
		{Name: "Boots", Category: models.CategoryHealth},
		{Name: "Superdrug", Category: models.CategoryHealth},
		{Name: "PureGym", Category: models.CategoryHealth},
	}
}

var subscriptionMerchants = []models.MerchantInfo{
	{Name: "Netflix", Category: models.CategorySubscriptions},
	{Name: "Spotify", Category: models.CategorySubscriptions},
	{Name: "Disney+", Category: models.CategorySubscriptions},
	{Name: "iCloud", Category: models.CategorySubscriptions},
}

var billMerchants = []models.MerchantInfo{
	{Name: "British Gas", Category: models.CategoryBills},
	{Name: "Thames Water", Category: models.CategoryBills},
	{Name: "Vodafone", Category: models.CategoryBills},
	{Name: "Virgin Media", Category: models.CategoryBills},
	{Name: "Council Tax", Category: models.CategoryBills},
}

var subscriptionAmounts = []float64{4.99, 6.99, 9.99, 10.99, 12.99, 15.99}

// MerchantPool returns the merchant pool
func (g *transactionGenerator) MerchantPool() []models.MerchantInfo {
	return g.merchantPool
}

// GenerateLedger generates a realistic personal ledger over the date range:
// monthly salary and rent, monthly bills and subscriptions at fixed amounts,
// and one to three everyday purchases per day.
func (g *transactionGenerator) GenerateLedger(startDate, endDate time.Time) []models.Transaction {
	var transactions []models.Transaction

	transactions = append(transactions, g.generateMonthly(startDate, endDate)...)
	transactions = append(transactions, g.generateDaily(startDate, endDate)...)

	return transactions
}

func (g *transactionGenerator) generateMonthly(startDate, endDate time.Time) []models.Transaction {
	var transactions []models.Transaction

	employer := g.faker.Company()
	salary := 2200.00 + float64(g.rng.Intn(16))*100
	rent := 850.00 + float64(g.rng.Intn(8))*50

	subs := make(map[string]float64)
	for _, sub := range subscriptionMerchants {
		subs[sub.Name] = subscriptionAmounts[g.rng.Intn(len(subscriptionAmounts))]
	}

	for month := monthStart(startDate); !month.After(endDate); month = month.AddDate(0, 1, 0) {
		payday := time.Date(month.Year(), month.Month(), salaryDayOfMonth, 0, 0, 0, 0, time.UTC)
		if inRange(payday, startDate, endDate) {
			transactions = append(transactions, models.Transaction{
				Date:     payday,
				Merchant: employer,
				Amount:   decimal.NewFromFloat(salary),
				Category: models.CategoryIncome,
				Source:   models.SourceImport,
			})
		}

		rentDay := time.Date(month.Year(), month.Month(), rentDayOfMonth, 0, 0, 0, 0, time.UTC)
		if inRange(rentDay, startDate, endDate) {
			transactions = append(transactions, models.Transaction{
				Date:     rentDay,
				Merchant: "Harbour Lettings",
				Amount:   decimal.NewFromFloat(rent),
				Category: models.CategoryRent,
				Source:   models.SourceImport,
			})
		}

		for _, merchant := range billMerchants {
			billDay := time.Date(month.Year(), month.Month(), 3+g.rng.Intn(10), 0, 0, 0, 0, time.UTC)
			if inRange(billDay, startDate, endDate) {
				transactions = append(transactions, models.Transaction{
					Date:     billDay,
					Merchant: merchant.Name,
					Amount:   g.generateAmount(models.CategoryBills),
					Category: models.CategoryBills,
					Source:   models.SourceImport,
				})
			}
		}

		for _, sub := range subscriptionMerchants {
			subDay := time.Date(month.Year(), month.Month(), 10+g.rng.Intn(10), 0, 0, 0, 0, time.UTC)
			if inRange(subDay, startDate, endDate) {
				transactions = append(transactions, models.Transaction{
					Date:     subDay,
					Merchant: sub.Name,
					Amount:   decimal.NewFromFloat(subs[sub.Name]),
					Category: models.CategorySubscriptions,
					Source:   models.SourceImport,
				})
			}
		}
	}

	return transactions
}

func (g *transactionGenerator) generateDaily(startDate, endDate time.Time) []models.Transaction {
	var transactions []models.Transaction

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		purchases := 1 + g.rng.Intn(3)
		for i := 0; i < purchases; i++ {
			merchant := g.merchantPool[g.rng.Intn(len(g.merchantPool))]
			transactions = append(transactions, models.Transaction{
				Date:     day,
				Merchant: merchant.Name,
				Amount:   g.generateAmount(merchant.Category),
				Category: merchant.Category,
				Source:   models.SourceImport,
			})
		}
	}

	return transactions
}

func (g *transactionGenerator) generateAmount(category string) decimal.Decimal {
	ranges := map[string][2]float64{
		models.CategoryFood:          {2.50, 65.00},
		models.CategoryTransport:     {2.80, 45.00},
		models.CategoryShopping:      {8.00, 180.00},
		models.CategoryEntertainment: {6.00, 55.00},
		models.CategoryHealth:        {4.00, 40.00},
		models.CategoryBills:         {25.00, 140.00},
	}

	bounds, exists := ranges[category]
	if !exists {
		bounds = [2]float64{5.00, 80.00}
	}

	amount := bounds[0] + g.rng.Float64()*(bounds[1]-bounds[0])
	return decimal.NewFromFloat(amount).Round(2)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
